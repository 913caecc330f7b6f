// Package dispatcher implements the watch and dispatch loop: it arms one-shot
// watches, debounces events and runs the command through a supervisor.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher runs the command whenever a watched path changes.
type Dispatcher struct {
	registry   *Registry
	notifier   ports.Notifier
	supervisor ports.Supervisor
	logger     ports.Logger
	tracer     ports.Tracer

	lastRun time.Time
}

// New creates a Dispatcher. The notifier is owned by the caller.
func New(
	notifier ports.Notifier,
	supervisor ports.Supervisor,
	logger ports.Logger,
	tracer ports.Tracer,
) *Dispatcher {
	return &Dispatcher{
		registry:   NewRegistry(notifier),
		notifier:   notifier,
		supervisor: supervisor,
		logger:     logger,
		tracer:     tracer,
	}
}

// Run arms cfg.Paths as given and dispatches events until ctx is cancelled.
// Cancellation is a clean shutdown and returns nil, even in the middle of a run.
// In once mode it returns a *domain.ExitError carrying the first run's exit code.
// A failure of the event source is returned wrapped in domain.ErrEventReadFailed.
func (d *Dispatcher) Run(ctx context.Context, cfg *domain.Config) error {
	if cfg.Immediate {
		d.logger.Info("run command immediately: " + cfg.String())
		res := d.execute(ctx, cfg.Command, domain.SpanImmediate, "")
		if ctx.Err() != nil {
			return nil
		}
		if cfg.Command.RunOnce {
			return &domain.ExitError{Code: res.ExitCode()}
		}
	}

	d.logger.Info("start monitoring: " + cfg.String())
	for _, p := range cfg.Paths {
		d.arm(p)
	}
	if d.registry.Len() == 0 {
		d.logger.Warn("no paths could be watched")
	}

	// The first qualifying event always fires.
	d.lastRun = time.Now().Add(-cfg.Threshold)

	for {
		events, err := d.notifier.Wait(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return zerr.Wrap(err, domain.ErrEventReadFailed.Error())
		}

		for _, ev := range events {
			code, done := d.handle(ctx, cfg, ev)
			if ctx.Err() != nil {
				return nil
			}
			if done {
				return &domain.ExitError{Code: code}
			}
		}
	}
}

// handle processes one event and reports whether the program must exit.
func (d *Dispatcher) handle(ctx context.Context, cfg *domain.Config, ev domain.WatchEvent) (int, bool) {
	path, ok := d.registry.Disarm(ev.Handle)
	if !ok {
		return 0, false
	}

	if ev.Kind.Qualifies() && time.Since(d.lastRun) >= cfg.Threshold {
		d.logger.Info(fmt.Sprintf("===== %s =====", path))
		res := d.execute(ctx, cfg.Command, domain.SpanRun, path)
		d.lastRun = time.Now()

		if cfg.Command.RunOnce {
			return res.ExitCode(), true
		}
	}

	d.arm(path)
	return 0, false
}

// execute runs the command once, logs the result and records it in a span.
func (d *Dispatcher) execute(ctx context.Context, spec domain.CommandSpec, span, path string) domain.RunResult {
	ctx, s := d.tracer.Start(ctx, span)
	defer s.End()
	if path != "" {
		s.SetAttribute(domain.AttrPath, path)
	}

	res := d.supervisor.Run(ctx, spec)

	s.SetAttribute(domain.AttrResult, res.String())
	s.SetAttribute(domain.AttrExitCode, res.ExitCode())
	if res.Err != nil {
		s.RecordError(res.Err)
	}

	label := path
	if label == "" {
		label = span
	}
	switch res.Outcome {
	case domain.OutcomeExited:
		d.logger.Info(fmt.Sprintf("===== %s [exit code %d] =====", label, res.Code))
	case domain.OutcomeKilled:
		d.logger.Info(fmt.Sprintf("===== %s [terminated] =====", label))
	default:
		d.logger.Error(res.Err)
	}
	return res
}

func (d *Dispatcher) arm(path string) {
	if _, err := d.registry.Arm(path); err != nil {
		d.logger.Error(err)
	}
}
