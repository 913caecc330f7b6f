// Package app implements the application layer for imk.
package app

import (
	"context"

	"github.com/snobb/imk/internal/adapters/telemetry"
	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"github.com/snobb/imk/internal/engine/dispatcher"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	expander     ports.PathExpander
	notifiers    ports.NotifierFactory
	supervisor   ports.Supervisor
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	expander ports.PathExpander,
	notifiers ports.NotifierFactory,
	supervisor ports.Supervisor,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		expander:     expander,
		notifiers:    notifiers,
		supervisor:   supervisor,
		logger:       log,
	}
}

// LoadConfig returns the defaults overlaid with the profile at path, if any.
func (a *App) LoadConfig(path string) (*domain.Config, error) {
	return a.configLoader.Load(path)
}

// formatter is implemented by loggers whose output format can be switched at runtime.
type formatter interface {
	SetFormat(format string)
}

// Run validates cfg, expands its paths and watches them until ctx is cancelled.
// In once mode the returned *domain.ExitError carries the exit code.
func (a *App) Run(ctx context.Context, cfg *domain.Config) error {
	if f, ok := a.logger.(formatter); ok {
		f.SetFormat(cfg.LogFormat)
	}

	// 1. Validate before anything is armed
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Expand directory arguments
	paths, err := a.expander.Expand(cfg.Paths, cfg.Recurse, cfg.IgnoreSuffixes())
	if err != nil {
		return err
	}
	resolved := *cfg
	resolved.Paths = paths

	// 3. Open the event source
	notifier, err := a.notifiers.New(cfg.Backend)
	if err != nil {
		return err
	}

	// 4. Initialize Telemetry
	var tracer ports.Tracer = telemetry.NewNoOpTracer()
	if cfg.Timings {
		tracer = telemetry.NewOTelTracer("imk", telemetry.NewBridge(a.logger))
	}
	defer func() {
		_ = tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	// 5. Run the dispatcher and release the notifier once it stops
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return dispatcher.New(notifier, a.supervisor, a.logger, tracer).Run(ctx, &resolved)
	})

	g.Go(func() error {
		<-ctx.Done()
		if err := notifier.Close(); err != nil {
			return zerr.Wrap(err, "failed to close notifier")
		}
		return nil
	})

	return g.Wait()
}
