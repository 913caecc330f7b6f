// Package shell provides the process supervisor adapter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultKillGrace is how long a child may outlive its teardown or terminate signal
// before it is killed.
const DefaultKillGrace = 2 * time.Second

var _ ports.Supervisor = (*Supervisor)(nil)

// Supervisor implements ports.Supervisor using os/exec.
// Children run in their own process group so that signals reach the whole tree.
type Supervisor struct {
	logger    ports.Logger
	stdout    io.Writer
	stderr    io.Writer
	killGrace time.Duration
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithOutput sets the writers the child's output is copied to.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Supervisor) {
		s.stdout = stdout
		s.stderr = stderr
	}
}

// WithKillGrace sets the delay between terminate and kill.
func WithKillGrace(d time.Duration) Option {
	return func(s *Supervisor) {
		s.killGrace = d
	}
}

// NewSupervisor creates a new Supervisor writing to the process' stdout and stderr.
func NewSupervisor(logger ports.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		logger:    logger,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		killGrace: DefaultKillGrace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run spawns the command and blocks until it exits, the timeout policy terminates it,
// or ctx is cancelled.
func (s *Supervisor) Run(ctx context.Context, spec domain.CommandSpec) domain.RunResult {
	argv := spec.Argv()
	if len(argv) == 0 {
		return domain.SpawnFailed(domain.ErrMissingCommand)
	}

	var (
		proc *process
		err  error
	)
	if spec.PTY {
		proc, err = startPTY(argv, s.stdout)
	} else {
		proc, err = s.start(argv)
	}
	if err != nil {
		return domain.SpawnFailed(zerr.With(zerr.Wrap(err, domain.ErrSpawnFailed.Error()), "command", spec.Invocation))
	}

	var timeout <-chan time.Time
	if spec.Timeout > 0 {
		timer := time.NewTimer(spec.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-proc.exited:
		return proc.result(spec)
	case <-timeout:
		// A child that exited at the deadline counts as a normal exit.
		select {
		case <-proc.exited:
			return proc.result(spec)
		default:
		}
		return s.escalate(ctx, proc, spec)
	case <-ctx.Done():
		s.terminate(proc)
		s.reap(proc)
		return domain.Killed()
	}
}

// start spawns argv with inherited output in a new process group.
func (s *Supervisor) start(argv []string) (*process, error) {
	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	cmd.WaitDelay = s.killGrace
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	proc := newProcess(cmd)
	go func() {
		proc.err = cmd.Wait()
		close(proc.exited)
	}()
	return proc, nil
}

// escalate applies the timeout policy to a child that is still running.
func (s *Supervisor) escalate(ctx context.Context, proc *process, spec domain.CommandSpec) domain.RunResult {
	if spec.Teardown != "" {
		err := s.teardown(ctx, proc.pid, spec.Teardown)
		switch {
		case ctx.Err() != nil:
			s.terminate(proc)
		case err != nil:
			s.logger.Error(err)
		}
	} else if err := proc.signal(syscall.SIGTERM); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			<-proc.exited
			return proc.result(spec)
		}
		s.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrSignalFailed.Error()), "pid", proc.pid))
	}

	s.reap(proc)
	return domain.Killed()
}

// terminate sends SIGTERM to the child's process group.
func (s *Supervisor) terminate(proc *process) {
	if err := proc.signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		s.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrSignalFailed.Error()), "pid", proc.pid))
	}
}

// teardown runs script through the shell with the child's pid in the environment.
// Cancelling ctx terminates the teardown's process group and kills it after the grace period.
func (s *Supervisor) teardown(ctx context.Context, pid int, script string) error {
	cmd := exec.CommandContext(ctx, domain.DefaultShell, "-c", script) //nolint:gosec // user provided command
	cmd.Env = append(os.Environ(), fmt.Sprintf("%s=%d", domain.TeardownPIDEnv, pid))
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	cmd.WaitDelay = s.killGrace
	cmd.Cancel = func() error {
		return signalGroup(cmd.Process, syscall.SIGTERM)
	}
	setProcessGroup(cmd)

	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTeardownFailed.Error()), "teardown", script)
	}
	return nil
}

// reap waits for the child to exit, killing its process group once the grace period ends.
func (s *Supervisor) reap(proc *process) {
	grace := time.NewTimer(s.killGrace)
	defer grace.Stop()

	select {
	case <-proc.exited:
		return
	case <-grace.C:
	}

	if err := proc.signal(syscall.SIGKILL); err != nil && !errors.Is(err, os.ErrProcessDone) {
		s.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrSignalFailed.Error()), "pid", proc.pid))
		_ = proc.cmd.Process.Kill()
	}
	<-proc.exited
}
