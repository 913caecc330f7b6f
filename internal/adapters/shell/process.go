package shell

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/snobb/imk/internal/core/domain"
	"go.trai.ch/zerr"
)

// process is a started child. exited is closed once the child has been waited for,
// after which err holds the result of Wait.
type process struct {
	cmd    *exec.Cmd
	pid    int
	exited chan struct{}
	err    error
}

func newProcess(cmd *exec.Cmd) *process {
	return &process{
		cmd:    cmd,
		pid:    cmd.Process.Pid,
		exited: make(chan struct{}),
	}
}

// signal delivers sig to the child's process group.
// It returns os.ErrProcessDone when the child has already exited.
func (p *process) signal(sig syscall.Signal) error {
	select {
	case <-p.exited:
		return os.ErrProcessDone
	default:
	}
	return signalGroup(p.cmd.Process, sig)
}

// result maps the outcome of Wait. Must only be called after exited is closed.
func (p *process) result(spec domain.CommandSpec) domain.RunResult {
	if p.err == nil || errors.Is(p.err, exec.ErrWaitDelay) {
		return domain.Exited(0)
	}

	var exitErr *exec.ExitError
	if errors.As(p.err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return domain.Exited(code)
		}
		return domain.Killed()
	}

	return domain.SpawnFailed(zerr.With(zerr.Wrap(p.err, domain.ErrSpawnFailed.Error()), "command", spec.Invocation))
}
