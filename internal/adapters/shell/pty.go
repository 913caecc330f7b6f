package shell

import (
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
)

// ptyDrainTimeout bounds how long output is drained after the child exits. A background
// grandchild may keep the terminal open indefinitely.
const ptyDrainTimeout = 500 * time.Millisecond

// startPTY spawns argv attached to a new pseudo-terminal whose output is copied to out.
// The child becomes a session leader, so its pid is also its process group id.
func startPTY(argv []string, out io.Writer) (*process, error) {
	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // user provided command

	var size *pty.Winsize
	if ws, err := pty.GetsizeFull(os.Stdin); err == nil {
		size = ws
	}

	ptmx, err := pty.StartWithSize(cmd, size)
	if err != nil {
		return nil, err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		_, _ = io.Copy(out, ptmx)
	}()

	proc := newProcess(cmd)
	go func() {
		proc.err = cmd.Wait()

		drain := time.NewTimer(ptyDrainTimeout)
		select {
		case <-ioDone:
		case <-drain.C:
		}
		drain.Stop()

		_ = ptmx.Close()
		close(proc.exited)
	}()
	return proc, nil
}
