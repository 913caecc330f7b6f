//go:build !unix

package shell

import (
	"os"
	"os/exec"
	"syscall"
)

func setProcessGroup(_ *exec.Cmd) {}

// signalGroup kills p. Process groups and graceful signals are not available.
func signalGroup(p *os.Process, _ syscall.Signal) error {
	return p.Kill()
}
