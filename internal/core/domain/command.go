package domain

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// DefaultShell is the shell used for wrapped commands and teardown commands.
const DefaultShell = "/bin/sh"

// TeardownPIDEnv names the environment variable carrying the timed-out child's process id.
const TeardownPIDEnv = "CMD_PID"

// CommandSpec describes what to run when a watched path changes.
// It is built once from configuration and passed by value.
type CommandSpec struct {
	// Invocation is the raw command text.
	Invocation string
	// ShellWrap runs Invocation through DefaultShell instead of splitting it on whitespace.
	ShellWrap bool
	// Timeout bounds the run time of the command. Zero waits indefinitely.
	Timeout time.Duration
	// Teardown is a shell command run against a timed-out child instead of signalling it.
	Teardown string
	// RunOnce terminates the program after the first completed invocation.
	RunOnce bool
	// PTY attaches the command to a pseudo-terminal.
	PTY bool
}

// Argv returns the program and arguments to execute.
// Non-wrapped invocations are split on whitespace, so arguments containing
// spaces can only be expressed through ShellWrap.
func (c CommandSpec) Argv() []string {
	if c.ShellWrap {
		return []string{DefaultShell, "-c", c.Invocation}
	}
	return strings.Fields(c.Invocation)
}

// Validate checks the spec for configuration errors.
func (c CommandSpec) Validate() error {
	if strings.TrimSpace(c.Invocation) == "" {
		return ErrMissingCommand
	}
	if c.Teardown != "" && c.Timeout <= 0 {
		return zerr.With(ErrTeardownWithoutTimeout, "teardown", c.Teardown)
	}
	return nil
}

// String renders the spec for the startup banner.
func (c CommandSpec) String() string {
	opts := []string{fmt.Sprintf("command[%s]", c.Invocation)}

	if c.Timeout > 0 {
		if c.Teardown != "" {
			opts = append(opts, fmt.Sprintf("teardown[%s]", c.Teardown))
		}
		opts = append(opts, fmt.Sprintf("timeout_ms[%d]", c.Timeout.Milliseconds()))
	}
	if c.ShellWrap {
		opts = append(opts, "wrap_shell")
	}
	if c.RunOnce {
		opts = append(opts, "once")
	}
	if c.PTY {
		opts = append(opts, "pty")
	}

	return strings.Join(opts, " ")
}
