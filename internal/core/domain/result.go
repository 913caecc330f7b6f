package domain

import "fmt"

// Outcome tags the kind of a RunResult.
type Outcome uint8

const (
	// OutcomeExited means the child exited on its own and reported an exit code.
	OutcomeExited Outcome = iota
	// OutcomeKilled means the child was terminated by a signal or by timeout escalation.
	OutcomeKilled
	// OutcomeSpawnError means no child process could be created.
	OutcomeSpawnError
)

// RunResult is the normalised outcome of one supervised execution.
type RunResult struct {
	Outcome Outcome
	// Code is the exit code; only meaningful for OutcomeExited.
	Code int
	// Err is the spawn failure; only set for OutcomeSpawnError.
	Err error
}

// Exited returns a result for a child that exited with code.
func Exited(code int) RunResult {
	return RunResult{Outcome: OutcomeExited, Code: code}
}

// Killed returns a result for a child that was terminated.
func Killed() RunResult {
	return RunResult{Outcome: OutcomeKilled}
}

// SpawnFailed returns a result for a child that could not be started.
func SpawnFailed(err error) RunResult {
	return RunResult{Outcome: OutcomeSpawnError, Err: err}
}

// ExitCode is the code the program terminates with in once mode.
func (r RunResult) ExitCode() int {
	if r.Outcome == OutcomeExited {
		return r.Code
	}
	return 1
}

// String renders the result the way it is reported in run log lines.
func (r RunResult) String() string {
	switch r.Outcome {
	case OutcomeExited:
		return fmt.Sprintf("exit code %d", r.Code)
	case OutcomeKilled:
		return "terminated"
	default:
		return "spawn error"
	}
}
