package domain

import "strconv"

// ExitError asks the top level to terminate the process with Code.
// It carries no message of its own; whatever had to be reported was logged already.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string { return "exit " + strconv.Itoa(e.Code) }
