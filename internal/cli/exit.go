package cli

import (
	"errors"
	"fmt"
)

// Process exit codes. A run that finds no valid data still exits 0.
const (
	ExitCodeOK            = 0
	ExitCodeUnexpected    = 1
	ExitCodeNotFound      = 2
	ExitCodeMissingColumn = 3
	ExitCodeConfig        = 4
)

// ExitError carries the exit code for an aborted run. Its diagnostic line has
// already been printed by the time it reaches main.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps err to a process exit code: 0 for nil, the carried code for
// an *ExitError anywhere in the chain, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCodeUnexpected
}
