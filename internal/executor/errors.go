package executor

import "fmt"

// CommandError represents a report query invocation that failed.
type CommandError struct {
	CommandName   string
	CommandLine   string
	ExitCode      int
	OriginalError error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	return fmt.Sprintf("query '%s' failed: %v\n  Command: %s\n  Exit Code: %d",
		e.CommandName, e.OriginalError, e.CommandLine, e.ExitCode)
}

// Unwrap returns the original error for error unwrapping
func (e *CommandError) Unwrap() error {
	return e.OriginalError
}
