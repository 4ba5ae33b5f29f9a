package root

import (
	"errors"
	"fmt"
)

const exitCodeInvalidInvocation = 1

// ErrMissingArgument is the cause when N was not supplied at all.
var ErrMissingArgument = errors.New("missing argument N")

// InvalidInvocationError covers both a missing and a malformed N. The user
// sees the same usage text either way; Err keeps the cause for callers.
type InvalidInvocationError struct {
	Program string
	Err     error
}

func (e *InvalidInvocationError) Error() string {
	return fmt.Sprintf("invalid invocation: %v", e.Err)
}

func (e *InvalidInvocationError) Unwrap() error { return e.Err }
func (e *InvalidInvocationError) ExitCode() int { return exitCodeInvalidInvocation }

// Usage returns the text printed to stderr for this error.
func (e *InvalidInvocationError) Usage() string { return Usage(e.Program) }

// Usage formats the usage message, trailing blank line included.
func Usage(program string) string {
	return fmt.Sprintf("Usage: %s N, where N is the number you want to get the factorial of.\n\n", program)
}
