package journal

import "fmt"

// UsageError reports malformed, missing, or out-of-range arguments
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// NewUsageError formats a UsageError
func NewUsageError(format string, a ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, a...)}
}

// IOError wraps a failed write to the output sink
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// InternalError marks a calendar invariant that input validation should have ruled out
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
