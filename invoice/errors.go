package invoice

import "fmt"

// ValidationError reports missing or non-numeric user input. No state is
// mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RenderError reports an unrecoverable failure while producing document
// bytes. A missing logo is not a render error; it is skipped silently.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering document: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// IOFailure reports a failed write of an output file. The invoice sequence
// number is never advanced when one is returned.
type IOFailure struct {
	Op   string
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error { return e.Err }
