package internal

import "github.com/pkg/errors"

// Threading errors up and down the sweep and the triangulation would add a ton
// of complexity to the code. Instead, we use panics for broken preconditions,
// and the public API recovers to convert to an error.

// TessellateError wraps the error raised by fatalf. It is a distinct type so
// that runtime errors (index out of range and friends) still crash loudly.
type TessellateError struct {
	error
}

func (e TessellateError) Unwrap() error {
	return e.error
}

// Panic with a TessellateError.
func fatalf(format string, args ...interface{}) {
	panic(TessellateError{errors.Errorf(format, args...)})
}

// Convert a recovered TessellateError back into an error. Any other panic is
// re-raised, since it is a real bug rather than bad input.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if tessellateError, ok := r.(TessellateError); ok {
			return tessellateError
		}
		panic(r)
	}
	return nil
}
