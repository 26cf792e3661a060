package recache

import (
	"fmt"
	"strings"
)

// BuildError wraps a failure from Build with a human-readable message,
// modeled on the teacher's CommandError: a message plus an optional
// cause, unwrappable with errors.Is/errors.As.
type BuildError struct {
	message string
	cause   error
}

func (e *BuildError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, e.message)
	if e.cause != nil {
		fmt.Fprint(&msg, ": ", e.cause)
	}
	return msg.String()
}

func (e *BuildError) Unwrap() error {
	return e.cause
}

func newBuildError(message string, cause error) *BuildError {
	return &BuildError{message: message, cause: cause}
}
