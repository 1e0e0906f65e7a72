// error.go defines the errors returned by the checks.

package guard

import (
	"fmt"
)

// ErrAssertionFailed is the default failure: the condition is not met.
type ErrAssertionFailed struct {
	Message string
}

func (e ErrAssertionFailed) Error() string {
	return e.Message
}

func (ErrAssertionFailed) FromMessage(message string) (ErrAssertionFailed, error) {
	return ErrAssertionFailed{Message: message}, nil
}

// ErrConstruction is returned when the requested failure kind could not be built.
// This signals a bug in the failure kind, not an unmet condition.
type ErrConstruction struct {
	Kind string
	Err  error
}

func (e ErrConstruction) Error() string {
	return fmt.Sprintf("unable to construct a failure of kind %s: %v", e.Kind, e.Err)
}

func (e ErrConstruction) Unwrap() error {
	return e.Err
}

type ErrNilCondition struct{}

func (ErrNilCondition) Error() string {
	return "the condition is nil"
}

// ErrNilFailure is wrapped into ErrConstruction when FromMessage returned a nil failure.
type ErrNilFailure struct{}

func (ErrNilFailure) Error() string {
	return "FromMessage returned a nil failure"
}
