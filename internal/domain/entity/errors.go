package entity

import (
	"errors"
	"strings"
)

var (
	// ErrRecordNotFound is returned by every repository when an id does not resolve.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidAction marks an operation attempted from the wrong state.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidObject marks an entity whose fields violate its current requirements.
	ErrInvalidObject = errors.New("invalid object")
)

// InvalidObjectError lists every violated constraint, not just the first one.
type InvalidObjectError struct {
	Kind       string
	Violations []string
}

func (e *InvalidObjectError) Error() string {
	return e.Kind + " is invalid: " + strings.Join(e.Violations, "; ")
}

func (e *InvalidObjectError) Is(target error) bool { return target == ErrInvalidObject }

// Violations extracts the violation list from err, or nil when err is not an InvalidObjectError.
func Violations(err error) []string {
	var ioe *InvalidObjectError
	if errors.As(err, &ioe) {
		return ioe.Violations
	}
	return nil
}

// ActionError carries a human-readable reason and unwraps to ErrInvalidAction.
type ActionError struct{ Reason string }

func (e *ActionError) Error() string { return e.Reason }

func (e *ActionError) Unwrap() error { return ErrInvalidAction }

// InvalidAction builds an ActionError.
func InvalidAction(reason string) error { return &ActionError{Reason: reason} }
