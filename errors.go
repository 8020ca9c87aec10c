package scopenv

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidSource     = errors.New("source is nil")
	ErrScopeUndetermined = errors.New("scope could not be determined")
	ErrMissing           = errors.New("required variable is missing")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrInvalidBoolean    = errors.New("invalid boolean")
	ErrValidation        = errors.New("validation failed")
	ErrBind              = errors.New("bind error")

	// ErrRejected is returned by a check that refuses a value without
	// giving a reason. See Predicate.
	ErrRejected = errors.New("value rejected")
)

// Error wraps configuration errors with the lookup key they refer to.
// Key is the effective (possibly scope-prefixed) key read from the source.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("scopenv: %v", e.Err)
	}
	return fmt.Sprintf("scopenv: %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// validationError is the message a failed check produces. A check that
// returns ErrRejected gets the generic message; anything else keeps its text.
func validationError(key string, err error) error {
	if errors.Is(err, ErrRejected) {
		return &Error{Key: key, Err: ErrValidation}
	}
	return &Error{Key: key, Err: fmt.Errorf("%w: %s", ErrValidation, err.Error())}
}
