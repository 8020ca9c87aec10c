package constants

import "fmt"

// Constant is a sentinel error type that supports wrapping.
type Constant string

func (e Constant) Error() string { return string(e) }

// Wrap returns a new error wrapping err with additional context.
func (e Constant) Wrap(err error, args ...any) error {
	msg := string(e)
	if len(args) > 0 {
		msg += ": " + fmt.Sprint(args...)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w", msg, e)
}

const (
	ErrMissingSchema Constant = "missing schema file"
	ErrLoadSchema    Constant = "failed to load schema"
	ErrScopeFlag     Constant = "invalid scope flag"
	ErrConfig        Constant = "configuration is invalid"
)
