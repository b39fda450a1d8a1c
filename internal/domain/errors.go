package domain

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports a caller-visible input rejection, such as a
// blank book title or a rating outside the 0-5 scale.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// ComputationError wraps an unexpected internal failure during a ranking
// pass that could not be degraded to a neutral default.
type ComputationError struct {
	Msg string
	Err error
}

func (e *ComputationError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

func IsComputationError(err error) bool {
	var target *ComputationError
	return errors.As(err, &target)
}
