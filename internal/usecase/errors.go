package usecase

import "fmt"

// ErrorCode classifies a failed responder or grade-book operation.
type ErrorCode string

const (
	ErrorInvalidInput ErrorCode = "INVALID_INPUT"
	ErrorValidation   ErrorCode = "VALIDATION_ERROR"
	ErrorEmptyState   ErrorCode = "EMPTY_STATE"
	ErrorInternal     ErrorCode = "INTERNAL_ERROR"
)

// Error is returned by the usecase services. Reason is a snake_case detail
// such as "capacity_reached" that callers may branch on.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
