package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAlreadyClosed indicates that a fiscal year has already been closed for an account.
var ErrAlreadyClosed = errors.New("fiscal year already closed")

// ErrConflict indicates a concurrent write lost a race against a uniqueness constraint.
// Callers reconciling business records treat it as "already reconciled".
var ErrConflict = errors.New("concurrency conflict")

// ErrCalculationPrecondition indicates a calculation was invoked without required input data.
var ErrCalculationPrecondition = errors.New("calculation precondition not met")

// ErrInternal indicates an unexpected failure in the storage layer or below.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code and a message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInternal) match 5xx AppErrors that wrap driver errors.
func (e *AppError) Is(target error) bool {
	return target == ErrInternal && e.Code >= 500
}
