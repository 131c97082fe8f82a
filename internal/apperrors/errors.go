package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is a member of the organization but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller could not be identified.
var ErrUnauthorized = errors.New("unauthorized")

// ErrIntegrity indicates derived figures that should agree do not (e.g. assets != liabilities + equity).
var ErrIntegrity = errors.New("data integrity warning")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// ValidationError describes a single malformed input record rejected at the boundary.
// Ref identifies the offending record (line id, entry id, request field).
type ValidationError struct {
	Ref    string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation error: %s %s: %s", e.Ref, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match a *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError.
func NewValidationError(ref, field, reason string) *ValidationError {
	return &ValidationError{Ref: ref, Field: field, Reason: reason}
}

// IntegrityWarning reports a non-fatal mismatch between two figures that should be equal.
type IntegrityWarning struct {
	Check      string
	Expected   decimal.Decimal
	Actual     decimal.Decimal
	Difference decimal.Decimal
}

func (w *IntegrityWarning) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s (difference %s)",
		w.Check, w.Expected.String(), w.Actual.String(), w.Difference.String())
}

// Is lets errors.Is(err, ErrIntegrity) match an *IntegrityWarning.
func (w *IntegrityWarning) Is(target error) bool {
	return target == ErrIntegrity
}
