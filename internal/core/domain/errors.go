// internal/core/domain/errors.go
package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or semantically invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// NotFoundError reports a missing record.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// AlreadyDeletedError reports a delete against a record that is
// already disabled. The guard prevents double restoration of stock.
type AlreadyDeletedError struct {
	Resource string
	ID       string
}

func NewAlreadyDeletedError(resource, id string) *AlreadyDeletedError {
	return &AlreadyDeletedError{Resource: resource, ID: id}
}

func (e *AlreadyDeletedError) Error() string {
	return fmt.Sprintf("%s %s is already deleted", e.Resource, e.ID)
}

// DuplicateError reports a uniqueness conflict, e.g. a pallet name or
// registration email that already exists.
type DuplicateError struct {
	Resource string
	Field    string
	Value    string
}

func NewDuplicateError(resource, field, value string) *DuplicateError {
	return &DuplicateError{Resource: resource, Field: field, Value: value}
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Resource, e.Field, e.Value)
}

// InsufficientStockError carries every unsatisfiable material kind for
// one order, not just the first.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func NewInsufficientStockError(shortfalls []Shortfall) *InsufficientStockError {
	return &InsufficientStockError{Shortfalls: shortfalls}
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, s.String())
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

// InvariantViolationError reports a state the system must never reach,
// e.g. a conditional stock update that matched no row because a
// concurrent writer consumed the stock after the locked read.
type InvariantViolationError struct {
	Message string
}

func NewInvariantViolationError(message string) *InvariantViolationError {
	return &InvariantViolationError{Message: message}
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Message
}

// UnauthorizedError reports a failed or missing authentication.
type UnauthorizedError struct {
	Message string
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// StorageError wraps infrastructure failures so callers can
// distinguish them from domain outcomes.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
