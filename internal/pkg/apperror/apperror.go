package apperror

import "fmt"

// ValidationError covers malformed input and business rule violations
// (e.g. an invoice total that does not match the sum of its items).
// It maps to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IntegrityError is raised when an operation references an entity id that
// does not exist (missing invoice, missing sender/client address). It is a
// distinct kind so mutating services can translate it to a 400 while letting
// storage failures propagate as-is.
type IntegrityError struct {
	Entity string
	Id     uint
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Entity, e.Id)
}

func NewIntegrity(entity string, id uint) *IntegrityError {
	return &IntegrityError{Entity: entity, Id: id}
}

// NotFoundError maps to a 404 on read paths.
type NotFoundError struct {
	Entity string
	Id     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.Id)
}

func NewNotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, Id: id}
}
