package db

import (
	"errors"
	"fmt"
)

// Domain failures surfaced by the repos. Controllers translate these to HTTP
// statuses; anything else is an unexpected storage error.
var (
	ErrUserInactive    = errors.New("user is not active")
	ErrBookUnavailable = errors.New("book has no available copies")
)

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func notFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a unique-field collision caught by the application
// level guard, naming the field and the offending value.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s '%s' already exists", e.Entity, e.Field, e.Value)
}

func conflict(entity, field, value string) error {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}
