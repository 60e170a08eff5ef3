package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier is returned when an identifier string cannot be parsed.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrNotFound is returned when a referenced project or task does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCorruptStore is returned when a persisted file exists but cannot be parsed.
	ErrCorruptStore = errors.New("corrupt store")
	// ErrPersistenceFailure is returned on I/O errors reading or writing state.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Entity names the kind of record a NotFoundError refers to.
type Entity string

const (
	EntityProject Entity = "project"
	EntityTask    Entity = "task"
)

// NotFoundError reports which entity was missing. It matches ErrNotFound
// under errors.Is.
type NotFoundError struct {
	Entity Entity
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
