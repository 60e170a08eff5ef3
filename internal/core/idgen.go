package core

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh random (version 4) identifier for a project or task.
func NewID() uuid.UUID {
	return uuid.New()
}

// ParseID parses the canonical string form of an identifier.
func ParseID(text string) (uuid.UUID, error) {
	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %v", ErrInvalidIdentifier, text, err)
	}
	return id, nil
}
