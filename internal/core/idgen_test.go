package core

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewID_Version4(t *testing.T) {
	id := NewID()
	if id == uuid.Nil {
		t.Fatal("NewID returned the nil UUID")
	}
	if id.Version() != 4 {
		t.Errorf("Version() = %d, want 4", id.Version())
	}
}

func TestParseID_RoundTrip(t *testing.T) {
	id := NewID()
	got, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("ParseID(%q): %v", id, err)
	}
	if got != id {
		t.Errorf("ParseID = %s, want %s", got, id)
	}
}

func TestParseID_Invalid(t *testing.T) {
	for _, text := range []string{"", "not-a-uuid", "1234", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseID(text)
			if !errors.Is(err, ErrInvalidIdentifier) {
				t.Errorf("ParseID(%q) err = %v, want ErrInvalidIdentifier", text, err)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Entity: EntityTask, ID: "abc"})
	if err.Error() != "task abc not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if errors.Is(err, ErrCorruptStore) {
		t.Error("NotFoundError should not match ErrCorruptStore")
	}
}
