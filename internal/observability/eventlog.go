package observability

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"
)

// Event is one recorded mutation of the project collection.
type Event struct {
	Time      time.Time      `json:"time"`
	Type      string         `json:"type"` // e.g. "project.created", "task.updated"
	ProjectID string         `json:"project_id,omitempty"`
	TaskID    string         `json:"task_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// EventFilter selects events when reading. Zero fields match everything.
// Limit keeps only the most recent matches.
type EventFilter struct {
	Since     *time.Time
	Type      string
	ProjectID string
	TaskID    string
	Limit     int
}

// EventLog appends events and reads them back.
type EventLog interface {
	Write(event Event) error
	Read(filter EventFilter) ([]Event, error)
	Close() error
}

type jsonlEventLog struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *json.Encoder
}

// NewJSONLEventLog opens the JSON Lines file at path for appending, creating
// it if needed. Each event is one line.
func NewJSONLEventLog(path string) (EventLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	return &jsonlEventLog{path: path, f: f, enc: json.NewEncoder(f)}, nil
}

func (l *jsonlEventLog) Write(event Event) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return errors.New("event log closed")
	}
	// Encode terminates the value with a newline.
	if err := l.enc.Encode(event); err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	return nil
}

// Read returns the matching events in the order they were written. Lines
// that do not decode are skipped.
func (l *jsonlEventLog) Read(filter EventFilter) ([]Event, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening event log for reading: %w", err)
	}
	defer func() { _ = f.Close() }()

	events, err := scanEvents(f, filter.matches)
	if err != nil {
		return nil, err
	}
	if filter.Limit > 0 && len(events) > filter.Limit {
		events = events[len(events)-filter.Limit:]
	}
	return events, nil
}

func scanEvents(r io.Reader, keep func(Event) bool) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Event
		if json.Unmarshal(line, &e) != nil {
			continue
		}
		if keep(e) {
			events = append(events, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning event log: %w", err)
	}
	return events, nil
}

// Close is idempotent.
func (l *jsonlEventLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f, l.enc = nil, nil
	if err != nil {
		return fmt.Errorf("closing event log: %w", err)
	}
	return nil
}

func (f EventFilter) matches(e Event) bool {
	switch {
	case f.Since != nil && e.Time.Before(*f.Since):
		return false
	case f.Type != "" && e.Type != f.Type:
		return false
	case f.ProjectID != "" && e.ProjectID != f.ProjectID:
		return false
	case f.TaskID != "" && e.TaskID != f.TaskID:
		return false
	}
	return true
}
