package models

import (
	"fmt"

	"github.com/google/uuid"
)

// TaskType categorises the kind of work a task represents.
type TaskType string

const (
	TaskTypeDefault TaskType = "Default"
)

// ParseTaskType maps user input to a TaskType. It never fails; Default is
// currently the only type, so every input yields it.
func ParseTaskType(string) TaskType {
	return TaskTypeDefault
}

// UnmarshalText accepts only the stored spelling of a known type, so a
// hand-edited file with an unknown type fails to load.
func (t *TaskType) UnmarshalText(text []byte) error {
	switch v := TaskType(text); v {
	case TaskTypeDefault:
		*t = v
		return nil
	default:
		return fmt.Errorf("unknown task type %q", text)
	}
}

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusDefault    TaskStatus = "Default"
	StatusTodo       TaskStatus = "Todo"
	StatusInProgress TaskStatus = "InProgress"
	StatusComplete   TaskStatus = "Complete"
)

// ParseTaskStatus maps user input ("todo", "in_progress", "complete") to a
// TaskStatus. Unrecognised input yields StatusDefault.
func ParseTaskStatus(s string) TaskStatus {
	switch s {
	case "todo":
		return StatusTodo
	case "in_progress":
		return StatusInProgress
	case "complete":
		return StatusComplete
	default:
		return StatusDefault
	}
}

// UnmarshalText accepts only the stored spellings ("Default", "Todo",
// "InProgress", "Complete").
func (s *TaskStatus) UnmarshalText(text []byte) error {
	switch v := TaskStatus(text); v {
	case StatusDefault, StatusTodo, StatusInProgress, StatusComplete:
		*s = v
		return nil
	default:
		return fmt.Errorf("unknown task status %q", text)
	}
}

// Task is a unit of work owned by exactly one Project.
type Task struct {
	ID          uuid.UUID  `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Type        TaskType   `json:"type_" yaml:"type_"`
	Status      TaskStatus `json:"status" yaml:"status"`
}

// Project is a named collection of tasks.
type Project struct {
	ID          uuid.UUID          `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Tasks       map[uuid.UUID]Task `json:"tasks" yaml:"tasks"`
}

// ProjectData is the aggregate root holding every project, keyed by ID.
// It is persisted as a single JSON object mapping ID string to Project.
type ProjectData struct {
	Projects map[uuid.UUID]*Project
}

// NewProjectData returns an empty collection.
func NewProjectData() *ProjectData {
	return &ProjectData{Projects: make(map[uuid.UUID]*Project)}
}
