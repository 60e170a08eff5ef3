package core

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/valter-silva-au/taskmanager/pkg/models"
)

// ConfigKeyPersistenceMode is the only configuration key currently recognised.
const ConfigKeyPersistenceMode = "persistence_mode"

// Result is what a command produced, for the caller to render.
type Result struct {
	Message string

	// ProjectID and TaskID identify the entity a command created or touched.
	ProjectID uuid.UUID
	TaskID    uuid.UUID

	Projects []models.Project
	Tasks    []models.Task

	ConfigKey   string
	ConfigValue string
}

// Execute performs exactly one command against pm. cfg is consulted by
// the config commands only. Identifier arguments are parsed here, so a
// malformed id fails with ErrInvalidIdentifier before anything changes.
func Execute(pm ProjectManager, cfg *models.Config, cmd Command) (*Result, error) {
	switch c := cmd.(type) {
	case CreateProject:
		id := pm.CreateProject(c.Name, c.Description)
		return &Result{
			Message:   fmt.Sprintf("Created project %s", id),
			ProjectID: id,
		}, nil

	case DestroyProject:
		id, err := ParseID(c.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("destroying project: %w", err)
		}
		if err := pm.DestroyProject(id); err != nil {
			return nil, fmt.Errorf("destroying project: %w", err)
		}
		return &Result{Message: fmt.Sprintf("Destroyed project %s", id), ProjectID: id}, nil

	case UpdateProject:
		id, err := ParseID(c.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("updating project: %w", err)
		}
		if err := pm.UpdateProject(id, ProjectPatch{Name: c.Name, Description: c.Description}); err != nil {
			return nil, fmt.Errorf("updating project: %w", err)
		}
		return &Result{Message: fmt.Sprintf("Updated project %s", id), ProjectID: id}, nil

	case ListProjects:
		return &Result{Projects: pm.ListProjects()}, nil

	case CreateTask:
		projectID, err := ParseID(c.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("creating task: %w", err)
		}
		taskID, err := pm.CreateTask(projectID, c.Name, c.Description)
		if err != nil {
			return nil, fmt.Errorf("creating task: %w", err)
		}
		return &Result{
			Message:   fmt.Sprintf("Created task %s in project %s", taskID, projectID),
			ProjectID: projectID,
			TaskID:    taskID,
		}, nil

	case DestroyTask:
		projectID, taskID, err := parseTaskRef(c.ProjectID, c.TaskID)
		if err != nil {
			return nil, fmt.Errorf("destroying task: %w", err)
		}
		if err := pm.DestroyTask(projectID, taskID); err != nil {
			return nil, fmt.Errorf("destroying task: %w", err)
		}
		return &Result{
			Message:   fmt.Sprintf("Destroyed task %s", taskID),
			ProjectID: projectID,
			TaskID:    taskID,
		}, nil

	case UpdateTask:
		projectID, taskID, err := parseTaskRef(c.ProjectID, c.TaskID)
		if err != nil {
			return nil, fmt.Errorf("updating task: %w", err)
		}
		if err := pm.UpdateTask(projectID, taskID, TaskPatch{Name: c.Name, Description: c.Description}); err != nil {
			return nil, fmt.Errorf("updating task: %w", err)
		}
		return &Result{
			Message:   fmt.Sprintf("Updated task %s", taskID),
			ProjectID: projectID,
			TaskID:    taskID,
		}, nil

	case ListTasks:
		projectID, err := ParseID(c.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("listing tasks: %w", err)
		}
		tasks, err := pm.ListTasks(projectID)
		if err != nil {
			return nil, fmt.Errorf("listing tasks: %w", err)
		}
		return &Result{ProjectID: projectID, Tasks: tasks}, nil

	case ConfigGet:
		if c.Key != ConfigKeyPersistenceMode {
			return &Result{Message: "Invalid config key", ConfigKey: c.Key}, nil
		}
		mode := models.DefaultConfig().PersistenceMode
		if cfg != nil {
			mode = cfg.PersistenceMode
		}
		return &Result{
			Message:     fmt.Sprintf("Persistence Mode: %s", mode),
			ConfigKey:   c.Key,
			ConfigValue: string(mode),
		}, nil

	case ConfigSet:
		// Acknowledged only; configuration writes are not implemented.
		return &Result{
			Message:     fmt.Sprintf("Setting config key: %s to value: %s", c.Key, c.Value),
			ConfigKey:   c.Key,
			ConfigValue: c.Value,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported command %T", cmd)
	}
}

func parseTaskRef(projectID, taskID string) (uuid.UUID, uuid.UUID, error) {
	pid, err := ParseID(projectID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	tid, err := ParseID(taskID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return pid, tid, nil
}
