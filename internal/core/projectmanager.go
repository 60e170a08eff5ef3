// Package core contains the business logic for taskmanager: identifiers,
// the project/task domain model, configuration, command execution and the
// per-invocation runtime that ties them to storage.
package core

import (
	"sort"

	"github.com/google/uuid"
	"github.com/valter-silva-au/taskmanager/pkg/models"
)

// ProjectPatch lists the project fields an update should change. Nil fields
// are left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
}

// TaskPatch lists the task fields an update should change. Nil fields are
// left untouched.
type TaskPatch struct {
	Name        *string
	Description *string
}

// ProjectManager defines the mutations and queries on the in-memory project
// collection.
type ProjectManager interface {
	CreateProject(name, description string) uuid.UUID
	DestroyProject(id uuid.UUID) error
	UpdateProject(id uuid.UUID, patch ProjectPatch) error
	GetProject(id uuid.UUID) (*models.Project, error)
	ListProjects() []models.Project

	CreateTask(projectID uuid.UUID, name, description string) (uuid.UUID, error)
	DestroyTask(projectID, taskID uuid.UUID) error
	UpdateTask(projectID, taskID uuid.UUID, patch TaskPatch) error
	ListTasks(projectID uuid.UUID) ([]models.Task, error)

	Data() *models.ProjectData
}

type projectManager struct {
	data *models.ProjectData
}

// NewProjectManager wraps a loaded collection. A nil collection is treated
// as empty.
func NewProjectManager(data *models.ProjectData) ProjectManager {
	if data == nil {
		data = models.NewProjectData()
	}
	if data.Projects == nil {
		data.Projects = make(map[uuid.UUID]*models.Project)
	}
	return &projectManager{data: data}
}

func (pm *projectManager) Data() *models.ProjectData {
	return pm.data
}

func (pm *projectManager) CreateProject(name, description string) uuid.UUID {
	p := &models.Project{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Tasks:       make(map[uuid.UUID]models.Task),
	}
	pm.data.Projects[p.ID] = p
	return p.ID
}

func (pm *projectManager) DestroyProject(id uuid.UUID) error {
	if _, err := pm.project(id); err != nil {
		return err
	}
	delete(pm.data.Projects, id)
	return nil
}

func (pm *projectManager) UpdateProject(id uuid.UUID, patch ProjectPatch) error {
	p, err := pm.project(id)
	if err != nil {
		return err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	return nil
}

func (pm *projectManager) GetProject(id uuid.UUID) (*models.Project, error) {
	p, err := pm.project(id)
	if err != nil {
		return nil, err
	}
	cp := *p
	cp.Tasks = make(map[uuid.UUID]models.Task, len(p.Tasks))
	for k, t := range p.Tasks {
		cp.Tasks[k] = t
	}
	return &cp, nil
}

func (pm *projectManager) ListProjects() []models.Project {
	projects := make([]models.Project, 0, len(pm.data.Projects))
	for _, p := range pm.data.Projects {
		projects = append(projects, *p)
	}
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Name != projects[j].Name {
			return projects[i].Name < projects[j].Name
		}
		return projects[i].ID.String() < projects[j].ID.String()
	})
	return projects
}

func (pm *projectManager) CreateTask(projectID uuid.UUID, name, description string) (uuid.UUID, error) {
	p, err := pm.project(projectID)
	if err != nil {
		return uuid.Nil, err
	}
	t := newTask(name, description, "default", "todo")
	if p.Tasks == nil {
		p.Tasks = make(map[uuid.UUID]models.Task)
	}
	p.Tasks[t.ID] = t
	return t.ID, nil
}

func (pm *projectManager) DestroyTask(projectID, taskID uuid.UUID) error {
	p, err := pm.project(projectID)
	if err != nil {
		return err
	}
	if _, ok := p.Tasks[taskID]; !ok {
		return &NotFoundError{Entity: EntityTask, ID: taskID.String()}
	}
	delete(p.Tasks, taskID)
	return nil
}

func (pm *projectManager) UpdateTask(projectID, taskID uuid.UUID, patch TaskPatch) error {
	p, err := pm.project(projectID)
	if err != nil {
		return err
	}
	t, ok := p.Tasks[taskID]
	if !ok {
		return &NotFoundError{Entity: EntityTask, ID: taskID.String()}
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	p.Tasks[taskID] = t
	return nil
}

func (pm *projectManager) ListTasks(projectID uuid.UUID) ([]models.Task, error) {
	p, err := pm.project(projectID)
	if err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Name != tasks[j].Name {
			return tasks[i].Name < tasks[j].Name
		}
		return tasks[i].ID.String() < tasks[j].ID.String()
	})
	return tasks, nil
}

func (pm *projectManager) project(id uuid.UUID) (*models.Project, error) {
	p, ok := pm.data.Projects[id]
	if !ok {
		return nil, &NotFoundError{Entity: EntityProject, ID: id.String()}
	}
	return p, nil
}

// newTask builds a task with a fresh ID. An unrecognised type falls back to
// TaskTypeDefault and an unrecognised status falls back to StatusTodo.
func newTask(name, description, taskType, status string) models.Task {
	st := models.ParseTaskStatus(status)
	if st == models.StatusDefault {
		st = models.StatusTodo
	}
	return models.Task{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Type:        models.ParseTaskType(taskType),
		Status:      st,
	}
}
