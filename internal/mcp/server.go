// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the project and task operations as tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/valter-silva-au/taskmanager/internal/core"
	"github.com/valter-silva-au/taskmanager/pkg/models"
)

// Runtime executes one command. *core.Runtime satisfies it.
type Runtime interface {
	Execute(cmd core.Command) (*core.Result, error)
}

// Server wraps a Runtime and exposes it as MCP tools. Tool calls are
// serialised: the runtime is single-writer.
type Server struct {
	server *gomcp.Server
	rt     Runtime
	mu     sync.Mutex
}

// NewServer creates an MCP server around rt.
func NewServer(rt Runtime, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{rt: rt}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "taskmanager", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves on stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type listProjectsInput struct{}

type projectOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TaskCount   int    `json:"task_count"`
}

type listProjectsOutput struct {
	Projects []projectOutput `json:"projects"`
	Count    int             `json:"count"`
}

type createProjectInput struct {
	Name        string `json:"name" jsonschema:"the project name"`
	Description string `json:"description,omitempty" jsonschema:"an optional project description"`
}

type updateProjectInput struct {
	ProjectID   string  `json:"project_id" jsonschema:"the project identifier"`
	Name        *string `json:"name,omitempty" jsonschema:"the new name; omit to keep the current one"`
	Description *string `json:"description,omitempty" jsonschema:"the new description; omit to keep the current one"`
}

type projectRefInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project identifier"`
}

type taskOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}

type listTasksOutput struct {
	ProjectID string       `json:"project_id"`
	Tasks     []taskOutput `json:"tasks"`
	Count     int          `json:"count"`
}

type createTaskInput struct {
	ProjectID   string `json:"project_id" jsonschema:"the owning project identifier"`
	Name        string `json:"name" jsonschema:"the task name"`
	Description string `json:"description,omitempty" jsonschema:"an optional task description"`
}

type updateTaskInput struct {
	ProjectID   string  `json:"project_id" jsonschema:"the owning project identifier"`
	TaskID      string  `json:"task_id" jsonschema:"the task identifier"`
	Name        *string `json:"name,omitempty" jsonschema:"the new name; omit to keep the current one"`
	Description *string `json:"description,omitempty" jsonschema:"the new description; omit to keep the current one"`
}

type taskRefInput struct {
	ProjectID string `json:"project_id" jsonschema:"the owning project identifier"`
	TaskID    string `json:"task_id" jsonschema:"the task identifier"`
}

type mutationOutput struct {
	Message   string `json:"message"`
	ProjectID string `json:"project_id,omitempty"`
	TaskID    string `json:"task_id,omitempty"`
}

type getConfigInput struct {
	Key string `json:"key" jsonschema:"the configuration key (persistence_mode)"`
}

type configOutput struct {
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_projects",
		Description: "List every project with its ID, name, description and task count.",
	}, s.handleListProjects)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "create_project",
		Description: "Create a project and return its ID.",
	}, s.handleCreateProject)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "update_project",
		Description: "Change a project's name and/or description. Omitted fields are left unchanged.",
	}, s.handleUpdateProject)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "destroy_project",
		Description: "Destroy a project together with all of its tasks.",
	}, s.handleDestroyProject)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List the tasks of a project with their type and status.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "create_task",
		Description: "Create a task (status todo) in a project and return its ID.",
	}, s.handleCreateTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "update_task",
		Description: "Change a task's name and/or description. Omitted fields are left unchanged.",
	}, s.handleUpdateTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "destroy_task",
		Description: "Destroy one task of a project.",
	}, s.handleDestroyTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_config",
		Description: "Read a configuration value. The only key is persistence_mode.",
	}, s.handleGetConfig)
}

// --- Tool handlers ---

func (s *Server) handleListProjects(_ context.Context, _ *gomcp.CallToolRequest, _ listProjectsInput) (*gomcp.CallToolResult, listProjectsOutput, error) {
	empty := listProjectsOutput{Projects: []projectOutput{}}
	res, err := s.execute(core.ListProjects{})
	if err != nil {
		return errorResult(fmt.Sprintf("listing projects: %s", err)), empty, nil
	}

	out := listProjectsOutput{
		Projects: make([]projectOutput, len(res.Projects)),
		Count:    len(res.Projects),
	}
	for i, p := range res.Projects {
		out.Projects[i] = projectToOutput(p)
	}
	return nil, out, nil
}

func (s *Server) handleCreateProject(_ context.Context, _ *gomcp.CallToolRequest, input createProjectInput) (*gomcp.CallToolResult, mutationOutput, error) {
	return s.mutate(core.CreateProject{Name: input.Name, Description: input.Description})
}

func (s *Server) handleUpdateProject(_ context.Context, _ *gomcp.CallToolRequest, input updateProjectInput) (*gomcp.CallToolResult, mutationOutput, error) {
	return s.mutate(core.UpdateProject{
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		Description: input.Description,
	})
}

func (s *Server) handleDestroyProject(_ context.Context, _ *gomcp.CallToolRequest, input projectRefInput) (*gomcp.CallToolResult, mutationOutput, error) {
	return s.mutate(core.DestroyProject{ProjectID: input.ProjectID})
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input projectRefInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	empty := listTasksOutput{ProjectID: input.ProjectID, Tasks: []taskOutput{}}
	res, err := s.execute(core.ListTasks{ProjectID: input.ProjectID})
	if err != nil {
		return errorResult(err.Error()), empty, nil
	}

	out := listTasksOutput{
		ProjectID: input.ProjectID,
		Tasks:     make([]taskOutput, len(res.Tasks)),
		Count:     len(res.Tasks),
	}
	for i, t := range res.Tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleCreateTask(_ context.Context, _ *gomcp.CallToolRequest, input createTaskInput) (*gomcp.CallToolResult, mutationOutput, error) {
	return s.mutate(core.CreateTask{
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		Description: input.Description,
	})
}

func (s *Server) handleUpdateTask(_ context.Context, _ *gomcp.CallToolRequest, input updateTaskInput) (*gomcp.CallToolResult, mutationOutput, error) {
	return s.mutate(core.UpdateTask{
		ProjectID:   input.ProjectID,
		TaskID:      input.TaskID,
		Name:        input.Name,
		Description: input.Description,
	})
}

func (s *Server) handleDestroyTask(_ context.Context, _ *gomcp.CallToolRequest, input taskRefInput) (*gomcp.CallToolResult, mutationOutput, error) {
	return s.mutate(core.DestroyTask{ProjectID: input.ProjectID, TaskID: input.TaskID})
}

func (s *Server) handleGetConfig(_ context.Context, _ *gomcp.CallToolRequest, input getConfigInput) (*gomcp.CallToolResult, configOutput, error) {
	res, err := s.execute(core.ConfigGet{Key: input.Key})
	if err != nil {
		return errorResult(err.Error()), configOutput{Key: input.Key}, nil
	}
	return nil, configOutput{Key: res.ConfigKey, Value: res.ConfigValue, Message: res.Message}, nil
}

// --- Helpers ---

func (s *Server) execute(cmd core.Command) (*core.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rt.Execute(cmd)
}

func (s *Server) mutate(cmd core.Command) (*gomcp.CallToolResult, mutationOutput, error) {
	res, err := s.execute(cmd)
	if err != nil {
		return errorResult(err.Error()), mutationOutput{}, nil
	}
	out := mutationOutput{Message: res.Message}
	if res.ProjectID != uuid.Nil {
		out.ProjectID = res.ProjectID.String()
	}
	if res.TaskID != uuid.Nil {
		out.TaskID = res.TaskID.String()
	}
	return nil, out, nil
}

func projectToOutput(p models.Project) projectOutput {
	return projectOutput{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		TaskCount:   len(p.Tasks),
	}
}

func taskToOutput(t models.Task) taskOutput {
	return taskOutput{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		Type:        string(t.Type),
		Status:      string(t.Status),
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
