package core

// Command is one parsed request for the executor. The set of commands is
// closed; Mutating reports whether a successful run must be persisted.
type Command interface {
	Op() string
	Mutating() bool
	command()
}

// CreateProject creates a project. Description may be empty.
type CreateProject struct {
	Name        string
	Description string
}

// DestroyProject removes a project and all its tasks.
type DestroyProject struct {
	ProjectID string
}

// UpdateProject patches a project's name and/or description.
type UpdateProject struct {
	ProjectID   string
	Name        *string
	Description *string
}

// ListProjects returns every project.
type ListProjects struct{}

// CreateTask adds a task to an existing project.
type CreateTask struct {
	ProjectID   string
	Name        string
	Description string
}

// DestroyTask removes one task from a project.
type DestroyTask struct {
	ProjectID string
	TaskID    string
}

// UpdateTask patches a task's name and/or description.
type UpdateTask struct {
	ProjectID   string
	TaskID      string
	Name        *string
	Description *string
}

// ListTasks returns the tasks of one project.
type ListTasks struct {
	ProjectID string
}

// ConfigGet reads one configuration key.
type ConfigGet struct {
	Key string
}

// ConfigSet acknowledges a configuration write. Nothing is persisted.
type ConfigSet struct {
	Key   string
	Value string
}

func (CreateProject) Op() string  { return "project.create" }
func (DestroyProject) Op() string { return "project.destroy" }
func (UpdateProject) Op() string  { return "project.update" }
func (ListProjects) Op() string   { return "project.list" }
func (CreateTask) Op() string     { return "task.create" }
func (DestroyTask) Op() string    { return "task.destroy" }
func (UpdateTask) Op() string     { return "task.update" }
func (ListTasks) Op() string      { return "task.list" }
func (ConfigGet) Op() string      { return "config.get" }
func (ConfigSet) Op() string      { return "config.set" }

func (CreateProject) Mutating() bool  { return true }
func (DestroyProject) Mutating() bool { return true }
func (UpdateProject) Mutating() bool  { return true }
func (ListProjects) Mutating() bool   { return false }
func (CreateTask) Mutating() bool     { return true }
func (DestroyTask) Mutating() bool    { return true }
func (UpdateTask) Mutating() bool     { return true }
func (ListTasks) Mutating() bool      { return false }
func (ConfigGet) Mutating() bool      { return false }
func (ConfigSet) Mutating() bool      { return false }

func (CreateProject) command()  {}
func (DestroyProject) command() {}
func (UpdateProject) command()  {}
func (ListProjects) command()   {}
func (CreateTask) command()     {}
func (DestroyTask) command()    {}
func (UpdateTask) command()     {}
func (ListTasks) command()      {}
func (ConfigGet) command()      {}
func (ConfigSet) command()      {}
