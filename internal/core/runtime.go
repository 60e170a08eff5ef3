package core

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/valter-silva-au/taskmanager/pkg/models"
	"go.uber.org/zap"
)

// ProjectStore is the subset of storage.ProjectStore the runtime needs.
// Defining it here keeps core independent of the storage package.
type ProjectStore interface {
	Load() (*models.ProjectData, error)
	Save(data *models.ProjectData) error
	Path() string
}

// StoreOpener returns the project store for the configured persistence mode.
type StoreOpener func(mode models.PersistenceMode) (ProjectStore, error)

// EventLogger is the subset of the observability event log that the runtime
// needs. Defining it here avoids importing the observability package.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// Runtime is the per-process container: it loads configuration and project
// data, runs one command at a time and persists the collection after every
// successful mutating command. It is not safe for concurrent use.
type Runtime struct {
	configMgr ConfigurationManager
	openStore StoreOpener
	events    EventLogger
	logger    *zap.Logger

	cfg   *models.Config
	store ProjectStore
	pm    ProjectManager
}

// NewRuntime creates a Runtime. events may be nil to disable the event log;
// a nil logger is replaced by a no-op logger.
func NewRuntime(configMgr ConfigurationManager, openStore StoreOpener, events EventLogger, logger *zap.Logger) *Runtime {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runtime{
		configMgr: configMgr,
		openStore: openStore,
		events:    events,
		logger:    logger,
	}
}

// LoadConfig reads the configuration once; later calls are no-ops.
func (r *Runtime) LoadConfig() error {
	if r.cfg != nil {
		return nil
	}
	cfg, err := r.configMgr.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	r.cfg = cfg
	r.logger.Debug("config loaded",
		zap.String("path", r.configMgr.Path()),
		zap.String("persistence_mode", string(cfg.PersistenceMode)))
	return nil
}

// Load reads the configuration and then the project collection from the
// store selected by the configured persistence mode. Later calls are no-ops.
func (r *Runtime) Load() error {
	if err := r.LoadConfig(); err != nil {
		return err
	}
	if r.pm != nil {
		return nil
	}
	if r.store == nil {
		store, err := r.openStore(r.cfg.PersistenceMode)
		if err != nil {
			return fmt.Errorf("opening project store: %w", err)
		}
		r.store = store
	}
	data, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}
	r.pm = NewProjectManager(data)
	r.logger.Debug("projects loaded",
		zap.String("path", r.store.Path()),
		zap.Int("count", len(data.Projects)))
	return nil
}

// Config returns the loaded configuration, or nil before LoadConfig.
func (r *Runtime) Config() *models.Config {
	return r.cfg
}

// Execute runs cmd: Load, dispatch, and for a successful mutating command
// persist the whole collection. Any failure aborts the run and nothing is
// persisted.
func (r *Runtime) Execute(cmd Command) (*Result, error) {
	if isConfigCommand(cmd) {
		if err := r.LoadConfig(); err != nil {
			return nil, err
		}
		return Execute(nil, r.cfg, cmd)
	}

	if err := r.Load(); err != nil {
		return nil, err
	}

	res, err := Execute(r.pm, r.cfg, cmd)
	if err != nil {
		r.logger.Debug("command failed", zap.String("command", cmd.Op()), zap.Error(err))
		return nil, err
	}

	if !cmd.Mutating() {
		return res, nil
	}

	if err := r.store.Save(r.pm.Data()); err != nil {
		// Memory now differs from disk; force a reload on the next command.
		r.pm = nil
		return nil, fmt.Errorf("saving projects: %w", err)
	}
	r.logger.Debug("projects saved", zap.String("command", cmd.Op()), zap.String("path", r.store.Path()))

	r.logEvent(cmd, res)
	return res, nil
}

func (r *Runtime) logEvent(cmd Command, res *Result) {
	if r.events == nil {
		return
	}
	data := map[string]any{
		"command":    cmd.Op(),
		"project_id": res.ProjectID.String(),
	}
	if res.TaskID != uuid.Nil {
		data["task_id"] = res.TaskID.String()
	}
	if err := r.events.LogEvent(eventType(cmd), data); err != nil {
		r.logger.Warn("writing event log", zap.Error(err))
	}
}

// eventType maps a mutating command to its event name, e.g. "project.created".
func eventType(cmd Command) string {
	switch cmd.(type) {
	case CreateProject:
		return "project.created"
	case DestroyProject:
		return "project.destroyed"
	case UpdateProject:
		return "project.updated"
	case CreateTask:
		return "task.created"
	case DestroyTask:
		return "task.destroyed"
	case UpdateTask:
		return "task.updated"
	default:
		return cmd.Op()
	}
}

func isConfigCommand(cmd Command) bool {
	switch cmd.(type) {
	case ConfigGet, ConfigSet:
		return true
	}
	return false
}
