// Package internal provides the App struct that wires the taskmanager
// components together for one process.
package internal

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/valter-silva-au/taskmanager/internal/core"
	"github.com/valter-silva-au/taskmanager/internal/logging"
	"github.com/valter-silva-au/taskmanager/internal/observability"
	"github.com/valter-silva-au/taskmanager/internal/storage"
	"github.com/valter-silva-au/taskmanager/pkg/models"
	"go.uber.org/zap"
)

// EventLogFileName is the JSONL audit trail written next to the data files.
const EventLogFileName = ".taskmanager_events.jsonl"

// App holds every service for one taskmanager invocation.
type App struct {
	BasePath string

	LogLevel zap.AtomicLevel
	Logger   *zap.Logger

	ConfigMgr    core.ConfigurationManager
	EventLogPath string
	Runtime      *core.Runtime

	events *eventLogAdapter
}

// NewApp creates and wires the components rooted at basePath. Diagnostics
// are written to logOut at the given level name.
func NewApp(basePath string, logOut io.Writer, logLevel string) (*App, error) {
	level, err := logging.NewLevel(logLevel)
	if err != nil {
		return nil, err
	}
	app := &App{
		BasePath: basePath,
		LogLevel: level,
		Logger:   logging.New(logOut, level),
	}

	app.ConfigMgr = core.NewConfigurationManager(basePath)

	// --- Observability ---
	// The event log is opened on the first mutation, so read-only commands
	// never create it.
	app.EventLogPath = filepath.Join(basePath, EventLogFileName)
	app.events = &eventLogAdapter{path: app.EventLogPath}

	openStore := func(mode models.PersistenceMode) (core.ProjectStore, error) {
		return storage.NewProjectStore(basePath, mode)
	}
	app.Runtime = core.NewRuntime(app.ConfigMgr, openStore, app.events, app.Logger)

	return app, nil
}

// Close flushes the logger and releases the event log file handle if a
// mutation opened it.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.events.Close()
}

// ResolveBasePath returns the directory holding projects.json and
// config.json: TASKMANAGER_HOME if set, otherwise the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("TASKMANAGER_HOME"); home != "" {
		return home
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger. The
// file is opened by the first LogEvent.
type eventLogAdapter struct {
	path string

	mu  sync.Mutex
	log observability.EventLog
}

func (a *eventLogAdapter) open() (observability.EventLog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.log == nil {
		log, err := observability.NewJSONLEventLog(a.path)
		if err != nil {
			return nil, err
		}
		a.log = log
	}
	return a.log, nil
}

// Close is a no-op when nothing was logged.
func (a *eventLogAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.log == nil {
		return nil
	}
	err := a.log.Close()
	a.log = nil
	return err
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	log, err := a.open()
	if err != nil {
		return err
	}
	event := observability.Event{
		Time: time.Now().UTC(),
		Type: eventType,
	}
	if v, ok := data["project_id"].(string); ok {
		event.ProjectID = v
	}
	if v, ok := data["task_id"].(string); ok {
		event.TaskID = v
	}
	extra := make(map[string]any)
	for k, v := range data {
		if k != "project_id" && k != "task_id" {
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		event.Data = extra
	}
	return log.Write(event)
}
