package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/taskmanager/internal/core"
	"github.com/valter-silva-au/taskmanager/internal/observability"
)

func TestNewApp_WiresRuntime(t *testing.T) {
	dir := t.TempDir()
	app, err := NewApp(dir, &bytes.Buffer{}, "")
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.Runtime == nil || app.ConfigMgr == nil || app.Logger == nil {
		t.Fatal("NewApp left components nil")
	}
	if got := app.EventLogPath; got != filepath.Join(dir, EventLogFileName) {
		t.Errorf("event log path = %q", got)
	}
	if got := app.ConfigMgr.Path(); got != filepath.Join(dir, "config.json") {
		t.Errorf("config path = %q", got)
	}
}

func TestNewApp_InvalidLogLevel(t *testing.T) {
	if _, err := NewApp(t.TempDir(), &bytes.Buffer{}, "chatty"); err == nil {
		t.Error("expected error for an invalid log level")
	}
}

func TestApp_MutationsReachDiskAndEventLog(t *testing.T) {
	dir := t.TempDir()
	app, err := NewApp(dir, &bytes.Buffer{}, "")
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	res, err := app.Runtime.Execute(core.CreateProject{Name: "Alpha"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	pid := res.ProjectID.String()
	res, err = app.Runtime.Execute(core.CreateTask{ProjectID: pid, Name: "T1"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	tid := res.TaskID.String()
	if err := app.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "projects.json")); err != nil {
		t.Errorf("projects.json: %v", err)
	}

	log, err := observability.NewJSONLEventLog(filepath.Join(dir, EventLogFileName))
	if err != nil {
		t.Fatalf("reopening event log: %v", err)
	}
	defer func() { _ = log.Close() }()
	events, err := log.Read(observability.EventFilter{ProjectID: pid})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Type != "project.created" || events[1].Type != "task.created" {
		t.Errorf("event types = %q, %q", events[0].Type, events[1].Type)
	}
	if events[1].TaskID != tid {
		t.Errorf("TaskID = %q, want %q", events[1].TaskID, tid)
	}
	if events[1].Data["command"] != "task.create" {
		t.Errorf("Data = %v", events[1].Data)
	}
}

func TestApp_DebugLoggingGoesToLogWriter(t *testing.T) {
	var logs bytes.Buffer
	app, err := NewApp(t.TempDir(), &logs, "debug")
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer func() { _ = app.Close() }()

	if _, err := app.Runtime.Execute(core.ListProjects{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(logs.String(), "projects loaded") {
		t.Errorf("debug log = %q", logs.String())
	}
}

func TestApp_ReadOnlyCommandsLeaveNoEventLog(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	app, err := NewApp(dir, &logs, "")
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	for _, cmd := range []core.Command{core.ConfigGet{Key: core.ConfigKeyPersistenceMode}, core.ListProjects{}} {
		if _, err := app.Runtime.Execute(cmd); err != nil {
			t.Fatalf("%s: %v", cmd.Op(), err)
		}
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(app.EventLogPath); !os.IsNotExist(err) {
		t.Errorf("event log stat err = %v, want not-exist", err)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output: %q", logs.String())
	}
}

func TestApp_EventLogCreatedByFirstMutation(t *testing.T) {
	dir := t.TempDir()
	app, err := NewApp(dir, &bytes.Buffer{}, "")
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer func() { _ = app.Close() }()

	if _, err := os.Stat(app.EventLogPath); !os.IsNotExist(err) {
		t.Fatalf("event log exists before any mutation: %v", err)
	}
	if _, err := app.Runtime.Execute(core.CreateProject{Name: "Alpha"}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := os.Stat(app.EventLogPath); err != nil {
		t.Errorf("event log after mutation: %v", err)
	}
}

func TestNewApp_EventLogFailureIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	// A directory where the event log file should be makes opening it fail.
	if err := os.Mkdir(filepath.Join(dir, EventLogFileName), 0o750); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	app, err := NewApp(dir, &logs, "")
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer func() { _ = app.Close() }()

	if logs.Len() != 0 {
		t.Errorf("NewApp logged %q before any mutation", logs.String())
	}
	if _, err := app.Runtime.Execute(core.CreateProject{Name: "Alpha"}); err != nil {
		t.Errorf("create project without event log: %v", err)
	}
	if !strings.Contains(logs.String(), "writing event log") {
		t.Errorf("warn log = %q", logs.String())
	}
}

func TestResolveBasePath(t *testing.T) {
	t.Setenv("TASKMANAGER_HOME", "/srv/tasks")
	if got := ResolveBasePath(); got != "/srv/tasks" {
		t.Errorf("ResolveBasePath() = %q, want /srv/tasks", got)
	}

	t.Setenv("TASKMANAGER_HOME", "")
	cwd, _ := os.Getwd()
	if got := ResolveBasePath(); got != cwd {
		t.Errorf("ResolveBasePath() = %q, want %q", got, cwd)
	}
}
