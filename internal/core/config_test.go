package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/taskmanager/pkg/models"
)

// --- Helper ---

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoadConfig_Defaults_WhenNoFile(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigurationManager(dir)

	cfg, err := cm.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PersistenceMode != models.PersistenceJSON {
		t.Errorf("PersistenceMode = %q, want %q", cfg.PersistenceMode, models.PersistenceJSON)
	}
	if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); !os.IsNotExist(err) {
		t.Error("LoadConfig must not create config.json")
	}
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"persistence_mode": "YAML"}`)

	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PersistenceMode != models.PersistenceYAML {
		t.Errorf("PersistenceMode = %q, want %q", cfg.PersistenceMode, models.PersistenceYAML)
	}
}

func TestLoadConfig_EmptyObjectUsesDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{}`)

	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PersistenceMode != models.PersistenceJSON {
		t.Errorf("PersistenceMode = %q, want %q", cfg.PersistenceMode, models.PersistenceJSON)
	}
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"persistence_mode": `)

	_, err := NewConfigurationManager(dir).LoadConfig()
	if !errors.Is(err, ErrCorruptStore) {
		t.Errorf("err = %v, want ErrCorruptStore", err)
	}
}

func TestLoadConfig_UnknownMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"persistence_mode": "XML"}`)

	_, err := NewConfigurationManager(dir).LoadConfig()
	if !errors.Is(err, ErrCorruptStore) {
		t.Errorf("err = %v, want ErrCorruptStore", err)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"persistence_mode": "JSON"}`)
	t.Setenv("TASKMANAGER_PERSISTENCE_MODE", "YAML")

	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PersistenceMode != models.PersistenceYAML {
		t.Errorf("PersistenceMode = %q, want %q", cfg.PersistenceMode, models.PersistenceYAML)
	}
}

func TestConfigurationManager_Path(t *testing.T) {
	dir := t.TempDir()
	if got, want := NewConfigurationManager(dir).Path(), filepath.Join(dir, "config.json"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
