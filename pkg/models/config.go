package models

import "fmt"

// PersistenceMode selects the on-disk format used for project data.
type PersistenceMode string

const (
	PersistenceJSON PersistenceMode = "JSON"
	PersistenceYAML PersistenceMode = "YAML"
)

// ParsePersistenceMode validates a mode read from configuration. Unlike the
// task enums this is strict: an unknown mode means the config is unusable.
func ParsePersistenceMode(s string) (PersistenceMode, error) {
	switch PersistenceMode(s) {
	case PersistenceJSON, PersistenceYAML:
		return PersistenceMode(s), nil
	default:
		return "", fmt.Errorf("unknown persistence mode %q", s)
	}
}

// Config holds the settings read from config.json.
type Config struct {
	PersistenceMode PersistenceMode `json:"persistence_mode" mapstructure:"persistence_mode"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{PersistenceMode: PersistenceJSON}
}
