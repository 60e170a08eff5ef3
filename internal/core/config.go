package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/taskmanager/pkg/models"
)

// ConfigFileName is the name of the configuration file inside the base path.
const ConfigFileName = "config.json"

// envPrefix scopes environment overrides, e.g. TASKMANAGER_PERSISTENCE_MODE.
const envPrefix = "TASKMANAGER"

// ConfigurationManager loads the tool's configuration.
type ConfigurationManager interface {
	LoadConfig() (*models.Config, error)
	Path() string
}

// viperConfigManager implements ConfigurationManager using Viper to read
// config.json.
type viperConfigManager struct {
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// config.json from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

func (cm *viperConfigManager) Path() string {
	return filepath.Join(cm.basePath, ConfigFileName)
}

// LoadConfig reads config.json. A missing file yields the defaults; a file
// that cannot be parsed, or names an unknown persistence mode, is reported
// as ErrCorruptStore.
func (cm *viperConfigManager) LoadConfig() (*models.Config, error) {
	cfg := models.DefaultConfig()

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("persistence_mode", string(cfg.PersistenceMode))
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv("persistence_mode"); err != nil {
		return nil, fmt.Errorf("binding persistence_mode env: %w", err)
	}

	_, statErr := os.Stat(cm.Path())
	switch {
	case statErr == nil:
		v.SetConfigFile(cm.Path())
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: reading %s: %v", ErrCorruptStore, ConfigFileName, err)
			}
			return nil, fmt.Errorf("%w: reading %s: %v", ErrPersistenceFailure, ConfigFileName, err)
		}
	case !os.IsNotExist(statErr):
		return nil, fmt.Errorf("%w: stat %s: %v", ErrPersistenceFailure, ConfigFileName, statErr)
	}

	mode, err := models.ParsePersistenceMode(v.GetString("persistence_mode"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, ConfigFileName, err)
	}
	cfg.PersistenceMode = mode

	return cfg, nil
}
