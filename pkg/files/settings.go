package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/gcodeview/pkg/models"
)

// DefaultConfigPath returns the per-user config file location
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, ConfigFile), nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// ReadSettings loads settings from path. A missing file yields the defaults;
// values present in the file override them.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if isTOML(path) {
		err = toml.Unmarshal(content, settings)
	} else {
		err = yaml.Unmarshal(content, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return settings, nil
}

// WriteSettings stores settings at path, creating parent directories
func WriteSettings(path string, settings *models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	var (
		content []byte
		err     error
	)
	if isTOML(path) {
		content, err = toml.Marshal(settings)
	} else {
		content, err = yaml.Marshal(settings)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerms); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}
	if err := os.WriteFile(path, content, defaultFilePerms); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
