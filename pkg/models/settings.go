package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Settings represents the application configuration
type Settings struct {
	Output  OutputSettings  `yaml:"output" toml:"output"`
	UI      UISettings      `yaml:"ui" toml:"ui"`
	Logging LoggingSettings `yaml:"logging" toml:"logging"`
}

// OutputSettings controls report export behavior
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename" toml:"default_filename" validate:"required"`
	ExportPath      string `yaml:"export_path" toml:"export_path"`
	Format          string `yaml:"format" toml:"format" validate:"oneof=text json yaml"`
}

// UISettings controls UI preferences
type UISettings struct {
	StartDir   string   `yaml:"start_dir" toml:"start_dir"`
	Extensions []string `yaml:"extensions" toml:"extensions" validate:"min=1,dive,startswith=."`
	ShowHidden bool     `yaml:"show_hidden" toml:"show_hidden"`
	Wrap       bool     `yaml:"wrap" toml:"wrap"`
}

// LoggingSettings controls the diagnostic log
type LoggingSettings struct {
	Level string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file" toml:"file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFilename: "gcode_settings.txt",
			ExportPath:      "./",
			Format:          "text",
		},
		UI: UISettings{
			StartDir:   ".",
			Extensions: []string{".gcode", ".gco", ".g"},
			ShowHidden: false,
			Wrap:       true,
		},
		Logging: LoggingSettings{
			Level: "info",
			File:  "",
		},
	}
}

// Validate checks field constraints declared in the struct tags
func (s *Settings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
