package cli

import (
	"os"

	"github.com/phuslu/log"

	"github.com/pluqqy/gcodeview/pkg/diag"
	"github.com/pluqqy/gcodeview/pkg/extractor"
	"github.com/pluqqy/gcodeview/pkg/files"
	"github.com/pluqqy/gcodeview/pkg/models"
)

// GlobalOptions carries the persistent flags shared by every command
type GlobalOptions struct {
	ConfigPath string
	Output     string
	Quiet      bool
	NoColor    bool
	LogLevel   string
	LogFile    string
}

// CommandContext manages settings and logging for a command run
type CommandContext struct {
	ConfigPath string
	Settings   *models.Settings
	Logger     *log.Logger
	closeLog   func() error
}

// NewCommandContext loads settings and builds the logger. When console is
// true and no log file is configured, log output goes to stderr.
func NewCommandContext(opts GlobalOptions, console bool) (*CommandContext, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		p, err := files.DefaultConfigPath()
		if err == nil {
			configPath = p
		}
	}

	settings := models.DefaultSettings()
	if configPath != "" {
		loaded, err := files.ReadSettings(configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if opts.LogLevel != "" {
		settings.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		settings.Logging.File = opts.LogFile
	}
	if opts.Output != "" {
		if err := ValidateOutputFormat(opts.Output); err != nil {
			return nil, err
		}
		settings.Output.Format = opts.Output
	}

	logOpts := diag.Options{
		Level:   settings.Logging.Level,
		File:    settings.Logging.File,
		NoColor: opts.NoColor,
	}
	if console && logOpts.File == "" {
		logOpts.Console = os.Stderr
		if logOpts.Level == "info" {
			// Commands print their own results; only warnings belong on stderr.
			logOpts.Level = "warn"
		}
	}
	logger, closer := diag.NewLogger(logOpts)

	return &CommandContext{
		ConfigPath: configPath,
		Settings:   settings,
		Logger:     logger,
		closeLog:   closer,
	}, nil
}

// Close releases the log sink
func (c *CommandContext) Close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// Extractor returns an extractor that logs through the context logger
func (c *CommandContext) Extractor() *extractor.Extractor {
	return extractor.New(extractor.WithLogger(c.Logger))
}

// LoadReport resolves the input path and extracts its settings
func (c *CommandContext) LoadReport(arg string) (*models.Report, int64, error) {
	path, err := files.ResolveInput(arg, c.Settings.UI.Extensions)
	if err != nil {
		return nil, 0, err
	}

	r, size, err := c.Extractor().LoadFile(path)
	if err != nil {
		c.Logger.Error().Err(err).Str("path", path).Msg("extraction failed")
		return nil, 0, err
	}

	c.Logger.Info().Str("path", path).Int("settings", r.Len()).Msg("loaded G-code settings")
	return r, size, nil
}
