package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/gcodeview/internal/cli"
)

var globals cli.GlobalOptions

// AddGlobalFlags registers the persistent flags shared by every subcommand
func AddGlobalFlags(root *cobra.Command) {
	globals = cli.GlobalOptions{}

	flags := root.PersistentFlags()
	flags.StringVar(&globals.ConfigPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/gcodeview/config.yaml)")
	flags.StringVarP(&globals.Output, "output", "o", "", "Output format (text, json, yaml)")
	flags.BoolVarP(&globals.Quiet, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&globals.NoColor, "no-color", false, "Disable colored output")
	flags.StringVar(&globals.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&globals.LogFile, "log-file", "", "Write logs to this file")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(globals.Quiet, globals.NoColor, false)
	}
}

// Globals returns the parsed persistent flags
func Globals() cli.GlobalOptions {
	return globals
}

// commandContext loads settings for a non-interactive command
func commandContext() (*cli.CommandContext, error) {
	return cli.NewCommandContext(globals, true)
}

// Execute runs root and prints any error to stderr. It returns the exit code.
func Execute(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		cli.PrintError("%v", err)
		return 1
	}
	return 0
}
