package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/gcodeview/cmd/commands"
	"github.com/pluqqy/gcodeview/internal/cli"
	"github.com/pluqqy/gcodeview/pkg/files"
	"github.com/pluqqy/gcodeview/pkg/models"
	"github.com/pluqqy/gcodeview/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var initForce bool

var rootCmd = &cobra.Command{
	Use:   "gcodeview [file]",
	Short: "Inspect the slicer settings embedded in G-code files",
	Long: `gcodeview reads the "; key = value" comments slicers write into G-code
files, sorts the settings into categories and shows them in a terminal UI.
The report can be exported as text, JSON or YAML, or copied to the clipboard.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewCommandContext(commands.Globals(), false)
		if err != nil {
			return err
		}
		defer ctx.Close()

		var initial string
		if len(args) == 1 {
			initial, err = files.ResolveInput(args[0], ctx.Settings.UI.Extensions)
			if err != nil {
				return err
			}
		}

		// Launch TUI
		app := tui.NewApp(ctx.Settings, ctx.Logger, initial)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface (try a different terminal): %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Creates the config file with default settings, at --config or the per-user config directory`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := commands.Globals().ConfigPath
		if path == "" {
			p, err := files.DefaultConfigPath()
			if err != nil {
				return err
			}
			path = p
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Left %s unchanged", path)
				return nil
			}
		}

		if err := files.WriteSettings(path, models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		cli.PrintSuccess("Wrote default settings to %s", path)
		cli.PrintInfo("Run 'gcodeview' to start the interactive TUI.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gcodeview",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gcodeview version %s\n", version)
	},
}

func init() {
	tui.Version = version

	commands.AddGlobalFlags(rootCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file without asking")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewCategoriesCommand())
}

func main() {
	os.Exit(commands.Execute(rootCmd))
}
