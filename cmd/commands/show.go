package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/gcodeview/internal/cli"
	"github.com/pluqqy/gcodeview/pkg/report"
)

var (
	showCategories []string
	showSummary    bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the slicer settings embedded in a G-code file",
		Long: `Extract the slicer settings from a G-code file and print them grouped
by category.

Settings are read from comment lines of the form "; key = value".
Only categories holding at least one setting are printed.

Examples:
  # Show all settings
  gcodeview show benchy.gcode

  # Show only some categories
  gcodeview show benchy.gcode --category temperature --category "build plate"
  gcodeview show benchy.gcode -c infill,walls

  # Output as JSON
  gcodeview show benchy.gcode -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().StringSliceVarP(&showCategories, "category", "c", nil, "Only show these categories")
	cmd.Flags().BoolVarP(&showSummary, "summary", "s", false, "Print a one-line summary before the settings")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cats, err := cli.ParseCategories(showCategories)
	if err != nil {
		return err
	}

	ctx, err := commandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	r, size, err := ctx.LoadReport(args[0])
	if err != nil {
		return err
	}
	if len(cats) > 0 {
		r = r.Filter(cats...)
	}

	out := cmd.OutOrStdout()
	format := ctx.Settings.Output.Format

	if format == string(report.FormatPlain) || format == "" {
		if showSummary {
			fmt.Fprintf(out, "%s: %s\n", r.Source, cli.Summary(r, size))
			fmt.Fprintln(out, strings.Repeat("-", 60))
		}
		if r.IsEmpty() {
			cli.PrintInfo("No settings found in %s", r.Source)
			return nil
		}
	}

	return cli.OutputResults(out, format, r)
}
