package commands

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/gcodeview/internal/cli"
	"github.com/pluqqy/gcodeview/pkg/report"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// NewClipboardCommand creates the copy command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <file>",
		Short: "Copy the settings report to the clipboard",
		Long: `Copy the plain text settings report of a G-code file to the system
clipboard, ready to paste into a print log or a forum post.

Examples:
  # Copy the report
  gcodeview copy benchy.gcode

  # Copy only the temperature settings
  gcodeview copy benchy.gcode -c temperature`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "clipboard"},
		RunE:    runClipboard,
	}

	cmd.Flags().StringSliceVarP(&showCategories, "category", "c", nil, "Only copy these categories")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	cats, err := cli.ParseCategories(showCategories)
	if err != nil {
		return err
	}

	ctx, err := commandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	r, _, err := ctx.LoadReport(args[0])
	if err != nil {
		return err
	}
	if len(cats) > 0 {
		r = r.Filter(cats...)
	}
	if r.IsEmpty() {
		cli.PrintWarning("No settings found in %s, clipboard left unchanged", r.Source)
		return nil
	}

	if err := writeClipboard(report.FormatText(r)); err != nil {
		ctx.Logger.Warn().Err(err).Msg("clipboard copy failed")
		return err
	}

	cli.PrintSuccess("Copied %d settings to clipboard", r.Len())
	return nil
}
