package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/gcodeview/internal/cli"
	"github.com/pluqqy/gcodeview/pkg/files"
)

var (
	exportToFile  string
	exportDefault bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the settings report to stdout or a file",
		Long: `Export the slicer settings of a G-code file as a plain text report.

By default the report is written to stdout. Use --file to write it to a
file instead; a .txt extension is added when the name has none. With
--save the file name is derived from the input and the configured
export directory, e.g. benchy.gcode becomes benchy_settings.txt.

The text report is meant for reading. It cannot be parsed back into
the original settings; use -o json or -o yaml for that.

Examples:
  # Export to stdout
  gcodeview export benchy.gcode

  # Export to a file
  gcodeview export benchy.gcode --file benchy-settings
  gcodeview export benchy.gcode --save

  # Export as YAML
  gcodeview export benchy.gcode -o yaml --file benchy.yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if exportToFile != "" && exportDefault {
				return fmt.Errorf("--file and --save cannot be used together")
			}
			return nil
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")
	cmd.Flags().BoolVar(&exportDefault, "save", false, "Export to the default file name in the configured export directory")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := commandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	r, _, err := ctx.LoadReport(args[0])
	if err != nil {
		return err
	}

	target := exportToFile
	if exportDefault {
		out := ctx.Settings.Output
		target = files.DefaultExportPath(r.Source, out.ExportPath, out.DefaultFilename)
	}

	if target == "" {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.Settings.Output.Format, r)
	}

	var buf bytes.Buffer
	if err := cli.OutputResults(&buf, ctx.Settings.Output.Format, r); err != nil {
		return err
	}
	written, err := files.WriteExport(target, buf.String())
	if err != nil {
		return err
	}

	ctx.Logger.Info().Str("path", written).Int("settings", r.Len()).Msg("exported settings")
	cli.PrintSuccess("Exported %d settings to %s", r.Len(), written)
	return nil
}

