package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress-admin/internal/cli"
	"github.com/inkpress/inkpress-admin/pkg/files"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

var (
	exportToFile string
	exportQuery  queryFlags
)

// NewExportCommand creates the export command
func NewExportCommand(ctx *cli.CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <manuscripts|users>",
		Short: "Export the visible records of a table to stdout or file",
		Long: `Export the records a list with the same flags would show.

YAML output uses the data file layout, so an export can be dropped into
another data directory as manuscripts.yaml or users.yaml. JSON output
uses the list layout.

Examples:
  # Export every manuscript to stdout
  inkpress export manuscripts

  # Export suspended users to a file
  inkpress export users -f status=suspended --file suspended.yaml

  # Export as JSON
  inkpress export ms -o json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, ctx, args)
		},
	}

	exportQuery = queryFlags{}
	exportQuery.bind(cmd)
	cmd.Flags().StringVar(&exportToFile, "file", "", "Export to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, ctx *cli.CommandContext, args []string) error {
	table, err := cli.NormalizeTable(args[0])
	if err != nil {
		return err
	}
	result, err := loadVisible(ctx, table, &exportQuery)
	if err != nil {
		return err
	}

	format := outputFormat(cmd)
	var data any = result
	if format != string(cli.FormatJSON) {
		format = string(cli.FormatYAML)
		if table == workflow.TableManuscripts {
			data = models.ManuscriptFile{Manuscripts: result.Manuscripts}
		} else {
			data = models.UserFile{Users: result.Users}
		}
	}

	var buf bytes.Buffer
	if err := cli.OutputResults(&buf, format, data); err != nil {
		return err
	}

	if exportToFile == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := files.WriteFile(exportToFile, buf.String()); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	cli.PrintSuccess("Exported %d %s to %s", result.Count, table, exportToFile)
	ctx.Logger.Info("records exported", "table", table, "count", result.Count, "file", exportToFile)
	return nil
}
