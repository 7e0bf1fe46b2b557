package commands

import (
	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress-admin/internal/cli"
	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

// NewCopyCommand creates the copy command
func NewCopyCommand(ctx *cli.CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <manuscripts|users> [id...]",
		Short: "Copy records to the clipboard as YAML",
		Long: `Copy records to the system clipboard in the data file layout. Without
ids the whole table is copied.

Examples:
  # Copy one manuscript
  inkpress copy ms MS-2024-003

  # Copy every user
  inkpress copy users`,
		Args:    cobra.MinimumNArgs(1),
		Aliases: []string{"clip", "clipboard"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(ctx, args)
		},
	}

	return cmd
}

func runCopy(ctx *cli.CommandContext, args []string) error {
	table, err := cli.NormalizeTable(args[0])
	if err != nil {
		return err
	}

	// read-only: not journaled
	session, err := ctx.OpenSession(false)
	if err != nil {
		return err
	}
	defer session.Close()

	ids := args[1:]
	if len(ids) == 0 {
		if table == workflow.TableManuscripts {
			for _, m := range session.Desk.Manuscripts() {
				ids = append(ids, m.ID)
			}
		} else {
			for _, u := range session.Desk.Users() {
				ids = append(ids, u.ID)
			}
		}
	}
	if len(ids) == 0 {
		cli.PrintInfo("No %s to copy", table)
		return nil
	}

	emitter, err := session.Desk.Emitter(table)
	if err != nil {
		return err
	}
	intent := actions.NewIntent(workflow.ActionExport, ids, nil)
	if err := emitter.Emit(intent); err != nil {
		return err
	}
	cli.PrintSuccess("%s", session.Desk.LastResult().Message)
	return nil
}
