package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress-admin/internal/cli"
	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

var (
	actStatus   string
	actReviewer string
)

// ActResult is the structured output of act
type ActResult struct {
	Table    string   `json:"table" yaml:"table"`
	Action   string   `json:"action" yaml:"action"`
	Targets  []string `json:"targets" yaml:"targets"`
	Affected int      `json:"affected" yaml:"affected"`
	Message  string   `json:"message" yaml:"message"`
}

// NewActCommand creates the act command
func NewActCommand(ctx *cli.CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "act <manuscripts|users> <action> <id>...",
		Short: "Run a table action on one or more records",
		Long: `Run the same actions the interactive menus offer. One id uses the row
menu for that record, so per-record rules apply (a rejected manuscript
cannot be rejected again). Several ids use the bulk menu.

Manuscript actions: view, assign_reviewer, download, reject,
update_status, export, delete
User actions: view, edit, reset_password, activate, suspend, export,
delete

Examples:
  # Accept two manuscripts
  inkpress act ms update_status MS-2024-001 MS-2024-003 --status accepted

  # Assign a reviewer
  inkpress act ms assign_reviewer MS-2024-003 --reviewer "Dr. Michael Chen"

  # Delete a user without the prompt
  inkpress act users delete USR-005 --yes`,
		Args: cobra.MinimumNArgs(3),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.ValidateProject(); err != nil {
				return err
			}
			return cli.ValidateIDs(args[2:])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAct(cmd, ctx, args)
		},
	}

	cmd.Flags().StringVar(&actStatus, "status", "", "Status for update_status")
	cmd.Flags().StringVar(&actReviewer, "reviewer", "", "Reviewer name for assign_reviewer")

	return cmd
}

func runAct(cmd *cobra.Command, ctx *cli.CommandContext, args []string) error {
	table, err := cli.NormalizeTable(args[0])
	if err != nil {
		return err
	}
	actionID := strings.ToLower(args[1])
	ids := args[2:]

	session, err := ctx.OpenSession(true)
	if err != nil {
		return err
	}
	defer session.Close()

	var captured []actions.Intent
	capture := actions.EmitterFunc(func(i actions.Intent) error {
		captured = append(captured, i)
		return nil
	})

	menu, err := menuFor(session.Desk, table, capture, ids)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(menu, func(d actions.Descriptor) bool { return d.ID == actionID })
	if idx < 0 {
		return fmt.Errorf("action %q is not available for %d %s", actionID, len(ids), table)
	}
	if menu[idx].Disabled {
		return fmt.Errorf("action %q is disabled for %s", actionID, strings.Join(ids, ", "))
	}

	actx := actions.RowContext(ids[0])
	if len(ids) > 1 {
		actx = actions.BulkContext(ids)
	}
	if err := actions.NewDispatcher(ctx.Logger).Execute(menu[idx], actx, nil); err != nil {
		return err
	}
	if len(captured) != 1 {
		return fmt.Errorf("action %q emitted no intent", actionID)
	}
	intent := captured[0]

	if actStatus != "" {
		intent = workflow.WithArg(intent, workflow.ArgStatus, actStatus)
	}
	if actReviewer != "" {
		intent = workflow.WithArg(intent, workflow.ArgReviewer, actReviewer)
	}
	if missing := workflow.MissingArg(intent); missing != "" {
		return fmt.Errorf("%s requires --%s", actionID, missing)
	}

	if workflow.NeedsConfirmation(intent) {
		ok, err := cli.Confirm(fmt.Sprintf("Delete %d %s? This cannot be undone", len(ids), table), false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Cancelled")
			return nil
		}
	}

	apply := session.Desk.ApplyUser
	if table == workflow.TableManuscripts {
		apply = session.Desk.ApplyManuscript
	}
	res, err := apply(intent)
	if err != nil {
		if errors.Is(err, workflow.ErrUnknownRecord) {
			return fmt.Errorf("no %s match %s", table, strings.Join(ids, ", "))
		}
		return err
	}

	switch format := outputFormat(cmd); format {
	case string(cli.FormatJSON), string(cli.FormatYAML):
		return cli.OutputResults(cmd.OutOrStdout(), format, ActResult{
			Table:    table,
			Action:   intent.ActionID,
			Targets:  intent.TargetIDs,
			Affected: res.Affected,
			Message:  res.Message,
		})
	default:
		cli.PrintSuccess("%s", res.Message)
		return nil
	}
}

// menuFor returns the descriptors offered for ids: the row menu first for
// a single record, then the bulk menu
func menuFor(desk *workflow.Desk, table string, e actions.Emitter, ids []string) ([]actions.Descriptor, error) {
	var menu []actions.Descriptor
	switch table {
	case workflow.TableManuscripts:
		if len(ids) == 1 {
			i := slices.IndexFunc(desk.Manuscripts(), func(m models.Manuscript) bool { return m.ID == ids[0] })
			if i < 0 {
				return nil, fmt.Errorf("manuscript %s not found", ids[0])
			}
			menu = workflow.ManuscriptRowActions(e, desk.Manuscripts()[i])
		}
		menu = append(menu, workflow.ManuscriptBulkActions(e)...)

	case workflow.TableUsers:
		if len(ids) == 1 {
			i := slices.IndexFunc(desk.Users(), func(u models.User) bool { return u.ID == ids[0] })
			if i < 0 {
				return nil, fmt.Errorf("user %s not found", ids[0])
			}
			menu = workflow.UserRowActions(e, desk.Users()[i])
		}
		menu = append(menu, workflow.UserBulkActions(e)...)
	}
	return menu, nil
}
