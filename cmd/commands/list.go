package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress-admin/internal/cli"
	"github.com/inkpress/inkpress-admin/pkg/files"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Table       string              `json:"table" yaml:"table"`
	Count       int                 `json:"count" yaml:"count"`
	Manuscripts []models.Manuscript `json:"manuscripts,omitempty" yaml:"manuscripts,omitempty"`
	Users       []models.User       `json:"users,omitempty" yaml:"users,omitempty"`
}

var listQuery queryFlags

// NewListCommand creates the list command
func NewListCommand(ctx *cli.CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <manuscripts|users>",
		Short: "List manuscripts or users",
		Long: `List the records of one table, searched, filtered and sorted the same
way the interactive tables are.

Examples:
  # Newest submissions first
  inkpress list manuscripts

  # Accepted manuscripts by title
  inkpress list ms --filter status=accepted --sort title

  # The same using search syntax
  inkpress list ms -s "status:accepted sort:title order:asc"

  # Reviewers as JSON
  inkpress list users -f role=reviewer -o json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{workflow.TableManuscripts, workflow.TableUsers},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, ctx, args)
		},
	}

	listQuery = queryFlags{}
	listQuery.bind(cmd)

	return cmd
}

func runList(cmd *cobra.Command, ctx *cli.CommandContext, args []string) error {
	table, err := cli.NormalizeTable(args[0])
	if err != nil {
		return err
	}
	result, err := loadVisible(ctx, table, &listQuery)
	if err != nil {
		return err
	}

	switch format := outputFormat(cmd); format {
	case string(cli.FormatJSON), string(cli.FormatYAML):
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	default:
		return outputListText(cmd, result)
	}
}

// loadVisible reads one table from the data directory and derives its
// visible rows
func loadVisible(ctx *cli.CommandContext, table string, q *queryFlags) (ListResult, error) {
	dir := ctx.DataDir()
	result := ListResult{Table: table}

	switch table {
	case workflow.TableManuscripts:
		all, err := files.ReadManuscripts(dir)
		if err != nil {
			return result, err
		}
		if result.Manuscripts, err = visibleManuscripts(ctx, q, all); err != nil {
			return result, err
		}
		result.Count = len(result.Manuscripts)

	case workflow.TableUsers:
		all, err := files.ReadUsers(dir)
		if err != nil {
			return result, err
		}
		if result.Users, err = visibleUsers(q, all); err != nil {
			return result, err
		}
		result.Count = len(result.Users)
	}
	return result, nil
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		cli.PrintInfo("No %s found", result.Table)
		return nil
	}

	out := cmd.OutOrStdout()
	table := cli.NewTableFormatter(out)

	if result.Table == workflow.TableManuscripts {
		table.Header("ID", "Title", "Author", "Status", "Submitted", "Reviewer")
		for _, m := range result.Manuscripts {
			reviewer := m.Reviewer
			if reviewer == "" {
				reviewer = "-"
			}
			table.Row(
				m.ID,
				cli.TruncateString(m.Title, 40),
				cli.TruncateString(m.Author, 24),
				models.ManuscriptStatuses.Lookup(m.Status).Label,
				cli.FormatDate(m.SubmittedDate),
				reviewer,
			)
		}
	} else {
		table.Header("ID", "Name", "Role", "Status", "Institution", "Last Active", "Papers")
		for _, u := range result.Users {
			table.Row(
				u.ID,
				cli.TruncateString(u.Name, 28),
				models.UserRoles.Lookup(u.Role).Label,
				models.UserStatuses.Lookup(u.Status).Label,
				cli.TruncateString(u.Institution, 28),
				cli.FormatDate(u.LastActive),
				strconv.Itoa(u.ManuscriptCount),
			)
		}
	}
	if err := table.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d %s\n", result.Count, result.Table)
	return nil
}
