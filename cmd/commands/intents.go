package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress-admin/internal/cli"
	"github.com/inkpress/inkpress-admin/pkg/files"
	"github.com/inkpress/inkpress-admin/pkg/journal"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

var (
	intentsLimit  int
	intentsFailed bool
)

// IntentsResult is the structured output of intents
type IntentsResult struct {
	Table   string          `json:"table,omitempty" yaml:"table,omitempty"`
	Count   int             `json:"count" yaml:"count"`
	Entries []journal.Entry `json:"entries" yaml:"entries"`
}

// NewIntentsCommand creates the intents command
func NewIntentsCommand(ctx *cli.CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intents [manuscripts|users]",
		Short: "Show the most recent journaled intents",
		Long: `Show the intent journal, newest first. Every action taken from the
interactive desk or with 'inkpress act' is journaled, including the ones
that were rejected.

Examples:
  # Last 20 intents
  inkpress intents

  # Rejected user intents as YAML
  inkpress intents users --failed -o yaml`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntents(cmd, ctx, args)
		},
	}

	cmd.Flags().IntVarP(&intentsLimit, "limit", "n", 20, "Number of intents to show (0 for all)")
	cmd.Flags().BoolVar(&intentsFailed, "failed", false, "Show only rejected intents")

	return cmd
}

func runIntents(cmd *cobra.Command, ctx *cli.CommandContext, args []string) error {
	var table string
	if len(args) > 0 {
		t, err := cli.NormalizeTable(args[0])
		if err != nil {
			return err
		}
		table = t
	}

	j, err := journal.Open(files.JournalPath(ctx.DataDir()))
	if err != nil {
		return err
	}
	defer j.Close()

	limit := intentsLimit
	if intentsFailed {
		// filtered after the query
		limit = 0
	}
	entries, err := j.Recent(table, limit)
	if err != nil {
		return err
	}
	if intentsFailed {
		var failed []journal.Entry
		for _, e := range entries {
			if e.Failed() {
				failed = append(failed, e)
			}
		}
		entries = failed
		if intentsLimit > 0 && len(entries) > intentsLimit {
			entries = entries[:intentsLimit]
		}
	}

	result := IntentsResult{Table: table, Count: len(entries), Entries: entries}
	switch format := outputFormat(cmd); format {
	case string(cli.FormatJSON), string(cli.FormatYAML):
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	default:
		return outputIntentsText(cmd, result)
	}
}

func outputIntentsText(cmd *cobra.Command, result IntentsResult) error {
	if result.Count == 0 {
		cli.PrintInfo("No intents journaled yet")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("#", "When", "Table", "Action", "Targets", "Result")
	for _, e := range result.Entries {
		action := e.Intent.ActionID
		if v := e.Intent.Arg(workflow.ArgStatus); v != "" {
			action += "=" + v
		}
		if v := e.Intent.Arg(workflow.ArgReviewer); v != "" {
			action += "=" + v
		}
		outcome := "ok"
		if e.Failed() {
			outcome = "failed: " + e.Error
		}
		table.Row(
			fmt.Sprintf("%d", e.Seq),
			e.Intent.At.Local().Format("2006-01-02 15:04:05"),
			e.Table,
			action,
			cli.TruncateString(strings.Join(e.Intent.TargetIDs, ","), 40),
			outcome,
		)
	}
	return table.Flush()
}
