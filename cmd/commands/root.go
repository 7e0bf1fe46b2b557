package commands

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress-admin/internal/cli"
	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/tui"
)

var (
	configFile  string
	dataDir     string
	outputFlag  string
	quietFlag   bool
	noColorFlag bool
	yesFlag     bool
	verboseFlag bool
)

// NewRootCommand builds the inkpress command tree. ctx is filled in by the
// persistent pre-run before any subcommand executes.
func NewRootCommand(ctx *cli.CommandContext, version string) *cobra.Command {
	var logCloser io.Closer

	cmd := &cobra.Command{
		Use:   "inkpress",
		Short: "Terminal admin desk for manuscripts and users",
		Long: `Inkpress is a terminal admin desk for a journal's manuscripts and user
accounts. Records live as YAML in the data directory; running inkpress
without a subcommand opens the interactive tables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(outputFlag); err != nil {
				return err
			}
			settings, err := cli.LoadConfig(configFile, dataDir)
			if err != nil {
				return err
			}
			logger, closer, err := cli.NewLogger(settings.LogFile, verboseFlag)
			if err != nil {
				return err
			}
			ctx.Settings = settings
			ctx.Logger = logger
			logCloser = closer
			cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser == nil {
				return nil
			}
			return logCloser.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(ctx)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default is <data-dir>/config.yaml)")
	flags.StringVar(&dataDir, "data-dir", "", "Data directory (default .inkpress)")
	flags.StringVarP(&outputFlag, "output", "o", "text", "Output format (text, json, yaml)")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&noColorFlag, "no-color", false, "Print plain status prefixes")
	flags.BoolVarP(&yesFlag, "yes", "y", false, "Skip confirmation prompts")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug output to the log file")

	cmd.AddCommand(
		NewInitCommand(ctx),
		NewListCommand(ctx),
		NewExportCommand(ctx),
		NewActCommand(ctx),
		NewIntentsCommand(ctx),
		NewCopyCommand(ctx),
		NewVersionCommand(version),
	)
	return cmd
}

func runTUI(ctx *cli.CommandContext) error {
	session, err := ctx.OpenSession(true)
	if err != nil {
		return err
	}
	defer session.Close()

	app := tui.NewApp(tui.Config{
		Desk:           session.Desk,
		Journal:        session.Journal,
		Logger:         ctx.Logger,
		MenuPosition:   actions.ParsePosition(ctx.Settings.UI.MenuPosition),
		ManuscriptSort: ctx.ManuscriptSort(),
		ShowHelp:       ctx.Settings.UI.ShowHelp,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

// NewVersionCommand prints the build version
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of Inkpress",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Inkpress version %s\n", version)
		},
	}
}

// outputFormat reads the inherited --output flag
func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return string(cli.FormatText)
	}
	return format
}
