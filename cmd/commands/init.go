package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress-admin/internal/cli"
	"github.com/inkpress/inkpress-admin/pkg/files"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

var initEmpty bool

// NewInitCommand creates the init command
func NewInitCommand(ctx *cli.CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new Inkpress data directory",
		Long: `Creates the data directory with manuscripts.yaml, users.yaml and
config.yaml. Existing files are left untouched, so running init twice is
safe.

Examples:
  # Initialize .inkpress with sample records
  inkpress init

  # Initialize an empty desk somewhere else
  inkpress init --data-dir /srv/journal --empty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(ctx)
		},
	}

	cmd.Flags().BoolVar(&initEmpty, "empty", false, "Start with no records instead of the samples")

	return cmd
}

func runInit(ctx *cli.CommandContext) error {
	dir := ctx.DataDir()
	cli.PrintInfo("Initializing Inkpress data in %s...", dir)

	manuscripts, users := workflow.SampleManuscripts(), workflow.SampleUsers()
	if initEmpty {
		manuscripts, users = nil, nil
	}
	wrote, err := files.Seed(dir, manuscripts, users)
	if err != nil {
		return fmt.Errorf("failed to initialize data directory: %w", err)
	}

	settings, err := files.ReadSettings(dir)
	if err != nil {
		return err
	}
	settings.DataDir = dir
	if err := files.WriteSettings(dir, settings); err != nil {
		return err
	}

	if wrote {
		cli.PrintSuccess("Created %s and %s", files.ManuscriptsFile, files.UsersFile)
	} else {
		cli.PrintInfo("Records already present, left unchanged")
	}
	cli.PrintSuccess("Wrote %s", cli.ConfigPath(dir))
	cli.PrintInfo("Run 'inkpress' to open the admin desk.")
	ctx.Logger.Info("data directory initialized", "data_dir", dir, "seeded", wrote)
	return nil
}
