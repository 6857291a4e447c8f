package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// DiffController handles the "diff" subcommand.
type DiffController struct {
	command commands.Diff
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff) *DiffController {
	return &DiffController{command: command}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff [revision|-]",
		Short: "Show a unified diff with old and new line numbers",
		Long: `Parse a unified diff and print it file by file, hunk by hunk,
with the old and new line number of every row.

The diff is read from standard input with --stdin (or "-"), otherwise the
patch of the given revision (default HEAD) against its first parent is used.`,
	}
}

// AddFlags registers the diff flags.
func (it *DiffController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("stdin", false, "Read the diff from standard input")
}

// Execute parses and renders the diff.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	opts := commands.DiffOptions{
		RepositoryOptions: repositoryOptions(settings),
		Input:             stdinIfRequested(cmd, args),
	}
	if opts.Input == nil && len(args) > 0 {
		opts.Revision = args[0]
	}

	patches, err := it.command.Execute(ctx, opts)
	if err != nil {
		logger.Errorf("Diff failed: %v", err)
		return
	}
	writePatches(cmd.OutOrStdout(), patches)
}
