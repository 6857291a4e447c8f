package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// VersionsController handles the "versions" subcommand.
type VersionsController struct {
	command commands.Versions
}

// NewVersionsController creates a new VersionsController.
func NewVersionsController(command commands.Versions) *VersionsController {
	return &VersionsController{command: command}
}

// GetBind returns the Cobra command metadata for the versions controller.
func (it *VersionsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "versions [tag]",
		Short: "Suggest the next semantic versions",
		Long: `Print the patch, minor and major successors of a vMAJOR.MINOR.PATCH tag,
one per line. Without a tag argument the latest tag of the repository is used;
with --none the suggestions for a repository without tags are printed. With
--stdin (or "-") the latest tag is picked from "name|hash|date|subject" rows
read from standard input, as printed by
git tag --format='%(refname:short)|%(objectname:short)|%(creatordate:short)|%(contents:subject)'.

Nothing is printed when the tag is not a semantic version.`,
	}
}

// AddFlags registers the versions flags.
func (it *VersionsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("none", false, "Suggest versions for a repository without tags")
	cmd.Flags().Bool("stdin", false, "Read the tag list from standard input")
}

// Execute prints the suggested versions.
func (it *VersionsController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	noTag, _ := cmd.Flags().GetBool("none")
	opts := commands.VersionsOptions{
		RepositoryOptions: repositoryOptions(settings),
		Input:             stdinIfRequested(cmd, args),
	}
	opts.FromRepository = opts.Input == nil && len(args) == 0 && !noTag
	if opts.Input == nil && len(args) > 0 {
		opts.LatestTag = args[0]
	}

	suggestion, err := it.command.Execute(ctx, opts)
	if err != nil {
		logger.Errorf("Version suggestion failed: %v", err)
		return
	}
	if len(suggestion.Candidates) == 0 {
		logger.Warnf("Cannot suggest versions after %q", suggestion.LatestTag)
		return
	}
	for _, candidate := range suggestion.Candidates {
		fmt.Fprintln(cmd.OutOrStdout(), candidate)
	}
}
