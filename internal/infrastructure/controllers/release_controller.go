package controllers

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// ReleaseController handles the "release" subcommand.
type ReleaseController struct {
	command commands.Release
}

// NewReleaseController creates a new ReleaseController.
func NewReleaseController(command commands.Release) *ReleaseController {
	return &ReleaseController{command: command}
}

// GetBind returns the Cobra command metadata for the release controller.
func (it *ReleaseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "release [-]",
		Short: "Prepare release notes and the next version",
		Long: `Collect the commits since the latest tag, group them into
Features, Bug Fixes, Refactors, Docs and Other, and suggest the next version.

With --stdin (or "-") the "<hash> <subject>" rows are read from standard
input and --latest names the previous tag. With --changelog the notes are
also written to the changelog as a new version section.`,
	}
}

// AddFlags registers the release flags.
func (it *ReleaseController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("stdin", false, "Read one-line commit rows from standard input")
	cmd.Flags().String("latest", "", "Previous release tag (default: detected from the repository)")
	cmd.Flags().String("version", "", "Version to release (default: first suggestion)")
	cmd.Flags().Bool("changelog", false, "Write the notes to the changelog file")
}

// Execute prepares and prints the release plan.
func (it *ReleaseController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	latest, _ := cmd.Flags().GetString("latest")
	version, _ := cmd.Flags().GetString("version")
	updateChangelog, _ := cmd.Flags().GetBool("changelog")

	plan, err := it.command.Execute(ctx, commands.ReleaseOptions{
		RepositoryOptions: repositoryOptions(settings),
		Input:             stdinIfRequested(cmd, args),
		LatestTag:         latest,
		Version:           version,
		Date:              time.Now(),
		LogLimit:          settings.Release.LogLimit,
		Placeholder:       settings.Release.Placeholder,
		UpdateChangelog:   updateChangelog,
		ChangelogPath:     settings.Release.Changelog,
	})
	if err != nil {
		logger.Errorf("Release preparation failed: %v", err)
		return
	}

	writeReleasePlan(cmd.OutOrStdout(), plan)
	if plan.ChangelogUpdated {
		logger.Infof("Updated %s", plan.ChangelogPath)
	}
}
