package controllers

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// CommitController handles the "commit" subcommand.
type CommitController struct {
	command commands.Commit
}

// NewCommitController creates a new CommitController.
func NewCommitController(command commands.Commit) *CommitController {
	return &CommitController{command: command}
}

// GetBind returns the Cobra command metadata for the commit controller.
func (it *CommitController) GetBind() entities.ControllerBind {
	types := make([]string, 0, len(entities.AllCommitTypes()))
	for _, ct := range entities.AllCommitTypes() {
		types = append(types, fmt.Sprintf("  %-9s %s", ct, ct.Description()))
	}

	return entities.ControllerBind{
		Use:   "commit",
		Short: "Compose a conventional commit message",
		Long: `Compose a message of the form "type(scope)!: subject" followed by an
optional body, and print it. Nothing is committed.

With --amend the fields are prefilled from the HEAD commit message and
any flag given overrides them.

Types:
` + strings.Join(types, "\n"),
	}
}

// AddFlags registers the commit builder fields.
func (it *CommitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "", "Commit type (feat, fix, chore, ...)")
	cmd.Flags().StringP("scope", "s", "", "Optional scope")
	cmd.Flags().BoolP("breaking", "b", false, "Mark as breaking change")
	cmd.Flags().StringP("message", "m", "", "Subject line")
	cmd.Flags().String("body", "", "Optional body")
	cmd.Flags().Bool("amend", false, "Prefill from the HEAD commit message")
}

// Execute composes and prints the message.
func (it *CommitController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	opts := commands.CommitOptions{RepositoryOptions: repositoryOptions(settings)}
	opts.Type, _ = cmd.Flags().GetString("type")
	opts.Scope, _ = cmd.Flags().GetString("scope")
	opts.Breaking, _ = cmd.Flags().GetBool("breaking")
	opts.Subject, _ = cmd.Flags().GetString("message")
	opts.Body, _ = cmd.Flags().GetString("body")
	opts.Amend, _ = cmd.Flags().GetBool("amend")

	result, err := it.command.Execute(ctx, opts)
	if err != nil {
		logger.Errorf("Commit message not ready: %v", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
}
