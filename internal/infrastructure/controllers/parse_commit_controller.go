package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// parsedCommit is the YAML view of a parsed message.
type parsedCommit struct {
	Type     string `yaml:"type,omitempty"`
	Scope    string `yaml:"scope,omitempty"`
	Breaking bool   `yaml:"breaking"`
	Subject  string `yaml:"subject"`
	Body     string `yaml:"body,omitempty"`
}

// ParseCommitController handles the "parse-commit" subcommand.
type ParseCommitController struct {
	command commands.ParseCommit
}

// NewParseCommitController creates a new ParseCommitController.
func NewParseCommitController(command commands.ParseCommit) *ParseCommitController {
	return &ParseCommitController{command: command}
}

// GetBind returns the Cobra command metadata for the parse-commit controller.
func (it *ParseCommitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "parse-commit [-]",
		Short: "Split a commit message into conventional-commit fields",
		Long: `Parse a commit message, read from standard input with --stdin (or "-")
or taken from the HEAD commit, and print its fields as YAML.

Messages that do not follow the convention are still accepted: their first
line becomes the subject and the text after the first blank line the body.`,
	}
}

// AddFlags registers the parse-commit flags.
func (it *ParseCommitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("stdin", false, "Read the message from standard input")
}

// Execute parses and prints the message fields.
func (it *ParseCommitController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	commit, err := it.command.Execute(ctx, commands.ParseCommitOptions{
		RepositoryOptions: repositoryOptions(settings),
		Input:             stdinIfRequested(cmd, args),
	})
	if err != nil {
		logger.Errorf("Parse failed: %v", err)
		return
	}

	out, err := yaml.Marshal(parsedCommit{
		Type:     commit.Type.String(),
		Scope:    commit.Scope,
		Breaking: commit.Breaking,
		Subject:  commit.Subject,
		Body:     commit.Body,
	})
	if err != nil {
		logger.Errorf("failed to encode commit: %v", err)
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
}
