package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	infraRepos "github.com/rios0rios0/gitscribe/internal/infrastructure/repositories"
)

// ParseCommit is the interface for the parse-commit command.
type ParseCommit interface {
	Execute(ctx context.Context, opts ParseCommitOptions) (entities.ConventionalCommit, error)
}

// ParseCommitOptions selects the message source: Input when set, otherwise
// the HEAD commit of the repository.
type ParseCommitOptions struct {
	RepositoryOptions
	Input io.Reader
}

// ParseCommitCommand reads commit messages into their structured form.
type ParseCommitCommand struct {
	registry *infraRepos.HistoryRegistry
}

// NewParseCommitCommand creates a new ParseCommitCommand.
func NewParseCommitCommand(registry *infraRepos.HistoryRegistry) *ParseCommitCommand {
	return &ParseCommitCommand{registry: registry}
}

// Execute parses the selected message.
func (it *ParseCommitCommand) Execute(
	ctx context.Context,
	opts ParseCommitOptions,
) (entities.ConventionalCommit, error) {
	if opts.Input != nil {
		text, err := readAll(ctx, opts.Input)
		if err != nil {
			return entities.ConventionalCommit{}, err
		}
		return entities.ParseCommitMessage(text), nil
	}

	history, err := openHistory(it.registry, opts.RepositoryOptions)
	if err != nil {
		return entities.ConventionalCommit{}, err
	}
	message, err := history.LastCommitMessage(ctx)
	if err != nil {
		return entities.ConventionalCommit{}, fmt.Errorf("failed to read last commit message: %w", err)
	}
	return entities.ParseCommitMessage(message), nil
}
