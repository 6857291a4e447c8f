package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	infraRepos "github.com/rios0rios0/gitscribe/internal/infrastructure/repositories"
)

// Commit is the interface for the commit command.
type Commit interface {
	Execute(ctx context.Context, opts CommitOptions) (*CommitResult, error)
}

// CommitOptions holds the commit builder fields. Empty fields keep the
// prefilled value when Amend is set.
type CommitOptions struct {
	RepositoryOptions
	Amend    bool // prefill from the HEAD commit message
	Type     string
	Scope    string
	Breaking bool
	Subject  string
	Body     string
}

// CommitResult is the structured commit and its composed message.
type CommitResult struct {
	Commit  entities.ConventionalCommit
	Message string
}

// CommitCommand builds conventional-commit messages. It never creates a
// commit; the message is handed to whoever does.
type CommitCommand struct {
	registry *infraRepos.HistoryRegistry
}

// NewCommitCommand creates a new CommitCommand with the given history registry.
func NewCommitCommand(registry *infraRepos.HistoryRegistry) *CommitCommand {
	return &CommitCommand{registry: registry}
}

// Execute merges the prefill and the given fields, validates the result and
// composes the message. A validation failure still returns the result.
func (it *CommitCommand) Execute(ctx context.Context, opts CommitOptions) (*CommitResult, error) {
	var commit entities.ConventionalCommit
	if opts.Amend {
		prefill, err := it.prefill(ctx, opts.RepositoryOptions)
		if err != nil {
			return nil, err
		}
		commit = prefill
	}

	if opts.Type != "" {
		commitType := entities.ParseCommitType(opts.Type)
		if !commitType.IsKnown() {
			return nil, fmt.Errorf("unknown commit type %q", opts.Type)
		}
		commit.Type = commitType
	}
	if opts.Scope != "" {
		commit.Scope = opts.Scope
	}
	if opts.Breaking {
		commit.Breaking = true
	}
	if opts.Subject != "" {
		commit.Subject = opts.Subject
	}
	if opts.Body != "" {
		commit.Body = opts.Body
	}

	result := &CommitResult{Commit: commit, Message: commit.Compose()}
	if err := commit.Validate(); err != nil {
		return result, fmt.Errorf("invalid commit message: %w", err)
	}
	return result, nil
}

func (it *CommitCommand) prefill(ctx context.Context, opts RepositoryOptions) (entities.ConventionalCommit, error) {
	history, err := openHistory(it.registry, opts)
	if err != nil {
		return entities.ConventionalCommit{}, err
	}
	message, err := history.LastCommitMessage(ctx)
	if err != nil {
		return entities.ConventionalCommit{}, fmt.Errorf("failed to read last commit message: %w", err)
	}

	commit := entities.ParseCommitMessage(message)
	logger.Debugf("Prefilled commit from HEAD (type %q, scope %q)", commit.Type, commit.Scope)
	return commit, nil
}
