package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	infraRepos "github.com/rios0rios0/gitscribe/internal/infrastructure/repositories"
)

// Versions is the interface for the versions command.
type Versions interface {
	Execute(ctx context.Context, opts VersionsOptions) (*VersionSuggestion, error)
}

// VersionsOptions holds runtime options for the versions command. Input, when
// set, carries `git tag --format` rows to pick the latest tag from. Otherwise,
// with FromRepository unset, LatestTag is used as given (empty meaning no tag).
type VersionsOptions struct {
	RepositoryOptions
	Input          io.Reader
	LatestTag      string
	FromRepository bool
}

// VersionSuggestion is the previous tag and the candidates that follow it.
type VersionSuggestion struct {
	LatestTag  string
	Candidates []string
}

// VersionsCommand suggests next release versions.
type VersionsCommand struct {
	registry *infraRepos.HistoryRegistry
}

// NewVersionsCommand creates a new VersionsCommand with the given history registry.
func NewVersionsCommand(registry *infraRepos.HistoryRegistry) *VersionsCommand {
	return &VersionsCommand{registry: registry}
}

// Execute resolves the latest tag if needed and suggests its successors.
func (it *VersionsCommand) Execute(ctx context.Context, opts VersionsOptions) (*VersionSuggestion, error) {
	latest := opts.LatestTag
	switch {
	case opts.Input != nil:
		text, err := readAll(ctx, opts.Input)
		if err != nil {
			return nil, err
		}
		latest = entities.LatestVersionTag(entities.TagNames(entities.ParseTagList(text)))
	case opts.FromRepository:
		history, err := openHistory(it.registry, opts.RepositoryOptions)
		if err != nil {
			return nil, err
		}
		tags, err := history.Tags(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tags: %w", err)
		}
		latest = entities.LatestVersionTag(entities.TagNames(tags))
	}

	return &VersionSuggestion{
		LatestTag:  latest,
		Candidates: entities.SuggestNextVersions(latest),
	}, nil
}
