package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	infraRepos "github.com/rios0rios0/gitscribe/internal/infrastructure/repositories"
)

// Diff is the interface for the diff command.
type Diff interface {
	Execute(ctx context.Context, opts DiffOptions) ([]entities.FilePatch, error)
}

// DiffOptions holds runtime options for the diff command. When Input is set
// the patch text is read from it; otherwise the patch of Revision is taken
// from the repository.
type DiffOptions struct {
	RepositoryOptions
	Revision string
	Input    io.Reader
}

// DiffCommand parses unified diffs into file patches.
type DiffCommand struct {
	registry *infraRepos.HistoryRegistry
}

// NewDiffCommand creates a new DiffCommand with the given history registry.
func NewDiffCommand(registry *infraRepos.HistoryRegistry) *DiffCommand {
	return &DiffCommand{registry: registry}
}

// Execute loads the patch text and parses it.
func (it *DiffCommand) Execute(ctx context.Context, opts DiffOptions) ([]entities.FilePatch, error) {
	raw, err := it.loadPatch(ctx, opts)
	if err != nil {
		return nil, err
	}

	patches := entities.ParseDiff(raw)
	logger.Debugf("Parsed %d file patch(es) from %d bytes of diff", len(patches), len(raw))
	return patches, nil
}

func (it *DiffCommand) loadPatch(ctx context.Context, opts DiffOptions) (string, error) {
	if opts.Input != nil {
		return readAll(ctx, opts.Input)
	}

	history, err := openHistory(it.registry, opts.RepositoryOptions)
	if err != nil {
		return "", err
	}
	raw, err := history.CommitPatch(ctx, opts.Revision)
	if err != nil {
		return "", fmt.Errorf("failed to load patch: %w", err)
	}
	return raw, nil
}
