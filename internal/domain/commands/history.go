package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	"github.com/rios0rios0/gitscribe/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitscribe/internal/infrastructure/repositories"
)

// RepositoryOptions selects the Git repository a command reads from.
type RepositoryOptions struct {
	RepoDir string
	Backend string
}

// openHistory opens the configured history backend for the repository.
func openHistory(
	registry *infraRepos.HistoryRegistry,
	opts RepositoryOptions,
) (repositories.HistoryRepository, error) {
	repoDir := opts.RepoDir
	if repoDir == "" {
		repoDir = "."
	}
	backend := opts.Backend
	if backend == "" {
		backend = entities.DefaultBackend
	}
	history, err := registry.Open(backend, repoDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open history for %s: %w", repoDir, err)
	}
	return history, nil
}

// readAll drains input, honouring cancellation before the read starts.
func readAll(ctx context.Context, input io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(input)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// nonEmptyLines splits text into lines, dropping blank ones.
func nonEmptyLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
	}
	return lines
}
