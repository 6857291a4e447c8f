package repositories

import (
	"context"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// HistoryRepository reads the raw material the grammars work on from a Git
// repository: tags, one-line commit subjects, commit messages and patches.
type HistoryRepository interface {
	// Tags lists the repository tags, newest first.
	Tags(ctx context.Context) ([]entities.Tag, error)

	// CommitSubjectsSince returns "<short-hash> <subject>" rows for the
	// non-merge commits reachable from HEAD but not from tag, newest first.
	// With an empty tag the last limit commits are returned (limit <= 0
	// means no limit).
	CommitSubjectsSince(ctx context.Context, tag string, limit int) ([]string, error)

	// LastCommitMessage returns the full message of the HEAD commit.
	LastCommitMessage(ctx context.Context) (string, error)

	// CommitPatch returns the unified diff of revision against its first
	// parent (or against the empty tree for a root commit).
	CommitPatch(ctx context.Context, revision string) (string, error)

	// RemoteURL returns the first URL of the named remote.
	RemoteURL(ctx context.Context, name string) (string, error)
}
