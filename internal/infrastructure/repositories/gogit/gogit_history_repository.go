package gogit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	"github.com/rios0rios0/gitscribe/internal/domain/repositories"
)

const (
	shortHashLength = 7
	dateLayout      = "2006-01-02"
)

// HistoryRepository implements repositories.HistoryRepository on top of an
// in-process go-git repository; no git binary is required.
type HistoryRepository struct {
	repo *git.Repository
}

var _ repositories.HistoryRepository = (*HistoryRepository)(nil)

// NewHistoryRepository opens the repository containing path.
func NewHistoryRepository(path string) (repositories.HistoryRepository, error) {
	//nolint:exhaustruct // only DetectDotGit is relevant
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", path, err)
	}
	return NewHistoryRepositoryFromGit(repo), nil
}

// NewHistoryRepositoryFromGit wraps an already opened repository.
func NewHistoryRepositoryFromGit(repo *git.Repository) *HistoryRepository {
	return &HistoryRepository{repo: repo}
}

type datedTag struct {
	tag  entities.Tag
	when time.Time
}

// Tags lists tags newest first by tagger date (annotated) or commit date
// (lightweight).
func (it *HistoryRepository) Tags(ctx context.Context) ([]entities.Tag, error) {
	iter, err := it.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var dated []datedTag
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		entry, resolveErr := it.resolveTag(ref)
		if resolveErr != nil {
			logger.Debugf("Skipping tag %s: %v", ref.Name().Short(), resolveErr)
			return nil
		}
		dated = append(dated, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].when.After(dated[j].when)
	})

	tags := make([]entities.Tag, 0, len(dated))
	for _, entry := range dated {
		tags = append(tags, entry.tag)
	}
	return tags, nil
}

func (it *HistoryRepository) resolveTag(ref *plumbing.Reference) (datedTag, error) {
	name := ref.Name().Short()

	tagObj, err := it.repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, commitErr := tagObj.Commit()
		if commitErr != nil {
			return datedTag{}, commitErr
		}
		return datedTag{
			tag: entities.Tag{
				Name:       name,
				CommitHash: shortHash(commit.Hash),
				Date:       tagObj.Tagger.When.Format(dateLayout),
				Message:    firstLine(tagObj.Message),
			},
			when: tagObj.Tagger.When,
		}, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		commit, commitErr := it.repo.CommitObject(ref.Hash())
		if commitErr != nil {
			return datedTag{}, commitErr
		}
		return datedTag{
			tag: entities.Tag{
				Name:       name,
				CommitHash: shortHash(commit.Hash),
				Date:       commit.Committer.When.Format(dateLayout),
			},
			when: commit.Committer.When,
		}, nil
	default:
		return datedTag{}, err
	}
}

// CommitSubjectsSince mirrors `git log --oneline --no-merges <tag>..HEAD`.
func (it *HistoryRepository) CommitSubjectsSince(ctx context.Context, tag string, limit int) ([]string, error) {
	head, err := it.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return []string{}, nil // no commits yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	excluded := map[plumbing.Hash]struct{}{}
	if tag != "" {
		tagHash, resolveErr := it.repo.ResolveRevision(plumbing.Revision(tag))
		if resolveErr != nil {
			return nil, fmt.Errorf("unknown revision %q: %w", tag, resolveErr)
		}
		if excluded, err = it.ancestors(ctx, *tagHash); err != nil {
			return nil, err
		}
	}

	//nolint:exhaustruct // default traversal order
	commits, err := it.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history: %w", err)
	}
	defer commits.Close()

	subjects := []string{}
	err = commits.ForEach(func(commit *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if _, seen := excluded[commit.Hash]; seen {
			return nil
		}
		if commit.NumParents() > 1 {
			return nil
		}
		subjects = append(subjects, shortHash(commit.Hash)+" "+firstLine(commit.Message))
		if tag == "" && limit > 0 && len(subjects) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read commits: %w", err)
	}
	return subjects, nil
}

func (it *HistoryRepository) ancestors(ctx context.Context, from plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	//nolint:exhaustruct // default traversal order
	commits, err := it.repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history from %s: %w", from, err)
	}
	defer commits.Close()

	seen := map[plumbing.Hash]struct{}{}
	err = commits.ForEach(func(commit *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		seen[commit.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read commits from %s: %w", from, err)
	}
	return seen, nil
}

// LastCommitMessage returns the HEAD commit message.
func (it *HistoryRepository) LastCommitMessage(_ context.Context) (string, error) {
	head, err := it.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	commit, err := it.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD commit: %w", err)
	}
	return commit.Message, nil
}

// CommitPatch renders the patch of revision against its first parent.
func (it *HistoryRepository) CommitPatch(ctx context.Context, revision string) (string, error) {
	if revision == "" {
		revision = plumbing.HEAD.String()
	}

	hash, err := it.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", fmt.Errorf("unknown revision %q: %w", revision, err)
	}
	commit, err := it.repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("failed to read tree of %s: %w", hash, err)
	}

	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, parentErr := commit.Parent(0)
		if parentErr != nil {
			return "", fmt.Errorf("failed to read parent of %s: %w", hash, parentErr)
		}
		if parentTree, err = parent.Tree(); err != nil {
			return "", fmt.Errorf("failed to read parent tree of %s: %w", hash, err)
		}
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", hash, err)
	}
	patch, err := changes.PatchContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to build patch for %s: %w", hash, err)
	}
	return patch.String(), nil
}

// RemoteURL returns the first configured URL of the named remote.
func (it *HistoryRepository) RemoteURL(_ context.Context, name string) (string, error) {
	remote, err := it.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to read remote %q: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL", name)
	}
	return urls[0], nil
}

func shortHash(hash plumbing.Hash) string {
	return hash.String()[:shortHashLength]
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	return strings.TrimSpace(line)
}
