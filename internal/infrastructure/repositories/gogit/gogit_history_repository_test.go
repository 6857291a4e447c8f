//go:build unit

package gogit_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	"github.com/rios0rios0/gitscribe/internal/infrastructure/repositories/gogit"
)

//nolint:gochecknoglobals // fixed clock for reproducible history
var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	repo     *git.Repository
	worktree *git.Worktree
	root     plumbing.Hash
	fix      plumbing.Hash
	docs     plumbing.Hash
	merge    plumbing.Hash
}

func signature(offset time.Duration) *object.Signature {
	return &object.Signature{Name: "Jane Doe", Email: "jane@example.com", When: epoch.Add(offset)}
}

func (f *fixture) commit(t *testing.T, path, content, message string, offset time.Duration) plumbing.Hash {
	t.Helper()

	require.NoError(t, util.WriteFile(f.worktree.Filesystem, path, []byte(content), 0o644))
	_, err := f.worktree.Add(path)
	require.NoError(t, err)

	//nolint:exhaustruct // only the author matters
	hash, err := f.worktree.Commit(message, &git.CommitOptions{Author: signature(offset)})
	require.NoError(t, err)
	return hash
}

// newFixture builds:
//
//	root (tag v0.1.0, annotated) <- fix (tag v0.2.0, lightweight) <- docs <- merge(docs, fix)
func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo, err := git.Init(memory.NewStorage(), memfs.New())
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	f := &fixture{repo: repo, worktree: worktree}
	f.root = f.commit(t, "a.txt", "one\n", "feat: initial import", 0)
	f.fix = f.commit(t, "a.txt", "one\ntwo\n", "fix: handle nil\n\nGuard the lookup.\n", 2*time.Hour)
	f.docs = f.commit(t, "README.md", "# Widgets\n", "docs: add readme", 3*time.Hour)

	//nolint:exhaustruct // merge commit without changes
	f.merge, err = worktree.Commit("Merge branch 'topic'\n", &git.CommitOptions{
		Author:            signature(4 * time.Hour),
		Parents:           []plumbing.Hash{f.docs, f.fix},
		AllowEmptyCommits: true,
	})
	require.NoError(t, err)

	_, err = repo.CreateTag("v0.1.0", f.root, &git.CreateTagOptions{
		Tagger:  signature(time.Hour),
		Message: "Release v0.1.0\n",
	})
	require.NoError(t, err)
	_, err = repo.CreateTag("v0.2.0", f.fix, nil)
	require.NoError(t, err)

	//nolint:exhaustruct // name and URL are enough
	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:acme/widgets.git"},
	})
	require.NoError(t, err)
	return f
}

func short(hash plumbing.Hash) string {
	return hash.String()[:7]
}

func TestHistoryRepository_Tags(t *testing.T) {
	t.Parallel()

	t.Run("should list annotated and lightweight tags newest first", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		history := gogit.NewHistoryRepositoryFromGit(f.repo)

		// when
		tags, err := history.Tags(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Tag{
			{Name: "v0.2.0", CommitHash: short(f.fix), Date: "2024-03-01"},
			{Name: "v0.1.0", CommitHash: short(f.root), Date: "2024-03-01", Message: "Release v0.1.0"},
		}, tags)
	})
}

func TestHistoryRepository_CommitSubjectsSince(t *testing.T) {
	t.Parallel()

	t.Run("should list non-merge commits after the tag newest first", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		history := gogit.NewHistoryRepositoryFromGit(f.repo)

		// when
		subjects, err := history.CommitSubjectsSince(context.Background(), "v0.1.0", 0)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			short(f.docs) + " docs: add readme",
			short(f.fix) + " fix: handle nil",
		}, subjects)
	})

	t.Run("should apply the limit when no tag is given", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		history := gogit.NewHistoryRepositoryFromGit(f.repo)

		// when
		subjects, err := history.CommitSubjectsSince(context.Background(), "", 2)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			short(f.docs) + " docs: add readme",
			short(f.fix) + " fix: handle nil",
		}, subjects)
	})

	t.Run("should fail for an unknown tag", func(t *testing.T) {
		t.Parallel()

		// given
		history := gogit.NewHistoryRepositoryFromGit(newFixture(t).repo)

		// when
		_, err := history.CommitSubjectsSince(context.Background(), "v9.9.9", 0)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown revision "v9.9.9"`)
	})

	t.Run("should return nothing for a repository without commits", func(t *testing.T) {
		t.Parallel()

		// given
		repo, err := git.Init(memory.NewStorage(), memfs.New())
		require.NoError(t, err)
		history := gogit.NewHistoryRepositoryFromGit(repo)

		// when
		subjects, err := history.CommitSubjectsSince(context.Background(), "", 10)

		// then
		require.NoError(t, err)
		assert.Empty(t, subjects)
	})
}

func TestHistoryRepository_LastCommitMessage(t *testing.T) {
	t.Parallel()

	t.Run("should return the HEAD message verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		history := gogit.NewHistoryRepositoryFromGit(newFixture(t).repo)

		// when
		message, err := history.LastCommitMessage(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "Merge branch 'topic'\n", message)
	})
}

func TestHistoryRepository_CommitPatch(t *testing.T) {
	t.Parallel()

	t.Run("should render a patch that parses back into file patches", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		history := gogit.NewHistoryRepositoryFromGit(f.repo)

		// when
		raw, err := history.CommitPatch(context.Background(), f.fix.String())

		// then
		require.NoError(t, err)
		patches := entities.ParseDiff(raw)
		require.Len(t, patches, 1)
		assert.Equal(t, "a.txt", patches[0].DisplayPath())
		require.Len(t, patches[0].Hunks, 1)
		assert.Equal(t, []entities.DiffLine{
			{Kind: entities.LineContext, Content: "one", OldLineNumber: 1, NewLineNumber: 1},
			{Kind: entities.LineAdded, Content: "two", NewLineNumber: 2},
		}, patches[0].Hunks[0].Lines)
	})

	t.Run("should diff a root commit against the empty tree", func(t *testing.T) {
		t.Parallel()

		// given
		f := newFixture(t)
		history := gogit.NewHistoryRepositoryFromGit(f.repo)

		// when
		raw, err := history.CommitPatch(context.Background(), f.root.String())

		// then
		require.NoError(t, err)
		patches := entities.ParseDiff(raw)
		require.Len(t, patches, 1)
		assert.True(t, patches[0].IsNew())
		assert.Equal(t, "a.txt", patches[0].NewPath)
	})

	t.Run("should default to HEAD and follow its first parent", func(t *testing.T) {
		t.Parallel()

		// given
		history := gogit.NewHistoryRepositoryFromGit(newFixture(t).repo)

		// when
		raw, err := history.CommitPatch(context.Background(), "")

		// then
		require.NoError(t, err)
		assert.Empty(t, strings.TrimSpace(raw))
	})
}

func TestHistoryRepository_RemoteURL(t *testing.T) {
	t.Parallel()

	t.Run("should return the configured URL", func(t *testing.T) {
		t.Parallel()

		// given
		history := gogit.NewHistoryRepositoryFromGit(newFixture(t).repo)

		// when
		url, err := history.RemoteURL(context.Background(), "origin")

		// then
		require.NoError(t, err)
		assert.Equal(t, "git@github.com:acme/widgets.git", url)
	})

	t.Run("should fail for a missing remote", func(t *testing.T) {
		t.Parallel()

		// given
		history := gogit.NewHistoryRepositoryFromGit(newFixture(t).repo)

		// when
		_, err := history.RemoteURL(context.Background(), "upstream")

		// then
		require.Error(t, err)
	})
}

func TestNewHistoryRepository(t *testing.T) {
	t.Parallel()

	t.Run("should open a repository from a nested directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deeper"), 0o755))

		// when
		history, err := gogit.NewHistoryRepository(filepath.Join(dir, "nested", "deeper"))

		// then
		require.NoError(t, err)
		assert.NotNil(t, history)
	})

	t.Run("should fail outside a repository", func(t *testing.T) {
		t.Parallel()

		// when
		history, err := gogit.NewHistoryRepository(t.TempDir())

		// then
		require.Error(t, err)
		assert.Nil(t, history)
	})
}
