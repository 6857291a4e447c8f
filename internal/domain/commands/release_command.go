package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	"github.com/rios0rios0/gitscribe/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitscribe/internal/infrastructure/repositories"
)

const (
	originRemote      = "origin"
	fallbackVersion   = "v0.1.0"
	newChangelog      = "# Changelog\n\n## [Unreleased]\n"
	changelogFileMode = 0o644
)

// Release is the interface for the release command.
type Release interface {
	Execute(ctx context.Context, opts ReleaseOptions) (*ReleasePlan, error)
}

// ReleaseOptions holds runtime options for the release command.
//
// When Input is set it supplies the "<hash> <subject>" rows and LatestTag
// names the previous release; the repository is not opened. Otherwise both
// come from the repository.
type ReleaseOptions struct {
	RepositoryOptions
	Input           io.Reader
	LatestTag       string
	Version         string // defaults to the first suggestion
	Date            time.Time
	LogLimit        int
	Placeholder     string
	UpdateChangelog bool
	ChangelogPath   string // relative to RepoDir unless absolute
}

// ReleasePlan is everything the release dialog shows before tagging.
type ReleasePlan struct {
	LatestTag        string
	Suggestions      []string
	Version          string
	Notes            string
	Commits          int
	Remote           *entities.Remote
	ChangelogPath    string
	ChangelogUpdated bool
}

// ReleaseCommand prepares release notes and the next version.
type ReleaseCommand struct {
	registry *infraRepos.HistoryRegistry
}

// NewReleaseCommand creates a new ReleaseCommand with the given history registry.
func NewReleaseCommand(registry *infraRepos.HistoryRegistry) *ReleaseCommand {
	return &ReleaseCommand{registry: registry}
}

// Execute builds the release plan and optionally records it in the changelog.
func (it *ReleaseCommand) Execute(ctx context.Context, opts ReleaseOptions) (*ReleasePlan, error) {
	plan := &ReleasePlan{LatestTag: opts.LatestTag}

	var subjects []string
	if opts.Input != nil {
		text, err := readAll(ctx, opts.Input)
		if err != nil {
			return nil, err
		}
		subjects = nonEmptyLines(text)
	} else {
		history, err := openHistory(it.registry, opts.RepositoryOptions)
		if err != nil {
			return nil, err
		}
		if subjects, err = it.collect(ctx, history, plan, opts); err != nil {
			return nil, err
		}
		plan.Remote = detectRemote(ctx, history)
	}

	plan.Commits = len(subjects)
	plan.Suggestions = entities.SuggestNextVersions(plan.LatestTag)
	plan.Version = pickVersion(opts.Version, plan.Suggestions)

	plan.Notes = entities.ClassifyReleaseNotes(subjects)
	if plan.Notes == "" {
		plan.Notes = opts.Placeholder
	}
	logger.Infof("Prepared release %s from %d commit(s) since %q", plan.Version, plan.Commits, plan.LatestTag)

	if opts.UpdateChangelog {
		if err := it.updateChangelog(plan, opts); err != nil {
			return plan, err
		}
	}
	return plan, nil
}

func (it *ReleaseCommand) collect(
	ctx context.Context,
	history repositories.HistoryRepository,
	plan *ReleasePlan,
	opts ReleaseOptions,
) ([]string, error) {
	if plan.LatestTag == "" {
		tags, err := history.Tags(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tags: %w", err)
		}
		plan.LatestTag = entities.LatestVersionTag(entities.TagNames(tags))
	}

	subjects, err := history.CommitSubjectsSince(ctx, plan.LatestTag, opts.LogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits since %q: %w", plan.LatestTag, err)
	}
	return subjects, nil
}

// detectRemote parses the origin URL; a missing or foreign remote is not an error.
func detectRemote(ctx context.Context, history repositories.HistoryRepository) *entities.Remote {
	url, err := history.RemoteURL(ctx, originRemote)
	if err != nil {
		logger.Debugf("No %s remote: %v", originRemote, err)
		return nil
	}
	remote, err := entities.ParseRemoteURL(url)
	if err != nil {
		logger.Debugf("Remote %s not recognised: %v", originRemote, err)
		return nil
	}
	return remote
}

func pickVersion(requested string, suggestions []string) string {
	if requested != "" {
		return requested
	}
	if len(suggestions) > 0 {
		return suggestions[0]
	}
	return fallbackVersion
}

func (it *ReleaseCommand) updateChangelog(plan *ReleasePlan, opts ReleaseOptions) error {
	path := opts.ChangelogPath
	if path == "" {
		path = entities.DefaultChangelogPath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(opts.RepoDir, path)
	}
	plan.ChangelogPath = path

	content := newChangelog
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		content = string(data)
	case errors.Is(err, fs.ErrNotExist):
		logger.Infof("Creating %s", path)
	default:
		return fmt.Errorf("failed to read changelog %q: %w", path, err)
	}

	date := ""
	if !opts.Date.IsZero() {
		date = opts.Date.Format("2006-01-02")
	}
	updated := entities.InsertReleaseSection(content, plan.Version, date, plan.Notes)
	if updated == content {
		logger.Warnf("Changelog %s already has a section for %s", path, plan.Version)
		return nil
	}

	if writeErr := os.WriteFile(path, []byte(updated), changelogFileMode); writeErr != nil {
		return fmt.Errorf("failed to write changelog %q: %w", path, writeErr)
	}
	plan.ChangelogUpdated = true
	return nil
}
