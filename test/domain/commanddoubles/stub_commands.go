//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// StubDiffCommand is a stub implementation of commands.Diff.
type StubDiffCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Patches          []entities.FilePatch
	LastOpts         commands.DiffOptions
}

var _ commands.Diff = (*StubDiffCommand)(nil)

func (s *StubDiffCommand) Execute(_ context.Context, opts commands.DiffOptions) ([]entities.FilePatch, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Patches, s.ExecuteErr
}

// StubCommitCommand is a stub implementation of commands.Commit.
type StubCommitCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.CommitResult
	LastOpts         commands.CommitOptions
}

var _ commands.Commit = (*StubCommitCommand)(nil)

func (s *StubCommitCommand) Execute(_ context.Context, opts commands.CommitOptions) (*commands.CommitResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubParseCommitCommand is a stub implementation of commands.ParseCommit.
type StubParseCommitCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Commit           entities.ConventionalCommit
	LastOpts         commands.ParseCommitOptions
}

var _ commands.ParseCommit = (*StubParseCommitCommand)(nil)

func (s *StubParseCommitCommand) Execute(
	_ context.Context,
	opts commands.ParseCommitOptions,
) (entities.ConventionalCommit, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Commit, s.ExecuteErr
}

// StubReleaseCommand is a stub implementation of commands.Release.
type StubReleaseCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Plan             *commands.ReleasePlan
	LastOpts         commands.ReleaseOptions
}

var _ commands.Release = (*StubReleaseCommand)(nil)

func (s *StubReleaseCommand) Execute(_ context.Context, opts commands.ReleaseOptions) (*commands.ReleasePlan, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Plan, s.ExecuteErr
}

// StubVersionsCommand is a stub implementation of commands.Versions.
type StubVersionsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Suggestion       *commands.VersionSuggestion
	LastOpts         commands.VersionsOptions
}

var _ commands.Versions = (*StubVersionsCommand)(nil)

func (s *StubVersionsCommand) Execute(
	_ context.Context,
	opts commands.VersionsOptions,
) (*commands.VersionSuggestion, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Suggestion, s.ExecuteErr
}
