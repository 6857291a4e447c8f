//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	"github.com/rios0rios0/gitscribe/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitscribe/internal/infrastructure/repositories"
)

// StubBackend is the backend name RegistryWith registers the stub under.
const StubBackend = "stub"

// SpyHistoryRepository implements repositories.HistoryRepository as a configurable spy.
type SpyHistoryRepository struct {
	// --- Tags ---
	TagList []entities.Tag
	TagsErr error

	// --- CommitSubjectsSince ---
	Subjects       []string
	SubjectsErr    error
	RequestedTag   string
	RequestedLimit int
	SubjectsCalls  int

	// --- LastCommitMessage ---
	Message    string
	MessageErr error

	// --- CommitPatch ---
	Patches           map[string]string // revision -> patch
	PatchErr          error
	RequestedRevision string

	// --- RemoteURL ---
	Remotes map[string]string // name -> url
}

var _ repositories.HistoryRepository = (*SpyHistoryRepository)(nil)

func (s *SpyHistoryRepository) Tags(_ context.Context) ([]entities.Tag, error) {
	return s.TagList, s.TagsErr
}

func (s *SpyHistoryRepository) CommitSubjectsSince(_ context.Context, tag string, limit int) ([]string, error) {
	s.SubjectsCalls++
	s.RequestedTag = tag
	s.RequestedLimit = limit
	return s.Subjects, s.SubjectsErr
}

func (s *SpyHistoryRepository) LastCommitMessage(_ context.Context) (string, error) {
	return s.Message, s.MessageErr
}

func (s *SpyHistoryRepository) CommitPatch(_ context.Context, revision string) (string, error) {
	s.RequestedRevision = revision
	if s.PatchErr != nil {
		return "", s.PatchErr
	}
	if patch, ok := s.Patches[revision]; ok {
		return patch, nil
	}
	return "", fmt.Errorf("unknown revision %q", revision)
}

func (s *SpyHistoryRepository) RemoteURL(_ context.Context, name string) (string, error) {
	if url, ok := s.Remotes[name]; ok {
		return url, nil
	}
	return "", fmt.Errorf("remote %q not found", name)
}

// RegistryWith returns a registry whose StubBackend always opens history.
// The paths passed to Open are appended to opened when it is not nil.
func RegistryWith(history repositories.HistoryRepository, opened *[]string) *infraRepos.HistoryRegistry {
	registry := infraRepos.NewHistoryRegistry()
	registry.Register(StubBackend, func(path string) (repositories.HistoryRepository, error) {
		if opened != nil {
			*opened = append(*opened, path)
		}
		return history, nil
	})
	return registry
}
