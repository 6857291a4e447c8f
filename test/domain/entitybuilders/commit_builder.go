//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// CommitBuilder helps create test commits with a fluent interface.
type CommitBuilder struct {
	*testkit.BaseBuilder
	commitType entities.CommitType
	scope      string
	breaking   bool
	subject    string
	body       string
}

// NewCommitBuilder creates a new commit builder with sensible defaults.
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		commitType:  entities.CommitTypeFeat,
		scope:       "core",
		subject:     "add something",
		body:        "details",
	}
}

// WithType sets the commit type.
func (b *CommitBuilder) WithType(commitType entities.CommitType) *CommitBuilder {
	b.commitType = commitType
	return b
}

// WithScope sets the scope.
func (b *CommitBuilder) WithScope(scope string) *CommitBuilder {
	b.scope = scope
	return b
}

// WithBreaking sets the breaking-change marker.
func (b *CommitBuilder) WithBreaking(breaking bool) *CommitBuilder {
	b.breaking = breaking
	return b
}

// WithSubject sets the subject.
func (b *CommitBuilder) WithSubject(subject string) *CommitBuilder {
	b.subject = subject
	return b
}

// WithBody sets the body.
func (b *CommitBuilder) WithBody(body string) *CommitBuilder {
	b.body = body
	return b
}

// Build creates the commit (satisfies testkit.Builder interface).
func (b *CommitBuilder) Build() interface{} {
	return b.BuildCommit()
}

// BuildCommit creates the commit with a concrete return type.
func (b *CommitBuilder) BuildCommit() entities.ConventionalCommit {
	return entities.ConventionalCommit{
		Type:     b.commitType,
		Scope:    b.scope,
		Breaking: b.breaking,
		Subject:  b.subject,
		Body:     b.body,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.commitType = entities.CommitTypeFeat
	b.scope = "core"
	b.breaking = false
	b.subject = "add something"
	b.body = "details"
	return b
}

// Clone creates a deep copy of the CommitBuilder.
func (b *CommitBuilder) Clone() testkit.Builder {
	return &CommitBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		commitType:  b.commitType,
		scope:       b.scope,
		breaking:    b.breaking,
		subject:     b.subject,
		body:        b.body,
	}
}
