//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// TagBuilder helps create test tags with a fluent interface.
type TagBuilder struct {
	*testkit.BaseBuilder
	name       string
	commitHash string
	date       string
	message    string
}

// NewTagBuilder creates a new tag builder with sensible defaults.
func NewTagBuilder() *TagBuilder {
	return &TagBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "v1.0.0",
		commitHash:  "abc1234",
		date:        "2024-01-01",
	}
}

// WithName sets the tag name.
func (b *TagBuilder) WithName(name string) *TagBuilder {
	b.name = name
	return b
}

// WithCommitHash sets the tagged commit hash.
func (b *TagBuilder) WithCommitHash(hash string) *TagBuilder {
	b.commitHash = hash
	return b
}

// WithDate sets the tag date.
func (b *TagBuilder) WithDate(date string) *TagBuilder {
	b.date = date
	return b
}

// WithMessage sets the annotation message.
func (b *TagBuilder) WithMessage(message string) *TagBuilder {
	b.message = message
	return b
}

// Build creates the tag (satisfies testkit.Builder interface).
func (b *TagBuilder) Build() interface{} {
	return b.BuildTag()
}

// BuildTag creates the tag with a concrete return type.
func (b *TagBuilder) BuildTag() entities.Tag {
	return entities.Tag{
		Name:       b.name,
		CommitHash: b.commitHash,
		Date:       b.date,
		Message:    b.message,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *TagBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "v1.0.0"
	b.commitHash = "abc1234"
	b.date = "2024-01-01"
	b.message = ""
	return b
}

// Clone creates a deep copy of the TagBuilder.
func (b *TagBuilder) Clone() testkit.Builder {
	return &TagBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		commitHash:  b.commitHash,
		date:        b.date,
		message:     b.message,
	}
}
