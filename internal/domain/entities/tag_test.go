//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	"github.com/rios0rios0/gitscribe/test/domain/entitybuilders"
)

func TestParseTagList(t *testing.T) {
	t.Parallel()

	t.Run("should read pipe separated rows and pad missing fields", func(t *testing.T) {
		t.Parallel()

		// given
		output := "v1.2.0|abc1234|2024-05-01|Release 1.2 | hotfix\n\nv1.1.0|def5678\n"

		// when
		tags := entities.ParseTagList(output)

		// then
		assert.Equal(t, []entities.Tag{
			entitybuilders.NewTagBuilder().
				WithName("v1.2.0").
				WithDate("2024-05-01").
				WithMessage("Release 1.2 | hotfix").
				BuildTag(),
			entitybuilders.NewTagBuilder().
				WithName("v1.1.0").
				WithCommitHash("def5678").
				WithDate("").
				BuildTag(),
		}, tags)
		assert.Equal(t, []string{"v1.2.0", "v1.1.0"}, entities.TagNames(tags))
	})

	t.Run("should return an empty list for empty output", func(t *testing.T) {
		t.Parallel()

		tags := entities.ParseTagList("\n  \n")
		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})
}
