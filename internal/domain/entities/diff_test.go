//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

const multiFileDiff = `diff --git a/cmd/main.go b/cmd/main.go
index 83db48f..bf269f4 100644
--- a/cmd/main.go
+++ b/cmd/main.go
@@ -10,3 +10,5 @@ func main() {
 	cfg := load()
-	run(cfg)
+	if err := run(cfg); err != nil {
+		os.Exit(1)
+	}
 }
@@ -40,3 +42,2 @@ func run(cfg Config) error {
 	return nil
-	// unreachable
 }
diff --git a/docs/NOTES.md b/docs/NOTES.md
new file mode 100644
index 0000000..3b18e51
--- /dev/null
+++ b/docs/NOTES.md
@@ -0,0 +1,2 @@
+# Notes
+first entry
diff --git a/old.txt b/old.txt
deleted file mode 100644
index 3b18e51..0000000
--- a/old.txt
+++ /dev/null
@@ -1 +0,0 @@
-gone
`

func contextRow(content string, oldNum, newNum int) entities.DiffLine {
	return entities.DiffLine{Kind: entities.LineContext, Content: content, OldLineNumber: oldNum, NewLineNumber: newNum}
}

func removedRow(content string, oldNum int) entities.DiffLine {
	return entities.DiffLine{Kind: entities.LineRemoved, Content: content, OldLineNumber: oldNum}
}

func addedRow(content string, newNum int) entities.DiffLine {
	return entities.DiffLine{Kind: entities.LineAdded, Content: content, NewLineNumber: newNum}
}

func TestParseDiff(t *testing.T) {
	t.Parallel()

	t.Run("should parse a single file with one hunk", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "--- a/x.txt\n+++ b/x.txt\n@@ -1,2 +1,3 @@\n keep\n-old\n+new\n+added\n"

		// when
		patches := entities.ParseDiff(raw)

		// then
		want := []entities.FilePatch{{
			OldPath: "x.txt",
			NewPath: "x.txt",
			Hunks: []entities.Hunk{{
				Header:   "@@ -1,2 +1,3 @@",
				OldStart: 1, OldCount: 2, NewStart: 1, NewCount: 3,
				Lines: []entities.DiffLine{
					contextRow("keep", 1, 1),
					removedRow("old", 2),
					addedRow("new", 2),
					addedRow("added", 3),
				},
			}},
		}}
		if diff := cmp.Diff(want, patches); diff != "" {
			t.Errorf("ParseDiff() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should give the same result without a trailing newline", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "--- a/x.txt\n+++ b/x.txt\n@@ -1,2 +1,3 @@\n keep\n-old\n+new\n+added"

		// when
		patches := entities.ParseDiff(raw)

		// then
		require.Len(t, patches, 1)
		require.Len(t, patches[0].Hunks, 1)
		assert.Len(t, patches[0].Hunks[0].Lines, 4)
	})

	t.Run("should return an empty slice for empty or blank input", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "   ", "\n\n\t\n"} {
			// when
			patches := entities.ParseDiff(raw)

			// then
			assert.NotNil(t, patches)
			assert.Empty(t, patches)
		}
	})

	t.Run("should split multiple files and hunks in order", func(t *testing.T) {
		t.Parallel()

		// when
		patches := entities.ParseDiff(multiFileDiff)

		// then
		require.Len(t, patches, 3)
		assert.Equal(t, "cmd/main.go", patches[0].DisplayPath())
		require.Len(t, patches[0].Hunks, 2)
		assert.Equal(t, "@@ -40,3 +42,2 @@ func run(cfg Config) error {", patches[0].Hunks[1].Header)
		assert.Equal(t, []entities.DiffLine{
			contextRow("\treturn nil", 40, 42),
			removedRow("\t// unreachable", 41),
			contextRow("}", 42, 43),
		}, patches[0].Hunks[1].Lines)
		assert.Equal(t, 3, patches[0].Additions())
		assert.Equal(t, 2, patches[0].Deletions())
	})

	t.Run("should leave the missing side of created and deleted files empty", func(t *testing.T) {
		t.Parallel()

		// when
		patches := entities.ParseDiff(multiFileDiff)

		// then
		require.Len(t, patches, 3)
		created, deleted := patches[1], patches[2]
		assert.Empty(t, created.OldPath)
		assert.Equal(t, "docs/NOTES.md", created.NewPath)
		assert.True(t, created.IsNew())
		assert.Equal(t, "old.txt", deleted.OldPath)
		assert.Empty(t, deleted.NewPath)
		assert.True(t, deleted.IsDeleted())
		assert.Equal(t, "old.txt", deleted.DisplayPath())
		assert.Equal(t, []entities.DiffLine{removedRow("gone", 1)}, deleted.Hunks[0].Lines)
	})

	t.Run("should default counters to 1 when the hunk header is unparsable", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "--- a/f\n+++ b/f\n@@ garbage @@\n a\n-b\n+c\n"

		// when
		patches := entities.ParseDiff(raw)

		// then
		require.Len(t, patches, 1)
		hunk := patches[0].Hunks[0]
		assert.Equal(t, "@@ garbage @@", hunk.Header)
		assert.Equal(t, []entities.DiffLine{contextRow("a", 1, 1), removedRow("b", 2), addedRow("c", 2)}, hunk.Lines)
	})

	t.Run("should ignore no-newline markers and rows outside hunks", func(t *testing.T) {
		t.Parallel()

		// given
		raw := strings.Join([]string{
			"some preamble",
			"@@ -1 +1 @@",
			"+orphan",
			"--- a/f",
			"index 123..456",
			"+++ b/f",
			"@@ -1 +1 @@",
			"-a",
			`\ No newline at end of file`,
			"+b",
			`\ No newline at end of file`,
		}, "\n")

		// when
		patches := entities.ParseDiff(raw)

		// then
		require.Len(t, patches, 1)
		require.Len(t, patches[0].Hunks, 1)
		assert.Equal(t, []entities.DiffLine{removedRow("a", 1), addedRow("b", 1)}, patches[0].Hunks[0].Lines)
	})

	t.Run("should treat an empty row inside a hunk as context", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "--- a/f\n+++ b/f\n@@ -3,3 +3,3 @@\n a\n\n b\n"

		// when
		patches := entities.ParseDiff(raw)

		// then
		assert.Equal(t, []entities.DiffLine{
			contextRow("a", 3, 3),
			contextRow("", 4, 4),
			contextRow("b", 5, 5),
		}, patches[0].Hunks[0].Lines)
	})

	t.Run("should strip carriage returns and timestamps", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "--- a.txt\t2024-01-01 10:00:00\r\n+++ b.txt\t2024-01-02 10:00:00\r\n@@ -1 +1 @@\r\n-x\r\n+y\r\n"

		// when
		patches := entities.ParseDiff(raw)

		// then
		require.Len(t, patches, 1)
		assert.Equal(t, "a.txt", patches[0].OldPath)
		assert.Equal(t, "b.txt", patches[0].NewPath)
		assert.Equal(t, []entities.DiffLine{removedRow("x", 1), addedRow("y", 1)}, patches[0].Hunks[0].Lines)
	})

	t.Run("should keep a file that has headers but no hunks", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "--- a/bin.png\n+++ b/bin.png\nBinary files a/bin.png and b/bin.png differ\n"

		// when
		patches := entities.ParseDiff(raw)

		// then
		require.Len(t, patches, 1)
		assert.Empty(t, patches[0].Hunks)
	})

	t.Run("should not panic on truncated or binary-looking input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"---",
			"--- ",
			"@@ ",
			"--- a/f\n@@ -",
			"--- a/f\n+++",
			"--- a/f\n@@ -1,2 +1,2 @@\n+",
			"--- a/f\n@@ -99999999999999999999 +1 @@\n x",
			"\x00\x01\x02\xff--- \xfe\n@@ -1 +1 @@\n\x00",
		}
		for _, raw := range inputs {
			assert.NotPanics(t, func() { entities.ParseDiff(raw) }, "input %q", raw)
		}
	})
}

func TestParseDiffLineNumbering(t *testing.T) {
	t.Parallel()

	t.Run("should start each hunk at its header and step by one", func(t *testing.T) {
		t.Parallel()

		// when
		patches := entities.ParseDiff(multiFileDiff)

		// then
		for _, patch := range patches {
			for _, hunk := range patch.Hunks {
				lastOld, lastNew := 0, 0
				for _, line := range hunk.Lines {
					if line.HasOldLineNumber() {
						if lastOld == 0 {
							assert.Equal(t, hunk.OldStart, line.OldLineNumber, hunk.Header)
						} else {
							assert.Equal(t, lastOld+1, line.OldLineNumber, hunk.Header)
						}
						lastOld = line.OldLineNumber
					}
					if line.HasNewLineNumber() {
						if lastNew == 0 {
							assert.Equal(t, hunk.NewStart, line.NewLineNumber, hunk.Header)
						} else {
							assert.Equal(t, lastNew+1, line.NewLineNumber, hunk.Header)
						}
						lastNew = line.NewLineNumber
					}
				}
			}
		}
	})

	t.Run("should agree with go-gitdiff on paths and line numbers", func(t *testing.T) {
		t.Parallel()

		// given
		reference, _, err := gitdiff.Parse(strings.NewReader(multiFileDiff))
		require.NoError(t, err)

		// when
		patches := entities.ParseDiff(multiFileDiff)

		// then
		require.Len(t, patches, len(reference))
		for i, file := range reference {
			assert.Equal(t, file.OldName, patches[i].OldPath)
			assert.Equal(t, file.NewName, patches[i].NewPath)
			require.Len(t, patches[i].Hunks, len(file.TextFragments))

			for j, fragment := range file.TextFragments {
				assert.Equal(t, referenceLines(fragment), patches[i].Hunks[j].Lines)
			}
		}
	})
}

// referenceLines replays a go-gitdiff fragment into DiffLines.
func referenceLines(fragment *gitdiff.TextFragment) []entities.DiffLine {
	oldNum, newNum := int(fragment.OldPosition), int(fragment.NewPosition)
	lines := make([]entities.DiffLine, 0, len(fragment.Lines))
	for _, line := range fragment.Lines {
		content := strings.TrimSuffix(line.Line, "\n")
		switch line.Op {
		case gitdiff.OpAdd:
			lines = append(lines, addedRow(content, newNum))
			newNum++
		case gitdiff.OpDelete:
			lines = append(lines, removedRow(content, oldNum))
			oldNum++
		case gitdiff.OpContext:
			lines = append(lines, contextRow(content, oldNum, newNum))
			oldNum++
			newNum++
		}
	}
	return lines
}
