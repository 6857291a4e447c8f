package entities

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	oldFilePrefix = "--- "
	newFilePrefix = "+++ "
	hunkPrefix    = "@@ "
	devNull       = "/dev/null"
)

// hunkHeaderPattern matches "@@ -<old>[,<count>] +<new>[,<count>] @@".
var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// LineKind classifies a data row of a hunk.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdded
	LineRemoved
)

func (k LineKind) String() string {
	switch k {
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	default:
		return "context"
	}
}

// DiffLine is one data row of a hunk with its marker stripped.
// A zero line number means the row does not exist on that side.
type DiffLine struct {
	Kind          LineKind
	Content       string
	OldLineNumber int
	NewLineNumber int
}

// HasOldLineNumber reports whether the row exists in the old file.
func (l DiffLine) HasOldLineNumber() bool { return l.Kind != LineAdded }

// HasNewLineNumber reports whether the row exists in the new file.
func (l DiffLine) HasNewLineNumber() bool { return l.Kind != LineRemoved }

// Hunk is one contiguous change region. Header is kept verbatim for display.
type Hunk struct {
	Header   string
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []DiffLine
}

// FilePatch is the diff of a single file. OldPath is empty for a created
// file and NewPath is empty for a deleted one.
type FilePatch struct {
	OldPath string
	NewPath string
	Hunks   []Hunk
}

// DisplayPath returns the path a viewer should show for the patch.
func (f FilePatch) DisplayPath() string {
	if f.NewPath != "" {
		return f.NewPath
	}
	return f.OldPath
}

// IsNew reports whether the patch creates the file.
func (f FilePatch) IsNew() bool { return f.OldPath == "" && f.NewPath != "" }

// IsDeleted reports whether the patch removes the file.
func (f FilePatch) IsDeleted() bool { return f.NewPath == "" && f.OldPath != "" }

// Additions counts added rows across all hunks.
func (f FilePatch) Additions() int { return f.countKind(LineAdded) }

// Deletions counts removed rows across all hunks.
func (f FilePatch) Deletions() int { return f.countKind(LineRemoved) }

func (f FilePatch) countKind(kind LineKind) int {
	total := 0
	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			if line.Kind == kind {
				total++
			}
		}
	}
	return total
}

// scanState is the position of the diff scanner in the file/hunk structure.
type scanState int

const (
	scanNoFile scanState = iota
	scanInFile
	scanInHunk
)

// diffScanner replays the unified-diff line numbering in a single pass.
type diffScanner struct {
	state      scanState
	files      []FilePatch
	file       FilePatch
	hunk       Hunk
	oldCounter int
	newCounter int
}

// ParseDiff converts the output of a unified-diff generator into patches,
// one per file in input order. It never fails: malformed or truncated input
// produces an empty or partial result.
//
// Rows that are not file markers, hunk headers, or data rows (extended git
// headers, "\ No newline at end of file", binary notices) are ignored.
func ParseDiff(raw string) []FilePatch {
	if strings.TrimSpace(raw) == "" {
		return []FilePatch{}
	}

	scanner := &diffScanner{state: scanNoFile}
	for _, line := range strings.Split(strings.TrimSuffix(raw, "\n"), "\n") {
		scanner.feed(strings.TrimSuffix(line, "\r"))
	}
	return scanner.finish()
}

func (s *diffScanner) feed(line string) {
	switch {
	case strings.HasPrefix(line, oldFilePrefix):
		s.flushFile()
		s.file = FilePatch{OldPath: parsePatchPath(line[len(oldFilePrefix):], "a/")}
		s.state = scanInFile

	case strings.HasPrefix(line, newFilePrefix) && s.state != scanNoFile:
		s.file.NewPath = parsePatchPath(line[len(newFilePrefix):], "b/")

	case strings.HasPrefix(line, hunkPrefix) && s.state != scanNoFile:
		s.flushHunk()
		s.openHunk(line)

	case s.state == scanInHunk:
		s.addDataRow(line)
	}
}

func (s *diffScanner) openHunk(header string) {
	s.hunk = Hunk{Header: header, OldStart: 1, OldCount: 1, NewStart: 1, NewCount: 1}
	if m := hunkHeaderPattern.FindStringSubmatch(header); m != nil {
		s.hunk.OldStart = atoiOr(m[1], 1)
		s.hunk.OldCount = atoiOr(m[2], 1)
		s.hunk.NewStart = atoiOr(m[3], 1)
		s.hunk.NewCount = atoiOr(m[4], 1)
	}
	s.oldCounter = s.hunk.OldStart
	s.newCounter = s.hunk.NewStart
	s.state = scanInHunk
}

func (s *diffScanner) addDataRow(line string) {
	if line == "" {
		s.appendContext("")
		return
	}

	switch line[0] {
	case '+':
		s.hunk.Lines = append(s.hunk.Lines, DiffLine{
			Kind:          LineAdded,
			Content:       line[1:],
			NewLineNumber: s.newCounter,
		})
		s.newCounter++
	case '-':
		s.hunk.Lines = append(s.hunk.Lines, DiffLine{
			Kind:          LineRemoved,
			Content:       line[1:],
			OldLineNumber: s.oldCounter,
		})
		s.oldCounter++
	case ' ':
		s.appendContext(line[1:])
	}
}

func (s *diffScanner) appendContext(content string) {
	s.hunk.Lines = append(s.hunk.Lines, DiffLine{
		Kind:          LineContext,
		Content:       content,
		OldLineNumber: s.oldCounter,
		NewLineNumber: s.newCounter,
	})
	s.oldCounter++
	s.newCounter++
}

// flushHunk moves the open hunk, if any, into the open file.
func (s *diffScanner) flushHunk() {
	if s.state != scanInHunk {
		return
	}
	s.file.Hunks = append(s.file.Hunks, s.hunk)
	s.hunk = Hunk{}
	s.state = scanInFile
}

// flushFile moves the open file, if any, into the output.
func (s *diffScanner) flushFile() {
	s.flushHunk()
	if s.state == scanNoFile {
		return
	}
	s.files = append(s.files, s.file)
	s.file = FilePatch{}
	s.state = scanNoFile
}

func (s *diffScanner) finish() []FilePatch {
	s.flushFile()
	if s.files == nil {
		return []FilePatch{}
	}
	return s.files
}

// parsePatchPath strips the side prefix and any tab-separated timestamp,
// and maps /dev/null to the empty path.
func parsePatchPath(raw, sidePrefix string) string {
	path, _, _ := strings.Cut(raw, "\t")
	if path == devNull {
		return ""
	}
	return strings.TrimPrefix(path, sidePrefix)
}

func atoiOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
