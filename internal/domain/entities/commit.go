package entities

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	// ErrMissingType is returned by Validate when no known commit type is set.
	ErrMissingType = errors.New("commit type is required")
	// ErrEmptySubject is returned by Validate when the subject is blank.
	ErrEmptySubject = errors.New("commit subject is required")
)

// conventionalPattern matches `type(scope)!: subject` optionally followed by
// a blank line and a body.
var conventionalPattern = regexp.MustCompile(
	`^(\w+)(?:\(([^()\n]*)\))?(!)?: ([^\n]+)(?:\n\n([\s\S]*))?$`,
)

// CommitType is one of the ten conventional-commit types, or CommitTypeNone.
type CommitType int

const (
	CommitTypeNone CommitType = iota
	CommitTypeFeat
	CommitTypeFix
	CommitTypeChore
	CommitTypeDocs
	CommitTypeRefactor
	CommitTypeTest
	CommitTypeCI
	CommitTypePerf
	CommitTypeStyle
	CommitTypeRevert
)

type commitTypeInfo struct {
	token       string
	description string
}

//nolint:gochecknoglobals // closed lookup table
var commitTypes = map[CommitType]commitTypeInfo{
	CommitTypeFeat:     {"feat", "New feature"},
	CommitTypeFix:      {"fix", "Bug fix"},
	CommitTypeChore:    {"chore", "Build/tool changes"},
	CommitTypeDocs:     {"docs", "Documentation"},
	CommitTypeRefactor: {"refactor", "Code restructuring"},
	CommitTypeTest:     {"test", "Adding tests"},
	CommitTypeCI:       {"ci", "CI/CD changes"},
	CommitTypePerf:     {"perf", "Performance tweak"},
	CommitTypeStyle:    {"style", "Formatting, whitespace"},
	CommitTypeRevert:   {"revert", "Revert a commit"},
}

// AllCommitTypes returns the known types in builder order.
func AllCommitTypes() []CommitType {
	return []CommitType{
		CommitTypeFeat, CommitTypeFix, CommitTypeChore, CommitTypeDocs, CommitTypeRefactor,
		CommitTypeTest, CommitTypeCI, CommitTypePerf, CommitTypeStyle, CommitTypeRevert,
	}
}

// ParseCommitType maps a type token to its CommitType. Unknown tokens,
// including near misses such as "feature", yield CommitTypeNone.
func ParseCommitType(token string) CommitType {
	for _, ct := range AllCommitTypes() {
		if commitTypes[ct].token == token {
			return ct
		}
	}
	return CommitTypeNone
}

// String returns the type token, or "" for CommitTypeNone.
func (t CommitType) String() string { return commitTypes[t].token }

// Description is the short help text shown next to the type.
func (t CommitType) Description() string { return commitTypes[t].description }

// IsKnown reports whether t is one of the ten conventional types.
func (t CommitType) IsKnown() bool {
	_, ok := commitTypes[t]
	return ok
}

// ConventionalCommit is the structured form of a commit message.
type ConventionalCommit struct {
	Type     CommitType
	Scope    string
	Breaking bool
	Subject  string
	Body     string
}

// ParseCommitMessage reads a commit message into its structured form.
// Messages that are not conventional, including ones whose type token is not
// a known type, fall back to: first line as subject, the text after the first
// blank line (trimmed) as body. CRLF line endings are read as LF and
// trailing whitespace is ignored.
func ParseCommitMessage(text string) ConventionalCommit {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, " \t\r\n")
	if m := conventionalPattern.FindStringSubmatch(text); m != nil {
		if commitType := ParseCommitType(m[1]); commitType.IsKnown() {
			return ConventionalCommit{
				Type:     commitType,
				Scope:    m[2],
				Breaking: m[3] == "!",
				Subject:  m[4],
				Body:     m[5],
			}
		}
	}

	subject, _, _ := strings.Cut(text, "\n")
	commit := ConventionalCommit{Subject: subject}
	if _, body, found := strings.Cut(text, "\n\n"); found {
		commit.Body = strings.TrimSpace(body)
	}
	return commit
}

// Header returns the first line of the composed message.
func (c ConventionalCommit) Header() string {
	subject := sanitizeLine(c.Subject)
	if !c.Type.IsKnown() {
		return subject
	}

	var sb strings.Builder
	sb.WriteString(c.Type.String())
	if scope := sanitizeScope(c.Scope); scope != "" {
		sb.WriteString("(" + scope + ")")
	}
	if c.Breaking {
		sb.WriteString("!")
	}
	sb.WriteString(": ")
	sb.WriteString(subject)
	return strings.TrimSpace(sb.String())
}

// Compose formats the commit as `type(scope)!: subject`, followed by a blank
// line and the body when one is set. Without a known type only the subject
// and body are emitted. The result holds no control characters besides '\n'.
func (c ConventionalCommit) Compose() string {
	header := c.Header()
	body := sanitizeBody(c.Body)
	if body == "" {
		return header
	}
	if header == "" {
		return body
	}
	return header + "\n\n" + body
}

// Validate applies the commit builder rule: a known type and a subject.
func (c ConventionalCommit) Validate() error {
	var errs []error
	if !c.Type.IsKnown() {
		errs = append(errs, ErrMissingType)
	}
	if sanitizeLine(c.Subject) == "" {
		errs = append(errs, ErrEmptySubject)
	}
	return errors.Join(errs...)
}

func sanitizeLine(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}

func sanitizeScope(s string) string {
	return sanitizeLine(strings.NewReplacer("(", "", ")", "").Replace(s))
}

func sanitizeBody(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}
