package entities

import (
	"regexp"
	"strings"
)

var (
	// leadingHashPattern matches the abbreviated hash of a `git log --oneline` row.
	leadingHashPattern = regexp.MustCompile(`^[0-9a-f]+ `)
	// typeTokenPattern captures the type token of a conventional header.
	typeTokenPattern = regexp.MustCompile(`^(\w+)(?:\([^()\n]*\))?!?:`)
)

// ReleaseCategory is a release-notes section.
type ReleaseCategory int

const (
	ReleaseFeatures ReleaseCategory = iota
	ReleaseBugFixes
	ReleaseRefactors
	ReleaseDocs
	ReleaseOther
)

// ReleaseCategories returns the sections in the order they are rendered.
func ReleaseCategories() []ReleaseCategory {
	return []ReleaseCategory{ReleaseFeatures, ReleaseBugFixes, ReleaseRefactors, ReleaseDocs, ReleaseOther}
}

// Title is the Markdown heading text of the section.
func (c ReleaseCategory) Title() string {
	switch c {
	case ReleaseFeatures:
		return "✨ Features"
	case ReleaseBugFixes:
		return "🐛 Bug Fixes"
	case ReleaseRefactors:
		return "♻️ Refactors"
	case ReleaseDocs:
		return "📚 Docs"
	default:
		return "🔧 Other"
	}
}

// CategorizeSubject places a commit subject in its release section based on
// its conventional type token. Subjects without a header, or whose type has
// no section of its own, go to ReleaseOther.
func CategorizeSubject(subject string) ReleaseCategory {
	m := typeTokenPattern.FindStringSubmatch(subject)
	if m == nil {
		return ReleaseOther
	}

	switch ParseCommitType(m[1]) {
	case CommitTypeFeat:
		return ReleaseFeatures
	case CommitTypeFix:
		return ReleaseBugFixes
	case CommitTypeRefactor:
		return ReleaseRefactors
	case CommitTypeDocs:
		return ReleaseDocs
	default:
		return ReleaseOther
	}
}

// ClassifyReleaseNotes turns `git log --oneline` rows ("<hash> <subject>")
// into Markdown release notes grouped by section. Sections appear in fixed
// order and only when non-empty; items keep their input order. Empty input
// yields "" so callers can substitute their own placeholder.
func ClassifyReleaseNotes(lines []string) string {
	groups := make(map[ReleaseCategory][]string)
	for _, line := range lines {
		subject := strings.TrimSpace(leadingHashPattern.ReplaceAllString(line, ""))
		if subject == "" {
			continue
		}
		category := CategorizeSubject(subject)
		groups[category] = append(groups[category], subject)
	}

	sections := make([]string, 0, len(groups))
	for _, category := range ReleaseCategories() {
		items := groups[category]
		if len(items) == 0 {
			continue
		}

		var sb strings.Builder
		sb.WriteString("### " + category.Title())
		for _, item := range items {
			sb.WriteString("\n- " + item)
		}
		sections = append(sections, sb.String())
	}
	return strings.Join(sections, "\n\n")
}
