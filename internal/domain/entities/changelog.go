package entities

import (
	"fmt"
	"strings"
)

const (
	unreleasedHeading = "## [Unreleased]"
	h1Prefix          = "# "
	h2Prefix          = "## ["
	releaseNotesLevel = "### "
	changelogSubLevel = "#### "
)

// InsertReleaseSection adds a "## [version] - date" section holding the
// generated release notes to a Keep-a-Changelog formatted string.
//
// Behaviour:
//   - The section goes right before the first released "## [" heading that
//     follows "## [Unreleased]", leaving the Unreleased block in place.
//   - Without an Unreleased heading it goes before the first "## [" heading,
//     or after the "# " title when there is no release yet.
//   - If a section for the same version already exists, content is returned
//     unchanged.
//   - Release-note headings ("### ") are demoted one level so they nest
//     under the version heading.
func InsertReleaseSection(content, version, date, notes string) string {
	lines := strings.Split(content, "\n")
	if findVersionIndex(lines, version) >= 0 {
		return content
	}

	heading := fmt.Sprintf("## [%s]", version)
	if date != "" {
		heading += " - " + date
	}

	block := []string{heading, ""}
	if body := demoteHeadings(notes); body != "" {
		block = append(block, strings.Split(body, "\n")...)
		block = append(block, "")
	}

	at := releaseInsertIndex(lines)
	if at > 0 && strings.TrimSpace(lines[at-1]) != "" {
		block = append([]string{""}, block...)
	}
	return strings.Join(insertLines(lines, at, block), "\n")
}

// releaseInsertIndex returns the line index where a new release section
// should start.
func releaseInsertIndex(lines []string) int {
	start := findUnreleasedIndex(lines)
	if start < 0 {
		start = findTitleIndex(lines)
	}

	if next := findNextH2Index(lines, start); next < len(lines) {
		return next
	}
	if start < 0 {
		return 0
	}
	return len(lines)
}

// findUnreleasedIndex returns the line index of the "## [Unreleased]"
// heading, or -1 if not found.
func findUnreleasedIndex(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == unreleasedHeading {
			return i
		}
	}
	return -1
}

func findTitleIndex(lines []string) int {
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), h1Prefix) {
			return i
		}
	}
	return -1
}

func findVersionIndex(lines []string, version string) int {
	prefix := fmt.Sprintf("## [%s]", version)
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return i
		}
	}
	return -1
}

// findNextH2Index returns the line index of the next "## [" heading after
// startIdx, or len(lines) if there is none.
func findNextH2Index(lines []string, startIdx int) int {
	for i := startIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), h2Prefix) {
			return i
		}
	}
	return len(lines)
}

func demoteHeadings(notes string) string {
	lines := strings.Split(strings.TrimSpace(notes), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, releaseNotesLevel) {
			lines[i] = changelogSubLevel + strings.TrimPrefix(line, releaseNotesLevel)
		}
	}
	return strings.Join(lines, "\n")
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
