package entities

import "strings"

const tagFieldCount = 4

// Tag is a release tag as listed by
// `git tag --format=%(refname:short)|%(objectname:short)|%(creatordate:short)|%(contents:subject)`.
type Tag struct {
	Name       string
	CommitHash string
	Date       string
	Message    string // empty for lightweight tags
}

// TagNames returns the tag names in input order.
func TagNames(tags []Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

// ParseTagList reads one tag per line from pipe-separated output. Blank lines
// are skipped and missing fields are left empty; the subject may itself
// contain '|'.
func ParseTagList(output string) []Tag {
	tags := []Tag{}
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.SplitN(line, "|", tagFieldCount)
		for len(fields) < tagFieldCount {
			fields = append(fields, "")
		}
		tags = append(tags, Tag{
			Name:       strings.TrimSpace(fields[0]),
			CommitHash: strings.TrimSpace(fields[1]),
			Date:       strings.TrimSpace(fields[2]),
			Message:    strings.TrimSpace(fields[3]),
		})
	}
	return tags
}
