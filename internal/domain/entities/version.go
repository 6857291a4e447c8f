package entities

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rios0rios0/gitforge/pkg/global/domain/helpers"
	"golang.org/x/mod/semver"
)

const versionComponents = 3

// SuggestNextVersions proposes the next release tags after latest.
//
// With no previous tag it offers v0.1.0 and v1.0.0. A tag of the form
// [v]MAJOR.MINOR.PATCH yields the patch, minor and major bumps in that order.
// Anything else, including a component that cannot be bumped without
// overflowing, yields an empty list, meaning no suggestion can be made.
func SuggestNextVersions(latest string) []string {
	if latest == "" {
		return []string{"v0.1.0", "v1.0.0"}
	}

	numbers, ok := parseStrictVersion(latest)
	if !ok {
		return []string{}
	}

	major, minor, patch := numbers[0], numbers[1], numbers[2]
	return []string{
		fmt.Sprintf("v%d.%d.%d", major, minor, patch+1),
		fmt.Sprintf("v%d.%d.0", major, minor+1),
		fmt.Sprintf("v%d.0.0", major+1),
	}
}

// parseStrictVersion splits [v]MAJOR.MINOR.PATCH into its bumpable numbers.
func parseStrictVersion(tag string) ([]int, bool) {
	parts := strings.Split(strings.TrimPrefix(tag, "v"), ".")
	if len(parts) != versionComponents {
		return nil, false
	}

	numbers := make([]int, 0, versionComponents)
	for _, part := range parts {
		n, ok := parseVersionNumber(part)
		if !ok || n == math.MaxInt {
			return nil, false
		}
		numbers = append(numbers, n)
	}
	return numbers, true
}

func parseVersionNumber(part string) (int, bool) {
	if part == "" {
		return 0, false
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, false
	}
	return n, true
}

// LatestVersionTag returns the highest tag of the form [v]MAJOR.MINOR.PATCH,
// so that SuggestNextVersions can always bump it. Without such a tag the
// highest semantic version wins (e.g. "v2" or a prerelease), then the first
// tag, and "" for an empty list.
func LatestVersionTag(tags []string) string {
	if len(tags) == 0 {
		return ""
	}

	sorted := make([]string, len(tags))
	copy(sorted, tags)
	sortVersionsDescending(sorted)

	for _, tag := range sorted {
		if _, ok := parseStrictVersion(tag); ok {
			return tag
		}
	}
	if semver.IsValid(normalizeVersion(sorted[0])) {
		return sorted[0]
	}
	return tags[0]
}

// sortVersionsDescending sorts version strings newest first. Valid semantic
// versions sort ahead of anything else.
func sortVersionsDescending(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		v1 := normalizeVersion(versions[i])
		v2 := normalizeVersion(versions[j])
		valid1, valid2 := semver.IsValid(v1), semver.IsValid(v2)

		if valid1 && valid2 {
			return semver.Compare(v1, v2) > 0
		}
		return valid1 && !valid2
	})
}

func normalizeVersion(version string) string {
	return helpers.NormalizeVersion(strings.TrimSpace(version))
}
