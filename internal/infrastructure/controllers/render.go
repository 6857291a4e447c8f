package controllers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// writePatches renders patches as a two-gutter listing (old, new).
func writePatches(w io.Writer, patches []entities.FilePatch) {
	if len(patches) == 0 {
		fmt.Fprintln(w, "No diff available")
		return
	}

	for i, patch := range patches {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (+%d -%d)\n", patch.DisplayPath(), patch.Additions(), patch.Deletions())
		for _, hunk := range patch.Hunks {
			fmt.Fprintln(w, hunk.Header)
			for _, line := range hunk.Lines {
				fmt.Fprintf(w, "%5s %5s %s%s\n",
					lineNumber(line.HasOldLineNumber(), line.OldLineNumber),
					lineNumber(line.HasNewLineNumber(), line.NewLineNumber),
					marker(line.Kind), line.Content)
			}
		}
	}
}

func lineNumber(present bool, n int) string {
	if !present {
		return ""
	}
	return strconv.Itoa(n)
}

func marker(kind entities.LineKind) string {
	switch kind {
	case entities.LineAdded:
		return "+"
	case entities.LineRemoved:
		return "-"
	default:
		return " "
	}
}

// writeReleasePlan renders the release plan as Markdown.
func writeReleasePlan(w io.Writer, plan *commands.ReleasePlan) {
	latest := plan.LatestTag
	if latest == "" {
		latest = "none"
	}
	fmt.Fprintf(w, "Latest tag: %s\n", latest)
	if len(plan.Suggestions) > 0 {
		fmt.Fprintf(w, "Suggested: %s\n", strings.Join(plan.Suggestions, ", "))
	}
	if plan.Remote != nil && plan.Remote.IsGitHub() {
		fmt.Fprintf(w, "GitHub: %s/%s\n", plan.Remote.Org, plan.Remote.RepoName)
	}
	fmt.Fprintf(w, "Version: %s\n\n%s\n", plan.Version, plan.Notes)
}
