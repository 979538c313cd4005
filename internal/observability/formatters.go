// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/team-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs the sub-scores and reasons for one pair.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s ↔ %s\n", result.UserID, result.CandidateID))
	sb.WriteString(fmt.Sprintf("Overall:     %d (%s)\n", result.Overall, result.Quality))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:      %d\n", result.SkillMatch))
	sb.WriteString(fmt.Sprintf("Goals:       %d\n", result.GoalAlignment))
	sb.WriteString(fmt.Sprintf("Work style:  %d\n", result.WorkStyleMatch))
	sb.WriteString(fmt.Sprintf("Experience:  %d\n", result.ExperienceBalance))

	if len(result.SharedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nShared skills: %s\n", joinLimited(result.SharedSkills)))
	}
	if len(result.ComplementarySkills) > 0 {
		sb.WriteString(fmt.Sprintf("Brings:        %s\n", joinLimited(result.ComplementarySkills)))
	}

	if len(result.Reasons) > 0 {
		sb.WriteString("\nWhy:\n")
		for _, reason := range result.Reasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}

	p.printBox("MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedMatches outputs the top matches for a user.
func (p *Printer) PrintRankedMatches(ranked *types.RankedMatches) {
	if ranked == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User: %s\n", ranked.UserID))
	sb.WriteString(fmt.Sprintf("Matches: %d", len(ranked.Matches)))
	if ranked.Skipped > 0 {
		sb.WriteString(fmt.Sprintf(" (%d invalid profiles skipped)", ranked.Skipped))
	}
	sb.WriteString("\n")

	count := min(len(ranked.Matches), maxItemsToShow)
	if count > 0 {
		sb.WriteString("\n")
	}
	for i := 0; i < count; i++ {
		m := ranked.Matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %-20s %3d  %s\n", i+1, m.CandidateID, m.Overall, m.Quality))
		if len(m.Reasons) > 0 {
			sb.WriteString(fmt.Sprintf("    %s\n", m.Reasons[0]))
		}
	}
	if len(ranked.Matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(ranked.Matches)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

func joinLimited(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:maxItemsToShow], ", ") + fmt.Sprintf(" +%d", len(items)-maxItemsToShow)
}
