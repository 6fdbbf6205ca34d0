// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-analyzer/internal/types"
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobResult outputs a human-readable summary of an analyzed job posting.
func (p *Printer) PrintJobResult(result *types.JobPostingResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", result.Title))
	if result.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", result.Company))
	}
	if result.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", result.Location))
	}
	sb.WriteString(fmt.Sprintf("Site:     %s\n", result.Site))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", result.ExperienceLevel))
	if result.YearsOfExperience != nil {
		sb.WriteString(fmt.Sprintf("Years:    %d+\n", *result.YearsOfExperience))
	}
	sb.WriteString(fmt.Sprintf("Language: %s\n", result.Language))
	if len(result.PositionTypes) > 0 {
		sb.WriteString(fmt.Sprintf("Position: %s\n", strings.Join(result.PositionTypes, ", ")))
	}
	sb.WriteString("\n")

	if len(result.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(result.Skills)))
		count := min(len(result.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Skills[i]))
		}
		if len(result.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(result.Requirements), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Requirements[i]))
		}
		if len(result.Requirements) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Requirements)-3))
		}
	}

	p.printBox("JOB POSTING ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRelevanceScores outputs the top ranked repositories with scores and
// matched terms.
func (p *Printer) PrintRelevanceScores(scores []types.RelevanceScore) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total repositories ranked: %d\n\n", len(scores)))

	count := min(len(scores), maxItemsToShow)
	for i := 0; i < count; i++ {
		score := scores[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, score.SubjectID))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", score.Score, score.Recommendation))
		if len(score.Matched) > 0 {
			terms := make([]string, 0, len(score.Matched))
			for _, match := range score.Matched {
				terms = append(terms, match.MatchedTerm)
			}
			joined := strings.Join(terms, ", ")
			if len(joined) > 40 {
				joined = joined[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", joined))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scores) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more repositories", len(scores)-maxItemsToShow))
	}

	p.printBox("REPOSITORY RANKING", sb.String())
}

// PrintSkillMatch outputs a resume skill match summary.
func (p *Printer) PrintSkillMatch(score types.RelevanceScore) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d (%s)\n", score.Score, score.Recommendation))
	sb.WriteString(fmt.Sprintf("Matched: %d  Partial: %d  Missing: %d\n",
		len(score.Matched), len(score.PartialMatches), len(score.Missing)))

	if len(score.Missing) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(score.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", score.Missing[i]))
		}
		if len(score.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Missing)-maxItemsToShow))
		}
	}

	p.printBox("RESUME SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}
