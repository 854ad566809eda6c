// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
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

// PrintExtraction outputs the skills found in a piece of text.
func (p *Printer) PrintExtraction(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d (confidence %.2f)\n\n", len(result.Skills), result.Confidence))

	count := min(len(result.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := result.Skills[i]
		sb.WriteString(fmt.Sprintf("  • %s [%s] %s %.2f\n", s.Name, s.Category, s.Proficiency, s.Confidence))
	}
	if len(result.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-maxItemsToShow))
	}

	if len(result.Suggestions) > 0 {
		names := make([]string, 0, len(result.Suggestions))
		for _, s := range result.Suggestions {
			names = append(names, s.Name)
		}
		sb.WriteString(fmt.Sprintf("\nAsk about: %s\n", truncate(strings.Join(names, ", "), 40)))
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobRequirement outputs a summary of the requirement a profile is scored against.
func (p *Printer) PrintJobRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", req.Title))
	sb.WriteString(fmt.Sprintf("Years:    %.0f+\n", req.MinimumYears))
	if req.TargetProficiency != "" {
		sb.WriteString(fmt.Sprintf("Level:    %s\n", req.TargetProficiency))
	}
	sb.WriteString("\n")

	if len(req.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(req.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := req.RequiredSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", skill.Name))
			if skill.Proficiency != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", skill.Proficiency))
			}
			if skill.Importance != "" {
				sb.WriteString(fmt.Sprintf(" %s", skill.Importance))
			}
			sb.WriteString("\n")
		}
		if len(req.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.RequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoringResult outputs the overall score, the category breakdown and the top notes.
func (p *Printer) PrintScoringResult(result *types.ScoringResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profile:     %s\n", result.ProfileID))
	sb.WriteString(fmt.Sprintf("Overall:     %.2f (confidence %.2f)\n\n", result.OverallScore, result.Confidence))

	c := result.CategoryScores
	for _, row := range []struct {
		name  string
		score float64
	}{
		{"Technical", c.Technical},
		{"Communication", c.Communication},
		{"Experience", c.Experience},
		{"Cultural", c.Cultural},
		{"Behavioral", c.Behavioral},
		{"Education", c.Education},
	} {
		sb.WriteString(fmt.Sprintf("  %-14s %.2f %s\n", row.name, row.score, bar(row.score)))
	}

	if len(result.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range result.Strengths[:min(len(result.Strengths), 3)] {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", truncate(s, 50)))
		}
	}
	if len(result.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		for _, w := range result.Weaknesses[:min(len(result.Weaknesses), 3)] {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", truncate(w, 50)))
		}
	}

	p.printBox("SCORING RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSearchResult outputs the current page of a profile search.
func (p *Printer) PrintSearchResult(result *types.ProfileSearchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matches: %d (showing %d from offset %d)\n", result.Total, len(result.Profiles), result.Offset))

	count := min(len(result.Profiles), maxItemsToShow)
	for i := 0; i < count; i++ {
		summary := result.Profiles[i]
		sb.WriteString(fmt.Sprintf("\n%s  %s\n", summary.ID, summary.Name))
		sb.WriteString(fmt.Sprintf("    %.1f yrs", summary.YearsOfExperience))
		if summary.Score != nil {
			sb.WriteString(fmt.Sprintf("  score %.2f", summary.Score.Overall))
		}
		sb.WriteString("\n")
		if len(summary.TopSkills) > 0 {
			names := make([]string, 0, len(summary.TopSkills))
			for _, s := range summary.TopSkills {
				names = append(names, s.Name)
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(strings.Join(names, ", "), 40)))
		}
	}
	if len(result.Profiles) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more profiles\n", len(result.Profiles)-maxItemsToShow))
	}
	if len(result.Suggestions) > 0 {
		sb.WriteString(fmt.Sprintf("\nTry: %s\n", truncate(strings.Join(result.Suggestions, ", "), 45)))
	}

	p.printBox("PROFILE SEARCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs the ranking and the notes of a candidate comparison.
func (p *Printer) PrintComparison(result *types.ProfileComparisonResult) {
	if result == nil || len(result.Rankings) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range result.Rankings {
		sb.WriteString(fmt.Sprintf("#%d  %s", r.Rank, r.ProfileID))
		if r.Name != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", r.Name))
		}
		if r.Scored {
			sb.WriteString(fmt.Sprintf("  %.2f", r.OverallScore))
		} else {
			sb.WriteString("  not scored")
		}
		sb.WriteString("\n")
	}

	if len(result.Summary.KeyDifferentiators) > 0 {
		sb.WriteString("\nDifferentiators:\n")
		for _, d := range result.Summary.KeyDifferentiators {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(d, 50)))
		}
	}
	if len(result.Summary.Similarities) > 0 {
		sb.WriteString("\nIn common:\n")
		for _, s := range result.Summary.Similarities {
			sb.WriteString(fmt.Sprintf("  • %s\n", truncate(s, 50)))
		}
	}

	p.printBox("CANDIDATE COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalytics outputs population totals and the most common skills.
func (p *Printer) PrintAnalytics(a *types.ProfileAnalytics) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profiles:      %d (%d scored, %d flagged)\n", a.TotalProfiles, a.ScoredProfiles, a.FlaggedProfiles))
	sb.WriteString(fmt.Sprintf("Avg score:     %.2f\n", a.AverageScore))
	sb.WriteString(fmt.Sprintf("Avg years:     %.1f\n", a.AverageYears))
	sb.WriteString(fmt.Sprintf("Avg complete:  %.2f\n", a.AverageCompleteness))

	if len(a.TopSkills) > 0 {
		sb.WriteString("\nTop Skills:\n")
		count := min(len(a.TopSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", a.TopSkills[i].Value, a.TopSkills[i].Count))
		}
	}

	p.printBox("POOL ANALYTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// bar renders a 0-1 score as a ten-cell bar
func bar(score float64) string {
	filled := int(score*10 + 0.5)
	filled = max(0, min(filled, 10))
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
