// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/maya/wellspring/internal/types"
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

// scoreBar renders a 0-5 score as a ten-segment bar.
func scoreBar(score float64) string {
	filled := int(score * 2)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// PrintStressProfile outputs a human-readable summary of a scored assessment.
func (p *Printer) PrintStressProfile(profile *types.StressProfile, mood types.Mood) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mood:      %s\n\n", mood.String()))
	sb.WriteString(fmt.Sprintf("Stress     %s  %.2f\n", scoreBar(profile.Stress), profile.Stress))
	sb.WriteString(fmt.Sprintf("Cognitive  %s  %.2f\n", scoreBar(profile.Cognitive), profile.Cognitive))
	sb.WriteString(fmt.Sprintf("Behavior   %s  %.2f\n", scoreBar(profile.Behavior), profile.Behavior))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall    %s  %.2f", scoreBar(profile.Overall), profile.Overall))

	p.printBox("STRESS PROFILE", sb.String())
}

// PrintRecommendations outputs the recommendation bundle with scores.
func (p *Printer) PrintRecommendations(rec *types.Recommendation) {
	if rec == nil || (len(rec.Books) == 0 && len(rec.Music) == 0) {
		return
	}

	var sb strings.Builder

	if len(rec.Books) > 0 {
		sb.WriteString("Books:\n")
		count := min(len(rec.Books), maxItemsToShow)
		for i := 0; i < count; i++ {
			book := rec.Books[i]
			title := book.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  #%d  %s\n", i+1, title))
			sb.WriteString(fmt.Sprintf("      %s · score %.2f\n", book.Genre, book.Score))
		}
		sb.WriteString("\n")
	}

	if len(rec.Music) > 0 {
		sb.WriteString("Music:\n")
		count := min(len(rec.Music), maxItemsToShow)
		for i := 0; i < count; i++ {
			track := rec.Music[i]
			title := track.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  #%d  %s\n", i+1, title))
			sb.WriteString(fmt.Sprintf("      %s · score %.2f\n", track.Mood, track.Score))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Confidence: %.0f/100", rec.ConfidenceScore))

	p.printBox("RECOMMENDATIONS", sb.String())
}

// PrintInsights outputs the assembled insight cards grouped by category.
func (p *Printer) PrintInsights(cards []types.InsightCard) {
	if len(cards) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d insight cards:\n\n", len(cards)))

	for i, card := range cards {
		text := card.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s]\n", card.Category))
		sb.WriteString(fmt.Sprintf("  %s\n", text))
		if i < len(cards)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INSIGHTS", sb.String())
}
