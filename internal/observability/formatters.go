// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
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

// PrintScoreReport outputs a compact summary of a score report.
func (p *Printer) PrintScoreReport(r *types.ScoreReport) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall: %d/100 (%s)\n", r.OverallScore, r.Label))
	sb.WriteString(fmt.Sprintf("Format: %d/20  Keywords: %d/60  Integrity: %d/20\n",
		r.LayerScores.Format, r.LayerScores.Keyword, r.LayerScores.Integrity))
	sb.WriteString(fmt.Sprintf("Required skill match: %.1f%%\n", r.MatchPct))

	if len(r.MissingRequired) > 0 {
		sb.WriteString(fmt.Sprintf("Missing required: %s\n", joinCapped(r.MissingRequired)))
	}
	if len(r.MissingPreferred) > 0 {
		sb.WriteString(fmt.Sprintf("Missing preferred: %s\n", joinCapped(r.MissingPreferred)))
	}
	sb.WriteString(fmt.Sprintf("Findings: %d", len(r.Findings)))

	title := "ATS Score Report"
	if r.JobTitle != "" {
		title = fmt.Sprintf("ATS Score Report - %s", r.JobTitle)
	}
	p.printBox(title, sb.String())
}

// PrintFindings outputs each finding on its own line, grouped as ordered.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFindings(findings []types.Finding) {
	for _, finding := range findings {
		fmt.Fprintf(p.out, "  [%s/%s] %s: %s\n", finding.Layer, finding.Severity, finding.Code, finding.Message)
	}
}

// joinCapped joins up to maxItemsToShow items, noting how many were omitted.
func joinCapped(items []string) string {
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	shown := strings.Join(items[:maxItemsToShow], ", ")
	return fmt.Sprintf("%s (+%d more)", shown, len(items)-maxItemsToShow)
}
