// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-refiner/internal/resume"
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

// PrintDocumentSummary outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintDocumentSummary(doc *resume.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	if !doc.Personal.IsZero() {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Personal.Name))
		if doc.Personal.Email != "" {
			sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Personal.Email))
		}
		sb.WriteString("\n")
	}

	if len(doc.Education.Degrees) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(doc.Education.Degrees), maxItemsToShow)
		for i := 0; i < count; i++ {
			d := doc.Education.Degrees[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", d.Degree, d.School))
		}
		if len(doc.Education.Degrees) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Education.Degrees)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(doc.Experience.Roles) > 0 {
		sb.WriteString("Roles:\n")
		count := min(len(doc.Experience.Roles), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := doc.Experience.Roles[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s\n", r.Title, r.Company))
		}
		if len(doc.Experience.Roles) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience.Roles)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(doc.Experience.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Projects: %d\n", len(doc.Experience.Projects)))
	}
	if len(doc.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(doc.Certifications)))
	}

	p.printBox("RESUME SUMMARY", strings.TrimRight(sb.String(), "\n"))
}

// PrintRefinementSummary outputs what a refinement produced before the
// user decides on it.
func (p *Printer) PrintRefinementSummary(section resume.SectionKind, refinedMarkdown, introduction string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Section:  %s\n", section))
	sb.WriteString(fmt.Sprintf("Length:   %d lines\n", countLines(refinedMarkdown)))

	if introduction != "" {
		sb.WriteString("\n")
		sb.WriteString(introduction)
	}

	p.printBox("REFINED SECTION", strings.TrimRight(sb.String(), "\n"))
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(strings.TrimRight(text, "\n"), "\n") + 1
}
