// Package observability formats the human-readable output of the prepare and
// submit commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-apply-bot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewLines is how many cover letter lines a details box shows
	previewLines = 5
)

// Fixed text of the submit listing.
const (
	ReviewHeader = "Dry-run review of applications:"
	ManualNotice = "Submission is intentionally manual to respect job board terms of service."
	ManualHint   = "Use the generated cover letters and application JSON to apply on each site."
)

// Printer handles formatted command output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintPrepared writes one summary line per prepared package.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPrepared(packages []*types.ApplicationPackage) {
	for _, pkg := range packages {
		fmt.Fprintf(p.out, "Prepared: %s - %s\n", pkg.Job.Company, pkg.Job.Title)
	}
}

// PrintSavedTo writes the resolved output directory after a blank line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSavedTo(dir string) {
	fmt.Fprintf(p.out, "\nPackages saved to: %s\n", dir)
}

// PrintReviewHeader writes the heading of the submit listing.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReviewHeader() {
	fmt.Fprintln(p.out, ReviewHeader)
}

// PrintReviewLine writes the listing line for one package.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReviewLine(pkg *types.ApplicationPackage) {
	fmt.Fprintln(p.out, ReviewLine(pkg))
}

// ReviewLine formats "- company | title | url -> name (email)".
func ReviewLine(pkg *types.ApplicationPackage) string {
	return fmt.Sprintf("- %s | %s | %s -> %s (%s)",
		pkg.Job.Company, pkg.Job.Title, pkg.Job.URL, pkg.Candidate.Name, pkg.Candidate.Email)
}

// PrintManualNotice writes the closing notice of the submit listing.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintManualNotice() {
	fmt.Fprintf(p.out, "\n%s\n%s\n", ManualNotice, ManualHint)
}

// PrintPackageDetails outputs a box with the package's metadata and the
// first lines of its cover letter.
func (p *Printer) PrintPackageDetails(pkg *types.ApplicationPackage, dir string) {
	if pkg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Directory: %s\n", dir))
	sb.WriteString(fmt.Sprintf("Created:   %s\n", pkg.CreatedAt))
	if pkg.Job.Location != nil {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", *pkg.Job.Location))
	}
	sb.WriteString("\n")

	lines := strings.Split(strings.TrimSpace(pkg.CoverLetter), "\n")
	count := min(len(lines), previewLines)
	for i := 0; i < count; i++ {
		sb.WriteString(lines[i])
		sb.WriteString("\n")
	}
	if len(lines) > previewLines {
		sb.WriteString(fmt.Sprintf("... and %d more lines\n", len(lines)-previewLines))
	}

	p.printBox(fmt.Sprintf("%s - %s", pkg.Job.Company, pkg.Job.Title), strings.TrimSuffix(sb.String(), "\n"))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens long lines to fit the box, counting runes.
func truncate(line string) string {
	runes := []rune(line)
	if len(runes) > boxWidth-4 {
		return string(runes[:boxWidth-7]) + "..."
	}
	return line
}
