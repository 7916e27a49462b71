package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/job-apply-bot/internal/types"
	"github.com/stretchr/testify/assert"
)

func samplePackage() *types.ApplicationPackage {
	return &types.ApplicationPackage{
		Candidate: types.Candidate{Name: "Ada Lovelace", Email: "ada@example.com"},
		Job: types.Job{
			Company:  "Acme",
			Title:    "Senior Engineer",
			URL:      "https://acme.example/jobs/1",
			Location: types.Optional("Remote"),
		},
		CoverLetter: "Line 1\nLine 2\nLine 3\nLine 4\nLine 5\nLine 6\nLine 7",
		CreatedAt:   "2024-01-02T03:04:05Z",
	}
}

func TestPrintPrepared(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	second := samplePackage()
	second.Job.Company = "Globex"
	second.Job.Title = "Staff SRE"

	p.PrintPrepared([]*types.ApplicationPackage{samplePackage(), second})
	assert.Equal(t, "Prepared: Acme - Senior Engineer\nPrepared: Globex - Staff SRE\n", buf.String())
}

func TestPrintPrepared_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPrepared(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSavedTo(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSavedTo("/tmp/applications")
	assert.Equal(t, "\nPackages saved to: /tmp/applications\n", buf.String())
}

func TestReviewLine(t *testing.T) {
	assert.Equal(t,
		"- Acme | Senior Engineer | https://acme.example/jobs/1 -> Ada Lovelace (ada@example.com)",
		ReviewLine(samplePackage()))
}

func TestPrintReviewListing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReviewHeader()
	p.PrintReviewLine(samplePackage())
	p.PrintManualNotice()

	expected := "Dry-run review of applications:\n" +
		"- Acme | Senior Engineer | https://acme.example/jobs/1 -> Ada Lovelace (ada@example.com)\n" +
		"\n" +
		"Submission is intentionally manual to respect job board terms of service.\n" +
		"Use the generated cover letters and application JSON to apply on each site.\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrintPackageDetails(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPackageDetails(samplePackage(), "applications/acme-senior-engineer")
	output := buf.String()

	assert.Contains(t, output, "Acme - Senior Engineer")
	assert.Contains(t, output, "applications/acme-senior-engineer")
	assert.Contains(t, output, "2024-01-02T03:04:05Z")
	assert.Contains(t, output, "Remote")
	assert.Contains(t, output, "Line 5")
	assert.NotContains(t, output, "Line 6")
	assert.Contains(t, output, "... and 2 more lines")
}

func TestPrintPackageDetails_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPackageDetails(nil, "")
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line too wide: %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}
