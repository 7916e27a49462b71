// Package types provides the data model for application packages: the
// candidate, the job posting and the package that ties them together.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimestampLayout is the created_at format: UTC, second precision, trailing Z.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Candidate is the job seeker. Optional fields are nil when not supplied.
type Candidate struct {
	Name       string  `json:"name" yaml:"name" validate:"required"`
	Email      string  `json:"email" yaml:"email" validate:"required"`
	Phone      string  `json:"phone" yaml:"phone" validate:"required"`
	ResumePath string  `json:"resume_path" yaml:"resume_path" validate:"required"`
	Location   *string `json:"location" yaml:"location"`
	LinkedIn   *string `json:"linkedin" yaml:"linkedin"`
	Portfolio  *string `json:"portfolio" yaml:"portfolio"`
}

// Validate validates the Candidate using the validator.
func (c *Candidate) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// WellFormedEmail reports whether Email parses as an email address. A
// malformed address is not an error; prepare only warns about it.
func (c *Candidate) WellFormedEmail() bool {
	return validator.New().Var(c.Email, "email") == nil
}

// Job is a single job posting, one per row of the jobs CSV.
type Job struct {
	Company  string  `json:"company"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Location *string `json:"location"`
}

// ApplicationPackage is everything generated for one job. It is written once
// and never modified.
type ApplicationPackage struct {
	Candidate   Candidate `json:"candidate"`
	Job         Job       `json:"job"`
	CoverLetter string    `json:"cover_letter"`
	CreatedAt   string    `json:"created_at"`
}

// NewApplicationPackage composes a package stamped with createdAt.
func NewApplicationPackage(candidate Candidate, job Job, coverLetter string, createdAt time.Time) *ApplicationPackage {
	return &ApplicationPackage{
		Candidate:   candidate,
		Job:         job,
		CoverLetter: coverLetter,
		CreatedAt:   FormatTimestamp(createdAt),
	}
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}

// Optional returns nil for blank input and a pointer to the trimmed value otherwise.
func Optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Deref returns the pointed-to value, or "" when absent.
func Deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
