package rendering

import (
	_ "embed"
	"fmt"
	"os"

	apperrors "github.com/jonathan/job-apply-bot/internal/errors"
	"github.com/jonathan/job-apply-bot/internal/types"
)

// Placeholder names available to cover letter templates.
const (
	CandidateName      = "candidate_name"
	CandidateEmail     = "candidate_email"
	CandidatePhone     = "candidate_phone"
	CandidateLocation  = "candidate_location"
	CandidateLinkedIn  = "candidate_linkedin"
	CandidatePortfolio = "candidate_portfolio"
	JobCompany         = "job_company"
	JobTitle           = "job_title"
	JobLocation        = "job_location"
	Resume             = "resume"
)

// Placeholders is the fixed set of names a template may reference.
var Placeholders = []string{
	CandidateName,
	CandidateEmail,
	CandidatePhone,
	CandidateLocation,
	CandidateLinkedIn,
	CandidatePortfolio,
	JobCompany,
	JobTitle,
	JobLocation,
	Resume,
}

// DefaultTemplatePath is reported in logs when no --template is given.
const DefaultTemplatePath = "(built-in) templates/cover_letter.md"

//go:embed templates/cover_letter.md
var defaultTemplate string

// DefaultTemplate returns the built-in cover letter template text.
func DefaultTemplate() string {
	return defaultTemplate
}

// LoadTemplate reads and parses the template at path. An empty path selects
// the built-in template.
func LoadTemplate(path string) (*Template, error) {
	text := defaultTemplate
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound,
					fmt.Sprintf("template file not found: %s", path), err)
			}
			return nil, apperrors.Wrap(apperrors.ErrCodeIO,
				fmt.Sprintf("failed to read template file: %s", path), err)
		}
		text = string(content)
	}

	tmpl, err := ParseTemplate(text)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeTemplate, "failed to parse template", err,
			map[string]any{"path": path})
	}

	return tmpl, nil
}

// CoverLetterValues builds the placeholder values for one candidate and job.
// Absent optional fields render as empty strings.
func CoverLetterValues(candidate types.Candidate, job types.Job, resume string) map[string]string {
	return map[string]string{
		CandidateName:      candidate.Name,
		CandidateEmail:     candidate.Email,
		CandidatePhone:     candidate.Phone,
		CandidateLocation:  types.Deref(candidate.Location),
		CandidateLinkedIn:  types.Deref(candidate.LinkedIn),
		CandidatePortfolio: types.Deref(candidate.Portfolio),
		JobCompany:         job.Company,
		JobTitle:           job.Title,
		JobLocation:        types.Deref(job.Location),
		Resume:             resume,
	}
}

// RenderCoverLetter renders tmpl for one candidate and job.
func RenderCoverLetter(tmpl *Template, candidate types.Candidate, job types.Job, resume string) (string, error) {
	letter, err := tmpl.Execute(CoverLetterValues(candidate, job, resume))
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeTemplate, "failed to render cover letter", err,
			map[string]any{"company": job.Company, "title": job.Title})
	}
	return letter, nil
}
