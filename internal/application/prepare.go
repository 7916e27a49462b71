// Package application drives the two commands: prepare, which renders and
// writes one package per job, and submit, which lists what prepare wrote.
package application

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/jonathan/job-apply-bot/internal/errors"
	"github.com/jonathan/job-apply-bot/internal/jobs"
	"github.com/jonathan/job-apply-bot/internal/observability"
	"github.com/jonathan/job-apply-bot/internal/packaging"
	"github.com/jonathan/job-apply-bot/internal/rendering"
	"github.com/jonathan/job-apply-bot/internal/resume"
	"github.com/jonathan/job-apply-bot/internal/types"
)

// PrepareOptions holds the inputs of a prepare run
type PrepareOptions struct {
	ResumePath   string
	JobsPath     string
	TemplatePath string // empty selects the built-in template
	OutputDir    string
	Candidate    types.Candidate
	Now          func() time.Time // defaults to time.Now
}

// PrepareResult describes the packages written by a prepare run
type PrepareResult struct {
	RunID     uuid.UUID
	OutputDir string // absolute
	Packages  []*types.ApplicationPackage
	Dirs      []string
}

// Prepare reads the resume and job list once, stamps a single UTC timestamp
// and writes one package per job in file order. The first failure stops the
// run; packages written before it stay on disk.
func Prepare(opts PrepareOptions) (*PrepareResult, error) {
	runID := uuid.New()
	logger := slog.With("run_id", runID.String())

	candidate := opts.Candidate
	if candidate.ResumePath == "" {
		candidate.ResumePath = opts.ResumePath
	}
	if err := candidate.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid candidate", err)
	}
	if !candidate.WellFormedEmail() {
		logger.Warn("candidate email does not look like an email address", "email", candidate.Email)
	}

	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to resolve output directory: %s", opts.OutputDir), err)
	}

	resumeText, err := resume.LoadResume(opts.ResumePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded resume", "path", opts.ResumePath, "chars", len(resumeText))

	jobList, err := jobs.LoadJobs(opts.JobsPath)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded jobs", "path", opts.JobsPath, "count", len(jobList))

	tmpl, err := rendering.LoadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	templatePath := opts.TemplatePath
	if templatePath == "" {
		templatePath = rendering.DefaultTemplatePath
	}
	logger.Debug("parsed template", "path", templatePath, "placeholders", tmpl.Placeholders())

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	createdAt := now()

	result := &PrepareResult{
		RunID:     runID,
		OutputDir: outputDir,
		Packages:  make([]*types.ApplicationPackage, 0, len(jobList)),
		Dirs:      make([]string, 0, len(jobList)),
	}

	for i, job := range jobList {
		letter, err := rendering.RenderCoverLetter(tmpl, candidate, job, resumeText)
		if err != nil {
			return nil, err
		}

		pkg := types.NewApplicationPackage(candidate, job, letter, createdAt)
		dir, err := packaging.Write(pkg, outputDir)
		if err != nil {
			return nil, err
		}
		logger.Debug("wrote package", "index", i, "company", job.Company, "title", job.Title, "dir", dir)

		result.Packages = append(result.Packages, pkg)
		result.Dirs = append(result.Dirs, dir)
	}

	logger.Info("prepare complete", "packages", len(result.Packages), "out", outputDir)
	return result, nil
}

// RunPrepare runs Prepare and, once every package is written, prints the
// summary lines and the output directory.
func RunPrepare(opts PrepareOptions, printer *observability.Printer) (*PrepareResult, error) {
	result, err := Prepare(opts)
	if err != nil {
		return nil, err
	}

	printer.PrintPrepared(result.Packages)
	printer.PrintSavedTo(result.OutputDir)

	return result, nil
}
