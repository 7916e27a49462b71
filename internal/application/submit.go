package application

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/jonathan/job-apply-bot/internal/errors"
	"github.com/jonathan/job-apply-bot/internal/observability"
	"github.com/jonathan/job-apply-bot/internal/packaging"
	"github.com/jonathan/job-apply-bot/internal/types"
)

// SubmitOptions holds the inputs of a submit run
type SubmitOptions struct {
	OutputDir string
	Verbose   bool // also print a details box per package
}

// Review loads every package one level below dir in lexicographic path
// order. It fails when dir is missing or holds no packages.
func Review(dir string) ([]*types.ApplicationPackage, []string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, fmt.Sprintf("Output directory not found: %s", dir), err)
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to access output directory: %s", dir), err)
	}

	var files []string
	if info.IsDir() {
		files, err = packaging.Discover(dir)
		if err != nil {
			return nil, nil, err
		}
	}
	if len(files) == 0 {
		return nil, nil, apperrors.New(apperrors.ErrCodeFileNotFound, "No application packages found. Run prepare first.")
	}

	packages := make([]*types.ApplicationPackage, 0, len(files))
	for _, file := range files {
		pkg, err := packaging.Read(file)
		if err != nil {
			return nil, nil, err
		}
		packages = append(packages, pkg)
	}

	return packages, files, nil
}

// Submit prints the dry-run listing of prepared packages. Nothing is sent
// anywhere and nothing on disk changes.
func Submit(opts SubmitOptions, printer *observability.Printer) ([]*types.ApplicationPackage, error) {
	packages, files, err := Review(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	slog.Info("reviewing packages", "out", opts.OutputDir, "count", len(packages))

	printer.PrintReviewHeader()
	for i, pkg := range packages {
		printer.PrintReviewLine(pkg)
		if opts.Verbose {
			printer.PrintPackageDetails(pkg, filepath.Dir(files[i]))
		}
	}
	printer.PrintManualNotice()

	return packages, nil
}
