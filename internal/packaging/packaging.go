// Package packaging writes application packages to disk and reads them back.
//
// Each package lives in its own directory under the output root, named by
// slug.Join(company, title). Two jobs with the same company and title share a
// directory, so the later write replaces the earlier one.
package packaging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	apperrors "github.com/jonathan/job-apply-bot/internal/errors"
	"github.com/jonathan/job-apply-bot/internal/schemas"
	"github.com/jonathan/job-apply-bot/internal/slug"
	"github.com/jonathan/job-apply-bot/internal/types"
)

// File names inside a package directory.
const (
	CoverLetterFile = "cover_letter.md"
	ApplicationFile = "application.json"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// OutputDir returns the directory a package is written to under baseDir.
func OutputDir(pkg *types.ApplicationPackage, baseDir string) string {
	return filepath.Join(baseDir, slug.Join(pkg.Job.Company, pkg.Job.Title))
}

// Write creates the package directory (and any parents), writes the cover
// letter and the JSON metadata, and returns the directory path. Existing
// files are overwritten.
func Write(pkg *types.ApplicationPackage, baseDir string) (string, error) {
	data, err := Marshal(pkg)
	if err != nil {
		return "", err
	}

	dir := OutputDir(pkg, baseDir)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to create package directory: %s", dir), err)
	}

	coverPath := filepath.Join(dir, CoverLetterFile)
	if err := os.WriteFile(coverPath, []byte(pkg.CoverLetter), filePerm); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to write cover letter: %s", coverPath), err)
	}

	applicationPath := filepath.Join(dir, ApplicationFile)
	if err := os.WriteFile(applicationPath, data, filePerm); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to write application: %s", applicationPath), err)
	}

	return dir, nil
}

// Marshal encodes pkg as two-space indented JSON with non-ASCII and HTML
// characters left as-is, and checks the result against the application schema.
func Marshal(pkg *types.ApplicationPackage) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pkg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMalformedInput, "failed to marshal application package", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if err := schemas.ValidateApplication(data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMalformedInput, "application package does not match schema", err)
	}

	return data, nil
}

// Read loads and validates one application.json file.
func Read(path string) (*types.ApplicationPackage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, fmt.Sprintf("application file not found: %s", path), err)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to read application file: %s", path), err)
	}

	if err := schemas.ValidateApplication(data); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeMalformedInput,
			fmt.Sprintf("invalid application file: %s", path), err, map[string]any{"path": path})
	}

	var pkg types.ApplicationPackage
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMalformedInput, fmt.Sprintf("failed to parse application file: %s", path), err)
	}

	return &pkg, nil
}

// Discover returns every application.json exactly one directory below
// baseDir, sorted lexicographically by path. baseDir is taken literally, so
// names containing glob metacharacters are fine.
func Discover(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to scan output directory: %s", baseDir), err)
	}

	var files []string
	for _, entry := range entries {
		candidate := filepath.Join(baseDir, entry.Name(), ApplicationFile)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, candidate)
	}
	sort.Strings(files)

	return files, nil
}
