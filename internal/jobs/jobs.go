// Package jobs loads job postings from a CSV file.
package jobs

import (
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/jonathan/job-apply-bot/internal/errors"
	"github.com/jonathan/job-apply-bot/internal/types"
)

// Recognized header columns.
const (
	ColumnCompany  = "company"
	ColumnTitle    = "title"
	ColumnURL      = "url"
	ColumnLocation = "location"
)

var requiredColumns = []string{ColumnCompany, ColumnTitle, ColumnURL}

const utf8BOM = "\ufeff"

// LoadJobs reads the CSV at path and returns one Job per data row in file order.
func LoadJobs(path string) ([]types.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, fmt.Sprintf("jobs file not found: %s", path), err)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to open jobs file: %s", path), err)
	}
	defer func() { _ = f.Close() }()

	jobs, err := ParseJobs(f)
	if err != nil {
		var se *apperrors.StructuredError
		if stderrors.As(err, &se) {
			if se.Context == nil {
				se.Context = map[string]any{}
			}
			se.Context["path"] = path
		}
		return nil, err
	}

	return jobs, nil
}

// ParseJobs reads CSV content with a header row from r.
func ParseJobs(r io.Reader) ([]types.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, apperrors.New(apperrors.ErrCodeMalformedInput, "jobs file is empty: missing header row")
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeMalformedInput, "failed to read jobs header", err)
	}

	index, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	jobs := []types.Job{}
	for {
		record, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeMalformedInput, "failed to parse jobs row", err)
		}

		jobs = append(jobs, types.Job{
			Company:  field(record, index, ColumnCompany),
			Title:    field(record, index, ColumnTitle),
			URL:      field(record, index, ColumnURL),
			Location: types.Optional(field(record, index, ColumnLocation)),
		})
	}

	return jobs, nil
}

// indexColumns maps header names to column positions. Unknown columns are ignored.
func indexColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeMalformedInput,
			fmt.Sprintf("jobs file is missing required columns: %s", strings.Join(missing, ", ")),
			map[string]any{"header": header})
	}

	return index, nil
}

// field returns the trimmed value of column, or "" when the row is too short
// or the column is absent.
func field(record []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
