package packaging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/jonathan/job-apply-bot/internal/errors"
	"github.com/jonathan/job-apply-bot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func newPackage(company, title, letter string) *types.ApplicationPackage {
	return types.NewApplicationPackage(
		types.Candidate{
			Name:       "Ada Lovelace",
			Email:      "ada@example.com",
			Phone:      "555-0100",
			ResumePath: "resume.txt",
			Location:   types.Optional("London"),
		},
		types.Job{
			Company: company,
			Title:   title,
			URL:     "https://acme.example/jobs/1",
		},
		letter,
		createdAt,
	)
}

func TestOutputDir(t *testing.T) {
	pkg := newPackage("Acme", "Senior Engineer", "")
	assert.Equal(t, filepath.Join("out", "acme-senior-engineer"), OutputDir(pkg, "out"))
}

func TestWrite_CreatesFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "applications")
	pkg := newPackage("Acme", "Senior Engineer", "Dear Acme,\nHello.\n")

	dir, err := Write(pkg, base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "acme-senior-engineer"), dir)

	letter, err := os.ReadFile(filepath.Join(dir, CoverLetterFile))
	require.NoError(t, err)
	assert.Equal(t, "Dear Acme,\nHello.\n", string(letter))

	data, err := os.ReadFile(filepath.Join(dir, ApplicationFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"candidate\": {\n    \"name\": \"Ada Lovelace\""), "should be indented JSON: %s", data)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2024-05-06T07:08:09Z", doc["created_at"])
	assert.Equal(t, "Dear Acme,\nHello.\n", doc["cover_letter"])
	job := doc["job"].(map[string]any)
	assert.Equal(t, "Acme", job["company"])
	assert.Nil(t, job["location"])
	candidate := doc["candidate"].(map[string]any)
	assert.Equal(t, "London", candidate["location"])
	assert.Nil(t, candidate["portfolio"])
}

func TestWrite_ExistingDirectoryIsFine(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "acme-senior-engineer"), 0755))

	_, err := Write(newPackage("Acme", "Senior Engineer", "x"), base)
	assert.NoError(t, err)
}

func TestWrite_LiteralUnicodeAndHTML(t *testing.T) {
	base := t.TempDir()
	pkg := newPackage("Zürich & Co", "<Lead> Engineer", "Grüße — R&D")

	dir, err := Write(pkg, base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "zürich-co-lead-engineer"), dir)

	data, err := os.ReadFile(filepath.Join(dir, ApplicationFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"company": "Zürich & Co"`)
	assert.Contains(t, string(data), `"title": "<Lead> Engineer"`)
	assert.Contains(t, string(data), `"cover_letter": "Grüße — R&D"`)
}

func TestWrite_SameCompanyAndTitleOverwrites(t *testing.T) {
	base := t.TempDir()

	first := newPackage("Acme", "Senior Engineer", "first letter")
	first.Job.URL = "https://acme.example/jobs/1"
	second := newPackage("ACME", "Senior  Engineer!", "second letter")
	second.Job.URL = "https://acme.example/jobs/2"

	dir1, err := Write(first, base)
	require.NoError(t, err)
	dir2, err := Write(second, base)
	require.NoError(t, err)
	assert.Equal(t, dir1, dir2)

	files, err := Discover(base)
	require.NoError(t, err)
	require.Len(t, files, 1)

	pkg, err := Read(files[0])
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/jobs/2", pkg.Job.URL)
	assert.Equal(t, "second letter", pkg.CoverLetter)

	letter, err := os.ReadFile(filepath.Join(dir2, CoverLetterFile))
	require.NoError(t, err)
	assert.Equal(t, "second letter", string(letter))
}

func TestWrite_IOError(t *testing.T) {
	base := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(base, []byte("file"), 0644))

	_, err := Write(newPackage("Acme", "Engineer", "x"), base)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeIO))
}

func TestRead_RoundTrip(t *testing.T) {
	base := t.TempDir()
	original := newPackage("Acme", "Senior Engineer", "letter")

	dir, err := Write(original, base)
	require.NoError(t, err)

	pkg, err := Read(filepath.Join(dir, ApplicationFile))
	require.NoError(t, err)
	assert.Equal(t, *original, *pkg)
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.json"))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeFileNotFound))

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{ nope"), 0644))
	_, err = Read(malformed)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMalformedInput))

	incomplete := filepath.Join(dir, "incomplete.json")
	require.NoError(t, os.WriteFile(incomplete, []byte(`{"job": {"company": "Acme"}}`), 0644))
	_, err = Read(incomplete)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMalformedInput))
	assert.Contains(t, err.Error(), "invalid application file")
}

func TestDiscover_SortedOneLevelDeep(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"zeta-eng", "alpha-eng", "mid-eng"} {
		require.NoError(t, os.MkdirAll(filepath.Join(base, name), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(base, name, ApplicationFile), []byte("{}"), 0644))
	}
	// Ignored: too deep, at the root, and a directory named like the file.
	require.NoError(t, os.MkdirAll(filepath.Join(base, "deep", "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "deep", "nested", ApplicationFile), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(base, ApplicationFile), []byte("{}"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "odd", ApplicationFile), 0755))

	files, err := Discover(base)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(base, "alpha-eng", ApplicationFile),
		filepath.Join(base, "mid-eng", ApplicationFile),
		filepath.Join(base, "zeta-eng", ApplicationFile),
	}, files)
}

func TestDiscover_Empty(t *testing.T) {
	files, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscover_GlobCharactersInBaseDir(t *testing.T) {
	for _, name := range []string{"apps[2024]", "apps*", "apps?"} {
		t.Run(name, func(t *testing.T) {
			base := filepath.Join(t.TempDir(), name)
			dir, err := Write(newPackage("Acme", "Senior Engineer", "letter"), base)
			require.NoError(t, err)

			files, err := Discover(base)
			require.NoError(t, err)
			assert.Equal(t, []string{filepath.Join(dir, ApplicationFile)}, files)
		})
	}
}

func TestDiscover_MissingDirectory(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeIO))
}
