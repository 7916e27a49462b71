// Package resume loads the candidate's resume as plain text.
package resume

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	apperrors "github.com/jonathan/job-apply-bot/internal/errors"
)

// MIME types with dedicated extractors.
const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
	xmlEntities      = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
)

// LoadResume returns the text of the resume at path. Text files are returned
// verbatim; PDF and DOCX files have their text extracted.
func LoadResume(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.Wrap(apperrors.ErrCodeFileNotFound, fmt.Sprintf("resume file not found: %s", path), err)
		}
		return "", apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to stat resume file: %s", path), err)
	}
	if info.IsDir() {
		return "", apperrors.New(apperrors.ErrCodeMalformedInput, fmt.Sprintf("resume path is a directory: %s", path))
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeIO, fmt.Sprintf("failed to read resume file: %s", path), err)
	}

	text, err := extract(path, mtype)
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeMalformedInput,
			fmt.Sprintf("failed to extract resume text: %s", path), err,
			map[string]any{"mime": mtype.String()})
	}

	return text, nil
}

func extract(path string, mtype *mimetype.MIME) (string, error) {
	switch {
	case mtype.Is(MIMEPDF):
		return extractPDFText(path)
	case mtype.Is(MIMEDocx):
		return extractDocxText(path)
	case isText(mtype):
		content, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(content), nil
	default:
		return "", &UnsupportedFormatError{MIME: mtype.String()}
	}
}

// isText reports whether mtype or one of its parents is text/plain. Markdown,
// CSV, JSON and similar formats all descend from it.
func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(MIMEPlainText) {
			return true
		}
	}
	return false
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

func extractDocxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText turns document.xml content into plain text, one line per paragraph.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	content = xmlEntities.Replace(content)
	return strings.TrimSpace(content)
}
