// Package resume loads the candidate's resume as plain text.
package resume

import "fmt"

// UnsupportedFormatError is returned for resume files that are neither text,
// PDF nor DOCX.
type UnsupportedFormatError struct {
	MIME string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format: %s", e.MIME)
}
