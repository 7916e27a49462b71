package rendering

import "fmt"

// TemplateError represents a template that cannot be parsed or a placeholder
// that cannot be resolved. Offset is the byte position in the template.
type TemplateError struct {
	Message string
	Offset  int
	Cause   error
}

func (e *TemplateError) Error() string {
	msg := fmt.Sprintf("%s (at offset %d)", e.Message, e.Offset)
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("template error: %s", msg)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
