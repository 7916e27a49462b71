// Package rendering renders cover letters from plain-text templates with
// named {placeholder} fields.
package rendering

import (
	"fmt"
	"slices"
	"strings"
)

// segment is either literal text or a placeholder name.
type segment struct {
	literal     string
	placeholder string
	offset      int
}

// Template is a parsed cover letter template. Literal braces are written as
// {{ and }}; every other brace pair names a placeholder.
type Template struct {
	segments []segment
}

// ParseTemplate parses text and checks every placeholder against the known
// set. Parsing fails on unknown, empty or formatted placeholders, on an
// unclosed '{' and on a single '}'.
func ParseTemplate(text string) (*Template, error) {
	var segments []segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				literal.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return nil, &TemplateError{Message: "unclosed '{'", Offset: i}
			}
			name := text[i+1 : i+1+end]
			if err := checkPlaceholder(name, i); err != nil {
				return nil, err
			}
			flush()
			segments = append(segments, segment{placeholder: name, offset: i})
			i += end + 1
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				literal.WriteByte('}')
				i++
				continue
			}
			return nil, &TemplateError{Message: "single '}' encountered", Offset: i}
		default:
			literal.WriteByte(c)
		}
	}
	flush()

	return &Template{segments: segments}, nil
}

func checkPlaceholder(name string, offset int) error {
	switch {
	case name == "":
		return &TemplateError{Message: "empty placeholder {}", Offset: offset}
	case strings.ContainsRune(name, '{'):
		return &TemplateError{Message: fmt.Sprintf("unexpected '{' in placeholder %q", name), Offset: offset}
	case strings.ContainsAny(name, ":!"):
		return &TemplateError{Message: fmt.Sprintf("format specifiers are not supported: {%s}", name), Offset: offset}
	case !slices.Contains(Placeholders, name):
		return &TemplateError{Message: fmt.Sprintf("unknown placeholder {%s}", name), Offset: offset}
	}
	return nil
}

// Placeholders returns the distinct placeholder names used by the template in
// order of first appearance.
func (t *Template) Placeholders() []string {
	var names []string
	for _, seg := range t.segments {
		if seg.placeholder != "" && !slices.Contains(names, seg.placeholder) {
			names = append(names, seg.placeholder)
		}
	}
	return names
}

// Execute substitutes every placeholder from values. Nothing is returned
// unless every placeholder resolves.
func (t *Template) Execute(values map[string]string) (string, error) {
	var result strings.Builder
	for _, seg := range t.segments {
		if seg.placeholder == "" {
			result.WriteString(seg.literal)
			continue
		}
		value, ok := values[seg.placeholder]
		if !ok {
			return "", &TemplateError{
				Message: fmt.Sprintf("no value for placeholder {%s}", seg.placeholder),
				Offset:  seg.offset,
			}
		}
		result.WriteString(value)
	}
	return result.String(), nil
}
