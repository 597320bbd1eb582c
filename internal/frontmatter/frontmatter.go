// Package frontmatter extracts the key-value header block from skill,
// command, and agent documents.
//
// The parser is deliberately flat: the schemas it feeds only use scalar
// values and simple lists, so nested YAML structures are not supported.
// Lines without a colon are ignored rather than rejected, which permits
// embedded comments in the header block.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the line that opens and closes a front-matter block.
const Delimiter = "---"

// ErrMalformed is returned when a document opens a front-matter block but
// never closes it.
var ErrMalformed = errors.New("missing closing frontmatter delimiter (---)")

// FrontMatter is a parsed header block and the document body that follows it.
// Values are string, bool, or []string.
type FrontMatter struct {
	Present bool
	Fields  map[string]any
	Body    string
	// bodyLine is the 1-based line number where the body starts,
	// used to translate field lookups into file positions.
	bodyLine int
}

// Extract splits content into a front-matter block and a body. A document
// that does not begin with the delimiter line has no front matter; that is
// not an error, since front matter is optional for some component kinds.
func Extract(content string) (*FrontMatter, error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Delimiter {
		return &FrontMatter{
			Present: false,
			Fields:  map[string]any{},
			Body:    content,
		}, nil
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		return nil, ErrMalformed
	}

	fields, err := parseHeader(lines[1:closing])
	if err != nil {
		return nil, err
	}

	return &FrontMatter{
		Present:  true,
		Fields:   fields,
		Body:     strings.Join(lines[closing+1:], "\n"),
		bodyLine: closing + 2,
	}, nil
}

// parseHeader parses header lines into a flat key→value map.
func parseHeader(lines []string) (map[string]any, error) {
	fields := make(map[string]any)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, found := strings.Cut(trimmed, ":")
		if !found {
			// Not a key: value pair; treated as a comment.
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fields[key] = parseValue(strings.TrimSpace(value))
	}
	return fields, nil
}

// parseValue coerces a raw header value: matching quotes are stripped,
// boolean literals become bool, flow-style lists become []string, and
// everything else stays a string.
func parseValue(raw string) any {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		var list []string
		if err := yaml.Unmarshal([]byte(raw), &list); err == nil {
			return list
		}
		return raw
	}
	raw = stripQuotes(raw)
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}

// stripQuotes removes a single pair of matching surrounding quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// String returns the string value for key, or "" if absent or not a string.
func (fm *FrontMatter) String(key string) (string, bool) {
	v, ok := fm.Fields[key].(string)
	return v, ok
}

// FieldLine returns the 1-based line number of a front-matter field in the
// original document, or 0 when the field cannot be located.
func FieldLine(content, fieldName string) int {
	lines := strings.Split(content, "\n")
	inHeader := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == Delimiter {
			if !inHeader {
				inHeader = true
				continue
			}
			break
		}
		if inHeader && strings.HasPrefix(trimmed, fieldName+":") {
			return i + 1
		}
	}
	return 0
}

// BodyLine translates a 1-based line offset within the body into a 1-based
// line number in the original document.
func (fm *FrontMatter) BodyLine(offset int) int {
	if !fm.Present {
		return offset
	}
	return fm.bodyLine + offset - 1
}

// ListOrCSV normalizes a field that may be either a []string list or a
// comma-separated string into a slice of trimmed entries. The second return
// is false when the field is present but has neither shape.
func (fm *FrontMatter) ListOrCSV(key string) ([]string, bool) {
	v, ok := fm.Fields[key]
	if !ok {
		return nil, true
	}
	switch val := v.(type) {
	case []string:
		return val, true
	case string:
		var out []string
		for _, part := range strings.Split(val, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Describe formats a value's dynamic type for diagnostics.
func Describe(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []string:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}
