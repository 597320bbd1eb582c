package validate

import (
	"fmt"
	"strings"

	"github.com/ccmarket/plugval/internal/types"
)

// Template expression markers recognized inside hook documents.
const (
	markerOpen  = "{{"
	markerClose = "}}"
)

// scanMarkerBalance counts opening and closing template markers across a
// document and reports a mismatch. This is a coarse balance check on totals,
// not a template parser; nesting order is not validated.
func scanMarkerBalance(file, content string) []types.Diagnostic {
	opens := strings.Count(content, markerOpen)
	closes := strings.Count(content, markerClose)
	if opens == closes {
		return nil
	}
	return []types.Diagnostic{{
		File:     file,
		Message:  fmt.Sprintf("Unbalanced template markers: %d opening '%s', %d closing '%s'", opens, markerOpen, closes, markerClose),
		Severity: types.SeverityError,
	}}
}
