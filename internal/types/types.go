// Package types provides shared types used across the plugval codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Diagnostic represents a single validation finding for one file.
// Line and Column of zero mean the finding applies to the file as a whole.
type Diagnostic struct {
	File     string
	Message  string
	Severity string // error, warning, info
	Line     int
	Column   int
}

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Component kind constants.
const (
	KindHooks       = "hooks"
	KindSkill       = "skill"
	KindCommand     = "command"
	KindAgent       = "agent"
	KindManifest    = "manifest"
	KindMarketplace = "marketplace"
	KindPlugin      = "plugin"
)

// Run is the ordered set of diagnostics produced for one validation target:
// a single file, a plugin tree, or a marketplace registry. A Run is owned by
// the validator that produced it; aggregators concatenate runs instead of
// sharing a mutable collector.
type Run struct {
	Target      string
	Kind        string
	Diagnostics []Diagnostic
}

// NewRun creates an empty Run for the given target and component kind.
func NewRun(target, kind string) Run {
	return Run{Target: target, Kind: kind}
}

// Add appends a diagnostic to the run.
func (r *Run) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Append concatenates the diagnostics of other runs onto this run, preserving
// their order.
func (r *Run) Append(runs ...Run) {
	for _, other := range runs {
		r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
	}
}

// Count returns the number of diagnostics with the given severity.
func (r Run) Count(severity string) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == severity {
			n++
		}
	}
	return n
}

// HasErrors reports whether the run contains any error-severity diagnostic.
func (r Run) HasErrors() bool {
	return r.Count(SeverityError) > 0
}

// Passing reports whether the run passes. Warnings only fail the run in
// strict mode; info diagnostics never do.
func (r Run) Passing(strict bool) bool {
	if r.HasErrors() {
		return false
	}
	if strict && r.Count(SeverityWarning) > 0 {
		return false
	}
	return true
}
