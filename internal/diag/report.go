// Package diag holds the diagnostic shapes shared by every later stage of
// the pipeline (macros, scope resolution, inference): Report and the
// Reporter that accumulates them (spec §4.4, SPEC_FULL.md §7).
package diag

import (
	"github.com/google/uuid"

	"github.com/ITesserakt/kodept/internal/position"
)

// Severity is modeled as a small iota enum, the same way graph.ValueKind
// discriminates graph.Value, rather than as a free-form string (SPEC_FULL
// §7).
type Severity int

const (
	SeverityNote Severity = iota
	SeverityWarning
	SeverityError
	SeverityBug
)

func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityBug:
		return "bug"
	default:
		return "unknown"
	}
}

// Report is one diagnostic: a severity, a stable code (e.g. "KC666" for an
// unrecovered driver panic), a human message, the spans it points at, and
// the CodePath of the file it came from (spec §4.4 "Reporter ... Report{
// severity, code, message, spans, path}").
type Report struct {
	ID       uuid.UUID
	Severity Severity
	Code     string
	Message  string
	Spans    []position.CodePoint
	Path     position.CodePath
}

// Reporter accumulates Reports for one pass/pipeline run.
type Reporter struct {
	reports []Report
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report appends a new Report, stamping it with a fresh id.
func (r *Reporter) Report(severity Severity, code, message string, spans []position.CodePoint, path position.CodePath) Report {
	rep := Report{
		ID:       uuid.New(),
		Severity: severity,
		Code:     code,
		Message:  message,
		Spans:    spans,
		Path:     path,
	}
	r.reports = append(r.reports, rep)
	return rep
}

// All returns every report accumulated so far.
func (r *Reporter) All() []Report {
	return r.reports
}

// HasErrors reports whether any accumulated Report is Error or Bug
// severity (spec §4.4 "Reporter.has_errors() after a Completed run causes
// the enclosing driver to stop before the next pipeline stage").
func (r *Reporter) HasErrors() bool {
	for _, rep := range r.reports {
		if rep.Severity >= SeverityError {
			return true
		}
	}
	return false
}
