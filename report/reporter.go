package report

import "fmt"

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// Reporter accumulates the diagnostics produced while checking one file.  It
// is owned exclusively by a single run: each checked file gets its own
// reporter, so checks never share mutable state.  Diagnostics are kept in
// encounter order and are never deduplicated or capped.
type Reporter struct {
	diagnostics []Diagnostic
	warnings    []Diagnostic
}

// NewReporter creates a new, empty reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// AddError records a diagnostic of the given kind at the given position.  The
// position may be nil for diagnostics with no meaningful source span.
func (r *Reporter) AddError(kind int, path string, pos *TextPosition, msg string, args ...interface{}) {
	r.diagnostics = append(r.diagnostics, newDiagnostic(kind, path, pos, msg, args...))
}

// AddWarning records a warning.  Warnings are kept separate from diagnostics:
// they never cause a check to fail.
func (r *Reporter) AddWarning(path string, pos *TextPosition, msg string, args ...interface{}) {
	r.warnings = append(r.warnings, newDiagnostic(DiagWarning, path, pos, msg, args...))
}

// Diagnostics returns the ordered list of collected diagnostics.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Warnings returns the ordered list of collected warnings.
func (r *Reporter) Warnings() []Diagnostic {
	return r.warnings
}

// HasErrors returns whether any diagnostics were collected.  Success of a
// check is judged solely by this: zero diagnostics means success.
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// newDiagnostic builds a diagnostic record, converting the zero-indexed
// position into the one-indexed line and column exposed to the user.
func newDiagnostic(kind int, path string, pos *TextPosition, msg string, args ...interface{}) Diagnostic {
	d := Diagnostic{
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(msg, args...),
		Span:    pos,
	}

	if pos != nil {
		d.Line = pos.StartLn + 1
		d.Col = pos.StartCol + 1
	}

	return d
}
