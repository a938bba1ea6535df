package report

import "fmt"

// Enumeration of diagnostic kinds.
const (
	DiagParseError = iota // unparsable source text
	DiagTypeError         // an inferred type conflicts with an expected type
	DiagUndefinedName     // a referenced name has no visible binding
	DiagIOError           // a source file could not be read

	// DiagWarning is used only for warning records.  Warnings are collected
	// separately from diagnostics and never fail a check.
	DiagWarning
)

// diagKindStrings maps diagnostic kinds to their display labels.
var diagKindStrings = map[int]string{
	DiagParseError:    "Parse Error",
	DiagTypeError:     "Type Error",
	DiagUndefinedName: "Undefined Name",
	DiagIOError:       "IO Error",
	DiagWarning:       "Warning",
}

// ReprDiagKind returns the display label for a diagnostic kind.
func ReprDiagKind(kind int) string {
	return diagKindStrings[kind]
}

// Diagnostic is a single structured problem record detected during a check.
// Diagnostics are fully finalized when created: the message requires no
// further interpretation by whatever consumes it.
type Diagnostic struct {
	// The kind of the diagnostic.  This must be one of the enumerated
	// diagnostic kinds.
	Kind int

	// The path to the source file the diagnostic occurred in.
	Path string

	// The 1-indexed line and column the diagnostic starts at.
	Line, Col int

	// The diagnostic message.
	Message string

	// The full text position of the offending source text.  This may be nil
	// for diagnostics with no meaningful source span (eg. IO errors).  It is
	// used only to display the offending source text.
	Span *TextPosition
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s: %s", d.Path, ReprDiagKind(d.Kind), d.Message)
	}

	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Path, d.Line, d.Col, ReprDiagKind(d.Kind), d.Message)
}
