// Package walk implements the type checker engine: a single-pass walk over
// the parsed statement sequence that populates the symbol table and
// accumulates diagnostics.  The walk never stops early on a type error.
package walk

import (
	"pycheck/report"
	"pycheck/sem"
)

// Walker is responsible for walking the statements of one source file and
// performing type checking on them.  Each walker owns exactly one symbol
// table and one reporter for its whole run; nothing is shared across files.
type Walker struct {
	// path is the path of the source file being walked, used to stamp
	// diagnostics.
	path string

	// table is the symbol table being populated.
	table *sem.Table

	// rep collects the diagnostics produced by the walk.
	rep *report.Reporter

	// warnShadowBuiltins enables a warning whenever a module-level binding
	// replaces a built-in symbol.
	warnShadowBuiltins bool
}

// NewWalker creates a new walker for the given file.  The table should
// already have its built-ins seeded.
func NewWalker(path string, table *sem.Table, rep *report.Reporter) *Walker {
	return &Walker{
		path:  path,
		table: table,
		rep:   rep,
	}
}

// SetWarnShadowBuiltins configures whether rebinding a built-in at module
// scope produces a warning.
func (w *Walker) SetWarnShadowBuiltins(warn bool) {
	w.warnShadowBuiltins = warn
}

// -----------------------------------------------------------------------------

// define binds a symbol in the current scope, warning when a built-in is
// rebound at module scope with the shadow warning enabled.
func (w *Walker) define(sym *sem.Symbol) {
	prev := w.table.Define(sym)

	if w.warnShadowBuiltins && prev != nil && prev.Builtin {
		w.rep.AddWarning(w.path, sym.DefPosition, "binding of `%s` shadows a builtin", sym.Name)
	}
}

// error records a diagnostic of the given kind at the given position.
func (w *Walker) error(kind int, pos *report.TextPosition, msg string, args ...interface{}) {
	w.rep.AddError(kind, w.path, pos, msg, args...)
}
