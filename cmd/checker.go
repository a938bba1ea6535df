package cmd

import (
	"bufio"
	"os"

	"pycheck/mods"
	"pycheck/report"
	"pycheck/sem"
	"pycheck/syntax"
	"pycheck/walk"
)

// Checker runs single-file checks with a fixed configuration.
type Checker struct {
	cfg *mods.Config
}

// NewChecker creates a new checker using the given configuration.
func NewChecker(cfg *mods.Config) *Checker {
	return &Checker{cfg: cfg}
}

// CheckFile checks one source file.  An unreadable file is the run's
// overall failure and is returned as an error: no symbol table exists in
// that case.  A parse failure short-circuits checking and yields a nil
// table with a single parse diagnostic.  Otherwise the full walk runs and
// both the completed symbol table and the ordered diagnostics are returned,
// even when diagnostics are non-empty: callers judge success solely by the
// diagnostics being empty.
func (c *Checker) CheckFile(path string) (*sem.Table, *report.Reporter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	rep := report.NewReporter()

	stmts, err := syntax.NewParser(bufio.NewReader(file)).Parse()
	if err != nil {
		lerr := err.(*report.LocalError)
		rep.AddError(report.DiagParseError, path, lerr.Position, "%s", lerr.Message)
		return nil, rep, nil
	}

	table := sem.NewTable()
	sem.SeedBuiltins(table)

	walker := walk.NewWalker(path, table, rep)
	walker.SetWarnShadowBuiltins(c.cfg.WarnShadowBuiltins)
	walker.WalkFile(stmts)

	return table, rep, nil
}

// CheckFile checks one source file with the default configuration.  It is
// the package-level entry point used when no project configuration applies.
func CheckFile(path string) (*sem.Table, []report.Diagnostic, error) {
	table, rep, err := NewChecker(mods.DefaultConfig()).CheckFile(path)
	if err != nil {
		return nil, nil, err
	}

	return table, rep.Diagnostics(), nil
}
