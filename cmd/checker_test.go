package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"pycheck/mods"
	"pycheck/report"
)

// writeSource drops a source file with the given contents into a fresh
// temporary directory and returns its path.
func writeSource(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.py")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("unable to write test source: %s", err)
	}

	return path
}

func TestCheckFileUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.py")

	table, rep, err := NewChecker(mods.DefaultConfig()).CheckFile(path)
	if err == nil {
		t.Fatal("an unreadable file should be returned as an error")
	}

	if table != nil || rep != nil {
		t.Fatal("no table or reporter should exist for an unreadable file")
	}
}

func TestCheckFileParseFailure(t *testing.T) {
	path := writeSource(t, "def invalid syntax\n")

	table, rep, err := NewChecker(mods.DefaultConfig()).CheckFile(path)
	if err != nil {
		t.Fatalf("a parse failure is a diagnostic, not an error, got: %s", err)
	}

	if table != nil {
		t.Fatal("no table should exist when parsing fails")
	}

	diags := rep.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != report.DiagParseError {
		t.Fatalf("expected exactly 1 parse diagnostic, got %v", diags)
	}
}

func TestCheckFileFullRun(t *testing.T) {
	path := writeSource(t, `x: int = "hello"`+"\n")

	table, diags, err := CheckFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if table == nil {
		t.Fatal("a checked file should always yield a table, even with diagnostics")
	}

	if len(diags) != 1 || diags[0].Kind != report.DiagTypeError {
		t.Fatalf("expected exactly 1 type error, got %v", diags)
	}

	if diags[0].Path != path {
		t.Errorf("expected the diagnostic to carry the checked path, got %q", diags[0].Path)
	}
}
