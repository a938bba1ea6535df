package mods

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pycheck/common"
	"pycheck/report"
)

// writeConfig drops a pycheck.toml with the given contents into a fresh
// temporary directory and returns that directory.
func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, common.ConfigFileName), []byte(contents), 0644); err != nil {
		t.Fatalf("unable to write test config: %s", err)
	}

	return dir
}

func TestMissingConfigYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("a missing config file is not an error, got: %s", err)
	}

	if cfg.LogLevel != -1 {
		t.Errorf("expected the log level to be unset, got %d", cfg.LogLevel)
	}

	if cfg.WarnShadowBuiltins {
		t.Error("expected shadow warnings to default off")
	}
}

func TestLoadFullConfig(t *testing.T) {
	dir := writeConfig(t, `[check]
loglevel = "warn"
warn-shadow-builtins = true
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected config error: %s", err)
	}

	if cfg.LogLevel != report.LogLevelWarn {
		t.Errorf("expected the warn log level, got %d", cfg.LogLevel)
	}

	if !cfg.WarnShadowBuiltins {
		t.Error("expected shadow warnings to be enabled")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	dir := writeConfig(t, `[check]
loglevel = "chatty"
`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected an invalid log level to be rejected")
	} else if !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestMalformedToml(t *testing.T) {
	dir := writeConfig(t, "[check\nloglevel =")

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected malformed TOML to be rejected")
	}
}

func TestVersionConstraintSatisfied(t *testing.T) {
	dir := writeConfig(t, `[check]
requires = ">= 0.1.0"
`)

	if _, err := LoadConfig(dir); err != nil {
		t.Fatalf("expected the constraint to be satisfied, got: %s", err)
	}
}

func TestVersionConstraintUnsatisfied(t *testing.T) {
	dir := writeConfig(t, `[check]
requires = ">= 99.0.0"
`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected the constraint to be rejected")
	} else if !strings.Contains(err.Error(), "does not satisfy") {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestVersionConstraintMalformed(t *testing.T) {
	dir := writeConfig(t, `[check]
requires = "not-a-version"
`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected a malformed constraint to be rejected")
	} else if !strings.Contains(err.Error(), "invalid version constraint") {
		t.Errorf("unexpected error message: %s", err)
	}
}
