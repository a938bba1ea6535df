// Package cmd is the top-level "driver" package for pycheck: it parses
// command-line arguments, loads project configuration, and runs check,
// parse, and watch commands.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"pycheck/ast"
	"pycheck/common"
	"pycheck/mods"
	"pycheck/report"
	"pycheck/syntax"
)

// Execute is the main entry point for the `pycheck` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("pycheck", "pycheck is a static type checker for annotated Python files", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the checker log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "check a source file for type errors", true)
	checkCmd.AddPrimaryArg("file-path", "the path to the file to check", true)

	parseCmd := cli.AddSubcommand("parse", "parse a source file and dump its AST", true)
	parseCmd.AddPrimaryArg("file-path", "the path to the file to parse", true)

	watchCmd := cli.AddSubcommand("watch", "re-check a source file whenever it changes", true)
	watchCmd.AddPrimaryArg("file-path", "the path to the file to watch", true)

	cli.AddSubcommand("version", "print the pycheck version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, normalizeArgs(os.Args))
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "parse":
		execParseCommand(subResult)
	case "watch":
		execWatchCommand(subResult, result.Arguments["loglevel"].(string))
	case "version":
		report.PrintInfoMessage("Pycheck Version", common.PycheckVersion)
	}
}

// subcommandNames is the set of registered subcommand names, used by
// normalizeArgs to tell a subcommand apart from a bare source path.
var subcommandNames = map[string]struct{}{
	"check":   {},
	"parse":   {},
	"watch":   {},
	"version": {},
}

// normalizeArgs rewrites a command line whose first positional argument is a
// bare source path into an equivalent check command line, so that
// `pycheck file.py` behaves as `pycheck check file.py`.  Any other command
// line is returned unchanged.
func normalizeArgs(args []string) []string {
	for i, arg := range args[1:] {
		// Leading flag arguments belong to the top-level command.
		if strings.HasPrefix(arg, "-") {
			continue
		}

		if _, ok := subcommandNames[arg]; !ok && strings.HasSuffix(arg, common.SourceFileExt) {
			normalized := make([]string, 0, len(args)+1)
			normalized = append(normalized, args[:i+1]...)
			normalized = append(normalized, "check")
			normalized = append(normalized, args[i+1:]...)
			return normalized
		}

		break
	}

	return args
}

// execCheckCommand executes the check subcommand and handles all errors.
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	path, _ := result.PrimaryArg()

	cfg, level := loadRunConfig(path, loglevel)

	if !runCheck(path, cfg, level) {
		os.Exit(1)
	}
}

// execParseCommand executes the parse subcommand: a debug command that dumps
// the AST of a source file.
func execParseCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()

	file, err := os.Open(path)
	if err != nil {
		report.DisplayFatal("unable to open `%s`: %s", path, err)
		os.Exit(1)
	}
	defer file.Close()

	stmts, err := syntax.NewParser(bufio.NewReader(file)).Parse()
	if err != nil {
		lerr := err.(*report.LocalError)
		report.DisplayDiagnostic(report.Diagnostic{
			Kind:    report.DiagParseError,
			Path:    path,
			Line:    lerr.Position.StartLn + 1,
			Col:     lerr.Position.StartCol + 1,
			Message: lerr.Message,
			Span:    lerr.Position,
		})
		os.Exit(1)
	}

	ast.Dump(os.Stdout, stmts)
}

// runCheck checks one file and displays its results at the given log level.
// It returns whether the check passed.
func runCheck(path string, cfg *mods.Config, level int) bool {
	_, rep, err := NewChecker(cfg).CheckFile(path)
	if err != nil {
		if level > report.LogLevelSilent {
			report.DisplayDiagnostic(report.Diagnostic{
				Kind:    report.DiagIOError,
				Path:    path,
				Message: err.Error(),
			})
		}

		return false
	}

	if level >= report.LogLevelWarn {
		for _, warning := range rep.Warnings() {
			report.DisplayDiagnostic(warning)
		}
	}

	diags := rep.Diagnostics()

	if level >= report.LogLevelError {
		for _, d := range diags {
			report.DisplayDiagnostic(d)
		}
	}

	if level == report.LogLevelVerbose {
		report.DisplayCheckResult(path, len(diags))
	}

	return len(diags) == 0
}

// loadRunConfig loads the project configuration from the checked file's
// directory and resolves the effective log level.  Configuration errors are
// fatal: no check can run against an invalid project file.
func loadRunConfig(path string, loglevel string) (*mods.Config, int) {
	cfg, err := mods.LoadConfig(filepath.Dir(path))
	if err != nil {
		report.DisplayFatal("%s", err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if level == -1 {
		switch loglevel {
		case "silent":
			level = report.LogLevelSilent
		case "error":
			level = report.LogLevelError
		case "warn":
			level = report.LogLevelWarn
		default:
			level = report.LogLevelVerbose
		}
	}

	if filepath.Ext(path) != common.SourceFileExt && level >= report.LogLevelWarn {
		report.PrintWarningMessage("Warning", fmt.Sprintf("`%s` does not have the `%s` extension", path, common.SourceFileExt))
	}

	return cfg, level
}
