package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// DisplayDiagnostic displays a single diagnostic: a styled kind banner, the
// location and message, and the offending source text with caret
// underlining when a source span is available.
func DisplayDiagnostic(d Diagnostic) {
	if d.Kind == DiagWarning {
		WarnStyleBG.Print(ReprDiagKind(d.Kind))
	} else {
		ErrorStyleBG.Print(ReprDiagKind(d.Kind))
	}

	fmt.Println(" " + d.String())

	if d.Span != nil {
		displaySourceText(d.Path, d.Span)
	}
}

// DisplayFatal displays a fatal error message.  Fatal errors are conditions
// under which no check can run at all: an unreadable file or an invalid
// configuration.
func DisplayFatal(msg string, args ...interface{}) {
	PrintErrorMessage("Fatal Error", fmt.Errorf(msg, args...))
}

// DisplayCheckResult displays the concluding message for a check run.
func DisplayCheckResult(path string, errorCount int) {
	if errorCount == 0 {
		PrintInfoMessage("Success", fmt.Sprintf("%s: no type errors found", path))
	} else {
		suffix := "s"
		if errorCount == 1 {
			suffix = ""
		}

		PrintErrorMessage("Failure", fmt.Errorf("%s: found %d error%s", path, errorCount, suffix))
	}
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text
// position, with the erroneous text underlined by carets.
func displaySourceText(path string, pos *TextPosition) {
	file, err := os.Open(path)
	if err != nil {
		// The file was readable when it was checked; if it has vanished since
		// then we just skip the source excerpt.
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if pos.StartLn <= ln && ln <= pos.EndLn {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Generate the format string used to pad line numbers evenly.
	maxLineNumLen := len(strconv.Itoa(pos.EndLn + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and the source text with the leading indent
		// trimmed off.
		InfoColorFG.Print(fmt.Sprintf(lineNumFmtStr, i+pos.StartLn+1))
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// The carets skip to the start column on the first line and continue
		// from column zero on every later line.
		var caretPrefixCount int
		if i == 0 {
			caretPrefixCount = pos.StartCol - minIndent
		}

		// The carets stop at the end column on the last line and run to the
		// end of the line on every earlier line.
		var caretSuffixCount int
		if i == len(lines)-1 {
			caretSuffixCount = len(line) - pos.EndCol
		}

		caretCount := len(line) - caretSuffixCount - caretPrefixCount - minIndent
		if caretCount < 1 {
			caretCount = 1
		}

		fmt.Print(strings.Repeat(" ", caretPrefixCount))
		ErrorColorFG.Println(strings.Repeat("^", caretCount))
	}

	fmt.Println()
}
