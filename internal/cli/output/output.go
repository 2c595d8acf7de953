package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// ANSI color codes
const (
	reset = "\033[0m"
	red   = "\033[31m"
)

const SymbolError = "x"

// Error returns text styled for error messages
func Error(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", red, text, reset)
}

// PrintError prints an error message with X symbol to stderr
func PrintError(message string) {
	FprintError(os.Stderr, message)
}

func FprintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", Error(SymbolError), Error(message))
}
