// Package ui provides terminal output helpers for prnotify: status markers
// for CI logs and ANSI colors that switch off when stdout is not a terminal.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Status markers emitted on the invoking process's stdout.
const (
	SymbolSuccess = "✅"
	SymbolError   = "❌"
)

// ANSI color codes for terminal output
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"

	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetColorEnabled overrides TTY detection, for tests and --no-color style use.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// Colorize wraps text with the given color code when colors are enabled.
func Colorize(text, color string) string {
	if !colorEnabled {
		return text
	}
	return color + text + ColorReset
}

// Bold makes text bold when colors are enabled.
func Bold(text string) string {
	return Colorize(text, ColorBold)
}

// Success formats a success message with the success marker.
func Success(message string) string {
	return SymbolSuccess + " " + message
}

// Error formats an error message with the error marker.
func Error(message string) string {
	return SymbolError + " " + message
}
