package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// ColorEnabled reports whether output is colorized.
func ColorEnabled() bool {
	return !noColor()
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Status symbols shown at the start of a result line.
const (
	SuccessSymbol = "✓"
	ErrorSymbol   = "✗"
	WarningSymbol = "⚠"
	InfoSymbol    = "→"
)

// SuccessLine returns "✓ <msg>\n" with the symbol colored.
func SuccessLine(format string, a ...any) string {
	return statusLine(Success, SuccessSymbol, format, a...)
}

// ErrorLine returns "✗ <msg>\n" with the symbol colored.
func ErrorLine(format string, a ...any) string {
	return statusLine(Error, ErrorSymbol, format, a...)
}

// WarningLine returns "⚠ <msg>\n" with the symbol colored.
func WarningLine(format string, a ...any) string {
	return statusLine(Warning, WarningSymbol, format, a...)
}

// HintLine returns "→ <msg>\n", used for follow-up suggestions.
func HintLine(format string, a ...any) string {
	return statusLine(Info, InfoSymbol, format, a...)
}

func statusLine(f Formatter, symbol, format string, a ...any) string {
	return EnsureNewline(f.Sprint(symbol) + " " + fmt.Sprintf(format, a...))
}

// Semantic formatters for different types of CLI output.
var (
	// Code formats runnable commands. Yellow, or `backticks` without color.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag formats CLI flags like --decode or --dry-run.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values such as secret names, namespaces and
	// certificate names. Cyan, or 'single quotes' without color.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. Gray, or (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
