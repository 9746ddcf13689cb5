package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text. With color disabled it
// falls back to a plain-text decoration instead.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
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

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Respect the NO_COLOR convention (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

// Semantic formatters for CLI output.
var (
	// Code formats runnable commands. Yellow with color, `backticks` without.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths. Yellow with color, no decoration without.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats success indicators. Green with color.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators. Red with color.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warning indicators. Yellow with color.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints and directional indicators. Cyan with color.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user-supplied values. Cyan with color, 'quotes' without.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary detail. White with color, (parentheses) without.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
