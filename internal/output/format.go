// Package output provides terminal output formatting utilities for the
// clkpr CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ariel-frischer/clkpr/internal/changelog"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// SetPlain disables all colored output for the process.
func SetPlain(plain bool) {
	color.NoColor = plain || color.NoColor
}

// PrintSuccess prints a colored success message.
// Uses green checkmark and cyan for the message text.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintNote prints a secondary informational line, dimmed.
func PrintNote(out io.Writer, message string) {
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "  %s\n", dim(message))
}

// PrintRepairs prints one line per applied repair.
// Uses a yellow wrench marker so repairs stand out from success lines.
func PrintRepairs(out io.Writer, repairs []changelog.Repair) {
	yellow := color.New(color.FgYellow).SprintFunc()
	for _, r := range repairs {
		fmt.Fprintf(out, "%s %s\n", yellow("repaired:"), r.Detail)
	}
}
