package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Out and Err are where the helpers print. Tests swap them.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// C renders s in color, or plain when colors are off.
func C(color lipgloss.TerminalColor, s string) string {
	return lipgloss.NewStyle().Foreground(color).Render(s)
}

func Bold(s string) string { return lipgloss.NewStyle().Bold(true).Render(s) }

func OK(msg string)   { fmt.Fprintln(Out, C(current.Success, current.SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Err, C(current.Error, current.SymFail+" "+msg)) }

// Step prints a numbered stage header like "Step 1: Selecting Date and Time".
func Step(n int, title string) {
	fmt.Fprintln(Out, C(current.Accent, fmt.Sprintf("Step %d: %s", n, title)))
}

// Banner prints "=== title ===" padded by blank lines.
func Banner(title string) {
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, Bold(C(current.Title, "=== "+title+" ===")))
	fmt.Fprintln(Out)
}

// Field prints a "Key: value" line with the key muted.
func Field(key, value string) {
	fmt.Fprintf(Out, "%s %s\n", C(current.Muted, key+":"), value)
}
