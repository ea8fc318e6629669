package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	if done < 0 {
		done = 0
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	pct := int(float64(done) / float64(total) * 100)
	if pct > 100 {
		pct = 100
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// PanelString frames lines in the current theme's border.
func PanelString(lines []string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.Muted).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box.
func Panel(lines []string) { fmt.Fprintln(Out, PanelString(lines)) }
