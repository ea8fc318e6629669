package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/bookdemo/internal/anim"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

// ------- styling helpers (Lip Gloss), rebuilt from the active theme -------

type styles struct {
	title, muted, accent, success lipgloss.Style
	selected, help                lipgloss.Style

	header   lipgloss.Style
	botMsg   lipgloss.Style
	userMsg  lipgloss.Style
	stamp    lipgloss.Style
	input    lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	chosen   lipgloss.Style // selected day / slot
	frame    lipgloss.Style
}

func newStyles() styles {
	t := ui.Current()
	white := lipgloss.Color("#ffffff")
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		accent:   lipgloss.NewStyle().Foreground(t.Accent),
		success:  lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		help:     lipgloss.NewStyle().Faint(true),

		header:   lipgloss.NewStyle().Background(t.Primary).Foreground(white).Padding(0, 1),
		botMsg:   lipgloss.NewStyle().Background(t.BotBg).Foreground(t.BotFg).Padding(0, 1),
		userMsg:  lipgloss.NewStyle().Background(t.UserBg).Foreground(t.UserFg).Padding(0, 1),
		stamp:    lipgloss.NewStyle().Faint(true),
		input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted).Padding(0, 1),
		button:   lipgloss.NewStyle().Background(t.Primary).Foreground(white).Bold(true).Padding(0, 2),
		disabled: lipgloss.NewStyle().Background(lipgloss.Color("#cccccc")).Foreground(white).Padding(0, 2),
		chosen:   lipgloss.NewStyle().Background(t.Primary).Foreground(white).Bold(true),
		frame:    lipgloss.NewStyle().Border(t.Border).BorderForeground(t.Primary),
	}
}

// faded maps an opacity to what a terminal can show: full, faint or muted.
func (s styles) faded(st lipgloss.Style, alpha float64) lipgloss.Style {
	switch {
	case alpha >= 0.7:
		return st
	case alpha >= 0.4:
		return st.Faint(true)
	default:
		g := anim.Grey(alpha)
		return lipgloss.NewStyle().Padding(0, 1).
			Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", g, g, g)))
	}
}
