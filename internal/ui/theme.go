package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers and the chat animation pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error lipgloss.TerminalColor

	// Chat bubbles and booking modal
	Primary, BotBg, BotFg, UserBg, UserFg, Surface lipgloss.TerminalColor

	Border                     lipgloss.Border
	SymDone, SymFail, SymBullet string
	Dot                        string // typing indicator
	Plane                      string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"),
			Primary: lipgloss.Color("#ff2bd6"), BotBg: lipgloss.Color("#ff2bd6"), BotFg: lipgloss.Color("#ffffff"),
			UserBg: lipgloss.Color("#1f1f3a"), UserFg: lipgloss.Color("#7df9ff"), Surface: lipgloss.Color("#0d0d1a"),
			Border:  lipgloss.RoundedBorder(),
			SymDone: "✔", SymFail: "✖", SymBullet: "•", Dot: "●", Plane: "➤",
		}
	case "mono":
		SetColorForcing(false, true)
		current = Theme{
			Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
			Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{},
			Primary: lipgloss.NoColor{}, BotBg: lipgloss.NoColor{}, BotFg: lipgloss.NoColor{},
			UserBg: lipgloss.NoColor{}, UserFg: lipgloss.NoColor{}, Surface: lipgloss.NoColor{},
			Border:  lipgloss.ASCIIBorder(),
			SymDone: "x", SymFail: "!", SymBullet: "-", Dot: "o", Plane: ">",
		}
	default: // classic, the Axie Studio blue
		current = Theme{
			Title: lipgloss.Color("#0066cc"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"),
			Primary: lipgloss.Color("#0066cc"), BotBg: lipgloss.Color("#0066cc"), BotFg: lipgloss.Color("#ffffff"),
			UserBg: lipgloss.Color("#e9ecef"), UserFg: lipgloss.Color("#333333"), Surface: lipgloss.Color("#f8f9fa"),
			Border:  lipgloss.NormalBorder(),
			SymDone: "✓", SymFail: "✖", SymBullet: "•", Dot: "•", Plane: "➤",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
