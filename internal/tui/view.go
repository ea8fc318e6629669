package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/bookdemo/internal/anim"
	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/logo"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

const maxChatWidth = 56

func (m Model) View() string {
	h := m.sceneHeight()
	var body string
	switch m.phase {
	case phaseModal:
		if mv := m.modal.View(m.st); mv != "" {
			body = lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, mv)
		} else {
			body = m.chatView()
		}
	case phasePlane:
		body = m.planeView()
	case phaseFinal:
		body = m.finalView()
	default:
		body = m.chatView()
	}

	status := m.help.View(m.keys)
	if m.paused {
		status = m.st.accent.Render("paused") + "  " + status
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func (m Model) chatWidth() int {
	w := m.width - 2
	if w > maxChatWidth {
		w = maxChatWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) chatView() string {
	w := m.chatWidth()
	inner := w - 2

	who := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(demo.CompanyName),
		"Online • Redo att hjälpa dig",
	)
	header := m.st.header.Width(inner).Render(lipgloss.JoinHorizontal(lipgloss.Center, m.headerLogo, "  ", who))

	var rows []string
	start := len(m.messages) - (m.opts.MaxVisible + 2)
	if start < 0 {
		start = 0
	}
	for i := start; i < len(m.messages); i++ {
		rows = append(rows, m.bubbleView(m.messages[i], len(m.messages)-1-i, inner))
	}
	if m.showDots {
		rows = append(rows, m.dotsView())
	}
	msgHeight := m.sceneHeight() - lipgloss.Height(header) - 5
	if msgHeight < 3 {
		msgHeight = 3
	}
	msgs := strings.Join(rows, "\n")
	if lines := strings.Split(msgs, "\n"); len(lines) > msgHeight {
		msgs = strings.Join(lines[len(lines)-msgHeight:], "\n")
	}
	msgs = lipgloss.NewStyle().Width(inner).Height(msgHeight).Render(msgs)

	btn := m.st.button
	if m.sending {
		btn = btn.Reverse(true)
	}
	button := btn.Render("Skicka")
	field := m.input
	field.Width = inner - lipgloss.Width(button) - 5
	box := lipgloss.JoinHorizontal(lipgloss.Center, m.st.input.Render(field.View()), " ", button)

	chat := m.st.frame.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, header, msgs, box))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, chat)
}

func (m Model) bubbleView(b bubble, age, width int) string {
	alpha := anim.MessageOpacity(age, m.opts.MaxVisible)
	st := m.st.userMsg
	align := lipgloss.Right
	if b.bot {
		st = m.st.botMsg
		align = lipgloss.Left
	}
	text := b.tw.Visible()
	maxW := width * 3 / 4
	if tw := lipgloss.Width(text) + 2; tw < maxW {
		maxW = tw
	}
	msg := m.st.faded(st, alpha).Width(maxW).Render(text)
	stamp := m.st.stamp.Render(b.at.Format("15:04"))
	return lipgloss.PlaceHorizontal(width, align, lipgloss.JoinVertical(align, msg, stamp))
}

// dotLit reports whether typing dot i is lit on frame f: the dots fill up
// left to right, then empty the same way.
func dotLit(i, f int) bool {
	if f < 3 {
		return i <= f
	}
	return i > f-3
}

func (m Model) dotsView() string {
	var dots []string
	for i := 0; i < 3; i++ {
		if dotLit(i, m.dotFrame) {
			dots = append(dots, m.st.accent.Render(ui.Current().Dot))
		} else {
			dots = append(dots, m.st.muted.Render(ui.Current().Dot))
		}
	}
	return m.st.botMsg.Render(strings.Join(dots, " "))
}

// planeView draws the plane and its trail on a character grid.
func (m Model) planeView() string {
	w, h := m.width, m.sceneHeight()
	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	put := func(fx, fy float64, s string) {
		x, y := int(math.Round(fx)), int(math.Round(fy))
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = s
		}
	}

	faint := m.sceneAlpha < 0.5
	for i := len(m.particles) - 1; i >= 0; i-- {
		p := m.particles[i]
		glyph := "·"
		if p.Main {
			glyph = "•"
		}
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Faint(faint)
		put(p.X, p.Y, st.Render(glyph))
	}
	if m.flight != nil {
		put(m.flight.X, m.flight.Y, m.st.accent.Bold(true).Faint(faint).Render(planeGlyph(m.flight.Angle())))
	}

	rows := make([]string, h)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return strings.Join(rows, "\n")
}

func planeGlyph(angle float64) string {
	switch {
	case angle > 25:
		return "↘"
	case angle < -25:
		return "↗"
	default:
		return ui.Current().Plane
	}
}

func (m Model) finalView() string {
	var rows []string
	for i, text := range finalLines {
		a := m.final.lines[i] * m.sceneAlpha
		if m.final.lines[i] == 0 {
			rows = append(rows, "")
			continue
		}
		st := m.st.muted
		if i == 0 {
			st = m.st.title
		}
		// slide in from the left while fading
		rows = append(rows, strings.Repeat(" ", slidePad(m.final.lines[i]))+m.st.faded(st, a).Render(text))
	}

	if n := len(m.booked); n > 0 && m.modal.confirmed && m.final.lines[len(finalLines)-1] >= 1 {
		b := m.booked[n-1]
		when := b.Date
		if d, err := time.ParseInLocation(demo.DateLayout, b.Date, time.Local); err == nil {
			when = demo.FormatSwedish(d)
		}
		note := fmt.Sprintf("Vi ser fram emot att träffa er på %s kl %s", when, b.Time)
		rows = append(rows, "", m.st.faded(m.st.accent, m.sceneAlpha).Render(note))
	}

	if m.final.logo > 0 && m.sceneAlpha >= 0.3 {
		rows = append(rows, "", m.finalLogoView())
	}

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return lipgloss.Place(m.width, m.sceneHeight(), lipgloss.Center, lipgloss.Center, content)
}

const (
	slideCells = 10
	logoCols   = 16
	logoRows   = 8
)

// slidePad is how many cells a final line still sits right of its place.
func slidePad(p float64) int {
	return int(math.Round((1 - anim.EaseOutCubic(p)) * slideCells))
}

// logoCells sizes the final logo at progress p. It grows from 30% and
// briefly overshoots full size.
func logoCells(p float64) (cols, rows int) {
	s := anim.Lerp(0.3, 1, p, anim.EaseOutBack)
	return max(1, int(math.Round(logoCols*s))), max(1, int(math.Round(logoRows*s)))
}

func (m Model) finalLogoView() string {
	switch {
	case m.final.logo >= 1:
		return m.finalLogo
	case m.logoImg == nil:
		return m.headerLogo
	}
	cols, rows := logoCells(m.final.logo)
	return logo.Render(m.logoImg, cols, rows)
}
