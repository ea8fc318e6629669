package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/bookdemo/internal/anim"
	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/model"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

// Booking modal steps.
const (
	stepDate = iota
	stepTime
	stepContact
	stepConfirm
)

var stepNames = []string{"Välj Datum", "Välj Tid", "Kontakt", "Bekräfta"}

// Contact form fields, in fill order. Placeholders match the web widget.
const (
	fieldName = iota
	fieldCompany
	fieldEmail
	fieldPhone
	fieldMessage
)

var fieldLabels = []string{"Namn", "Företag", "E-post", "Telefon", "Meddelande"}
var fieldPlaceholders = []string{"Ditt namn", "Företagsnamn", "din@epost.se", "+46", "Meddelande..."}

// highlight targets the auto-pilot flashes before "clicking".
const (
	hlNone = ""
	hlDay  = "day"
	hlTime = "time"
	hlOK   = "confirm"
)

type bookingModal struct {
	today     time.Time
	date      time.Time // zero until a day is picked
	slot      string
	step      int
	highlight string
	fields    []textinput.Model
	typer     *anim.Typewriter
	alpha     float64
	confirmed bool
}

// newBookingModal opens on the month of next Tuesday with nothing picked.
func newBookingModal(now time.Time) bookingModal {
	b := bookingModal{today: now}
	for i := range fieldLabels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 200
		ti.Width = 34
		b.fields = append(b.fields, ti)
	}
	return b
}

// selectDay picks a day of the displayed month. Days before today are not bookable.
func (b *bookingModal) selectDay(day int) bool {
	month := b.month()
	d := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, b.today.Location())
	if d.Month() != month.Month() || b.past(d) {
		return false
	}
	b.date = d
	return true
}

func (b *bookingModal) selectTime(slot string) bool {
	if !slices.Contains(demo.TimeSlots, slot) {
		return false
	}
	b.slot = slot
	return true
}

func (b *bookingModal) nextStep() {
	if b.step < stepConfirm {
		b.step++
	}
}

func (b bookingModal) month() time.Time {
	if b.date.IsZero() {
		return demo.NextTuesday(b.today)
	}
	return b.date
}

func (b bookingModal) past(d time.Time) bool {
	y, m, day := b.today.Date()
	return d.Before(time.Date(y, m, day, 0, 0, 0, 0, b.today.Location()))
}

func (b bookingModal) contact() model.Contact {
	v := func(i int) string { return strings.TrimSpace(b.fields[i].Value()) }
	return model.Contact{
		Name:    v(fieldName),
		Company: v(fieldCompany),
		Email:   v(fieldEmail),
		Phone:   v(fieldPhone),
		Message: v(fieldMessage),
	}
}

// canConfirm mirrors the form rules: a date, a slot, a name and a valid email.
func (b bookingModal) canConfirm() bool {
	c := b.contact()
	return !b.date.IsZero() && b.slot != "" && c.Name != "" && model.ValidEmail(c.Email)
}

func (b bookingModal) booking() model.Booking {
	return model.Booking{Date: b.date.Format(demo.DateLayout), Time: b.slot}.WithContact(b.contact())
}

// ---------------- rendering ----------------

const modalWidth = 44

// opacity eases the linear fade so the modal settles in and out softly.
func (b bookingModal) opacity() float64 {
	return anim.Lerp(0, 1, b.alpha, anim.EaseInOutQuad)
}

func (b bookingModal) View(s styles) string {
	a := b.opacity()
	if a < 0.3 {
		return ""
	}
	inner := modalWidth - 2

	title := s.header.Bold(true).Width(inner).Align(lipgloss.Center).Render("Boka Din Demo")

	var steps []string
	for i, name := range stepNames {
		label := fmt.Sprintf("%d.%s", i+1, name)
		if i <= b.step {
			steps = append(steps, s.title.Render(label))
		} else {
			steps = append(steps, s.muted.Render(label))
		}
	}
	indicator := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Render(strings.Join(steps, " "))
	progress := s.muted.Render(ui.ProgressBar(b.step+1, len(stepNames), inner-6))

	var body string
	switch b.step {
	case stepDate:
		body = b.calendarView(s)
	case stepTime:
		body = b.slotsView(s)
	case stepContact:
		body = b.formView(s)
	default:
		body = b.summaryView(s)
	}

	box := lipgloss.JoinVertical(lipgloss.Left, title, indicator, " "+progress, "", body)
	frame := s.frame.Width(inner)
	if a < 0.7 {
		frame = frame.BorderForeground(ui.Current().Muted).Faint(true)
	}
	return frame.Render(box)
}

func (b bookingModal) calendarView(s styles) string {
	month := b.month()
	var rows []string
	rows = append(rows, s.title.Width(28).Align(lipgloss.Center).Render(demo.MonthTitle(month)))

	var head strings.Builder
	for _, d := range demo.WeekdayHeaders {
		head.WriteString(fmt.Sprintf("%4s", d))
	}
	rows = append(rows, s.muted.Render(head.String()))

	for _, week := range demo.MonthGrid(month.Year(), month.Month()) {
		var line strings.Builder
		for _, day := range week {
			if day == 0 {
				line.WriteString("    ")
				continue
			}
			cell := fmt.Sprintf("%3d", day)
			d := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, b.today.Location())
			switch {
			case !b.date.IsZero() && sameDay(d, b.date):
				st := s.chosen
				if b.highlight == hlDay {
					st = st.Underline(true).Blink(true)
				}
				line.WriteString(" " + st.Render(cell))
			case b.past(d):
				line.WriteString(" " + s.muted.Render(cell))
			default:
				line.WriteString(" " + cell)
			}
		}
		rows = append(rows, line.String())
	}
	rows = append(rows, "", s.muted.Render("  Nästa →"))
	return strings.Join(rows, "\n")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (b bookingModal) slotsView(s styles) string {
	rows := []string{s.title.Render("Tillgängliga Tider"), ""}
	var cells []string
	for i, slot := range demo.TimeSlots {
		st := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(ui.Current().Muted)
		if slot == b.slot {
			st = st.BorderForeground(ui.Current().Primary).Bold(true).Foreground(ui.Current().Primary)
			if b.highlight == hlTime {
				st = st.Reverse(true)
			}
		}
		cells = append(cells, st.Render(slot))
		if (i+1)%3 == 0 || i == len(demo.TimeSlots)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	rows = append(rows, "", s.muted.Render("← Tillbaka   Nästa →"))
	return strings.Join(rows, "\n")
}

func (b bookingModal) formView(s styles) string {
	var rows []string
	for i, f := range b.fields {
		rows = append(rows, s.muted.Render(fieldLabels[i]), " "+f.View())
	}
	return strings.Join(rows, "\n")
}

func (b bookingModal) summaryView(s styles) string {
	c := b.contact()
	rows := []string{
		s.title.Render("Bekräfta Din Bokning"),
		"",
		s.muted.Render("Datum: ") + demo.FormatSwedish(b.date),
		s.muted.Render("Tid:   ") + b.slot,
		s.muted.Render("Namn:  ") + c.Name,
		s.muted.Render("Mejl:  ") + c.Email,
		"",
		"Vi kommer att gå igenom:",
	}
	for _, item := range demo.Agenda {
		rows = append(rows, " "+ui.Current().SymBullet+" "+item)
	}

	btn := s.disabled
	if b.canConfirm() {
		btn = s.button
	}
	if b.highlight == hlOK {
		btn = btn.Reverse(true)
	}
	rows = append(rows, "", lipgloss.NewStyle().Width(modalWidth-2).Align(lipgloss.Center).Render(btn.Render("Bekräfta Bokning")))
	return strings.Join(rows, "\n")
}
