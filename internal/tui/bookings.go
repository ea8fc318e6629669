package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/bookdemo/internal/model"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

// listItem adapts a booking to bubbles/list.Item
type listItem struct {
	b model.Booking
}

func (i listItem) Title() string {
	return fmt.Sprintf("%s %s  %s", i.b.Date, i.b.Time, i.b.Name)
}
func (i listItem) Description() string { return i.b.Company }
func (i listItem) FilterValue() string {
	return strings.Join([]string{i.b.Date, i.b.Time, i.b.Name, i.b.Company, i.b.Email}, " ")
}

// Single-line rows: date and time muted, then name and company.
type itemDelegate struct{ st styles }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	when := d.st.muted.Render(it.b.Date + " " + it.b.Time)
	who := it.b.Name
	if it.b.Company != "" {
		who += " " + d.st.accent.Render("· "+it.b.Company)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+when+"  "+who)
}

type bookingsModel struct {
	list      list.Model
	st        styles
	detail    bool
	detailKey key.Binding
	w, h      int
}

// sortedItems orders bookings by appointment, oldest first.
func sortedItems(records []model.Booking) []list.Item {
	sorted := append([]model.Booking(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Date+" "+sorted[i].Time, sorted[j].Date+" "+sorted[j].Time
		return a < b
	})
	out := make([]list.Item, 0, len(sorted))
	for _, b := range sorted {
		out = append(out, listItem{b: b})
	}
	return out
}

func newBookingsModel(records []model.Booking) bookingsModel {
	st := newStyles()
	l := list.New(sortedItems(records), itemDelegate{st: st}, 0, 0)

	companies := map[string]bool{}
	for _, b := range records {
		companies[b.Company] = true
	}
	l.Title = fmt.Sprintf("%s   %s %d  %s %d",
		st.title.Render("Bookings"),
		st.success.Render(ui.Current().SymDone), len(records),
		st.accent.Render("Companies"), len(companies),
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("booking", "bookings")

	detail := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{detail} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{detail} }

	m := bookingsModel{list: l, st: st, detailKey: detail, w: 80, h: 24}
	m.resize()
	return m
}

// RunBookings shows the recorded bookings in a filterable full-screen list.
// The log is append-only, so the list is read-only.
func RunBookings(records []model.Booking) error {
	p := tea.NewProgram(newBookingsModel(records), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m bookingsModel) Init() tea.Cmd { return nil }

func (m *bookingsModel) resize() {
	h := m.h - 4
	if m.detail {
		h -= 9
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.w-4, h)
}

func (m bookingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		// keys belong to the filter input while typing
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case msg.String() == "q", msg.String() == "esc" && m.list.FilterState() == list.Unfiltered:
			return m, tea.Quit
		case key.Matches(msg, m.detailKey):
			m.detail = !m.detail
			m.resize()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m bookingsModel) selected() (model.Booking, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it.b, ok
}

func (m bookingsModel) detailView() string {
	b, ok := m.selected()
	if !ok {
		return ""
	}
	row := func(k, v string) string { return m.st.muted.Render(fmt.Sprintf("%-9s", k)) + v }
	rows := []string{
		row("Date", b.Date+" "+b.Time),
		row("Name", b.Name),
		row("Company", b.Company),
		row("Email", b.Email),
		row("Phone", b.Phone),
		row("Message", b.Message),
	}
	if b.ID != "" {
		rows = append(rows, row("ID", m.st.muted.Render(b.ID)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Current().Muted).
		Padding(0, 1).
		Width(m.w - 6).
		Render(strings.Join(rows, "\n"))
}

func (m bookingsModel) View() string {
	content := m.list.View()
	if m.detail {
		content += "\n" + m.detailView()
	}
	return ui.PanelString([]string{content})
}
