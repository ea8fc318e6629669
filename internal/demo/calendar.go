package demo

import "time"

// DateLayout is how bookings store their date.
const DateLayout = "2006-01-02"

// NextTuesday returns midnight of the first Tuesday strictly after now.
func NextTuesday(now time.Time) time.Time {
	days := (int(time.Tuesday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	y, m, d := now.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, now.Location())
}

// MonthGrid lays out a month in Monday-first weeks. Padding days are 0.
func MonthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var weeks [][]int
	week := make([]int, 7)
	col := offset
	for day := 1; day <= last; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// FormatLong renders a date the way the summaries print it: "Tuesday, 14 May 2024".
func FormatLong(t time.Time) string { return t.Format("Monday, 02 January 2006") }

// WeekdayHeaders are the Swedish Monday-first column titles of the calendar.
var WeekdayHeaders = []string{"Mån", "Tis", "Ons", "Tor", "Fre", "Lör", "Sön"}

var svMonths = [...]string{
	"januari", "februari", "mars", "april", "maj", "juni",
	"juli", "augusti", "september", "oktober", "november", "december",
}

// MonthTitle is the calendar header, e.g. "maj 2024".
func MonthTitle(t time.Time) string {
	return svMonths[t.Month()-1] + " " + t.Format("2006")
}

var svWeekdays = [...]string{"söndag", "måndag", "tisdag", "onsdag", "torsdag", "fredag", "lördag"}

// FormatSwedish renders "tisdag 14 maj" for the modal summary.
func FormatSwedish(t time.Time) string {
	return svWeekdays[t.Weekday()] + " " + t.Format("2") + " " + svMonths[t.Month()-1]
}
