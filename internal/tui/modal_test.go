package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/model"
)

// Wednesday 8 May 2024.
var testNow = time.Date(2024, time.May, 8, 10, 30, 0, 0, time.UTC)

func fillForm(b *bookingModal, c model.Contact) {
	b.fields[fieldName].SetValue(c.Name)
	b.fields[fieldCompany].SetValue(c.Company)
	b.fields[fieldEmail].SetValue(c.Email)
	b.fields[fieldPhone].SetValue(c.Phone)
	b.fields[fieldMessage].SetValue(c.Message)
}

// pickDefaults makes the auto-pilot's choice: Tuesday 14 May at 10:00.
func pickDefaults(t *testing.T, b *bookingModal) {
	t.Helper()
	require.True(t, b.selectDay(14))
	require.True(t, b.selectTime("10:00"))
}

func TestNewBookingModal(t *testing.T) {
	b := newBookingModal(testNow)
	assert.True(t, b.date.IsZero())
	assert.Empty(t, b.slot)
	assert.Equal(t, "maj 2024", demo.MonthTitle(b.month()), "calendar opens on next Tuesday's month")
	assert.Equal(t, stepDate, b.step)
	require.Len(t, b.fields, len(fieldLabels))
	assert.Equal(t, "din@epost.se", b.fields[fieldEmail].Placeholder)
	assert.False(t, b.canConfirm(), "empty form must not be confirmable")
}

func TestSelectDay(t *testing.T) {
	b := newBookingModal(testNow)

	assert.True(t, b.selectDay(20))
	assert.Equal(t, 20, b.date.Day())

	assert.True(t, b.selectDay(8), "today is bookable")
	assert.False(t, b.selectDay(7), "past day")
	assert.False(t, b.selectDay(32), "outside the month")
	assert.Equal(t, 8, b.date.Day())
}

func TestSelectTime(t *testing.T) {
	b := newBookingModal(testNow)
	assert.True(t, b.selectTime("14:00"))
	assert.False(t, b.selectTime("12:00"))
	assert.Equal(t, "14:00", b.slot)
}

func TestStepsClamp(t *testing.T) {
	b := newBookingModal(testNow)
	for i := 0; i < 10; i++ {
		b.nextStep()
	}
	assert.Equal(t, stepConfirm, b.step)
}

func TestCanConfirmAndBooking(t *testing.T) {
	b := newBookingModal(testNow)
	c := model.Contact{Name: "Erik Andersson", Email: "erik@techsoft.se"}
	fillForm(&b, c)
	assert.False(t, b.canConfirm(), "no day or slot picked")
	pickDefaults(t, &b)

	fillForm(&b, model.Contact{
		Name:    "Erik Andersson",
		Company: "TechSoft AB",
		Email:   "erik@techsoft.se",
		Phone:   "+46701234567",
		Message: "hej",
	})
	assert.True(t, b.canConfirm())

	got := b.booking()
	assert.Equal(t, "2024-05-14", got.Date)
	assert.Equal(t, "10:00", got.Time)
	assert.Equal(t, "Erik Andersson", got.Name)
	assert.Equal(t, "erik@techsoft.se", got.Email)

	b.fields[fieldEmail].SetValue("not-an-email")
	assert.False(t, b.canConfirm())

	b.fields[fieldEmail].SetValue("erik@techsoft.se")
	b.fields[fieldName].SetValue("   ")
	assert.False(t, b.canConfirm(), "blank name")
}

func TestModalView(t *testing.T) {
	s := newStyles()
	b := newBookingModal(testNow)
	assert.Empty(t, b.View(s), "hidden while mostly transparent")

	b.alpha = 1
	pickDefaults(t, &b)
	out := b.View(s)
	assert.Contains(t, out, "Boka Din Demo")
	assert.Contains(t, out, "maj 2024")
	assert.Contains(t, out, "Mån")

	b.nextStep()
	assert.Contains(t, b.View(s), "Tillgängliga Tider")
	assert.Contains(t, b.View(s), "15:00")

	b.nextStep()
	assert.Contains(t, b.View(s), "Företag")

	b.nextStep()
	out = b.View(s)
	assert.Contains(t, out, "tisdag 14 maj")
	assert.Contains(t, out, "Bekräfta Bokning")
	assert.Contains(t, out, "Kostnadsförslag")
}

func TestModalFadeIsEased(t *testing.T) {
	s := newStyles()
	b := newBookingModal(testNow)

	b.alpha = 0.35
	assert.InDelta(t, 0.245, b.opacity(), 1e-9)
	assert.Empty(t, b.View(s), "eased opacity is still below the cut")

	b.alpha = 0.5
	assert.InDelta(t, 0.5, b.opacity(), 1e-9)
	assert.Contains(t, b.View(s), "Boka Din Demo")

	b.alpha = 0.8
	assert.InDelta(t, 0.92, b.opacity(), 1e-9)
}
