// Package demo holds the fixed script and candidate data every demo replays.
package demo

import (
	"time"

	"github.com/idilsaglam/bookdemo/internal/model"
)

// Company shown in headers and the final scene.
const (
	CompanyName  = "Axie Studio"
	CompanyBadge = "AS"
	LogoURL      = "https://www.axiestudio.se/logo.jpg"
)

// TimeSlots are the bookable half-day slots, in display order.
var TimeSlots = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00"}

// DefaultSlot is what the booking modal pre-selects.
const DefaultSlot = "10:00"

// DefaultMessage is the free-text message every simulated contact sends.
const DefaultMessage = "Vi är intresserade av att implementera en AI-driven kundtjänstlösning."

// Conversation returns the scripted chat. The last line opens the booking modal.
func Conversation() []model.Line {
	return []model.Line{
		{ID: "msg1", Sender: model.SenderBot, Text: "Hej! Välkommen till Axie Studio! 👋", Pause: 1000 * time.Millisecond},
		{ID: "msg2", Sender: model.SenderBot, Text: "Vi hjälper företag med AI och chatbot-lösningar.", Pause: 1500 * time.Millisecond},
		{ID: "msg3", Sender: model.SenderUser, Text: "Hej! Jag är intresserad av era tjänster.", Pause: 1200 * time.Millisecond},
		{ID: "msg4", Sender: model.SenderBot, Text: "Vad bra! Jag kan hjälpa dig att boka en demo.", Pause: 1500 * time.Millisecond},
		{ID: "msg5", Sender: model.SenderUser, Text: "Det låter perfekt! När kan vi ses?", Pause: 1000 * time.Millisecond},
		{ID: "msg6", Sender: model.SenderBot, Text: "Vi har lediga tider nästa vecka. Passar tisdag eller onsdag?", Pause: 1500 * time.Millisecond},
		{ID: "msg7", Sender: model.SenderUser, Text: "Tisdag skulle fungera bra!", Pause: 800 * time.Millisecond},
		{ID: "msg8", Sender: model.SenderBot, Text: "Utmärkt! Jag öppnar bokningssystemet nu...", Pause: 1200 * time.Millisecond},
		{ID: "msg9", Sender: model.SenderSystem, Text: model.ActionOpenBooking, Pause: 500 * time.Millisecond},
	}
}

// Candidates are the fake contacts. A simulation picks one row; fields are
// never mixed across rows.
var Candidates = []model.Contact{
	{Name: "Erik Andersson", Company: "TechSoft AB", Email: "erik@techsoft.se", Phone: "+46701234567"},
	{Name: "Maria Nilsson", Company: "Digital Solutions", Email: "maria@digitalsolutions.se", Phone: "+46723456789"},
	{Name: "Johan Lindberg", Company: "Innovation Tech", Email: "johan@innovation.se", Phone: "+46734567890"},
	{Name: "Anna Karlsson", Company: "Svenska IT AB", Email: "anna@svenskait.se", Phone: "+46745678901"},
	{Name: "Lars Eriksson", Company: "Future Systems", Email: "lars@future.se", Phone: "+46756789012"},
}

// Candidate returns row i with the default message filled in.
func Candidate(i int) model.Contact {
	c := Candidates[i%len(Candidates)]
	c.Message = DefaultMessage
	return c
}

// Agenda is what the confirm step says the meeting will cover.
var Agenda = []string{
	"Era specifika behov och utmaningar",
	"Hur AI kan effektivisera er verksamhet",
	"Praktiska exempel och demonstrationer",
	"Kostnadsförslag och implementeringsplan",
}
