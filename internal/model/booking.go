package model

import (
	"regexp"
	"time"
)

// Booking is one simulated appointment. The store only ever appends these.
// ID and CreatedAt are optional so older files without them still load.
type Booking struct {
	ID        string     `json:"id,omitempty"`
	Date      string     `json:"date"` // YYYY-MM-DD
	Time      string     `json:"time"` // one of demo.TimeSlots
	Name      string     `json:"name"`
	Company   string     `json:"company"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Contact is the form part of a booking.
type Contact struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Message string
}

// Contact returns the form fields of b.
func (b Booking) Contact() Contact {
	return Contact{Name: b.Name, Company: b.Company, Email: b.Email, Phone: b.Phone, Message: b.Message}
}

// WithContact copies c into b.
func (b Booking) WithContact(c Contact) Booking {
	b.Name, b.Company, b.Email, b.Phone, b.Message = c.Name, c.Company, c.Email, c.Phone, c.Message
	return b
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail is the loose check the booking form uses before it lets you confirm.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }
