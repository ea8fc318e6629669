package model

import "time"

// Sender identifies who "says" a scripted chat line.
type Sender string

const (
	SenderBot    Sender = "bot"
	SenderUser   Sender = "user"
	SenderSystem Sender = "system"
)

// ActionOpenBooking is the system line that hands over to the booking modal.
const ActionOpenBooking = "OPEN_BOOKING_MODAL"

// Line is one entry of the scripted conversation.
type Line struct {
	ID     string
	Sender Sender
	Text   string
	Pause  time.Duration // wait after the line has been shown
}

func (l Line) IsBot() bool { return l.Sender == SenderBot }

// OpensBooking reports whether l is the modal hand-off marker.
func (l Line) OpensBooking() bool {
	return l.Sender == SenderSystem && l.Text == ActionOpenBooking
}
