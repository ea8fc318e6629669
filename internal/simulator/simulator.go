// Package simulator runs the headless booking demo: it picks a slot and a
// fake contact, narrates the three booking steps and appends the result to
// the booking log.
package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/bookdemo/internal/config"
	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/model"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

// Appender is the part of the store the simulator needs.
type Appender interface {
	Append(rec model.Booking) (int, error)
}

type Simulator struct {
	store Appender
	rnd   *rand.Rand
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
	pace  float64
}

type Option func(*Simulator)

func WithRand(r *rand.Rand) Option          { return func(s *Simulator) { s.rnd = r } }
func WithClock(now func() time.Time) Option { return func(s *Simulator) { s.now = now } }

// WithPace scales every narration pause. 0 runs without waiting.
func WithPace(p float64) Option { return func(s *Simulator) { s.pace = p } }

func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Simulator) { s.sleep = fn }
}

func New(store Appender, opts ...Option) *Simulator {
	s := &Simulator{
		store: store,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
		sleep: sleepCtx,
		pace:  1,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Simulator) pause(ctx context.Context, d time.Duration) error {
	return s.sleep(ctx, config.Scale(d, s.pace))
}

// Pick draws the date, slot and contact for one booking without printing
// or saving anything.
func (s *Simulator) Pick() (time.Time, string, model.Contact) {
	date := demo.NextTuesday(s.now())
	slot := demo.TimeSlots[s.rnd.Intn(len(demo.TimeSlots))]
	contact := demo.Candidate(s.rnd.Intn(len(demo.Candidates)))
	return date, slot, contact
}

// Run performs one simulated booking and returns the stored record.
func (s *Simulator) Run(ctx context.Context) (model.Booking, error) {
	ui.Banner("Starting Booking Simulation")

	ui.Step(1, "Selecting Date and Time")
	date, slot, contact := s.Pick()
	ui.Field("Selected Date", demo.FormatLong(date))
	ui.Field("Selected Time", slot)
	log.WithFields(log.Fields{"date": date.Format(demo.DateLayout), "time": slot}).Debug("slot picked")
	if err := s.pause(ctx, 1500*time.Millisecond); err != nil {
		return model.Booking{}, err
	}

	fmt.Fprintln(ui.Out)
	ui.Step(2, "Entering Personal Information")
	fmt.Fprintln(ui.Out, "Entering user details:")
	for _, f := range contactFields(contact) {
		ui.Field(f.key, f.value)
		if err := s.pause(ctx, 500*time.Millisecond); err != nil {
			return model.Booking{}, err
		}
	}

	fmt.Fprintln(ui.Out)
	ui.Step(3, "Confirming Booking")
	fmt.Fprintln(ui.Out)
	fmt.Fprintln(ui.Out, ui.Bold("Booking Summary:"))
	ui.Panel([]string{
		"Date:    " + demo.FormatLong(date),
		"Time:    " + slot,
		"Name:    " + contact.Name,
		"Company: " + contact.Company,
		"Email:   " + contact.Email,
		"Phone:   " + contact.Phone,
	})
	if err := s.pause(ctx, time.Second); err != nil {
		return model.Booking{}, err
	}
	fmt.Fprintln(ui.Out, "\nConfirming booking...")
	if err := s.pause(ctx, 500*time.Millisecond); err != nil {
		return model.Booking{}, err
	}
	ui.OK("Booking confirmed!")
	ui.OK("Confirmation email sent")

	now := s.now()
	rec := model.Booking{
		ID:        uuid.NewString(),
		Date:      date.Format(demo.DateLayout),
		Time:      slot,
		CreatedAt: &now,
	}.WithContact(contact)

	total, err := s.store.Append(rec)
	if err != nil {
		return model.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	log.WithFields(log.Fields{"id": rec.ID, "total": total}).Info("booking recorded")

	ui.Banner("Simulation Complete")
	return rec, nil
}

type field struct{ key, value string }

func contactFields(c model.Contact) []field {
	return []field{
		{"Name", c.Name},
		{"Company", c.Company},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Message", c.Message},
	}
}
