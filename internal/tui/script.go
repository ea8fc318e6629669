package tui

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/bookdemo/internal/anim"
	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/model"
)

type phase int

const (
	phaseChat phase = iota
	phaseModal
	phasePlane
	phaseFinal
	phaseRest
)

func (p phase) String() string {
	return [...]string{"chat", "modal", "plane", "final", "rest"}[p]
}

// action is one beat of the scripted demo. run returns the delay before the
// next beat; again keeps the same action at the head of the queue.
type action struct {
	phase phase
	run   func(m *Model) (delay time.Duration, again bool)
}

func do(p phase, fn func(m *Model)) action {
	return action{p, func(m *Model) (time.Duration, bool) { fn(m); return 0, false }}
}

func wait(p phase, d time.Duration) action {
	return action{p, func(*Model) (time.Duration, bool) { return d, false }}
}

func loop(p phase, fn func(m *Model) (time.Duration, bool)) action {
	return action{p, fn}
}

// Script timings.
const (
	botThinking   = 1500 * time.Millisecond
	bubbleChar    = 40 * time.Millisecond
	bubbleWord    = 80 * time.Millisecond
	inputChar     = 60 * time.Millisecond
	inputWord     = 120 * time.Millisecond
	sendFlash     = 300 * time.Millisecond
	fadeFrame     = 20 * time.Millisecond
	sceneFadeStep = 50 * time.Millisecond
	planeFrame    = 40 * time.Millisecond
	formChar      = 50 * time.Millisecond
	finalHold     = 5 * time.Second
)

// cycle builds the queue for one full run: chat, modal, plane, final, rest.
func (m *Model) cycle() []action {
	q := []action{do(phaseChat, (*Model).resetChat)}
	for _, line := range m.script {
		if line.OpensBooking() {
			q = append(q, wait(phaseChat, line.Pause))
			break
		}
		if line.IsBot() {
			q = append(q, botLine(line)...)
		} else {
			q = append(q, userLine(line)...)
		}
	}
	q = append(q, modalScript()...)
	q = append(q, planeScript()...)
	q = append(q, finalScript()...)
	q = append(q,
		do(phaseRest, func(m *Model) {
			m.cycles++
			if m.opts.Once {
				m.done = true
				return
			}
			m.resetChat()
		}),
		wait(phaseRest, m.opts.LoopPause),
	)
	return q
}

func typeBubble(m *Model) (time.Duration, bool) {
	if len(m.messages) == 0 {
		return 0, false
	}
	d, done := m.messages[len(m.messages)-1].tw.Step()
	return d, !done
}

func botLine(line model.Line) []action {
	return []action{
		do(phaseChat, func(m *Model) { m.showDots = true }),
		wait(phaseChat, botThinking),
		do(phaseChat, func(m *Model) {
			m.showDots = false
			m.addBubble(line, bubbleChar, bubbleWord)
		}),
		loop(phaseChat, typeBubble),
		wait(phaseChat, line.Pause),
	}
}

func userLine(line model.Line) []action {
	return []action{
		do(phaseChat, func(m *Model) {
			m.typer = anim.NewTypewriter(line.Text, inputChar, inputWord)
			m.input.SetValue("")
		}),
		loop(phaseChat, func(m *Model) (time.Duration, bool) {
			d, done := m.typer.Step()
			m.input.SetValue(m.typer.Visible())
			return d, !done
		}),
		wait(phaseChat, inputWord),
		do(phaseChat, func(m *Model) { m.sending = true }),
		wait(phaseChat, sendFlash),
		do(phaseChat, func(m *Model) {
			m.sending = false
			m.input.SetValue("")
			m.addBubble(line, bubbleChar, bubbleWord)
		}),
		loop(phaseChat, typeBubble),
		wait(phaseChat, line.Pause),
	}
}

func setHighlight(h string) func(m *Model) { return func(m *Model) { m.modal.highlight = h } }

// openModal shows a fresh modal with the auto-pilot's picks already made:
// next Tuesday at the default slot.
func (m *Model) openModal() {
	m.modal = newBookingModal(m.now())
	m.typer = nil
	if !m.modal.selectDay(demo.NextTuesday(m.now()).Day()) {
		log.WithField("today", m.now()).Warn("next Tuesday is not selectable")
	}
	if !m.modal.selectTime(demo.DefaultSlot) {
		log.WithField("slot", demo.DefaultSlot).Warn("default slot is not offered")
	}
}

func (m *Model) confirmBooking() {
	if !m.modal.canConfirm() {
		log.WithField("contact", m.modal.contact()).Warn("booking form incomplete, confirming anyway")
	}
	m.modal.confirmed = true
	m.booked = append(m.booked, m.modal.booking())
}

// completeModal jumps to the end of the form: every field filled, summary
// shown, booking confirmed.
func (m *Model) completeModal() {
	m.modal.typer = nil
	for i := range m.modal.fields {
		m.modal.fields[i].Blur()
		m.modal.fields[i].SetValue(m.contactFor(i))
	}
	m.modal.step = stepConfirm
	m.modal.highlight = hlNone
	m.confirmBooking()
}

func modalScript() []action {
	q := []action{
		do(phaseModal, (*Model).openModal),
		loop(phaseModal, func(m *Model) (time.Duration, bool) {
			var done bool
			m.modal.alpha, done = anim.FadeIn(m.modal.alpha)
			return fadeFrame, !done
		}),
		wait(phaseModal, 1500*time.Millisecond),

		do(phaseModal, setHighlight(hlDay)),
		wait(phaseModal, 800*time.Millisecond),
		do(phaseModal, setHighlight(hlNone)),
		wait(phaseModal, 500*time.Millisecond),
		do(phaseModal, func(m *Model) { m.modal.nextStep() }),

		wait(phaseModal, 1200*time.Millisecond),
		do(phaseModal, setHighlight(hlTime)),
		wait(phaseModal, 800*time.Millisecond),
		do(phaseModal, setHighlight(hlNone)),
		wait(phaseModal, 500*time.Millisecond),
		do(phaseModal, func(m *Model) { m.modal.nextStep() }),
	}

	for i := range fieldLabels {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		q = append(q,
			do(phaseModal, func(m *Model) {
				c := m.contactFor(i)
				m.modal.fields[i].Focus()
				m.modal.typer = anim.NewTypewriter(c, formChar, formChar)
			}),
			loop(phaseModal, func(m *Model) (time.Duration, bool) {
				d, done := m.modal.typer.Step()
				m.modal.fields[i].SetValue(m.modal.typer.Visible())
				return d, !done
			}),
			do(phaseModal, func(m *Model) { m.modal.fields[i].Blur() }),
			wait(phaseModal, 300*time.Millisecond),
		)
	}

	q = append(q,
		do(phaseModal, func(m *Model) { m.modal.nextStep() }),
		wait(phaseModal, 1500*time.Millisecond),
		do(phaseModal, setHighlight(hlOK)),
		wait(phaseModal, time.Second),
		do(phaseModal, setHighlight(hlNone)),
		wait(phaseModal, 300*time.Millisecond),
		do(phaseModal, (*Model).confirmBooking),
		loop(phaseModal, func(m *Model) (time.Duration, bool) {
			var done bool
			m.modal.alpha, done = anim.FadeOut(m.modal.alpha)
			return fadeFrame, !done
		}),
	)
	return q
}

func planeScript() []action {
	return []action{
		do(phasePlane, func(m *Model) {
			m.flight = anim.CellFlight(m.width, m.sceneHeight())
			m.particles = nil
			m.sceneAlpha = 0
		}),
		loop(phasePlane, func(m *Model) (time.Duration, bool) {
			var done bool
			m.sceneAlpha, done = anim.FadeIn(m.sceneAlpha)
			return fadeFrame, !done
		}),
		loop(phasePlane, func(m *Model) (time.Duration, bool) {
			if !m.flight.Advance() {
				return 0, false
			}
			m.particles = m.flight.Trail(m.rnd)
			return planeFrame, true
		}),
		loop(phasePlane, func(m *Model) (time.Duration, bool) {
			var done bool
			m.sceneAlpha, done = anim.FadeOut(m.sceneAlpha)
			return sceneFadeStep, !done
		}),
	}
}

func finalScript() []action {
	q := []action{
		do(phaseFinal, func(m *Model) {
			m.final = finalScene{}
			m.sceneAlpha = 1
		}),
	}
	for i := range finalLines {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		q = append(q,
			loop(phaseFinal, func(m *Model) (time.Duration, bool) {
				var done bool
				m.final.lines[i], done = anim.FadeIn(m.final.lines[i])
				return fadeFrame, !done
			}),
			wait(phaseFinal, 100*time.Millisecond),
		)
	}
	q = append(q,
		wait(phaseFinal, 200*time.Millisecond),
		loop(phaseFinal, func(m *Model) (time.Duration, bool) {
			var done bool
			m.final.logo, done = anim.FadeIn(m.final.logo)
			return sceneFadeStep, !done
		}),
		wait(phaseFinal, finalHold),
		loop(phaseFinal, func(m *Model) (time.Duration, bool) {
			var done bool
			m.sceneAlpha, done = anim.FadeOut(m.sceneAlpha)
			return sceneFadeStep, !done
		}),
	)
	return q
}
