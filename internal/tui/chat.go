// Package tui holds the Bubble Tea programs: the scripted booking chat and
// the bookings list.
package tui

import (
	"context"
	"image"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/bookdemo/internal/anim"
	"github.com/idilsaglam/bookdemo/internal/config"
	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/logo"
	"github.com/idilsaglam/bookdemo/internal/model"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

// Options configure the chat animation.
type Options struct {
	Pace       float64       // multiplies every scripted delay; 0 runs without waiting
	MaxVisible int           // messages shown at full opacity
	LoopPause  time.Duration // rest between two cycles
	Once       bool          // quit after the first cycle
	LogoURL    string        // empty skips the fetch and keeps the badge
	Now        func() time.Time
	Rand       *rand.Rand
	Contact    *model.Contact // nil picks a random candidate every cycle
}

type bubble struct {
	bot bool
	tw  *anim.Typewriter
	at  time.Time
}

var finalLines = [...]string{
	"Tack för din bokning!",
	"En bekräftelse har skickats till din e-post.",
}

type finalScene struct {
	lines [len(finalLines)]float64
	logo  float64
}

type (
	stepMsg  struct{ gen int }
	frameMsg struct{}
	logoMsg  struct {
		img image.Image
		err error
	}
)

const (
	frameRate   = 120 * time.Millisecond
	logoTimeout = 5 * time.Second
)

// Model is the chat animation. Every state change happens in Update, driven
// by tick messages; nothing runs behind the event loop's back.
type Model struct {
	opts   Options
	script []model.Line
	clock  func() time.Time
	rnd    *rand.Rand
	st     styles

	width, height int

	keys  keyMap
	help  help.Model
	input textinput.Model

	logoImg    image.Image // nil until the fetch succeeds
	headerLogo string
	finalLogo  string

	phase  phase
	queue  []action
	gen    int
	paused bool
	cycles int
	done   bool

	contact  model.Contact
	messages []bubble
	typer    *anim.Typewriter
	showDots bool
	dotFrame int
	sending  bool

	modal      bookingModal
	flight     *anim.Flight
	particles  []anim.Particle
	sceneAlpha float64
	final      finalScene

	booked []model.Booking
}

func New(opts Options) Model {
	if opts.Pace < 0 {
		opts.Pace = 1
	}
	if opts.MaxVisible <= 0 {
		opts.MaxVisible = config.Default().Chat.MaxVisible
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Skriv ditt meddelande..."
	in.CharLimit = 200

	t := ui.Current()
	m := Model{
		opts:       opts,
		script:     demo.Conversation(),
		clock:      opts.Now,
		rnd:        opts.Rand,
		st:         newStyles(),
		width:      80,
		height:     24,
		keys:       defaultKeys(),
		help:       help.New(),
		input:      in,
		headerLogo: logo.Badge(demo.CompanyBadge, t.Primary),
		finalLogo:  logo.Badge(demo.CompanyName, t.Primary),
	}
	m.resetChat()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.stepNow(), frameTick()}
	if m.opts.LogoURL != "" {
		cmds = append(cmds, fetchLogo(m.opts.LogoURL))
	}
	return tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(frameRate, func(time.Time) tea.Msg { return frameMsg{} })
}

func fetchLogo(url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), logoTimeout)
		defer cancel()
		img, err := logo.Fetch(ctx, nil, url)
		return logoMsg{img: img, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.gen++
			if m.paused {
				return m, nil
			}
			return m, m.stepNow()
		case key.Matches(msg, m.keys.Skip):
			m.skipPhase()
			m.gen++
			return m, m.stepNow()
		}
		return m, nil

	case stepMsg:
		if msg.gen != m.gen || m.paused {
			return m, nil
		}
		cmd := m.advance()
		return m, cmd

	case frameMsg:
		m.dotFrame = (m.dotFrame + 1) % 6
		return m, frameTick()

	case logoMsg:
		if msg.err != nil {
			log.WithError(msg.err).WithField("url", m.opts.LogoURL).Debug("logo unavailable, keeping badge")
			return m, nil
		}
		m.logoImg = msg.img
		m.headerLogo = logo.Render(msg.img, 4, 2)
		m.finalLogo = logo.Render(msg.img, logoCols, logoRows)
		return m, nil
	}
	return m, nil
}

// advance runs queued actions until one asks for a wait, then schedules the
// next step. An empty queue starts a new cycle.
func (m *Model) advance() tea.Cmd {
	for {
		if m.done {
			return tea.Quit
		}
		if len(m.queue) == 0 {
			m.queue = m.cycle()
		}
		a := m.queue[0]
		m.phase = a.phase
		d, again := a.run(m)
		if !again {
			m.queue = m.queue[1:]
		}
		if m.done {
			log.WithField("cycles", m.cycles).Debug("chat animation finished")
			return tea.Quit
		}
		if d > 0 {
			return m.tick(config.Scale(d, m.opts.Pace))
		}
	}
}

func (m *Model) tick(d time.Duration) tea.Cmd {
	gen := m.gen
	return tea.Tick(d, func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

func (m *Model) stepNow() tea.Cmd {
	gen := m.gen
	return func() tea.Msg { return stepMsg{gen: gen} }
}

// skipPhase drops what is left of the current phase. A skipped modal still
// books, so the final scene always has this cycle's appointment.
func (m *Model) skipPhase() {
	cur := m.phase
	for len(m.queue) > 0 && m.queue[0].phase == cur {
		m.queue = m.queue[1:]
	}
	if cur == phaseModal && !m.modal.confirmed {
		m.completeModal()
	}
	m.showDots = false
	m.sending = false
	m.input.SetValue("")
	for i := range m.messages {
		m.messages[i].tw.Finish()
	}
	log.WithField("phase", cur).Debug("phase skipped")
}

func (m *Model) now() time.Time { return m.clock() }

func (m *Model) sceneHeight() int {
	if h := m.height - 2; h > 4 {
		return h
	}
	return 4
}

func (m *Model) resetChat() {
	m.messages = nil
	m.typer = nil
	m.showDots = false
	m.sending = false
	m.input.SetValue("")
	m.modal = bookingModal{}
	m.flight = nil
	m.particles = nil
	m.sceneAlpha = 0
	m.final = finalScene{}
	if m.opts.Contact != nil {
		m.contact = *m.opts.Contact
		if m.contact.Message == "" {
			m.contact.Message = demo.DefaultMessage
		}
	} else {
		m.contact = demo.Candidate(m.rnd.Intn(len(demo.Candidates)))
	}
}

func (m *Model) addBubble(line model.Line, char, word time.Duration) {
	m.messages = append(m.messages, bubble{
		bot: line.IsBot(),
		tw:  anim.NewTypewriter(line.Text, char, word),
		at:  m.now(),
	})
}

// contactFor returns the value typed into form field i.
func (m *Model) contactFor(i int) string {
	switch i {
	case fieldName:
		return m.contact.Name
	case fieldCompany:
		return m.contact.Company
	case fieldEmail:
		return m.contact.Email
	case fieldPhone:
		return m.contact.Phone
	default:
		return m.contact.Message
	}
}

// Booked returns the bookings confirmed so far.
func (m Model) Booked() []model.Booking { return m.booked }

// Cycles is how many full cycles have played.
func (m Model) Cycles() int { return m.cycles }

// Run plays the animation full screen until the user quits, or after one
// cycle with Options.Once.
func Run(opts Options) (Model, error) {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	fm, _ := final.(Model)
	return fm, nil
}
