package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/idilsaglam/bookdemo/internal/config"
	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/logging"
	"github.com/idilsaglam/bookdemo/internal/model"
	"github.com/idilsaglam/bookdemo/internal/simulator"
	"github.com/idilsaglam/bookdemo/internal/store/jsonstore"
	"github.com/idilsaglam/bookdemo/internal/tui"
	"github.com/idilsaglam/bookdemo/internal/ui"
	"github.com/idilsaglam/bookdemo/internal/webdemo"
)

// Options tune behavior from root flags. Zero values keep the config.
type Options struct {
	ConfigPath string
	Theme      string
	NoColor    bool
	Pace       float64 // negative keeps the configured pace
	LogLevel   string
}

// Swapped by tests.
var (
	runChat     = tui.Run
	runBookings = tui.RunBookings
	connect     = webdemo.Connect
)

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "chat", "simulate", "ls", "browse":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(ui.Err)
		PrintHelp()
		return 2
	}

	cfg, err := setup(opt)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}

	switch cmd {
	case "chat":
		return doChat(cfg, a)
	case "simulate":
		return doSimulate(cfg, a)
	case "ls":
		return doList(cfg, a)
	default:
		return doBrowse(cfg, a)
	}
}

// setup loads the config, applies root flag overrides and prepares logging
// and the theme.
func setup(opt Options) (*config.Config, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	if opt.NoColor {
		cfg.NoColor = true
	}
	if opt.Pace >= 0 {
		cfg.Pace = opt.Pace
	}
	if opt.LogLevel != "" {
		cfg.LogLevel = opt.LogLevel
	}

	logging.Setup(cfg.LogLevel, nil)
	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, cfg.NoColor)
	log.WithFields(log.Fields{"pace": cfg.Pace, "theme": cfg.Theme, "data_file": cfg.DataFile}).Debug("config loaded")
	return cfg, nil
}

func PrintHelp() {
	fmt.Fprint(ui.Out, `bookdemo - booking demo toolkit

Usage:
  bookdemo [root flags] <subcommand> [args]

Subcommands:
  chat [--once]            Play the chat and booking animation
  simulate [-n N]          Run N headless booking simulations (default 1)
  ls [--plain] [--group]   Browse recorded bookings
  browse [--url URL]       Book through a live chat widget in Chrome
  help                     Show this help

Root flags:
  --config FILE     config file (yaml, toml or json)
  --theme NAME      classic | neon | mono
  --no-color        disable colors
  --pace X          scale every scripted delay (0 = no waiting)
  --log-level LVL   debug | info | warn | error

Environment:
  BOOKDEMO_* variables override config keys, e.g. BOOKDEMO_DATA_FILE,
  BOOKDEMO_CHAT_LOOP_PAUSE=5s, BOOKDEMO_BROWSER_URL. A .env file is read too.

Examples:
  bookdemo chat --once
  bookdemo --pace 0 simulate -n 5
  bookdemo ls --plain --group
`)
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(ui.Err)
	return fs
}

func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// -------------- subcommand impls ----------------

func doChat(cfg *config.Config, args []string) int {
	fs := newFlags("chat")
	once := fs.Bool("once", false, "stop after one cycle")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	opts := tui.Options{
		Pace:       cfg.Pace,
		MaxVisible: cfg.Chat.MaxVisible,
		LoopPause:  cfg.Chat.LoopPause,
		Once:       *once,
	}
	if cfg.Chat.FetchLogo {
		opts.LogoURL = cfg.LogoURL
	}
	m, err := runChat(opts)
	if err != nil {
		ui.Fail("chat: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("chat finished: %d cycle(s), %d booking(s) shown", m.Cycles(), len(m.Booked())))
	return 0
}

func doSimulate(cfg *config.Config, args []string) int {
	fs := newFlags("simulate")
	n := fs.Int("n", 1, "number of simulations")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *n < 1 {
		ui.Fail("usage: bookdemo simulate [-n N] (N >= 1)")
		return 2
	}

	store, err := jsonstore.New(cfg.DataFile)
	if err != nil {
		ui.Fail("store: " + err.Error())
		return 1
	}
	ctx, cancel := interruptible()
	defer cancel()

	sim := simulator.New(store, simulator.WithPace(cfg.Pace))
	for i := 0; i < *n; i++ {
		if _, err := sim.Run(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				ui.Fail("interrupted")
			} else {
				ui.Fail("simulate: " + err.Error())
			}
			return 1
		}
	}
	ui.OK(fmt.Sprintf("%d booking(s) recorded in %s", *n, store.Path()))
	return 0
}

func doList(cfg *config.Config, args []string) int {
	fs := newFlags("ls")
	plain := fs.Bool("plain", false, "print a panel instead of the interactive list")
	group := fs.Bool("group", false, "group bookings by date (with --plain)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, err := jsonstore.New(cfg.DataFile)
	if err != nil {
		ui.Fail("store: " + err.Error())
		return 1
	}
	records, err := store.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	if !*plain && len(records) > 0 {
		if err := runBookings(records); err != nil {
			ui.Fail("ls: " + err.Error())
			return 1
		}
		return 0
	}

	companies := map[string]bool{}
	for _, r := range records {
		companies[r.Company] = true
	}
	header := fmt.Sprintf("%s  %s %d  %s %d",
		ui.C(ui.Current().Title, "Bookings"),
		ui.C(ui.Current().Success, ui.Current().SymDone), len(records),
		ui.C(ui.Current().Accent, "Companies"), len(companies),
	)

	lines := []string{header, ""}
	if *group {
		lines = append(lines, groupLines(records)...)
	} else {
		lines = append(lines, flatLines(records)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: record more with `bookdemo simulate -n 3`"))
	ui.Panel(lines)
	return 0
}

func doBrowse(cfg *config.Config, args []string) int {
	fs := newFlags("browse")
	url := fs.String("url", cfg.Browser.URL, "chat page to open")
	headless := fs.Bool("headless", cfg.Browser.Headless, "run Chrome without a window")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	bc := cfg.Browser
	bc.URL, bc.Headless = *url, *headless

	wd, err := connect(bc)
	if err != nil {
		ui.Fail("browse: " + err.Error())
		return 1
	}
	ctx, cancel := interruptible()
	defer cancel()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	d := webdemo.New(wd, bc,
		webdemo.WithPace(cfg.Pace),
		webdemo.WithRand(rnd),
		webdemo.WithContact(demo.Candidate(rnd.Intn(len(demo.Candidates)))),
	)
	if err := d.Run(ctx); err != nil {
		ui.Fail("browse: " + err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

func flatLines(records []model.Booking) []string {
	if len(records) == 0 {
		return []string{ui.C(ui.Current().Muted, "no bookings")}
	}
	out := make([]string, 0, len(records))
	for i, r := range records {
		idx := fmt.Sprintf("%2d.", i+1)
		who := fmt.Sprintf("%s (%s) %s", r.Name, r.Company, r.Email)
		if r := []rune(who); len(r) > 80 {
			who = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C(ui.Current().Muted, idx),
			ui.C(ui.Current().Accent, r.Date+" "+r.Time),
			who))
	}
	return out
}

// groupLines lists bookings per appointment date with how many of the
// day's slots are taken.
func groupLines(records []model.Booking) []string {
	if len(records) == 0 {
		return []string{ui.C(ui.Current().Muted, "(none)")}
	}
	byDate := map[string][]model.Booking{}
	var dates []string
	for _, r := range records {
		if _, ok := byDate[r.Date]; !ok {
			dates = append(dates, r.Date)
		}
		byDate[r.Date] = append(byDate[r.Date], r)
	}
	sort.Strings(dates)

	var lines []string
	for i, d := range dates {
		if i > 0 {
			lines = append(lines, "")
		}
		title := d
		if t, err := time.ParseInLocation(demo.DateLayout, d, time.Local); err == nil {
			title = demo.FormatLong(t)
		}
		day := byDate[d]
		taken := map[string]bool{}
		for _, r := range day {
			taken[r.Time] = true
		}
		lines = append(lines,
			ui.C(ui.Current().Accent, title),
			ui.C(ui.Current().Muted, ui.ProgressBar(len(taken), len(demo.TimeSlots), 24)+" slots taken"),
		)
		lines = append(lines, flatLines(day)...)
	}
	return lines
}
