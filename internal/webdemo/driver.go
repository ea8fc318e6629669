// Package webdemo replays the booking flow against a live chat widget
// through a WebDriver session (chromedriver or a Selenium server).
package webdemo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"github.com/idilsaglam/bookdemo/internal/config"
	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/model"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

// Fixed waits of the scripted run, before pace scaling.
const (
	chatWarmup  = 2 * time.Second
	stepPause   = time.Second
	planeWait   = 5 * time.Second
	lingerAfter = 3 * time.Second
	keyMinDelay = 50 * time.Millisecond
	keyMaxDelay = 150 * time.Millisecond
)

// Connect opens a Chrome session on the WebDriver endpoint.
func Connect(cfg config.BrowserConfig) (selenium.WebDriver, error) {
	caps := selenium.Capabilities{"browserName": "chrome"}
	args := []string{"--start-maximized"}
	if cfg.Headless {
		args = append(args, "--headless=new", "--window-size=1280,900")
	}
	caps.AddChrome(chrome.Capabilities{Args: args})

	wd, err := selenium.NewRemote(caps, cfg.WebDriverURL)
	if err != nil {
		return nil, fmt.Errorf("connect webdriver %s: %w", cfg.WebDriverURL, err)
	}
	return wd, nil
}

type Driver struct {
	wd      selenium.WebDriver
	cfg     config.BrowserConfig
	contact model.Contact
	pace    float64
	rnd     *rand.Rand
	sleep   func(ctx context.Context, d time.Duration) error
}

type Option func(*Driver)

func WithContact(c model.Contact) Option { return func(d *Driver) { d.contact = c } }
func WithPace(p float64) Option          { return func(d *Driver) { d.pace = p } }
func WithRand(r *rand.Rand) Option       { return func(d *Driver) { d.rnd = r } }

func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(d *Driver) { d.sleep = fn }
}

func New(wd selenium.WebDriver, cfg config.BrowserConfig, opts ...Option) *Driver {
	d := &Driver{
		wd:      wd,
		cfg:     cfg,
		contact: demo.Candidate(0),
		pace:    1,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:   sleepCtx,
	}
	for _, o := range opts {
		o(d)
	}
	return d
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

func (d *Driver) pause(ctx context.Context, dur time.Duration) error {
	return d.sleep(ctx, config.Scale(dur, d.pace))
}

// Run opens the chat page, waits for the widget's booking modal and books
// through it. The browser is always closed afterwards; errors are logged
// and returned, never retried.
func (d *Driver) Run(ctx context.Context) (err error) {
	ui.Banner("Starting Automated Booking Simulation")
	defer func() {
		if err != nil {
			log.WithError(err).Error("error during simulation")
		}
		if ctx.Err() == nil {
			_ = d.pause(ctx, lingerAfter) // leave the result on screen briefly
		}
		if qerr := d.wd.Quit(); qerr != nil {
			log.WithError(qerr).Warn("quit browser")
		}
	}()

	if err := d.wd.Get(d.cfg.URL); err != nil {
		return fmt.Errorf("open %s: %w", d.cfg.URL, err)
	}
	if err := d.pause(ctx, chatWarmup); err != nil {
		return err
	}

	fmt.Fprintln(ui.Out, "Watching chat conversation...")
	if _, err := d.waitPresent(ctx, d.cfg.Selectors.Modal); err != nil {
		return fmt.Errorf("booking modal: %w", err)
	}
	ui.OK("Booking modal detected!")

	if err := d.book(ctx); err != nil {
		return err
	}

	if err := d.pause(ctx, planeWait); err != nil {
		return err
	}
	ui.Banner("Simulation Complete")
	return nil
}

func (d *Driver) book(ctx context.Context) error {
	fmt.Fprintln(ui.Out, "\nStarting booking process...")

	ui.Step(1, "Selecting date and time")
	if err := d.selectDateAndTime(ctx); err != nil {
		return err
	}
	if err := d.pause(ctx, stepPause); err != nil {
		return err
	}
	next, err := d.waitClickable(ctx, d.cfg.Selectors.NextButton)
	if err != nil {
		return fmt.Errorf("next button: %w", err)
	}
	if err := next.Click(); err != nil {
		return fmt.Errorf("click next: %w", err)
	}
	if err := d.pause(ctx, stepPause); err != nil {
		return err
	}

	ui.Step(2, "Filling contact information")
	if err := d.fillContactForm(ctx); err != nil {
		return err
	}
	if err := d.pause(ctx, stepPause); err != nil {
		return err
	}
	// The form's own next button is the last one in the modal.
	buttons, err := d.wd.FindElements(selenium.ByCSSSelector, d.cfg.Selectors.NextButton)
	if err != nil {
		return fmt.Errorf("find next buttons: %w", err)
	}
	if len(buttons) == 0 {
		return errors.New("no next button on contact step")
	}
	if err := buttons[len(buttons)-1].Click(); err != nil {
		return fmt.Errorf("click next: %w", err)
	}
	if err := d.pause(ctx, stepPause); err != nil {
		return err
	}

	ui.Step(3, "Confirming booking")
	confirm, err := d.waitClickable(ctx, d.cfg.Selectors.ConfirmBtn)
	if err != nil {
		return fmt.Errorf("confirm button: %w", err)
	}
	if err := d.pause(ctx, stepPause); err != nil {
		return err
	}
	if err := confirm.Click(); err != nil {
		return fmt.Errorf("click confirm: %w", err)
	}
	ui.OK("Booking confirmed!")
	return nil
}

// selectDateAndTime only reads the modal's pre-selection; the widget picks
// next Tuesday at 10:00 by itself.
func (d *Driver) selectDateAndTime(ctx context.Context) error {
	if _, err := d.waitPresent(ctx, d.cfg.Selectors.Calendar); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	day, err := d.waitPresent(ctx, d.cfg.Selectors.SelectedDay)
	if err != nil {
		return fmt.Errorf("selected day: %w", err)
	}
	dayText, _ := day.Text()
	ui.Field("Selected date", strings.TrimSpace(dayText))

	slots, err := d.wd.FindElements(selenium.ByCSSSelector, d.cfg.Selectors.TimeSlot)
	if err != nil {
		return fmt.Errorf("find time slots: %w", err)
	}
	for _, s := range slots {
		class, _ := s.GetAttribute("class")
		if hasClass(class, "selected") {
			text, _ := s.Text()
			ui.Field("Selected time", strings.TrimSpace(text))
			return nil
		}
	}
	return errors.New("no pre-selected time slot")
}

// hasClass is a substring match on the class attribute, so "is-selected"
// counts as selected too.
func hasClass(attr, name string) bool {
	return name != "" && strings.Contains(attr, name)
}

type formField struct {
	selector string
	value    string
}

func (d *Driver) formFields() []formField {
	s := d.cfg.Selectors
	byPlaceholder := func(ph string) string { return fmt.Sprintf("input[placeholder=%q]", ph) }
	return []formField{
		{byPlaceholder(s.NamePH), d.contact.Name},
		{byPlaceholder(s.CompanyPH), d.contact.Company},
		{byPlaceholder(s.EmailPH), d.contact.Email},
		{byPlaceholder(s.PhonePH), d.contact.Phone},
		{s.MessageField, d.contact.Message},
	}
}

func (d *Driver) fillContactForm(ctx context.Context) error {
	for _, f := range d.formFields() {
		el, err := d.wd.FindElement(selenium.ByCSSSelector, f.selector)
		if err != nil {
			return fmt.Errorf("find %s: %w", f.selector, err)
		}
		if err := d.typeSlowly(ctx, el, f.value); err != nil {
			return fmt.Errorf("type into %s: %w", f.selector, err)
		}
		log.WithField("field", f.selector).Debug("filled")
	}
	return nil
}

// typeSlowly sends one key at a time with a random human-ish gap.
func (d *Driver) typeSlowly(ctx context.Context, el selenium.WebElement, text string) error {
	for _, r := range text {
		if err := el.SendKeys(string(r)); err != nil {
			return err
		}
		gap := keyMinDelay + time.Duration(d.rnd.Int63n(int64(keyMaxDelay-keyMinDelay)))
		if err := d.pause(ctx, gap); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) waitFor(ctx context.Context, selector string, ready func(selenium.WebElement) bool) (selenium.WebElement, error) {
	var found selenium.WebElement
	cond := func(wd selenium.WebDriver) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		el, err := wd.FindElement(selenium.ByCSSSelector, selector)
		if err != nil {
			return false, nil
		}
		if ready != nil && !ready(el) {
			return false, nil
		}
		found = el
		return true, nil
	}
	if err := d.wd.WaitWithTimeout(cond, d.cfg.Timeout); err != nil {
		return nil, fmt.Errorf("wait for %s: %w", selector, err)
	}
	return found, nil
}

func (d *Driver) waitPresent(ctx context.Context, selector string) (selenium.WebElement, error) {
	return d.waitFor(ctx, selector, nil)
}

func (d *Driver) waitClickable(ctx context.Context, selector string) (selenium.WebElement, error) {
	return d.waitFor(ctx, selector, func(el selenium.WebElement) bool {
		shown, err := el.IsDisplayed()
		if err != nil || !shown {
			return false
		}
		enabled, err := el.IsEnabled()
		return err == nil && enabled
	})
}
