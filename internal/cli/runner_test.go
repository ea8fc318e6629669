package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"

	"github.com/idilsaglam/bookdemo/internal/config"
	"github.com/idilsaglam/bookdemo/internal/model"
	"github.com/idilsaglam/bookdemo/internal/store/jsonstore"
	"github.com/idilsaglam/bookdemo/internal/tui"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

// capture points the ui writers at buffers for the test's duration.
func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := ui.Out, ui.Err
	ui.Out, ui.Err = out, errOut
	t.Cleanup(func() { ui.Out, ui.Err = prevOut, prevErr })
	return out, errOut
}

// dataFile points the store at a temp file through the environment.
func dataFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "bookings.json")
	t.Setenv("BOOKDEMO_DATA_FILE", p)
	return p
}

var fast = Options{Pace: 0, NoColor: true}

func TestRunUsage(t *testing.T) {
	out, errOut := capture(t)

	assert.Equal(t, 2, Run(nil, fast))
	assert.Contains(t, out.String(), "Subcommands:")

	assert.Equal(t, 0, Run([]string{"help"}, fast))

	assert.Equal(t, 2, Run([]string{"frobnicate"}, fast))
	assert.Contains(t, errOut.String(), "unknown subcommand: frobnicate")
}

func TestSimulateAppends(t *testing.T) {
	path := dataFile(t)
	out, _ := capture(t)

	require.Equal(t, 0, Run([]string{"simulate", "-n", "2"}, fast))
	assert.Contains(t, out.String(), "Booking confirmed!")
	assert.Contains(t, out.String(), "2 booking(s) recorded")

	require.Equal(t, 0, Run([]string{"simulate"}, fast))

	st, err := jsonstore.New(path)
	require.NoError(t, err)
	records, err := st.Load()
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.NotEmpty(t, r.ID)
		assert.True(t, model.ValidEmail(r.Email))
	}
}

func TestSimulateBadArgs(t *testing.T) {
	dataFile(t)
	capture(t)
	assert.Equal(t, 2, Run([]string{"simulate", "-n", "0"}, fast))
	assert.Equal(t, 2, Run([]string{"simulate", "-x"}, fast))
}

func TestSimulateCorruptFile(t *testing.T) {
	path := dataFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, errOut := capture(t)

	assert.Equal(t, 1, Run([]string{"simulate"}, fast))
	assert.Contains(t, errOut.String(), "simulate:")
}

func TestBadConfig(t *testing.T) {
	_, errOut := capture(t)
	opt := fast
	opt.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	assert.Equal(t, 1, Run([]string{"ls", "--plain"}, opt))
	assert.Contains(t, errOut.String(), "config:")
}

func seed(t *testing.T, path string, recs ...model.Booking) {
	t.Helper()
	st, err := jsonstore.New(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(recs))
}

var seeded = []model.Booking{
	{Date: "2024-05-14", Time: "10:00", Name: "Erik Andersson", Company: "TechSoft AB", Email: "erik@techsoft.se"},
	{Date: "2024-05-21", Time: "09:00", Name: "Maria Nilsson", Company: "Digital Solutions", Email: "maria@digitalsolutions.se"},
	{Date: "2024-05-14", Time: "13:00", Name: "Anna Karlsson", Company: "Svenska IT AB", Email: "anna@svenskait.se"},
}

func TestListPlain(t *testing.T) {
	seed(t, dataFile(t), seeded...)
	out, _ := capture(t)

	require.Equal(t, 0, Run([]string{"ls", "--plain"}, fast))
	s := out.String()
	assert.Contains(t, s, "Bookings")
	assert.Contains(t, s, "2024-05-14 10:00")
	assert.Contains(t, s, "Maria Nilsson (Digital Solutions)")
}

func TestListGrouped(t *testing.T) {
	seed(t, dataFile(t), seeded...)
	out, _ := capture(t)

	require.Equal(t, 0, Run([]string{"ls", "--plain", "--group"}, fast))
	s := out.String()
	assert.Contains(t, s, "Tuesday, 14 May 2024")
	assert.Contains(t, s, "Tuesday, 21 May 2024")
	assert.Contains(t, s, " 33%", "two of six slots taken on the 14th")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("14 May")), bytes.Index(out.Bytes(), []byte("21 May")))
}

func TestFlatLinesTruncatesByRune(t *testing.T) {
	ui.SetColorForcing(false, true)

	long := model.Booking{
		Date:    "2024-05-14",
		Time:    "10:00",
		Name:    strings.Repeat("Åsa Öberg ", 6),
		Company: "Företagsgruppen Väst AB",
		Email:   "asa@foretagsgruppen.se",
	}
	lines := flatLines([]model.Booking{long})
	require.Len(t, lines, 1)
	assert.True(t, utf8.ValidString(lines[0]))
	assert.True(t, strings.HasSuffix(lines[0], "..."))

	who := lines[0][strings.Index(lines[0], "10:00")+len("10:00 "):]
	assert.Equal(t, 80, utf8.RuneCountInString(who))
}

func TestListEmpty(t *testing.T) {
	dataFile(t)
	out, _ := capture(t)
	require.Equal(t, 0, Run([]string{"ls"}, fast))
	assert.Contains(t, out.String(), "no bookings")
}

func TestListInteractive(t *testing.T) {
	seed(t, dataFile(t), seeded...)
	capture(t)

	var got []model.Booking
	prev := runBookings
	runBookings = func(r []model.Booking) error { got = r; return nil }
	t.Cleanup(func() { runBookings = prev })

	require.Equal(t, 0, Run([]string{"ls"}, fast))
	assert.Len(t, got, 3)
}

func TestChatPassesConfig(t *testing.T) {
	out, _ := capture(t)
	t.Setenv("BOOKDEMO_CHAT_FETCH_LOGO", "false")

	var got tui.Options
	prev := runChat
	runChat = func(o tui.Options) (tui.Model, error) { got = o; return tui.New(o), nil }
	t.Cleanup(func() { runChat = prev })

	require.Equal(t, 0, Run([]string{"chat", "--once"}, fast))
	assert.True(t, got.Once)
	assert.Equal(t, 0.0, got.Pace)
	assert.Equal(t, 4, got.MaxVisible)
	assert.Empty(t, got.LogoURL)
	assert.Contains(t, out.String(), "chat finished")

	runChat = func(tui.Options) (tui.Model, error) { return tui.Model{}, errors.New("no tty") }
	assert.Equal(t, 1, Run([]string{"chat"}, fast))
}

func TestBrowseConnectError(t *testing.T) {
	_, errOut := capture(t)

	var got config.BrowserConfig
	prev := connect
	connect = func(bc config.BrowserConfig) (selenium.WebDriver, error) {
		got = bc
		return nil, errors.New("connection refused")
	}
	t.Cleanup(func() { connect = prev })

	assert.Equal(t, 1, Run([]string{"browse", "--url", "http://localhost:8080", "--headless"}, fast))
	assert.Equal(t, "http://localhost:8080", got.URL)
	assert.True(t, got.Headless)
	assert.Contains(t, errOut.String(), "connection refused")
}
