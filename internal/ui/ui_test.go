package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	SetColorForcing(false, true)
	var out, errb bytes.Buffer
	oldOut, oldErr := Out, Err
	Out, Err = &out, &errb
	t.Cleanup(func() { Out, Err = oldOut, oldErr })
	return &out, &errb
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "██████████ 100%", ProgressBar(5, 3, 10))
}

func TestOKAndFail(t *testing.T) {
	SetTheme("classic")
	out, errb := capture(t)

	OK("Booking confirmed!")
	Fail("save: disk full")

	assert.Equal(t, "✓ Booking confirmed!\n", out.String())
	assert.Equal(t, "✖ save: disk full\n", errb.String())
}

func TestPanelString(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })
	capture(t)

	s := PanelString([]string{"Date: Tuesday", "Time: 10:00"})
	lines := strings.Split(s, "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "+"))
	assert.Contains(t, lines[1], "Date: Tuesday")
}

func TestThemes(t *testing.T) {
	for _, name := range []string{"classic", "neon", "mono", "unknown"} {
		SetTheme(name)
		th := Current()
		assert.NotEmpty(t, th.SymDone, name)
		assert.NotEmpty(t, th.Dot, name)
	}
	SetTheme("classic")
	assert.Equal(t, "✓", Current().SymDone)
}

func TestFieldAndStep(t *testing.T) {
	SetTheme("classic")
	out, _ := capture(t)
	Step(2, "Entering Personal Information")
	Field("Name", "Erik Andersson")
	assert.Equal(t, "Step 2: Entering Personal Information\nName: Erik Andersson\n", out.String())
}
