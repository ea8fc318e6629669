package anim

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	for name, e := range map[string]Easing{
		"linear":    Linear,
		"inOutQuad": EaseInOutQuad,
		"outCubic":  EaseOutCubic,
		"outBack":   EaseOutBack,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, e(0), 1e-9)
			assert.InDelta(t, 1, e(1), 1e-9)
			assert.InDelta(t, 0, e(-3), 1e-9)
			assert.InDelta(t, 1, e(7), 1e-9)
		})
	}
	assert.InDelta(t, 0.5, EaseInOutQuad(0.5), 1e-9)
	assert.Greater(t, EaseOutBack(0.8), 1.0)
	assert.InDelta(t, 15, Lerp(10, 20, 0.5, nil), 1e-9)
}

func TestTypewriter(t *testing.T) {
	tw := NewTypewriter("Hej då", 40*time.Millisecond, 80*time.Millisecond)

	var delays []time.Duration
	for {
		d, done := tw.Step()
		if done {
			break
		}
		delays = append(delays, d)
	}
	assert.Equal(t, "Hej då", tw.Visible())
	assert.True(t, tw.Done())
	// H e j ␠ d → five delays before the final rune; the space is followed by a word pause.
	require.Len(t, delays, 5)
	assert.Equal(t, 80*time.Millisecond, delays[3])
	assert.Equal(t, 40*time.Millisecond, delays[4])
}

func TestTypewriterMultibyte(t *testing.T) {
	tw := NewTypewriter("åä👋", time.Millisecond, time.Millisecond)
	tw.Step()
	assert.Equal(t, "å", tw.Visible())
	tw.Finish()
	assert.Equal(t, "åä👋", tw.Visible())
	_, done := tw.Step()
	assert.True(t, done)
}

func TestFades(t *testing.T) {
	a, steps := 0.0, 0
	for done := false; !done; steps++ {
		a, done = FadeIn(a)
	}
	assert.Equal(t, 10, steps)
	assert.Equal(t, 1.0, a)

	steps = 0
	for done := false; !done; steps++ {
		a, done = FadeOut(a)
	}
	assert.Equal(t, 10, steps)
	assert.Equal(t, 0.0, a)
}

func TestMessageOpacity(t *testing.T) {
	assert.Equal(t, 1.0, MessageOpacity(0, 4))
	assert.InDelta(t, 0.55, MessageOpacity(3, 4), 1e-9)
	assert.Equal(t, 0.2, MessageOpacity(4, 4))
	assert.Equal(t, 0.2, MessageOpacity(9, 20))
	assert.Equal(t, uint8(51), Grey(1))
	assert.Equal(t, uint8(255), Grey(0))
}

func TestPixelFlightPath(t *testing.T) {
	f := PixelFlight(800, 600)
	require.True(t, f.Advance())
	assert.Equal(t, 106.0, f.X)
	want := 300 + math.Sin(0.01)*100 + math.Sin(0.02)*25
	assert.InDelta(t, want, f.Y, 1e-9)
	assert.Zero(t, f.Angle())

	require.True(t, f.Advance())
	assert.Greater(t, f.Angle(), 0.0)

	frames := 2
	for f.Advance() {
		frames++
	}
	assert.True(t, f.Done())
	assert.GreaterOrEqual(t, f.X, 900.0)
	assert.Equal(t, 134, frames) // (900-100)/6 rounded up
}

func TestTrail(t *testing.T) {
	f := CellFlight(80, 24)
	for i := 0; i < 30; i++ {
		f.Advance()
	}

	plain := f.Trail(nil)
	require.Len(t, plain, TrailLength)
	assert.Equal(t, f.X, plain[0].X)
	assert.InDelta(t, f.Y, plain[0].Y, 1e-9)
	assert.Equal(t, 1.0, plain[0].Size)
	assert.Equal(t, "#0066cc", plain[0].Color)
	assert.Equal(t, "#000408", plain[TrailLength-1].Color)

	withJitter := f.Trail(rand.New(rand.NewSource(1)))
	assert.Len(t, withJitter, TrailLength+2*9) // i = 0,3,...,24
	for _, p := range withJitter {
		if p.Main {
			continue
		}
		assert.LessOrEqual(t, math.Abs(p.X-f.X), float64(TrailLength)*f.Speed+f.Spread)
	}
}

func TestTrailColor(t *testing.T) {
	assert.Equal(t, "#0066cc", TrailColor(1))
	assert.Equal(t, "#000000", TrailColor(0))
	assert.Equal(t, "#003366", TrailColor(0.5))
}
