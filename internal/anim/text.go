package anim

import (
	"time"
	"unicode"
)

// Typewriter reveals text one rune at a time. Word boundaries get an extra
// pause so the typing reads naturally.
type Typewriter struct {
	runes     []rune
	shown     int
	CharDelay time.Duration
	WordDelay time.Duration
}

func NewTypewriter(text string, charDelay, wordDelay time.Duration) *Typewriter {
	return &Typewriter{runes: []rune(text), CharDelay: charDelay, WordDelay: wordDelay}
}

// Step reveals the next rune and returns how long to wait before the next
// step. done is true once the whole text is visible.
func (tw *Typewriter) Step() (delay time.Duration, done bool) {
	if tw.shown >= len(tw.runes) {
		return 0, true
	}
	tw.shown++
	if tw.shown == len(tw.runes) {
		return 0, true
	}
	if unicode.IsSpace(tw.runes[tw.shown-1]) {
		return tw.WordDelay, false
	}
	return tw.CharDelay, false
}

func (tw *Typewriter) Visible() string { return string(tw.runes[:tw.shown]) }
func (tw *Typewriter) Done() bool      { return tw.shown >= len(tw.runes) }

// Finish reveals everything at once.
func (tw *Typewriter) Finish() { tw.shown = len(tw.runes) }

// FadeStep is the opacity change per fade frame.
const FadeStep = 0.1

// FadeIn advances alpha one frame toward 1.
func FadeIn(alpha float64) (float64, bool) {
	alpha += FadeStep
	if alpha >= 1-1e-9 {
		return 1, true
	}
	return alpha, false
}

// FadeOut advances alpha one frame toward 0.
func FadeOut(alpha float64) (float64, bool) {
	alpha -= FadeStep
	if alpha <= 1e-9 {
		return 0, true
	}
	return alpha, false
}

// MessageOpacity is how visible the index-th newest chat message is. The
// newest is fully opaque, each older one loses 0.15, anything past max is 0.2.
func MessageOpacity(index, max int) float64 {
	if index >= max {
		return 0.2
	}
	o := 1 - float64(index)*0.15
	if o < 0.2 {
		return 0.2
	}
	return o
}

// Grey blends text colour toward the background as alpha drops:
// 0x33 at alpha 1, 0xff at alpha 0.
func Grey(alpha float64) uint8 {
	alpha = clamp01(alpha)
	return uint8(51 + 204*(1-alpha))
}
