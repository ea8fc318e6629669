// Package anim is the frame math behind the chat demo: easing curves,
// typewriter pacing, fades and the paper-plane flight.
package anim

import "math"

// Easing maps progress in [0,1] to an eased value.
type Easing func(p float64) float64

func clamp01(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func Linear(p float64) float64 { return clamp01(p) }

func EaseInOutQuad(p float64) float64 {
	p = clamp01(p)
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - math.Pow(-2*p+2, 2)/2
}

func EaseOutCubic(p float64) float64 {
	p = clamp01(p)
	return 1 - math.Pow(1-p, 3)
}

// EaseOutBack overshoots slightly before settling; the final logo grows with it.
func EaseOutBack(p float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	p = clamp01(p)
	return 1 + c3*math.Pow(p-1, 3) + c1*math.Pow(p-1, 2)
}

// Lerp interpolates a→b by eased progress.
func Lerp(a, b, p float64, e Easing) float64 {
	if e == nil {
		e = Linear
	}
	return a + (b-a)*e(p)
}
