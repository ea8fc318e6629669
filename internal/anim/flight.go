package anim

import (
	"fmt"
	"math"
	"math/rand"
)

// Flight is the paper plane's path: a steady horizontal drift with two
// stacked sine waves on top.
//
//	x += Speed
//	t += Freq
//	y  = BaseY + sin(t)*Amp + sin(2t)*Amp/4
type Flight struct {
	X, Y   float64
	T      float64
	BaseY  float64
	EndX   float64
	Speed  float64
	Freq   float64
	Amp    float64
	Spread float64 // particle jitter at full trail size

	angle    float64
	lastWave float64
	started  bool
}

// PixelFlight uses the desktop animation's numbers for a w×h pixel window.
func PixelFlight(w, h int) *Flight {
	return &Flight{X: 100, BaseY: float64(h / 2), EndX: float64(w + 100), Speed: 6, Freq: 0.01, Amp: 100, Spread: 10}
}

// CellFlight is the same path scaled to a terminal grid of w×h cells. A cell
// is roughly 6 pixels wide and 12 tall, so the wave is stretched to match.
func CellFlight(w, h int) *Flight {
	amp := float64(h) / 4
	if amp < 1 {
		amp = 1
	}
	return &Flight{X: 2, BaseY: float64(h) / 2, EndX: float64(w + 16), Speed: 1, Freq: 0.06, Amp: amp, Spread: 1.5}
}

func (f *Flight) wave(t float64) float64 {
	return math.Sin(t)*f.Amp + math.Sin(t*2)*(f.Amp/4)
}

// Advance moves one frame. It returns false once the plane has left the screen.
func (f *Flight) Advance() bool {
	if f.X >= f.EndX {
		return false
	}
	f.X += f.Speed
	f.T += f.Freq
	w := f.wave(f.T)
	f.Y = f.BaseY + w
	if f.started {
		f.angle = math.Atan2(math.Sin(f.T)*f.Amp-f.lastWave, f.Speed) * 180 / math.Pi
	}
	f.lastWave = math.Sin(f.T) * f.Amp
	f.started = true
	return true
}

func (f *Flight) Done() bool { return f.X >= f.EndX }

// Angle is the heading in degrees; positive means descending on screen.
func (f *Flight) Angle() float64 { return f.angle }

// TrailLength is how many points follow the plane.
const TrailLength = 25

// Particle is one dot of the trail. Size runs from 1 (next to the plane) to
// near 0 (tail end).
type Particle struct {
	X, Y  float64
	Size  float64
	Color string // #rrggbb
	Main  bool   // on the path itself, not jitter
}

// TrailColor is the blue gradient that darkens toward the tail.
func TrailColor(size float64) string {
	size = clamp01(size)
	return fmt.Sprintf("#%02x%02x%02x", 0, int(102*size), int(204*size))
}

// Trail returns the trail behind the plane's current position. Every third
// point sheds two jitter particles. rnd may be nil for no jitter.
func (f *Flight) Trail(rnd *rand.Rand) []Particle {
	out := make([]Particle, 0, TrailLength+2*((TrailLength+2)/3))
	for i := 0; i < TrailLength; i++ {
		x := f.X - float64(i)*f.Speed
		y := f.BaseY + f.wave(f.T-float64(i)*f.Freq)
		size := float64(TrailLength-i) / TrailLength
		color := TrailColor(size)
		out = append(out, Particle{X: x, Y: y, Size: size, Color: color, Main: true})

		if i%3 != 0 || rnd == nil {
			continue
		}
		spread := f.Spread * size
		for k := 0; k < 2; k++ {
			px := x + (rnd.Float64()*2-1)*spread
			py := y + (rnd.Float64()*2-1)*spread
			out = append(out, Particle{X: px, Y: py, Size: size * 2 / 10, Color: color})
		}
	}
	return out
}
