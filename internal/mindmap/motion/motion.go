// Package motion maps scroll progress onto visual transforms.
//
// Every mapping is a set of piecewise-linear tracks: the output moves between
// two endpoints while progress crosses an input window and holds the nearest
// endpoint outside it.
package motion

import (
	"math"
	"strconv"
	"strings"
)

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Track maps progress in [InStart, InEnd] linearly onto [From, To].
type Track struct {
	From    float64
	To      float64
	InStart float64
	InEnd   float64
}

// At returns the track value at progress p. The result never leaves the
// segment between From and To.
func (t Track) At(p float64) float64 {
	if t.InEnd <= t.InStart {
		if p >= t.InEnd {
			return t.To
		}
		return t.From
	}
	return Lerp(t.From, t.To, Clamp((p-t.InStart)/(t.InEnd-t.InStart), 0, 1))
}

// Transform is the visual state of an element at one progress value.
type Transform struct {
	Opacity      float64
	Scale        float64
	TranslateYPx float64
}

// Identity is the resting transform of an element with no motion applied.
var Identity = Transform{Opacity: 1, Scale: 1}

// Style renders t as inline CSS declarations.
func (t Transform) Style() string {
	var b strings.Builder
	b.WriteString("opacity:")
	b.WriteString(formatNumber(Clamp(t.Opacity, 0, 1)))
	b.WriteString(";transform:")
	b.WriteString(t.transformValue())
	return b.String()
}

func (t Transform) transformValue() string {
	return "translateY(" + formatNumber(t.TranslateYPx) + "px) scale(" + formatNumber(t.Scale) + ")"
}

// Preset is a named group of tracks driven by one progress value.
type Preset struct {
	Name       string
	Opacity    Track
	Scale      Track
	TranslateY Track
}

// At evaluates every track of the preset at p.
func (p Preset) At(progress float64) Transform {
	return Transform{
		Opacity:      Clamp(p.Opacity.At(progress), 0, 1),
		Scale:        p.Scale.At(progress),
		TranslateYPx: p.TranslateY.At(progress),
	}
}

// controlPoints returns the input window edges of every track.
func (p Preset) controlPoints() []float64 {
	return []float64{
		p.Opacity.InStart, p.Opacity.InEnd,
		p.Scale.InStart, p.Scale.InEnd,
		p.TranslateY.InStart, p.TranslateY.InEnd,
	}
}

var (
	// HeroDissolvePreset fades, shrinks and lowers the hero copy over the
	// first fifth of the page scroll.
	HeroDissolvePreset = Preset{
		Name:       "mm-hero-dissolve",
		Opacity:    Track{From: 1, To: 0, InStart: 0, InEnd: 0.2},
		Scale:      Track{From: 1, To: 0.95, InStart: 0, InEnd: 0.2},
		TranslateY: Track{From: 0, To: 100, InStart: 0, InEnd: 0.2},
	}
	// StickyCardRevealPreset brightens and grows a card as it approaches the
	// viewport center.
	StickyCardRevealPreset = Preset{
		Name:       "mm-card-reveal",
		Opacity:    Track{From: 0.5, To: 1, InStart: 0, InEnd: 0.5},
		Scale:      Track{From: 0.9, To: 1, InStart: 0, InEnd: 0.5},
		TranslateY: Track{From: 0, To: 0, InStart: 0, InEnd: 0.5},
	}
)

// HeroDissolve returns the hero transform at page progress p.
func HeroDissolve(p float64) Transform {
	return HeroDissolvePreset.At(p)
}

// StickyCardReveal returns a sticky card transform at card progress p.
func StickyCardReveal(p float64) Transform {
	return StickyCardRevealPreset.At(p)
}

func formatNumber(value float64) string {
	rounded := math.Round(value*10000) / 10000
	if rounded == 0 {
		// Covers negative zero.
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
