// Package layout places mindmap elements on the hero canvas.
//
// Placement is a pure function of an element's index in the fetched sequence
// and its animation speed: identical input order always yields the identical
// picture. Positions repeat on a 4x3 grid of base slots.
package layout

import (
	"math"

	"github.com/louisbranch/mindmap.space/internal/mindmap/element"
)

const (
	columns = 4
	rows    = 3

	columnStepPercent = 25
	columnBasePercent = 10
	rowStepPercent    = 30
	rowBasePercent    = 20

	evenSizePx = 120
	oddSizePx  = 180

	// DefaultCycleSeconds is used when no positive animation speed is given.
	DefaultCycleSeconds = element.DefaultAnimationSpeedSeconds

	// OrbitSeconds is the fixed period of the dashed ring around each sphere.
	OrbitSeconds = 20
	// EntranceSeconds is how long a sphere takes to fade and scale in.
	EntranceSeconds = 1

	driftXFactor  = 1.2
	rotateFactor  = 1.5
	driftYPeakPx  = -40
	driftXPeakPx  = 20
	rotateSwayDeg = 10
)

// Drift describes one looping keyframe track of a floating sphere.
type Drift struct {
	// Values are the keyframe values, evenly spaced across the period.
	Values          []float64
	DurationSeconds float64
}

// Params is the placement and timing of one element.
type Params struct {
	HorizontalPercent    int
	VerticalPercent      int
	SizePx               int
	CycleDurationSeconds float64

	DriftY Drift
	DriftX Drift
	Rotate Drift
}

// Placement pairs an element with its derived layout.
type Placement struct {
	Element element.Element
	Params  Params
}

// Place derives the layout for the element at index. total is the length of
// the sequence the element belongs to; positions wrap regardless of it.
func Place(index, total int, speedSeconds float64) Params {
	if index < 0 {
		index = 0
	}
	cycle := CycleSeconds(speedSeconds)
	size := evenSizePx
	if index%2 != 0 {
		size = oddSizePx
	}
	return Params{
		HorizontalPercent:    (index%columns)*columnStepPercent + columnBasePercent,
		VerticalPercent:      (index%rows)*rowStepPercent + rowBasePercent,
		SizePx:               size,
		CycleDurationSeconds: cycle,
		DriftY: Drift{
			Values:          []float64{0, driftYPeakPx, 0},
			DurationSeconds: cycle,
		},
		DriftX: Drift{
			Values:          []float64{0, driftXPeakPx, 0},
			DurationSeconds: cycle * driftXFactor,
		},
		Rotate: Drift{
			Values:          []float64{0, rotateSwayDeg, -rotateSwayDeg, 0},
			DurationSeconds: cycle * rotateFactor,
		},
	}
}

// CycleSeconds resolves the drift cycle for an optional animation speed.
func CycleSeconds(speedSeconds float64) float64 {
	// NaN fails the comparison and falls through to the default.
	if speedSeconds > 0 && !math.IsInf(speedSeconds, 1) {
		return speedSeconds
	}
	return DefaultCycleSeconds
}

// PlaceAll lays out every element of seq in order.
func PlaceAll(seq element.Sequence) []Placement {
	total := seq.Len()
	placements := make([]Placement, 0, total)
	for i := 0; i < total; i++ {
		el := seq.At(i)
		placements = append(placements, Placement{
			Element: el,
			Params:  Place(el.Index, total, el.AnimationSpeedSeconds),
		})
	}
	return placements
}
