// Package scroll computes normalized scroll progress for tracked page regions.
//
// A region is a target box plus a Range made of two offsets. Each offset pairs
// an edge of the target with an edge of the viewport; progress is 0 at the
// scroll position where the From edges meet, 1 where the To edges meet, linear
// in between and clamped outside. Regions that cannot be measured report 0.
package scroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Edge is a position along an axis as a fraction of the box length.
type Edge float64

const (
	Start  Edge = 0
	Center Edge = 0.5
	End    Edge = 1
)

// ParseEdge parses "start", "center", "end" or a number in [0,1].
func ParseEdge(raw string) (Edge, error) {
	switch value := strings.ToLower(strings.TrimSpace(raw)); value {
	case "start":
		return Start, nil
	case "center":
		return Center, nil
	case "end":
		return End, nil
	default:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || f < 0 || f > 1 {
			return 0, fmt.Errorf("invalid scroll edge %q", raw)
		}
		return Edge(f), nil
	}
}

// Offset pairs an edge of the tracked target with an edge of the viewport.
type Offset struct {
	Target    Edge
	Container Edge
}

// ParseOffset parses an offset such as "start end" (target start meets
// viewport end).
func ParseOffset(raw string) (Offset, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Offset{}, fmt.Errorf("invalid scroll offset %q", raw)
	}
	target, err := ParseEdge(fields[0])
	if err != nil {
		return Offset{}, err
	}
	container, err := ParseEdge(fields[1])
	if err != nil {
		return Offset{}, err
	}
	return Offset{Target: target, Container: container}, nil
}

// Range spans a region traversal from one offset to another.
type Range struct {
	From Offset
	To   Offset
}

var (
	// PageSpan runs from the target's start at the viewport start to the
	// target's end at the viewport end.
	PageSpan = Range{From: Offset{Target: Start, Container: Start}, To: Offset{Target: End, Container: End}}
	// EnterToCenter runs from the target entering at the bottom of the
	// viewport until its center reaches the viewport center.
	EnterToCenter = Range{From: Offset{Target: Start, Container: End}, To: Offset{Target: Center, Container: Center}}
)

// ParseRange parses a pair of offsets.
func ParseRange(from, to string) (Range, error) {
	fromOffset, err := ParseOffset(from)
	if err != nil {
		return Range{}, err
	}
	toOffset, err := ParseOffset(to)
	if err != nil {
		return Range{}, err
	}
	return Range{From: fromOffset, To: toOffset}, nil
}

// Geometry is the measured extent of a target along the scroll axis, in
// document coordinates.
type Geometry struct {
	Top    float64
	Height float64
}

// Viewport is the current scroll position and visible length.
type Viewport struct {
	ScrollY float64
	Height  float64
}

// Progress returns the clamped progress of r for the given measurements.
// Unusable measurements or a range that does not advance with downward scroll
// yield 0.
func Progress(r Range, g Geometry, v Viewport) float64 {
	if !finite(g.Top, g.Height, v.ScrollY, v.Height) || g.Height <= 0 || v.Height <= 0 {
		return 0
	}
	start := scrollAt(r.From, g, v)
	end := scrollAt(r.To, g, v)
	if end <= start {
		return 0
	}
	p := (v.ScrollY - start) / (end - start)
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	default:
		return p
	}
}

// scrollAt is the scroll position where the offset's two edges coincide.
func scrollAt(o Offset, g Geometry, v Viewport) float64 {
	return g.Top + float64(o.Target)*g.Height - float64(o.Container)*v.Height
}

func finite(values ...float64) bool {
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}

// Timeline renders the CSS scroll-driven animation declarations equivalent to
// r. root selects a document scroll timeline, used when the target spans the
// whole page; otherwise a view timeline of the animated element is used. ok is
// false when the range has no geometry-independent CSS equivalent.
func (r Range) Timeline(root bool) (timeline string, animationRange string, ok bool) {
	if root {
		if r != PageSpan {
			return "", "", false
		}
		return "scroll(root block)", "normal", true
	}
	from, ok := coverPercent(r.From)
	if !ok {
		return "", "", false
	}
	to, ok := coverPercent(r.To)
	if !ok || to <= from {
		return "", "", false
	}
	return "view(block)", fmt.Sprintf("cover %s%% cover %s%%", formatPercent(from), formatPercent(to)), true
}

// coverPercent maps offsets whose edges sum to one onto the CSS cover range,
// where such offsets sit at a fixed percentage regardless of box sizes.
func coverPercent(o Offset) (float64, bool) {
	if math.Abs(float64(o.Target+o.Container)-1) > 1e-9 {
		return 0, false
	}
	return float64(o.Target) * 100, true
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
