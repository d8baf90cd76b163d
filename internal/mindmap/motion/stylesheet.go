package motion

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/louisbranch/mindmap.space/internal/mindmap/layout"
	"github.com/louisbranch/mindmap.space/internal/mindmap/scroll"
)

// Class names shared between the stylesheet and the page templates.
const (
	ClassHeroContent = "mm-hero-content"
	ClassStickyCard  = "mm-sticky-card"
	ClassSphere      = "mm-sphere"
	ClassDriftY      = "mm-drift-y"
	ClassDriftX      = "mm-drift-x"
	ClassSway        = "mm-sway"
	ClassOrbit       = "mm-orbit"
	ClassRise        = "mm-rise"
	ClassFadeIn      = "mm-fade-in"
)

// Custom properties set inline on each sphere with its own periods.
const (
	VarDriftYDuration = "--mm-drift-y-duration"
	VarDriftXDuration = "--mm-drift-x-duration"
	VarSwayDuration   = "--mm-sway-duration"
)

// Keyframes renders a CSS @keyframes block named name that samples preset at
// the given progress stops. Every track control point inside [0,1] is always
// sampled, so the linear interpolation between keyframes reproduces the
// preset exactly.
func Keyframes(name string, preset Preset, stops []float64) string {
	points := append([]float64{0, 1}, preset.controlPoints()...)
	points = append(points, stops...)
	samples := make([]float64, 0, len(points))
	for _, point := range points {
		if math.IsNaN(point) || point < 0 || point > 1 {
			continue
		}
		samples = append(samples, point)
	}
	slices.Sort(samples)
	samples = slices.Compact(samples)

	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", name)
	for _, sample := range samples {
		t := preset.At(sample)
		fmt.Fprintf(&b, "  %s%% { opacity: %s; transform: %s; }\n",
			formatNumber(sample*100), formatNumber(t.Opacity), t.transformValue())
	}
	b.WriteString("}\n")
	return b.String()
}

// driftKeyframes renders evenly spaced keyframes of one looping drift track.
func driftKeyframes(name string, values []float64, render func(float64) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", name)
	if len(values) == 1 {
		fmt.Fprintf(&b, "  0%%, 100%% { transform: %s; }\n", render(values[0]))
	}
	if len(values) > 1 {
		for i, value := range values {
			at := float64(i) / float64(len(values)-1) * 100
			fmt.Fprintf(&b, "  %s%% { transform: %s; }\n", formatNumber(at), render(value))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// Stylesheet renders the motion rules for the home page: scroll-linked
// presets bound to CSS scroll timelines, and the sphere loops whose keyframe
// values come from the layout drift tracks.
func Stylesheet() string {
	var b strings.Builder

	// Periods are per sphere; the template sets them through custom properties.
	reference := layout.Place(0, 1, layout.DefaultCycleSeconds)
	b.WriteString(driftKeyframes("mm-drift-y", reference.DriftY.Values, func(v float64) string {
		return "translateY(" + formatNumber(v) + "px)"
	}))
	b.WriteString(driftKeyframes("mm-drift-x", reference.DriftX.Values, func(v float64) string {
		return "translateX(" + formatNumber(v) + "px)"
	}))
	b.WriteString(driftKeyframes("mm-sway", reference.Rotate.Values, func(v float64) string {
		return "rotate(" + formatNumber(v) + "deg)"
	}))
	b.WriteString("@keyframes mm-orbit {\n  from { transform: rotate(0deg); }\n  to { transform: rotate(360deg); }\n}\n")
	b.WriteString("@keyframes mm-sphere-enter {\n  from { opacity: 0; transform: scale(0); }\n  to { opacity: 1; transform: scale(1); }\n}\n")
	b.WriteString("@keyframes mm-rise {\n  from { opacity: 0; transform: translateY(50px); }\n  to { opacity: 1; transform: translateY(0); }\n}\n")
	b.WriteString("@keyframes mm-fade {\n  from { opacity: 0; }\n  to { opacity: 1; }\n}\n")

	fmt.Fprintf(&b, ".%s { animation: mm-sphere-enter %ss ease-out both; }\n", ClassSphere, formatNumber(layout.EntranceSeconds))
	fmt.Fprintf(&b, ".%s { animation: mm-drift-y var(%s, %ss) ease-in-out infinite; }\n",
		ClassDriftY, VarDriftYDuration, formatNumber(reference.DriftY.DurationSeconds))
	fmt.Fprintf(&b, ".%s { animation: mm-drift-x var(%s, %ss) ease-in-out infinite; }\n",
		ClassDriftX, VarDriftXDuration, formatNumber(reference.DriftX.DurationSeconds))
	fmt.Fprintf(&b, ".%s { animation: mm-sway var(%s, %ss) linear infinite; }\n",
		ClassSway, VarSwayDuration, formatNumber(reference.Rotate.DurationSeconds))
	fmt.Fprintf(&b, ".%s { animation: mm-orbit %ss linear infinite; }\n", ClassOrbit, formatNumber(layout.OrbitSeconds))
	fmt.Fprintf(&b, ".%s { animation: mm-rise 1s cubic-bezier(0.22, 1, 0.36, 1) both; }\n", ClassRise)
	fmt.Fprintf(&b, ".%s { animation: mm-fade 1s ease-out both; }\n", ClassFadeIn)

	// Without scroll timelines the inline resting frame on each element applies.
	b.WriteString("@supports (animation-timeline: scroll()) {\n")
	b.WriteString(indent(scrollLinked(ClassHeroContent, HeroDissolvePreset, scroll.PageSpan, true)))
	b.WriteString(indent(scrollLinked(ClassStickyCard, StickyCardRevealPreset, scroll.EnterToCenter, false)))
	b.WriteString("}\n")

	b.WriteString("@media (prefers-reduced-motion: reduce) {\n")
	fmt.Fprintf(&b, "  .%s, .%s, .%s, .%s, .%s, .%s, .%s { animation: none; }\n",
		ClassSphere, ClassDriftY, ClassDriftX, ClassSway, ClassOrbit, ClassRise, ClassFadeIn)
	b.WriteString("}\n")
	return b.String()
}

// scrollLinked renders the keyframes of preset plus the rule binding class to
// the CSS timeline equivalent of r.
func scrollLinked(class string, preset Preset, r scroll.Range, root bool) string {
	timeline, animationRange, ok := r.Timeline(root)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(Keyframes(preset.Name, preset, nil))
	fmt.Fprintf(&b, ".%s {\n  animation: %s linear both;\n  animation-timeline: %s;\n  animation-range: %s;\n}\n",
		class, preset.Name, timeline, animationRange)
	return b.String()
}

func indent(block string) string {
	if block == "" {
		return ""
	}
	lines := strings.SplitAfter(block, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" || line == "\n" {
			b.WriteString(line)
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
	}
	return b.String()
}
