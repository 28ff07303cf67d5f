package anim

import (
	"math"

	"github.com/figlight/figlight/color"
	"github.com/figlight/figlight/grid"
)

// fadeRamp orders glyph densities from invisible to solid. Fades swap
// every glyph for the ramp rune matching the current opacity, so the
// art dissolves instead of popping.
var fadeRamp = []rune{' ', '.', '·', '-', '~', '=', '+', '*', '#', '@'}

// fadeFrame renders the grid at the given opacity: ramp rune below full
// opacity, original glyphs at 1.
func fadeFrame(g *grid.Grid, t float64, colors ColorFn, opacity float64) *Frame {
	opacity = clamp01(opacity)
	c := colors(t).WithAlpha(opacity)

	if opacity >= 1 {
		return paint(g, func(int, int, int) color.Color { return c })
	}
	if opacity <= 0 {
		return NewFrame(g.Width(), g.Height())
	}

	ramp := fadeRamp[int(opacity*float64(len(fadeRamp)-1))]
	f := NewFrame(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if isBlank(g.Rune(x, y)) {
				continue
			}
			f.Set(x, y, ramp, c)
		}
	}
	return f
}

func fadeIn(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return fadeFrame(g, t, colors, t)
}

func fadeOut(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return fadeFrame(g, t, colors, 1-t)
}

// fadeInOut ramps opacity up to the midpoint and back down, a
// triangular curve peaking at t=0.5.
func fadeInOut(g *grid.Grid, t float64, colors ColorFn) *Frame {
	opacity := 2 * t
	if t >= 0.5 {
		opacity = 2 * (1 - t)
	}
	return fadeFrame(g, t, colors, opacity)
}

// flicker stabilizes over time: fast opacity oscillation damped by
// progress.
func flicker(g *grid.Grid, t float64, colors ColorFn) *Frame {
	osc := (math.Sin(t*30) + 1) / 2
	opacity := t + (1-t)*osc
	return fadeFrame(g, t, colors, opacity)
}

// blink toggles visibility six times over the run.
func blink(g *grid.Grid, t float64, colors ColorFn) *Frame {
	if int(math.Floor(t*6))%2 != 0 {
		return NewFrame(g.Width(), g.Height())
	}
	return solid(g, t, colors)
}
