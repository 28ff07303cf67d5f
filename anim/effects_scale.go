package anim

import (
	"math"

	"github.com/figlight/figlight/grid"
)

// Scale effects thin or thicken the visible band of rows and columns
// around the grid center; the rectangle itself never changes size.

func scaleUp(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return band(g, t, colors, t, 1)
}

func scaleDown(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return band(g, t, colors, 1-t, 1)
}

// pulse breathes: a small periodic thinning that returns to full size
// at both endpoints.
func pulse(g *grid.Grid, t float64, colors ColorFn) *Frame {
	visible := 1 - 0.12*math.Abs(sinWave(t, 1))
	return band(g, t, colors, visible, 1)
}

// heartbeat plays the double-beat pattern twice per run: two quick
// contractions of different depth, then rest.
func heartbeat(g *grid.Grid, t float64, colors ColorFn) *Frame {
	beat := frac(t * 2)
	var depth float64
	switch {
	case beat < 0.3:
		depth = 0.15 * (beat / 0.3)
	case beat < 0.4:
		depth = 0.15 * (1 - (beat-0.3)/0.1)
	case beat < 0.6:
		depth = 0.1 * ((beat - 0.4) / 0.2)
	case beat < 0.7:
		depth = 0.1 * (1 - (beat-0.6)/0.1)
	default:
		depth = 0
	}
	return band(g, t, colors, 1-depth, 1)
}

// shadowPop snaps outward then settles, a pop read as a quick thinning
// bounce around the midpoint.
func shadowPop(g *grid.Grid, t float64, colors ColorFn) *Frame {
	var depth float64
	if t < 0.5 {
		depth = 0.3 * (t * 2)
	} else {
		depth = 0.3 * (1 - (t-0.5)*2)
	}
	return band(g, t, colors, 1-depth, 1)
}

// jello wobbles with decaying amplitude and settles at full size.
func jello(g *grid.Grid, t float64, colors ColorFn) *Frame {
	wobble := math.Abs(sinWave(t, 2)) * (1 - t)
	return band(g, t, colors, 1-0.2*wobble, 1)
}

// puff effects pair the scale band with a fade.

func puffIn(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return band(g, t, colors, 0.1+0.9*t, t)
}

func puffOut(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return band(g, t, colors, 1-0.9*t, 1-t)
}

// focusIn sharpens: mostly visible from the start, opacity catching up
// fast.
func focusIn(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return band(g, t, colors, 0.7+0.3*t, math.Sqrt(clamp01(t)))
}

func blurOut(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return band(g, t, colors, 1-0.3*t, math.Sqrt(clamp01(1-t)))
}
