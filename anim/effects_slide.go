package anim

import "github.com/figlight/figlight/grid"

// Slide-in effects start fully off-rectangle and settle at rest; the
// offset is (1-t) times the travel extent along the named axis.

func slideInTop(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dy := -int((1 - t) * float64(g.Height()))
	return shift(g, t, colors, 0, dy, 1)
}

func slideInBottom(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dy := int((1 - t) * float64(g.Height()))
	return shift(g, t, colors, 0, dy, 1)
}

func slideInLeft(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dx := -int((1 - t) * float64(g.Width()))
	return shift(g, t, colors, dx, 0, 1)
}

func slideInRight(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dx := int((1 - t) * float64(g.Width()))
	return shift(g, t, colors, dx, 0, 1)
}

// Slide-out effects run the travel in reverse: at rest at t=0, fully
// departed at t=1.

func slideOutTop(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dy := -int(t * float64(g.Height()))
	return shift(g, t, colors, 0, dy, 1)
}

func slideOutBottom(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dy := int(t * float64(g.Height()))
	return shift(g, t, colors, 0, dy, 1)
}

func slideOutLeft(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dx := -int(t * float64(g.Width()))
	return shift(g, t, colors, dx, 0, 1)
}

func slideOutRight(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dx := int(t * float64(g.Width()))
	return shift(g, t, colors, dx, 0, 1)
}

// slide-rotate variants add a small perpendicular wobble while the
// content travels in.

func slideRotateHor(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dx := -int((1 - t) * float64(g.Width()))
	dy := int((1 - t) * 2 * sinWave(1-t, 0.5))
	return shift(g, t, colors, dx, dy, 1)
}

func slideRotateVer(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dy := -int((1 - t) * float64(g.Height()))
	dx := int((1 - t) * 4 * cosWave(1-t, 0.5))
	return shift(g, t, colors, dx, dy, 1)
}
