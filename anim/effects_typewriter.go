package anim

import (
	"math"

	"github.com/figlight/figlight/grid"
)

// typewriterFrame reveals the first n glyphs in row-major order.
func typewriterFrame(g *grid.Grid, t float64, colors ColorFn, revealed int) *Frame {
	f := NewFrame(g.Width(), g.Height())
	c := colors(t)
	for i, glyph := range g.Glyphs() {
		if i >= revealed {
			break
		}
		f.Set(glyph.X, glyph.Y, glyph.R, c)
	}
	return f
}

// typewriter reveals floor(t * glyphCount) glyphs; zero at t=0, all at
// t=1, monotonically non-decreasing in between. On a loop boundary the
// count naturally resets with progress.
func typewriter(g *grid.Grid, t float64, colors ColorFn) *Frame {
	total := g.GlyphCount()
	revealed := int(math.Floor(clamp01(t) * float64(total)))
	return typewriterFrame(g, t, colors, revealed)
}

// typewriterReverse hides glyphs in reverse: everything at t=0, nothing
// at t=1.
func typewriterReverse(g *grid.Grid, t float64, colors ColorFn) *Frame {
	total := g.GlyphCount()
	revealed := int(math.Floor(clamp01(1-t) * float64(total)))
	return typewriterFrame(g, t, colors, revealed)
}

// flip effects collapse one axis to the center line, then re-expand the
// mirror image.

func flipHorizontal(g *grid.Grid, t float64, colors ColorFn) *Frame {
	if t < 0.5 {
		return bandCols(g, t, colors, 1-2*t, false)
	}
	return bandCols(g, t, colors, 2*t-1, true)
}

func flipVertical(g *grid.Grid, t float64, colors ColorFn) *Frame {
	if t < 0.5 {
		return bandRows(g, t, colors, 1-2*t, false)
	}
	return bandRows(g, t, colors, 2*t-1, true)
}

// bandCols reveals the centered column fraction, optionally mirrored
// left-right.
func bandCols(g *grid.Grid, t float64, colors ColorFn, visible float64, mirror bool) *Frame {
	visible = clamp01(visible)
	f := NewFrame(g.Width(), g.Height())
	c := colors(t)

	cx := float64(g.Width()-1) / 2
	half := visible * float64(g.Width()) / 2
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if math.Abs(float64(x)-cx) > half {
				continue
			}
			src := x
			if mirror {
				src = g.Width() - 1 - x
			}
			r := g.Rune(src, y)
			if isBlank(r) {
				continue
			}
			f.Set(x, y, r, c)
		}
	}
	return f
}

// bandRows reveals the centered row fraction, optionally mirrored
// top-bottom.
func bandRows(g *grid.Grid, t float64, colors ColorFn, visible float64, mirror bool) *Frame {
	visible = clamp01(visible)
	f := NewFrame(g.Width(), g.Height())
	c := colors(t)

	cy := float64(g.Height()-1) / 2
	half := visible * float64(g.Height()) / 2
	for y := 0; y < g.Height(); y++ {
		if math.Abs(float64(y)-cy) > half {
			continue
		}
		src := y
		if mirror {
			src = g.Height() - 1 - y
		}
		for x := 0; x < g.Width(); x++ {
			r := g.Rune(x, src)
			if isBlank(r) {
				continue
			}
			f.Set(x, y, r, c)
		}
	}
	return f
}

// tracking effects spread columns away from the center and let them
// settle back (tracking-in) or drift apart (tracking-out).

func trackingIn(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return spreadCols(g, t, colors, (1-t)*0.8)
}

func trackingOut(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return spreadCols(g, t, colors, t*0.8)
}

// spreadCols displaces each column away from the center by spread times
// its distance; displaced cells that collide or exit are dropped.
func spreadCols(g *grid.Grid, t float64, colors ColorFn, spread float64) *Frame {
	f := NewFrame(g.Width(), g.Height())
	c := colors(t)
	cx := float64(g.Width()-1) / 2

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r := g.Rune(x, y)
			if isBlank(r) {
				continue
			}
			dst := x + int(math.Round((float64(x)-cx)*spread))
			f.Set(dst, y, r, c)
		}
	}
	return f
}
