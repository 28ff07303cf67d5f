package anim

import (
	"github.com/figlight/figlight/color"
	"github.com/figlight/figlight/grid"
)

// Color-driven effects keep glyph placement identical to the source
// grid; only the position fed to the color function moves.

// colorCycle sweeps the whole art through the color source as progress
// advances.
func colorCycle(g *grid.Grid, t float64, colors ColorFn) *Frame {
	return solid(g, t, colors)
}

// rainbow spreads the color source across columns and scrolls it with
// progress, a spatial gradient marching through the art.
func rainbow(g *grid.Grid, t float64, colors ColorFn) *Frame {
	w := float64(g.Width())
	return paint(g, func(x, y, glyph int) color.Color {
		return colors(frac(float64(x)/w + t))
	})
}

// gradientFlow distributes the source over the glyph sequence and
// rotates the sample position by progress, so the banding follows the
// drawing order rather than the column axis.
func gradientFlow(g *grid.Grid, t float64, colors ColorFn) *Frame {
	total := g.GlyphCount()
	if total == 0 {
		return NewFrame(g.Width(), g.Height())
	}
	n := float64(total)
	return paint(g, func(x, y, glyph int) color.Color {
		return colors(frac(float64(glyph)/n + t))
	})
}
