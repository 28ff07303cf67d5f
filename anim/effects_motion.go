package anim

import (
	"math"

	"github.com/figlight/figlight/grid"
)

// sinWave evaluates sin over the run: t in [0,1], cycles full periods.
func sinWave(t, cycles float64) float64 {
	return math.Sin(2 * math.Pi * cycles * t)
}

func cosWave(t, cycles float64) float64 {
	return math.Cos(2 * math.Pi * cycles * t)
}

// amplitude caps per-axis travel so small grids still read as motion
// without flinging the art out of its rectangle.
func amplitude(extent int, fraction float64, limit int) float64 {
	a := float64(extent) * fraction
	if a > float64(limit) {
		a = float64(limit)
	}
	if a < 1 {
		a = 1
	}
	return a
}

// wave ripples columns vertically; phase advances with progress and
// trails across the column index.
func wave(g *grid.Grid, t float64, colors ColorFn) *Frame {
	amp := amplitude(g.Height(), 0.25, 3)
	return columnShift(g, t, colors, func(x int) int {
		return int(math.Round(math.Sin(2*math.Pi*t+float64(x)*0.5) * amp))
	})
}

// shake vibrates horizontally with decaying amplitude.
func shake(g *grid.Grid, t float64, colors ColorFn) *Frame {
	amp := amplitude(g.Width(), 0.2, 10) * (1 - t)
	dx := int(math.Round(sinWave(t, 20) * amp))
	return shift(g, t, colors, dx, 0, 1)
}

// wobble swings on both axes with decaying amplitude.
func wobble(g *grid.Grid, t float64, colors ColorFn) *Frame {
	decay := 1 - t
	ampX := amplitude(g.Width(), 0.3, 15) * decay
	ampY := ampX * 0.3
	dx := int(math.Round(sinWave(t, 2) * ampX))
	dy := int(math.Round(cosWave(t, 2) * ampY))
	return shift(g, t, colors, dx, dy, 1)
}

// vibrate is constant-amplitude high-frequency jitter.
func vibrate(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dx := int(math.Round(sinWave(t, 25) * 2))
	dy := int(math.Round(cosWave(t, 32.5) * 1))
	return shift(g, t, colors, dx, dy, 1)
}

// swing is a pendulum: two full swings damped to rest.
func swing(g *grid.Grid, t float64, colors ColorFn) *Frame {
	angle := sinWave(t, 2) * (1 - t)
	ampX := amplitude(g.Width(), 0.4, 20)
	dx := int(math.Round(angle * ampX))
	dy := -int(math.Round(math.Abs(angle) * ampX * 0.25))
	return shift(g, t, colors, dx, dy, 1)
}

// sway drifts gently side to side, one full period per run.
func sway(g *grid.Grid, t float64, colors ColorFn) *Frame {
	angle := sinWave(t, 1)
	dx := int(math.Round(angle * amplitude(g.Width(), 0.15, 8)))
	dy := int(math.Round(math.Abs(angle) * 2))
	return shift(g, t, colors, dx, dy, 1)
}

// rotate-in combines a growing scale band with a cosine-driven
// horizontal settle.
func rotateIn(g *grid.Grid, t float64, colors ColorFn) *Frame {
	angle := (1 - t) * math.Pi
	dx := int(math.Round(math.Cos(angle) * 10 * (1 - t)))
	f := band(g, t, colors, t, 1)
	if dx == 0 {
		return f
	}
	return shiftFrame(f, dx, 0)
}

func rotateOut(g *grid.Grid, t float64, colors ColorFn) *Frame {
	angle := t * math.Pi
	dx := int(math.Round(math.Cos(angle) * 10 * t))
	f := band(g, t, colors, 1-t, 1)
	if dx == 0 {
		return f
	}
	return shiftFrame(f, dx, 0)
}

// rotateCenter shears rows in opposite directions around the middle
// row, one full turn per run.
func rotateCenter(g *grid.Grid, t float64, colors ColorFn) *Frame {
	h := g.Height()
	maxOffset := amplitude(g.Width(), 0.15, 5)
	turn := sinWave(t, 1)
	return rowShift(g, t, colors, func(y int) int {
		factor := 0.0
		if h > 1 {
			factor = float64(y)/float64(h-1) - 0.5
		}
		return int(math.Round(turn * factor * 2 * maxOffset))
	})
}

// roll effects travel horizontally with a light vertical roll.

func rollIn(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dx := -int((1 - t) * float64(g.Width()))
	dy := int(math.Round((1 - t) * 2 * math.Sin(t*math.Pi)))
	return shift(g, t, colors, dx, dy, 1)
}

func rollOut(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dx := int(t * float64(g.Width()))
	dy := int(math.Round(t * 2 * math.Sin(t*math.Pi)))
	return shift(g, t, colors, dx, dy, 1)
}

// tiltIn leans in from above while growing to full size.
func tiltIn(g *grid.Grid, t float64, colors ColorFn) *Frame {
	lean := 1 - t
	dx := int(math.Round(lean * 6 * math.Sin(lean*math.Pi)))
	dy := -int(math.Round(lean * 3))
	f := band(g, t, colors, 0.5+0.5*t, 1)
	if dx == 0 && dy == 0 {
		return f
	}
	return shiftFrame(f, dx, dy)
}

// bounce-in drops from above and lands with one rebound.
func bounceInEffect(g *grid.Grid, t float64, colors ColorFn) *Frame {
	h := float64(g.Height())
	var dy int
	if t < 0.8 {
		dy = -int((1 - t/0.8) * h)
	} else {
		bp := (t - 0.8) / 0.2
		dy = int(math.Round(bp * (1 - bp) * amplitude(g.Height(), 0.4, 3)))
	}
	return shift(g, t, colors, 0, dy, 1)
}

// bounce-out lifts slightly, then falls out of the rectangle.
func bounceOutEffect(g *grid.Grid, t float64, colors ColorFn) *Frame {
	h := float64(g.Height())
	var dy int
	if t < 0.2 {
		dy = -int(math.Round((t / 0.2) * (1 - t/0.2) * amplitude(g.Height(), 0.4, 3)))
	} else {
		dy = int(((t - 0.2) / 0.8) * h)
	}
	return shift(g, t, colors, 0, dy, 1)
}

// bounceTop descends from the top edge with decaying rebounds.
func bounceTop(g *grid.Grid, t float64, colors ColorFn) *Frame {
	base := (1 - t) * float64(g.Height())
	rebound := math.Abs(sinWave(t, 1)) * (1 - t) * amplitude(g.Height(), 0.3, 3)
	return shift(g, t, colors, 0, -int(math.Round(base+rebound)), 1)
}

func bounceBottom(g *grid.Grid, t float64, colors ColorFn) *Frame {
	base := (1 - t) * float64(g.Height())
	rebound := math.Abs(sinWave(t, 1)) * (1 - t) * amplitude(g.Height(), 0.3, 3)
	return shift(g, t, colors, 0, int(math.Round(base+rebound)), 1)
}

// shadowDrop settles from slightly above while gaining opacity.
func shadowDrop(g *grid.Grid, t float64, colors ColorFn) *Frame {
	dy := -int(math.Round((1 - t) * amplitude(g.Height(), 0.5, 6)))
	return shift(g, t, colors, 0, dy, 0.3+0.7*t)
}

// shiftFrame displaces an already-built frame inside its rectangle.
func shiftFrame(f *Frame, dx, dy int) *Frame {
	out := NewFrame(f.Width(), f.Height())
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			cell := f.At(x-dx, y-dy)
			if isBlank(cell.Rune) {
				continue
			}
			out.Set(x, y, cell.Rune, cell.Color)
		}
	}
	return out
}
