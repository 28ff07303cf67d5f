package anim

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/figlight/figlight/color"
	"github.com/figlight/figlight/grid"
)

// ErrUnknownEffect is returned at configuration time for names outside
// the registry.
var ErrUnknownEffect = errors.New("unknown effect")

// ColorFn resolves a normalized position to a color. The scheduler
// builds it from the configured palette or gradient.
type ColorFn func(pos float64) color.Color

// Effect turns (grid, eased progress, color function) into a styled
// frame. Effects are pure: deterministic for a given input, no grid
// mutation, and the output frame always matches the grid's dimensions.
type Effect func(g *grid.Grid, t float64, colors ColorFn) *Frame

// effects is the closed registry. Identifiers are resolved once at
// setup; an unknown name never survives to render time.
var effects = map[string]Effect{
	"fade-in":     fadeIn,
	"fade-out":    fadeOut,
	"fade-in-out": fadeInOut,

	"slide-in-top":     slideInTop,
	"slide-in-bottom":  slideInBottom,
	"slide-in-left":    slideInLeft,
	"slide-in-right":   slideInRight,
	"slide-out-top":    slideOutTop,
	"slide-out-bottom": slideOutBottom,
	"slide-out-left":   slideOutLeft,
	"slide-out-right":  slideOutRight,

	"scale-up":   scaleUp,
	"scale-down": scaleDown,
	"pulse":      pulse,
	"heartbeat":  heartbeat,
	"shadow-pop": shadowPop,
	"jello":      jello,

	"bounce-in":     bounceInEffect,
	"bounce-out":    bounceOutEffect,
	"bounce-top":    bounceTop,
	"bounce-bottom": bounceBottom,

	"typewriter":         typewriter,
	"typewriter-reverse": typewriterReverse,

	"wave":          wave,
	"shake":         shake,
	"wobble":        wobble,
	"vibrate":       vibrate,
	"swing":         swing,
	"sway":          sway,
	"rotate-in":     rotateIn,
	"rotate-out":    rotateOut,
	"rotate-center": rotateCenter,
	"roll-in":       rollIn,
	"roll-out":      rollOut,
	"tilt-in":       tiltIn,

	"slide-rotate-hor": slideRotateHor,
	"slide-rotate-ver": slideRotateVer,

	"flip-horizontal": flipHorizontal,
	"flip-vertical":   flipVertical,
	"tracking-in":     trackingIn,
	"tracking-out":    trackingOut,

	"puff-in":     puffIn,
	"puff-out":    puffOut,
	"focus-in":    focusIn,
	"blur-out":    blurOut,
	"shadow-drop": shadowDrop,
	"flicker":     flicker,
	"blink":       blink,

	"color-cycle":   colorCycle,
	"rainbow":       rainbow,
	"gradient-flow": gradientFlow,
}

// EffectByName resolves a registry name.
func EffectByName(name string) (Effect, error) {
	fx, ok := effects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return fx, nil
}

// EffectNames returns the sorted registry for listing surfaces.
func EffectNames() []string {
	names := make([]string, 0, len(effects))
	for name := range effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ----- shared frame builders -----

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// frac wraps v into [0,1).
func frac(v float64) float64 {
	v = v - math.Floor(v)
	if v < 0 {
		v += 1
	}
	return v
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == 0
}

// paint fills a frame by asking cellColor for every non-blank grid
// cell. glyph is the row-major index among non-blank cells, the basis
// for spatially varying color effects.
func paint(g *grid.Grid, cellColor func(x, y, glyph int) color.Color) *Frame {
	f := NewFrame(g.Width(), g.Height())
	glyph := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r := g.Rune(x, y)
			if isBlank(r) {
				continue
			}
			f.Set(x, y, r, cellColor(x, y, glyph))
			glyph++
		}
	}
	return f
}

// solid renders the whole grid in colors(t) — the default coloring rule
// for motion effects.
func solid(g *grid.Grid, t float64, colors ColorFn) *Frame {
	c := colors(t)
	return paint(g, func(int, int, int) color.Color { return c })
}

// shift renders the grid displaced by (dx,dy) inside its own rectangle.
// Cells pushed past the edges are gone; vacated cells stay blank.
func shift(g *grid.Grid, t float64, colors ColorFn, dx, dy int, alpha float64) *Frame {
	f := NewFrame(g.Width(), g.Height())
	c := colors(t).WithAlpha(alpha)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r := g.Rune(x-dx, y-dy)
			if isBlank(r) {
				continue
			}
			f.Set(x, y, r, c)
		}
	}
	return f
}

// band reveals the centered fraction of rows and columns given by
// visible (0 = nothing, 1 = full grid). Scale effects thin the grid
// through it rather than resizing the rectangle.
func band(g *grid.Grid, t float64, colors ColorFn, visible float64, alpha float64) *Frame {
	visible = clamp01(visible)
	f := NewFrame(g.Width(), g.Height())
	if visible == 0 {
		return f
	}
	c := colors(t).WithAlpha(alpha)

	cx := float64(g.Width()-1) / 2
	cy := float64(g.Height()-1) / 2
	halfW := visible * float64(g.Width()) / 2
	halfH := visible * float64(g.Height()) / 2

	for y := 0; y < g.Height(); y++ {
		if math.Abs(float64(y)-cy) > halfH {
			continue
		}
		for x := 0; x < g.Width(); x++ {
			if math.Abs(float64(x)-cx) > halfW {
				continue
			}
			r := g.Rune(x, y)
			if isBlank(r) {
				continue
			}
			f.Set(x, y, r, c)
		}
	}
	return f
}

// columnShift renders each column displaced vertically by dy(x).
func columnShift(g *grid.Grid, t float64, colors ColorFn, dy func(x int) int) *Frame {
	f := NewFrame(g.Width(), g.Height())
	c := colors(t)
	for x := 0; x < g.Width(); x++ {
		d := dy(x)
		for y := 0; y < g.Height(); y++ {
			r := g.Rune(x, y-d)
			if isBlank(r) {
				continue
			}
			f.Set(x, y, r, c)
		}
	}
	return f
}

// rowShift renders each row displaced horizontally by dx(y).
func rowShift(g *grid.Grid, t float64, colors ColorFn, dx func(y int) int) *Frame {
	f := NewFrame(g.Width(), g.Height())
	c := colors(t)
	for y := 0; y < g.Height(); y++ {
		d := dx(y)
		for x := 0; x < g.Width(); x++ {
			r := g.Rune(x-d, y)
			if isBlank(r) {
				continue
			}
			f.Set(x, y, r, c)
		}
	}
	return f
}
