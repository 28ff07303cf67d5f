// Package anim contains the animation pipeline: easing functions, the
// timeline/progress model, the effect library, and the frame scheduler
// that drives them. Everything between Timeline.Tick and the frame
// writer is pure: no I/O, no blocking, finite output for every input.
package anim

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownEasing is returned at configuration time for names outside
// the catalog. Lookup never happens mid-render.
var ErrUnknownEasing = errors.New("unknown easing")

// EasingFunc maps normalized time to normalized progress. Every variant
// returns exactly 0 at t=0 and exactly 1 at t=1; overshoot families may
// leave [0,1] strictly between the endpoints but never produce NaN or
// infinities anywhere on [0,1].
type EasingFunc func(t float64) float64

// Overshoot constant shared by the back family, fixed for determinism.
const backOvershoot = 1.70158

func linear(t float64) float64 { return t }

func quadIn(t float64) float64  { return t * t }
func quadOut(t float64) float64 { return t * (2 - t) }
func quadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func cubicIn(t float64) float64 { return t * t * t }
func cubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}
func cubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

func backIn(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}
func backOut(t float64) float64 {
	u := t - 1
	return u*u*((backOvershoot+1)*u+backOvershoot) + 1
}
func backInOut(t float64) float64 {
	s := backOvershoot * 1.525
	u := 2 * t
	if u < 1 {
		return 0.5 * u * u * ((s+1)*u - s)
	}
	u -= 2
	return 0.5 * (u*u*((s+1)*u+s) + 2)
}

func elasticIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	const p = 0.3
	return -math.Pow(2, 10*(t-1)) * math.Sin((t-1-p/4)*2*math.Pi/p)
}
func elasticOut(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	const p = 0.3
	return math.Pow(2, -10*t)*math.Sin((t-p/4)*2*math.Pi/p) + 1
}
func elasticInOut(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	const p = 0.45
	u := 2*t - 1
	if u < 0 {
		return -0.5 * math.Pow(2, 10*u) * math.Sin((u-p/4)*2*math.Pi/p)
	}
	return math.Pow(2, -10*u)*math.Sin((u-p/4)*2*math.Pi/p)*0.5 + 1
}

func bounceOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	const n = 7.5625
	switch {
	case t < 1/2.75:
		return n * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return n*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return n*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return n*t*t + 0.984375
	}
}
func bounceIn(t float64) float64 {
	return 1 - bounceOut(1-t)
}
func bounceInOut(t float64) float64 {
	if t < 0.5 {
		return bounceIn(2*t) * 0.5
	}
	return bounceOut(2*t-1)*0.5 + 0.5
}

// The bare ease-in/out names alias the cubic family, matching common
// CSS shorthand expectations.
var easings = map[string]EasingFunc{
	"linear":              linear,
	"ease-in":             cubicIn,
	"ease-out":            cubicOut,
	"ease-in-out":         cubicInOut,
	"ease-in-quad":        quadIn,
	"ease-out-quad":       quadOut,
	"ease-in-out-quad":    quadInOut,
	"ease-in-cubic":       cubicIn,
	"ease-out-cubic":      cubicOut,
	"ease-in-out-cubic":   cubicInOut,
	"ease-in-back":        backIn,
	"ease-out-back":       backOut,
	"ease-in-out-back":    backInOut,
	"ease-in-elastic":     elasticIn,
	"ease-out-elastic":    elasticOut,
	"ease-in-out-elastic": elasticInOut,
	"ease-in-bounce":      bounceIn,
	"ease-out-bounce":     bounceOut,
	"ease-in-out-bounce":  bounceInOut,
}

// Easing resolves a catalog name.
func Easing(name string) (EasingFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// EasingNames returns the sorted catalog for listing surfaces.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
