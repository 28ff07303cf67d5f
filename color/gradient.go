package color

// Stop pins a color to a normalized gradient position.
type Stop struct {
	Color Color
	Pos   float64
}

// Gradient is a direction plus ordered color stops. Stops are kept in
// the order listed by the user; At brackets by position value, so an
// out-of-order list still resolves correctly. The angle is parsed and
// normalized for validation but does not alter sampling: effects map
// position onto the grid themselves.
type Gradient struct {
	stops []Stop
	angle float64 // degrees, normalized to [0,360)
}

// NewGradient builds a gradient from an angle in degrees and at least
// two stops. ParseGradient enforces the stop count for user input.
func NewGradient(angle float64, stops []Stop) *Gradient {
	angle = normalizeAngle(angle)
	return &Gradient{stops: stops, angle: angle}
}

func normalizeAngle(angle float64) float64 {
	for angle < 0 {
		angle += 360
	}
	for angle >= 360 {
		angle -= 360
	}
	return angle
}

func (g *Gradient) Angle() float64 {
	return g.angle
}

func (g *Gradient) Stops() []Stop {
	return g.stops
}

// At locates the pair of stops bracketing pos by value and linearly
// interpolates channels and alpha between them. Positions outside the
// stop range clamp to the nearest stop's color.
func (g *Gradient) At(pos float64) Color {
	if pos < 0 {
		pos = 0
	} else if pos > 1 {
		pos = 1
	}

	var lo, hi *Stop
	for i := range g.stops {
		s := &g.stops[i]
		if s.Pos <= pos && (lo == nil || s.Pos > lo.Pos) {
			lo = s
		}
		if s.Pos >= pos && (hi == nil || s.Pos < hi.Pos) {
			hi = s
		}
	}

	switch {
	case lo == nil && hi == nil:
		return White
	case lo == nil:
		return hi.Color
	case hi == nil:
		return lo.Color
	case hi.Pos == lo.Pos:
		return lo.Color
	}

	w := (pos - lo.Pos) / (hi.Pos - lo.Pos)
	return lo.Color.Lerp(hi.Color, w)
}
