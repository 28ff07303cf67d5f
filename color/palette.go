package color

// Source resolves a normalized position in [0,1] to a color. Both
// Palette and Gradient implement it; effects only ever see this
// interface. At never fails: out-of-range positions clamp.
type Source interface {
	At(pos float64) Color
}

// Palette is a non-empty ordered color sequence resolved by position.
type Palette struct {
	colors []Color
	cycle  bool
}

// NewPalette builds a palette. The caller guarantees at least one color;
// ParsePalette enforces that for user input.
func NewPalette(colors ...Color) *Palette {
	return &Palette{colors: colors}
}

// Cycled returns a copy that wraps around instead of clamping, for
// effects that sample beyond [0,1].
func (p *Palette) Cycled() *Palette {
	return &Palette{colors: p.colors, cycle: true}
}

func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns the backing slice. Treated as read-only by callers.
func (p *Palette) Colors() []Color {
	return p.colors
}

// At selects index floor(pos*(len-1)), clamped at both ends. In cycle
// mode the index wraps by modulo instead.
func (p *Palette) At(pos float64) Color {
	n := len(p.colors)
	if n == 1 {
		return p.colors[0]
	}

	if p.cycle {
		idx := int(pos * float64(n))
		idx %= n
		if idx < 0 {
			idx += n
		}
		return p.colors[idx]
	}

	if pos <= 0 {
		return p.colors[0]
	}
	if pos >= 1 {
		return p.colors[n-1]
	}
	return p.colors[int(pos*float64(n-1))]
}
