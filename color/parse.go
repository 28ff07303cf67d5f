package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a single color token: a #rgb, #rrggbb or #rrggbbaa
// hex literal, or a CSS named color. Case-insensitive.
func ParseColor(token string) (Color, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Color{}, fmt.Errorf("%w: empty token", ErrInvalidColor)
	}

	if strings.HasPrefix(token, "#") {
		return parseHex(token)
	}

	if c, ok := Named(token); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

// parseHex handles the 3, 6 and 8 digit hex forms. The rgb part goes
// through colorful for validation; the alpha pair is split off first
// since colorful only understands opaque colors.
func parseHex(token string) (Color, error) {
	digits := token[1:]
	alpha := 1.0

	switch len(digits) {
	case 3:
		// Expand #rgb to #rrggbb
		token = fmt.Sprintf("#%c%c%c%c%c%c",
			digits[0], digits[0], digits[1], digits[1], digits[2], digits[2])
	case 6:
		// Already canonical
	case 8:
		a, err := strconv.ParseUint(digits[6:8], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
		}
		alpha = float64(a) / 255.0
		token = "#" + digits[:6]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}

	c, err := colorful.Hex(token)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// ParsePalette parses a comma-separated list of color tokens. Empty
// tokens are skipped; zero usable tokens is ErrEmptyPalette.
func ParsePalette(s string) (*Palette, error) {
	var colors []Color
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		c, err := ParseColor(token)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPalette, s)
	}
	return NewPalette(colors...), nil
}
