package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Named directions map to CSS angle conventions: 0deg points up and
// angles grow clockwise, so "to right" is 90deg.
var namedDirections = map[string]float64{
	"to top":          0,
	"to top right":    45,
	"to right top":    45,
	"to right":        90,
	"to bottom right": 135,
	"to right bottom": 135,
	"to bottom":       180,
	"to bottom left":  225,
	"to left bottom":  225,
	"to left":         270,
	"to top left":     315,
	"to left top":     315,
}

const defaultAngle = 180 // to bottom

// ParseGradient parses a CSS-style gradient of the form
// kind(direction, stop, stop, ...). Only linear-gradient is supported.
// Direction is optional and defaults to "to bottom"; each stop is a
// color token with an optional percentage position.
func ParseGradient(s string) (*Gradient, error) {
	s = strings.TrimSpace(s)

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("%w: missing parentheses in %q", ErrMalformedGradient, s)
	}

	kind := strings.TrimSpace(s[:open])
	if kind != "linear-gradient" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGradientKind, kind)
	}

	body := strings.TrimSpace(s[open+1 : len(s)-1])
	if body == "" {
		return nil, fmt.Errorf("%w: empty gradient body", ErrMalformedGradient)
	}

	parts := strings.Split(body, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	angle := float64(defaultAngle)
	if a, ok, err := parseDirection(parts[0]); err != nil {
		return nil, err
	} else if ok {
		angle = a
		parts = parts[1:]
	}

	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: need at least two color stops", ErrMalformedGradient)
	}

	stops := make([]Stop, 0, len(parts))
	for i, part := range parts {
		stop, err := parseStop(part, i, len(parts))
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return NewGradient(angle, stops), nil
}

// parseDirection recognizes "90deg" and "to <side/corner>" tokens.
// ok=false means the token is not a direction and should be treated as
// the first color stop.
func parseDirection(token string) (angle float64, ok bool, err error) {
	if strings.HasSuffix(token, "deg") {
		v, perr := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(token, "deg")), 64)
		if perr != nil {
			return 0, false, fmt.Errorf("%w: bad angle %q", ErrMalformedGradient, token)
		}
		return v, true, nil
	}
	if strings.HasPrefix(token, "to ") {
		a, found := namedDirections[strings.Join(strings.Fields(token), " ")]
		if !found {
			return 0, false, fmt.Errorf("%w: unknown direction %q", ErrMalformedGradient, token)
		}
		return a, true, nil
	}
	return 0, false, nil
}

// parseStop splits an optional trailing percentage off a color token.
// Stops without an explicit position are spaced evenly over the list.
func parseStop(part string, index, total int) (Stop, error) {
	pos := 0.0
	if total > 1 {
		pos = float64(index) / float64(total-1)
	}

	token := part
	if strings.HasSuffix(part, "%") {
		fields := strings.Fields(strings.TrimSuffix(part, "%"))
		if len(fields) != 2 {
			return Stop{}, fmt.Errorf("%w: bad stop %q", ErrMalformedGradient, part)
		}
		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Stop{}, fmt.Errorf("%w: bad stop position %q", ErrMalformedGradient, part)
		}
		token = fields[0]
		pos = p / 100.0
	}

	c, err := ParseColor(token)
	if err != nil {
		return Stop{}, err
	}
	return Stop{Color: c, Pos: pos}, nil
}
