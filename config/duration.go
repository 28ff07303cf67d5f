package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDuration is returned for duration strings outside the
// <number><unit> grammar.
var ErrInvalidDuration = errors.New("invalid duration")

// durationRe accepts a decimal number followed by one unit. Bare
// numbers and negatives are rejected rather than guessed at.
var durationRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)(ms|s|m|h)$`)

var unitScale = map[string]time.Duration{
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
}

// ParseDuration parses strings like "500ms", "2.5s", "1m", "1h".
func ParseDuration(s string) (time.Duration, error) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return time.Duration(value * float64(unitScale[m[2]])), nil
}
