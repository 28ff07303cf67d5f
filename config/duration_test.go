package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{"3000ms", 3000 * time.Millisecond},
		{"0.3s", 300 * time.Millisecond},
		{"5m", 5 * time.Minute},
		{"0.5h", 30 * time.Minute},
		{"3s", 3 * time.Second},
		{"0ms", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	inputs := []string{
		"", "3000", "-3s", "3 s", "s", "3sec", "3.s", "h3", "3ss", "1d",
	}
	for _, input := range inputs {
		_, err := ParseDuration(input)
		assert.ErrorIs(t, err, ErrInvalidDuration, "input %q", input)
	}
}
