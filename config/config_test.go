package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figlight/figlight/anim"
)

func validSpec() Spec {
	s := NewSpec(Defaults{})
	s.Text = "hi"
	s.Palette = "red,blue"
	return s
}

func TestResolveValid(t *testing.T) {
	s := validSpec()
	run, err := s.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "hi", run.Text)
	assert.Equal(t, 3*time.Second, run.Duration)
	assert.Equal(t, DefaultFPS, run.FPS)
	assert.NotNil(t, run.Effect)
	assert.NotNil(t, run.Easing)
	require.NotNil(t, run.Colors)

	red := run.Colors.At(0)
	assert.Equal(t, uint8(255), red.R)
}

func TestResolveGradientSource(t *testing.T) {
	s := validSpec()
	s.Palette = ""
	s.Gradient = "linear-gradient(90deg, red, blue)"

	run, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), run.Colors.At(0).R)
	assert.Equal(t, uint8(255), run.Colors.At(1).B)
}

func TestResolveCyclesPaletteForWrappingEffects(t *testing.T) {
	// Flow effects sample wrapped positions; a two-color palette must
	// alternate under them rather than clamp to its first color.
	s := validSpec()
	s.Effect = "rainbow"
	run, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), run.Colors.At(0.25).R)
	assert.Equal(t, uint8(255), run.Colors.At(0.75).B)

	// Non-flow effects keep the clamping palette
	s = validSpec()
	s.Effect = "fade-in"
	run, err = s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), run.Colors.At(0.75).R)
}

func TestResolveColorSourceRules(t *testing.T) {
	// Both sources set is a hard error, not a silent preference
	s := validSpec()
	s.Gradient = "linear-gradient(red, blue)"
	_, err := s.Resolve()
	assert.ErrorIs(t, err, ErrConflictingColorSource)

	// Neither source is equally fatal
	s = validSpec()
	s.Palette = ""
	_, err = s.Resolve()
	assert.ErrorIs(t, err, ErrMissingColorSource)
}

func TestResolveRejectsUnknownNames(t *testing.T) {
	s := validSpec()
	s.Effect = "teleport"
	_, err := s.Resolve()
	assert.ErrorIs(t, err, anim.ErrUnknownEffect)

	s = validSpec()
	s.Easing = "ease-in-sideways"
	_, err = s.Resolve()
	assert.ErrorIs(t, err, anim.ErrUnknownEasing)
}

func TestResolveRejectsBadDuration(t *testing.T) {
	s := validSpec()
	s.Duration = "3000"
	_, err := s.Resolve()
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestResolveRejectsBadFPS(t *testing.T) {
	for _, fps := range []int{0, -1, anim.MaxFPS + 1} {
		s := validSpec()
		s.FPS = fps
		_, err := s.Resolve()
		assert.ErrorIs(t, err, ErrInvalidFPS, "fps %d", fps)
	}
}

func TestNewSpecBuiltins(t *testing.T) {
	s := NewSpec(Defaults{})
	assert.Equal(t, DefaultEffect, s.Effect)
	assert.Equal(t, DefaultEasing, s.Easing)
	assert.Equal(t, DefaultDuration, s.Duration)
	assert.Equal(t, DefaultFPS, s.FPS)
	assert.Empty(t, s.Palette)
}

func TestNewSpecFileOverrides(t *testing.T) {
	s := NewSpec(Defaults{
		Effect:   "rainbow",
		Duration: "5s",
		FPS:      60,
		Palette:  "red,blue",
	})
	assert.Equal(t, "rainbow", s.Effect)
	assert.Equal(t, "5s", s.Duration)
	assert.Equal(t, 60, s.FPS)
	assert.Equal(t, "red,blue", s.Palette)
	// Untouched fields keep built-ins
	assert.Equal(t, DefaultEasing, s.Easing)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "figlight.yaml")
	content := "effect: wave\neasing: linear\nfps: 60\npalette: red,blue\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "wave", d.Effect)
	assert.Equal(t, "linear", d.Easing)
	assert.Equal(t, 60, d.FPS)
	assert.Equal(t, "red,blue", d.Palette)
}

func TestLoadDefaultsMissingFile(t *testing.T) {
	d, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults{}, d)
}

func TestLoadDefaultsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effect: [unterminated"), 0644))

	_, err := LoadDefaults(path)
	assert.Error(t, err)
}
