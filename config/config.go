package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/figlight/figlight/anim"
	"github.com/figlight/figlight/color"
)

var (
	// ErrConflictingColorSource is returned when both a palette and a
	// gradient are configured.
	ErrConflictingColorSource = errors.New("conflicting color sources")

	// ErrMissingColorSource is returned when neither is configured.
	ErrMissingColorSource = errors.New("missing color source")

	// ErrInvalidFPS is returned for frame rates outside (0, MaxFPS].
	ErrInvalidFPS = errors.New("invalid fps")
)

// Built-in defaults, applied below any defaults file.
const (
	DefaultDuration = "3s"
	DefaultEasing   = "ease-in-out"
	DefaultEffect   = "fade-in"
	DefaultFPS      = anim.DefaultFPS
)

// Spec is the raw, unvalidated run description assembled from flags
// and the defaults file.
type Spec struct {
	Text       string
	Font       string
	FigletArgs []string

	Effect   string
	Easing   string
	Duration string
	FPS      int
	Loop     bool

	Palette  string
	Gradient string

	Debug bool
}

// Run is a fully resolved Spec: every identifier looked up, every
// string parsed. Building one performs all validation, so a Run never
// fails at render time.
type Run struct {
	Text       string
	Font       string
	FigletArgs []string

	Effect   anim.Effect
	Easing   anim.EasingFunc
	Duration time.Duration
	FPS      int
	Loop     bool

	Colors color.Source
}

// Resolve validates the spec and resolves its identifiers.
func (s *Spec) Resolve() (*Run, error) {
	fx, err := anim.EffectByName(s.Effect)
	if err != nil {
		return nil, err
	}
	ease, err := anim.Easing(s.Easing)
	if err != nil {
		return nil, err
	}
	duration, err := ParseDuration(s.Duration)
	if err != nil {
		return nil, err
	}
	if s.FPS <= 0 || s.FPS > anim.MaxFPS {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFPS, s.FPS)
	}

	source, err := s.colorSource()
	if err != nil {
		return nil, err
	}
	if p, ok := source.(*color.Palette); ok && wrappingEffects[s.Effect] {
		source = p.Cycled()
	}

	return &Run{
		Text:       s.Text,
		Font:       s.Font,
		FigletArgs: s.FigletArgs,
		Effect:     fx,
		Easing:     ease,
		Duration:   duration,
		FPS:        s.FPS,
		Loop:       s.Loop,
		Colors:     source,
	}, nil
}

// wrappingEffects sample positions modulo 1 as they flow across the
// grid, so a palette must wrap with them instead of clamping.
var wrappingEffects = map[string]bool{
	"color-cycle":   true,
	"gradient-flow": true,
	"rainbow":       true,
}

// colorSource enforces exactly one of palette or gradient.
func (s *Spec) colorSource() (color.Source, error) {
	switch {
	case s.Palette != "" && s.Gradient != "":
		return nil, fmt.Errorf("%w: both palette and gradient set", ErrConflictingColorSource)
	case s.Palette != "":
		return color.ParsePalette(s.Palette)
	case s.Gradient != "":
		return color.ParseGradient(s.Gradient)
	default:
		return nil, fmt.Errorf("%w: need a palette or a gradient", ErrMissingColorSource)
	}
}

// Defaults mirrors the optional YAML defaults file. Absent fields keep
// the built-in values.
type Defaults struct {
	Effect   string `yaml:"effect"`
	Easing   string `yaml:"easing"`
	Duration string `yaml:"duration"`
	FPS      int    `yaml:"fps"`
	Palette  string `yaml:"palette"`
	Gradient string `yaml:"gradient"`
	Font     string `yaml:"font"`
}

// DefaultsPath returns the per-user defaults file location.
func DefaultsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "figlight", "figlight.yaml"), nil
}

// LoadDefaults reads a defaults file. A missing file is not an error;
// it yields the zero Defaults.
func LoadDefaults(path string) (Defaults, error) {
	var d Defaults
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, err
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("defaults file %s: %w", path, err)
	}
	return d, nil
}

// NewSpec seeds a spec with built-in defaults overlaid by the file
// defaults. Flag values are applied on top by the CLI, so the priority
// is flag over file over built-in.
func NewSpec(d Defaults) Spec {
	s := Spec{
		Effect:   DefaultEffect,
		Easing:   DefaultEasing,
		Duration: DefaultDuration,
		FPS:      DefaultFPS,
	}
	if d.Effect != "" {
		s.Effect = d.Effect
	}
	if d.Easing != "" {
		s.Easing = d.Easing
	}
	if d.Duration != "" {
		s.Duration = d.Duration
	}
	if d.FPS > 0 {
		s.FPS = d.FPS
	}
	if d.Palette != "" {
		s.Palette = d.Palette
	}
	if d.Gradient != "" {
		s.Gradient = d.Gradient
	}
	if d.Font != "" {
		s.Font = d.Font
	}
	return s
}
