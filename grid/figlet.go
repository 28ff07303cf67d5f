package grid

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGeneration wraps every failure of the external art generator:
// missing binary, bad font, non-zero exit.
var ErrGeneration = errors.New("ascii generation failed")

// Generator produces a grid for input text. The pipeline only depends
// on this interface so tests run against synthetic grids without any
// external tool.
type Generator interface {
	Generate(ctx context.Context, text string) (*Grid, error)
}

// Figlet shells out to the figlet binary.
type Figlet struct {
	Font string   // optional -f argument
	Args []string // passthrough options, appended verbatim
	path string   // resolved binary, set by CheckInstalled
}

// NewFiglet builds a figlet-backed generator.
func NewFiglet(font string, args []string) *Figlet {
	return &Figlet{Font: font, Args: args}
}

// CheckInstalled resolves the figlet binary up front so a missing
// install fails before any terminal setup happens.
func (f *Figlet) CheckInstalled() error {
	path, err := exec.LookPath("figlet")
	if err != nil {
		return fmt.Errorf("%w: figlet not found in PATH (install it via your package manager)", ErrGeneration)
	}
	f.path = path
	return nil
}

func (f *Figlet) args(text string) []string {
	args := make([]string, 0, len(f.Args)+3)
	if f.Font != "" {
		args = append(args, "-f", f.Font)
	}
	args = append(args, f.Args...)
	args = append(args, text)
	return args
}

// Generate runs figlet and builds a rectangular grid from its output.
func (f *Figlet) Generate(ctx context.Context, text string) (*Grid, error) {
	if f.path == "" {
		if err := f.CheckInstalled(); err != nil {
			return nil, err
		}
	}

	cmd := exec.CommandContext(ctx, f.path, f.args(text)...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: %s", ErrGeneration, msg)
	}

	g := FromText(stdout.String())
	if g.Width() == 0 {
		return nil, fmt.Errorf("%w: empty output for %q", ErrGeneration, text)
	}
	return g, nil
}
