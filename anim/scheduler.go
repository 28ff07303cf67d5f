package anim

import (
	"context"
	"errors"
	"time"

	"github.com/figlight/figlight/grid"
)

// ErrNoWriter is returned by Run when no frame writer was attached.
var ErrNoWriter = errors.New("no frame writer")

const (
	// DefaultFPS is the render rate used when none is configured.
	DefaultFPS = 30
	// MaxFPS bounds the configurable render rate.
	MaxFPS = 240
)

// FrameWriter receives finished frames. The screen package implements
// it over a terminal; tests implement it with a capture buffer.
type FrameWriter interface {
	Draw(f *Frame) error
}

// Runner drives one animation: each tick it advances the timeline,
// eases the progress, runs the effect and hands the frame to the
// writer. Not safe for concurrent use.
type Runner struct {
	Grid   *grid.Grid
	Effect Effect
	Ease   EasingFunc
	Colors ColorFn
	FPS    int
	Writer FrameWriter

	timeline *Timeline

	// now is swappable for deterministic tests.
	now func() time.Time
}

// NewRunner wires a runner over a started-later timeline.
func NewRunner(g *grid.Grid, fx Effect, ease EasingFunc, colors ColorFn, tl *Timeline, fps int, w FrameWriter) *Runner {
	if fps <= 0 || fps > MaxFPS {
		fps = DefaultFPS
	}
	return &Runner{
		Grid:     g,
		Effect:   fx,
		Ease:     ease,
		Colors:   colors,
		FPS:      fps,
		Writer:   w,
		timeline: tl,
		now:      time.Now,
	}
}

// Run renders frames at the configured rate until the timeline
// finishes or the context is cancelled. Ticks schedule against an
// advancing deadline rather than a fixed sleep, so render cost does
// not accumulate as drift; a stall beyond two intervals resets the
// deadline instead of firing catch-up frames.
func (r *Runner) Run(ctx context.Context) error {
	if r.Writer == nil {
		return ErrNoWriter
	}

	interval := time.Second / time.Duration(r.FPS)
	start := r.now()
	r.timeline.Start(start)
	deadline := start

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		now := r.now()
		if err := r.renderTick(now); err != nil {
			return err
		}
		if r.timeline.Finished() {
			return nil
		}

		deadline = deadline.Add(interval)
		if now.Sub(deadline) > interval*2 {
			deadline = now.Add(interval)
		}

		sleep := deadline.Sub(r.now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// renderTick produces and writes the frame for one instant.
func (r *Runner) renderTick(now time.Time) error {
	progress, _ := r.timeline.Tick(now)
	eased := r.Ease(progress)
	frame := r.Effect(r.Grid, eased, r.Colors)
	return r.Writer.Draw(frame)
}
