package anim

import "time"

// Timeline tracks elapsed time against a configured duration and turns
// it into per-frame progress in [0,1]. The scheduler owns it and calls
// Tick once per frame; it is not safe for concurrent use.
type Timeline struct {
	start    time.Time
	duration time.Duration
	loop     bool

	progress float64
	finished bool
}

// NewTimeline builds a timeline. Start must be called before Tick.
func NewTimeline(duration time.Duration, loop bool) *Timeline {
	return &Timeline{duration: duration, loop: loop}
}

// Start pins the start instant. Restarting a finished timeline is
// allowed and resets its state.
func (tl *Timeline) Start(now time.Time) {
	tl.start = now
	tl.progress = 0
	tl.finished = false
}

// Tick advances to now and returns the new progress. wrapped is true
// exactly on a loop boundary, when a looping timeline's progress folds
// back past 1. A zero duration renders a single full-progress frame and
// finishes immediately, looping or not.
func (tl *Timeline) Tick(now time.Time) (progress float64, wrapped bool) {
	if tl.duration <= 0 {
		tl.progress = 1
		tl.finished = true
		return 1, false
	}

	elapsed := now.Sub(tl.start)
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed >= tl.duration {
		if !tl.loop {
			tl.progress = 1
			tl.finished = true
			return 1, false
		}
		// Advance the start instant by whole periods so progress wraps
		// without accumulating drift across loops.
		periods := elapsed / tl.duration
		tl.start = tl.start.Add(periods * tl.duration)
		elapsed = now.Sub(tl.start)
		wrapped = true
	}

	tl.progress = float64(elapsed) / float64(tl.duration)
	return tl.progress, wrapped
}

// Progress returns the value computed by the last Tick.
func (tl *Timeline) Progress() float64 {
	return tl.progress
}

// Finished reports terminal state. Looping timelines only finish on a
// zero duration.
func (tl *Timeline) Finished() bool {
	return tl.finished
}

func (tl *Timeline) Duration() time.Duration {
	return tl.duration
}

func (tl *Timeline) Looping() bool {
	return tl.loop
}
