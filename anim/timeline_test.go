package anim

import (
	"testing"
	"time"
)

func TestTimelineProgress(t *testing.T) {
	start := time.Now()
	tl := NewTimeline(2*time.Second, false)
	tl.Start(start)

	tests := []struct {
		name     string
		at       time.Duration
		expected float64
	}{
		{"start", 0, 0},
		{"quarter", 500 * time.Millisecond, 0.25},
		{"half", time.Second, 0.5},
		{"end", 2 * time.Second, 1},
		{"past end", 3 * time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, wrapped := tl.Tick(start.Add(tt.at))
			if progress != tt.expected {
				t.Errorf("Expected progress %v, got %v", tt.expected, progress)
			}
			if wrapped {
				t.Error("Non-looping timeline must never wrap")
			}
		})
	}

	if !tl.Finished() {
		t.Error("Expected timeline to finish past its duration")
	}
}

func TestTimelineBeforeStart(t *testing.T) {
	start := time.Now()
	tl := NewTimeline(time.Second, false)
	tl.Start(start)

	progress, _ := tl.Tick(start.Add(-time.Second))
	if progress != 0 {
		t.Errorf("Expected progress 0 before start, got %v", progress)
	}
}

func TestTimelineLoopWrap(t *testing.T) {
	start := time.Now()
	tl := NewTimeline(time.Second, true)
	tl.Start(start)

	progress, wrapped := tl.Tick(start.Add(500 * time.Millisecond))
	if wrapped {
		t.Error("Expected no wrap before the boundary")
	}
	if progress != 0.5 {
		t.Errorf("Expected progress 0.5, got %v", progress)
	}

	// 1.25s into a 1s loop: wrapped once, progress folds to 0.25
	progress, wrapped = tl.Tick(start.Add(1250 * time.Millisecond))
	if !wrapped {
		t.Error("Expected wrap at the loop boundary")
	}
	if progress != 0.25 {
		t.Errorf("Expected progress 0.25 after wrap, got %v", progress)
	}
	if tl.Finished() {
		t.Error("Looping timeline must not finish")
	}

	// A stall across several periods folds by whole periods, not one
	progress, wrapped = tl.Tick(start.Add(3750 * time.Millisecond))
	if !wrapped {
		t.Error("Expected wrap after multi-period stall")
	}
	if progress != 0.75 {
		t.Errorf("Expected progress 0.75 after folding, got %v", progress)
	}
}

func TestTimelineZeroDuration(t *testing.T) {
	for _, loop := range []bool{false, true} {
		tl := NewTimeline(0, loop)
		now := time.Now()
		tl.Start(now)

		progress, wrapped := tl.Tick(now)
		if progress != 1 {
			t.Errorf("loop=%v: expected progress 1 for zero duration, got %v", loop, progress)
		}
		if wrapped {
			t.Errorf("loop=%v: zero duration must not wrap", loop)
		}
		if !tl.Finished() {
			t.Errorf("loop=%v: zero duration must finish immediately", loop)
		}
	}
}

func TestTimelineRestart(t *testing.T) {
	start := time.Now()
	tl := NewTimeline(time.Second, false)
	tl.Start(start)
	tl.Tick(start.Add(2 * time.Second))
	if !tl.Finished() {
		t.Fatal("Expected finished timeline")
	}

	tl.Start(start.Add(5 * time.Second))
	if tl.Finished() {
		t.Error("Expected restart to clear finished state")
	}
	progress, _ := tl.Tick(start.Add(5*time.Second + 500*time.Millisecond))
	if progress != 0.5 {
		t.Errorf("Expected progress 0.5 after restart, got %v", progress)
	}
}
