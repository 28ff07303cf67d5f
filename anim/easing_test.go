package anim

import (
	"errors"
	"math"
	"sort"
	"testing"
)

func TestEasingBoundaries(t *testing.T) {
	for _, name := range EasingNames() {
		fn, err := Easing(name)
		if err != nil {
			t.Fatalf("Easing(%q) failed: %v", name, err)
		}
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %v, expected exactly 0", name, got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("%s(1) = %v, expected exactly 1", name, got)
		}
	}
}

func TestEasingFinite(t *testing.T) {
	// Every function must stay finite across a dense sweep of [0,1]
	for _, name := range EasingNames() {
		fn, _ := Easing(name)
		for i := 0; i <= 1000; i++ {
			x := float64(i) / 1000
			got := fn(x)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("%s(%v) = %v, expected finite", name, x, got)
			}
		}
	}
}

func TestEasingMonotonicFamilies(t *testing.T) {
	// Quad and cubic families are monotonically non-decreasing;
	// back/elastic/bounce may overshoot and are excluded
	monotonic := []string{
		"linear",
		"ease-in", "ease-out", "ease-in-out",
		"ease-in-quad", "ease-out-quad", "ease-in-out-quad",
		"ease-in-cubic", "ease-out-cubic", "ease-in-out-cubic",
	}
	for _, name := range monotonic {
		fn, _ := Easing(name)
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			x := float64(i) / 100
			got := fn(x)
			if got < prev-1e-12 {
				t.Errorf("%s not monotonic at t=%v: %v < %v", name, x, got, prev)
			}
			prev = got
		}
	}
}

func TestEasingUnknownName(t *testing.T) {
	_, err := Easing("ease-in-sideways")
	if err == nil {
		t.Fatal("Expected error for unknown easing name")
	}
	if !errors.Is(err, ErrUnknownEasing) {
		t.Errorf("Expected ErrUnknownEasing, got %v", err)
	}
}

func TestEasingCatalog(t *testing.T) {
	names := EasingNames()
	if len(names) != 19 {
		t.Errorf("Expected 19 easing names, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Expected sorted easing names")
	}

	// The bare names alias the cubic family
	ease, _ := Easing("ease-in")
	cubic, _ := Easing("ease-in-cubic")
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		if ease(x) != cubic(x) {
			t.Errorf("ease-in(%v) = %v, expected cubic %v", x, ease(x), cubic(x))
		}
	}
}

func TestBackOvershoot(t *testing.T) {
	fn, _ := Easing("ease-in-back")
	dipped := false
	for i := 1; i < 100; i++ {
		if fn(float64(i)/100) < 0 {
			dipped = true
			break
		}
	}
	if !dipped {
		t.Error("Expected ease-in-back to dip below 0 mid-curve")
	}
}
