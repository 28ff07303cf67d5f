package screen

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/figlight/figlight/anim"
	"github.com/figlight/figlight/color"
)

func simScreen(t *testing.T, width, height int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(width, height)
	s := &Screen{tc: sim, background: color.Black}
	t.Cleanup(s.Fini)
	return s, sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := sim.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func twoGlyphFrame() *anim.Frame {
	f := anim.NewFrame(2, 1)
	f.Set(0, 0, 'a', color.White)
	f.Set(1, 0, 'b', color.White)
	return f
}

func TestDrawCentersFrame(t *testing.T) {
	s, sim := simScreen(t, 20, 10)

	if err := s.Draw(twoGlyphFrame()); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if got := runeAt(sim, 9, 4); got != 'a' {
		t.Errorf("Expected 'a' at (9,4), got %q", got)
	}
	if got := runeAt(sim, 10, 4); got != 'b' {
		t.Errorf("Expected 'b' at (10,4), got %q", got)
	}
}

func TestDrawSkipsBlankCells(t *testing.T) {
	s, sim := simScreen(t, 20, 10)

	f := anim.NewFrame(3, 1)
	f.Set(0, 0, 'x', color.White)
	f.Set(1, 0, ' ', color.White)
	f.Set(2, 0, 'y', color.White.WithAlpha(0))

	if err := s.Draw(f); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if got := runeAt(sim, 8, 4); got != 'x' {
		t.Errorf("Expected 'x' at (8,4), got %q", got)
	}
	if got := runeAt(sim, 9, 4); got != ' ' {
		t.Errorf("Expected blank cell to stay background, got %q", got)
	}
	if got := runeAt(sim, 10, 4); got != ' ' {
		t.Errorf("Expected zero-alpha cell to stay background, got %q", got)
	}
}

func TestDrawTracksResize(t *testing.T) {
	s, sim := simScreen(t, 20, 10)

	if err := s.Draw(twoGlyphFrame()); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	// The next draw must recenter from the live terminal size, not a
	// snapshot taken at startup
	sim.SetSize(30, 11)
	if err := s.Draw(twoGlyphFrame()); err != nil {
		t.Fatalf("Draw after resize failed: %v", err)
	}

	if got := runeAt(sim, 14, 5); got != 'a' {
		t.Errorf("Expected 'a' at (14,5) after resize, got %q", got)
	}
	if got := runeAt(sim, 15, 5); got != 'b' {
		t.Errorf("Expected 'b' at (15,5) after resize, got %q", got)
	}
}

func TestWatchQuitKey(t *testing.T) {
	s, sim := simScreen(t, 20, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Watch(ctx, cancel)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Esc to cancel the run")
	}
}

func TestComposite(t *testing.T) {
	half := composite(color.White.WithAlpha(0.5), color.Black)
	if half.R != 127 || half.G != 127 || half.B != 127 {
		t.Errorf("Expected half-bright white over black, got %v", half)
	}
	if half.A != 1 {
		t.Errorf("Expected flattened alpha 1, got %v", half.A)
	}

	opaque := composite(color.New(10, 20, 30), color.Black)
	if opaque != color.New(10, 20, 30) {
		t.Errorf("Expected opaque colors untouched, got %v", opaque)
	}

	bg := color.New(100, 100, 100)
	mixed := composite(color.White.WithAlpha(0.5), bg)
	if mixed.R != 177 {
		t.Errorf("Expected blend toward non-black background, got %v", mixed)
	}
}
