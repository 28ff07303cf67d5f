// Package screen draws animation frames on a terminal through tcell.
package screen

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/figlight/figlight/anim"
	"github.com/figlight/figlight/color"
)

// Screen owns the terminal for the lifetime of a run. Frames are drawn
// centered; alpha is realized here by scaling each cell's channels
// toward the background, since terminals have no translucency.
//
// Draw runs on the runner goroutine while Watch consumes events on its
// own; the terminal size is read from tcell on every draw rather than
// cached, so the two never share mutable state.
type Screen struct {
	tc         tcell.Screen
	background color.Color
}

// New takes over the terminal: alternate screen, raw input, hidden
// cursor. The caller must arrange Fini on every exit path.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.HideCursor()
	tc.Clear()

	return &Screen{tc: tc, background: color.Black}, nil
}

// Fini restores the terminal. Safe to call once after New succeeds.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Watch consumes terminal events until the context ends. Quit keys
// (q, Esc, Ctrl-C) invoke cancel; resizes resync the terminal, and the
// next Draw recenters against the new size. Runs in its own goroutine.
func (s *Screen) Watch(ctx context.Context, cancel context.CancelFunc) {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.tc.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if isQuitKey(ev) {
						cancel()
						return
					}
				case *tcell.EventResize:
					s.tc.Sync()
				}
			}
		}
	}()
}

func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

// Draw renders one frame centered on the terminal. Blank and fully
// transparent cells stay background.
func (s *Screen) Draw(f *anim.Frame) error {
	s.tc.Clear()

	width, height := s.tc.Size()
	offsetX := (width - f.Width()) / 2
	offsetY := (height - f.Height()) / 2

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			cell := f.At(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 || cell.Color.A <= 0 {
				continue
			}
			fg := composite(cell.Color, s.background)
			style := tcell.StyleDefault.Foreground(
				tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
			s.tc.SetContent(offsetX+x, offsetY+y, cell.Rune, nil, style)
		}
	}

	s.tc.Show()
	return nil
}

// composite flattens alpha against the background color. Over black
// the blend reduces to scaling the channels by alpha.
func composite(c, bg color.Color) color.Color {
	if c.A >= 1 {
		return c
	}
	if bg == color.Black {
		return c.Scale(c.A).WithAlpha(1)
	}
	return bg.Lerp(c.WithAlpha(1), c.A)
}
