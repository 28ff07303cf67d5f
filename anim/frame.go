package anim

import "github.com/figlight/figlight/color"

// Cell is one styled frame position. A zero-alpha or blank-rune cell
// renders as empty space.
type Cell struct {
	Rune  rune
	Color color.Color
}

// Frame is a grid-shaped block of styled cells, created fresh per tick.
// Its dimensions always equal the source grid's, for every effect and
// every progress value; motion and scaling happen inside the rectangle.
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a blank frame. All cells start as spaces with zero
// alpha.
func NewFrame(width, height int) *Frame {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Rune: ' '}
	}
	return &Frame{cells: cells, width: width, height: height}
}

func (f *Frame) Width() int {
	return f.width
}

func (f *Frame) Height() int {
	return f.height
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a cell, ignoring out-of-bounds coordinates.
func (f *Frame) Set(x, y int, r rune, c color.Color) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = Cell{Rune: r, Color: c}
}

// At returns the cell at (x,y); out-of-bounds reads return a blank cell.
func (f *Frame) At(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return f.cells[y*f.width+x]
}
