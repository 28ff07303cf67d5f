// Package grid models the rectangular ASCII-art input of the animation
// pipeline and the generator that produces it from text.
package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Grid is a rectangular block of character cells. All rows share the
// same width; ragged generator output is padded with spaces. A Grid is
// immutable after construction: effects read it and build derived
// frames, they never write back.
//
// Cells are addressed by rune index and assumed single-width, which
// holds for figlet output (ASCII). Width measurement accounts for wide
// glyphs so padding stays correct, but a row mixing wide and narrow
// runes would not line up cell-for-cell with its neighbors.
type Grid struct {
	rows   [][]rune
	width  int
	height int
}

// GlyphPos is a non-blank cell location in row-major order.
type GlyphPos struct {
	X, Y int
	R    rune
}

// FromText builds a rectangular grid from generator output. Width is
// measured in terminal cells, so wide glyphs count double.
func FromText(text string) *Grid {
	text = strings.TrimRight(text, "\n")
	lines := strings.Split(text, "\n")

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		row := []rune(line)
		for runewidth.StringWidth(string(row)) < width {
			row = append(row, ' ')
		}
		rows[i] = row
	}

	return &Grid{rows: rows, width: width, height: len(lines)}
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Rune returns the cell at (x,y), or space when out of bounds or inside
// the padding of a row that contains wide glyphs.
func (g *Grid) Rune(x, y int) rune {
	if y < 0 || y >= g.height || x < 0 {
		return ' '
	}
	row := g.rows[y]
	if x >= len(row) {
		return ' '
	}
	return row[x]
}

// GlyphCount counts non-blank cells.
func (g *Grid) GlyphCount() int {
	count := 0
	for _, row := range g.rows {
		for _, r := range row {
			if !isBlank(r) {
				count++
			}
		}
	}
	return count
}

// Glyphs returns every non-blank cell in row-major order. The typewriter
// family reveals glyphs in exactly this order.
func (g *Grid) Glyphs() []GlyphPos {
	glyphs := make([]GlyphPos, 0, g.width*g.height/4)
	for y, row := range g.rows {
		for x, r := range row {
			if !isBlank(r) {
				glyphs = append(glyphs, GlyphPos{X: x, Y: y, R: r})
			}
		}
	}
	return glyphs
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == 0
}
