package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited screen cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is the frame compositor; renderers write to it and the orchestrator flushes it to the screen
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{
		blank: Cell{Rune: ' ', Style: tcell.StyleDefault.Background(RgbBackground)},
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// SetBlank changes the cell Clear fills with
func (b *RenderBuffer) SetBlank(style tcell.Style) {
	b.blank = Cell{Rune: ' ', Style: style}
}

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, ignoring out of bounds writes
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetString writes s starting at x, one rune per column, and returns the column after the last rune
func (b *RenderBuffer) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// Get returns the cell at x, y; out of bounds reads return the blank cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// FlushToScreen copies every cell to the screen; the caller shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
