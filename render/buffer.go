package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one compositor cell. A zero rune means "background only";
// the flush path renders it as a space carrying the background color
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// Buffer is a compositor backed by a flat cell array.
// Renderers write into it in priority order; the final state is
// flushed to the terminal once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only when capacity is short
func (b *Buffer) Resize(width, height int) {
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

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetBg replaces the background color of a cell
func (b *Buffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// BlendBg alpha-blends bg over the existing background
func (b *Buffer) BlendBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = Blend(c.Bg, bg, alpha)
}

// AddBg additively blends bg into the existing background
func (b *Buffer) AddBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = Add(c.Bg, bg, alpha)
}

// SetRune places a glyph with foreground color, keeping the background
func (b *Buffer) SetRune(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Bold = false
}

// SetRuneBold places a bold glyph with foreground color
func (b *Buffer) SetRuneBold(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Bold = true
}

// Set writes a full cell
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// WriteString draws a string horizontally starting at (x, y)
func (b *Buffer) WriteString(x, y int, s string, fg, bg RGB) {
	for i, r := range []rune(s) {
		b.Set(x+i, y, r, fg, bg)
	}
}

// Flush writes the buffer to a tcell screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(c.Fg.TCell()).
				Background(c.Bg.TCell()).
				Bold(c.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
