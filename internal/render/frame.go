package render

import "strings"

// Frame is a row-major grid of glyphs.
type Frame struct {
	Width, Height int
	cells         []rune
}

// NewFrame allocates a blank frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{Width: width, Height: height, cells: make([]rune, width*height)}
	fill(f.cells, ' ')
	return f
}

// At returns the glyph at (col, row).
func (f *Frame) At(col, row int) rune {
	return f.cells[row*f.Width+col]
}

// Set writes the glyph at (col, row).
func (f *Frame) Set(col, row int, r rune) {
	f.cells[row*f.Width+col] = r
}

// Row returns one line of the frame.
func (f *Frame) Row(row int) string {
	return string(f.cells[row*f.Width : (row+1)*f.Width])
}

// Column returns one vertical slice of the frame, top to bottom.
func (f *Frame) Column(col int) []rune {
	out := make([]rune, f.Height)
	for row := range out {
		out[row] = f.At(col, row)
	}
	return out
}

// Equal reports whether two frames hold the same glyphs.
func (f *Frame) Equal(o *Frame) bool {
	if f.Width != o.Width || f.Height != o.Height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String joins the rows with newlines, without a trailing one.
func (f *Frame) String() string {
	var b strings.Builder
	for row := 0; row < f.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.Row(row))
	}
	return b.String()
}
