package core

import "strings"

// Cell is one character position with its foreground colour.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a fixed-size grid of cells that games draw into. Row 0 is the
// top of the terminal. Writes outside the grid are dropped.
type Screen struct {
	w, h  int
	cells []Cell // row-major
}

func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.alloc(width, height)
	return s
}

func (s *Screen) alloc(w, h int) {
	s.w, s.h = max(w, 0), max(h, 0)
	s.cells = make([]Cell, s.w*s.h)
	s.Clear()
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) in(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// Resize changes the grid size, keeping the overlapping top-left region.
func (s *Screen) Resize(width, height int) {
	if width == s.w && height == s.h {
		return
	}
	old, ow, oh := s.cells, s.w, s.h
	s.alloc(width, height)
	for y := range min(oh, s.h) {
		copy(s.cells[y*s.w:y*s.w+min(ow, s.w)], old[y*ow:])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// SetColored writes one cell.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.in(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell reads one cell; outside the grid it is a blank.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.in(x, y) {
		return blank
	}
	return s.cells[y*s.w+x]
}

// Get is GetCell without the colour.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawTextColored writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centred on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawTextColored((s.w-len([]rune(text)))/2, y, text, c)
}

// DrawHLine writes n copies of r rightwards from (x, y).
func (s *Screen) DrawHLine(x, y, n int, r rune, c Color) {
	for i := range n {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawRect fills rect with r.
func (s *Screen) DrawRect(rect Rect, r rune, c Color) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		s.DrawHLine(rect.X, y, rect.W, r, c)
	}
}

// DrawBox outlines rect with single-line box characters.
func (s *Screen) DrawBox(rect Rect, c Color) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	x0, y0, x1, y1 := rect.X, rect.Y, rect.Right()-1, rect.Bottom()-1
	s.DrawHLine(x0+1, y0, rect.W-2, '─', c)
	s.DrawHLine(x0+1, y1, rect.W-2, '─', c)
	for y := y0 + 1; y < y1; y++ {
		s.SetColored(x0, y, '│', c)
		s.SetColored(x1, y, '│', c)
	}
	s.SetColored(x0, y0, '┌', c)
	s.SetColored(x1, y0, '┐', c)
	s.SetColored(x0, y1, '└', c)
	s.SetColored(x1, y1, '┘', c)
}

// Row returns row y as plain text; outside the grid it is all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String is every row joined by newlines, without colour.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
