// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/grid.go
// Summary: Implements the ring-buffer grid of rows backing a screen buffer.
// Usage: Consumed by the session and the resize engines.
// Notes: Row zero of the visible buffer lives at firstRow inside the ring;
//        scrolling advances firstRow instead of moving row storage.

package screen

// Cursor tracks the insertion point of a grid plus its presentation state.
type Cursor struct {
	Pos     Coord
	Size    int // height as a percentage of the cell, 1-100
	Visible bool
}

// Grid stores the character content of one screen buffer. Rows are kept in a
// ring: logical row y lives at physical slot (firstRow + y) % height, and a
// scroll is a single index increment.
type Grid struct {
	rows     []Row
	firstRow int
	size     Size
	fill     TextAttr
	cursor   Cursor
}

// NewGrid allocates a blank grid. Dimensions are clamped to at least 1x1.
func NewGrid(size Size, fill TextAttr) *Grid {
	size.Width = max(size.Width, 1)
	size.Height = max(size.Height, 1)
	g := &Grid{
		rows: make([]Row, size.Height),
		size: size,
		fill: fill,
		cursor: Cursor{
			Size:    25,
			Visible: true,
		},
	}
	for i := range g.rows {
		g.rows[i] = newRow(size.Width, fill)
	}
	return g
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() Size {
	return g.size
}

// Fill returns the attribute applied to freshly revealed cells.
func (g *Grid) Fill() TextAttr {
	return g.fill
}

// SetFill changes the attribute applied to freshly revealed cells.
func (g *Grid) SetFill(attr TextAttr) {
	g.fill = attr
}

// Row returns the storage for logical row y.
func (g *Grid) Row(y int) *Row {
	return &g.rows[g.slot(y)]
}

// Cell returns the contents of one coordinate.
func (g *Grid) Cell(c Coord) Cell {
	return g.Row(c.Y).Cell(c.X)
}

// Cursor returns the current cursor state.
func (g *Grid) Cursor() Cursor {
	return g.cursor
}

// SetCursorPos moves the cursor without touching its presentation state.
func (g *Grid) SetCursorPos(pos Coord) {
	g.cursor.Pos = pos
}

// SetCursorStyle updates the cursor height and visibility.
func (g *Grid) SetCursorStyle(size int, visible bool) {
	g.cursor.Size = clampInt(size, 1, 100)
	g.cursor.Visible = visible
}

func (g *Grid) slot(y int) int {
	return (g.firstRow + y) % g.size.Height
}

// LastNonSpace returns the position of the last cell holding text, or
// (0, -1) when the grid is blank.
func (g *Grid) LastNonSpace() Coord {
	for y := g.size.Height - 1; y >= 0; y-- {
		row := g.Row(y)
		if row.Right > 0 {
			return Coord{X: row.Right - 1, Y: y}
		}
	}
	return Coord{X: 0, Y: -1}
}

// scrollOne recycles the top row to the bottom, clearing it on the way.
func (g *Grid) scrollOne() {
	g.rows[g.firstRow].clear(g.fill)
	g.firstRow = (g.firstRow + 1) % g.size.Height
}

// WriteCell stores one character at the cursor with the given attribute and
// advances the cursor, wrapping to the next row when the line fills up. A
// double-width character that does not fit on the current row pads the last
// column and wraps before writing. Rows the cursor wraps off of get their
// WrapForced flag set.
func (g *Grid) WriteCell(ch rune, attr TextAttr) {
	class := ClassifyRune(ch)
	if class == ClassLead && g.size.Width < 2 {
		// Not enough room for the pair on any row.
		ch, class = ' ', ClassNarrow
	}
	pos := g.cursor.Pos
	row := g.Row(pos.Y)
	if class == ClassLead && pos.X == g.size.Width-1 {
		row.setCell(pos.X, ' ', ClassNarrow, attr)
		row.DoubleBytePadded = true
		row.WrapForced = true
		g.lineFeed()
		pos = g.cursor.Pos
		row = g.Row(pos.Y)
	}
	row.setCell(pos.X, ch, class, attr)
	if class == ClassLead {
		row.setCell(pos.X+1, ch, ClassTrail, attr)
		g.advanceCursor(row)
	}
	g.advanceCursor(row)
}

// advanceCursor moves the cursor one column right, marking the row as
// force-wrapped and wrapping when it runs off the edge.
func (g *Grid) advanceCursor(row *Row) {
	g.cursor.Pos.X++
	if g.cursor.Pos.X >= g.size.Width {
		row.WrapForced = true
		g.lineFeed()
	}
}

// IncrementCursor moves the cursor one column right, wrapping at the edge
// without marking the row. The reflow engine uses it to replay cursor motion
// over cells that hold no text.
func (g *Grid) IncrementCursor() {
	g.cursor.Pos.X++
	if g.cursor.Pos.X >= g.size.Width {
		g.NewlineCursor()
	}
}

// NewlineCursor moves the cursor to column zero of the next row, scrolling
// the grid when the cursor is already on the last row.
func (g *Grid) NewlineCursor() {
	g.cursor.Pos.X = 0
	if g.cursor.Pos.Y >= g.size.Height-1 {
		g.scrollOne()
		return
	}
	g.cursor.Pos.Y++
}

// lineFeed is the wrap path of WriteCell. It shares NewlineCursor's motion.
func (g *Grid) lineFeed() {
	g.NewlineCursor()
}

// RowText returns the text of logical row y with trailing blanks trimmed.
// Trailing cells of wide characters are skipped so the text round-trips.
func (g *Grid) RowText(y int) string {
	row := g.Row(y)
	out := make([]rune, 0, row.Right)
	for x := 0; x < row.Right; x++ {
		if row.Classes[x] == ClassTrail {
			continue
		}
		out = append(out, row.Chars[x])
	}
	return string(out)
}

// RestoreRow replaces the contents of logical row y from plain text, clipping
// text longer than the row. Snapshot restore uses it to rebuild a grid
// without replaying output through the cursor.
func (g *Grid) RestoreRow(y int, text string, wrapForced, padded bool) {
	row := g.Row(y)
	row.clear(g.fill)
	x := 0
	for _, r := range text {
		class := ClassifyRune(r)
		if class == ClassLead && x+1 >= g.size.Width {
			break
		}
		if x >= g.size.Width {
			break
		}
		row.setCell(x, r, class, g.fill)
		if class == ClassLead {
			row.setCell(x+1, r, ClassTrail, g.fill)
			x++
		}
		x++
	}
	row.WrapForced = wrapForced
	row.DoubleBytePadded = padded
}
