// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/row.go
// Summary: Implements a single row of the screen buffer grid.
// Usage: Consumed by the grid; rows carry text, classes, attributes and
//        the wrap flags the reflow engine reads back.

package screen

// Row holds one line of the grid.
//
// Left and Right are the measurement bounds of the text: Left is the first
// column holding a non-space character and Right is one past the last. A
// blank row has Left == width and Right == 0.
type Row struct {
	Chars   []rune
	Classes []CellClass
	Attrs   AttrRow

	Left  int
	Right int

	// WrapForced marks a row whose text ran past the last column and
	// continued on the next row.
	WrapForced bool

	// DoubleBytePadded marks a row whose last cell was left blank because
	// a double-width character did not fit.
	DoubleBytePadded bool
}

func newRow(width int, fill TextAttr) Row {
	chars := make([]rune, width)
	for i := range chars {
		chars[i] = ' '
	}
	return Row{
		Chars:   chars,
		Classes: make([]CellClass, width),
		Attrs:   NewAttrRow(width, fill),
		Left:    width,
		Right:   0,
	}
}

// Cell returns the contents of one column.
func (r *Row) Cell(col int) Cell {
	return Cell{
		Rune:  r.Chars[col],
		Class: r.Classes[col],
		Attr:  r.Attrs.At(col),
	}
}

// setCell writes one column and widens the measurement bounds around it.
func (r *Row) setCell(col int, ch rune, class CellClass, attr TextAttr) {
	r.Chars[col] = ch
	r.Classes[col] = class
	r.Attrs.Set(col, attr)
	if col < r.Left {
		r.Left = col
	}
	if col+1 > r.Right {
		r.Right = col + 1
	}
}

// clear resets the row to blank cells carrying the fill attribute.
func (r *Row) clear(fill TextAttr) {
	for i := range r.Chars {
		r.Chars[i] = ' '
		r.Classes[i] = ClassNarrow
	}
	r.Attrs = NewAttrRow(len(r.Chars), fill)
	r.Left = len(r.Chars)
	r.Right = 0
	r.WrapForced = false
	r.DoubleBytePadded = false
}

// resizedCopy returns a copy of the row cut or padded to a new width. Freshly
// revealed cells take the fill attribute; a trailing lead cell that loses its
// pair is blanked.
func (r *Row) resizedCopy(newWidth int, fill TextAttr) Row {
	out := newRow(newWidth, fill)
	keep := min(len(r.Chars), newWidth)
	copy(out.Chars, r.Chars[:keep])
	copy(out.Classes, r.Classes[:keep])
	out.Attrs = r.Attrs.clone()
	out.Attrs.Resize(newWidth)
	if keep > 0 && out.Classes[keep-1] == ClassLead {
		// Lead cell lost its trailing pair at the cut edge.
		out.Chars[keep-1] = ' '
		out.Classes[keep-1] = ClassNarrow
	}
	if newWidth < len(r.Chars) {
		out.measure()
	} else {
		out.Left = r.Left
		out.Right = r.Right
	}
	out.WrapForced = r.WrapForced
	out.DoubleBytePadded = r.DoubleBytePadded
	return out
}

// measure recomputes Left and Right from the stored characters.
func (r *Row) measure() {
	width := len(r.Chars)
	r.Left = width
	r.Right = 0
	for i, ch := range r.Chars {
		if ch != ' ' && ch != 0 {
			if r.Left == width {
				r.Left = i
			}
			r.Right = i + 1
		}
	}
}
