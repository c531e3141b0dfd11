// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/write.go
// Summary: Implements the text output operations a session exposes to the
//          output interpreter.
// Usage: Driven by the feed package; all writes land on this session's grid
//        with the session's current attributes.

package screen

// WriteRune stores one character at the cursor using the session attributes,
// advancing and wrapping like program output does.
func (s *Session) WriteRune(r rune) {
	s.grid.WriteCell(r, s.attrs)
}

// WriteString writes each rune of the string in order.
func (s *Session) WriteString(str string) {
	for _, r := range str {
		s.WriteRune(r)
	}
}

// LineFeed moves the cursor down one row, scrolling the buffer when the
// cursor is already on the last row.
func (s *Session) LineFeed() {
	cur := s.grid.Cursor().Pos
	if cur.Y >= s.grid.Size().Height-1 {
		s.grid.scrollOne()
		return
	}
	s.grid.SetCursorPos(Coord{X: cur.X, Y: cur.Y + 1})
}

// CarriageReturn moves the cursor to the first column.
func (s *Session) CarriageReturn() {
	cur := s.grid.Cursor().Pos
	s.grid.SetCursorPos(Coord{X: 0, Y: cur.Y})
}

// Backspace moves the cursor one column left, stopping at the edge.
func (s *Session) Backspace() {
	cur := s.grid.Cursor().Pos
	if cur.X > 0 {
		s.grid.SetCursorPos(Coord{X: cur.X - 1, Y: cur.Y})
	}
}

// AddTabStop sets a tab stop in the given column. Columns outside the buffer
// are rejected with ErrInvalidParameter.
func (s *Session) AddTabStop(col int) error {
	if col < 0 || col >= s.grid.Size().Width {
		return ErrInvalidParameter
	}
	s.tabs.Add(col)
	return nil
}

// ClearTabStops removes every tab stop.
func (s *Session) ClearTabStops() {
	s.tabs.Clear()
}

// ClearTabStop removes the stop at the given column if one exists.
func (s *Session) ClearTabStop(col int) {
	s.tabs.Remove(col)
}

// AreTabsSet reports whether any tab stop exists.
func (s *Session) AreTabsSet() bool {
	return !s.tabs.Empty()
}

// ForwardTab returns where the cursor lands after a forward tab from pos.
func (s *Session) ForwardTab(pos Coord) Coord {
	next := s.tabs.ForwardTab(pos, s.grid.Size().Width)
	return s.ClampCoord(next)
}

// ReverseTab returns where the cursor lands after a backward tab from pos.
func (s *Session) ReverseTab(pos Coord) Coord {
	return s.tabs.ReverseTab(pos)
}

// Tab moves the cursor to the next forward tab position.
func (s *Session) Tab() {
	s.grid.SetCursorPos(s.ForwardTab(s.grid.Cursor().Pos))
}

// BackTab moves the cursor to the previous tab position.
func (s *Session) BackTab() {
	s.grid.SetCursorPos(s.ReverseTab(s.grid.Cursor().Pos))
}

// SetScrollMargins stores the scrolling region rectangle. Only the top and
// bottom edges are honored by scrolling operations.
func (s *Session) SetScrollMargins(margins Rect) {
	s.scrollMargins = margins
}

// ScrollMargins returns the stored scrolling region.
func (s *Session) ScrollMargins() Rect {
	return s.scrollMargins
}
