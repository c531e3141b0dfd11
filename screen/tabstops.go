// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/tabstops.go
// Summary: Implements the tab stop set used for forward and reverse tabbing.
// Usage: Consumed by the session; columns are kept sorted and deduplicated.

package screen

import "sort"

// TabStops holds the columns carrying a tab stop, in ascending order with no
// duplicates.
type TabStops struct {
	cols []int
}

// NewTabStops returns an empty set.
func NewTabStops() *TabStops {
	return &TabStops{}
}

// Add inserts a stop at the given column. Adding an existing column is a
// no-op, so the set stays strictly ascending.
func (t *TabStops) Add(col int) {
	i := sort.SearchInts(t.cols, col)
	if i < len(t.cols) && t.cols[i] == col {
		return
	}
	t.cols = append(t.cols, 0)
	copy(t.cols[i+1:], t.cols[i:])
	t.cols[i] = col
}

// Remove deletes the stop at the given column if present.
func (t *TabStops) Remove(col int) {
	i := sort.SearchInts(t.cols, col)
	if i >= len(t.cols) || t.cols[i] != col {
		return
	}
	t.cols = append(t.cols[:i], t.cols[i+1:]...)
}

// Clear removes every stop.
func (t *TabStops) Clear() {
	t.cols = nil
}

// Empty reports whether no stops are set.
func (t *TabStops) Empty() bool {
	return len(t.cols) == 0
}

// Columns returns the stops in ascending order. The slice is shared; callers
// must not modify it.
func (t *TabStops) Columns() []int {
	return t.cols
}

// Next returns the first stop strictly after col, or -1 when there is none.
func (t *TabStops) Next(col int) int {
	i := sort.SearchInts(t.cols, col+1)
	if i == len(t.cols) {
		return -1
	}
	return t.cols[i]
}

// Prev returns the last stop strictly before col, or -1 when there is none.
func (t *TabStops) Prev(col int) int {
	i := sort.SearchInts(t.cols, col)
	if i == 0 {
		return -1
	}
	return t.cols[i-1]
}

// ForwardTab computes the cursor position after a forward tab from pos on a
// buffer of the given width. From the last column the cursor moves to the
// start of the next row; otherwise it moves to the next stop, or the last
// column when no stop remains.
func (t *TabStops) ForwardTab(pos Coord, width int) Coord {
	if pos.X == width-1 {
		return Coord{X: 0, Y: pos.Y + 1}
	}
	if next := t.Next(pos.X); next >= 0 && next < width {
		return Coord{X: next, Y: pos.Y}
	}
	return Coord{X: width - 1, Y: pos.Y}
}

// ReverseTab computes the cursor position after a backward tab from pos. With
// no stop before the cursor the cursor moves to column zero.
func (t *TabStops) ReverseTab(pos Coord) Coord {
	if prev := t.Prev(pos.X); prev >= 0 {
		return Coord{X: prev, Y: pos.Y}
	}
	return Coord{X: 0, Y: pos.Y}
}
