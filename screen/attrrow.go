// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/attrrow.go
// Summary: Implements run-length encoded attribute storage for one grid row.
// Usage: Consumed by the grid and resize engines when coloring cells.
// Notes: Runs always cover the row exactly; Resize keeps that invariant.

package screen

type attrRun struct {
	attr   TextAttr
	length int
}

// AttrRow stores the text attributes of a single row as a run-length
// encoded list. The run lengths always sum to the row width.
type AttrRow struct {
	runs  []attrRun
	width int
}

// NewAttrRow returns a row of the given width filled with one attribute.
func NewAttrRow(width int, attr TextAttr) AttrRow {
	return AttrRow{
		runs:  []attrRun{{attr: attr, length: width}},
		width: width,
	}
}

// Width returns the number of cells the row covers.
func (a *AttrRow) Width() int {
	return a.width
}

// At returns the attribute applied to the given column. Columns outside the
// row report the attribute of the nearest edge run.
func (a *AttrRow) At(col int) TextAttr {
	remaining := col
	for _, run := range a.runs {
		if remaining < run.length {
			return run.attr
		}
		remaining -= run.length
	}
	return a.runs[len(a.runs)-1].attr
}

// Set applies an attribute to a single column, splitting and merging runs as
// needed. Columns outside the row are ignored.
func (a *AttrRow) Set(col int, attr TextAttr) {
	a.SetRange(col, col+1, attr)
}

// SetRange applies an attribute to the half-open column range [from, to).
func (a *AttrRow) SetRange(from, to int, attr TextAttr) {
	from = clampInt(from, 0, a.width)
	to = clampInt(to, 0, a.width)
	if from >= to {
		return
	}
	rebuilt := make([]attrRun, 0, len(a.runs)+2)
	pos := 0
	for _, run := range a.runs {
		start, end := pos, pos+run.length
		pos = end
		if end <= from || start >= to {
			rebuilt = appendRun(rebuilt, run.attr, run.length)
			continue
		}
		if start < from {
			rebuilt = appendRun(rebuilt, run.attr, from-start)
		}
		rebuilt = appendRun(rebuilt, attr, min(end, to)-max(start, from))
		if end > to {
			rebuilt = appendRun(rebuilt, run.attr, end-to)
		}
	}
	a.runs = rebuilt
}

// Resize changes the row width. Growth extends the final run with its own
// attribute; shrinking trims runs from the right.
func (a *AttrRow) Resize(newWidth int) {
	if newWidth < 1 {
		newWidth = 1
	}
	if newWidth > a.width {
		a.runs[len(a.runs)-1].length += newWidth - a.width
		a.width = newWidth
		return
	}
	remaining := newWidth
	trimmed := a.runs[:0]
	for _, run := range a.runs {
		if remaining <= 0 {
			break
		}
		if run.length > remaining {
			run.length = remaining
		}
		trimmed = append(trimmed, run)
		remaining -= run.length
	}
	a.runs = trimmed
	a.width = newWidth
}

// clone returns a deep copy safe to mutate independently.
func (a *AttrRow) clone() AttrRow {
	runs := make([]attrRun, len(a.runs))
	copy(runs, a.runs)
	return AttrRow{runs: runs, width: a.width}
}

func appendRun(runs []attrRun, attr TextAttr, length int) []attrRun {
	if length <= 0 {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].attr == attr {
		runs[n-1].length += length
		return runs
	}
	return append(runs, attrRun{attr: attr, length: length})
}
