// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/geometry.go
// Summary: Implements coordinate, size and rectangle types for the screen buffer module.
// Usage: Consumed by every component that positions cells or windows.
// Notes: Character-cell rectangles are inclusive on all four edges; pixel
//        rectangles are exclusive on the right and bottom.

package screen

// MaxBufferDim is the largest width or height a screen buffer may take.
const MaxBufferDim = 0x7FFF

// Coord is a character-cell position. X is the column, Y the row.
type Coord struct {
	X, Y int
}

// Size is a width/height pair measured in character cells.
type Size struct {
	Width, Height int
}

// Rect is a character-cell rectangle with inclusive edges, so a rectangle
// covering a single cell has Left == Right and Top == Bottom.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the number of columns the rectangle covers.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the number of rows the rectangle covers.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Contains reports whether the coordinate lies inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Top && c.Y <= r.Bottom
}

// PixelRect is a client-area rectangle in pixels, exclusive on the right and
// bottom edges the way window systems report them.
type PixelRect struct {
	Left, Top, Right, Bottom int
}

// Width returns the pixel width of the rectangle.
func (r PixelRect) Width() int {
	return r.Right - r.Left
}

// Height returns the pixel height of the rectangle.
func (r PixelRect) Height() int {
	return r.Bottom - r.Top
}

// PixelSize is a width/height pair measured in pixels.
type PixelSize struct {
	X, Y int
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
