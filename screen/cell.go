// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/cell.go
// Summary: Implements cell, color and attribute types for the screen buffer module.
// Usage: Consumed by the grid and resize engines when storing character data.
// Notes: Keeps storage concerns isolated from rendering.

package screen

import runewidth "github.com/mattn/go-runewidth"

type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrUnderline
	AttrReverse
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrReverse != 0 {
		parts = append(parts, "reverse")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // Default terminal color
	ColorModeStandard                  // The basic 8 ANSI colors
	ColorMode256                       // 256-color palette
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Holds the color code for Standard (0-7) and 256-mode (0-255)
	R, G, B uint8 // Holds the values for RGB mode
}

// TextAttr bundles the foreground, background and style flags applied to a cell.
type TextAttr struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// CellClass records how a cell participates in double-width character storage.
type CellClass uint8

const (
	ClassNarrow CellClass = iota // single-column character
	ClassLead                    // first column of a double-width character
	ClassTrail                   // second column of a double-width character
)

// Cell represents a single character cell taken out of the grid.
type Cell struct {
	Rune  rune
	Class CellClass
	Attr  TextAttr
}

// IsSpace reports whether the cell holds a blank narrow character.
func (c Cell) IsSpace() bool {
	return c.Class == ClassNarrow && (c.Rune == ' ' || c.Rune == 0)
}

// ClassifyRune returns the storage class for the leading cell of r.
// Trailing cells of wide characters are written as ClassTrail by the grid.
func ClassifyRune(r rune) CellClass {
	if runewidth.RuneWidth(r) == 2 {
		return ClassLead
	}
	return ClassNarrow
}

// --- Predefined default colors for convenience ---
var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}

	// DefaultAttr is the fill used for newly revealed cells when a session
	// does not override it.
	DefaultAttr = TextAttr{FG: DefaultFG, BG: DefaultBG}
)
