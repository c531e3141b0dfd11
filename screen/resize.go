// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/resize.go
// Summary: Implements the traditional (clipping) buffer resize and the
//          resize entry point that dispatches between strategies.
// Usage: Called through Session.ResizeScreenBuffer and the window resize
//        path in ProcessResizeWindow.
// Notes: All new storage is allocated before the session is mutated, so a
//        rejected request leaves the buffer untouched.

package screen

// ResizeScreenBuffer changes the buffer dimensions, reflowing text when the
// session wraps and clipping columns otherwise. Any selection is cleared
// first and the size notification fires on success. updateScrollBars
// additionally fires the scroll bar hook, which window-driven resizes skip
// because they repaint anyway.
func (s *Session) ResizeScreenBuffer(newSize Size, updateScrollBars bool) error {
	s.clearSelection()

	var err error
	if s.wrapText {
		err = s.resizeWithReflow(newSize)
	} else {
		err = s.resizeTraditional(newSize)
	}
	if err != nil {
		return err
	}

	// Keep the viewport legal against the new edges.
	s.viewport = s.ClampRect(s.viewport)

	if updateScrollBars {
		s.notifyScrollBars()
	}
	s.notifyBufferSize()
	return nil
}

// resizeTraditional rebuilds the grid at the new dimensions, clipping or
// padding each row on the right and recycling rows off the top so the cursor
// row stays in the buffer. Horizontal growth extends each row's final
// attribute run; fresh rows take the fill attribute.
func (s *Session) resizeTraditional(newSize Size) error {
	if newSize.Width < 1 || newSize.Height < 1 ||
		newSize.Width >= MaxBufferDim || newSize.Height >= MaxBufferDim {
		return ErrInvalidParameter
	}

	oldSize := s.grid.Size()
	cursor := s.grid.Cursor()

	// When the cursor row would fall off the shrunken buffer, drop rows
	// from the top until it fits.
	topRow := 0
	if newSize.Height <= cursor.Pos.Y {
		topRow = cursor.Pos.Y - newSize.Height + 1
	}

	keepRows := min(oldSize.Height-topRow, newSize.Height)
	rows := make([]Row, newSize.Height)
	for i := 0; i < keepRows; i++ {
		rows[i] = *s.grid.Row(topRow + i)
		if newSize.Width != oldSize.Width {
			rows[i] = rows[i].resizedCopy(newSize.Width, s.grid.Fill())
		}
	}
	for i := keepRows; i < newSize.Height; i++ {
		rows[i] = newRow(newSize.Width, s.grid.Fill())
	}

	s.grid.rows = rows
	s.grid.firstRow = 0
	s.grid.size = newSize
	s.grid.cursor.Pos = Coord{
		X: clampInt(cursor.Pos.X, 0, newSize.Width-1),
		Y: clampInt(cursor.Pos.Y-topRow, 0, newSize.Height-1),
	}
	return nil
}
