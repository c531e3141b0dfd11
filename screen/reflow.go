// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/reflow.go
// Summary: Implements the reflowing buffer resize that rewraps text at the
//          new width instead of clipping it.
// Usage: Selected by Session.ResizeScreenBuffer when the session wraps.
// Notes: Rebuilds into a fresh grid and swaps it in only on success, so the
//        session never observes a half-reflowed buffer.

package screen

// resizeWithReflow replays the old buffer's text into a new grid of the
// requested size, letting the write cursor rewrap lines that were only
// broken because they ran out of columns. The session cursor lands on the
// same character it sat on before, and the viewport slides so the cursor
// keeps its height within the window.
func (s *Session) resizeWithReflow(newSize Size) error {
	if newSize.Width < 1 || newSize.Height < 1 ||
		newSize.Width >= MaxBufferDim || newSize.Height >= MaxBufferDim {
		return ErrInvalidParameter
	}

	old := s.grid
	newGrid := NewGrid(newSize, old.Fill())

	cursorHeightBefore := old.Cursor().Pos.Y - s.viewport.Top

	oldCursor := old.Cursor().Pos
	oldLastChar := old.LastNonSpace()
	if oldLastChar.Y < 0 {
		oldLastChar = Coord{}
	}
	oldRowsTotal := oldLastChar.Y + 1
	oldCols := old.Size().Width

	var newCursor Coord
	foundCursor := false

	for oldRow := 0; oldRow < oldRowsTotal; oldRow++ {
		row := old.Row(oldRow)
		right := row.Right

		// A force-wrapped row carries its trailing spaces: the break was
		// not the author's, so every cell up to the width flowed into
		// the next line. A double-byte pad cell stays behind though; it
		// only existed to fill the column the wide character skipped.
		if row.WrapForced {
			right = oldCols
			if row.DoubleBytePadded {
				right--
			}
		}

		for oldCol := 0; oldCol < right; oldCol++ {
			if oldCol == oldCursor.X && oldRow == oldCursor.Y {
				newCursor = newGrid.Cursor().Pos
				foundCursor = true
			}
			if row.Classes[oldCol] == ClassTrail {
				continue
			}
			newGrid.WriteCell(row.Chars[oldCol], row.Attrs.At(oldCol))
		}

		// Rows the author ended early keep their line break. The final
		// row skips it so the cursor stays where printing finished.
		if right < oldCols && !row.WrapForced {
			if right == oldCursor.X && oldRow == oldCursor.Y {
				newCursor = newGrid.Cursor().Pos
				foundCursor = true
			}
			if oldRow < oldRowsTotal-1 {
				newGrid.NewlineCursor()
			}
		}
	}

	if foundCursor {
		newGrid.SetCursorPos(newCursor)
	} else {
		// The cursor sat beyond the last character. Replay the gap as
		// newlines and column steps against the new end of text.
		newlines := oldCursor.Y - oldLastChar.Y
		increments := oldCursor.X - oldLastChar.X
		newLastChar := newGrid.LastNonSpace()
		if newLastChar.Y < 0 {
			newLastChar = Coord{}
		}

		if newGrid.Row(newLastChar.Y).WrapForced {
			// The rewrapped text already moved the cursor a line down.
			newlines = max(newlines-1, 0)
		} else if oldLastChar.Y >= 0 && old.Row(oldLastChar.Y).WrapForced {
			// The old buffer wrapped where this one did not, so its
			// column delta counts one extra step.
			newlines = max(newlines-1, 0)
		}

		for r := 0; r < newlines; r++ {
			newGrid.NewlineCursor()
		}
		for c := 0; c < increments-1; c++ {
			newGrid.IncrementCursor()
		}
	}

	// Keep the cursor presentation the old buffer carried.
	oldStyle := old.Cursor()
	newGrid.SetCursorStyle(oldStyle.Size, oldStyle.Visible)

	// Slide the viewport so the cursor keeps its height in the window.
	cursorHeightAfter := newGrid.Cursor().Pos.Y - s.viewport.Top
	s.grid = newGrid
	if diff := cursorHeightAfter - cursorHeightBefore; diff != 0 {
		_ = s.SetViewportOrigin(false, Coord{Y: diff})
	}
	return nil
}
