// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/viewport.go
// Summary: Implements viewport sizing, placement and cursor tracking for a
//          session.
// Usage: Driven by the window layer on resize and scroll events.
// Notes: The viewport rectangle is inclusive and is re-clamped inside the
//        buffer at the end of every sizing operation.

package screen

// SetViewportSize resizes the viewport anchored at its top-left corner, the
// way a drag of the bottom-right window corner behaves.
func (s *Session) SetViewportSize(size Size) {
	s.setViewportSize(size, false, false)
}

// SetViewportSizeAnchored resizes the viewport, growing or trimming the top
// edge when fromTop is set and the left edge when fromLeft is set; otherwise
// the bottom and right edges move.
func (s *Session) SetViewportSizeAnchored(size Size, fromLeft, fromTop bool) {
	s.setViewportSize(size, fromLeft, fromTop)
}

func (s *Session) setViewportSize(size Size, fromLeft, fromTop bool) {
	deltaX := size.Width - s.viewport.Width()
	deltaY := size.Height - s.viewport.Height()
	bufSize := s.grid.Size()
	vp := &s.viewport

	if fromLeft {
		// Sized from the left border: eat into the columns to the left
		// of the window while any remain.
		leftProposed := vp.Left - deltaX
		if leftProposed >= 0 {
			vp.Left -= deltaX
		} else {
			vp.Left = 0
			vp.Right += -leftProposed
		}
	} else {
		rightProposed := vp.Right + deltaX
		if rightProposed <= bufSize.Width-1 {
			vp.Right += deltaX
		} else {
			vp.Right = bufSize.Width - 1
			vp.Left -= rightProposed - (bufSize.Width - 1)
		}
	}

	if fromTop {
		topProposed := vp.Top - deltaY
		if topProposed >= 0 {
			// Anchored at row zero the top stays stuck to the buffer
			// start; trim the bottom instead of sliding rows down.
			if vp.Top > 0 {
				vp.Top -= deltaY
			} else {
				vp.Bottom += deltaY
			}
		} else {
			vp.Top = 0
			vp.Bottom += -topProposed
		}
	} else {
		bottomProposed := vp.Bottom + deltaY
		if bottomProposed <= bufSize.Height-1 {
			// Shrinking from the bottom must not collapse the window
			// over the last line of meaningful text, typically the
			// shell prompt. Slide the top edge up instead.
			if bottomProposed < s.validTextEnd().Y {
				vp.Top -= deltaY
				if vp.Top < 0 {
					// Ran out of rows above; give the prompt
					// line up after all.
					vp.Bottom -= vp.Top
					vp.Top = 0
				}
			} else {
				vp.Bottom += deltaY
			}
		} else {
			vp.Bottom = bufSize.Height - 1
			vp.Top -= bottomProposed - (bufSize.Height - 1)
		}
	}

	// Push the rectangle back inside the buffer, preserving its size where
	// room allows.
	if vp.Left < 0 {
		vp.Right -= vp.Left
		vp.Left = 0
	}
	if vp.Top < 0 {
		vp.Bottom -= vp.Top
		vp.Top = 0
	}
	vp.Right = min(vp.Right, bufSize.Width-1)
	vp.Bottom = min(vp.Bottom, bufSize.Height-1)

	s.notifyViewport()
}

// SetViewportOrigin moves the viewport without resizing it. With absolute
// set, origin names the new top-left corner; otherwise it is a delta from the
// current corner and a zero delta succeeds without effect. An origin that
// would push any part of the viewport outside the buffer is rejected with
// ErrInvalidParameter.
func (s *Session) SetViewportOrigin(absolute bool, origin Coord) error {
	size := s.viewport.Size()

	var next Rect
	if !absolute {
		if origin.X == 0 && origin.Y == 0 {
			return nil
		}
		next.Left = s.viewport.Left + origin.X
		next.Top = s.viewport.Top + origin.Y
	} else {
		if origin.X == s.viewport.Left && origin.Y == s.viewport.Top {
			return nil
		}
		next.Left = origin.X
		next.Top = origin.Y
	}
	next.Right = next.Left + size.Width - 1
	next.Bottom = next.Top + size.Height - 1

	bufSize := s.grid.Size()
	if next.Left < 0 || next.Top < 0 ||
		next.Right >= bufSize.Width || next.Bottom >= bufSize.Height {
		return ErrInvalidParameter
	}

	s.viewport = next
	s.notifyViewport()
	return nil
}

// SetViewportRect replaces the viewport rectangle outright, shifting a
// rectangle with a negative corner back to the origin and clamping the far
// edges inside the buffer. Setting the current rectangle is a no-op.
func (s *Session) SetViewportRect(r Rect) {
	if r == s.viewport {
		return
	}
	if r.Left < 0 {
		r.Right -= r.Left
		r.Left = 0
	}
	if r.Top < 0 {
		r.Bottom -= r.Top
		r.Top = 0
	}
	bufSize := s.grid.Size()
	r.Right = min(r.Right, bufSize.Width-1)
	r.Bottom = min(r.Bottom, bufSize.Height-1)
	s.viewport = r
	s.notifyViewport()
}

// MakeCursorVisible scrolls the viewport by the smallest translation that
// brings the given position into view. A position already visible moves
// nothing.
func (s *Session) MakeCursorVisible(pos Coord) {
	var delta Coord
	switch {
	case pos.X > s.viewport.Right:
		delta.X = pos.X - s.viewport.Right
	case pos.X < s.viewport.Left:
		delta.X = pos.X - s.viewport.Left
	}
	switch {
	case pos.Y > s.viewport.Bottom:
		delta.Y = pos.Y - s.viewport.Bottom
	case pos.Y < s.viewport.Top:
		delta.Y = pos.Y - s.viewport.Top
	}
	if delta.X != 0 || delta.Y != 0 {
		// The delta cannot leave the buffer, so the move always lands.
		_ = s.SetViewportOrigin(false, delta)
	}
}

// MakeCurrentCursorVisible scrolls the cursor's own position into view.
func (s *Session) MakeCurrentCursorVisible() {
	s.MakeCursorVisible(s.grid.Cursor().Pos)
}

// IsMaximizedX reports whether the viewport spans every buffer column.
func (s *Session) IsMaximizedX() bool {
	return s.viewport.Left == 0 && s.viewport.Right+1 == s.grid.Size().Width
}

// IsMaximizedY reports whether the viewport spans every buffer row.
func (s *Session) IsMaximizedY() bool {
	return s.viewport.Top == 0 && s.viewport.Bottom+1 == s.grid.Size().Height
}

// IsMaximizedBoth reports whether the viewport covers the whole buffer.
func (s *Session) IsMaximizedBoth() bool {
	return s.IsMaximizedX() && s.IsMaximizedY()
}

// adjustViewportSize resizes the viewport to the requested dimensions,
// picking the anchored edges from which sides of the client area moved. Only
// a left- or top-only change anchors that edge; otherwise the top-left
// corner stays put and the bottom-right adapts.
func (s *Session) adjustViewportSize(clientNew, clientOld PixelRect, size Size) {
	fromLeft := clientNew.Left != clientOld.Left && clientNew.Right == clientOld.Right
	fromTop := clientNew.Top != clientOld.Top && clientNew.Bottom == clientOld.Bottom
	s.setViewportSize(size, fromLeft, fromTop)
}
