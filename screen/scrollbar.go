// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/scrollbar.go
// Summary: Implements scroll bar visibility and window metric calculations.
// Usage: Consumed by the window resize path and by hosts sizing their frame.
// Notes: Visibility is a two-step check, not a fixed point: showing one bar
//        may reveal the need for the other, and the second pass is final.

package screen

// CalculateScrollbarVisibility reports which scroll bars a client area needs
// to display the given buffer. Showing a bar consumes client space, which may
// force the other bar; the cascade is evaluated once in each direction and
// not iterated further.
func CalculateScrollbarVisibility(client PixelRect, buffer Size, font Size, hBarPx, vBarPx int) (horizontal, vertical bool) {
	clientW := client.Width()
	clientH := client.Height()
	bufferW := buffer.Width * font.Width
	bufferH := buffer.Height * font.Height

	if bufferW > clientW {
		horizontal = true
		clientH -= hBarPx
		if bufferH > clientH {
			vertical = true
		}
	} else if bufferH > clientH {
		vertical = true
		clientW -= vBarPx
		if bufferW > clientW {
			horizontal = true
		}
	}
	return horizontal, vertical
}

// ScrollbarVisibility reports which bars the session needs inside the given
// client area with its current buffer and font.
func (s *Session) ScrollbarVisibility(client PixelRect) (horizontal, vertical bool) {
	return CalculateScrollbarVisibility(client, s.grid.Size(), s.fontCell, s.hScrollPx, s.vScrollPx)
}

// clientCharacters converts a pixel client area into the character grid that
// fits once scroll bars for the given buffer size are carved out.
func (s *Session) clientCharacters(client PixelRect, buffer Size) Size {
	clientW := client.Width()
	clientH := client.Height()

	horizontal, vertical := CalculateScrollbarVisibility(client, buffer, s.fontCell, s.hScrollPx, s.vScrollPx)
	if horizontal {
		clientH -= s.hScrollPx
	}
	if vertical {
		clientW -= s.vScrollPx
	}
	return Size{
		Width:  clientW / s.fontCell.Width,
		Height: clientH / s.fontCell.Height,
	}
}

// CalculateViewportSize returns the viewport dimensions that consume all of
// the given client area, leaving room for whichever scroll bars the current
// buffer requires.
func (s *Session) CalculateViewportSize(client PixelRect) Size {
	return s.clientCharacters(client, s.grid.Size())
}

// ScrollBarSizesInCharacters returns how many character cells each scroll bar
// consumes, rounding partially covered cells up. Width is the vertical bar's
// cost in columns, Height the horizontal bar's cost in rows.
func (s *Session) ScrollBarSizesInCharacters() Size {
	out := Size{
		Width:  s.vScrollPx / s.fontCell.Width,
		Height: s.hScrollPx / s.fontCell.Height,
	}
	if s.vScrollPx%s.fontCell.Width != 0 {
		out.Width++
	}
	if s.hScrollPx%s.fontCell.Height != 0 {
		out.Height++
	}
	return out
}

// MinWindowSizeInCharacters converts the window system's minimum client area
// into character cells.
func (s *Session) MinWindowSizeInCharacters(minClient PixelRect) Size {
	return Size{
		Width:  minClient.Width() / s.fontCell.Width,
		Height: minClient.Height() / s.fontCell.Height,
	}
}

// LargestWindowSizeInCharacters converts the largest possible client area
// into character cells without regard to the buffer.
func (s *Session) LargestWindowSizeInCharacters(maxClient PixelRect) Size {
	return Size{
		Width:  maxClient.Width() / s.fontCell.Width,
		Height: maxClient.Height() / s.fontCell.Height,
	}
}

// MaxWindowSizeInCharacters limits the largest possible window by the buffer
// size; a window larger than the buffer has nothing more to show.
func (s *Session) MaxWindowSizeInCharacters(maxClient PixelRect) Size {
	largest := s.LargestWindowSizeInCharacters(maxClient)
	buf := s.grid.Size()
	return Size{
		Width:  min(buf.Width, largest.Width),
		Height: min(buf.Height, largest.Height),
	}
}

// RequiredSizeInPixels returns the pixel area the current viewport occupies.
func (s *Session) RequiredSizeInPixels() PixelSize {
	return PixelSize{
		X: s.viewport.Width() * s.fontCell.Width,
		Y: s.viewport.Height() * s.fontCell.Height,
	}
}
