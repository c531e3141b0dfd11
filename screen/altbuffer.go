// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/altbuffer.go
// Summary: Implements the alternate screen buffer lifecycle and the window
//          resize entry point that coordinates both buffers.
// Usage: Driven by the output interpreter on alternate screen sequences and
//        by the window layer on client area changes.
// Notes: A main session owns at most one alternate; entering while one is
//        live replaces it so the caller keeps a single handle throughout.

package screen

// IsAltBuffer reports whether this session is an alternate buffer.
func (s *Session) IsAltBuffer() bool {
	return s.main != nil
}

// ActiveBuffer returns the session currently meant for display: the
// alternate when one exists, otherwise this session.
func (s *Session) ActiveBuffer() *Session {
	if s.alt != nil {
		return s.alt
	}
	return s
}

// MainBuffer returns the owning main session, or the session itself when it
// is already a main buffer.
func (s *Session) MainBuffer() *Session {
	if s.main != nil {
		return s.main
	}
	return s
}

// createAltBuffer allocates a session sized exactly to the viewport, sharing
// this session's processor, fill and font.
func (s *Session) createAltBuffer() *Session {
	alt := NewSession(s.viewport.Size(), s.viewport.Size(),
		WithFill(s.attrs),
		WithPopupFill(s.popupAttrs),
		WithFontCell(s.fontCell),
		WithScrollBarPixels(s.hScrollPx, s.vScrollPx),
	)
	alt.proc = s.proc
	alt.wrapText = s.wrapText
	return alt
}

// EnterAlternate creates a fresh alternate buffer and makes it the active
// one, rebinding the shared processor to it. Calling it while an alternate
// is already live discards the old alternate first, so an application can
// hold one session handle across repeated switches.
func (s *Session) EnterAlternate() *Session {
	main := s.MainBuffer()

	// A window resize that happened while an old alternate was displayed
	// has not reached the main buffer yet; replay it before sizing the
	// new alternate off the main viewport.
	if main.altWindowChanged {
		saveNew, saveOld := main.altClientNew, main.altClientOld
		main.altWindowChanged = false
		main.ProcessResizeWindow(saveNew, saveOld)
	}

	alt := main.createAltBuffer()
	oldAlt := main.alt
	alt.main = main
	main.alt = alt

	if oldAlt != nil {
		oldAlt.main = nil
	}
	if main.proc != nil {
		main.proc.bind(alt)
	}

	alt.notifyBufferSize()
	logDebugf("alternate buffer entered: %dx%d", alt.grid.Size().Width, alt.grid.Size().Height)
	return alt
}

// ExitAlternate restores the main buffer as the active one and discards the
// alternate. Called on a session with no alternate relationship it is a
// no-op returning the session itself.
func (s *Session) ExitAlternate() *Session {
	main := s.main
	if main == nil {
		return s
	}

	if main.altWindowChanged {
		saveNew, saveOld := main.altClientNew, main.altClientOld
		main.altWindowChanged = false
		main.ProcessResizeWindow(saveNew, saveOld)
	}

	alt := main.alt
	main.alt = nil
	if alt != nil {
		alt.main = nil
	}
	if main.proc != nil {
		main.proc.bind(main)
	}

	main.notifyScrollBars()
	main.notifyBufferSize()
	logDebugf("alternate buffer exited")
	return main
}

// ProcessResizeWindow reacts to a change of the window client area: the
// backing buffer is adjusted first, then the viewport is recomputed and
// resized from whichever edges moved, and finally the scroll bars update.
// On an alternate buffer the client rectangles are also stashed on the main
// buffer so the main catches up when it is restored.
func (s *Session) ProcessResizeWindow(clientNew, clientOld PixelRect) {
	if s.IsAltBuffer() {
		// Stored on the main so alt -> resize -> new alt keeps it too.
		s.main.altWindowChanged = true
		s.main.altClientNew = clientNew
		s.main.altClientOld = clientOld
	}

	s.adjustScreenBuffer(clientNew)

	size := s.CalculateViewportSize(clientNew)
	s.adjustViewportSize(clientNew, clientOld, size)

	s.notifyScrollBars()
}

// adjustScreenBuffer re-dimensions the backing buffer for a new client area.
// A wrapping session pins the buffer width to the window; an alternate
// buffer pins both dimensions; any buffer grows to fill a window larger
// than it, since shrinking the window never discards scrollback.
func (s *Session) adjustScreenBuffer(clientNew PixelRect) {
	// The main buffer's size decides scroll bar visibility even when the
	// alternate is displayed.
	bufferOld := s.grid.Size()
	if s.IsAltBuffer() {
		bufferOld = s.main.grid.Size()
	}
	bufferNew := bufferOld

	clientChars := s.clientCharacters(clientNew, bufferOld)
	if s.wrapText {
		bufferNew.Width = clientChars.Width
	}

	// Recheck with the width pinned; fixing the edge may have changed
	// which scroll bars appear.
	clientChars = s.clientCharacters(clientNew, bufferNew)

	if s.IsAltBuffer() {
		// Exactly the window size, never more or less, so shrinking
		// after growing cannot strand scroll bars.
		bufferNew = clientChars
	} else {
		bufferNew.Width = max(bufferNew.Width, clientChars.Width)
		bufferNew.Height = max(bufferNew.Height, clientChars.Height)
	}

	if bufferNew != bufferOld && bufferNew.Width > 0 && bufferNew.Height > 0 {
		cursor := s.grid.Cursor()
		s.grid.SetCursorStyle(cursor.Size, false)
		if err := s.ResizeScreenBuffer(bufferNew, false); err != nil {
			logDebugf("window buffer adjust rejected: %v", err)
		}
		s.grid.SetCursorStyle(cursor.Size, cursor.Visible)
	}
}
