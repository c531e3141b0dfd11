// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/resize_test.go
// Summary: Tests for the traditional clipping resize.
// Usage: Run with `go test` to validate resize behavior.
// Notes: Covers padding, clipping, cursor-preserving row shifts and input
//        validation.

package screen

import "testing"

func newTestSession(bufW, bufH int) *Session {
	return NewSession(Size{Width: bufW, Height: bufH}, Size{Width: bufW, Height: min(bufH, 24)})
}

// TestResizeTraditionalGrowWidth verifies an 80x24 buffer grown to 100x24
// keeps its text and pads new columns with blanks.
func TestResizeTraditionalGrowWidth(t *testing.T) {
	s := newTestSession(80, 24)
	s.WriteString("hello world")

	if err := s.ResizeScreenBuffer(Size{Width: 100, Height: 24}, false); err != nil {
		t.Fatalf("resize failed: %v", err)
	}

	if got := s.BufferSize(); got.Width != 100 || got.Height != 24 {
		t.Fatalf("expected 100x24 buffer, got %dx%d", got.Width, got.Height)
	}
	if got := s.Grid().RowText(0); got != "hello world" {
		t.Errorf("expected text preserved, got %q", got)
	}
	if cell := s.Grid().Cell(Coord{X: 95, Y: 0}); cell.Rune != ' ' {
		t.Errorf("expected padded cell to be blank, got %q", cell.Rune)
	}
}

// TestResizeTraditionalShrinkWidth verifies clipped columns are dropped and
// row measurements follow.
func TestResizeTraditionalShrinkWidth(t *testing.T) {
	s := newTestSession(80, 24)
	s.WriteString("abcdefghij")

	if err := s.ResizeScreenBuffer(Size{Width: 5, Height: 24}, false); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if got := s.Grid().RowText(0); got != "abcde" {
		t.Errorf("expected clipped text %q, got %q", "abcde", got)
	}
	if right := s.Grid().Row(0).Right; right != 5 {
		t.Errorf("expected row right bound 5, got %d", right)
	}
}

// TestResizeTraditionalShrinkHeightKeepsCursor verifies rows are dropped from
// the top so the cursor row survives, and the cursor follows its text.
func TestResizeTraditionalShrinkHeightKeepsCursor(t *testing.T) {
	s := newTestSession(80, 24)
	for i := 0; i < 21; i++ {
		s.WriteString("row")
		s.CarriageReturn()
		s.LineFeed()
	}
	s.WriteString("cursor row")
	cursorBefore := s.CursorPosition() // (10, 21)

	if err := s.ResizeScreenBuffer(Size{Width: 80, Height: 10}, false); err != nil {
		t.Fatalf("resize failed: %v", err)
	}

	cursorAfter := s.CursorPosition()
	if cursorAfter.X != cursorBefore.X {
		t.Errorf("expected cursor column unchanged, got %d", cursorAfter.X)
	}
	if cursorAfter.Y != 9 {
		t.Errorf("expected cursor on last row 9, got %d", cursorAfter.Y)
	}
	if got := s.Grid().RowText(cursorAfter.Y); got != "cursor row" {
		t.Errorf("expected cursor row text preserved, got %q", got)
	}
}

// TestResizeTraditionalGrowHeight verifies new bottom rows are blank with
// empty measurement bounds.
func TestResizeTraditionalGrowHeight(t *testing.T) {
	s := newTestSession(80, 10)
	s.WriteString("top")

	if err := s.ResizeScreenBuffer(Size{Width: 80, Height: 20}, false); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	for y := 10; y < 20; y++ {
		row := s.Grid().Row(y)
		if row.Right != 0 || row.Left != 80 {
			t.Errorf("row %d: expected blank measurement bounds, got left=%d right=%d", y, row.Left, row.Right)
		}
	}
	if got := s.Grid().RowText(0); got != "top" {
		t.Errorf("expected text preserved, got %q", got)
	}
}

// TestResizeRejectsBadSizes verifies dimension validation leaves the buffer
// untouched.
func TestResizeRejectsBadSizes(t *testing.T) {
	s := newTestSession(80, 24)
	s.WriteString("keep me")

	for _, size := range []Size{
		{Width: 0, Height: 24},
		{Width: 80, Height: 0},
		{Width: MaxBufferDim, Height: 24},
		{Width: 80, Height: MaxBufferDim},
	} {
		if err := s.ResizeScreenBuffer(size, false); err != ErrInvalidParameter {
			t.Errorf("size %+v: expected ErrInvalidParameter, got %v", size, err)
		}
	}

	if got := s.BufferSize(); got.Width != 80 || got.Height != 24 {
		t.Errorf("rejected resize must leave dimensions, got %+v", got)
	}
	if got := s.Grid().RowText(0); got != "keep me" {
		t.Errorf("rejected resize must leave content, got %q", got)
	}
}

// TestResizeClearsSelectionAndNotifies verifies the selection hook runs
// before the resize and the size hook after.
func TestResizeClearsSelectionAndNotifies(t *testing.T) {
	s := newTestSession(80, 24)

	var order []string
	s.ClearSelection = func() { order = append(order, "selection") }
	s.OnBufferSizeChange = func(Size) { order = append(order, "size") }

	if err := s.ResizeScreenBuffer(Size{Width: 90, Height: 24}, false); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if len(order) != 2 || order[0] != "selection" || order[1] != "size" {
		t.Errorf("expected selection hook before size hook, got %v", order)
	}
}

// TestResizeShrinksViewport verifies the viewport is re-clamped when the
// buffer shrinks under it.
func TestResizeShrinksViewport(t *testing.T) {
	s := NewSession(Size{Width: 80, Height: 100}, Size{Width: 80, Height: 24})
	if err := s.SetViewportOrigin(true, Coord{Y: 70}); err != nil {
		t.Fatalf("place viewport: %v", err)
	}

	if err := s.ResizeScreenBuffer(Size{Width: 80, Height: 50}, false); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	vp := s.Viewport()
	buf := s.BufferSize()
	if vp.Bottom >= buf.Height || vp.Top < 0 {
		t.Errorf("viewport %+v outside buffer %+v", vp, buf)
	}
}
