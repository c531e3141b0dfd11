// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/reflow_test.go
// Summary: Tests for the reflowing buffer resize.
// Usage: Run with `go test` to validate rewrapping behavior.
// Notes: Covers forced-wrap splitting, round trips, cursor preservation and
//        viewport tracking.

package screen

import (
	"strings"
	"testing"
)

func newWrapSession(bufW, bufH int) *Session {
	return NewSession(Size{Width: bufW, Height: bufH},
		Size{Width: bufW, Height: min(bufH, 24)}, WithWrap(true))
}

// collectText rebuilds the logical text of the buffer, joining force-wrapped
// rows and separating authored lines with newlines.
func collectText(s *Session) string {
	g := s.Grid()
	last := g.LastNonSpace()
	var b strings.Builder
	for y := 0; y <= last.Y; y++ {
		b.WriteString(g.RowText(y))
		if !g.Row(y).WrapForced && y < last.Y {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// TestReflowSplitsForcedWrap verifies an 80-column force-wrapped line is
// rewrapped onto 40-column rows.
func TestReflowSplitsForcedWrap(t *testing.T) {
	s := newWrapSession(80, 30)
	text := strings.Repeat("x", 100)
	s.WriteString(text)

	if err := s.ResizeScreenBuffer(Size{Width: 40, Height: 30}, false); err != nil {
		t.Fatalf("reflow failed: %v", err)
	}

	g := s.Grid()
	if got := g.RowText(0); got != strings.Repeat("x", 40) {
		t.Errorf("expected 40 characters on first row, got %d", len(got))
	}
	if got := g.RowText(1); got != strings.Repeat("x", 40) {
		t.Errorf("expected 40 characters on second row, got %d", len(got))
	}
	if got := g.RowText(2); got != strings.Repeat("x", 20) {
		t.Errorf("expected 20 characters on third row, got %d", len(got))
	}
	if !g.Row(0).WrapForced || !g.Row(1).WrapForced {
		t.Error("rewrapped rows should carry the forced wrap flag")
	}
	if pos := g.Cursor().Pos; pos.X != 20 || pos.Y != 2 {
		t.Errorf("expected cursor at (20, 2), got %v", pos)
	}
}

// TestReflowJoinsOnWiden verifies widening rejoins lines that were only
// broken by the old width.
func TestReflowJoinsOnWiden(t *testing.T) {
	s := newWrapSession(40, 30)
	s.WriteString(strings.Repeat("y", 60))

	if err := s.ResizeScreenBuffer(Size{Width: 80, Height: 30}, false); err != nil {
		t.Fatalf("reflow failed: %v", err)
	}

	g := s.Grid()
	if got := g.RowText(0); got != strings.Repeat("y", 60) {
		t.Errorf("expected rejoined 60-character row, got %d characters", len(got))
	}
	if got := g.RowText(1); got != "" {
		t.Errorf("expected second row empty after rejoin, got %q", got)
	}
}

// TestReflowRoundTrip verifies narrow-then-wide reflow restores the original
// authored text.
func TestReflowRoundTrip(t *testing.T) {
	s := newWrapSession(80, 40)
	lines := []string{
		"first line of output",
		strings.Repeat("z", 95),
		"prompt $",
	}
	for i, line := range lines {
		s.WriteString(line)
		if i < len(lines)-1 {
			s.CarriageReturn()
			s.LineFeed()
		}
	}
	want := collectText(s)

	if err := s.ResizeScreenBuffer(Size{Width: 46, Height: 40}, false); err != nil {
		t.Fatalf("narrow reflow failed: %v", err)
	}
	if err := s.ResizeScreenBuffer(Size{Width: 80, Height: 40}, false); err != nil {
		t.Fatalf("widen reflow failed: %v", err)
	}

	if got := collectText(s); got != want {
		t.Errorf("expected round-tripped text %q, got %q", want, got)
	}
}

// TestReflowKeepsCursorOnCharacter verifies the cursor lands on the same
// character it sat on before the reflow.
func TestReflowKeepsCursorOnCharacter(t *testing.T) {
	s := newWrapSession(80, 30)
	s.WriteString(strings.Repeat("a", 70))
	s.WriteString("B")
	s.WriteString(strings.Repeat("c", 20)) // wraps onto row 1
	if err := s.SetCursorPosition(Coord{X: 70, Y: 0}); err != nil {
		t.Fatalf("place cursor: %v", err)
	}

	if err := s.ResizeScreenBuffer(Size{Width: 40, Height: 30}, false); err != nil {
		t.Fatalf("reflow failed: %v", err)
	}

	pos := s.CursorPosition()
	if got := s.Grid().Cell(pos).Rune; got != 'B' {
		t.Errorf("expected cursor on 'B' after reflow, got %q at %v", got, pos)
	}
}

// TestReflowCursorBeyondText verifies the replayed cursor gap when the
// cursor sits past the last character.
func TestReflowCursorBeyondText(t *testing.T) {
	s := newWrapSession(80, 30)
	s.WriteString("short")
	s.CarriageReturn()
	s.LineFeed()
	s.LineFeed()
	// Cursor two rows below the text on a blank line.
	cursorBefore := s.CursorPosition()

	if err := s.ResizeScreenBuffer(Size{Width: 60, Height: 30}, false); err != nil {
		t.Fatalf("reflow failed: %v", err)
	}

	pos := s.CursorPosition()
	if pos.Y != cursorBefore.Y {
		t.Errorf("expected cursor row %d preserved, got %d", cursorBefore.Y, pos.Y)
	}
}

// TestReflowKeepsCursorHeightInViewport verifies the viewport slides so the
// cursor keeps its row within the window.
func TestReflowKeepsCursorHeightInViewport(t *testing.T) {
	s := newWrapSession(80, 100)
	for i := 0; i < 40; i++ {
		s.WriteString(strings.Repeat("m", 80)) // each fills one row, forced wrap
	}
	s.MakeCurrentCursorVisible()
	vpBefore := s.Viewport()
	heightBefore := s.CursorPosition().Y - vpBefore.Top

	if err := s.ResizeScreenBuffer(Size{Width: 40, Height: 100}, false); err != nil {
		t.Fatalf("reflow failed: %v", err)
	}

	heightAfter := s.CursorPosition().Y - s.Viewport().Top
	if heightAfter != heightBefore {
		t.Errorf("expected cursor height in viewport %d preserved, got %d", heightBefore, heightAfter)
	}
}

// TestReflowWideCharacterPadding verifies the pad cell left by a wide
// character is not carried into the rewrapped text.
func TestReflowWideCharacterPadding(t *testing.T) {
	s := newWrapSession(5, 10)
	s.WriteString("abcd世") // pads column 4, wide char wraps to row 1

	if err := s.ResizeScreenBuffer(Size{Width: 10, Height: 10}, false); err != nil {
		t.Fatalf("reflow failed: %v", err)
	}

	if got := s.Grid().RowText(0); got != "abcd世" {
		t.Errorf("expected pad dropped on rejoin, got %q", got)
	}
}

// TestReflowCursorStyleSurvives verifies cursor size and visibility carry
// over to the rebuilt buffer.
func TestReflowCursorStyleSurvives(t *testing.T) {
	s := newWrapSession(80, 30)
	s.SetCursorInformation(50, false)

	if err := s.ResizeScreenBuffer(Size{Width: 60, Height: 30}, false); err != nil {
		t.Fatalf("reflow failed: %v", err)
	}
	cur := s.Grid().Cursor()
	if cur.Size != 50 || cur.Visible {
		t.Errorf("expected cursor style preserved, got %+v", cur)
	}
}
