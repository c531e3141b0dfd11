// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/scrollbar_test.go
// Summary: Tests for scroll bar visibility and window metric conversions.
// Usage: Run with `go test`.

package screen

import "testing"

// TestScrollbarVisibilityCascade verifies one bar can force the other.
func TestScrollbarVisibilityCascade(t *testing.T) {
	font := Size{Width: 8, Height: 16}

	// Buffer fits horizontally with room to spare; vertical bar alone.
	h, v := CalculateScrollbarVisibility(clientRect(800, 600), Size{Width: 80, Height: 300}, font, 16, 16)
	if h || !v {
		t.Errorf("expected vertical bar only, got h=%v v=%v", h, v)
	}

	// Buffer exactly fits horizontally, but the vertical bar steals the
	// space and drags the horizontal bar in with it.
	h, v = CalculateScrollbarVisibility(clientRect(640, 600), Size{Width: 80, Height: 300}, font, 16, 16)
	if !h || !v {
		t.Errorf("expected both bars after cascade, got h=%v v=%v", h, v)
	}

	// Everything fits: no bars.
	h, v = CalculateScrollbarVisibility(clientRect(800, 600), Size{Width: 80, Height: 24}, font, 16, 16)
	if h || v {
		t.Errorf("expected no bars, got h=%v v=%v", h, v)
	}
}

// TestScrollBarSizesInCharacters verifies partially covered cells round up.
func TestScrollBarSizesInCharacters(t *testing.T) {
	s := NewSession(Size{Width: 80, Height: 24}, Size{Width: 80, Height: 24},
		WithFontCell(Size{Width: 10, Height: 12}),
		WithScrollBarPixels(16, 16),
	)
	got := s.ScrollBarSizesInCharacters()
	if got.Width != 2 || got.Height != 2 {
		t.Errorf("expected 2x2 cell cost, got %+v", got)
	}
}

// TestCalculateViewportSize verifies bar space is carved out of the client
// area before converting to characters.
func TestCalculateViewportSize(t *testing.T) {
	s := NewSession(Size{Width: 80, Height: 300}, Size{Width: 80, Height: 24},
		WithFontCell(Size{Width: 8, Height: 16}),
		WithScrollBarPixels(16, 16),
	)
	// 300 rows never fit: the vertical bar consumes 16px of width.
	got := s.CalculateViewportSize(clientRect(656, 384))
	if got.Width != 80 || got.Height != 24 {
		t.Errorf("expected 80x24 viewport, got %+v", got)
	}
}

// TestMaxWindowSizeInCharacters verifies the buffer caps the largest window.
func TestMaxWindowSizeInCharacters(t *testing.T) {
	s := NewSession(Size{Width: 80, Height: 24}, Size{Width: 80, Height: 24},
		WithFontCell(Size{Width: 8, Height: 16}),
	)
	got := s.MaxWindowSizeInCharacters(clientRect(1920, 1080))
	if got.Width != 80 || got.Height != 24 {
		t.Errorf("expected window capped at 80x24, got %+v", got)
	}
}

// TestRequiredSizeInPixels verifies the viewport's pixel footprint.
func TestRequiredSizeInPixels(t *testing.T) {
	s := NewSession(Size{Width: 80, Height: 100}, Size{Width: 80, Height: 24},
		WithFontCell(Size{Width: 8, Height: 16}),
	)
	got := s.RequiredSizeInPixels()
	if got.X != 640 || got.Y != 384 {
		t.Errorf("expected 640x384 pixels, got %+v", got)
	}
}
