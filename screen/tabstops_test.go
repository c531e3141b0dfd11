// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/tabstops_test.go
// Summary: Tests for tab stop ordering, tabbing movement and edge columns.
// Usage: Run with `go test` to validate tab stop behavior.

package screen

import "testing"

// TestTabStopOrdering verifies stops stay ascending and deduplicated no
// matter the insertion order.
func TestTabStopOrdering(t *testing.T) {
	ts := NewTabStops()
	for _, col := range []int{24, 8, 16, 8, 24} {
		ts.Add(col)
	}

	got := ts.Columns()
	want := []int{8, 16, 24}
	if len(got) != len(want) {
		t.Fatalf("expected %d stops, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stop %d: expected column %d, got %d", i, want[i], got[i])
		}
	}
}

// TestForwardTab verifies forward tab movement against stops at 8, 16, 24.
func TestForwardTab(t *testing.T) {
	ts := NewTabStops()
	ts.Add(8)
	ts.Add(16)
	ts.Add(24)

	const width = 80

	cases := []struct {
		from Coord
		want Coord
	}{
		{Coord{X: 10, Y: 5}, Coord{X: 16, Y: 5}},
		{Coord{X: 0, Y: 2}, Coord{X: 8, Y: 2}},
		{Coord{X: 8, Y: 0}, Coord{X: 16, Y: 0}},
		{Coord{X: 30, Y: 1}, Coord{X: 79, Y: 1}}, // past last stop
		{Coord{X: 79, Y: 3}, Coord{X: 0, Y: 4}},  // last column wraps
	}
	for _, tc := range cases {
		if got := ts.ForwardTab(tc.from, width); got != tc.want {
			t.Errorf("ForwardTab(%v): expected %v, got %v", tc.from, tc.want, got)
		}
	}
}

// TestForwardTabNoStops verifies the cursor moves to the last column when no
// stop remains ahead.
func TestForwardTabNoStops(t *testing.T) {
	ts := NewTabStops()
	if got := ts.ForwardTab(Coord{X: 10, Y: 0}, 40); got.X != 39 {
		t.Errorf("expected column 39 with no stops, got %d", got.X)
	}
}

// TestReverseTab verifies backward tab movement.
func TestReverseTab(t *testing.T) {
	ts := NewTabStops()
	ts.Add(8)
	ts.Add(16)

	cases := []struct {
		from Coord
		want Coord
	}{
		{Coord{X: 20, Y: 1}, Coord{X: 16, Y: 1}},
		{Coord{X: 16, Y: 0}, Coord{X: 8, Y: 0}},
		{Coord{X: 8, Y: 2}, Coord{X: 0, Y: 2}},  // first stop at or past cursor
		{Coord{X: 0, Y: 3}, Coord{X: 0, Y: 3}},  // already at the left edge
	}
	for _, tc := range cases {
		if got := ts.ReverseTab(tc.from); got != tc.want {
			t.Errorf("ReverseTab(%v): expected %v, got %v", tc.from, tc.want, got)
		}
	}
}

// TestReverseTabNoStops verifies reverse tab falls back to column zero.
func TestReverseTabNoStops(t *testing.T) {
	ts := NewTabStops()
	if got := ts.ReverseTab(Coord{X: 25, Y: 4}); got.X != 0 || got.Y != 4 {
		t.Errorf("expected (0, 4), got %v", got)
	}
}

// TestRemoveAndClear verifies removal of individual stops and full clears.
func TestRemoveAndClear(t *testing.T) {
	ts := NewTabStops()
	ts.Add(8)
	ts.Add(16)
	ts.Remove(8)
	ts.Remove(99) // absent column is a no-op

	if got := ts.Columns(); len(got) != 1 || got[0] != 16 {
		t.Fatalf("expected [16] after removal, got %v", got)
	}

	ts.Clear()
	if !ts.Empty() {
		t.Error("expected no stops after Clear")
	}
}

// TestSessionTabStopBounds verifies the session rejects stops outside the
// buffer.
func TestSessionTabStopBounds(t *testing.T) {
	s := NewSession(Size{Width: 40, Height: 10}, Size{Width: 40, Height: 10})

	if err := s.AddTabStop(40); err != ErrInvalidParameter {
		t.Errorf("expected ErrInvalidParameter for column 40, got %v", err)
	}
	if err := s.AddTabStop(-1); err != ErrInvalidParameter {
		t.Errorf("expected ErrInvalidParameter for column -1, got %v", err)
	}
	if err := s.AddTabStop(39); err != nil {
		t.Errorf("expected column 39 to be accepted, got %v", err)
	}
}
