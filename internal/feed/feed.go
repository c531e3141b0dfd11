// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/feed/feed.go
// Summary: Implements the program output feed that drives a screen session.
// Usage: Wrapped in a screen.Processor; Write consumes raw PTY bytes.
// Notes: Only the control functions the screen layer models are acted on;
//        unrecognized escape sequences are consumed and dropped.

package feed

import (
	"log"
	"unicode/utf8"

	"github.com/framegrace/texelhost/screen"
)

type state int

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateOSC
)

// Feed decodes a byte stream of program output into screen session
// operations. It implements screen.Interpreter, so a processor can retarget
// it when the alternate buffer switches.
type Feed struct {
	sess  *screen.Session
	state state

	params       []int
	currentParam int
	private      bool
	pending      []byte // partial UTF-8 sequence across Write calls
}

// New returns a feed driving the given session.
func New(s *screen.Session) *Feed {
	return &Feed{
		sess:   s,
		params: make([]int, 0, 16),
	}
}

// SetSession retargets the feed. The processor calls this when the active
// buffer changes.
func (f *Feed) SetSession(s *screen.Session) {
	f.sess = s
}

// Session returns the session currently driven.
func (f *Feed) Session() *screen.Session {
	return f.sess
}

// Write consumes raw output bytes. It never fails; undecodable bytes are
// dropped.
func (f *Feed) Write(p []byte) (int, error) {
	data := p
	if len(f.pending) > 0 {
		data = append(f.pending, p...)
		f.pending = nil
	}
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 && !utf8.FullRune(data) {
			// Partial rune at the tail; keep it for the next write.
			f.pending = append(f.pending, data...)
			break
		}
		f.consume(r)
		data = data[size:]
	}
	return len(p), nil
}

func (f *Feed) consume(r rune) {
	switch f.state {
	case stateGround:
		f.ground(r)
	case stateEscape:
		f.escape(r)
	case stateCSI:
		f.csi(r)
	case stateOSC:
		if r == '\x07' {
			f.state = stateGround
		} else if r == '\x1b' {
			// Terminated by BEL or ESC \; either way the payload is
			// not ours to interpret.
			f.state = stateEscape
		}
	}
}

func (f *Feed) ground(r rune) {
	switch r {
	case '\x1b':
		f.state = stateEscape
	case '\n':
		f.sess.LineFeed()
	case '\r':
		f.sess.CarriageReturn()
	case '\b':
		f.sess.Backspace()
	case '\t':
		f.sess.Tab()
	default:
		if r >= ' ' {
			f.sess.WriteRune(r)
		}
	}
}

func (f *Feed) escape(r rune) {
	switch r {
	case '[':
		f.state = stateCSI
		f.params = f.params[:0]
		f.currentParam = 0
		f.private = false
	case ']':
		f.state = stateOSC
	case 'H':
		// HTS: set a tab stop at the cursor column.
		if err := f.sess.AddTabStop(f.sess.CursorPosition().X); err != nil {
			log.Printf("feed: tab stop rejected: %v", err)
		}
		f.state = stateGround
	case '\\':
		f.state = stateGround
	default:
		f.state = stateGround
	}
}

func (f *Feed) csi(r rune) {
	switch {
	case r >= '0' && r <= '9':
		f.currentParam = f.currentParam*10 + int(r-'0')
	case r == ';':
		f.params = append(f.params, f.currentParam)
		f.currentParam = 0
	case r >= '<' && r <= '?':
		f.private = true
	case r >= '@' && r <= '~':
		f.params = append(f.params, f.currentParam)
		f.dispatchCSI(r)
		f.state = stateGround
	}
}

func (f *Feed) dispatchCSI(final rune) {
	switch final {
	case 'g':
		// TBC: 0 clears the stop under the cursor, 3 clears them all.
		switch f.param(0, 0) {
		case 0:
			f.sess.ClearTabStop(f.sess.CursorPosition().X)
		case 3:
			f.sess.ClearTabStops()
		}
	case 'Z':
		f.sess.BackTab()
	case 'h':
		if f.private && f.param(0, 0) == 1049 {
			f.sess = f.sess.EnterAlternate()
		}
	case 'l':
		if f.private && f.param(0, 0) == 1049 {
			f.sess = f.sess.ExitAlternate()
		}
	case 'r':
		if !f.private && len(f.params) >= 2 {
			f.sess.SetScrollMargins(screen.Rect{
				Top:    f.param(0, 1) - 1,
				Bottom: f.param(1, 1) - 1,
			})
		}
	}
}

func (f *Feed) param(i, def int) int {
	if i >= len(f.params) || f.params[i] == 0 {
		return def
	}
	return f.params[i]
}
