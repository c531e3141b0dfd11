// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/session.go
// Summary: Implements the screen buffer session aggregating grid, viewport,
//          attributes, tab stops and the main/alternate pairing.
// Usage: Create with NewSession; drive it from an output interpreter and a
//        window layer. Callers serialize access through the embedded mutex.
// Notes: The alternate buffer is itself a Session owned by its main Session.

package screen

import "sync"

// Interpreter consumes raw program output and drives a session. The feed
// package provides the stock implementation; the interface lets a processor
// retarget whichever session is active.
type Interpreter interface {
	SetSession(*Session)
	Write(p []byte) (int, error)
}

// Processor bundles the output interpreter shared between a main session and
// its alternate. Exactly one session is bound at a time; switching buffers
// rebinds the processor instead of copying interpreter state.
type Processor struct {
	intp  Interpreter
	bound *Session
}

// NewProcessor wraps an interpreter. A nil interpreter is allowed; the
// processor then only tracks which session is active.
func NewProcessor(intp Interpreter) *Processor {
	return &Processor{intp: intp}
}

// BoundTo returns the session currently driven by the processor.
func (p *Processor) BoundTo() *Session {
	return p.bound
}

// Write feeds program output to the bound session's interpreter.
func (p *Processor) Write(b []byte) (int, error) {
	if p.intp == nil {
		return len(b), nil
	}
	return p.intp.Write(b)
}

func (p *Processor) bind(s *Session) {
	p.bound = s
	if p.intp != nil {
		p.intp.SetSession(s)
	}
}

// Session is one screen buffer: a grid of text, the viewport looking into it,
// the attributes and tab stops applied to new output, and the window metrics
// used to size both. A session optionally owns one alternate session that
// temporarily replaces it on screen.
//
// Sessions carry no internal locking beyond the embedded mutex; callers that
// share a session across goroutines hold Lock around each operation sequence.
type Session struct {
	sync.Mutex

	grid     *Grid
	viewport Rect

	attrs         TextAttr
	popupAttrs    TextAttr
	tabs          *TabStops
	scrollMargins Rect

	fontCell   Size // rendered cell size in pixels, at least 1x1
	hScrollPx  int  // horizontal scroll bar height in pixels
	vScrollPx  int  // vertical scroll bar width in pixels
	cursorSize int  // initial cursor height percentage

	// wrapText selects the resize strategy: reflow when set, traditional
	// column clipping otherwise. Alternate buffers always resize pinned to
	// the window, so the flag only matters on main buffers.
	wrapText bool

	proc *Processor

	main *Session // set on an alternate, pointing back at its owner
	alt  *Session // set on a main session while its alternate exists

	// Pending window resize recorded while the alternate buffer was
	// displayed, replayed against the main buffer on restore.
	altWindowChanged           bool
	altClientNew, altClientOld PixelRect

	// TitleChanged-style hooks; all optional.
	OnBufferSizeChange func(Size)
	OnViewportChange   func(Rect)
	OnScrollBarsChange func()

	// ClearSelection is invoked before any buffer resize so a stale
	// selection cannot outlive the cells it referenced.
	ClearSelection func()

	// ValidTextEnd reports the last position the window layer considers
	// meaningful (such as the end of an uncommitted input line). Vertical
	// viewport shrinking refuses to cut above it.
	ValidTextEnd func() Coord
}

// Option configures a session at construction time.
type Option func(*Session)

// WithFill sets the attribute applied to freshly revealed cells.
func WithFill(attr TextAttr) Option {
	return func(s *Session) { s.attrs = attr }
}

// WithPopupFill sets the attribute used for popup surfaces.
func WithPopupFill(attr TextAttr) Option {
	return func(s *Session) { s.popupAttrs = attr }
}

// WithFontCell sets the rendered size of one character cell in pixels.
func WithFontCell(px Size) Option {
	return func(s *Session) { s.fontCell = px }
}

// WithScrollBarPixels sets the thickness of the horizontal and vertical
// scroll bars in pixels.
func WithScrollBarPixels(h, v int) Option {
	return func(s *Session) { s.hScrollPx, s.vScrollPx = h, v }
}

// WithWrap selects reflow resizing for the buffer.
func WithWrap(on bool) Option {
	return func(s *Session) { s.wrapText = on }
}

// WithCursorSize sets the initial cursor height percentage.
func WithCursorSize(pct int) Option {
	return func(s *Session) { s.cursorSize = pct }
}

// WithProcessor attaches and binds an output processor.
func WithProcessor(p *Processor) Option {
	return func(s *Session) { s.AttachProcessor(p) }
}

// AttachProcessor attaches an output processor and binds it to this session.
func (s *Session) AttachProcessor(p *Processor) {
	s.proc = p
	p.bind(s)
}

// Processor returns the attached output processor, or nil.
func (s *Session) Processor() *Processor {
	return s.proc
}

// NewSession creates a screen buffer of bufferSize cells with a viewport of
// windowSize cells anchored at the origin. Both sizes are clamped to at
// least 1x1 and the viewport never exceeds the buffer.
func NewSession(bufferSize, windowSize Size, opts ...Option) *Session {
	bufferSize.Width = max(bufferSize.Width, 1)
	bufferSize.Height = max(bufferSize.Height, 1)
	s := &Session{
		attrs:      DefaultAttr,
		popupAttrs: DefaultAttr,
		tabs:       NewTabStops(),
		fontCell:   Size{Width: 1, Height: 1},
		cursorSize: 25,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.grid = NewGrid(bufferSize, s.attrs)
	s.grid.SetCursorStyle(s.cursorSize, true)
	s.viewport = Rect{
		Left:   0,
		Top:    0,
		Right:  clampInt(windowSize.Width, 1, bufferSize.Width) - 1,
		Bottom: clampInt(windowSize.Height, 1, bufferSize.Height) - 1,
	}
	s.fontCell.Width = max(s.fontCell.Width, 1)
	s.fontCell.Height = max(s.fontCell.Height, 1)
	return s
}

// Grid exposes the cell storage.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Tabs exposes the tab stop set.
func (s *Session) Tabs() *TabStops {
	return s.tabs
}

// BufferSize returns the grid dimensions in cells.
func (s *Session) BufferSize() Size {
	return s.grid.Size()
}

// Viewport returns the window rectangle inside the buffer.
func (s *Session) Viewport() Rect {
	return s.viewport
}

// Attrs returns the attribute applied to new output.
func (s *Session) Attrs() TextAttr {
	return s.attrs
}

// SetAttrs changes the attribute applied to new output and to freshly
// revealed cells.
func (s *Session) SetAttrs(attr TextAttr) {
	s.attrs = attr
	s.grid.SetFill(attr)
}

// PopupAttrs returns the attribute used for popup surfaces.
func (s *Session) PopupAttrs() TextAttr {
	return s.popupAttrs
}

// SetPopupAttrs changes the attribute used for popup surfaces.
func (s *Session) SetPopupAttrs(attr TextAttr) {
	s.popupAttrs = attr
}

// FontCell returns the rendered cell size in pixels.
func (s *Session) FontCell() Size {
	return s.fontCell
}

// SetFontCell updates the rendered cell size, clamped to at least 1x1.
func (s *Session) SetFontCell(px Size) {
	s.fontCell = Size{Width: max(px.Width, 1), Height: max(px.Height, 1)}
}

// ScreenEdges returns the rectangle covering the whole buffer.
func (s *Session) ScreenEdges() Rect {
	sz := s.grid.Size()
	return Rect{Left: 0, Top: 0, Right: sz.Width - 1, Bottom: sz.Height - 1}
}

// ClampCoord pins a coordinate inside the buffer.
func (s *Session) ClampCoord(c Coord) Coord {
	sz := s.grid.Size()
	return Coord{
		X: clampInt(c.X, 0, sz.Width-1),
		Y: clampInt(c.Y, 0, sz.Height-1),
	}
}

// ClampRect pins a rectangle inside the buffer edge by edge.
func (s *Session) ClampRect(r Rect) Rect {
	sz := s.grid.Size()
	return Rect{
		Left:   clampInt(r.Left, 0, sz.Width-1),
		Top:    clampInt(r.Top, 0, sz.Height-1),
		Right:  clampInt(r.Right, 0, sz.Width-1),
		Bottom: clampInt(r.Bottom, 0, sz.Height-1),
	}
}

// CursorPosition returns the cursor location in buffer coordinates.
func (s *Session) CursorPosition() Coord {
	return s.grid.Cursor().Pos
}

// SetCursorPosition moves the cursor. Positions outside the buffer are
// rejected with ErrInvalidParameter.
func (s *Session) SetCursorPosition(pos Coord) error {
	sz := s.grid.Size()
	if pos.X < 0 || pos.Y < 0 || pos.X >= sz.Width || pos.Y >= sz.Height {
		return ErrInvalidParameter
	}
	s.grid.SetCursorPos(pos)
	return nil
}

// SetCursorInformation updates the cursor height percentage and visibility.
func (s *Session) SetCursorInformation(size int, visible bool) {
	s.grid.SetCursorStyle(size, visible)
}

func (s *Session) notifyBufferSize() {
	if s.OnBufferSizeChange != nil {
		s.OnBufferSizeChange(s.grid.Size())
	}
}

func (s *Session) notifyViewport() {
	if s.OnViewportChange != nil {
		s.OnViewportChange(s.viewport)
	}
}

func (s *Session) notifyScrollBars() {
	if s.OnScrollBarsChange != nil {
		s.OnScrollBarsChange()
	}
}

func (s *Session) clearSelection() {
	if s.ClearSelection != nil {
		s.ClearSelection()
	}
}

// validTextEnd returns the protected end-of-text position, falling back to
// the last non-space cell when no window layer hook is installed.
func (s *Session) validTextEnd() Coord {
	if s.ValidTextEnd != nil {
		return s.ValidTextEnd()
	}
	end := s.grid.LastNonSpace()
	if cur := s.grid.Cursor().Pos; cur.Y > end.Y {
		return cur
	}
	return end
}
