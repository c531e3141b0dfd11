// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelhost/main.go
// Summary: Interactive viewer for a texelhost screen buffer session.
// Usage: texelhost [-shell CMD] [-db PATH] [-restore ID]
//
// Without -shell, demo text is written into the buffer and the arrow keys
// scroll the viewport. With -shell, the given command runs on a PTY and its
// output drives the session through the feed interpreter. Ctrl+S saves a
// snapshot, 'a'/Ctrl+A toggles the alternate buffer, Esc or Ctrl+C quits.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/framegrace/texelhost/config"
	"github.com/framegrace/texelhost/internal/feed"
	"github.com/framegrace/texelhost/screen"
	"github.com/framegrace/texelhost/store"
)

func main() {
	shellCmd := flag.String("shell", "", "command to run on a PTY feeding the buffer")
	dbPath := flag.String("db", "", "snapshot database path (default from config)")
	restoreID := flag.String("restore", "", "snapshot id to restore into the buffer")
	listSnaps := flag.Bool("list", false, "list stored snapshots and exit")
	flag.Parse()

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("texelhost: config: %v", err)
	}

	snapStore, err := openStore(cfg, *dbPath)
	if err != nil {
		log.Fatalf("texelhost: %v", err)
	}
	defer snapStore.Close()

	if *listSnaps {
		listSnapshots(snapStore)
		return
	}

	sess, err := buildSession(cfg, snapStore, *restoreID)
	if err != nil {
		log.Fatalf("texelhost: %v", err)
	}

	if *shellCmd != "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatalf("texelhost: -shell requires an interactive terminal")
	}

	if err := run(sess, snapStore, *shellCmd); err != nil {
		log.Fatalf("texelhost: %v", err)
	}
}

func openStore(cfg config.Config, override string) (*store.Store, error) {
	path := override
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = dir + "/texelhost/" + cfg.GetString("store", "snapshot_db", "snapshots.db")
	}
	return store.Open(store.DefaultConfig(path))
}

func listSnapshots(s *store.Store) {
	infos, err := s.List()
	if err != nil {
		log.Fatalf("texelhost: list snapshots: %v", err)
	}
	for _, info := range infos {
		fmt.Printf("%s  %s  %dx%d  %s\n",
			info.ID, info.Created.Format("2006-01-02 15:04:05"),
			info.Size.Width, info.Size.Height, info.Label)
	}
}

func buildSession(cfg config.Config, s *store.Store, restoreID string) (*screen.Session, error) {
	if restoreID != "" {
		id, err := uuid.Parse(restoreID)
		if err != nil {
			return nil, fmt.Errorf("bad snapshot id %q: %w", restoreID, err)
		}
		return s.Load(id)
	}

	bufSize := screen.Size{
		Width:  cfg.GetInt("screen", "buffer_width", 80),
		Height: cfg.GetInt("screen", "buffer_height", 300),
	}
	winSize := screen.Size{
		Width:  cfg.GetInt("screen", "window_width", 80),
		Height: cfg.GetInt("screen", "window_height", 24),
	}
	sess := screen.NewSession(bufSize, winSize,
		screen.WithWrap(cfg.GetBool("screen", "wrap_text", true)),
		screen.WithCursorSize(cfg.GetInt("screen", "cursor_size", 25)),
		screen.WithFontCell(screen.Size{
			Width:  cfg.GetInt("window", "font_width", 8),
			Height: cfg.GetInt("window", "font_height", 16),
		}),
		screen.WithScrollBarPixels(
			cfg.GetInt("window", "hscroll_px", 16),
			cfg.GetInt("window", "vscroll_px", 16),
		),
	)
	return sess, nil
}

func run(sess *screen.Session, snapStore *store.Store, shellCmd string) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()

	f := feed.New(sess)
	proc := screen.NewProcessor(f)
	sess.AttachProcessor(proc)

	var ptyFile *os.File
	if shellCmd != "" {
		cmd := exec.Command(shellCmd)
		vp := sess.Viewport()
		ptyFile, err = pty.StartWithSize(cmd, &pty.Winsize{
			Cols: uint16(vp.Width()),
			Rows: uint16(vp.Height()),
		})
		if err != nil {
			return fmt.Errorf("start shell: %w", err)
		}
		defer ptyFile.Close()

		go func() {
			buf := make([]byte, 4096)
			for {
				n, err := ptyFile.Read(buf)
				if n > 0 {
					sess.Lock()
					proc.Write(buf[:n])
					sess.Unlock()
					scr.PostEvent(tcell.NewEventInterrupt(nil))
				}
				if err != nil {
					if err != io.EOF {
						log.Printf("texelhost: pty read: %v", err)
					}
					return
				}
			}
		}()
	} else {
		sess.Lock()
		writeDemo(sess)
		sess.Unlock()
	}

	for {
		sess.Lock()
		active := sess.ActiveBuffer()
		render(scr, active)
		sess.Unlock()
		scr.Show()

		switch ev := scr.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			sess.Lock()
			vp := sess.ActiveBuffer().Viewport()
			font := sess.FontCell()
			old := screen.PixelRect{
				Right:  vp.Width() * font.Width,
				Bottom: vp.Height() * font.Height,
			}
			clientNew := screen.PixelRect{
				Right:  w * font.Width,
				Bottom: h * font.Height,
			}
			sess.ActiveBuffer().ProcessResizeWindow(clientNew, old)
			sess.Unlock()
			if ptyFile != nil {
				pty.Setsize(ptyFile, &pty.Winsize{Cols: uint16(w), Rows: uint16(h)})
			}
		case *tcell.EventKey:
			if done := handleKey(ev, sess, snapStore, ptyFile); done {
				return nil
			}
		case *tcell.EventInterrupt:
			// Redraw on PTY output.
		}
	}
}

func handleKey(ev *tcell.EventKey, sess *screen.Session, snapStore *store.Store, ptyFile *os.File) bool {
	// In shell mode most keys go straight to the program.
	if ptyFile != nil {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyCtrlS:
			sess.Lock()
			saveSnapshot(sess, snapStore)
			sess.Unlock()
			return false
		case tcell.KeyRune:
			ptyFile.Write([]byte(string(ev.Rune())))
		case tcell.KeyEnter:
			ptyFile.Write([]byte{'\r'})
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			ptyFile.Write([]byte{0x7f})
		case tcell.KeyTab:
			ptyFile.Write([]byte{'\t'})
		case tcell.KeyEscape:
			ptyFile.Write([]byte{0x1b})
		}
		return false
	}

	sess.Lock()
	defer sess.Unlock()
	active := sess.ActiveBuffer()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		active.SetViewportOrigin(false, screen.Coord{Y: -1})
	case tcell.KeyDown:
		active.SetViewportOrigin(false, screen.Coord{Y: 1})
	case tcell.KeyLeft:
		active.SetViewportOrigin(false, screen.Coord{X: -1})
	case tcell.KeyRight:
		active.SetViewportOrigin(false, screen.Coord{X: 1})
	case tcell.KeyPgUp:
		active.SetViewportOrigin(false, screen.Coord{Y: -active.Viewport().Height()})
	case tcell.KeyPgDn:
		active.SetViewportOrigin(false, screen.Coord{Y: active.Viewport().Height()})
	case tcell.KeyHome:
		active.MakeCursorVisible(screen.Coord{})
	case tcell.KeyEnd:
		active.MakeCurrentCursorVisible()
	case tcell.KeyCtrlS:
		saveSnapshot(sess, snapStore)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a':
			if active.IsAltBuffer() {
				active.ExitAlternate()
			} else {
				alt := active.EnterAlternate()
				alt.WriteString("alternate buffer")
			}
		case 'q':
			return true
		}
	}
	return false
}

// saveSnapshot stores the main buffer. The caller holds the session lock.
func saveSnapshot(sess *screen.Session, snapStore *store.Store) {
	if snapStore == nil {
		return
	}
	id, err := snapStore.Save(sess.MainBuffer(), "manual")
	if err != nil {
		log.Printf("texelhost: save snapshot: %v", err)
		return
	}
	log.Printf("texelhost: saved snapshot %s", id)
}

// writeDemo fills the buffer with numbered lines so scrolling and resizing
// have something to show.
func writeDemo(sess *screen.Session) {
	for i := 0; i < sess.BufferSize().Height-1; i++ {
		sess.WriteString(fmt.Sprintf("line %3d: the quick brown fox jumps over the lazy dog", i))
		sess.CarriageReturn()
		sess.LineFeed()
	}
	sess.MakeCurrentCursorVisible()
}

func render(scr tcell.Screen, sess *screen.Session) {
	scr.Clear()
	vp := sess.Viewport()
	grid := sess.Grid()
	w, h := scr.Size()

	for y := 0; y < vp.Height() && y < h; y++ {
		for x := 0; x < vp.Width() && x < w; x++ {
			cell := grid.Cell(screen.Coord{X: vp.Left + x, Y: vp.Top + y})
			if cell.Class == screen.ClassTrail {
				continue
			}
			scr.SetContent(x, y, cell.Rune, nil, styleFor(cell.Attr))
		}
	}

	cur := grid.Cursor()
	if cur.Visible && vp.Contains(cur.Pos) {
		scr.ShowCursor(cur.Pos.X-vp.Left, cur.Pos.Y-vp.Top)
	} else {
		scr.HideCursor()
	}
}

func styleFor(attr screen.TextAttr) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcellColor(attr.FG)).
		Background(tcellColor(attr.BG))
	if attr.Attr&screen.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attr.Attr&screen.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attr.Attr&screen.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

func tcellColor(c screen.Color) tcell.Color {
	switch c.Mode {
	case screen.ColorModeStandard:
		return tcell.PaletteColor(int(c.Value))
	case screen.ColorMode256:
		return tcell.PaletteColor(int(c.Value))
	case screen.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}
