// Copyright © 2025 Texelhost contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: store/store.go
// Summary: SQLite-backed persistence for screen buffer snapshots.
//
// Snapshots capture the text, wrap flags, cursor, viewport and tab stops of
// a session so it can be restored across host restarts. Each snapshot gets
// a UUID and a SHA-1 content hash for integrity checks on load.

package store

import (
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/framegrace/texelhost/screen"
)

// Current schema version - increment this when the payload layout changes.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,              -- UUID
    created INTEGER NOT NULL,         -- UnixNano
    label TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    hash TEXT NOT NULL,               -- SHA-1 of payload
    payload BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created);
`

// Config holds configuration for the snapshot store.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(dbPath string) Config {
	return Config{DBPath: dbPath}
}

// Store persists session snapshots in a SQLite database.
type Store struct {
	config Config
	db     *sql.DB
	mu     sync.Mutex
}

// Info describes a stored snapshot without its payload.
type Info struct {
	ID      uuid.UUID
	Created time.Time
	Label   string
	Size    screen.Size
}

// payload is the serialized representation of one session.
type payload struct {
	Buffer   screen.Size  `json:"buffer"`
	Viewport screen.Rect  `json:"viewport"`
	Cursor   screen.Coord `json:"cursor"`
	Tabs     []int        `json:"tabs,omitempty"`
	Rows     []rowData    `json:"rows"`
}

type rowData struct {
	Text       string `json:"text"`
	WrapForced bool   `json:"wrap,omitempty"`
	Padded     bool   `json:"padded,omitempty"`
}

// Open creates or opens a snapshot database.
func Open(config Config) (*Store, error) {
	dir := filepath.Dir(config.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := config.DBPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := ensureSchemaVersion(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{config: config, db: db}, nil
}

func ensureSchemaVersion(db *sql.DB) error {
	var version int
	err := db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		_, err = db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, schemaVersion)
		return err
	case err != nil:
		return fmt.Errorf("failed to check schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("snapshot db schema version %d, want %d", version, schemaVersion)
	}
	return nil
}

// Save captures the session and returns the snapshot id.
func (s *Store) Save(sess *screen.Session, label string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid := sess.Grid()
	size := grid.Size()

	p := payload{
		Buffer:   size,
		Viewport: sess.Viewport(),
		Cursor:   grid.Cursor().Pos,
		Tabs:     append([]int(nil), sess.Tabs().Columns()...),
		Rows:     make([]rowData, size.Height),
	}
	for y := 0; y < size.Height; y++ {
		row := grid.Row(y)
		p.Rows[y] = rowData{
			Text:       grid.RowText(y),
			WrapForced: row.WrapForced,
			Padded:     row.DoubleBytePadded,
		}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return uuid.Nil, err
	}

	hasher := sha1.New()
	hasher.Write(data)
	hash := hex.EncodeToString(hasher.Sum(nil))

	id := uuid.New()
	_, err = s.db.Exec(
		`INSERT INTO snapshots (id, created, label, width, height, hash, payload) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id.String(), time.Now().UTC().UnixNano(), label, size.Width, size.Height, hash, data,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return id, nil
}

// Load restores a snapshot into a fresh session.
func (s *Store) Load(id uuid.UUID) (*screen.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hash string
	var data []byte
	err := s.db.QueryRow(`SELECT hash, payload FROM snapshots WHERE id = ?`, id.String()).Scan(&hash, &data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	hasher := sha1.New()
	hasher.Write(data)
	if got := hex.EncodeToString(hasher.Sum(nil)); got != hash {
		return nil, fmt.Errorf("snapshot %s failed integrity check", id)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	sess := screen.NewSession(p.Buffer, p.Viewport.Size())
	grid := sess.Grid()
	for y, row := range p.Rows {
		if y >= p.Buffer.Height {
			break
		}
		grid.RestoreRow(y, row.Text, row.WrapForced, row.Padded)
	}
	grid.SetCursorPos(sess.ClampCoord(p.Cursor))
	sess.SetViewportRect(p.Viewport)
	for _, col := range p.Tabs {
		if err := sess.AddTabStop(col); err != nil {
			return nil, fmt.Errorf("snapshot %s has tab stop %d outside buffer", id, col)
		}
	}
	return sess, nil
}

// List returns stored snapshots, newest first.
func (s *Store) List() ([]Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, created, label, width, height FROM snapshots ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var (
			idStr   string
			created int64
			info    Info
		)
		if err := rows.Scan(&idStr, &created, &info.Label, &info.Size.Width, &info.Size.Height); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt snapshot id %q: %w", idStr, err)
		}
		info.ID = id
		info.Created = time.Unix(0, created).UTC()
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes a snapshot.
func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id.String())
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
