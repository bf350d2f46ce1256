// Package store is the persistence gateway: a SQLite-backed home for
// sheet documents. Saves are fire-and-forget, so the editor never
// blocks on the database, and loads happen once at startup. Failures are
// logged, never surfaced to the UI.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS sheets (
	id       TEXT PRIMARY KEY,
	body     BLOB NOT NULL,
	created  INTEGER NOT NULL,
	updated  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sheets_updated ON sheets(updated);
`

// saveReq is one queued write. A non-nil flush channel marks a flush
// barrier instead of a write.
type saveReq struct {
	id    string
	body  []byte
	flush chan struct{}
}

// Store holds sheet documents in a SQLite database.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	saveCh chan saveReq
	done   chan struct{}
}

// SheetInfo describes one stored sheet.
type SheetInfo struct {
	ID      string
	Updated time.Time
}

// Open creates or opens the sheet database at the given path and starts
// the background save loop.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sheet db: %w", err)
	}

	// SQLite pragmas for performance.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{
		db:     db,
		saveCh: make(chan saveReq, 64),
		done:   make(chan struct{}),
	}
	go s.saveLoop()
	return s, nil
}

// Close stops the save loop (draining queued writes) and closes the
// database. Safe on a nil receiver.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	close(s.saveCh)
	<-s.done
	return s.db.Close()
}

// Load returns the stored document body for a sheet id, or false when
// the sheet has never been saved. Safe on a nil receiver.
func (s *Store) Load(id string) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var body []byte
	err := s.db.QueryRow("SELECT body FROM sheets WHERE id = ?", id).Scan(&body)
	if err != nil {
		return nil, false
	}
	return body, true
}

// Save queues a document body for async persistence. Non-blocking: a
// full queue drops the write with a warning (a newer body is always
// right behind it). No-op on a nil receiver.
func (s *Store) Save(id string, body []byte) {
	if s == nil {
		return
	}
	select {
	case s.saveCh <- saveReq{id: id, body: body}:
	default:
		log.Warn().Str("sheet", id).Msg("save queue full, dropping write")
	}
}

// saveLoop drains saveCh and writes documents to the DB.
func (s *Store) saveLoop() {
	defer close(s.done)
	for req := range s.saveCh {
		if req.flush != nil {
			close(req.flush)
			continue
		}
		s.writeSheet(req.id, req.body)
	}
}

// writeSheet performs the actual DB upsert for a document.
func (s *Store) writeSheet(id string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	_, err := s.db.Exec(
		`INSERT INTO sheets (id, body, created, updated) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated = excluded.updated`,
		id, body, now, now,
	)
	if err != nil {
		log.Warn().Err(err).Str("sheet", id).Msg("failed to save sheet")
	}
}

// Flush blocks until all queued saves have been written. Times out
// after 5 seconds to avoid deadlocking the caller. Safe on nil.
func (s *Store) Flush() {
	if s == nil {
		return
	}
	done := make(chan struct{})
	select {
	case s.saveCh <- saveReq{flush: done}:
		<-done
	case <-time.After(5 * time.Second):
		log.Warn().Msg("flush timed out waiting to enqueue")
	}
}

// List returns stored sheets, most recently updated first. Safe on nil.
func (s *Store) List() ([]SheetInfo, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT id, updated FROM sheets ORDER BY updated DESC")
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	var out []SheetInfo
	for rows.Next() {
		var info SheetInfo
		var updated int64
		if err := rows.Scan(&info.ID, &updated); err != nil {
			continue
		}
		info.Updated = time.Unix(updated, 0)
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes a stored sheet. Safe on nil.
func (s *Store) Delete(id string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM sheets WHERE id = ?", id)
	return err
}
