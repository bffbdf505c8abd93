// Package archive keeps a local history of completed submissions so the
// report can be regenerated (and a payload resent) without re-entering
// the form.
package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"brigada/internal/log"
)

// ErrNotFound is returned when no matching submission exists.
var ErrNotFound = errors.New("submission not found")

// Record is one archived submission.
type Record struct {
	ID        string
	Brigade   string
	Payload   []byte
	CreatedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id         TEXT PRIMARY KEY,
	brigade    TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at DESC);
`

// Store is the SQLite-backed submission archive.
type Store struct {
	db *sql.DB
}

// Open creates the archive database (and its parent directory) if needed
// and prepares the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("preparing archive schema: %w", err)
	}

	log.Debug(log.CatArchive, "Archive opened", "path", path)
	return &Store{db: db}, nil
}

// Save stores a submission payload and returns the generated record id.
func (s *Store) Save(brigade string, payload []byte) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO submissions (id, brigade, payload, created_at) VALUES (?, ?, ?, ?)`,
		id, brigade, string(payload), time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("saving submission: %w", err)
	}
	log.Info(log.CatArchive, "Submission archived", "id", id, "brigade", brigade)
	return id, nil
}

// Get retrieves a submission by id.
func (s *Store) Get(id string) (*Record, error) {
	row := s.db.QueryRow(
		`SELECT id, brigade, payload, created_at FROM submissions WHERE id = ?`, id,
	)
	return scanRecord(row)
}

// Latest retrieves the most recently archived submission.
func (s *Store) Latest() (*Record, error) {
	row := s.db.QueryRow(
		`SELECT id, brigade, payload, created_at FROM submissions
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
	)
	return scanRecord(row)
}

// List returns submissions newest first, up to limit (0 = no limit).
func (s *Store) List(limit int) ([]*Record, error) {
	query := `SELECT id, brigade, payload, created_at FROM submissions ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating submissions: %w", err)
	}
	return records, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanRecord(scanner interface{ Scan(...any) error }) (*Record, error) {
	var (
		rec     Record
		payload string
		created int64
	)
	err := scanner.Scan(&rec.ID, &rec.Brigade, &payload, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning submission row: %w", err)
	}
	rec.Payload = []byte(payload)
	rec.CreatedAt = time.Unix(created, 0)
	return &rec, nil
}
