// Package scores persists the leaderboard in a SQLite database under the
// user's data directory.
package scores

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const topSize = 10

// Entry is one leaderboard row.
type Entry struct {
	ID        string
	Name      string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Store is the open leaderboard database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	score      INTEGER NOT NULL,
	level      INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS scores_by_score ON scores (score DESC);
`

// Open creates or opens the database in dir, creating the directory as
// needed. A legacy plain-text "scores" file in the same directory is
// imported once and renamed out of the way.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: create dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "scores.db"))
	if err != nil {
		return nil, fmt.Errorf("scores: open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.importLegacy(filepath.Join(dir, "scores")); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a finished game and returns the stored entry.
func (s *Store) Add(name string, score, level int) (Entry, error) {
	e := Entry{
		ID:        uuid.NewString(),
		Name:      sanitizeName(name),
		Score:     score,
		Level:     level,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO scores (id, name, score, level, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Score, e.Level, e.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("scores: add: %w", err)
	}
	return e, nil
}

// Top returns the best entries, highest score first.
func (s *Store) Top(n int) ([]Entry, error) {
	if n <= 0 {
		n = topSize
	}
	rows, err := s.db.Query(
		`SELECT id, name, score, level, created_at FROM scores ORDER BY score DESC, created_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("scores: top: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Level, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scores: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// HighScore returns the best recorded score, zero when the board is empty.
func (s *Store) HighScore() (int, error) {
	var high sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM scores`).Scan(&high); err != nil {
		return 0, fmt.Errorf("scores: high score: %w", err)
	}
	return int(high.Int64), nil
}

// importLegacy reads the old one-score-per-line file format ("NAME:SCORE"
// or a bare score) into the database, then renames the file so the import
// runs once.
func (s *Store) importLegacy(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("scores: legacy file: %w", err)
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name := "???"
		scoreField := line
		if i := strings.LastIndexByte(line, ':'); i >= 0 {
			name = strings.TrimSpace(line[:i])
			scoreField = strings.TrimSpace(line[i+1:])
		}
		score, err := strconv.Atoi(scoreField)
		if err != nil {
			continue
		}
		if _, err := s.Add(name, score, 0); err != nil {
			f.Close()
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		f.Close()
		return fmt.Errorf("scores: legacy file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("scores: legacy file: %w", err)
	}
	return os.Rename(path, path+".imported")
}

// sanitizeName trims and caps names the way the entry screen does.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "???"
	}
	if len(name) > 10 {
		name = name[:10]
	}
	return strings.ToUpper(name)
}
