// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrMatchNotFound is returned when no match has the requested id.
var ErrMatchNotFound = errors.New("match not found")

// ErrAmbiguousMatch is returned when an id prefix matches several matches.
var ErrAmbiguousMatch = errors.New("ambiguous match id")

// End reasons recorded by FinishMatch.
const (
	EndQuit       = "quit"
	EndDisconnect = "disconnect"
)

const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Match is one played session.
type Match struct {
	ID         string
	Player     string
	Difficulty string
	LeftScore  int
	RightScore int
	Rounds     int    // completed rounds
	EndReason  string // empty while the match is running
	StartedAt  time.Time
	EndedAt    time.Time // zero while the match is running
}

// Duration returns how long the match lasted, or zero if it has not ended.
func (m Match) Duration() time.Duration {
	if m.EndedAt.IsZero() {
		return 0
	}
	return m.EndedAt.Sub(m.StartedAt)
}

// Miss is one ball that got past a paddle.
type Miss struct {
	ID         int64
	MatchID    string
	Round      int    // the round that ended with this miss
	Side       string // "left" or "right"
	LeftScore  int    // score after the miss
	RightScore int
	CreatedAt  time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Matches   int
	Misses    int
	LeftWins  int
	RightWins int
	LastPlay  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL DEFAULT '',
			started_at TEXT NOT NULL,
			ended_at TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_matches_started ON matches(started_at DESC);

		CREATE TABLE IF NOT EXISTS misses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
			round INTEGER NOT NULL,
			side TEXT NOT NULL,
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_misses_match ON misses(match_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(timeLayout)
}

func parseTime(v sql.NullString) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, v.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BeginMatch records a new running match and returns its id.
func (s *Store) BeginMatch(player, difficulty string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO matches (id, player, difficulty, started_at) VALUES (?, ?, ?, ?)",
		id, player, difficulty, now(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin match: %w", err)
	}
	return id, nil
}

// RecordMiss appends a miss to a match and updates its running score.
func (s *Store) RecordMiss(m Miss) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec(
		"UPDATE matches SET left_score = ?, right_score = ?, rounds = ? WHERE id = ?",
		m.LeftScore, m.RightScore, m.Round, m.MatchID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update match: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("storage: %w: %s", ErrMatchNotFound, m.MatchID)
	}

	_, err = tx.Exec(
		`INSERT INTO misses (match_id, round, side, left_score, right_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.Round, m.Side, m.LeftScore, m.RightScore, now(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save miss: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit miss: %w", err)
	}
	return nil
}

// FinishMatch stores the final score and marks the match as ended.
func (s *Store) FinishMatch(id string, left, right, rounds int, reason string) error {
	res, err := s.db.Exec(
		`UPDATE matches
		 SET left_score = ?, right_score = ?, rounds = ?, end_reason = ?, ended_at = ?
		 WHERE id = ?`,
		left, right, rounds, reason, now(), id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish match: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("storage: %w: %s", ErrMatchNotFound, id)
	}
	return nil
}

const matchColumns = `id, player, difficulty, left_score, right_score, rounds, end_reason, started_at, ended_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (Match, error) {
	var m Match
	var started, ended sql.NullString
	err := row.Scan(&m.ID, &m.Player, &m.Difficulty, &m.LeftScore, &m.RightScore,
		&m.Rounds, &m.EndReason, &started, &ended)
	if err != nil {
		return Match{}, err
	}
	m.StartedAt = parseTime(started)
	m.EndedAt = parseTime(ended)
	return m, nil
}

// RecentMatches returns the most recently started matches first.
func (s *Store) RecentMatches(limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY started_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// FindMatch looks a match up by its full id or a unique id prefix.
func (s *Store) FindMatch(idOrPrefix string) (Match, error) {
	if idOrPrefix == "" {
		return Match{}, fmt.Errorf("storage: %w: empty id", ErrMatchNotFound)
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+` FROM matches WHERE id = ? OR substr(id, 1, ?) = ? LIMIT 2`,
		idOrPrefix, len(idOrPrefix), idOrPrefix,
	)
	if err != nil {
		return Match{}, fmt.Errorf("storage: cannot query match: %w", err)
	}
	defer rows.Close()

	var found []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return Match{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		found = append(found, m)
	}
	if err := rows.Err(); err != nil {
		return Match{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return Match{}, fmt.Errorf("storage: %w: %s", ErrMatchNotFound, idOrPrefix)
	case 1:
		return found[0], nil
	default:
		return Match{}, fmt.Errorf("storage: %w: %s", ErrAmbiguousMatch, idOrPrefix)
	}
}

// MatchMisses returns the misses of a match in the order they happened.
func (s *Store) MatchMisses(matchID string) ([]Miss, error) {
	rows, err := s.db.Query(
		`SELECT id, match_id, round, side, left_score, right_score, created_at
		 FROM misses
		 WHERE match_id = ?
		 ORDER BY id`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query misses: %w", err)
	}
	defer rows.Close()

	var misses []Miss
	for rows.Next() {
		var m Miss
		var created sql.NullString
		if err := rows.Scan(&m.ID, &m.MatchID, &m.Round, &m.Side, &m.LeftScore, &m.RightScore, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.CreatedAt = parseTime(created)
		misses = append(misses, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return misses, nil
}

// Stats returns totals over every recorded match.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var last sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(left_score > right_score), 0),
		        COALESCE(SUM(right_score > left_score), 0),
		        MAX(started_at)
		 FROM matches`,
	).Scan(&st.Matches, &st.LeftWins, &st.RightWins, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	st.LastPlay = parseTime(last)

	if err := s.db.QueryRow("SELECT COUNT(*) FROM misses").Scan(&st.Misses); err != nil {
		return Stats{}, fmt.Errorf("storage: cannot count misses: %w", err)
	}
	return st, nil
}

// ClearHistory deletes every match and miss.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM misses; DELETE FROM matches;"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}
