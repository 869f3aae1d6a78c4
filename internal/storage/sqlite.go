// Package storage provides SQLite-based persistence for scores and game results.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameResult is the record of one finished game.
type GameResult struct {
	ID        int64
	ResultID  string // UUID, generated on save when empty
	SessionID string // SSH session or local run that played the game
	GameID    string
	Outcome   string // "won" or "lost"
	Reason    string // "", "exploded", "timed_out"
	Score     int
	Elapsed   int // Seconds
	Revealed  int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			result_id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL DEFAULT '',
			game_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			revealed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(game_id, outcome, elapsed_secs);
		CREATE INDEX IF NOT EXISTS idx_results_session ON results(session_id);
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

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and results for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// SaveResult records a finished game and returns its result ID.
func (s *Store) SaveResult(r GameResult) (string, error) {
	if r.ResultID == "" {
		r.ResultID = uuid.NewString()
	} else if _, err := uuid.Parse(r.ResultID); err != nil {
		return "", fmt.Errorf("storage: invalid result id %q: %w", r.ResultID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO results
		 (result_id, session_id, game_id, outcome, reason, score, elapsed_secs, revealed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ResultID,
		r.SessionID,
		r.GameID,
		r.Outcome,
		r.Reason,
		r.Score,
		r.Elapsed,
		r.Revealed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}

	return r.ResultID, nil
}

const resultColumns = `id, result_id, session_id, game_id, outcome, reason, score, elapsed_secs, revealed, created_at`

func scanResult(sc interface{ Scan(...any) error }) (GameResult, error) {
	var r GameResult
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.ResultID,
		&r.SessionID,
		&r.GameID,
		&r.Outcome,
		&r.Reason,
		&r.Score,
		&r.Elapsed,
		&r.Revealed,
		&createdAt,
	)
	if err != nil {
		return GameResult{}, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func (s *Store) queryResults(query string, args ...any) ([]GameResult, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ResultByID retrieves a result by its UUID. Returns nil if not found.
func (s *Store) ResultByID(resultID string) (*GameResult, error) {
	r, err := scanResult(s.db.QueryRow(
		`SELECT `+resultColumns+` FROM results WHERE result_id = ?`,
		resultID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// BestTimes retrieves the fastest wins for the given game.
func (s *Store) BestTimes(gameID string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE game_id = ? AND outcome = 'won'
		 ORDER BY elapsed_secs ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentResults retrieves the latest results for the given game.
func (s *Store) RecentResults(gameID string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// SessionResults retrieves the results played in one session.
func (s *Store) SessionResults(sessionID string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Played     int
	Won        int
	Exploded   int
	TimedOut   int
	BestTime   int // Seconds, 0 when never won
	HighScore  int
	LastPlayed time.Time
}

// WinRate returns the fraction of games won, 0 when none were played.
func (g GameStats) WinRate() float64 {
	if g.Played == 0 {
		return 0
	}
	return float64(g.Won) / float64(g.Played)
}

const statsColumns = `
	COUNT(*),
	COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN reason = 'exploded' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN reason = 'timed_out' THEN 1 ELSE 0 END), 0),
	COALESCE(MIN(CASE WHEN outcome = 'won' THEN elapsed_secs END), 0),
	COALESCE(MAX(score), 0),
	MAX(created_at)`

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Played, &stats.Won, &stats.Exploded, &stats.TimedOut, &stats.BestTime, &stats.HighScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every game that has results.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, ` + statsColumns + ` FROM results GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var g GameStats
		var lastPlayed any
		if err := rows.Scan(&g.GameID, &g.Played, &g.Won, &g.Exploded, &g.TimedOut, &g.BestTime, &g.HighScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		g.LastPlayed = parseTime(lastPlayed)
		stats[g.GameID] = &g
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
