// Package storage provides SQLite-based persistence for the leaderboard,
// play statistics and cosmetic skins.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LeaderboardSize is the number of entries kept per game.
const LeaderboardSize = 5

const settingSelectedSkin = "selected_skin"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single leaderboard record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Name      string
	Score     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game, including runs that
// did not make the leaderboard.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
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

	// Create parent directories
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
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS plays (
			game_id TEXT PRIMARY KEY,
			games_count INTEGER NOT NULL DEFAULT 0,
			high_score INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0,
			last_played DATETIME
		);

		CREATE TABLE IF NOT EXISTS unlocked_skins (
			skin_id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
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

// SaveScore records a finished run. The leaderboard keeps only the top
// LeaderboardSize entries per game; ties keep the earlier entry.
// It returns the 1-based leaderboard rank, or 0 if the run did not place.
func (s *Store) SaveScore(gameID, name string, score int) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	now := time.Now().UTC().Format(time.DateTime)
	_, err = tx.Exec(
		`INSERT INTO plays (game_id, games_count, high_score, total_score, last_played)
		 VALUES (?, 1, ?, ?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
		   games_count = games_count + 1,
		   high_score = MAX(high_score, excluded.high_score),
		   total_score = total_score + excluded.total_score,
		   last_played = excluded.last_played`,
		gameID, score, score, now,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update play stats: %w", err)
	}

	result, err := tx.Exec(
		"INSERT INTO scores (game_id, name, score, created_at) VALUES (?, ?, ?, ?)",
		gameID, strings.TrimSpace(name), score, now,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.Exec(
		`DELETE FROM scores WHERE game_id = ? AND id NOT IN (
		   SELECT id FROM scores WHERE game_id = ?
		   ORDER BY score DESC, id ASC LIMIT ?
		 )`,
		gameID, gameID, LeaderboardSize,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot trim leaderboard: %w", err)
	}

	var rank int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM scores
		 WHERE game_id = ? AND (score > ? OR (score = ? AND id <= ?))`,
		gameID, score, score, id,
	).Scan(&rank)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot rank score: %w", err)
	}

	var kept int
	if err := tx.QueryRow("SELECT COUNT(*) FROM scores WHERE id = ?", id).Scan(&kept); err != nil {
		return 0, fmt.Errorf("storage: cannot rank score: %w", err)
	}
	if kept == 0 {
		rank = 0
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return rank, nil
}

// TopScores retrieves the leaderboard for the given game, best first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 || limit > LeaderboardSize {
		limit = LeaderboardSize
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, name, score, created_at
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
		if err := rows.Scan(&e.ID, &e.GameID, &e.Name, &e.Score, &createdAt); err != nil {
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

// BestOverall returns the highest score across every game.
func (s *Store) BestOverall() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearScores deletes the leaderboard and statistics for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM plays WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear stats: %w", err)
	}
	return nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT games_count, high_score, total_score, last_played
		 FROM plays WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.TotalScore, &lastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}
	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, games_count, high_score, total_score, last_played FROM plays`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		if st.GamesCount > 0 {
			st.AvgScore = float64(st.TotalScore) / float64(st.GamesCount)
		}
		stats[st.GameID] = &st
	}

	return stats, rows.Err()
}

// UnlockSkins marks skins as unlocked. Already unlocked skins are kept.
// It returns the ids that were newly unlocked.
func (s *Store) UnlockSkins(ids ...string) ([]string, error) {
	var added []string
	for _, id := range ids {
		res, err := s.db.Exec("INSERT OR IGNORE INTO unlocked_skins (skin_id) VALUES (?)", id)
		if err != nil {
			return added, fmt.Errorf("storage: cannot unlock skin %s: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added = append(added, id)
		}
	}
	return added, nil
}

// UnlockedSkins returns the ids of every unlocked skin.
func (s *Store) UnlockedSkins() ([]string, error) {
	rows, err := s.db.Query("SELECT skin_id FROM unlocked_skins ORDER BY unlocked_at, skin_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query skins: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan skin: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SelectedSkin returns the selected skin id, or "" if none was chosen.
func (s *Store) SelectedSkin() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingSelectedSkin).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read selected skin: %w", err)
	}
	return id, nil
}

// SelectSkin stores the selected skin id.
func (s *Store) SelectSkin(id string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingSelectedSkin, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot select skin: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.DateTime, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
