package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result records one finished game: which level, how many moves it took,
// and how long. Only the outcome is stored, not the moves themselves.
type Result struct {
	ResultID   string
	LevelName  string
	Side       int
	Moves      int
	DurationMs int64
	FinishedAt time.Time
}

// ResultRepository provides access to finished-game results.
type ResultRepository struct {
	db *DB
}

// NewResultRepository creates a new result repository.
func NewResultRepository(db *DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create records a finished game and returns its ID.
func (r *ResultRepository) Create(levelName string, side, moves int, duration time.Duration) (string, error) {
	id := uuid.New().String()
	finishedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO results (result_id, level_name, side, moves, duration_ms, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, levelName, side, moves, duration.Milliseconds(), finishedAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create result: %w", err)
	}

	return id, nil
}

// List returns up to limit results, newest first.
func (r *ResultRepository) List(limit int) ([]Result, error) {
	rows, err := r.db.Query(`
		SELECT result_id, level_name, side, moves, duration_ms, finished_at
		FROM results
		ORDER BY finished_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var res Result
		var finishedAt string
		if err := rows.Scan(&res.ResultID, &res.LevelName, &res.Side, &res.Moves, &res.DurationMs, &finishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		res.FinishedAt, err = time.Parse(time.RFC3339, finishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}
