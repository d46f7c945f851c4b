package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/rollcube/rollcube/internal/level"
)

// Level persistence errors.
var (
	ErrLevelNotFound = errors.New("storage: level not found")
	ErrLevelExists   = errors.New("storage: level already exists")
)

// StoredLevel is a level row's metadata.
type StoredLevel struct {
	LevelID   string
	Name      string
	Side      int
	CreatedAt time.Time
}

// LevelRepository provides CRUD operations for levels. The board itself is
// stored in the level text format, so rows stay readable with plain SQL.
type LevelRepository struct {
	db *DB
}

// NewLevelRepository creates a new level repository.
func NewLevelRepository(db *DB) *LevelRepository {
	return &LevelRepository{db: db}
}

// Create stores a named level and returns its ID.
func (r *LevelRepository) Create(lvl *level.Level) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO levels (level_id, name, side, definition, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, lvl.Name, lvl.Side, lvl.Render(), createdAt.Format(time.RFC3339))

	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return "", fmt.Errorf("%w: %s", ErrLevelExists, lvl.Name)
		}
		return "", fmt.Errorf("failed to create level: %w", err)
	}

	return id, nil
}

// Get retrieves a level by name.
func (r *LevelRepository) Get(name string) (*level.Level, error) {
	var definition string
	err := r.db.QueryRow(
		"SELECT definition FROM levels WHERE name = ?", name,
	).Scan(&definition)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get level: %w", err)
	}

	lvl, err := level.Parse([]byte(definition))
	if err != nil {
		return nil, fmt.Errorf("stored level %q is corrupt: %w", name, err)
	}
	lvl.Name = name
	return lvl, nil
}

// Delete removes a level by name.
func (r *LevelRepository) Delete(name string) error {
	res, err := r.db.Exec("DELETE FROM levels WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete level: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete level: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrLevelNotFound, name)
	}
	return nil
}

// List returns all levels' metadata, newest first.
func (r *LevelRepository) List() ([]StoredLevel, error) {
	rows, err := r.db.Query(`
		SELECT level_id, name, side, created_at
		FROM levels
		ORDER BY created_at DESC, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	defer rows.Close()

	var levels []StoredLevel
	for rows.Next() {
		var l StoredLevel
		var createdAt string
		if err := rows.Scan(&l.LevelID, &l.Name, &l.Side, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan level: %w", err)
		}
		l.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		levels = append(levels, l)
	}

	return levels, rows.Err()
}
