// Package game runs a single play-through of a rollcube level and records
// the outcome when the puzzle is won.
package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rollcube/rollcube"
	"github.com/rollcube/rollcube/internal/level"
	"github.com/rollcube/rollcube/internal/storage"
)

// ErrNoGame reports a move attempted with no game in progress.
var ErrNoGame = errors.New("game: no game in progress")

// State represents the current state of a play session.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateWon
)

// String returns the string representation of the session state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Session manages one game at a time. Unlike the bare Puzzle it is safe
// for concurrent use; all access goes through its lock.
type Session struct {
	results *storage.ResultRepository // nil disables persistence

	mu           sync.RWMutex
	state        State
	lvl          *level.Level
	puzzle       *rollcube.Puzzle
	startTime    time.Time
	wonAt        time.Time
	lastResultID string

	onChange func()
}

// NewSession creates a session. A nil result repository is allowed; wins
// are then not persisted.
func NewSession(results *storage.ResultRepository) *Session {
	return &Session{
		results: results,
		state:   StateIdle,
	}
}

// SetChangeCallback sets a callback that fires after every successful
// mutation of the puzzle, including the winning move. The callback runs
// without the session lock held and may read the session back.
func (s *Session) SetChangeCallback(cb func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = cb
}

// Start begins a new game of lvl, replacing any game in progress.
func (s *Session) Start(lvl *level.Level) {
	s.mu.Lock()
	s.lvl = lvl
	s.puzzle = lvl.NewPuzzle()
	s.startTime = time.Now()
	s.wonAt = time.Time{}
	s.lastResultID = ""
	s.state = StatePlaying
	// A level may start with every face painted; treat it as instantly won.
	if s.puzzle.AllFacesPainted() {
		_ = s.finishLocked()
	}
	cb := s.onChange
	s.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Restart begins the current level again from its starting state.
func (s *Session) Restart() error {
	s.mu.RLock()
	lvl := s.lvl
	s.mu.RUnlock()
	if lvl == nil {
		return ErrNoGame
	}
	s.Start(lvl)
	return nil
}

// MoveTo rolls the cube onto (row, col). Illegal targets fail with the
// puzzle's ErrInvalidMove and change nothing; moves after the game is won
// fail with ErrNoGame.
func (s *Session) MoveTo(row, col int) error {
	return s.apply(func(p *rollcube.Puzzle) error {
		return p.Move(row, col)
	})
}

// Roll rolls the cube one cell in direction d.
func (s *Session) Roll(d rollcube.Direction) error {
	return s.apply(func(p *rollcube.Puzzle) error {
		return p.Roll(d)
	})
}

func (s *Session) apply(move func(*rollcube.Puzzle) error) error {
	s.mu.Lock()
	if s.state != StatePlaying {
		s.mu.Unlock()
		return fmt.Errorf("%w (state %s)", ErrNoGame, s.state)
	}

	if err := move(s.puzzle); err != nil {
		s.mu.Unlock()
		return err
	}

	var persistErr error
	if s.puzzle.AllFacesPainted() {
		persistErr = s.finishLocked()
	}
	cb := s.onChange
	s.mu.Unlock()

	if cb != nil {
		cb()
	}
	return persistErr
}

// finishLocked flips the session to Won and records the result. Callers
// hold the write lock.
func (s *Session) finishLocked() error {
	s.state = StateWon
	s.wonAt = time.Now()
	if s.results == nil {
		return nil
	}

	id, err := s.results.Create(s.lvl.Name, s.puzzle.Side(), s.puzzle.Moves(), s.wonAt.Sub(s.startTime))
	if err != nil {
		return fmt.Errorf("game won but result not saved: %w", err)
	}
	s.lastResultID = id
	return nil
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Won reports whether the current game has been won.
func (s *Session) Won() bool {
	return s.State() == StateWon
}

// LevelName returns the name of the level being played.
func (s *Session) LevelName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lvl == nil {
		return ""
	}
	return s.lvl.Name
}

// Moves returns the number of successful moves in the current game.
func (s *Session) Moves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.puzzle == nil {
		return 0
	}
	return s.puzzle.Moves()
}

// Elapsed returns the time since the game started, frozen at the winning
// move once the game is won.
func (s *Session) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.state {
	case StateIdle:
		return 0
	case StateWon:
		return s.wonAt.Sub(s.startTime)
	default:
		return time.Since(s.startTime)
	}
}

// LastResultID returns the ID of the persisted result for the most recent
// win, or "" if nothing has been recorded.
func (s *Session) LastResultID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastResultID
}

// Snapshot returns a deep copy of the puzzle for rendering, or nil when no
// game has been started. The copy shares no state with the live puzzle.
func (s *Session) Snapshot() *rollcube.Puzzle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.puzzle == nil {
		return nil
	}
	return s.puzzle.Clone()
}
