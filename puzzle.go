package rollcube

import (
	"fmt"
	"strings"
)

// Puzzle is the full state of one rolling-cube puzzle: the board's cell
// paint, the cube's position and face paint, and a counter of successful
// moves. The zero value is not usable; construct with New.
//
// A Puzzle is not safe for concurrent use. Callers that share one instance
// must serialize access themselves.
type Puzzle struct {
	side    int
	painted [][]bool
	row     int
	col     int
	faces   [NumFaces]bool
	moves   int

	// Cached result of the last AllFacesPainted call.
	allPainted bool

	subs    []subscriber
	nextSub int
}

// New creates a puzzle. With no options the board is a blank 4x4 with the
// cube at (0, 0) and no faces painted.
func New(opts ...Option) *Puzzle {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	p := &Puzzle{}
	p.Reset(cfg.side, cfg.row, cfg.col, cfg.painted, cfg.faces)
	return p
}

// Reset reinitializes the puzzle in place: side x side board with the cube
// at (row0, col0), cell paint copied from painted, face paint copied from
// facePainted. A nil painted grid means a blank board; a nil facePainted
// slice means all faces unpainted. The move counter restarts at zero and
// observers are notified once.
//
// The caller guarantees side > 2, that painted (when non-nil) is exactly
// side x side, that (row0, col0) is on the board, and that facePainted
// (when non-nil) has six entries.
func (p *Puzzle) Reset(side, row0, col0 int, painted [][]bool, facePainted []bool) {
	p.side = side
	p.row = row0
	p.col = col0
	p.painted = make([][]bool, side)
	for r := range p.painted {
		p.painted[r] = make([]bool, side)
		if painted != nil {
			copy(p.painted[r], painted[r])
		}
	}
	p.faces = [NumFaces]bool{}
	if facePainted != nil {
		copy(p.faces[:], facePainted)
	}
	p.moves = 0
	p.allPainted = p.faces == allFacesTrue
	p.notify()
}

// CopyFrom reinitializes the puzzle as a deep copy of other, including the
// move counter. Observers of p are notified; other is untouched and the
// two puzzles share no state afterwards.
func (p *Puzzle) CopyFrom(other *Puzzle) {
	p.side = other.side
	p.row = other.row
	p.col = other.col
	p.painted = make([][]bool, other.side)
	for r := range p.painted {
		p.painted[r] = make([]bool, other.side)
		copy(p.painted[r], other.painted[r])
	}
	p.faces = other.faces
	p.moves = other.moves
	p.allPainted = other.allPainted
	p.notify()
}

// Clone returns a deep copy of the puzzle. The clone starts with no
// observers and neither puzzle's observers are notified.
func (p *Puzzle) Clone() *Puzzle {
	clone := &Puzzle{
		side:       p.side,
		row:        p.row,
		col:        p.col,
		faces:      p.faces,
		moves:      p.moves,
		allPainted: p.allPainted,
	}
	clone.painted = make([][]bool, p.side)
	for r := range clone.painted {
		clone.painted[r] = make([]bool, p.side)
		copy(clone.painted[r], p.painted[r])
	}
	return clone
}

// Move rolls the cube onto (row, col), which must be on the board and
// orthogonally adjacent to the cube's current cell. The roll first rotates
// the face paint by the direction's permutation, then applies the paint
// transfer between the landing cell and the post-roll bottom face, then
// advances the position and move counter and notifies observers.
//
// An illegal target (off the board, diagonal, too far, or the current
// cell itself) fails with an error wrapping ErrInvalidMove; the puzzle is
// left exactly as it was and no notification fires.
func (p *Puzzle) Move(row, col int) error {
	d, adjacent := directionBetween(p.row, p.col, row, col)
	if !adjacent || row < 0 || row >= p.side || col < 0 || col >= p.side {
		return fmt.Errorf("%w: (%d,%d) from (%d,%d) on a %dx%d board",
			ErrInvalidMove, row, col, p.row, p.col, p.side, p.side)
	}

	prev := p.faces
	for _, pair := range rollCycles[d] {
		p.faces[pair[0]] = prev[pair[1]]
	}

	// Paint transfers only when exactly one of the landing cell and the
	// bottom face is painted.
	switch {
	case p.painted[row][col] && !p.faces[FaceBottom]:
		p.painted[row][col] = false
		p.faces[FaceBottom] = true
	case !p.painted[row][col] && p.faces[FaceBottom]:
		p.painted[row][col] = true
		p.faces[FaceBottom] = false
	}

	p.row = row
	p.col = col
	p.moves++
	p.notify()
	return nil
}

// Roll moves the cube one cell in direction d. Rolling off the board fails
// with ErrInvalidMove, exactly as the equivalent Move call would.
func (p *Puzzle) Roll(d Direction) error {
	if d < North || d > West {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	dr, dc := d.Delta()
	return p.Move(p.row+dr, p.col+dc)
}

// Side returns the number of cells on one side of the board.
func (p *Puzzle) Side() int {
	return p.side
}

// IsPaintedSquare reports whether the cell at (row, col) is painted.
// The position must be on the board.
func (p *Puzzle) IsPaintedSquare(row, col int) bool {
	return p.painted[row][col]
}

// CubeRow returns the cube's current row.
func (p *Puzzle) CubeRow() int {
	return p.row
}

// CubeCol returns the cube's current column.
func (p *Puzzle) CubeCol() int {
	return p.col
}

// Moves returns the number of successful moves since the last
// (re)initialization.
func (p *Puzzle) Moves() int {
	return p.moves
}

// IsPaintedFace reports whether face f is painted.
func (p *Puzzle) IsPaintedFace(f Face) bool {
	return p.faces[f]
}

var allFacesTrue = [NumFaces]bool{true, true, true, true, true, true}

// AllFacesPainted reports whether every face of the cube is painted, i.e.
// the puzzle is won. The result is always recomputed from the six face
// flags; the internal cache it refreshes is never a source of truth.
func (p *Puzzle) AllFacesPainted() bool {
	p.allPainted = p.faces == allFacesTrue
	return p.allPainted
}

// String renders the board one rune per cell: '*' painted, '.' unpainted,
// with the cube's cell shown as 'C' when painted and 'c' when not.
func (p *Puzzle) String() string {
	var b strings.Builder
	for r := 0; r < p.side; r++ {
		for c := 0; c < p.side; c++ {
			switch {
			case r == p.row && c == p.col && p.painted[r][c]:
				b.WriteByte('C')
			case r == p.row && c == p.col:
				b.WriteByte('c')
			case p.painted[r][c]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
