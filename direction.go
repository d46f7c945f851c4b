package rollcube

import (
	"fmt"
	"strings"
)

// Direction is one of the four orthogonal roll directions on the board.
// North decreases the row, South increases it; West decreases the column,
// East increases it.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "?"
	}
}

// Delta returns the row and column offsets of a one-cell roll in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

// Opposite returns the direction that undoes a roll in d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// ParseDirection parses a direction name. It accepts compass names and
// single letters (north/n, east/e, south/s, west/w) as well as the screen
// names up, right, down and left.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "east", "e", "right":
		return East, nil
	case "south", "s", "down":
		return South, nil
	case "west", "w", "left":
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// rollCycles maps a direction of travel to the four face reassignments a
// one-cell roll performs. Each pair is (destination, source), read against
// a snapshot of the pre-roll faces. The two faces on the rotation axis
// (front/back for east-west rolls, left/right for north-south rolls) do
// not appear and are left unchanged.
var rollCycles = [4][4][2]Face{
	North: {
		{FaceBottom, FaceFront},
		{FaceFront, FaceTop},
		{FaceTop, FaceBack},
		{FaceBack, FaceBottom},
	},
	East: {
		{FaceRight, FaceTop},
		{FaceTop, FaceLeft},
		{FaceLeft, FaceBottom},
		{FaceBottom, FaceRight},
	},
	South: {
		{FaceBack, FaceTop},
		{FaceTop, FaceFront},
		{FaceFront, FaceBottom},
		{FaceBottom, FaceBack},
	},
	West: {
		{FaceBottom, FaceLeft},
		{FaceLeft, FaceTop},
		{FaceTop, FaceRight},
		{FaceRight, FaceBottom},
	},
}

// directionBetween returns the roll direction from (fromRow, fromCol) to
// (toRow, toCol), and false if the two cells are not orthogonally adjacent.
// A zero-distance "move" is not adjacent.
func directionBetween(fromRow, fromCol, toRow, toCol int) (Direction, bool) {
	switch {
	case toRow == fromRow-1 && toCol == fromCol:
		return North, true
	case toRow == fromRow+1 && toCol == fromCol:
		return South, true
	case toCol == fromCol-1 && toRow == fromRow:
		return West, true
	case toCol == fromCol+1 && toRow == fromRow:
		return East, true
	default:
		return 0, false
	}
}
