// Package level defines rolling-cube puzzle setups and their text format.
//
// A level is written one rune per cell: '.' for an unpainted cell, '*' for
// a painted one, and 'c' or 'C' for the cube's starting cell (uppercase
// when that cell is itself painted). An optional "faces:" header seeds the
// cube's face paint with the same runes, six of them, in front, back,
// left, right, bottom, top order:
//
//	faces: ...*..
//	.*..
//	..c.
//	....
//	*...
package level

import (
	"math/rand"

	"github.com/rollcube/rollcube"
)

// Level is a named puzzle setup: board size, starting position, and the
// initial cell and face paint.
type Level struct {
	Name        string
	Side        int
	StartRow    int
	StartCol    int
	Painted     [][]bool
	FacePainted [rollcube.NumFaces]bool
}

// NewPuzzle builds a fresh puzzle in this level's starting state.
func (l *Level) NewPuzzle() *rollcube.Puzzle {
	return rollcube.New(
		rollcube.WithPainted(l.Painted),
		rollcube.WithStart(l.StartRow, l.StartCol),
		rollcube.WithFacePaint(l.FacePainted),
	)
}

// PaintedCells returns the number of painted cells on the board.
func (l *Level) PaintedCells() int {
	n := 0
	for _, row := range l.Painted {
		for _, p := range row {
			if p {
				n++
			}
		}
	}
	return n
}

// Random generates a level on a side x side board with the cube at a
// random cell and paintedCells randomly painted cells. The cube's starting
// cell may be one of them. Faces start unpainted. paintedCells is clamped
// to the number of board cells.
func Random(name string, side, paintedCells int, rng *rand.Rand) *Level {
	cells := side * side
	if paintedCells > cells {
		paintedCells = cells
	}
	if paintedCells < 0 {
		paintedCells = 0
	}

	l := &Level{
		Name:    name,
		Side:    side,
		Painted: make([][]bool, side),
	}
	for r := range l.Painted {
		l.Painted[r] = make([]bool, side)
	}

	start := rng.Intn(cells)
	l.StartRow = start / side
	l.StartCol = start % side

	for _, idx := range rng.Perm(cells)[:paintedCells] {
		l.Painted[idx/side][idx%side] = true
	}
	return l
}
