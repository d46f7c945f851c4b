// Package rollcube models the rolling-cube paint puzzle: a cube sits on
// one cell of a square board and is rolled orthogonally between adjacent
// cells. Some board cells and some cube faces start painted; every roll
// rotates the cube's face paint and then exchanges paint between the cube's
// bottom face and the cell it lands on. The puzzle is won when all six
// faces are painted.
//
// # Quick Start
//
// Create a board and roll the cube around:
//
//	p := rollcube.New() // blank 4x4, cube at (0,0)
//
//	if err := p.Move(0, 1); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("moves:", p.Moves())
//	fmt.Println("won:", p.AllFacesPainted())
//
// Moves to cells that are off the board or not orthogonally adjacent fail
// with ErrInvalidMove and leave the puzzle untouched.
//
// # Directions
//
// Roll is a convenience over Move for keyboard-style input:
//
//	p.Roll(rollcube.East) // same as p.Move(p.CubeRow(), p.CubeCol()+1)
//
// # Watching for changes
//
// Any number of observers may subscribe to the puzzle. Handlers fire
// synchronously after every successful mutation and read state back
// through the accessors:
//
//	id := p.Subscribe(func() {
//	    fmt.Print(p.String())
//	})
//	defer p.Unsubscribe(id)
//
// # Paint transfer
//
// Paint moves between the landing cell and the cube's bottom face only
// when exactly one of the two holds paint: a painted cell paints a blank
// bottom face (and becomes blank), a painted bottom face paints a blank
// cell (and becomes blank). If both or neither are painted, nothing
// changes.
package rollcube
