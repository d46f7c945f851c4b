package rollcube

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	p := New()
	if p.Side() != 4 {
		t.Errorf("default side = %d, want 4", p.Side())
	}
	if p.CubeRow() != 0 || p.CubeCol() != 0 {
		t.Errorf("cube at (%d,%d), want (0,0)", p.CubeRow(), p.CubeCol())
	}
	if p.Moves() != 0 {
		t.Errorf("moves = %d, want 0", p.Moves())
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if p.IsPaintedSquare(r, c) {
				t.Errorf("cell (%d,%d) painted on a blank board", r, c)
			}
		}
	}
	for f := Face(0); f < NumFaces; f++ {
		if p.IsPaintedFace(f) {
			t.Errorf("face %v painted on a blank cube", f)
		}
	}
	if p.AllFacesPainted() {
		t.Error("blank cube reported as all painted")
	}
}

func TestMoveEastPicksUpPaint(t *testing.T) {
	// The canonical one-move game: blank 4x4, cell (0,1) painted, no faces
	// painted. Rolling east must leave front/back untouched, then transfer
	// the cell's paint onto the (still blank) bottom face.
	painted := make([][]bool, 4)
	for r := range painted {
		painted[r] = make([]bool, 4)
	}
	painted[0][1] = true
	p := New(WithPainted(painted))

	if err := p.Move(0, 1); err != nil {
		t.Fatalf("Move(0,1): %v", err)
	}

	if p.IsPaintedSquare(0, 1) {
		t.Error("cell (0,1) should have given up its paint")
	}
	want := [NumFaces]bool{FaceBottom: true}
	for f := Face(0); f < NumFaces; f++ {
		if p.IsPaintedFace(f) != want[f] {
			t.Errorf("face %v painted = %v, want %v", f, p.IsPaintedFace(f), want[f])
		}
	}
	if p.CubeRow() != 0 || p.CubeCol() != 1 {
		t.Errorf("cube at (%d,%d), want (0,1)", p.CubeRow(), p.CubeCol())
	}
	if p.Moves() != 1 {
		t.Errorf("moves = %d, want 1", p.Moves())
	}
}

func TestPaintTransferTable(t *testing.T) {
	// Rolling east carries the pre-roll right face onto the bottom, so
	// seeding FaceRight controls the post-rotation bottom paint.
	tests := []struct {
		name        string
		cellPainted bool
		comingDown  bool // pre-roll right face, post-roll bottom
		wantCell    bool
		wantBottom  bool
	}{
		{"cell painted, bottom blank", true, false, false, true},
		{"cell blank, bottom painted", false, true, true, false},
		{"both painted", true, true, true, true},
		{"both blank", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			painted := make([][]bool, 4)
			for r := range painted {
				painted[r] = make([]bool, 4)
			}
			painted[1][2] = tt.cellPainted

			p := New(
				WithPainted(painted),
				WithStart(1, 1),
				WithFacePaint([NumFaces]bool{FaceRight: tt.comingDown}),
			)
			if err := p.Move(1, 2); err != nil {
				t.Fatalf("Move(1,2): %v", err)
			}

			if got := p.IsPaintedSquare(1, 2); got != tt.wantCell {
				t.Errorf("cell painted = %v, want %v", got, tt.wantCell)
			}
			if got := p.IsPaintedFace(FaceBottom); got != tt.wantBottom {
				t.Errorf("bottom painted = %v, want %v", got, tt.wantBottom)
			}
		})
	}
}

func TestRotationFixedAxis(t *testing.T) {
	// The two faces orthogonal to the direction of travel never move.
	tests := []struct {
		dir  Direction
		axis [2]Face
	}{
		{East, [2]Face{FaceFront, FaceBack}},
		{West, [2]Face{FaceFront, FaceBack}},
		{North, [2]Face{FaceLeft, FaceRight}},
		{South, [2]Face{FaceLeft, FaceRight}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			var faces [NumFaces]bool
			faces[tt.axis[0]] = true
			p := New(WithStart(1, 1), WithFacePaint(faces))

			if err := p.Roll(tt.dir); err != nil {
				t.Fatalf("Roll(%v): %v", tt.dir, err)
			}
			if !p.IsPaintedFace(tt.axis[0]) {
				t.Errorf("axis face %v lost its paint rolling %v", tt.axis[0], tt.dir)
			}
			if p.IsPaintedFace(tt.axis[1]) {
				t.Errorf("axis face %v gained paint rolling %v", tt.axis[1], tt.dir)
			}
		})
	}
}

func TestRollCyclesMatchRollSemantics(t *testing.T) {
	// Spot-check each direction's permutation against the physical roll,
	// independent of the table the implementation uses.
	type perm map[Face]Face // destination <- source
	tests := []struct {
		dir  Direction
		want perm
	}{
		{East, perm{FaceRight: FaceTop, FaceTop: FaceLeft, FaceLeft: FaceBottom, FaceBottom: FaceRight}},
		{West, perm{FaceBottom: FaceLeft, FaceLeft: FaceTop, FaceTop: FaceRight, FaceRight: FaceBottom}},
		{South, perm{FaceBack: FaceTop, FaceTop: FaceFront, FaceFront: FaceBottom, FaceBottom: FaceBack}},
		{North, perm{FaceBottom: FaceFront, FaceFront: FaceTop, FaceTop: FaceBack, FaceBack: FaceBottom}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := perm{}
			for _, pair := range rollCycles[tt.dir] {
				got[pair[0]] = pair[1]
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cycle for %v = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestRollCyclesInverse(t *testing.T) {
	// Applying a direction's permutation and then its opposite's must be
	// the identity on the face array.
	seed := [NumFaces]bool{FaceFront: true, FaceBottom: true, FaceRight: true}

	apply := func(faces [NumFaces]bool, d Direction) [NumFaces]bool {
		prev := faces
		for _, pair := range rollCycles[d] {
			faces[pair[0]] = prev[pair[1]]
		}
		return faces
	}

	for d := North; d <= West; d++ {
		got := apply(apply(seed, d), d.Opposite())
		if got != seed {
			t.Errorf("roll %v then %v changed faces: %v -> %v", d, d.Opposite(), seed, got)
		}
	}
}

func TestRollRoundTripRestoresFaces(t *testing.T) {
	// On a blank board, painting only the axis faces keeps the bottom face
	// blank through both rolls, so no paint transfer interferes and the
	// round trip must restore the whole puzzle.
	tests := []struct {
		dir   Direction
		faces [NumFaces]bool
	}{
		{East, [NumFaces]bool{FaceFront: true, FaceBack: true}},
		{West, [NumFaces]bool{FaceFront: true}},
		{North, [NumFaces]bool{FaceLeft: true, FaceRight: true}},
		{South, [NumFaces]bool{FaceRight: true}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			p := New(WithSide(5), WithStart(2, 2), WithFacePaint(tt.faces))
			before := p.Clone()

			if err := p.Roll(tt.dir); err != nil {
				t.Fatalf("Roll(%v): %v", tt.dir, err)
			}
			if err := p.Roll(tt.dir.Opposite()); err != nil {
				t.Fatalf("Roll(%v): %v", tt.dir.Opposite(), err)
			}

			for f := Face(0); f < NumFaces; f++ {
				if p.IsPaintedFace(f) != before.IsPaintedFace(f) {
					t.Errorf("face %v changed across the round trip", f)
				}
			}
			if p.CubeRow() != 2 || p.CubeCol() != 2 {
				t.Errorf("cube at (%d,%d), want (2,2)", p.CubeRow(), p.CubeCol())
			}
			if p.Moves() != 2 {
				t.Errorf("moves = %d, want 2", p.Moves())
			}
		})
	}
}

func TestIllegalMovesLeaveStateUntouched(t *testing.T) {
	painted := make([][]bool, 4)
	for r := range painted {
		painted[r] = make([]bool, 4)
	}
	painted[2][2] = true

	tests := []struct {
		name     string
		row, col int
	}{
		{"in place", 1, 1},
		{"diagonal", 2, 2},
		{"distance two", 1, 3},
		{"row off board", -1, 1},
		{"col off board", 1, 4},
		{"far corner", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(
				WithPainted(painted),
				WithStart(1, 1),
				WithFacePaint([NumFaces]bool{FaceTop: true}),
			)
			before := p.Clone()

			err := p.Move(tt.row, tt.col)
			if !errors.Is(err, ErrInvalidMove) {
				t.Fatalf("Move(%d,%d) = %v, want ErrInvalidMove", tt.row, tt.col, err)
			}
			if !reflect.DeepEqual(p, before) {
				t.Errorf("failed move mutated the puzzle:\n%s", p.String())
			}
		})
	}
}

func TestMoveCounter(t *testing.T) {
	p := New()
	moves := [][2]int{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	for i, m := range moves {
		if err := p.Move(m[0], m[1]); err != nil {
			t.Fatalf("Move(%d,%d): %v", m[0], m[1], err)
		}
		if p.Moves() != i+1 {
			t.Errorf("after %d moves counter = %d", i+1, p.Moves())
		}
	}

	if err := p.Move(3, 3); err == nil {
		t.Fatal("expected illegal move to fail")
	}
	if p.Moves() != len(moves) {
		t.Errorf("failed move changed the counter to %d", p.Moves())
	}

	p.Reset(4, 0, 0, nil, nil)
	if p.Moves() != 0 {
		t.Errorf("Reset left counter at %d", p.Moves())
	}
}

func TestAllFacesPainted(t *testing.T) {
	all := [NumFaces]bool{true, true, true, true, true, true}
	p := New(WithFacePaint(all))
	if !p.AllFacesPainted() {
		t.Error("fully painted cube not reported as won")
	}

	for f := Face(0); f < NumFaces; f++ {
		faces := all
		faces[f] = false
		p := New(WithFacePaint(faces))
		if p.AllFacesPainted() {
			t.Errorf("unpainted %v face still reported as won", f)
		}
	}
}

func TestWinByLastTransfer(t *testing.T) {
	// Five painted faces with a blank right face: rolling east swings the
	// blank onto the bottom, where the painted landing cell fills it in.
	painted := make([][]bool, 3)
	for r := range painted {
		painted[r] = make([]bool, 3)
	}
	painted[0][1] = true

	p := New(
		WithPainted(painted),
		WithFacePaint([NumFaces]bool{
			FaceFront: true, FaceBack: true, FaceLeft: true,
			FaceBottom: true, FaceTop: true,
		}),
	)
	if p.AllFacesPainted() {
		t.Fatal("puzzle should not start won")
	}
	if err := p.Move(0, 1); err != nil {
		t.Fatalf("Move(0,1): %v", err)
	}
	if !p.AllFacesPainted() {
		t.Errorf("puzzle should be won, faces: %v", p.faces)
	}
	if p.IsPaintedSquare(0, 1) {
		t.Error("landing cell kept its paint after the transfer")
	}
}

func TestCopyFromIsolation(t *testing.T) {
	painted := make([][]bool, 4)
	for r := range painted {
		painted[r] = make([]bool, 4)
	}
	painted[1][0] = true

	a := New(WithPainted(painted), WithFacePaint([NumFaces]bool{FaceTop: true}))
	if err := a.Move(1, 0); err != nil {
		t.Fatalf("Move(1,0): %v", err)
	}

	b := New()
	b.CopyFrom(a)
	if b.Moves() != a.Moves() {
		t.Errorf("copy has %d moves, original %d", b.Moves(), a.Moves())
	}

	snapshot := a.Clone()
	if err := b.Move(0, 0); err != nil {
		t.Fatalf("Move(0,0) on copy: %v", err)
	}
	if !reflect.DeepEqual(a, snapshot) {
		t.Error("mutating the copy changed the original")
	}
	if b.Moves() == a.Moves() {
		t.Error("copy's move counter did not advance independently")
	}
}

func TestCloneIsolation(t *testing.T) {
	p := New()
	q := p.Clone()
	if err := q.Move(0, 1); err != nil {
		t.Fatalf("Move(0,1): %v", err)
	}
	if p.Moves() != 0 || p.CubeCol() != 0 {
		t.Error("mutating a clone changed the source puzzle")
	}
}

func TestRollOffBoard(t *testing.T) {
	p := New() // cube at (0,0)
	if err := p.Roll(North); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Roll(North) at row 0 = %v, want ErrInvalidMove", err)
	}
	if err := p.Roll(West); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Roll(West) at col 0 = %v, want ErrInvalidMove", err)
	}
	if p.Moves() != 0 {
		t.Errorf("failed rolls advanced the counter to %d", p.Moves())
	}
}

func TestRollBadDirection(t *testing.T) {
	p := New()
	if err := p.Roll(Direction(9)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("Roll(9) = %v, want ErrInvalidDirection", err)
	}
}

func TestString(t *testing.T) {
	painted := make([][]bool, 3)
	for r := range painted {
		painted[r] = make([]bool, 3)
	}
	painted[0][2] = true
	painted[1][1] = true

	p := New(WithPainted(painted), WithStart(1, 1))
	want := "..*\n.C.\n...\n"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
