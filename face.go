package rollcube

// Face identifies one side of the cube. Indices are fixed relative to the
// board's row and column axes, not to the cube's paint: rolling the cube
// moves paint between indices, the indices themselves never turn.
type Face int

const (
	FaceFront  Face = 0 // Vertical, toward row 0
	FaceBack   Face = 1 // Vertical, toward the last row
	FaceLeft   Face = 2 // Vertical, toward column 0
	FaceRight  Face = 3 // Vertical, toward the last column
	FaceBottom Face = 4 // Resting on the board
	FaceTop    Face = 5 // Facing up
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceBottom:
		return "bottom"
	case FaceTop:
		return "top"
	default:
		return "?"
	}
}
