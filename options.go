package rollcube

// Option configures a new Puzzle.
type Option func(*config)

type config struct {
	side    int
	row     int
	col     int
	painted [][]bool
	faces   []bool
}

func defaultConfig() *config {
	return &config{
		side: DefaultSide,
	}
}

// DefaultSide is the board side length used when no grid is supplied.
const DefaultSide = 4

// WithSide sets the board side length for a blank board. It is ignored
// when WithPainted supplies a grid, which fixes the side length itself.
// The side must be greater than 2.
func WithSide(side int) Option {
	return func(c *config) {
		c.side = side
	}
}

// WithStart places the cube at (row, col) instead of (0, 0). The position
// must be on the board.
func WithStart(row, col int) Option {
	return func(c *config) {
		c.row = row
		c.col = col
	}
}

// WithPainted supplies the initial cell paint. The grid must be square
// with side greater than 2; its contents are copied, not aliased.
func WithPainted(painted [][]bool) Option {
	return func(c *config) {
		c.painted = painted
		c.side = len(painted)
	}
}

// WithFacePaint supplies the initial paint of the six cube faces, indexed
// by Face. The default is all faces unpainted.
func WithFacePaint(faces [NumFaces]bool) Option {
	return func(c *config) {
		c.faces = faces[:]
	}
}
