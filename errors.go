package rollcube

import "errors"

// Sentinel errors for the rollcube package.
var (
	// Move errors
	ErrInvalidMove = errors.New("rollcube: invalid move")

	// Parsing errors
	ErrInvalidDirection = errors.New("rollcube: invalid direction")
)
