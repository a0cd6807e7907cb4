package builder

import "errors"

var (
	// ErrTooFewVertices indicates a constructor parameter below its minimum
	// (every topology here needs at least one vertex per dimension).
	ErrTooFewVertices = errors.New("builder: too few vertices")
)
