package physics

import "errors"

var (
	ErrInvalidSize = errors.New("physics: width and height must be positive")
	ErrNonFinite   = errors.New("physics: non-finite value")
)
