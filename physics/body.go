package physics

import (
	"fmt"

	"github.com/milk9111/cavehop/common"
)

// Body is the kinematic state of one mobile entity. X and Y are the top-left
// corner of its bounding box. The size never changes after NewBody.
type Body struct {
	X, Y   float64
	VX, VY float64

	// Grounded is written by the vertical pass of Resolver.Step and read back
	// by the next step to gate jumps.
	Grounded bool

	w, h float64
}

// NewBody validates the size and position and returns a body at rest.
func NewBody(x, y, w, h float64) (*Body, error) {
	if err := validateRect(x, y, w, h); err != nil {
		return nil, err
	}
	return &Body{X: x, Y: y, w: w, h: h}, nil
}

func (b *Body) W() float64 { return b.w }
func (b *Body) H() float64 { return b.h }

// Rect returns the current bounding box.
func (b *Body) Rect() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, W: b.w, H: b.h}
}

func validateRect(x, y, w, h float64) error {
	if !common.Finite(w, h) || w <= 0 || h <= 0 {
		return fmt.Errorf("%w: got %gx%g", ErrInvalidSize, w, h)
	}
	if !common.Finite(x, y) {
		return fmt.Errorf("%w: position (%g, %g)", ErrNonFinite, x, y)
	}
	return nil
}
