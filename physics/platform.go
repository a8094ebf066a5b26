package physics

import (
	"fmt"
	"math"

	"github.com/milk9111/cavehop/common"
)

// DefaultBounceVelocity is the launch speed used when a bouncy platform is
// created without one.
const DefaultBounceVelocity = 15.0

// Platform is a static rectangle. It is a value type and has no setters, so a
// stage's platform list can be shared read-only between bodies.
type Platform struct {
	rect   common.Rect
	bouncy bool
	bounce float64
}

func NewPlatform(x, y, w, h float64) (Platform, error) {
	if err := validateRect(x, y, w, h); err != nil {
		return Platform{}, err
	}
	return Platform{rect: common.Rect{X: x, Y: y, W: w, H: h}}, nil
}

// NewBouncyPlatform creates a platform that launches bodies landing on it.
// bounce is a magnitude; its sign is ignored and 0 selects
// DefaultBounceVelocity.
func NewBouncyPlatform(x, y, w, h, bounce float64) (Platform, error) {
	p, err := NewPlatform(x, y, w, h)
	if err != nil {
		return Platform{}, err
	}
	if !common.Finite(bounce) {
		return Platform{}, fmt.Errorf("%w: bounce velocity %g", ErrNonFinite, bounce)
	}
	bounce = math.Abs(bounce)
	if bounce == 0 {
		bounce = DefaultBounceVelocity
	}
	p.bouncy = true
	p.bounce = bounce
	return p, nil
}

func (p Platform) Rect() common.Rect { return p.rect }
func (p Platform) Bouncy() bool      { return p.bouncy }

// BounceVelocity is the upward speed imparted on landing, 0 for solid platforms.
func (p Platform) BounceVelocity() float64 { return p.bounce }
