package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Config holds the tuning of a Resolver.
type Config struct {
	MaxRun float64
	// RunAccel is the per-step change of VX toward the target speed.
	// 0 sets VX directly.
	RunAccel  float64
	JumpSpeed float64
	DashSpeed float64

	// Bounds is the soft clamp applied to a body's top-left corner after
	// collision. L/R bound X and B/T bound Y (B is the smaller Y since Y
	// grows downward). An empty box disables the clamp.
	Bounds cp.BB

	// Strict panics on non-finite state instead of repairing it.
	Strict bool
}

func DefaultConfig() Config {
	return Config{
		MaxRun:    4,
		JumpSpeed: 12,
		DashSpeed: 10,
		Bounds:    SoftBounds(800, 600, 2000),
	}
}

// SoftBounds returns a box covering a stage of the given size plus margin on
// every side.
func SoftBounds(width, height, margin float64) cp.BB {
	return cp.BB{L: -margin, B: -margin, R: width + margin, T: height + margin}
}

func unbounded() cp.BB {
	return cp.BB{L: math.Inf(-1), B: math.Inf(-1), R: math.Inf(1), T: math.Inf(1)}
}
