package physics

// Intent is the per-frame movement request handed to Resolver.Step. It is built
// by the entity's controller from input or AI, never from raw devices.
type Intent struct {
	// MoveX is the run direction in [-1, 1].
	MoveX float64
	// Jump is edge-triggered: set only on the frame the jump was requested.
	Jump bool
	// Dash raises the run limit to Config.DashSpeed for this step.
	Dash bool
}
