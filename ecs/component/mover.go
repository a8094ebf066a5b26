package component

import "github.com/milk9111/cavehop/physics"

// Mover binds a body to the resolver tuned for it. Gravity comes from the
// stage; everything else (run speed, jump, dash, bounds) from the resolver.
type Mover struct {
	Resolver *physics.Resolver
	// GravityScale multiplies stage gravity. Zero means 1.
	GravityScale float64
}

var MoverComponent = NewComponent[Mover]()
