package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cavehop/physics"
)

// Stage is the singleton holding the current level geometry. Platforms are
// read in order by the resolver, so their order matters.
type Stage struct {
	Name      string
	Seed      uint64
	Width     float64
	Height    float64
	Gravity   float64
	Platforms []physics.Platform
	Bounds    cp.BB
	// KillY is the depth below which bodies are removed (enemies) or
	// respawned (player).
	KillY        float64
	PlayerSpawnX float64
	PlayerSpawnY float64
}

var StageComponent = NewComponent[Stage]()
