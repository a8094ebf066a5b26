package component

// Attack is a melee swing. While Frames > 0 the hitbox is live and every
// target it overlaps takes Damage once per swing.
type Attack struct {
	Reach          float64
	Height         float64
	Damage         int
	ActiveFrames   int
	CooldownFrames int

	Frames   int
	Cooldown int
	// Requested is set by controllers; the combat system starts the swing.
	Requested  bool
	HitTargets map[uint64]bool
}

func (a *Attack) Active() bool {
	return a != nil && a.Frames > 0
}

var AttackComponent = NewComponent[Attack]()
