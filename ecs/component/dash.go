package component

// Dash is a short burst that lifts the run limit to the resolver's DashSpeed.
type Dash struct {
	DurationFrames int
	CooldownFrames int

	Frames   int
	Cooldown int
}

func (d *Dash) Active() bool {
	return d != nil && d.Frames > 0
}

var DashComponent = NewComponent[Dash]()
