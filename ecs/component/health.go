package component

// Health tracks hit points. InvulnerableFrames counts down after each hit
// and blocks further damage while positive.
type Health struct {
	Max     int
	Current int

	InvulnerableFrames int
	IFrames            int
}

func (h *Health) Dead() bool {
	return h != nil && h.Current <= 0
}

var HealthComponent = NewComponent[Health]()
