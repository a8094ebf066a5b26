package component

// Input stores per-frame input state for an entity. The *Pressed fields are
// edge triggered and only true on the frame the button went down.
type Input struct {
	MoveX         float64
	Jump          bool
	JumpPressed   bool
	DashPressed   bool
	AttackPressed bool
}

var InputComponent = NewComponent[Input]()
