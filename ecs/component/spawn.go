package component

// Spawn is where an entity returns to after falling out of the stage.
type Spawn struct {
	X float64
	Y float64
}

var SpawnComponent = NewComponent[Spawn]()
