package component

// Brain drives an enemy from a tengo script. Params are exposed to the
// script as the `params` map.
type Brain struct {
	ScriptPath  string
	FollowRange float64
	AttackRange float64
	Params      map[string]float64
}

var BrainComponent = NewComponent[Brain]()
