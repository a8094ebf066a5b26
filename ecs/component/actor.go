package component

// EntityKind selects the controller that drives an actor.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Faction decides who can hit whom. Attacks only land on other factions.
type Faction int

const (
	FactionHero Faction = iota + 1
	FactionCave
)

// Actor is the common record for anything that moves under its own intent.
type Actor struct {
	Kind    EntityKind
	Faction Faction
	Name    string
	// Facing is +1 (right) or -1 (left). It follows the last non-zero move.
	Facing int
}

var ActorComponent = NewComponent[Actor]()
