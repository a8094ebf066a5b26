package entity

import (
	"fmt"

	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
	"github.com/milk9111/cavehop/prefabs"
	"golang.org/x/image/colornames"
)

// NewPlayerAt creates the player standing on (x, y): x is the horizontal
// centre and y the floor line under its feet.
func NewPlayerAt(w *ecs.World, specs *Specs, x, y float64) (ecs.Entity, error) {
	if specs == nil || specs.Player == nil {
		return 0, fmt.Errorf("player: missing spec")
	}
	spec := specs.Player

	body, err := physics.NewBody(x-spec.Collider.Width/2, y-spec.Collider.Height, spec.Collider.Width, spec.Collider.Height)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	return build(w, "player",
		with(w, "player_tag", component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		with(w, "actor", component.ActorComponent.Kind(), &component.Actor{
			Kind:    component.KindPlayer,
			Faction: component.FactionHero,
			Name:    spec.Name,
			Facing:  1,
		}),
		with(w, "input", component.InputComponent.Kind(), &component.Input{}),
		with(w, "intent", component.IntentComponent.Kind(), &physics.Intent{}),
		with(w, "body", component.BodyComponent.Kind(), body),
		with(w, "mover", component.MoverComponent.Kind(), playerMover(specs)),
		with(w, "dash", component.DashComponent.Kind(), &component.Dash{
			DurationFrames: spec.Dash.DurationFrames,
			CooldownFrames: spec.Dash.CooldownFrames,
		}),
		with(w, "attack", component.AttackComponent.Kind(), attackFromSpec(spec.Attack)),
		with(w, "health", component.HealthComponent.Kind(), healthFromSpec(spec.Health)),
		with(w, "spawn", component.SpawnComponent.Kind(), &component.Spawn{X: body.X, Y: body.Y}),
		with(w, "appearance", component.AppearanceComponent.Kind(), &component.Appearance{
			Color: spec.Color.Or(colornames.Dodgerblue),
		}),
	)
}

func playerMover(specs *Specs) *component.Mover {
	spec := specs.Player
	return &component.Mover{
		Resolver:     physics.NewResolver(prefabs.ResolverConfig(spec.Movement, spec.Dash, specs.World)),
		GravityScale: spec.Movement.GravityScale,
	}
}

func attackFromSpec(spec prefabs.AttackSpec) *component.Attack {
	return &component.Attack{
		Reach:          spec.Reach,
		Height:         spec.Height,
		Damage:         spec.Damage,
		ActiveFrames:   spec.ActiveFrames,
		CooldownFrames: spec.CooldownFrames,
	}
}

func healthFromSpec(spec prefabs.HealthSpec) *component.Health {
	hp := spec.Max
	if hp <= 0 {
		hp = 1
	}
	return &component.Health{
		Max:                hp,
		Current:            hp,
		InvulnerableFrames: spec.InvulnerableFrames,
	}
}
