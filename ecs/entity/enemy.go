package entity

import (
	"fmt"
	"maps"

	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
	"github.com/milk9111/cavehop/prefabs"
	"golang.org/x/image/colornames"
)

// NewEnemyAt creates an enemy of the named kind standing on (x, y). An empty
// kind picks the first kind in name order.
func NewEnemyAt(w *ecs.World, specs *Specs, kind string, x, y float64) (ecs.Entity, error) {
	spec, err := enemySpec(specs, kind)
	if err != nil {
		return 0, err
	}

	body, err := physics.NewBody(x-spec.Collider.Width/2, y-spec.Collider.Height, spec.Collider.Width, spec.Collider.Height)
	if err != nil {
		return 0, fmt.Errorf("enemy %s: %w", spec.Name, err)
	}

	return build(w, "enemy "+spec.Name,
		with(w, "enemy_tag", component.EnemyTagComponent.Kind(), &component.EnemyTag{}),
		with(w, "actor", component.ActorComponent.Kind(), &component.Actor{
			Kind:    component.KindEnemy,
			Faction: component.FactionCave,
			Name:    spec.Name,
			Facing:  -1,
		}),
		with(w, "intent", component.IntentComponent.Kind(), &physics.Intent{}),
		with(w, "body", component.BodyComponent.Kind(), body),
		with(w, "mover", component.MoverComponent.Kind(), enemyMover(specs, spec)),
		with(w, "attack", component.AttackComponent.Kind(), attackFromSpec(spec.Attack)),
		with(w, "health", component.HealthComponent.Kind(), healthFromSpec(spec.Health)),
		with(w, "brain", component.BrainComponent.Kind(), &component.Brain{
			ScriptPath:  spec.Script,
			FollowRange: spec.FollowRange,
			AttackRange: spec.AttackRange,
			Params:      maps.Clone(spec.Params),
		}),
		with(w, "spawn", component.SpawnComponent.Kind(), &component.Spawn{X: body.X, Y: body.Y}),
		with(w, "appearance", component.AppearanceComponent.Kind(), &component.Appearance{
			Color: spec.Color.Or(colornames.Firebrick),
		}),
	)
}

func enemySpec(specs *Specs, kind string) (*prefabs.EnemySpec, error) {
	if specs == nil || specs.Enemies == nil || len(specs.Enemies.Enemies) == 0 {
		return nil, fmt.Errorf("enemy: missing spec")
	}
	if kind == "" {
		kind = specs.Enemies.Kinds()[0]
	}
	spec, ok := specs.Enemies.Enemies[kind]
	if !ok {
		return nil, fmt.Errorf("enemy: unknown kind %q", kind)
	}
	if spec.Name == "" {
		spec.Name = kind
	}
	return &spec, nil
}

func enemyMover(specs *Specs, spec *prefabs.EnemySpec) *component.Mover {
	return &component.Mover{
		Resolver:     physics.NewResolver(prefabs.ResolverConfig(spec.Movement, prefabs.DashSpec{}, specs.World)),
		GravityScale: spec.Movement.GravityScale,
	}
}
