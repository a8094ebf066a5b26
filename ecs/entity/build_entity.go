package entity

import (
	"fmt"

	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/prefabs"
)

// Specs bundles every prefab the builders need.
type Specs struct {
	World   *prefabs.WorldSpec
	Player  *prefabs.PlayerSpec
	Enemies *prefabs.EnemiesSpec
}

func LoadSpecs() (*Specs, error) {
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemies, err := prefabs.LoadEnemySpecs()
	if err != nil {
		return nil, err
	}
	return &Specs{World: world, Player: player, Enemies: enemies}, nil
}

func addComponent[T any](w *ecs.World, e ecs.Entity, name string, kind component.ComponentKind[T], v *T) error {
	if err := ecs.Add(w, e, kind, v); err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	return nil
}

// build creates an entity and runs each step; on failure the half-built
// entity is destroyed.
func build(w *ecs.World, what string, steps ...func(e ecs.Entity) error) (ecs.Entity, error) {
	e := w.CreateEntity()
	for _, step := range steps {
		if err := step(e); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("%s: %w", what, err)
		}
	}
	return e, nil
}

func with[T any](w *ecs.World, name string, kind component.ComponentKind[T], v *T) func(ecs.Entity) error {
	return func(e ecs.Entity) error {
		return addComponent(w, e, name, kind, v)
	}
}
