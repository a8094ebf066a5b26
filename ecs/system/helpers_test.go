package system

import (
	"testing"

	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func newStageWorld(t *testing.T, platforms ...physics.Platform) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	mustAdd(t, w, w.CreateEntity(), component.StageComponent.Kind(), &component.Stage{
		Width:     800,
		Height:    600,
		Gravity:   0.6,
		Platforms: platforms,
		KillY:     800,
	})
	return w
}

func testResolver() *physics.Resolver {
	return physics.NewResolver(physics.Config{MaxRun: 4, JumpSpeed: 12, DashSpeed: 10, Strict: true})
}

// addActor creates a moving entity with the components every system reads.
func addActor(t *testing.T, w *ecs.World, kind component.EntityKind, faction component.Faction, x, y, width, height float64) ecs.Entity {
	t.Helper()
	body, err := physics.NewBody(x, y, width, height)
	if err != nil {
		t.Fatalf("new body: %v", err)
	}
	facing := 1
	if kind == component.KindEnemy {
		facing = -1
	}
	e := w.CreateEntity()
	mustAdd(t, w, e, component.ActorComponent.Kind(), &component.Actor{Kind: kind, Faction: faction, Facing: facing})
	mustAdd(t, w, e, component.IntentComponent.Kind(), &physics.Intent{})
	mustAdd(t, w, e, component.BodyComponent.Kind(), body)
	mustAdd(t, w, e, component.MoverComponent.Kind(), &component.Mover{Resolver: testResolver()})
	if kind == component.KindPlayer {
		mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	}
	return e
}

func mustPlatform(t *testing.T, x, y, w, h float64) physics.Platform {
	t.Helper()
	p, err := physics.NewPlatform(x, y, w, h)
	if err != nil {
		t.Fatalf("new platform: %v", err)
	}
	return p
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func bodyOf(t *testing.T, w *ecs.World, e ecs.Entity) *physics.Body {
	t.Helper()
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no body", e)
	}
	return b
}
