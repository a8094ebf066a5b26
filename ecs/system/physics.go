package system

import (
	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
)

// PhysicsSystem steps every body against the stage platforms, in entity
// order, one resolver step per body per frame.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	stageEnt, ok := w.First(component.StageComponent.Kind())
	if !ok {
		return
	}
	stage, _ := ecs.Get(w, stageEnt, component.StageComponent.Kind())

	for _, e := range w.Query(component.BodyComponent.Kind(), component.MoverComponent.Kind()) {
		body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
		mover, _ := ecs.Get(w, e, component.MoverComponent.Kind())
		if mover.Resolver == nil {
			continue
		}

		var in physics.Intent
		if intent, ok := ecs.Get(w, e, component.IntentComponent.Kind()); ok {
			in = *intent
		}

		gravity := stage.Gravity
		if mover.GravityScale != 0 {
			gravity *= mover.GravityScale
		}

		wasGrounded := body.Grounded
		contacts := mover.Resolver.Step(body, in, gravity, stage.Platforms)

		if c, ok := ecs.Get(w, e, component.ContactsComponent.Kind()); ok {
			*c = contacts
		} else if err := ecs.Add(w, e, component.ContactsComponent.Kind(), &contacts); err != nil {
			panic("physics system: add contacts: " + err.Error())
		}

		events := w.Events()
		if contacts.Landed && !wasGrounded {
			events.Push(ecs.Event{Type: ecs.EventLanded, Entity: e})
		}
		if contacts.Bounced {
			events.Push(ecs.Event{Type: ecs.EventBounced, Entity: e})
		}

		if stage.KillY > 0 && body.Y > stage.KillY {
			fellOut(w, e, body)
		}
	}
}

// fellOut removes an entity that dropped below the kill line. Entities with
// a Spawn point (the player) are put back there instead.
func fellOut(w *ecs.World, e ecs.Entity, body *physics.Body) {
	if spawn, ok := ecs.Get(w, e, component.SpawnComponent.Kind()); ok && ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		respawn(w, e, body, spawn)
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventDespawn, Entity: e})
	w.DestroyEntity(e)
}

func respawn(w *ecs.World, e ecs.Entity, body *physics.Body, spawn *component.Spawn) {
	body.X, body.Y = spawn.X, spawn.Y
	body.VX, body.VY = 0, 0
	body.Grounded = false
	if c, ok := ecs.Get(w, e, component.ContactsComponent.Kind()); ok {
		*c = physics.Contacts{}
	}
	w.Events().Push(ecs.Event{Type: ecs.EventRespawn, Entity: e})
}
