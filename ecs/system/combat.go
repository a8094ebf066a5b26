package system

import (
	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
)

// CombatSystem runs attack timers and applies melee hits. A swing hits each
// target at most once, only across factions, and never during the target's
// invulnerability frames.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Health) {
		if h.IFrames > 0 {
			h.IFrames--
		}
	})

	ecs.ForEach(w, component.AttackComponent.Kind(), func(e ecs.Entity, a *component.Attack) {
		tickAttack(a)
	})

	targets := w.Query(component.HealthComponent.Kind(), component.ActorComponent.Kind(), component.BodyComponent.Kind())

	for _, e := range w.Query(component.AttackComponent.Kind(), component.ActorComponent.Kind(), component.BodyComponent.Kind()) {
		if !w.IsAlive(e) {
			continue
		}
		atk, _ := ecs.Get(w, e, component.AttackComponent.Kind())
		actor, _ := ecs.Get(w, e, component.ActorComponent.Kind())
		body, _ := ecs.Get(w, e, component.BodyComponent.Kind())

		box, ok := physics.Hitbox(body.Rect(), physics.Attack{
			Facing: actor.Facing,
			Reach:  atk.Reach,
			Height: atk.Height,
			Active: atk.Active(),
		})
		if !ok {
			continue
		}

		for _, t := range targets {
			if t == e || !w.IsAlive(t) || atk.HitTargets[uint64(t)] {
				continue
			}
			tActor, _ := ecs.Get(w, t, component.ActorComponent.Kind())
			if tActor.Faction == actor.Faction {
				continue
			}
			tBody, _ := ecs.Get(w, t, component.BodyComponent.Kind())
			if !physics.Overlaps(box, tBody.Rect()) {
				continue
			}

			if atk.HitTargets == nil {
				atk.HitTargets = map[uint64]bool{}
			}
			atk.HitTargets[uint64(t)] = true
			health, _ := ecs.Get(w, t, component.HealthComponent.Kind())
			if health.IFrames > 0 || health.Dead() {
				continue
			}
			applyHit(w, e, t, atk.Damage, health, tBody)
		}
	}
}

func tickAttack(a *component.Attack) {
	if a.Cooldown > 0 {
		a.Cooldown--
	}
	if a.Frames > 0 {
		a.Frames--
	}

	requested := a.Requested
	a.Requested = false
	if !requested || a.Frames > 0 || a.Cooldown > 0 || a.ActiveFrames <= 0 {
		return
	}
	a.Frames = a.ActiveFrames
	a.Cooldown = a.ActiveFrames + a.CooldownFrames
	a.HitTargets = map[uint64]bool{}
}

func applyHit(w *ecs.World, attacker, target ecs.Entity, damage int, h *component.Health, body *physics.Body) {
	h.Current -= damage
	h.IFrames = h.InvulnerableFrames
	w.Events().Push(ecs.Event{Type: ecs.EventHit, Entity: target, Source: attacker, Value: damage})

	if h.Current > 0 {
		return
	}
	h.Current = 0
	w.Events().Push(ecs.Event{Type: ecs.EventDeath, Entity: target, Source: attacker})

	if spawn, ok := ecs.Get(w, target, component.SpawnComponent.Kind()); ok && ecs.Has(w, target, component.PlayerTagComponent.Kind()) {
		h.Current = h.Max
		respawn(w, target, body, spawn)
		return
	}
	w.DestroyEntity(target)
}
