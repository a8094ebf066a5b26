package system

import (
	"github.com/milk9111/cavehop/common"
	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
)

// ControllerSystem turns per-kind input into physics intents. Players read
// their Input component; enemies already had their intent written by the
// AI system and only get the shared bookkeeping (dash timers, facing).
type ControllerSystem struct{}

func NewControllerSystem() *ControllerSystem {
	return &ControllerSystem{}
}

func (c *ControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ActorComponent.Kind(), component.IntentComponent.Kind(), func(e ecs.Entity, actor *component.Actor, intent *physics.Intent) {
		dash, _ := ecs.Get(w, e, component.DashComponent.Kind())
		if dash != nil {
			if dash.Frames > 0 {
				dash.Frames--
			}
			if dash.Cooldown > 0 {
				dash.Cooldown--
			}
		}

		switch actor.Kind {
		case component.KindPlayer:
			c.updatePlayer(w, e, intent)
		case component.KindEnemy:
			// written by AISystem
		}

		if intent.MoveX != 0 {
			actor.Facing = common.Sign(intent.MoveX)
		}
		if actor.Facing == 0 {
			actor.Facing = 1
		}

		if actor.Kind == component.KindPlayer && dash != nil {
			if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && input.DashPressed {
				startDash(dash)
			}
		}

		intent.Dash = dash.Active()
		if intent.Dash && intent.MoveX == 0 {
			intent.MoveX = float64(actor.Facing)
		}
	})
}

func (c *ControllerSystem) updatePlayer(w *ecs.World, e ecs.Entity, intent *physics.Intent) {
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		*intent = physics.Intent{}
		return
	}

	intent.MoveX = input.MoveX
	intent.Jump = input.JumpPressed

	if input.AttackPressed {
		if atk, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok {
			atk.Requested = true
		}
	}
}

func startDash(d *component.Dash) {
	if d.Cooldown > 0 || d.Frames > 0 || d.DurationFrames <= 0 {
		return
	}
	d.Frames = d.DurationFrames
	d.Cooldown = d.DurationFrames + d.CooldownFrames
}
