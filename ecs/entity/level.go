package entity

import (
	"fmt"
	"maps"

	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/levels"
)

// GeneratorOptions maps world tuning onto cave generator options.
func GeneratorOptions(specs *Specs) levels.Options {
	opts := levels.DefaultOptions()
	if specs == nil || specs.World == nil {
		return opts
	}
	ws := specs.World
	opts.Width, opts.Height = ws.Width, ws.Height
	if ws.Platforms > 0 {
		opts.Platforms = ws.Platforms
	}
	if ws.PlatformWidth > 0 {
		opts.PlatformWidth = ws.PlatformWidth
	}
	if ws.PlatformHeight > 0 {
		opts.PlatformHeight = ws.PlatformHeight
	}
	if ws.FloorHeight > 0 {
		opts.FloorHeight = ws.FloorHeight
	}
	if ws.FirstRow > 0 {
		opts.FirstRow = ws.FirstRow
	}
	if ws.RowGap > 0 {
		opts.RowGap = ws.RowGap
	}
	opts.BounceVelocity = ws.BounceVelocity
	opts.Enemies = ws.Enemies
	if specs.Enemies != nil {
		opts.EnemyKinds = specs.Enemies.Kinds()
	}
	return opts
}

// NewStage creates the stage singleton for a level.
func NewStage(w *ecs.World, stage *levels.Stage, specs *Specs) (ecs.Entity, error) {
	if stage == nil || specs == nil || specs.World == nil {
		return 0, fmt.Errorf("stage: missing stage or world spec")
	}
	comp := &component.Stage{
		Name:         stage.Name,
		Seed:         stage.Seed,
		Width:        stage.Width,
		Height:       stage.Height,
		Platforms:    stage.Platforms,
		PlayerSpawnX: stage.PlayerSpawn.X,
		PlayerSpawnY: stage.PlayerSpawn.Y,
	}
	applyWorld(comp, specs)
	e, err := build(w, "stage", with(w, "stage", component.StageComponent.Kind(), comp))
	if err != nil {
		return 0, err
	}
	w.Events().Push(ecs.Event{Type: ecs.EventStageLoad, Entity: e})
	return e, nil
}

// BuildStage fills an empty world with the stage, the player and the stage's
// enemies. It returns the player.
func BuildStage(w *ecs.World, stage *levels.Stage, specs *Specs) (ecs.Entity, error) {
	if _, err := NewStage(w, stage, specs); err != nil {
		return 0, err
	}
	player, err := NewPlayerAt(w, specs, stage.PlayerSpawn.X, stage.PlayerSpawn.Y)
	if err != nil {
		return 0, err
	}
	for _, spawn := range stage.Enemies {
		if _, err := NewEnemyAt(w, specs, spawn.Kind, spawn.X, spawn.Y); err != nil {
			return 0, err
		}
	}
	return player, nil
}

// ApplySpecs pushes reloaded tuning into a running world: stage gravity and
// kill line, and a fresh resolver for every mover. Positions and health are
// left alone.
func ApplySpecs(w *ecs.World, specs *Specs) error {
	if specs == nil || specs.World == nil || specs.Player == nil || specs.Enemies == nil {
		return fmt.Errorf("apply specs: incomplete specs")
	}

	ecs.ForEach(w, component.StageComponent.Kind(), func(e ecs.Entity, s *component.Stage) {
		applyWorld(s, specs)
	})

	var err error
	ecs.ForEach2(w, component.ActorComponent.Kind(), component.MoverComponent.Kind(), func(e ecs.Entity, actor *component.Actor, mover *component.Mover) {
		switch actor.Kind {
		case component.KindPlayer:
			*mover = *playerMover(specs)
		case component.KindEnemy:
			spec, specErr := enemySpec(specs, actor.Name)
			if specErr != nil {
				err = specErr
				return
			}
			*mover = *enemyMover(specs, spec)
			if brain, ok := ecs.Get(w, e, component.BrainComponent.Kind()); ok {
				brain.ScriptPath = spec.Script
				brain.FollowRange = spec.FollowRange
				brain.AttackRange = spec.AttackRange
				brain.Params = maps.Clone(spec.Params)
			}
		}
	})
	return err
}

func applyWorld(s *component.Stage, specs *Specs) {
	s.Gravity = specs.World.Gravity
	s.Bounds = specs.World.Bounds()
	s.KillY = s.Height + specs.World.KillMargin
}
