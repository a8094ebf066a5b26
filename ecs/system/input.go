package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cavehop/common"
	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
)

// InputState is one frame of player input, already mapped from devices.
type InputState struct {
	MoveX         float64
	Jump          bool
	JumpPressed   bool
	DashPressed   bool
	AttackPressed bool
}

// InputSource produces the input for the current frame. The game polls
// ebiten; tests feed canned states.
type InputSource interface {
	Poll() InputState
}

type InputSourceFunc func() InputState

func (f InputSourceFunc) Poll() InputState { return f() }

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	state := i.source.Poll()
	moveX := 0.0
	if common.Finite(state.MoveX) {
		moveX = cp.Clamp(state.MoveX, -1, 1)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.Jump = state.Jump
		input.JumpPressed = state.JumpPressed
		input.DashPressed = state.DashPressed
		input.AttackPressed = state.AttackPressed
	})
}
