package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

// Action is a logical button the actor responds to.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
)

// InputSource reports whether an action is held right now.
type InputSource interface {
	Pressed(a Action) bool
}

// EbitenInput polls the keyboard and the first standard gamepad.
type EbitenInput struct{}

const stickDeadzone = 0.2

func (EbitenInput) Pressed(a Action) bool {
	var pad ebiten.GamepadID
	hasPad := false
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		pad = gamepads[0]
		hasPad = ebiten.IsStandardGamepadLayoutAvailable(pad)
	}

	switch a {
	case ActionMoveLeft:
		if ebiten.IsKeyPressed(ebiten.KeyZ) || ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			return true
		}
		return hasPad && (ebiten.IsStandardGamepadButtonPressed(pad, ebiten.StandardGamepadButtonLeftLeft) ||
			ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal) < -stickDeadzone)
	case ActionMoveRight:
		if ebiten.IsKeyPressed(ebiten.KeyX) || ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			return true
		}
		return hasPad && (ebiten.IsStandardGamepadButtonPressed(pad, ebiten.StandardGamepadButtonLeftRight) ||
			ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal) > stickDeadzone)
	case ActionJump:
		if ebiten.IsKeyPressed(ebiten.KeySpace) {
			return true
		}
		return hasPad && ebiten.IsStandardGamepadButtonPressed(pad, ebiten.StandardGamepadButtonRightBottom)
	default:
		return false
	}
}

// InputSystem copies the source's held state into every Input component.
// The jump edge is derived from the previous tick's held state.
type InputSystem struct {
	source   InputSource
	prevJump bool
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) error {
	if i == nil || i.source == nil || w == nil {
		return nil
	}

	left := i.source.Pressed(ActionMoveLeft)
	right := i.source.Pressed(ActionMoveRight)
	jump := i.source.Pressed(ActionJump)
	jumpPressed := jump && !i.prevJump
	i.prevJump = jump

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Jump = jump
		input.JumpPressed = jumpPressed
	})
	return nil
}
