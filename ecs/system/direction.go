package system

import (
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

// DirectionSystem advances the actor's direction state and applies the jump
// impulse. Both only happen while the last sweep left the actor grounded.
type DirectionSystem struct{}

func NewDirectionSystem() *DirectionSystem {
	return &DirectionSystem{}
}

func (s *DirectionSystem) Update(w *ecs.World) error {
	actor, err := Actor(w)
	if err != nil {
		return err
	}

	out, ok := ecs.Get(w, actor, component.ControllerOutputComponent.Kind())
	if !ok || !out.Grounded {
		return nil
	}
	input, ok := ecs.Get(w, actor, component.InputComponent.Kind())
	if !ok {
		return nil
	}

	if dir, ok := ecs.Get(w, actor, component.DirectionComponent.Kind()); ok {
		*dir = dir.Next(input.Left, input.Right)
	}

	if !input.JumpPressed {
		return nil
	}
	vel, ok := ecs.Get(w, actor, component.VelocityComponent.Kind())
	if !ok {
		return nil
	}
	player, ok := ecs.Get(w, actor, component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	vel.Y = player.JumpImpulse
	return nil
}
