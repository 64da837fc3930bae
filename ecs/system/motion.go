package system

import (
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

// MotionSystem derives the actor's velocity from its direction and gravity.
// Horizontal velocity is stored already scaled by the tick length. It never
// moves the actor.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(w *ecs.World) error {
	actor, err := Actor(w)
	if err != nil {
		return err
	}

	vel, ok := ecs.Get(w, actor, component.VelocityComponent.Kind())
	if !ok {
		return nil
	}
	player, ok := ecs.Get(w, actor, component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	dir := component.FaceRight
	if d, ok := ecs.Get(w, actor, component.DirectionComponent.Kind()); ok {
		dir = *d
	}
	grounded := false
	if out, ok := ecs.Get(w, actor, component.ControllerOutputComponent.Kind()); ok {
		grounded = out.Grounded
	}

	dt := w.Delta()
	vel.X = dir.RunSign() * player.RunSpeed * dt
	if !grounded {
		vel.Y -= player.Gravity * dt
		if player.TerminalVelocity < 0 && vel.Y < player.TerminalVelocity {
			vel.Y = player.TerminalVelocity
		}
	}
	return nil
}
