package system

import (
	"github.com/milk9111/bobross/common"
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

// VelocitySystem turns each controller's velocity into a displacement
// request for this tick's sweep.
type VelocitySystem struct{}

func NewVelocitySystem() *VelocitySystem {
	return &VelocitySystem{}
}

func (s *VelocitySystem) Update(w *ecs.World) error {
	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.KinematicControllerComponent.Kind(), func(_ ecs.Entity, vel *component.Velocity, ctrl *component.KinematicController) {
		ctrl.Request(common.Vec2{X: vel.X, Y: vel.Y})
	})
	return nil
}
