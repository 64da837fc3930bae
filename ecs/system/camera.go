package system

import (
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update centers the camera on the actor, raised by the camera's offset.
func (cs *CameraSystem) Update(w *ecs.World) error {
	if !cs.camEntity.Valid() || !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return nil
		}
		cs.camEntity = camEntity
	}

	actor, err := Actor(w)
	if err != nil {
		return err
	}
	target, ok := ecs.Get(w, actor, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return nil
	}

	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return ecs.Add(w, cs.camEntity, component.TransformComponent.Kind(), &component.Transform{X: target.X, Y: target.Y + cam.OffsetY})
	}
	camTransform.X = target.X
	camTransform.Y = target.Y + cam.OffsetY
	return nil
}
