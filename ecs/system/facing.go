package system

import (
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

// FacingSystem mirrors direction state onto sprite flip.
type FacingSystem struct{}

func NewFacingSystem() *FacingSystem {
	return &FacingSystem{}
}

func (s *FacingSystem) Update(w *ecs.World) error {
	ecs.ForEach2(w, component.DirectionComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, dir *component.Direction, sprite *component.Sprite) {
		sprite.FlipX = dir.FlipX()
	})
	return nil
}
