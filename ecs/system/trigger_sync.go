package system

import (
	"github.com/milk9111/bobross/common"
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

// TriggerIndex is the part of the physics world that tracks pickup sensors.
type TriggerIndex interface {
	SetTrigger(e ecs.Entity, pos common.Vec2, fp component.Footprint)
	RemoveTrigger(e ecs.Entity) bool
	Triggers() []ecs.Entity
}

// TriggerSyncSystem mirrors live collectibles into the trigger index and
// drops sensors whose entity is gone.
type TriggerSyncSystem struct {
	index TriggerIndex
}

func NewTriggerSyncSystem(index TriggerIndex) *TriggerSyncSystem {
	return &TriggerSyncSystem{index: index}
}

func (s *TriggerSyncSystem) Update(w *ecs.World) error {
	if s == nil || s.index == nil || w == nil {
		return nil
	}

	for _, e := range s.index.Triggers() {
		if !ecs.IsAlive(w, e) || !ecs.Has(w, e, component.CollectibleComponent.Kind()) {
			s.index.RemoveTrigger(e)
		}
	}

	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Collectible, t *component.Transform) {
		s.index.SetTrigger(e, common.Vec2{X: t.X, Y: t.Y}, c.Footprint)
	})
	return nil
}
