package system

import (
	"log"

	"github.com/milk9111/bobross/common"
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

//go:generate go tool mockgen -destination=mocks/mock_resolver.go -package=mocks github.com/milk9111/bobross/ecs/system Resolver

// Resolver moves a footprint through level geometry.
type Resolver interface {
	Sweep(req ecs.SweepRequest) (ecs.SweepResult, error)
}

// CollisionSystem hands each controller's pending displacement to the
// resolver and applies what was achieved. Touched triggers are queued as
// contact events for later systems in the same tick.
type CollisionSystem struct {
	resolver Resolver
}

func NewCollisionSystem(resolver Resolver) *CollisionSystem {
	return &CollisionSystem{resolver: resolver}
}

func (s *CollisionSystem) Update(w *ecs.World) error {
	if s == nil || s.resolver == nil || w == nil {
		return nil
	}

	ecs.ForEach2(w, component.KinematicControllerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ctrl *component.KinematicController, t *component.Transform) {
		desired, requested := ctrl.Take()
		req := ecs.SweepRequest{
			Entity:    e,
			Footprint: ctrl.Footprint,
			Position:  common.Vec2{X: t.X, Y: t.Y},
		}
		if requested {
			req.Desired = &desired
		}

		res, err := s.resolver.Sweep(req)
		if err != nil {
			log.Printf("collision: sweep failed for entity %v: %v", e, err)
			return
		}
		if !res.Achieved.Finite() {
			log.Printf("collision: non-finite displacement %v for entity %v", res.Achieved, e)
			return
		}

		t.X += res.Achieved.X
		t.Y += res.Achieved.Y

		if out, ok := ecs.Get(w, e, component.ControllerOutputComponent.Kind()); ok {
			out.Grounded = res.Grounded
			out.Desired = desired
			out.Achieved = res.Achieved
			out.Wall = res.Wall
			out.BlockedX = requested && !common.NearZero(desired.X) && common.NearZero(res.Achieved.X)
		}

		for _, other := range res.Contacts {
			w.Events().Push(ecs.Event{
				Type: ecs.EventContact,
				Data: ecs.ContactEvent{Entity: e, Other: other},
			})
		}
	})
	return nil
}
