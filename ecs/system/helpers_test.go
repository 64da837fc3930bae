package system

import (
	"math"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

const tick = 1.0 / 60.0

var testFootprint = component.Footprint{HalfWidth: 8, HalfHeight: 12}

// testHelper is satisfied by both *testing.T and *rapid.T.
type testHelper interface {
	Helper()
	Fatalf(format string, args ...any)
}

// scriptedInput holds whichever actions are set.
type scriptedInput map[Action]bool

func (s scriptedInput) Pressed(a Action) bool {
	return s[a]
}

func mustAdd[T any](t testHelper, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// newTestActor builds an actor with the shipped player tuning at (x, y).
func newTestActor(t testHelper, w *ecs.World, x, y float64, grounded bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	dir := component.FaceRight
	mustAdd(t, w, e, component.DirectionComponent.Kind(), &dir)
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{RunSpeed: 100, JumpImpulse: 3, Gravity: 9.8})
	mustAdd(t, w, e, component.KinematicControllerComponent.Kind(), &component.KinematicController{Footprint: testFootprint})
	mustAdd(t, w, e, component.ControllerOutputComponent.Kind(), &component.ControllerOutput{Grounded: grounded})
	mustAdd(t, w, e, component.CoinCollectorComponent.Kind(), &component.CoinCollector{})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: 22, Height: 24})
	return e
}

func newTestCollectible(t testHelper, w *ecs.World, kind component.CollectibleKind, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.CollectibleComponent.Kind(), &component.Collectible{
		Kind:      kind,
		Footprint: component.Footprint{HalfWidth: 8, HalfHeight: 8},
	})
	return e
}

func get[T any](t testHelper, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v missing %T", e, v)
	}
	return v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
