package system

import (
	"testing"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"pgregory.net/rapid"
)

// flatFloor is ten tiles wide with a solid bottom row whose top is y=16,
// and a wall tile at column 6 standing on it.
func flatFloor() *ecs.PhysicsWorld {
	const width, height = 10, 4
	cells := make([]int, width*height)
	for x := 0; x < width; x++ {
		cells[(height-1)*width+x] = 1
	}
	cells[(height-2)*width+6] = 1
	return ecs.NewPhysicsWorldFromGrid(width, height, cells, 16, nil)
}

func newPipeline(pw *ecs.PhysicsWorld, src InputSource) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewInputSystem(src),
		NewDirectionSystem(),
		NewMotionSystem(),
		NewVelocitySystem(),
		NewTriggerSyncSystem(pw),
		NewCollisionSystem(pw),
		NewCoinCollectSystem(),
		NewFacingSystem(),
		NewCameraSystem(),
	)
}

func runTicks(t testHelper, w *ecs.World, s *ecs.Scheduler, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Update(w); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		w.Events().Drain()
	}
}

func TestRestingActorStaysPut(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(tick)
	actor := newTestActor(t, w, 40, 28, true)
	s := newPipeline(flatFloor(), scriptedInput{})

	runTicks(t, w, s, 5)

	tr := get(t, w, actor, component.TransformComponent.Kind())
	if tr.X != 40 || tr.Y != 28 {
		t.Fatalf("expected (40, 28), got (%v, %v)", tr.X, tr.Y)
	}
	if dir := *get(t, w, actor, component.DirectionComponent.Kind()); dir != component.FaceRight {
		t.Fatalf("expected face_right, got %v", dir)
	}
	if !get(t, w, actor, component.ControllerOutputComponent.Kind()).Grounded {
		t.Fatalf("expected grounded")
	}
}

func TestRunIntoWall(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(tick)
	actor := newTestActor(t, w, 40, 28, true)
	s := newPipeline(flatFloor(), scriptedInput{ActionMoveRight: true})

	runTicks(t, w, s, 60)

	tr := get(t, w, actor, component.TransformComponent.Kind())
	// The wall tile spans x 96..112; the footprint is 8 wide either side.
	if !approx(tr.X, 88) || tr.Y != 28 {
		t.Fatalf("expected flush at (88, 28), got (%v, %v)", tr.X, tr.Y)
	}
	out := get(t, w, actor, component.ControllerOutputComponent.Kind())
	if !out.BlockedX || out.Wall != component.WallRight {
		t.Fatalf("expected blocked on the right, got %+v", *out)
	}
	if dir := *get(t, w, actor, component.DirectionComponent.Kind()); dir != component.RunRight {
		t.Fatalf("expected run_right, got %v", dir)
	}
	if !get(t, w, actor, component.SpriteComponent.Kind()).FlipX {
		t.Fatalf("expected sprite flipped for right facing")
	}
}

func TestJumpLeavesAndReturnsToGround(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(tick)
	actor := newTestActor(t, w, 40, 28, true)
	src := scriptedInput{ActionJump: true}
	s := newPipeline(flatFloor(), src)

	runTicks(t, w, s, 1)
	if get(t, w, actor, component.ControllerOutputComponent.Kind()).Grounded {
		t.Fatalf("expected airborne after jump")
	}
	if tr := get(t, w, actor, component.TransformComponent.Kind()); tr.Y <= 28 {
		t.Fatalf("expected to rise, y=%v", tr.Y)
	}

	src[ActionJump] = false
	runTicks(t, w, s, 120)
	if !get(t, w, actor, component.ControllerOutputComponent.Kind()).Grounded {
		t.Fatalf("expected grounded after landing")
	}
	if tr := get(t, w, actor, component.TransformComponent.Kind()); !approx(tr.Y, 28) {
		t.Fatalf("expected to land at y=28, got %v", tr.Y)
	}
}

func TestCoinsCollectedOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "coins")
		hearts := rapid.IntRange(0, 3).Draw(rt, "hearts")

		w := ecs.NewWorld()
		w.SetDelta(tick)
		pw := flatFloor()
		actor := newTestActor(rt, w, 40, 28, true)

		var coins, others []ecs.Entity
		for i := 0; i < n; i++ {
			dx := rapid.Float64Range(-15, 15).Draw(rt, "dx")
			dy := rapid.Float64Range(-10, 10).Draw(rt, "dy")
			coins = append(coins, newTestCollectible(rt, w, component.CollectibleCoin, 40+dx, 28+dy))
		}
		for i := 0; i < hearts; i++ {
			others = append(others, newTestCollectible(rt, w, component.CollectibleHeart, 40, 28))
		}

		s := newPipeline(pw, scriptedInput{})
		runTicks(rt, w, s, 3)

		if got := get(rt, w, actor, component.CoinCollectorComponent.Kind()).Count; got != uint32(n) {
			rt.Fatalf("expected %d coins, got %d", n, got)
		}
		for _, coin := range coins {
			if ecs.IsAlive(w, coin) || pw.HasTrigger(coin) {
				rt.Fatalf("coin %v survived collection", coin)
			}
		}
		for _, heart := range others {
			if !ecs.IsAlive(w, heart) || !pw.HasTrigger(heart) {
				rt.Fatalf("heart %v was removed", heart)
			}
		}
	})
}
