package system

import (
	"testing"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

func TestInputSystemJumpEdge(t *testing.T) {
	held := []bool{false, true, true, true, false, true}
	wantPressed := []bool{false, true, false, false, false, true}

	w := ecs.NewWorld()
	actor := newTestActor(t, w, 0, 0, true)
	src := scriptedInput{}
	s := NewInputSystem(src)

	for i, jump := range held {
		src[ActionJump] = jump
		if err := s.Update(w); err != nil {
			t.Fatalf("update: %v", err)
		}
		in := get(t, w, actor, component.InputComponent.Kind())
		if in.Jump != jump || in.JumpPressed != wantPressed[i] {
			t.Fatalf("tick %d: expected jump=%v pressed=%v, got jump=%v pressed=%v", i, jump, wantPressed[i], in.Jump, in.JumpPressed)
		}
	}
}

func TestInputSystemCopiesMovement(t *testing.T) {
	w := ecs.NewWorld()
	actor := newTestActor(t, w, 0, 0, true)
	s := NewInputSystem(scriptedInput{ActionMoveLeft: true})
	if err := s.Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
	in := get(t, w, actor, component.InputComponent.Kind())
	if !in.Left || in.Right {
		t.Fatalf("expected left only, got %+v", *in)
	}
}

// A held jump fires one impulse per press even across many grounded ticks.
func TestJumpImpulseOncePerPress(t *testing.T) {
	w := ecs.NewWorld()
	actor := newTestActor(t, w, 0, 0, true)
	src := scriptedInput{ActionJump: true}
	scheduler := ecs.NewScheduler(NewInputSystem(src), NewDirectionSystem())

	impulses := 0
	for i := 0; i < 10; i++ {
		vel := get(t, w, actor, component.VelocityComponent.Kind())
		vel.Y = 0
		if err := scheduler.Update(w); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if vel.Y == 3 {
			impulses++
		}
	}
	if impulses != 1 {
		t.Fatalf("expected one impulse, got %d", impulses)
	}
}
