package system

import (
	"testing"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

func TestCameraFollowsActorWithOffset(t *testing.T) {
	w := ecs.NewWorld()
	actor := newTestActor(t, w, 40, 28, true)
	cam := ecs.CreateEntity(w)
	mustAdd(t, w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 4, OffsetY: 60})

	s := NewCameraSystem()
	if err := s.Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
	tr := get(t, w, cam, component.TransformComponent.Kind())
	if tr.X != 40 || tr.Y != 88 {
		t.Fatalf("expected camera at (40, 88), got (%v, %v)", tr.X, tr.Y)
	}

	get(t, w, actor, component.TransformComponent.Kind()).X = -5
	if err := s.Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
	if tr.X != -5 || tr.Y != 88 {
		t.Fatalf("expected camera at (-5, 88), got (%v, %v)", tr.X, tr.Y)
	}
}

func TestViewFlipsY(t *testing.T) {
	v := view{camX: 10, camY: 20, zoom: 4, halfW: 640, halfH: 512}

	if x, y := v.point(10, 20); x != 640 || y != 512 {
		t.Fatalf("camera center maps to (%v, %v)", x, y)
	}
	if x, y := v.point(11, 21); x != 644 || y != 508 {
		t.Fatalf("up-right of camera maps to (%v, %v)", x, y)
	}

	x, y, w, h := v.rect(10, 20, 2, 3)
	if x != 640 || y != 500 || w != 8 || h != 12 {
		t.Fatalf("unexpected rect (%v, %v, %v, %v)", x, y, w, h)
	}
}
