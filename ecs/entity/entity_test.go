package entity

import (
	"testing"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"github.com/milk9111/bobross/levels"
)

func TestNewPlayerAt(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, 40, 44)
	if err != nil {
		t.Fatalf("build player: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 40 || tr.Y != 44 {
		t.Fatalf("unexpected transform %+v", tr)
	}
	ctrl, ok := ecs.Get(w, e, component.KinematicControllerComponent.Kind())
	if !ok || ctrl.Footprint != (component.Footprint{HalfWidth: 8, HalfHeight: 12}) {
		t.Fatalf("unexpected controller %+v", ctrl)
	}
	dir, ok := ecs.Get(w, e, component.DirectionComponent.Kind())
	if !ok || *dir != component.FaceRight {
		t.Fatalf("unexpected direction %v", dir)
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || player.RunSpeed != 100 || player.JumpImpulse != 3 || player.Gravity != 9.8 || player.TerminalVelocity != 0 {
		t.Fatalf("unexpected tuning %+v", player)
	}
	for name, has := range map[string]bool{
		"player_tag":        ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		"velocity":          ecs.Has(w, e, component.VelocityComponent.Kind()),
		"input":             ecs.Has(w, e, component.InputComponent.Kind()),
		"controller_output": ecs.Has(w, e, component.ControllerOutputComponent.Kind()),
		"coin_collector":    ecs.Has(w, e, component.CoinCollectorComponent.Kind()),
		"sprite":            ecs.Has(w, e, component.SpriteComponent.Kind()),
	} {
		if !has {
			t.Fatalf("player missing %s", name)
		}
	}
}

func TestNewCollectibleAt(t *testing.T) {
	tests := []struct {
		kind    component.CollectibleKind
		wantErr bool
	}{
		{kind: component.CollectibleCoin},
		{kind: component.CollectibleHeart},
		{kind: "gem", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := NewCollectibleAt(w, tc.kind, 5, 6)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if len(ecs.Entities(w)) != 0 {
					t.Fatalf("failed build left entities behind")
				}
				return
			}
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			c, ok := ecs.Get(w, e, component.CollectibleComponent.Kind())
			if !ok || c.Kind != tc.kind || !c.Footprint.Valid() {
				t.Fatalf("unexpected collectible %+v", c)
			}
		})
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS("meadow")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	spawns, err := lvl.Spawns()
	if err != nil {
		t.Fatalf("spawns: %v", err)
	}
	wantCoins, wantHearts := 0, 0
	for _, s := range spawns {
		switch s.Kind {
		case levels.SpawnCoin:
			wantCoins++
		case levels.SpawnHeart:
			wantHearts++
		}
	}

	w := ecs.NewWorld()
	pw, err := LoadLevelToWorld(w, lvl)
	if err != nil {
		t.Fatalf("load to world: %v", err)
	}

	if _, err := ecs.Single(w, component.PlayerTagComponent.Kind()); err != nil {
		t.Fatalf("expected one player: %v", err)
	}
	if _, err := ecs.Single(w, component.CameraComponent.Kind()); err != nil {
		t.Fatalf("expected one camera: %v", err)
	}

	coins, hearts := 0, 0
	ecs.ForEach(w, component.CollectibleComponent.Kind(), func(_ ecs.Entity, c *component.Collectible) {
		switch c.Kind {
		case component.CollectibleCoin:
			coins++
		case component.CollectibleHeart:
			hearts++
		}
	})
	if coins != wantCoins || hearts != wantHearts {
		t.Fatalf("expected %d coins and %d hearts, got %d and %d", wantCoins, wantHearts, coins, hearts)
	}

	tiles := 0
	ecs.ForEach(w, component.StaticTileComponent.Kind(), func(_ ecs.Entity, _ *component.StaticTile) {
		tiles++
	})
	solid := 0
	for _, c := range lvl.SolidCells() {
		solid += c
	}
	if tiles != solid {
		t.Fatalf("expected %d tiles, got %d", solid, tiles)
	}
	if len(pw.Solids()) == 0 {
		t.Fatalf("physics world has no solids")
	}
}

func TestLoadLevelRequiresPlayerStart(t *testing.T) {
	lvl := &levels.Level{Name: "empty", Width: 2, Height: 2, Layers: [][]int{{0, 0, 1, 1}}}
	w := ecs.NewWorld()
	if _, err := LoadLevelToWorld(w, lvl); err == nil {
		t.Fatalf("expected error for level without PlayerStart")
	}
}

func TestReloadPlayerTuning(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, 0, 0)
	if err != nil {
		t.Fatalf("build player: %v", err)
	}
	player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	player.RunSpeed = 1
	player.Gravity = 1
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	vel.Y = -1.5

	if err := ReloadPlayerTuning(w, e); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if player.RunSpeed != 100 || player.Gravity != 9.8 {
		t.Fatalf("tuning not reloaded: %+v", player)
	}
	if vel.Y != -1.5 {
		t.Fatalf("reload touched velocity: %+v", vel)
	}
}
