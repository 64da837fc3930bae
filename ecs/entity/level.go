package entity

import (
	"fmt"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"github.com/milk9111/bobross/levels"
)

// LoadLevelToWorld populates the world from a level: one static tile
// entity per wall cell for drawing, the player, collectibles and a camera.
// It returns the collision world built from the level's physics layers.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) (*ecs.PhysicsWorld, error) {
	if world == nil || lvl == nil {
		return nil, fmt.Errorf("load level: world and level are required")
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	spawns, err := lvl.Spawns()
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", lvl.Name, err)
	}

	tileSize := lvl.Tile()
	cells := lvl.SolidCells()
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			if cells[y*lvl.Width+x] == 0 {
				continue
			}
			if err := addStaticTile(world, float64(x)*tileSize, float64(lvl.Height-y-1)*tileSize, tileSize); err != nil {
				return nil, err
			}
		}
	}

	var player ecs.Entity
	for _, s := range spawns {
		switch s.Kind {
		case levels.SpawnPlayerStart:
			player, err = NewPlayerAt(world, s.X, s.Y)
		case levels.SpawnCoin:
			_, err = NewCollectibleAt(world, component.CollectibleCoin, s.X, s.Y)
		case levels.SpawnHeart:
			_, err = NewCollectibleAt(world, component.CollectibleHeart, s.X, s.Y)
		}
		if err != nil {
			return nil, fmt.Errorf("load level %q: spawn %v: %w", lvl.Name, s.Kind, err)
		}
	}

	camX, camY := 0.0, 0.0
	if t, ok := ecs.Get(world, player, component.TransformComponent.Kind()); ok {
		camX, camY = t.X, t.Y
	}
	if _, err := NewCameraAt(world, camX, camY); err != nil {
		return nil, fmt.Errorf("load level %q: camera: %w", lvl.Name, err)
	}

	return ecs.NewPhysicsWorldFromGrid(lvl.Width, lvl.Height, cells, tileSize, nil), nil
}

func addStaticTile(world *ecs.World, x, y, size float64) error {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.StaticTileComponent.Kind(), &component.StaticTile{Size: size})
}
