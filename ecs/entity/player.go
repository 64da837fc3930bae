package entity

import (
	"fmt"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"github.com/milk9111/bobross/prefabs"
)

const playerPrefab = "player.yaml"

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	entity, err := BuildEntity(w, playerPrefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}

// ReloadPlayerTuning re-reads the player prefab and replaces the movement
// tuning of the live player entity. Position and velocity are untouched.
func ReloadPlayerTuning(w *ecs.World, player ecs.Entity) error {
	spec, err := prefabs.LoadEntityBuildSpec(playerPrefab)
	if err != nil {
		return fmt.Errorf("player: reload: %w", err)
	}
	raw, ok := spec.Components["player"]
	if !ok {
		return fmt.Errorf("player: reload: %s has no player component", playerPrefab)
	}
	tuning, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("player: reload: decode: %w", err)
	}
	if tuning.TerminalVelocity > 0 {
		return fmt.Errorf("player: reload: terminal_velocity must be negative, got %v", tuning.TerminalVelocity)
	}

	current, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return ecs.Add(w, player, component.PlayerComponent.Kind(), playerFromSpec(tuning))
	}
	*current = *playerFromSpec(tuning)
	return nil
}
