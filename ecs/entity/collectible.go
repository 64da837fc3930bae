package entity

import (
	"fmt"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

var collectiblePrefabs = map[component.CollectibleKind]string{
	component.CollectibleCoin:  "coin.yaml",
	component.CollectibleHeart: "heart.yaml",
}

func NewCollectibleAt(w *ecs.World, kind component.CollectibleKind, x, y float64) (ecs.Entity, error) {
	prefab, ok := collectiblePrefabs[kind]
	if !ok {
		return 0, fmt.Errorf("collectible: no prefab for %q", kind)
	}
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("collectible: override transform: %w", err)
	}
	return e, nil
}
