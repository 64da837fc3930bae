package system

import (
	"errors"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

var (
	ErrNoActor        = errors.New("system: no player entity")
	ErrMultipleActors = errors.New("system: more than one player entity")
)

// Actor returns the single player-tagged entity.
func Actor(w *ecs.World) (ecs.Entity, error) {
	e, err := ecs.Single(w, component.PlayerTagComponent.Kind())
	switch {
	case errors.Is(err, ecs.ErrNoEntity):
		return 0, ErrNoActor
	case errors.Is(err, ecs.ErrMultipleEntities):
		return 0, errors.Join(ErrMultipleActors, err)
	case err != nil:
		return 0, err
	}
	return e, nil
}
