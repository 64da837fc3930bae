package system

import (
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

// CoinCollectSystem consumes this tick's contact events. A coin touched by
// an entity with a CoinCollector is counted and destroyed; hearts stay put.
type CoinCollectSystem struct{}

func NewCoinCollectSystem() *CoinCollectSystem {
	return &CoinCollectSystem{}
}

func (s *CoinCollectSystem) Update(w *ecs.World) error {
	if w == nil {
		return nil
	}

	for _, evt := range w.Events().Of(ecs.EventContact) {
		contact, ok := evt.Data.(ecs.ContactEvent)
		if !ok {
			continue
		}
		// Already collected earlier in the tick, or never was a pickup.
		if !ecs.IsAlive(w, contact.Other) {
			continue
		}
		collectible, ok := ecs.Get(w, contact.Other, component.CollectibleComponent.Kind())
		if !ok {
			continue
		}
		collector, ok := ecs.Get(w, contact.Entity, component.CoinCollectorComponent.Kind())
		if !ok {
			continue
		}

		switch collectible.Kind {
		case component.CollectibleCoin:
			collector.Count++
			ecs.DestroyEntity(w, contact.Other)
			w.Events().Push(ecs.Event{
				Type: ecs.EventCoinCollected,
				Data: ecs.CoinCollectedEvent{Collector: contact.Entity, Coin: contact.Other, Total: collector.Count},
			})
		case component.CollectibleHeart:
			// Hearts have no pickup effect.
		}
	}
	return nil
}
