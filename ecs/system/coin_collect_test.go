package system

import (
	"testing"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
)

func pushContact(w *ecs.World, e, other ecs.Entity) {
	w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: ecs.ContactEvent{Entity: e, Other: other}})
}

func TestCoinCollectSystem(t *testing.T) {
	w := ecs.NewWorld()
	actor := newTestActor(t, w, 0, 0, true)
	coinA := newTestCollectible(t, w, component.CollectibleCoin, 0, 0)
	coinB := newTestCollectible(t, w, component.CollectibleCoin, 0, 0)
	heart := newTestCollectible(t, w, component.CollectibleHeart, 0, 0)
	plain := ecs.CreateEntity(w)
	stale := ecs.CreateEntity(w)
	ecs.DestroyEntity(w, stale)

	for _, other := range []ecs.Entity{coinA, heart, plain, stale, coinB, coinA} {
		pushContact(w, actor, other)
	}

	if err := NewCoinCollectSystem().Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}

	if got := get(t, w, actor, component.CoinCollectorComponent.Kind()).Count; got != 2 {
		t.Fatalf("expected 2 coins, got %d", got)
	}
	for _, coin := range []ecs.Entity{coinA, coinB} {
		if ecs.IsAlive(w, coin) {
			t.Fatalf("coin %v still alive", coin)
		}
	}
	if !ecs.IsAlive(w, heart) || !ecs.IsAlive(w, plain) {
		t.Fatalf("non-coin entities were destroyed")
	}

	collected := w.Events().Of(ecs.EventCoinCollected)
	if len(collected) != 2 {
		t.Fatalf("expected 2 collected events, got %d", len(collected))
	}
	last := collected[1].Data.(ecs.CoinCollectedEvent)
	if last.Coin != coinB || last.Total != 2 || last.Collector != actor {
		t.Fatalf("unexpected event %+v", last)
	}
}

func TestCoinCollectIgnoresContactsWithoutCollector(t *testing.T) {
	w := ecs.NewWorld()
	coin := newTestCollectible(t, w, component.CollectibleCoin, 0, 0)
	other := ecs.CreateEntity(w)
	pushContact(w, other, coin)

	if err := NewCoinCollectSystem().Update(w); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ecs.IsAlive(w, coin) {
		t.Fatalf("coin destroyed by entity without a collector")
	}
}
