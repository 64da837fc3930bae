package component

// CollectibleKind tags what a pickup is.
type CollectibleKind string

const (
	CollectibleCoin  CollectibleKind = "coin"
	CollectibleHeart CollectibleKind = "heart"
)

// Collectible is a trigger-only pickup. Hearts are placed by levels but have
// no pickup effect yet.
type Collectible struct {
	Kind      CollectibleKind
	Footprint Footprint
}

var CollectibleComponent = NewComponent[Collectible]()

// CoinCollector counts coins picked up by its owner.
type CoinCollector struct {
	Count uint32
}

var CoinCollectorComponent = NewComponent[CoinCollector]()
