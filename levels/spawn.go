package levels

import (
	"fmt"
	"log"
)

type SpawnKind int

const (
	SpawnPlayerStart SpawnKind = iota
	SpawnCoin
	SpawnHeart
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnPlayerStart:
		return "PlayerStart"
	case SpawnCoin:
		return "Coin"
	case SpawnHeart:
		return "Heart"
	default:
		return fmt.Sprintf("SpawnKind(%d)", int(k))
	}
}

var spawnKinds = map[string]SpawnKind{
	"PlayerStart": SpawnPlayerStart,
	"Coin":        SpawnCoin,
	"Heart":       SpawnHeart,
}

// Spawn is a typed entity record in world coordinates, Y up.
type Spawn struct {
	Kind SpawnKind
	X    float64
	Y    float64
}

// Spawns converts the level's entities to spawn records. Exactly one
// PlayerStart is required; unknown types are logged and skipped.
func (l *Level) Spawns() ([]Spawn, error) {
	spawns := make([]Spawn, 0, len(l.Entities))
	starts := 0
	for _, ent := range l.Entities {
		kind, ok := spawnKinds[ent.Type]
		if !ok {
			log.Printf("levels: %s: skipping unknown entity type %q", l.Name, ent.Type)
			continue
		}
		if kind == SpawnPlayerStart {
			starts++
		}
		spawns = append(spawns, Spawn{
			Kind: kind,
			X:    float64(ent.X),
			Y:    l.PixelHeight() - float64(ent.Y),
		})
	}

	switch {
	case starts == 0:
		return nil, ErrNoPlayerStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePlayerStarts, starts)
	}
	return spawns, nil
}
