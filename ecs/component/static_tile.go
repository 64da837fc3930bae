package component

// StaticTile marks a solid level tile. Its transform is the tile's lower-left corner.
type StaticTile struct {
	Size float64
}

var StaticTileComponent = NewComponent[StaticTile]()
