package component

import "image/color"

// Sprite is a flat-colored box drawn centered on the transform. FlipX
// mirrors it horizontally.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.Color
	FlipX  bool
}

var SpriteComponent = NewComponent[Sprite]()
