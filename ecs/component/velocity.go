package component

// Velocity is an entity's intrinsic motion, stored in world units per tick:
// X is re-derived every tick from run speed already scaled by the tick
// duration, Y accumulates gravity and jump impulses.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
