package component

// Input stores per-tick input state for an entity.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	// JumpPressed is true only on the tick the jump button went down.
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
