package component

// Camera follows the actor. Zoom is screen pixels per world unit.
type Camera struct {
	Zoom float64
	// OffsetY keeps the view this far above the target.
	OffsetY float64
}

var CameraComponent = NewComponent[Camera]()
