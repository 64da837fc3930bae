package component

import "github.com/milk9111/bobross/common"

// Footprint is an axis-aligned box given by half extents around the
// entity's transform.
type Footprint struct {
	HalfWidth  float64
	HalfHeight float64
}

// Valid reports whether both extents are positive.
func (f Footprint) Valid() bool {
	return f.HalfWidth > 0 && f.HalfHeight > 0
}

// KinematicController carries the displacement an entity wants to make this
// tick. No request is different from a request of zero.
type KinematicController struct {
	Footprint  Footprint
	Desired    common.Vec2
	HasDesired bool
}

// Request adds d to any displacement already requested this tick.
func (c *KinematicController) Request(d common.Vec2) {
	if c.HasDesired {
		c.Desired = c.Desired.Add(d)
		return
	}
	c.Desired = d
	c.HasDesired = true
}

// Take returns and clears the pending request.
func (c *KinematicController) Take() (common.Vec2, bool) {
	d, ok := c.Desired, c.HasDesired
	c.Desired = common.Vec2{}
	c.HasDesired = false
	return d, ok
}

var KinematicControllerComponent = NewComponent[KinematicController]()

// Wall side touched by the last sweep.
const (
	WallNone = iota
	WallLeft
	WallRight
)

// ControllerOutput is what the last successful sweep reported.
type ControllerOutput struct {
	Grounded bool
	Desired  common.Vec2
	Achieved common.Vec2
	Wall     int
	// BlockedX is set when horizontal motion was requested and none happened.
	BlockedX bool
}

var ControllerOutputComponent = NewComponent[ControllerOutput]()
