package component

// Direction is the actor's facing-and-motion state.
type Direction uint8

const (
	FaceRight Direction = iota
	FaceLeft
	RunLeft
	RunRight
)

// Next returns the state for the held horizontal input. Left wins when both
// are held; with neither held a run collapses to facing the same side.
func (d Direction) Next(left, right bool) Direction {
	switch {
	case left:
		return RunLeft
	case right:
		return RunRight
	}
	switch d {
	case FaceLeft, RunLeft:
		return FaceLeft
	default:
		return FaceRight
	}
}

// FlipX maps the state to the sprite flip flag. The actor art faces left,
// so right-facing states render flipped.
func (d Direction) FlipX() bool {
	switch d {
	case FaceRight, RunRight:
		return true
	default:
		return false
	}
}

// RunSign is -1 running left, +1 running right, 0 otherwise.
func (d Direction) RunSign() float64 {
	switch d {
	case RunLeft:
		return -1
	case RunRight:
		return 1
	default:
		return 0
	}
}

func (d Direction) Running() bool {
	return d == RunLeft || d == RunRight
}

func (d Direction) String() string {
	switch d {
	case FaceRight:
		return "face_right"
	case FaceLeft:
		return "face_left"
	case RunLeft:
		return "run_left"
	case RunRight:
		return "run_right"
	default:
		return "unknown"
	}
}

var DirectionComponent = NewComponent[Direction]()

// ParseDirection is the inverse of String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range []Direction{FaceRight, FaceLeft, RunLeft, RunRight} {
		if d.String() == s {
			return d, true
		}
	}
	return FaceRight, false
}
