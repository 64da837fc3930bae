package component

// Player holds the movement tunables of the actor. Speeds are world units
// per second, JumpImpulse is world units per tick.
type Player struct {
	RunSpeed    float64
	JumpImpulse float64
	Gravity     float64
	// TerminalVelocity clamps falling speed when negative; zero disables it.
	TerminalVelocity float64
}

var PlayerComponent = NewComponent[Player]()
