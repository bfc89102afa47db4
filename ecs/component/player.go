package component

// Player carries the movement tunables applied by input.
type Player struct {
	RunSpeed  float64
	JumpSpeed float64
}

var PlayerComponent = NewComponent[Player]()
