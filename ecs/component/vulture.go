package component

// VultureAction is the state of a vulture's behaviour machine.
type VultureAction uint8

const (
	VultureFlyingLeft VultureAction = iota
	VultureFlyingRight
	VulturePreparingDive
	VultureDiving
	VultureDying
)

func (a VultureAction) String() string {
	switch a {
	case VultureFlyingLeft:
		return "flying_left"
	case VultureFlyingRight:
		return "flying_right"
	case VulturePreparingDive:
		return "preparing_dive"
	case VultureDiving:
		return "diving"
	case VultureDying:
		return "dying"
	default:
		return "unknown"
	}
}

type Vulture struct {
	IsDead      bool
	SpeedFactor float64
	// LapsMade counts completed left-right patrol passes.
	LapsMade int
	Action   VultureAction
	Body     EnemyBody
}
