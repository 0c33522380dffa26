package component

type Zombie struct {
	IsDead      bool
	SpeedFactor float64
	Body        EnemyBody
}
