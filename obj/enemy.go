package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/zombierun/ecs/component"
)

type EnemyKind uint8

const (
	EnemyZombie EnemyKind = iota
	EnemyVulture
)

const (
	zombieWidth   = 14
	zombieHeight  = 24
	vultureWidth  = 20
	vultureHeight = 12
)

// Enemy is the handle of a zombie or a vulture.
type Enemy struct {
	*body
	Kind EnemyKind
}

func newEnemy(space *cp.Space, kind EnemyKind, clips map[component.Clip]ClipSpec) *Enemy {
	var b *body
	if kind == EnemyVulture {
		b = newBody(space, vultureWidth, vultureHeight, collisionTypeVulture, clips)
	} else {
		b = newBody(space, zombieWidth, zombieHeight, collisionTypeZombie, clips)
	}
	e := &Enemy{body: b, Kind: kind}
	b.shape.UserData = e
	return e
}
