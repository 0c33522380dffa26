package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/zombierun/common"
)

const (
	playerWidth  = 14
	playerHeight = 24
)

// Player stands still at the definitions' center while the world scrolls.
type Player struct {
	*body
	contacts
}

func newPlayer(space *cp.Space, cw *CollisionWorld) *Player {
	p := &Player{
		body:     newBody(space, playerWidth, playerHeight, collisionTypePlayer, cw.clips),
		contacts: newContacts(cw.defs.Capacity.Contacts),
	}
	p.shape.UserData = p
	p.SetPosition(cw.defs.Player.Center)
	p.SetCollisions(true)
	return p
}

func (p *Player) Center() common.Vec {
	return p.Position()
}
