package obj

import "github.com/jakecoffman/cp"

const (
	bulletWidth  = 6
	bulletHeight = 2
)

type Bullet struct {
	*body
	contacts
}

func newBullet(space *cp.Space, cw *CollisionWorld) *Bullet {
	b := &Bullet{
		body:     newBody(space, bulletWidth, bulletHeight, collisionTypeBullet, cw.clips),
		contacts: newContacts(cw.defs.Capacity.Contacts),
	}
	b.shape.UserData = b
	return b
}
