package component

// Bullet is one live projectile. It deactivates once RemainingHits reaches
// zero or it leaves the visibility bounds.
type Bullet struct {
	RemainingHits int
	Body          BulletBody
}
