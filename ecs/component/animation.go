package component

// Clip names an animation a body can play.
type Clip string

const (
	ClipPlayerIdle       Clip = "player_idle"
	ClipPlayerRunning    Clip = "player_running"
	ClipPlayerShootingUp Clip = "player_shooting_up"
	ClipPlayerDying      Clip = "player_dying"

	ClipBullet Clip = "bullet"

	ClipZombieRunning Clip = "zombie_running"
	ClipZombieDying   Clip = "zombie_dying"

	ClipVultureFlyingLeft  Clip = "vulture_flying_left"
	ClipVultureFlyingRight Clip = "vulture_flying_right"
	ClipVultureDiving      Clip = "vulture_diving"
	ClipVultureDying       Clip = "vulture_dying"
)
