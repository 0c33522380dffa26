package component

import "github.com/milk9111/zombierun/common"

// Report summarises what happened during one tick. It is rebuilt every tick
// and read by the HUD and audio.
type Report struct {
	GameStarted bool
	FiredBullet bool

	CollectedBullets int
	// CollectedBulletsSource is the world position of the last corpse that
	// paid out ammunition this tick.
	CollectedBulletsSource common.Vec

	SpawnedZombies  int
	SpawnedVultures int
	KilledZombies   int
	KilledVultures  int

	Died                      bool
	BulletPenetrationUpgraded bool
}
