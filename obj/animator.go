package obj

import (
	"math"

	"github.com/milk9111/zombierun/ecs/component"
	"github.com/milk9111/zombierun/prefabs"
)

// ClipSpec is the timing of one animation clip.
type ClipSpec struct {
	Seconds float64
	Frames  int
	Loop    bool
}

// Animator tracks which clip a body plays and how far into it it is. It does
// not own any images; the renderer maps Current and Frame to sprites.
type Animator struct {
	clips   map[component.Clip]ClipSpec
	current component.Clip
	elapsed float64
}

func NewAnimator(clips map[component.Clip]ClipSpec) *Animator {
	return &Animator{clips: clips}
}

// Play restarts the animator on clip, even if it is already playing.
func (a *Animator) Play(clip component.Clip) {
	a.current = clip
	a.elapsed = 0
}

func (a *Animator) Advance(dt float64) {
	if dt > 0 {
		a.elapsed += dt
	}
}

func (a *Animator) Current() component.Clip {
	return a.current
}

// Finished reports whether the non-looping clip is current and has run out.
func (a *Animator) Finished(clip component.Clip) bool {
	if a.current != clip {
		return false
	}
	spec, ok := a.clips[clip]
	if !ok || spec.Loop {
		return false
	}
	return a.elapsed >= spec.Seconds
}

// Frame is the index of the frame to draw.
func (a *Animator) Frame() int {
	spec, ok := a.clips[a.current]
	if !ok || spec.Frames <= 1 || spec.Seconds <= 0 {
		return 0
	}
	n := int(math.Floor(a.elapsed / spec.Seconds * float64(spec.Frames)))
	if spec.Loop {
		return n % spec.Frames
	}
	return min(n, spec.Frames-1)
}

// Progress is how far a non-looping clip has run, in [0, 1].
func (a *Animator) Progress() float64 {
	spec, ok := a.clips[a.current]
	if !ok || spec.Seconds <= 0 {
		return 0
	}
	if spec.Loop {
		return math.Mod(a.elapsed, spec.Seconds) / spec.Seconds
	}
	return min(a.elapsed/spec.Seconds, 1)
}

// DefaultClips times every clip the game plays. The vulture dying clip
// follows the definitions so the corpse lingers as long as tuned.
func DefaultClips(defs *prefabs.Definitions) map[component.Clip]ClipSpec {
	return map[component.Clip]ClipSpec{
		component.ClipPlayerIdle:         {Seconds: 1, Frames: 2, Loop: true},
		component.ClipPlayerRunning:      {Seconds: 0.6, Frames: 6, Loop: true},
		component.ClipPlayerShootingUp:   {Seconds: 0.25, Frames: 2},
		component.ClipPlayerDying:        {Seconds: 0.8, Frames: 4},
		component.ClipBullet:             {Seconds: 0.2, Frames: 2, Loop: true},
		component.ClipZombieRunning:      {Seconds: 0.8, Frames: 8, Loop: true},
		component.ClipZombieDying:        {Seconds: 0.5, Frames: 5},
		component.ClipVultureFlyingLeft:  {Seconds: 0.4, Frames: 4, Loop: true},
		component.ClipVultureFlyingRight: {Seconds: 0.4, Frames: 4, Loop: true},
		component.ClipVultureDiving:      {Seconds: 0.3, Frames: 2, Loop: true},
		component.ClipVultureDying:       {Seconds: defs.Vulture.DyingSeconds, Frames: 4},
	}
}
