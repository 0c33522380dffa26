package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs/component"
)

func frame(dt float64) component.FrameTime {
	return component.FrameTime{DeltaSeconds: dt}
}

func TestIndicatorLifetime(t *testing.T) {
	h := New(4)
	source := common.V(10, -90)

	h.Apply(component.Report{CollectedBullets: 2, CollectedBulletsSource: source}, frame(0.25), 5, 1)
	got := h.Indicators()
	require.Len(t, got, 1)
	assert.Equal(t, "+2", got[0].Text)
	assert.Equal(t, source, got[0].Source)
	assert.InDelta(t, 0.25, got[0].Progress, 1e-9)
	assert.InDelta(t, 30, got[0].Rise(), 1e-9)

	h.Apply(component.Report{}, frame(0.5), 5, 1)
	require.Len(t, h.Indicators(), 1)

	h.Apply(component.Report{}, frame(0.25), 5, 1)
	assert.Empty(t, h.Indicators())
}

func TestIndicatorsEvictOldest(t *testing.T) {
	h := New(2)
	for n := 1; n <= 3; n++ {
		h.Apply(component.Report{CollectedBullets: n}, frame(0.1), 0, 0)
	}

	got := h.Indicators()
	require.Len(t, got, 2)
	assert.Equal(t, "+2", got[0].Text)
	assert.Equal(t, "+3", got[1].Text)
}

func TestCounters(t *testing.T) {
	h := New(1)
	h.Apply(component.Report{GameStarted: true}, frame(0), 3, 0)
	assert.Equal(t, "3x", h.BulletText())
	assert.Equal(t, "0", h.KillText())

	h.Apply(component.Report{FiredBullet: true, KilledZombies: 1}, frame(0), 2, 12)
	assert.Equal(t, "2x", h.BulletText())
	assert.Equal(t, "12", h.KillText())
}

func TestStartScreen(t *testing.T) {
	h := New(1)
	assert.True(t, h.StartScreen())

	in := component.Input{StartGame: true}
	h.Input(&in)
	assert.False(t, h.StartScreen())

	h.Apply(component.Report{Died: true}, frame(0), 0, 0)
	assert.True(t, h.StartScreen())
}

func TestUpgradeBanner(t *testing.T) {
	h := New(1)

	h.Apply(component.Report{BulletPenetrationUpgraded: true}, frame(0), 0, 0)
	assert.Equal(t, 1.0, h.UpgradePercent())
	offset, alpha := h.Banner()
	assert.Equal(t, -BannerRise, offset)
	assert.Equal(t, 0.0, alpha)

	// One second later the banner is fully in.
	h.Apply(component.Report{}, frame(1), 0, 0)
	assert.InDelta(t, 0.8, h.UpgradePercent(), 1e-9)
	offset, alpha = h.Banner()
	assert.InDelta(t, 0, offset, 1e-9)
	assert.InDelta(t, 1, alpha, 1e-9)

	// Four seconds after that it has slid out.
	h.Apply(component.Report{}, frame(4), 0, 0)
	assert.InDelta(t, 0, h.UpgradePercent(), 1e-9)
	offset, alpha = h.Banner()
	assert.InDelta(t, BannerRise, offset, 1e-9)
	assert.InDelta(t, 0, alpha, 1e-9)
}

func TestTimeFactor(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		override bool
		want     float64
	}{
		{name: "idle", percent: 0, override: true, want: 1},
		{name: "upgrade starts", percent: 1, override: true, want: 1},
		{name: "slowing", percent: 0.85, override: true, want: 0.6},
		{name: "slowest", percent: 0.7, override: true, want: 0.2},
		{name: "hold", percent: 0.5, override: false},
		{name: "recovering", percent: 0.15, override: true, want: 0.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := New(1)
			h.upgradePercent = tc.percent

			var in component.Input
			h.Input(&in)
			require.Equal(t, tc.override, in.OverrideTimeFactor)
			if tc.override {
				assert.InDelta(t, tc.want, in.TimeFactor, 1e-9)
			}
		})
	}
}

func TestReset(t *testing.T) {
	h := New(2)
	var in component.Input
	in.StartGame = true
	h.Input(&in)
	h.Apply(component.Report{CollectedBullets: 1, BulletPenetrationUpgraded: true}, frame(0.1), 0, 0)

	h.Reset()
	assert.Empty(t, h.Indicators())
	assert.Equal(t, 0.0, h.UpgradePercent())
	assert.True(t, h.StartScreen())
}

func TestRestartClearsLastGame(t *testing.T) {
	tests := []struct {
		name    string
		restart func(h *HUD) component.Input
	}{
		{
			name: "start pressed",
			restart: func(h *HUD) component.Input {
				in := component.Input{StartGame: true}
				h.Input(&in)
				return in
			},
		},
		{
			name: "game started report",
			restart: func(h *HUD) component.Input {
				h.Apply(component.Report{GameStarted: true}, frame(0), 3, 0)
				var in component.Input
				h.Input(&in)
				return in
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := New(2)
			h.Apply(component.Report{CollectedBullets: 2, BulletPenetrationUpgraded: true}, frame(0.1), 0, 0)
			h.Apply(component.Report{Died: true}, frame(0.1), 0, 0)
			require.NotEmpty(t, h.Indicators())
			require.Greater(t, h.UpgradePercent(), slowInCut)

			in := tc.restart(h)
			assert.False(t, h.StartScreen())
			assert.Empty(t, h.Indicators())
			assert.Zero(t, h.UpgradePercent())
			_, alpha := h.Banner()
			assert.Zero(t, alpha)
			require.True(t, in.OverrideTimeFactor)
			assert.InDelta(t, 1, in.TimeFactor, 1e-9, "no slow motion left over")
		})
	}
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	h := New(2)
	in := component.Input{StartGame: true}
	h.Input(&in)
	h.Apply(component.Report{CollectedBullets: 1}, frame(0.1), 0, 0)

	in = component.Input{StartGame: true}
	h.Input(&in)
	assert.Len(t, h.Indicators(), 1)
}
