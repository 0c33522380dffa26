// Package hud holds the state of the heads-up display: ammo and kill
// counters, the floating "+N" indicators of collected ammo, the upgrade
// banner and the start screen. It has no drawing code; the frontend reads
// it every frame.
package hud

import (
	"strconv"

	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs"
	"github.com/milk9111/zombierun/ecs/component"
)

const (
	// IndicatorRise is how far, in screen pixels, an indicator floats up
	// over its one second lifetime.
	IndicatorRise = 120.0

	// BannerRise is the distance the upgrade banner slides in and out.
	BannerRise = 30.0

	bannerPercentPerSecond = 1.0 / 5.0
	bannerCut              = 0.15

	slowTimeFactor = 0.2
	slowInCut      = 0.7
	slowOutCut     = 0.3
)

// Indicator is one floating "+N" label anchored at a world position.
type Indicator struct {
	Text     string
	Source   common.Vec
	Progress float64
}

// Rise is the indicator's current screen-space offset above its source.
func (i *Indicator) Rise() float64 {
	return i.Progress * IndicatorRise
}

type HUD struct {
	indicators *ecs.Pool[Indicator]

	upgradePercent float64
	bannerOffset   float64
	bannerAlpha    float64

	bulletText string
	killText   string
	startShown bool
}

// New creates a HUD that shows at most capacity indicators at once.
func New(capacity int) *HUD {
	return &HUD{
		indicators: ecs.NewPool[Indicator](max(capacity, 1)),
		bulletText: "0x",
		killText:   "0",
		startShown: true,
	}
}

// Input lets the HUD take part in the next tick. The upgrade banner slows
// time down as it appears and speeds it back up as it fades.
func (h *HUD) Input(in *component.Input) {
	if h == nil || in == nil {
		return
	}
	if in.StartGame && h.startShown {
		h.clear()
		h.startShown = false
	}
	p := h.upgradePercent
	switch {
	case p >= slowInCut:
		in.OverrideTimeFactor = true
		in.TimeFactor = common.Lerp(1, slowTimeFactor, (1-p)/(1-slowInCut))
	case p < slowOutCut:
		in.OverrideTimeFactor = true
		in.TimeFactor = common.Lerp(slowTimeFactor, 1, (slowOutCut-p)/slowOutCut)
	}
}

// Apply folds one tick's report into the HUD. bullets and kills are the
// simulation's current counters.
func (h *HUD) Apply(report component.Report, frame component.FrameTime, bullets, kills int) {
	if h == nil {
		return
	}
	if report.GameStarted {
		h.clear()
		h.startShown = false
	}
	h.bulletText = strconv.Itoa(bullets) + "x"
	h.killText = strconv.Itoa(kills)

	if report.CollectedBullets > 0 {
		h.addIndicator(report.CollectedBullets, report.CollectedBulletsSource)
	}
	h.advanceIndicators(frame.DeltaSeconds)
	h.advanceBanner(report.BulletPenetrationUpgraded, frame.DeltaSeconds)

	if report.Died {
		h.startShown = true
	}
}

func (h *HUD) addIndicator(n int, source common.Vec) {
	// The oldest label gives way when every slot is taken.
	if h.indicators.Free() == 0 {
		h.indicators.Remove(h.indicators.Tail().Index)
	}
	h.indicators.Add(Indicator{Text: "+" + strconv.Itoa(n), Source: source})
}

func (h *HUD) advanceIndicators(dt float64) {
	it := h.indicators.Iterate()
	for it.Next() {
		node := it.Current()
		node.Value.Progress = min(1, node.Value.Progress+dt)
		if node.Value.Progress >= 1 {
			h.indicators.Remove(node.Index)
		}
	}
}

func (h *HUD) advanceBanner(upgraded bool, dt float64) {
	if upgraded {
		h.upgradePercent = 1
	} else {
		h.upgradePercent = max(0, h.upgradePercent-dt*bannerPercentPerSecond)
	}

	p := h.upgradePercent
	switch {
	case p >= 1-bannerCut:
		stage := (1 - p) / bannerCut
		h.bannerOffset = common.Lerp(-BannerRise, 0, stage)
		h.bannerAlpha = stage
	case p < bannerCut:
		stage := (bannerCut - p) / bannerCut
		h.bannerOffset = common.Lerp(0, BannerRise, stage)
		h.bannerAlpha = 1 - stage
	default:
		h.bannerOffset = 0
		h.bannerAlpha = 1
	}
}

// Indicators yields the live indicators, oldest first.
func (h *HUD) Indicators() []Indicator {
	out := make([]Indicator, 0, h.indicators.Count())
	for _, ind := range h.indicators.All() {
		out = append(out, *ind)
	}
	return out
}

// Banner returns the vertical offset and opacity of the upgrade banner.
func (h *HUD) Banner() (offsetY, alpha float64) {
	return h.bannerOffset, h.bannerAlpha
}

func (h *HUD) UpgradePercent() float64 {
	return h.upgradePercent
}

func (h *HUD) BulletText() string {
	return h.bulletText
}

func (h *HUD) KillText() string {
	return h.killText
}

// StartScreen reports whether the start/restart prompt is up.
func (h *HUD) StartScreen() bool {
	return h.startShown
}

// Reset drops every indicator and the banner and puts the start screen
// back up, matching an idle simulation.
func (h *HUD) Reset() {
	h.clear()
	h.startShown = true
}

func (h *HUD) clear() {
	h.indicators.Clear()
	h.upgradePercent = 0
	h.bannerOffset = 0
	h.bannerAlpha = 0
}
