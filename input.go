package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/zombierun/ecs/component"
)

// controls is what the keyboard, mouse and first gamepad asked for this
// frame.
type controls struct {
	input   component.Input
	restart bool
	debug   bool
	quit    bool
}

func readControls(startScreen bool) controls {
	var c controls

	fireStraight := inpututil.IsKeyJustPressed(ebiten.KeyJ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	fireDiagonally := inpututil.IsKeyJustPressed(ebiten.KeyK) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	autoFire := inpututil.IsKeyJustPressed(ebiten.KeyA)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		fireStraight = fireStraight || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		fireDiagonally = fireDiagonally || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		start = start || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		autoFire = autoFire || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}

	// On the start screen a fire press only starts the game.
	if startScreen && (fireStraight || fireDiagonally) {
		start = true
		fireStraight, fireDiagonally = false, false
	}

	c.input = component.Input{
		FireStraight:   fireStraight,
		FireDiagonally: fireDiagonally,
		StartGame:      start,
		ToggleAutoFire: autoFire,
	}
	c.restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	c.debug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	c.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return c
}
