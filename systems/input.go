package systems

import (
	"log"

	"github.com/automoto/gggames/components"
	cfg "github.com/automoto/gggames/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacterInput polls the keyboard and gamepads and drives the local
// character's controller. Attack and defence are press events; the move
// axes are passed every frame and the controller drops them while busy.
func UpdateCharacterInput(e *ecs.ECS) {
	entry, ok := LocalCharacter(e.World)
	if !ok {
		return
	}
	ctrl := components.Character.Get(entry).Controller

	if actionJustPressed(cfg.ActionAttack) {
		if err := ctrl.RequestAttack(); err != nil {
			log.Printf("[input] attack request: %v", err)
		}
	}
	if actionJustPressed(cfg.ActionDefence) {
		if err := ctrl.RequestDefence(); err != nil {
			log.Printf("[input] defence request: %v", err)
		}
	}

	right, up := readAxes()
	ctrl.MoveRight(right)
	ctrl.MoveUp(up)
}

// readAxes returns the right/up axes in -1..1, positive up.
func readAxes() (right, up float64) {
	right = axis(actionPressed(cfg.ActionMoveLeft), actionPressed(cfg.ActionMoveRight))
	up = axis(actionPressed(cfg.ActionMoveDown), actionPressed(cfg.ActionMoveUp))

	// Analog stick overrides when pushed past the deadzone.
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if abs(h) > cfg.Input.AnalogDeadzone {
			right = h
		}
		if abs(v) > cfg.Input.AnalogDeadzone {
			up = -v
		}
	}
	return right, up
}

func axis(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func actionPressed(action cfg.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, k := range binding.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, b := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
	}
	return false
}

func actionJustPressed(action cfg.ActionID) bool {
	binding := cfg.Input.Bindings[action]
	for _, k := range binding.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, b := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				return true
			}
		}
	}
	return false
}

// QuitRequested reports whether the quit binding was pressed this frame.
func QuitRequested() bool {
	return actionJustPressed(cfg.ActionQuit)
}
