package config

import "image/color"

// AnimationDef describes how a character rectangle is drawn while an
// animation plays.
type AnimationDef struct {
	Tint color.RGBA
	// PulseFrames makes the tint flash for the first frames of the
	// animation. Zero disables it.
	PulseFrames int
	// Inset shrinks the rectangle on each side, in world units.
	Inset float64
}

var CharacterAnimations = map[StateID]AnimationDef{
	Idle:    {Tint: LightBlue},
	Running: {Tint: Blue, Inset: 4},
	Attack:  {Tint: Orange, PulseFrames: 8, Inset: -8},
	Defence: {Tint: Yellow, PulseFrames: 4},
}

// AnimationFor returns the definition of state, falling back to Idle.
func AnimationFor(state StateID) AnimationDef {
	if def, ok := CharacterAnimations[state]; ok {
		return def
	}
	return CharacterAnimations[Idle]
}
