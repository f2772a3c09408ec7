// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// StateID identifies the animation a character presents.
type StateID int

const (
	StateNone StateID = -1

	// Character animation states
	Idle StateID = iota
	Running
	Attack
	Defence
)

// StateToFileName maps StateID to the corresponding flipbook name.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "running",
	Attack:  "attack",
	Defence: "defence",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// ActionStateID is the replicated, mutually exclusive action a character is
// performing. Only the authoritative copy of a character writes it.
type ActionStateID int

const (
	ActionIdle ActionStateID = iota
	ActionAttacking
	ActionDefending
)

func (s ActionStateID) String() string {
	switch s {
	case ActionIdle:
		return "idle"
	case ActionAttacking:
		return "attacking"
	case ActionDefending:
		return "defending"
	}
	return "unknown"
}

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionDefence
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefence:
		return "defence"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionQuit:
		return "quit"
	}
	return "none"
}
