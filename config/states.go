package config

import "github.com/automoto/gggames/shared/netconfig"

// Type aliases so client code can use config.StateID etc.
type StateID = netconfig.StateID
type ActionID = netconfig.ActionID

// Re-export character animation states.
const (
	StateNone = netconfig.StateNone

	Idle    = netconfig.Idle
	Running = netconfig.Running
	Attack  = netconfig.Attack
	Defence = netconfig.Defence
)

// Re-export logical actions.
const (
	ActionNone      = netconfig.ActionNone
	ActionMoveLeft  = netconfig.ActionMoveLeft
	ActionMoveRight = netconfig.ActionMoveRight
	ActionMoveUp    = netconfig.ActionMoveUp
	ActionMoveDown  = netconfig.ActionMoveDown
	ActionAttack    = netconfig.ActionAttack
	ActionDefence   = netconfig.ActionDefence
	ActionQuit      = netconfig.ActionQuit
	ActionCount     = netconfig.ActionCount
)
