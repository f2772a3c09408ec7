package action

import "github.com/automoto/gggames/shared/netconfig"

// State aliases the wire type so controller code reads naturally.
type State = netconfig.ActionStateID

const (
	Idle      = netconfig.ActionIdle
	Attacking = netconfig.ActionAttacking
	Defending = netconfig.ActionDefending
)

// Role says which copy of a character a controller drives.
type Role int

const (
	// Authority is the single copy allowed to mutate the action state.
	Authority Role = iota
	// AutonomousProxy is the locally controlled, non-authoritative copy.
	AutonomousProxy
	// SimulatedProxy observes replicated state and nothing else.
	SimulatedProxy
)

func (r Role) String() string {
	switch r {
	case Authority:
		return "authority"
	case AutonomousProxy:
		return "autonomous"
	case SimulatedProxy:
		return "simulated"
	}
	return "unknown"
}

// ReplicatedState is the set of fields pushed from the authority to every
// observer. It is compared by value to detect changes.
type ReplicatedState struct {
	State     State
	Animation netconfig.StateID
}
