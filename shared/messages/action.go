package messages

import "github.com/automoto/gggames/shared/netconfig"

// ActionRequest asks the authoritative copy of the sender's character to
// start an action. The authority checks the precondition itself; a request
// that arrives while the character is busy is dropped without a reply.
type ActionRequest struct {
	Sequence uint32
	Action   netconfig.ActionID // ActionAttack or ActionDefence
}
