package action

import (
	"github.com/automoto/gggames/shared/gamemath"
	"github.com/automoto/gggames/shared/messages"
	"github.com/automoto/gggames/shared/netconfig"
)

// MovementProvider owns a character's velocity. Movement is confined to the
// play plane by construction.
type MovementProvider interface {
	Velocity() gamemath.Vec2
	SetVelocity(v gamemath.Vec2)
	AddMovementInput(dir gamemath.Vec2, scale float64)
}

// AnimationPresenter plays whatever it is told to. It does not validate.
type AnimationPresenter interface {
	Play(anim netconfig.StateID)
	Current() netconfig.StateID
}

// RequestSender forwards action requests to the authoritative copy. Delivery
// is expected to be reliable and ordered.
type RequestSender interface {
	SendActionRequest(req messages.ActionRequest) error
}

// StatePublisher receives the replicated fields after every authoritative
// change.
type StatePublisher interface {
	Publish(rs ReplicatedState)
}

// Clock returns monotonic seconds since start.
type Clock interface {
	Now() float64
}

// Collaborators are the concrete objects a character is built from.
type Collaborators struct {
	Movement  MovementProvider
	Presenter AnimationPresenter
	Clock     Clock

	// Sender is required on an AutonomousProxy. On an Authority a nil Sender
	// means requests are handled in place.
	Sender RequestSender
	// Publisher is only used on an Authority and may be nil.
	Publisher StatePublisher
}
