package core

import (
	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/messages"
	"github.com/automoto/gggames/shared/movement"
	"github.com/yohamta/donburi"
)

// Player is the server-side state of one connected character. It is not a
// donburi component: it exists only on the server and is never synced.
type Player struct {
	ClientID string
	Token    string
	Name     string
	Entity   donburi.Entity

	Body       *movement.Body
	Controller *action.Controller

	// Latest input snapshot (written by the input command, read each step)
	Input        messages.PlayerInput
	LastInputSeq uint32
	LastRequest  uint32

	publisher *componentPublisher
}

// applyInput feeds the held movement axes to the controller, which ignores
// them while the character is busy.
func (p *Player) applyInput() {
	p.Controller.MoveRight(p.Input.MoveRight)
	p.Controller.MoveUp(p.Input.MoveUp)
}
