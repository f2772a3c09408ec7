package systems

import (
	"log"
	"time"

	"github.com/automoto/gggames/components"
	cfg "github.com/automoto/gggames/config"
	"github.com/automoto/gggames/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

type netInputState struct {
	seq          uint32
	lastRight    float64
	lastUp       float64
	lastSendTime time.Time
}

// NewNetworkInputSystem returns an ECS system that sends the movement axes
// the local controller let through to the server as PlayerInput, when they
// change or the resend interval elapses.
func NewNetworkInputSystem(sendFn func(any) error) func(*ecs.ECS) {
	state := &netInputState{}
	resendInterval := time.Duration(cfg.Net.ResendIntervalMs) * time.Millisecond

	return func(e *ecs.ECS) {
		entry, ok := LocalCharacter(e.World)
		if !ok {
			return
		}
		movement := components.Character.Get(entry).Movement
		if movement == nil {
			return
		}
		right, up := movement.TakeAxes()

		now := time.Now()
		changed := right != state.lastRight || up != state.lastUp
		if !changed && now.Sub(state.lastSendTime) < resendInterval {
			return
		}

		state.seq++
		input := messages.NewPlayerInput(state.seq)
		input.MoveRight = right
		input.MoveUp = up
		input.Timestamp = now.UnixMilli()

		if err := sendFn(input); err != nil {
			log.Printf("[netinput] send error: %v", err)
		}

		state.lastRight = right
		state.lastUp = up
		state.lastSendTime = now
	}
}
