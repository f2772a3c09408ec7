package core

import (
	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// componentPublisher writes a controller's replicated fields into the
// entity's NetPlayerState, which srvsync sends to every client.
//
// Several physics steps run between two syncs, so an action can start and
// end before any snapshot is taken. A busy state is therefore kept in the
// component until synced is called, and the idle state that followed it is
// written then.
type componentPublisher struct {
	world  donburi.World
	entity donburi.Entity

	unsynced bool
	deferred *action.ReplicatedState
}

func (p *componentPublisher) Publish(rs action.ReplicatedState) {
	busy := rs.State != action.Idle
	if p.unsynced && !busy {
		p.deferred = &rs
		return
	}
	p.deferred = nil
	p.write(rs)
	if busy {
		p.unsynced = true
	}
}

// synced marks the written state as sent and applies a deferred one.
func (p *componentPublisher) synced() {
	p.unsynced = false
	if p.deferred != nil {
		rs := *p.deferred
		p.deferred = nil
		p.write(rs)
	}
}

func (p *componentPublisher) write(rs action.ReplicatedState) {
	if !p.world.Valid(p.entity) {
		return
	}
	state := netcomponents.NetPlayerState.Get(p.world.Entry(p.entity))
	state.Action = rs.State
	state.Animation = rs.Animation
}
