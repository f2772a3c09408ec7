package systems

import (
	"github.com/automoto/gggames/components"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frameDt = 1.0 / 60

// UpdateCharacters ticks every character controller once per frame, after
// the latest velocity is known, and advances its animation.
func UpdateCharacters(e *ecs.ECS) {
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)
		if ch.Movement != nil && entry.HasComponent(netcomponents.NetVelocity) {
			ch.Movement.Vel = netcomponents.NetVelocity.Get(entry).Vec()
		}
		ch.Controller.Tick(frameDt)
		ch.Animation.Update()
	})
}
