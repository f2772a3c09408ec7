package systems

import (
	"github.com/automoto/gggames/components"
	cfg "github.com/automoto/gggames/config"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetInterp moves each character's drawn position toward the last
// snapshot position.
func UpdateNetInterp(e *ecs.ECS) {
	components.NetInterp.Each(e.World, func(entry *donburi.Entry) {
		interp := components.NetInterp.Get(entry)
		if !interp.Initialized || !entry.HasComponent(netcomponents.NetPosition) {
			return
		}
		if interp.T < 1 {
			interp.T += cfg.Net.InterpSpeed
			if interp.T > 1 {
				interp.T = 1
			}
		}
		pos := netcomponents.NetPosition.Get(entry)
		*pos = *netcomponents.LerpNetPosition(
			netcomponents.NetPositionData{X: interp.PrevX, Y: interp.PrevY},
			netcomponents.NetPositionData{X: interp.TargetX, Y: interp.TargetY},
			interp.T,
		)
	})
}

// SetInterpTarget starts interpolating entry toward (x, y). The first
// target is applied directly.
func SetInterpTarget(entry *donburi.Entry, x, y float64) {
	interp := components.NetInterp.Get(entry)
	pos := netcomponents.NetPosition.Get(entry)
	if !interp.Initialized {
		pos.X, pos.Y = x, y
		interp.PrevX, interp.PrevY = x, y
		interp.TargetX, interp.TargetY = x, y
		interp.T = 1
		interp.Initialized = true
		return
	}
	interp.PrevX, interp.PrevY = pos.X, pos.Y
	interp.TargetX, interp.TargetY = x, y
	interp.T = 0
}
