package netcomponents

import (
	"github.com/automoto/gggames/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NetVelocityData is a character's velocity in units per second.
type NetVelocityData struct {
	SpeedX, SpeedY float64
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

func (v NetVelocityData) Vec() gamemath.Vec2 {
	return gamemath.Vec2{X: v.SpeedX, Y: v.SpeedY}
}

// LerpNetVelocity interpolates between two velocities
func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{
		SpeedX: from.SpeedX + (to.SpeedX-from.SpeedX)*t,
		SpeedY: from.SpeedY + (to.SpeedY-from.SpeedY)*t,
	}
}
