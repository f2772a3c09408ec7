package components

import "github.com/automoto/gggames/shared/gamemath"

// NetMovementData is the movement provider of a client-side character. The
// velocity comes from server snapshots; movement input is collected here
// until the input system sends it.
type NetMovementData struct {
	Vel  gamemath.Vec2
	Axes gamemath.Vec2
}

func (m *NetMovementData) Velocity() gamemath.Vec2 {
	return m.Vel
}

func (m *NetMovementData) SetVelocity(v gamemath.Vec2) {
	m.Vel = v
}

func (m *NetMovementData) AddMovementInput(dir gamemath.Vec2, scale float64) {
	m.Axes = m.Axes.Add(dir.Scale(scale))
}

// TakeAxes returns the collected input as right/up axes and clears it.
func (m *NetMovementData) TakeAxes() (right, up float64) {
	right = gamemath.ClampAxis(m.Axes.X)
	up = gamemath.ClampAxis(-m.Axes.Y)
	m.Axes = gamemath.Vec2{}
	return right, up
}
