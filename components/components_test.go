package components

import (
	"testing"

	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/gamemath"
	"github.com/automoto/gggames/shared/netconfig"
	"github.com/stretchr/testify/assert"
)

func TestAnimationRestartsOnChange(t *testing.T) {
	a := NewAnimation(netconfig.Idle)
	a.Update()
	a.Update()
	a.Play(netconfig.Idle)
	assert.Equal(t, 2, a.Frame)

	a.Play(netconfig.Attack)
	assert.Equal(t, 0, a.Frame)
	assert.Equal(t, 1, a.Changes)
}

func TestNetMovementCollectsGatedAxes(t *testing.T) {
	m := &NetMovementData{}
	ctrl := action.NewController(action.AutonomousProxy, action.DefaultTuning(), action.Collaborators{Movement: m})

	ctrl.MoveRight(-1)
	ctrl.MoveUp(1)
	right, up := m.TakeAxes()
	assert.Equal(t, -1.0, right)
	assert.Equal(t, 1.0, up)
	assert.Equal(t, gamemath.Vec2{}, m.Axes)

	ctrl.ApplyReplicated(action.ReplicatedState{State: action.Defending, Animation: netconfig.Defence})
	ctrl.MoveRight(1)
	ctrl.MoveUp(1)
	right, up = m.TakeAxes()
	assert.Zero(t, right)
	assert.Zero(t, up)
}

func TestCameraWorldToScreen(t *testing.T) {
	c := &CameraData{Zoom: 0.5}
	c.Position.X, c.Position.Y = 1000, 500
	x, y := c.WorldToScreen(1200, 500, 1280, 720)
	assert.Equal(t, 740.0, x)
	assert.Equal(t, 360.0, y)
}
