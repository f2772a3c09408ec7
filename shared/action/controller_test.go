package action

import (
	"errors"
	"testing"

	"github.com/automoto/gggames/shared/gamemath"
	"github.com/automoto/gggames/shared/messages"
	"github.com/automoto/gggames/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovement struct {
	vel    gamemath.Vec2
	inputs []gamemath.Vec2
}

func (m *fakeMovement) Velocity() gamemath.Vec2     { return m.vel }
func (m *fakeMovement) SetVelocity(v gamemath.Vec2) { m.vel = v }
func (m *fakeMovement) AddMovementInput(dir gamemath.Vec2, scale float64) {
	m.inputs = append(m.inputs, dir.Scale(scale))
}

type fakeSender struct {
	sent []messages.ActionRequest
	err  error
}

func (s *fakeSender) SendActionRequest(req messages.ActionRequest) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, req)
	return nil
}

type fakePublisher struct {
	pushed []ReplicatedState
}

func (p *fakePublisher) Publish(rs ReplicatedState) {
	p.pushed = append(p.pushed, rs)
}

type fixture struct {
	ctrl      *Controller
	movement  *fakeMovement
	track     *Track
	clock     *ManualClock
	publisher *fakePublisher
	sender    *fakeSender
}

func newFixture(role Role) *fixture {
	f := &fixture{
		movement:  &fakeMovement{},
		track:     NewTrack(netconfig.Idle),
		clock:     &ManualClock{},
		publisher: &fakePublisher{},
	}
	c := Collaborators{
		Movement:  f.movement,
		Presenter: f.track,
		Clock:     f.clock,
		Publisher: f.publisher,
	}
	if role == AutonomousProxy {
		f.sender = &fakeSender{}
		c.Sender = f.sender
	}
	f.ctrl = NewController(role, DefaultTuning(), c)
	return f
}

func TestNewControllerStartsIdle(t *testing.T) {
	f := newFixture(Authority)

	assert.Equal(t, Idle, f.ctrl.State())
	assert.False(t, f.ctrl.IsBusy())
	assert.Equal(t, gamemath.Forward, f.ctrl.Forward())
	assert.Equal(t, 1, f.ctrl.Direction())
	assert.Equal(t, ReplicatedState{State: Idle, Animation: netconfig.Idle}, f.ctrl.Replicated())
	_, ok := f.ctrl.DefenceDeadline()
	assert.False(t, ok)
}

func TestAuthorityAttackThenStop(t *testing.T) {
	f := newFixture(Authority)

	require.NoError(t, f.ctrl.RequestAttack())
	assert.Equal(t, Attacking, f.ctrl.State())
	assert.Equal(t, gamemath.Vec2{X: 3000}, f.movement.vel)
	assert.Equal(t, netconfig.Attack, f.track.Current())

	// Still moving: stays attacking.
	f.movement.vel = gamemath.Vec2{X: 1200}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, Attacking, f.ctrl.State())
	assert.Equal(t, netconfig.Attack, f.track.Current())

	f.movement.vel = gamemath.Vec2{}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, Idle, f.ctrl.State())
	assert.Equal(t, netconfig.Idle, f.track.Current())
}

func TestAttackEndsOnFloatingResidue(t *testing.T) {
	f := newFixture(Authority)
	_, err := f.ctrl.ApplyAttack()
	require.NoError(t, err)

	f.movement.vel = gamemath.Vec2{X: 1e-9, Y: -1e-9}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, Idle, f.ctrl.State())
}

func TestAttackUsesLastForward(t *testing.T) {
	f := newFixture(Authority)

	f.movement.vel = gamemath.Vec2{X: -250}
	f.ctrl.Tick(1.0 / 60)
	f.movement.vel = gamemath.Vec2{}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, gamemath.Vec2{X: -1}, f.ctrl.Forward())

	accepted, err := f.ctrl.ApplyAttack()
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, gamemath.Vec2{X: -3000}, f.movement.vel)
}

func TestRequestsWhileBusyAreDropped(t *testing.T) {
	cases := []struct {
		name   string
		start  func(c *Controller) (bool, error)
		second func(c *Controller) error
	}{
		{"attack_then_attack", (*Controller).ApplyAttack, (*Controller).RequestAttack},
		{"attack_then_defence", (*Controller).ApplyAttack, (*Controller).RequestDefence},
		{"defence_then_attack", (*Controller).ApplyDefence, (*Controller).RequestAttack},
		{"defence_then_defence", (*Controller).ApplyDefence, (*Controller).RequestDefence},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(Authority)
			f.clock.Set(5)
			accepted, err := tc.start(f.ctrl)
			require.NoError(t, err)
			require.True(t, accepted)

			state := f.ctrl.State()
			vel := f.movement.vel
			deadline, hadDeadline := f.ctrl.DefenceDeadline()
			pushes := len(f.publisher.pushed)

			f.clock.Set(5.1)
			require.NoError(t, tc.second(f.ctrl))

			assert.Equal(t, state, f.ctrl.State())
			assert.Equal(t, vel, f.movement.vel)
			d, ok := f.ctrl.DefenceDeadline()
			assert.Equal(t, hadDeadline, ok)
			assert.Equal(t, deadline, d)
			assert.Len(t, f.publisher.pushed, pushes)
		})
	}
}

func TestDoubleRequestCollapsesToOneTransition(t *testing.T) {
	f := newFixture(Authority)

	first, err := f.ctrl.HandleRequest(messages.ActionRequest{Sequence: 1, Action: netconfig.ActionDefence})
	require.NoError(t, err)
	second, err := f.ctrl.HandleRequest(messages.ActionRequest{Sequence: 2, Action: netconfig.ActionAttack})
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, Defending, f.ctrl.State())
	assert.Equal(t, gamemath.Vec2{}, f.movement.vel)
}

func TestHandleRequestDropsUnknownAction(t *testing.T) {
	f := newFixture(Authority)

	accepted, err := f.ctrl.HandleRequest(messages.ActionRequest{Sequence: 1, Action: netconfig.ActionQuit})
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, Idle, f.ctrl.State())
}

func TestDefenceExpiresAtDeadline(t *testing.T) {
	f := newFixture(Authority)
	f.clock.Set(10)

	accepted, err := f.ctrl.ApplyDefence()
	require.NoError(t, err)
	require.True(t, accepted)

	deadline, ok := f.ctrl.DefenceDeadline()
	require.True(t, ok)
	assert.InDelta(t, 10.8, deadline, 1e-12)
	assert.Equal(t, netconfig.Defence, f.track.Current())

	for _, now := range []float64{10, 10.2, 10.5, 10.79} {
		f.clock.Set(now)
		f.ctrl.Tick(1.0 / 60)
		assert.Equal(t, Defending, f.ctrl.State(), "at t=%v", now)
	}

	f.clock.Set(deadline)
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, Idle, f.ctrl.State())
	_, ok = f.ctrl.DefenceDeadline()
	assert.False(t, ok)
}

func TestDefenceDoesNotDependOnVelocity(t *testing.T) {
	f := newFixture(Authority)
	_, err := f.ctrl.ApplyDefence()
	require.NoError(t, err)

	f.movement.vel = gamemath.Vec2{}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, Defending, f.ctrl.State())
}

func TestMovementInputIgnoredWhileBusy(t *testing.T) {
	values := []float64{-1, -0.25, 0.5, 1, 1e6}

	f := newFixture(Authority)
	_, err := f.ctrl.ApplyDefence()
	require.NoError(t, err)

	for _, v := range values {
		f.ctrl.MoveRight(v)
		f.ctrl.MoveUp(v)
	}
	assert.Empty(t, f.movement.inputs)

	f.clock.Set(1)
	f.ctrl.Tick(1.0 / 60)
	require.False(t, f.ctrl.IsBusy())

	f.ctrl.MoveRight(0)
	f.ctrl.MoveUp(0)
	assert.Empty(t, f.movement.inputs)

	f.ctrl.MoveRight(0.5)
	f.ctrl.MoveUp(1)
	assert.Equal(t, []gamemath.Vec2{{X: 0.5}, {Y: -1}}, f.movement.inputs)
}

func TestFacingFlipsOnHorizontalSign(t *testing.T) {
	steps := []struct {
		velX      float64
		direction int
		yaw       float64
	}{
		{5, 1, 0},
		{-3, -1, 180},
		{0, -1, 180},
		{-0.5, -1, 180},
		{2, 1, 0},
		{0, 1, 0},
	}

	f := newFixture(SimulatedProxy)
	for i, s := range steps {
		f.movement.vel = gamemath.Vec2{X: s.velX}
		f.ctrl.Tick(1.0 / 60)
		assert.Equal(t, s.direction, f.ctrl.Direction(), "step %d", i)
		assert.Equal(t, s.yaw, f.ctrl.Yaw(), "step %d", i)
	}
}

func TestVerticalVelocityKeepsFacing(t *testing.T) {
	f := newFixture(Authority)
	f.movement.vel = gamemath.Vec2{X: -1}
	f.ctrl.Tick(1.0 / 60)

	f.movement.vel = gamemath.Vec2{Y: 400}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, -1, f.ctrl.Direction())
	assert.Equal(t, gamemath.Vec2{Y: 1}, f.ctrl.Forward())
}

func TestIdlePresentationFollowsVelocity(t *testing.T) {
	f := newFixture(Authority)

	f.movement.vel = gamemath.Vec2{X: 300}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, netconfig.Running, f.track.Current())

	f.movement.vel = gamemath.Vec2{}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, netconfig.Idle, f.track.Current())
}

func TestAuthorityPublishesOnlyChanges(t *testing.T) {
	f := newFixture(Authority)

	_, err := f.ctrl.ApplyAttack()
	require.NoError(t, err)
	f.ctrl.Tick(1.0 / 60)
	f.ctrl.Tick(1.0 / 60)
	f.movement.vel = gamemath.Vec2{}
	f.ctrl.Tick(1.0 / 60)
	f.ctrl.Tick(1.0 / 60)

	assert.Equal(t, []ReplicatedState{
		{State: Attacking, Animation: netconfig.Attack},
		{State: Idle, Animation: netconfig.Idle},
	}, f.publisher.pushed)
}

func TestProxyForwardsRequestsWithoutMutating(t *testing.T) {
	f := newFixture(AutonomousProxy)

	require.NoError(t, f.ctrl.RequestAttack())
	assert.Equal(t, Idle, f.ctrl.State())
	assert.Equal(t, gamemath.Vec2{}, f.movement.vel)
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, messages.ActionRequest{Sequence: 1, Action: netconfig.ActionAttack}, f.sender.sent[0])

	f.ctrl.ApplyReplicated(ReplicatedState{State: Attacking, Animation: netconfig.Attack})
	require.NoError(t, f.ctrl.RequestDefence())
	assert.Len(t, f.sender.sent, 1)

	f.ctrl.ApplyReplicated(ReplicatedState{State: Idle, Animation: netconfig.Idle})
	require.NoError(t, f.ctrl.RequestDefence())
	require.Len(t, f.sender.sent, 2)
	assert.Equal(t, messages.ActionRequest{Sequence: 2, Action: netconfig.ActionDefence}, f.sender.sent[1])
}

func TestProxyNeverClearsStateItself(t *testing.T) {
	f := newFixture(AutonomousProxy)
	f.ctrl.ApplyReplicated(ReplicatedState{State: Attacking, Animation: netconfig.Attack})

	f.movement.vel = gamemath.Vec2{}
	f.ctrl.Tick(1.0 / 60)
	assert.Equal(t, Attacking, f.ctrl.State())
	assert.Empty(t, f.publisher.pushed)
}

func TestProxySendErrorIsWrapped(t *testing.T) {
	f := newFixture(AutonomousProxy)
	boom := errors.New("socket closed")
	f.sender.err = boom

	err := f.ctrl.RequestAttack()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRoleErrors(t *testing.T) {
	observer := newFixture(SimulatedProxy)
	assert.ErrorIs(t, observer.ctrl.RequestAttack(), ErrNotControlled)
	assert.ErrorIs(t, observer.ctrl.RequestDefence(), ErrNotControlled)

	_, err := observer.ctrl.ApplyAttack()
	assert.ErrorIs(t, err, ErrNotAuthority)
	_, err = observer.ctrl.ApplyDefence()
	assert.ErrorIs(t, err, ErrNotAuthority)
	_, err = observer.ctrl.HandleRequest(messages.ActionRequest{Action: netconfig.ActionAttack})
	assert.ErrorIs(t, err, ErrNotAuthority)

	proxy := NewController(AutonomousProxy, DefaultTuning(), Collaborators{Movement: &fakeMovement{}})
	assert.ErrorIs(t, proxy.RequestAttack(), ErrNoSender)
}

func TestObserverPresentationFollowsReplicatedState(t *testing.T) {
	f := newFixture(SimulatedProxy)

	f.ctrl.ApplyReplicated(ReplicatedState{State: Attacking, Animation: netconfig.Attack})
	assert.Equal(t, netconfig.Attack, f.track.Current())
	assert.True(t, f.ctrl.IsBusy())

	f.ctrl.ApplyReplicated(ReplicatedState{State: Idle, Animation: netconfig.Running})
	assert.Equal(t, netconfig.Running, f.track.Current())

	f.ctrl.ApplyReplicated(ReplicatedState{State: Defending, Animation: netconfig.Defence})
	assert.Equal(t, netconfig.Defence, f.track.Current())
	_, ok := f.ctrl.DefenceDeadline()
	assert.False(t, ok)
}

func TestAuthorityIgnoresReplicatedState(t *testing.T) {
	f := newFixture(Authority)
	f.ctrl.ApplyReplicated(ReplicatedState{State: Attacking, Animation: netconfig.Attack})
	assert.Equal(t, Idle, f.ctrl.State())
}

func TestSetTuningAffectsNextAction(t *testing.T) {
	f := newFixture(Authority)
	f.ctrl.SetTuning(Tuning{AttackImpulseStrength: 500})

	_, err := f.ctrl.ApplyAttack()
	require.NoError(t, err)
	assert.Equal(t, gamemath.Vec2{X: 500}, f.movement.vel)
	assert.Equal(t, 0.8, f.ctrl.Tuning().DefenceDuration)
}

func TestTrackCountsSwitches(t *testing.T) {
	track := NewTrack(netconfig.Idle)
	var seen []netconfig.StateID
	track.OnChange(func(_, to netconfig.StateID) { seen = append(seen, to) })

	track.Play(netconfig.Idle)
	track.Play(netconfig.Running)
	track.Play(netconfig.Running)
	track.Play(netconfig.Attack)

	assert.Equal(t, 2, track.Switches())
	assert.Equal(t, []netconfig.StateID{netconfig.Running, netconfig.Attack}, seen)
}
