package core

import (
	"os"
	"testing"

	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/gameconfig"
	"github.com/automoto/gggames/shared/messages"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/automoto/gggames/shared/netconfig"
	"github.com/automoto/gggames/shared/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 1.0 / physicsRate

func TestMain(m *testing.M) {
	if err := protocol.RegisterComponents(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, mutate func(*gameconfig.Settings)) (*Server, *Metrics) {
	t.Helper()
	settings := gameconfig.Default()
	if mutate != nil {
		mutate(&settings)
	}
	metrics := NewMetrics(prometheus.NewRegistry())
	s, err := NewServer(settings, metrics)
	require.NoError(t, err)
	return s, metrics
}

func joinAndSettle(t *testing.T, s *Server, clientID string) *Player {
	t.Helper()
	s.enqueue(joinCommand{clientID: clientID, req: messages.JoinRequest{PlayerName: clientID, Token: "token-" + clientID}})
	s.ProcessCommands()
	p, ok := s.players[clientID]
	require.True(t, ok)
	s.Simulate(3, step)
	require.True(t, p.Body.OnGround())
	return p
}

func playerState(s *Server, p *Player) *netcomponents.NetPlayerStateData {
	return netcomponents.NetPlayerState.Get(s.world.Entry(p.Entity))
}

func TestJoinSpawnsReplicatedCharacter(t *testing.T) {
	s, metrics := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")

	assert.Equal(t, 1, s.PlayerCount())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.players))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.joins.WithLabelValues("accepted")))

	state := playerState(s, p)
	assert.Equal(t, "token-a", state.Owner)
	assert.Equal(t, "a", state.Name)
	assert.Equal(t, action.Idle, state.Action)
	assert.Equal(t, netconfig.Idle, state.Animation)

	pos := netcomponents.NetPosition.Get(s.world.Entry(p.Entity))
	assert.InDelta(t, 640, pos.X, 1e-6)
	assert.InDelta(t, 1408, pos.Y, 1e-6)
}

func TestJoinRejectsVersionMismatch(t *testing.T) {
	s, metrics := newTestServer(t, func(c *gameconfig.Settings) { c.Server.Version = "1.2.0" })

	s.enqueue(joinCommand{clientID: "a", req: messages.JoinRequest{Version: "1.1.0"}})
	s.enqueue(joinCommand{clientID: "b", req: messages.JoinRequest{Version: "1.2.0"}})
	s.ProcessCommands()

	assert.Equal(t, 1, s.PlayerCount())
	assert.NotContains(t, s.players, "a")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.joins.WithLabelValues("version_mismatch")))
}

func TestDuplicateJoinIsIgnored(t *testing.T) {
	s, metrics := newTestServer(t, nil)
	joinAndSettle(t, s, "a")
	s.enqueue(joinCommand{clientID: "a", req: messages.JoinRequest{}})
	s.ProcessCommands()

	assert.Equal(t, 1, s.PlayerCount())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.joins.WithLabelValues("duplicate")))
}

func TestAttackRequestLaunchesAndSettles(t *testing.T) {
	s, metrics := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")

	s.enqueue(requestCommand{clientID: "a", req: messages.ActionRequest{Sequence: 1, Action: netconfig.ActionAttack}})
	s.ProcessCommands()

	assert.Equal(t, action.Attacking, playerState(s, p).Action)
	assert.Equal(t, netconfig.Attack, playerState(s, p).Animation)
	assert.Equal(t, 3000.0, p.Body.Velocity().X)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("attack", "accepted")))

	for i := 0; i < 240 && p.Controller.IsBusy(); i++ {
		s.Simulate(1, step)
	}
	s.markSynced()
	assert.Equal(t, action.Idle, playerState(s, p).Action)
	assert.Equal(t, netconfig.Idle, playerState(s, p).Animation)
	assert.Equal(t, uint32(1), playerState(s, p).LastRequest)
	assert.Greater(t, netcomponents.NetPosition.Get(s.world.Entry(p.Entity)).X, 640.0)
}

func TestRequestsDuringActionAreDropped(t *testing.T) {
	s, metrics := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")

	s.enqueue(requestCommand{clientID: "a", req: messages.ActionRequest{Sequence: 1, Action: netconfig.ActionDefence}})
	s.enqueue(requestCommand{clientID: "a", req: messages.ActionRequest{Sequence: 2, Action: netconfig.ActionAttack}})
	s.ProcessCommands()

	assert.Equal(t, action.Defending, p.Controller.State())
	assert.Equal(t, 0.0, p.Body.Velocity().X)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("defence", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("attack", "dropped")))
}

func TestDefenceExpiresInSimulationTime(t *testing.T) {
	s, _ := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")

	s.enqueue(requestCommand{clientID: "a", req: messages.ActionRequest{Sequence: 1, Action: netconfig.ActionDefence}})
	s.ProcessCommands()
	deadline, ok := p.Controller.DefenceDeadline()
	require.True(t, ok)
	assert.InDelta(t, s.Now()+0.8, deadline, 1e-9)

	s.Simulate(45, step)
	assert.Equal(t, action.Defending, playerState(s, p).Action)

	s.Simulate(6, step)
	s.markSynced()
	assert.Equal(t, action.Idle, playerState(s, p).Action)
}

func TestActionShorterThanTickIsReplicated(t *testing.T) {
	s, _ := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")

	// Jump straight up so the last forward points down, then land.
	s.enqueue(inputCommand{clientID: "a", input: messages.PlayerInput{Sequence: 1, MoveUp: 1}})
	s.ProcessCommands()
	s.Simulate(1, step)
	s.enqueue(inputCommand{clientID: "a", input: messages.PlayerInput{Sequence: 2}})
	s.ProcessCommands()
	for i := 0; i < 240 && !p.Body.OnGround(); i++ {
		s.Simulate(1, step)
	}
	require.True(t, p.Body.OnGround())
	require.Greater(t, p.Controller.Forward().Y, 0.0)
	s.markSynced()

	// The attack drives into the floor and ends within the same tick.
	s.enqueue(requestCommand{clientID: "a", req: messages.ActionRequest{Sequence: 1, Action: netconfig.ActionAttack}})
	s.ProcessCommands()
	s.Simulate(3, step)
	require.Equal(t, action.Idle, p.Controller.State())

	assert.Equal(t, action.Attacking, playerState(s, p).Action)
	assert.Equal(t, netconfig.Attack, playerState(s, p).Animation)

	s.markSynced()
	assert.Equal(t, action.Idle, playerState(s, p).Action)
	assert.Equal(t, netconfig.Idle, playerState(s, p).Animation)
}

func TestPublisherHoldsBusyStateUntilSynced(t *testing.T) {
	s, _ := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")
	pub := p.publisher

	pub.Publish(action.ReplicatedState{State: action.Defending, Animation: netconfig.Defence})
	pub.Publish(action.ReplicatedState{State: action.Idle, Animation: netconfig.Running})
	assert.Equal(t, action.Defending, playerState(s, p).Action)

	// A later idle update replaces the deferred one.
	pub.Publish(action.ReplicatedState{State: action.Idle, Animation: netconfig.Idle})
	pub.synced()
	assert.Equal(t, action.Idle, playerState(s, p).Action)
	assert.Equal(t, netconfig.Idle, playerState(s, p).Animation)

	// Once synced, idle changes are written straight away.
	pub.Publish(action.ReplicatedState{State: action.Idle, Animation: netconfig.Running})
	assert.Equal(t, netconfig.Running, playerState(s, p).Animation)
}

func TestMovementInputGatedWhileDefending(t *testing.T) {
	s, _ := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")

	s.enqueue(requestCommand{clientID: "a", req: messages.ActionRequest{Sequence: 1, Action: netconfig.ActionDefence}})
	s.enqueue(inputCommand{clientID: "a", input: messages.PlayerInput{Sequence: 1, MoveRight: 1, MoveUp: 1}})
	s.ProcessCommands()

	before := p.Body.Position()
	s.Simulate(20, step)
	assert.Equal(t, before, p.Body.Position())
	assert.True(t, p.Body.OnGround())

	// Once the defence ends the held input moves the character.
	s.Simulate(60, step)
	assert.Equal(t, action.Idle, p.Controller.State())
	assert.Greater(t, p.Body.Position().X, before.X)
	assert.Equal(t, uint32(1), playerState(s, p).LastSequence)
}

func TestStaleInputIsIgnored(t *testing.T) {
	s, _ := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")

	s.enqueue(inputCommand{clientID: "a", input: messages.PlayerInput{Sequence: 5, MoveRight: 1}})
	s.enqueue(inputCommand{clientID: "a", input: messages.PlayerInput{Sequence: 4, MoveRight: -1}})
	s.ProcessCommands()

	assert.Equal(t, uint32(5), p.LastInputSeq)
	assert.Equal(t, 1.0, p.Input.MoveRight)
}

func TestLeaveRemovesCharacter(t *testing.T) {
	s, metrics := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")
	joinAndSettle(t, s, "b")

	s.enqueue(leaveCommand{clientID: "a"})
	s.enqueue(leaveCommand{clientID: "missing"})
	s.ProcessCommands()

	assert.Equal(t, 1, s.PlayerCount())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.players))
	assert.False(t, s.world.Valid(p.Entity))
}

func TestReloadCharacterAppliesToPlayers(t *testing.T) {
	s, _ := newTestServer(t, nil)
	p := joinAndSettle(t, s, "a")

	ch := gameconfig.Default().Character
	ch.Action.AttackImpulseStrength = 1000
	s.ReloadCharacter(ch)
	s.enqueue(requestCommand{clientID: "a", req: messages.ActionRequest{Sequence: 1, Action: netconfig.ActionAttack}})
	s.ProcessCommands()

	assert.Equal(t, 1000.0, p.Body.Velocity().X)
}
