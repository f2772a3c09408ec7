// Package action implements a character's attack/defence state machine.
//
// The action state is Idle, Attacking or Defending and is owned by the
// authoritative copy of the character. Other copies forward requests to the
// authority as explicit messages and receive the outcome through
// ApplyReplicated. A request made while the character is busy is dropped
// without an error on both sides.
package action

import (
	"errors"
	"fmt"

	"github.com/automoto/gggames/shared/gamemath"
	"github.com/automoto/gggames/shared/messages"
	"github.com/automoto/gggames/shared/netconfig"
)

var (
	ErrNotAuthority  = errors.New("action: not the authoritative copy")
	ErrNotControlled = errors.New("action: character is not locally controlled")
	ErrNoSender      = errors.New("action: no request sender configured")
)

// Controller drives one copy of a character. It is not safe for concurrent
// use; call it from the frame loop only.
type Controller struct {
	role   Role
	tuning Tuning

	movement  MovementProvider
	presenter AnimationPresenter
	clock     Clock
	sender    RequestSender
	publisher StatePublisher

	state           State
	forward         gamemath.Vec2
	direction       int
	defenceDeadline float64
	published       ReplicatedState
	nextSeq         uint32
}

// NewController builds a controller in the Idle state facing right.
// c.Movement is required; a nil Presenter or Clock is replaced by a Track
// and a WallClock.
func NewController(role Role, tuning Tuning, c Collaborators) *Controller {
	ctrl := &Controller{
		role:      role,
		tuning:    tuning.withDefaults(),
		movement:  c.Movement,
		presenter: c.Presenter,
		clock:     c.Clock,
		sender:    c.Sender,
		publisher: c.Publisher,
		state:     Idle,
		forward:   gamemath.Forward,
		direction: 1,
	}
	if ctrl.presenter == nil {
		ctrl.presenter = NewTrack(netconfig.Idle)
	}
	if ctrl.clock == nil {
		ctrl.clock = NewWallClock()
	}
	ctrl.published = ReplicatedState{State: Idle, Animation: ctrl.presenter.Current()}
	return ctrl
}

func (c *Controller) Role() Role {
	return c.role
}

func (c *Controller) State() State {
	return c.state
}

// IsBusy reports whether the character is attacking or defending.
func (c *Controller) IsBusy() bool {
	return c.state != Idle
}

// Forward is the last non-zero direction of travel.
func (c *Controller) Forward() gamemath.Vec2 {
	return c.forward
}

// Direction is -1 when facing left and 1 when facing right.
func (c *Controller) Direction() int {
	return c.direction
}

// Yaw is the facing rotation in degrees: 0 for right, 180 for left.
func (c *Controller) Yaw() float64 {
	if c.direction < 0 {
		return 180
	}
	return 0
}

// DefenceDeadline returns the time the current defence ends. ok is false
// unless this is the authority and the character is defending.
func (c *Controller) DefenceDeadline() (deadline float64, ok bool) {
	if c.role != Authority || c.state != Defending {
		return 0, false
	}
	return c.defenceDeadline, true
}

// Replicated returns the fields last pushed to observers.
func (c *Controller) Replicated() ReplicatedState {
	return c.published
}

func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetTuning replaces the tuning. An action already in progress keeps the
// impulse or deadline it started with.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t.withDefaults()
}

// RequestAttack asks the authority to start an attack.
func (c *Controller) RequestAttack() error {
	return c.request(netconfig.ActionAttack)
}

// RequestDefence asks the authority to start a defence.
func (c *Controller) RequestDefence() error {
	return c.request(netconfig.ActionDefence)
}

func (c *Controller) request(a netconfig.ActionID) error {
	if c.role == SimulatedProxy {
		return ErrNotControlled
	}
	if c.IsBusy() {
		return nil
	}

	c.nextSeq++
	req := messages.ActionRequest{Sequence: c.nextSeq, Action: a}

	if c.sender == nil {
		if c.role != Authority {
			return ErrNoSender
		}
		_, err := c.HandleRequest(req)
		return err
	}
	if err := c.sender.SendActionRequest(req); err != nil {
		return fmt.Errorf("send %s request: %w", a, err)
	}
	return nil
}

// HandleRequest applies a forwarded request on the authority. accepted is
// false when the precondition failed or the action is unknown.
func (c *Controller) HandleRequest(req messages.ActionRequest) (accepted bool, err error) {
	if c.role != Authority {
		return false, ErrNotAuthority
	}
	switch req.Action {
	case netconfig.ActionAttack:
		return c.ApplyAttack()
	case netconfig.ActionDefence:
		return c.ApplyDefence()
	}
	return false, nil
}

// ApplyAttack starts an attack and launches the character along its forward
// direction. It is a one-shot impulse; the movement solver decays it.
func (c *Controller) ApplyAttack() (bool, error) {
	if c.role != Authority {
		return false, ErrNotAuthority
	}
	if c.IsBusy() {
		return false, nil
	}

	c.setState(Attacking)
	c.movement.SetVelocity(c.forward.Scale(c.tuning.AttackImpulseStrength))
	c.publish()
	return true, nil
}

// ApplyDefence starts a defence that lasts DefenceDuration seconds.
func (c *Controller) ApplyDefence() (bool, error) {
	if c.role != Authority {
		return false, ErrNotAuthority
	}
	if c.IsBusy() {
		return false, nil
	}

	c.setState(Defending)
	c.defenceDeadline = c.clock.Now() + c.tuning.DefenceDuration
	c.publish()
	return true, nil
}

// MoveRight adds horizontal movement input. Ignored while busy.
func (c *Controller) MoveRight(value float64) {
	if value == 0 || c.IsBusy() {
		return
	}
	c.movement.AddMovementInput(gamemath.Forward, value)
}

// MoveUp adds vertical movement input. Ignored while busy.
func (c *Controller) MoveUp(value float64) {
	if value == 0 || c.IsBusy() {
		return
	}
	c.movement.AddMovementInput(gamemath.Up, value)
}

// Tick runs once per frame after movement has been solved.
func (c *Controller) Tick(dt float64) {
	vel := c.movement.Velocity()

	if n := vel.SafeNormal(); n != (gamemath.Vec2{}) {
		c.forward = n
	}
	switch {
	case vel.X < 0:
		c.direction = -1
	case vel.X > 0:
		c.direction = 1
	}

	if c.role == Authority {
		if c.state == Attacking && gamemath.NearlyZero(vel.Length(), c.tuning.SpeedTolerance) {
			c.setState(Idle)
		}
		if c.state == Defending && c.deadlineReached() {
			c.setState(Idle)
		}
	}

	if !c.IsBusy() {
		c.presentMovement(vel)
	}

	if c.role == Authority {
		c.publish()
	}
}

// ApplyReplicated takes state pushed by the authority. The authority itself
// ignores it.
func (c *Controller) ApplyReplicated(rs ReplicatedState) {
	if c.role == Authority {
		return
	}
	if rs.State != c.state {
		c.setState(rs.State)
	}
	if !c.IsBusy() && rs.Animation != netconfig.StateNone {
		c.presenter.Play(rs.Animation)
	}
}

func (c *Controller) deadlineReached() bool {
	now := c.clock.Now()
	return now >= c.defenceDeadline || gamemath.NearlyEqual(now, c.defenceDeadline, c.tuning.TimeTolerance)
}

func (c *Controller) setState(next State) {
	c.state = next
	switch next {
	case Attacking:
		c.presenter.Play(netconfig.Attack)
	case Defending:
		c.presenter.Play(netconfig.Defence)
	default:
		c.defenceDeadline = 0
	}
}

func (c *Controller) presentMovement(vel gamemath.Vec2) {
	if vel.Length() > c.tuning.SpeedTolerance {
		c.presenter.Play(netconfig.Running)
		return
	}
	c.presenter.Play(netconfig.Idle)
}

func (c *Controller) publish() {
	rs := ReplicatedState{State: c.state, Animation: c.presenter.Current()}
	if rs == c.published {
		return
	}
	c.published = rs
	if c.publisher != nil {
		c.publisher.Publish(rs)
	}
}
