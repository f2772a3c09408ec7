package network

import (
	"errors"
	"fmt"

	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/messages"
)

var ErrLoopbackFull = errors.New("loopback request queue is full")

const defaultLoopbackBuffer = 64

// Loopback connects controllers living in the same process. Requests flow
// from a proxy to the authority and replicated state flows from the
// authority to every observer. Nothing is delivered until Pump runs, so the
// frame loop stays the only goroutine touching controllers.
type Loopback struct {
	requests  chan messages.ActionRequest
	authority *action.Controller
	observers []loopbackObserver
	buffer    int
}

type loopbackObserver struct {
	ctrl   *action.Controller
	states chan action.ReplicatedState
}

// NewLoopback creates a loopback with per-direction queues of the given
// size. A non-positive size uses the default.
func NewLoopback(buffer int) *Loopback {
	if buffer <= 0 {
		buffer = defaultLoopbackBuffer
	}
	return &Loopback{
		requests: make(chan messages.ActionRequest, buffer),
		buffer:   buffer,
	}
}

// SetAuthority sets the controller that receives requests.
func (l *Loopback) SetAuthority(ctrl *action.Controller) {
	l.authority = ctrl
}

// AddObserver registers a controller that receives replicated state. The
// observer immediately gets the authority's current state on the next Pump.
func (l *Loopback) AddObserver(ctrl *action.Controller) {
	obs := loopbackObserver{
		ctrl:   ctrl,
		states: make(chan action.ReplicatedState, l.buffer),
	}
	if l.authority != nil {
		obs.states <- l.authority.Replicated()
	}
	l.observers = append(l.observers, obs)
}

// SendActionRequest implements action.RequestSender.
func (l *Loopback) SendActionRequest(req messages.ActionRequest) error {
	select {
	case l.requests <- req:
		return nil
	default:
		return fmt.Errorf("send %s #%d: %w", req.Action, req.Sequence, ErrLoopbackFull)
	}
}

// Publish implements action.StatePublisher. If an observer has fallen a
// whole buffer behind, its oldest state is discarded.
func (l *Loopback) Publish(rs action.ReplicatedState) {
	for _, obs := range l.observers {
		select {
		case obs.states <- rs:
			continue
		default:
		}
		<-obs.states
		obs.states <- rs
	}
}

// Pump delivers queued requests to the authority, then queued state to the
// observers, in order. It returns the number of requests the authority
// accepted. A request the authority fails to handle does not stop delivery
// of the rest; all such errors are joined in err.
func (l *Loopback) Pump() (accepted int, err error) {
	var errs []error
	for _, req := range drainChan(l.requests) {
		if l.authority == nil {
			continue
		}
		ok, herr := l.authority.HandleRequest(req)
		if herr != nil {
			errs = append(errs, fmt.Errorf("handle %s #%d: %w", req.Action, req.Sequence, herr))
			continue
		}
		if ok {
			accepted++
		}
	}

	for _, obs := range l.observers {
		for _, rs := range drainChan(obs.states) {
			obs.ctrl.ApplyReplicated(rs)
		}
	}
	return accepted, errors.Join(errs...)
}
