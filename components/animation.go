package components

import "github.com/automoto/gggames/shared/netconfig"

// AnimationData is the client's action.AnimationPresenter. It only records
// which animation is playing and for how many frames; the renderer turns
// that into a tinted rectangle.
type AnimationData struct {
	CurrentSheet netconfig.StateID
	Frame        int
	Changes      int
}

func NewAnimation(initial netconfig.StateID) *AnimationData {
	return &AnimationData{CurrentSheet: initial}
}

// Play switches to state and restarts the frame counter. Playing the
// current state again does nothing.
func (a *AnimationData) Play(state netconfig.StateID) {
	if a.CurrentSheet == state {
		return
	}
	a.CurrentSheet = state
	a.Frame = 0
	a.Changes++
}

func (a *AnimationData) Current() netconfig.StateID {
	return a.CurrentSheet
}

// Update advances one frame.
func (a *AnimationData) Update() {
	a.Frame++
}
