package action

import "github.com/automoto/gggames/shared/netconfig"

// Track is an AnimationPresenter that only remembers what it was told to
// play. The server uses it because it has nothing to draw.
type Track struct {
	current  netconfig.StateID
	switches int
	onChange func(from, to netconfig.StateID)
}

func NewTrack(initial netconfig.StateID) *Track {
	return &Track{current: initial}
}

// OnChange registers a callback fired whenever the played animation changes.
func (t *Track) OnChange(fn func(from, to netconfig.StateID)) {
	t.onChange = fn
}

func (t *Track) Play(anim netconfig.StateID) {
	if t.current == anim {
		return
	}
	from := t.current
	t.current = anim
	t.switches++
	if t.onChange != nil {
		t.onChange(from, anim)
	}
}

func (t *Track) Current() netconfig.StateID {
	return t.current
}

// Switches counts animation changes since creation.
func (t *Track) Switches() int {
	return t.switches
}
