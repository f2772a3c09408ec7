package components

import (
	"github.com/automoto/gggames/shared/action"
	"github.com/yohamta/donburi"
)

// CharacterData links an entity to its action controller and owns the
// controller's client-side collaborators.
type CharacterData struct {
	Controller *action.Controller
	Animation  *AnimationData
	// Movement collects input and mirrors the replicated velocity. It is nil
	// when the controller moves a locally simulated body instead.
	Movement *NetMovementData
	Name     string
	IsLocal  bool
}

var Character = donburi.NewComponentType[CharacterData]()
