package netcomponents

import (
	"github.com/automoto/gggames/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetPlayerStateData carries the replicated fields of a character. Action and
// Animation are written only by the server's action controller.
type NetPlayerStateData struct {
	Action       netconfig.ActionStateID
	Animation    netconfig.StateID
	Owner        string // Join token of the controlling client
	Name         string
	LastSequence uint32 // Last PlayerInput sequence processed by the server
	LastRequest  uint32 // Last ActionRequest sequence processed by the server
	IsLocal      bool   // Client-side only, not synced
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
