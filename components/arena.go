package components

import (
	"github.com/automoto/gggames/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ArenaData is the drawable copy of the arena the characters move in.
type ArenaData struct {
	Name   string
	Solids []leveldata.SolidRect
	Width  float64
	Height float64
}

var Arena = donburi.NewComponentType[ArenaData]()
