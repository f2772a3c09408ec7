package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Arena     = donburi.NewTag().SetName("Arena")
)
