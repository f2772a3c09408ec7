package systems

import (
	"github.com/automoto/gggames/components"
	"github.com/yohamta/donburi"
)

// LocalCharacter returns the character controlled from this client.
func LocalCharacter(world donburi.World) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Character.Each(world, func(entry *donburi.Entry) {
		if found == nil && components.Character.Get(entry).IsLocal {
			found = entry
		}
	})
	return found, found != nil
}
