package factory

import (
	"github.com/automoto/gggames/archetypes"
	"github.com/automoto/gggames/components"
	"github.com/automoto/gggames/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateArena(ecs *ecs.ECS, data leveldata.CollisionData) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Name:   data.Name,
		Solids: data.SolidRects,
		Width:  float64(data.MapWidth),
		Height: float64(data.MapHeight),
	})
	return arena
}
