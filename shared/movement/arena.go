package movement

import (
	"fmt"
	"log"

	"github.com/automoto/gggames/shared/gamemath"
	"github.com/automoto/gggames/shared/leveldata"
	"github.com/solarlune/resolv"
)

const (
	tagSolid     = "solid"
	tagCharacter = "character"
)

// Arena holds the collision space and spawn data of a level.
type Arena struct {
	Space       *resolv.Space
	SpawnPoints []leveldata.SpawnPoint
	MapWidth    int
	MapHeight   int
	Name        string
}

// NewArena builds a resolv.Space from arena data.
func NewArena(data leveldata.CollisionData) (*Arena, error) {
	if err := leveldata.Prepare(&data); err != nil {
		return nil, fmt.Errorf("prepare arena: %w", err)
	}

	space := resolv.NewSpace(data.MapWidth, data.MapHeight, 16, 16)
	for _, r := range data.SolidRects {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}

	log.Printf("[arena] loaded %q: %d solids, %d spawn points, %dx%d",
		data.Name, len(data.SolidRects), len(data.SpawnPoints), data.MapWidth, data.MapHeight)

	return &Arena{
		Space:       space,
		SpawnPoints: data.SpawnPoints,
		MapWidth:    data.MapWidth,
		MapHeight:   data.MapHeight,
		Name:        data.Name,
	}, nil
}

// Spawn returns the n-th spawn point, wrapping around.
func (a *Arena) Spawn(n int) gamemath.Vec2 {
	if n < 0 {
		n = -n
	}
	sp := a.SpawnPoints[n%len(a.SpawnPoints)]
	return gamemath.Vec2{X: sp.X, Y: sp.Y}
}
