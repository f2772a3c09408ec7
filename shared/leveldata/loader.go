package leveldata

import (
	"errors"
	"fmt"
	"sort"
)

var ErrNoSpawns = errors.New("arena has no spawn points")

// DefaultArena is a flat floor with walls on both sides and two platforms.
func DefaultArena() CollisionData {
	return CollisionData{
		Name:      "duel",
		MapWidth:  4096,
		MapHeight: 1536,
		SolidRects: []SolidRect{
			{X: 0, Y: 1408, W: 4096, H: 128},
			{X: 0, Y: 0, W: 64, H: 1408},
			{X: 4032, Y: 0, W: 64, H: 1408},
			{X: 896, Y: 1088, W: 640, H: 48},
			{X: 2560, Y: 1088, W: 640, H: 48},
		},
		SpawnPoints: []SpawnPoint{
			{X: 640, Y: 1408, Index: 0},
			{X: 3456, Y: 1408, Index: 1},
			{X: 2048, Y: 1408, Index: 2},
		},
	}
}

// Prepare validates data and sorts its spawns left-to-right for consistent
// assignment.
func Prepare(data *CollisionData) error {
	if data.MapWidth <= 0 || data.MapHeight <= 0 {
		return fmt.Errorf("arena %q: invalid size %dx%d", data.Name, data.MapWidth, data.MapHeight)
	}
	if len(data.SpawnPoints) == 0 {
		return fmt.Errorf("arena %q: %w", data.Name, ErrNoSpawns)
	}
	for i, r := range data.SolidRects {
		if r.W <= 0 || r.H <= 0 {
			return fmt.Errorf("arena %q: solid %d has non-positive size", data.Name, i)
		}
	}

	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})
	return nil
}
