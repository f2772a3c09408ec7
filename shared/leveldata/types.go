// Package leveldata describes arenas shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

// CollisionData holds all collision-relevant data of an arena.
type CollisionData struct {
	Name        string       `yaml:"name"`
	SolidRects  []SolidRect  `yaml:"solids"`
	SpawnPoints []SpawnPoint `yaml:"spawns"`
	MapWidth    int          `yaml:"width"`
	MapHeight   int          `yaml:"height"`
}

// SolidRect represents a solid block. X, Y is the top-left corner.
type SolidRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// SpawnPoint is the bottom-center of a character's collision box when it
// enters the arena.
type SpawnPoint struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Index int     `yaml:"index"`
}
