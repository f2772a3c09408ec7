package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the boom camera following the local character. Position is
// the world point shown at the center of the screen; Zoom maps world units
// to screen pixels.
type CameraData struct {
	Position math.Vec2
	Zoom     float64
}

// WorldToScreen converts a world point to screen pixels.
func (c *CameraData) WorldToScreen(x, y float64, screenW, screenH int) (float64, float64) {
	return (x-c.Position.X)*c.Zoom + float64(screenW)/2, (y-c.Position.Y)*c.Zoom + float64(screenH)/2
}

var Camera = donburi.NewComponentType[CameraData]()
