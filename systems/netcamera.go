package systems

import (
	"math"

	"github.com/automoto/gggames/components"
	"github.com/automoto/gggames/config"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the local character. The camera looks at the rig's
// socket above the character's feet and is clamped to the arena bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	entry, ok := LocalCharacter(e.World)
	if !ok {
		return
	}
	pos := netcomponents.NetPosition.Get(entry)

	rig := config.Camera.Rig
	targetX := pos.X + rig.SocketOffsetX
	targetY := pos.Y - rig.SocketOffsetY

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	visibleW := float64(config.C.Width) / zoom
	visibleH := float64(config.C.Height) / zoom

	minCameraX := visibleW / 2
	maxCameraX := arena.Width - visibleW/2
	minCameraY := visibleH / 2
	maxCameraY := arena.Height - visibleH/2

	if minCameraX > maxCameraX {
		minCameraX = arena.Width / 2
		maxCameraX = minCameraX
	}
	if minCameraY > maxCameraY {
		minCameraY = arena.Height / 2
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	// Snap on the first frame so the camera does not sweep in from the origin.
	if camera.Position.X == 0 && camera.Position.Y == 0 {
		camera.Position.X, camera.Position.Y = targetX, targetY
		return
	}
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
