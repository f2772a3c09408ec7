package factory

import (
	"github.com/automoto/gggames/archetypes"
	"github.com/automoto/gggames/components"
	cfg "github.com/automoto/gggames/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the boom camera. Its zoom fits the rig's orthographic
// width to the window.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Zoom: float64(cfg.C.Width) / cfg.Camera.Rig.OrthoWidth,
	})
	return camera
}
