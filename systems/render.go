package systems

import (
	"image/color"

	"github.com/automoto/gggames/components"
	cfg "github.com/automoto/gggames/config"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func camera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// DrawArena clears the screen and draws the arena's solids.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	cam, ok := camera(e)
	if !ok {
		return
	}
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	for _, r := range arena.Solids {
		x, y := cam.WorldToScreen(r.X, r.Y, sw, sh)
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(r.W*cam.Zoom), float32(r.H*cam.Zoom), cfg.Ground, false)
	}
}

// DrawCharacters draws each character as a rectangle tinted by its current
// animation, with a marker on the side it faces and its name above it.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	cam, ok := camera(e)
	if !ok {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	size := cfg.Game.Character.Movement

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)
		pos := netcomponents.NetPosition.Get(entry)
		def := cfg.AnimationFor(ch.Animation.Current())

		w := size.Width - 2*def.Inset
		h := size.Height - 2*def.Inset
		x, y := cam.WorldToScreen(pos.X-w/2, pos.Y-h+def.Inset, sw, sh)

		tint := def.Tint
		if def.PulseFrames > 0 && ch.Animation.Frame < def.PulseFrames && ch.Animation.Frame%2 == 0 {
			tint = cfg.White
		}
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(w*cam.Zoom), float32(h*cam.Zoom), tint, false)
		if ch.IsLocal {
			vector.StrokeRect(screen, float32(x), float32(y),
				float32(w*cam.Zoom), float32(h*cam.Zoom), 2, cfg.BrightGreen, false)
		}

		// Facing marker at chest height.
		cx, cy := cam.WorldToScreen(pos.X, pos.Y-size.Height*0.66, sw, sh)
		dir := float64(ch.Controller.Direction())
		mx := cx + dir*(w/2)*cam.Zoom
		vector.DrawFilledRect(screen, float32(mx-4), float32(cy-4), 8, 8, markerColor(ch.IsLocal), false)

		if ch.Name != "" {
			lx, ly := cam.WorldToScreen(pos.X, pos.Y-size.Height, sw, sh)
			ebitenutil.DebugPrintAt(screen, ch.Name, int(lx)-len(ch.Name)*3, int(ly)-20)
		}
	})
}

func markerColor(local bool) color.RGBA {
	if local {
		return cfg.BrightGreen
	}
	return cfg.Red
}
