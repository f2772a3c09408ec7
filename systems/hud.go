package systems

import (
	"fmt"
	"time"

	"github.com/automoto/gggames/components"
	cfg "github.com/automoto/gggames/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// HUDStatus is the connection information shown in the corner overlay.
type HUDStatus struct {
	Mode    string
	RTT     time.Duration
	Pending int
}

// NewHUDRenderer returns a renderer drawing the local character's action
// state next to the status returned by status.
func NewHUDRenderer(status func() HUDStatus) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.HUD.Visible {
			return
		}
		st := status()
		line := st.Mode
		if st.RTT > 0 {
			line += fmt.Sprintf("  rtt %dms", st.RTT.Milliseconds())
		}
		if st.Pending > 0 {
			line += fmt.Sprintf("  pending %d", st.Pending)
		}

		if entry, ok := LocalCharacter(e.World); ok {
			ch := components.Character.Get(entry)
			line += fmt.Sprintf("\n%s  %s  %s", ch.Controller.Role(), ch.Controller.State(), ch.Animation.Current())
		}
		ebitenutil.DebugPrintAt(screen, line, cfg.HUD.Padding, cfg.HUD.Padding)
	}
}
