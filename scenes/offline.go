package scenes

import (
	"log"
	"sync"

	"github.com/automoto/gggames/components"
	cfg "github.com/automoto/gggames/config"
	"github.com/automoto/gggames/network"
	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/movement"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/automoto/gggames/systems"
	"github.com/automoto/gggames/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const offlineDt = 1.0 / 60

// OfflineScene runs the authoritative and the locally controlled copy of a
// character in one process. Requests and replicated state travel through a
// network.Loopback pumped by the frame loop.
type OfflineScene struct {
	ecsWorld *ecs.ECS
	once     sync.Once

	arena     *movement.Arena
	body      *movement.Body
	clock     *action.ManualClock
	authority *action.Controller
	loopback  *network.Loopback
	player    *donburi.Entry
}

func NewOfflineScene() *OfflineScene {
	return &OfflineScene{}
}

func (s *OfflineScene) Update() {
	s.once.Do(s.configure)
	if s.ecsWorld == nil {
		return
	}
	s.ecsWorld.Update()
}

func (s *OfflineScene) Draw(screen *ebiten.Image) {
	if s.ecsWorld == nil {
		return
	}
	s.ecsWorld.Draw(screen)
}

func (s *OfflineScene) configure() {
	arena, err := movement.NewArena(cfg.Game.Arena)
	if err != nil {
		log.Printf("[offline] arena: %v", err)
		return
	}
	s.arena = arena
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(s.ecsWorld, cfg.Game.Arena)
	factory.CreateCamera(s.ecsWorld)

	s.body = movement.NewBody(arena, cfg.Game.Character.Movement, arena.Spawn(0))
	s.clock = &action.ManualClock{}
	s.loopback = network.NewLoopback(0)
	s.authority = action.NewController(action.Authority, cfg.Game.Character.Action, action.Collaborators{
		Movement:  s.body,
		Clock:     s.clock,
		Publisher: s.loopback,
	})
	s.loopback.SetAuthority(s.authority)

	s.player = factory.CreateCharacter(s.ecsWorld, factory.CharacterOptions{
		Name:     cfg.C.PlayerName,
		Role:     action.AutonomousProxy,
		Sender:   s.loopback,
		Movement: s.body,
	})
	s.loopback.AddObserver(components.Character.Get(s.player).Controller)
	s.writeBody()

	s.ecsWorld.AddSystem(systems.UpdateCharacterInput)
	s.ecsWorld.AddSystem(s.simulate)
	s.ecsWorld.AddSystem(systems.UpdateCharacters)
	s.ecsWorld.AddSystem(systems.UpdateCamera)
	s.ecsWorld.AddRenderer(cfg.Default, systems.DrawArena)
	s.ecsWorld.AddRenderer(cfg.Default, systems.DrawCharacters)
	s.ecsWorld.AddRenderer(cfg.Default, systems.NewHUDRenderer(func() systems.HUDStatus {
		return systems.HUDStatus{Mode: "offline"}
	}))
}

// simulate runs one authoritative step between the input system and the
// proxy's own tick.
func (s *OfflineScene) simulate(_ *ecs.ECS) {
	if _, err := s.loopback.Pump(); err != nil {
		log.Printf("[offline] pump: %v", err)
	}
	s.body.Step(offlineDt)
	s.clock.Advance(offlineDt)
	s.authority.Tick(offlineDt)
	if _, err := s.loopback.Pump(); err != nil {
		log.Printf("[offline] pump: %v", err)
	}
	s.writeBody()
}

func (s *OfflineScene) writeBody() {
	pos := s.body.Position()
	vel := s.body.Velocity()
	netcomponents.NetPosition.SetValue(s.player, netcomponents.NetPositionData{X: pos.X, Y: pos.Y})
	netcomponents.NetVelocity.SetValue(s.player, netcomponents.NetVelocityData{SpeedX: vel.X, SpeedY: vel.Y})
}
