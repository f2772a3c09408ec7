package core

import (
	"log"
	"time"

	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/leap-fish/necs/esync/srvsync"
)

// physicsRate is the fixed rate movement and controllers are stepped at,
// independent of the network tick rate.
const physicsRate = 60

type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// stepsPerTick is how many fixed physics steps one network tick covers.
func (g *GameLoop) stepsPerTick() int {
	steps := physicsRate / g.tickRate // 3 at 20 Hz
	if steps < 1 {
		steps = 1
	}
	return steps
}

func (g *GameLoop) tick() {
	start := time.Now()

	g.server.ProcessCommands()
	g.server.Simulate(g.stepsPerTick(), 1.0/physicsRate)

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[loop] sync error: %v", err)
	}
	g.server.markSynced()

	if g.server.metrics != nil {
		g.server.metrics.observeTick(time.Since(start))
	}
}

// Simulate runs steps fixed steps of dt seconds for every player, then
// writes the results into the replicated components. Per step the held
// input is applied (gated by the controller), the body is moved, the clock
// advances and the controller ticks.
func (s *Server) Simulate(steps int, dt float64) {
	for i := 0; i < steps; i++ {
		s.clock.Advance(dt)
		for _, p := range s.players {
			p.applyInput()
			p.Body.Step(dt)
			p.Controller.Tick(dt)
		}
	}

	for _, p := range s.players {
		if !s.world.Valid(p.Entity) {
			continue
		}
		entry := s.world.Entry(p.Entity)
		pos := netcomponents.NetPosition.Get(entry)
		vel := netcomponents.NetVelocity.Get(entry)
		state := netcomponents.NetPlayerState.Get(entry)

		at := p.Body.Position()
		pos.X, pos.Y = at.X, at.Y
		v := p.Body.Velocity()
		vel.SpeedX, vel.SpeedY = v.X, v.Y
		state.LastSequence = p.LastInputSeq
		state.LastRequest = p.LastRequest
	}
}

// markSynced tells every player's publisher that the current component
// values have been sent.
func (s *Server) markSynced() {
	for _, p := range s.players {
		p.publisher.synced()
	}
}

// Now is the server's simulation time in seconds.
func (s *Server) Now() float64 {
	return s.clock.Now()
}
