package core

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/gameconfig"
	"github.com/automoto/gggames/shared/messages"
	"github.com/automoto/gggames/shared/movement"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/automoto/gggames/shared/netconfig"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Server manages the game state and client connections. Router callbacks
// only queue commands; the world, the arena and the players map belong to
// the loop goroutine.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	settings  gameconfig.Settings
	arena     *movement.Arena
	clock     *action.ManualClock
	metrics   *Metrics

	players     map[string]*Player // by client ID
	spawnCount  int
	playerCount atomic.Int32

	cmdMu    sync.Mutex
	commands []command
}

// NewServer creates a new game server. metrics may be nil.
func NewServer(settings gameconfig.Settings, metrics *Metrics) (*Server, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	arena, err := movement.NewArena(settings.Arena)
	if err != nil {
		return nil, fmt.Errorf("build arena: %w", err)
	}

	world := donburi.NewWorld()
	s := &Server{
		world:    world,
		settings: settings,
		arena:    arena,
		clock:    &action.ManualClock{},
		metrics:  metrics,
		players:  make(map[string]*Player),
	}
	s.loop = NewGameLoop(s, settings.Server.TickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	return s, nil
}

// Start registers the router callbacks, starts the game loop and serves
// websocket clients on the configured port. It blocks until the transport
// stops.
func (s *Server) Start() error {
	s.setupRouterCallbacks()

	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(s.settings.Server.Port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] client %s disconnected", client.Id())
		}
		s.enqueue(leaveCommand{clientID: client.Id()})
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(joinCommand{clientID: client.Id(), req: req})
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.enqueue(inputCommand{clientID: client.Id(), input: input})
	})

	router.On(func(client *router.NetworkClient, req messages.ActionRequest) {
		s.enqueue(requestCommand{clientID: client.Id(), req: req})
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

// ReloadCharacter queues new character settings; they apply to every player
// at the start of the next tick.
func (s *Server) ReloadCharacter(c gameconfig.CharacterSettings) {
	s.enqueue(tuningCommand{character: c})
}

func (s *Server) join(clientID string, req messages.JoinRequest) {
	if want := s.settings.Server.Version; want != "" && req.Version != want {
		log.Printf("[server] join from %s rejected: version %q, want %q", clientID, req.Version, want)
		s.observeJoin("version_mismatch")
		return
	}
	if _, exists := s.players[clientID]; exists {
		s.observeJoin("duplicate")
		return
	}

	entity := s.world.Create(
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetPlayerState,
	)
	entry := s.world.Entry(entity)

	spawn := s.arena.Spawn(s.spawnCount)
	s.spawnCount++

	netcomponents.NetPosition.Set(entry, &netcomponents.NetPositionData{X: spawn.X, Y: spawn.Y})
	netcomponents.NetVelocity.Set(entry, &netcomponents.NetVelocityData{})
	netcomponents.NetPlayerState.Set(entry, &netcomponents.NetPlayerStateData{
		Action:    action.Idle,
		Animation: netconfig.Idle,
		Owner:     req.Token,
		Name:      req.PlayerName,
	})

	// Mark entity for network sync with interpolation for position
	err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetPlayerState,
	)
	if err != nil {
		log.Printf("[server] failed to set up network sync for %s: %v", clientID, err)
		s.world.Remove(entity)
		s.observeJoin("error")
		return
	}

	ch := s.settings.Character
	body := movement.NewBody(s.arena, ch.Movement, spawn)
	publisher := &componentPublisher{world: s.world, entity: entity}
	ctrl := action.NewController(action.Authority, ch.Action, action.Collaborators{
		Movement:  body,
		Clock:     s.clock,
		Publisher: publisher,
	})

	s.players[clientID] = &Player{
		ClientID:   clientID,
		Token:      req.Token,
		Name:       req.PlayerName,
		Entity:     entity,
		Body:       body,
		Controller: ctrl,
		publisher:  publisher,
	}
	s.playerCountChanged()
	s.observeJoin("accepted")

	log.Printf("[server] %q joined as %s at (%.0f, %.0f)", req.PlayerName, clientID, spawn.X, spawn.Y)
}

func (s *Server) leave(clientID string) {
	p, ok := s.players[clientID]
	if !ok {
		return
	}
	delete(s.players, clientID)
	p.Body.Remove()
	if s.world.Valid(p.Entity) {
		s.world.Remove(p.Entity)
	}
	s.playerCountChanged()
	log.Printf("[server] %q left", p.Name)
}

// handleRequest passes an action request to the player's authoritative
// controller. A request that fails the precondition is dropped silently.
func (s *Server) handleRequest(clientID string, req messages.ActionRequest) {
	p, ok := s.players[clientID]
	if !ok {
		return
	}
	if req.Sequence > p.LastRequest {
		p.LastRequest = req.Sequence
	}

	accepted, err := p.Controller.HandleRequest(req)
	if err != nil {
		log.Printf("[server] request from %s: %v", clientID, err)
		return
	}
	if s.metrics != nil {
		s.metrics.observeRequest(req.Action.String(), accepted)
	}
}

func (s *Server) applyTuning(c gameconfig.CharacterSettings) {
	s.settings.Character = c
	for _, p := range s.players {
		p.Controller.SetTuning(c.Action)
		p.Body.SetParams(c.Movement)
	}
	log.Printf("[server] character tuning applied to %d players", len(s.players))
}

func (s *Server) playerCountChanged() {
	s.playerCount.Store(int32(len(s.players)))
	if s.metrics != nil {
		s.metrics.setPlayers(len(s.players))
	}
}

func (s *Server) observeJoin(result string) {
	if s.metrics != nil {
		s.metrics.observeJoin(result)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	return int(s.playerCount.Load())
}
