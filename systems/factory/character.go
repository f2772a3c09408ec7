package factory

import (
	"github.com/automoto/gggames/archetypes"
	"github.com/automoto/gggames/components"
	cfg "github.com/automoto/gggames/config"
	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharacterOptions configures a client-side character.
type CharacterOptions struct {
	Name string
	Role action.Role
	// Sender is required for an AutonomousProxy.
	Sender action.RequestSender
	// Movement replaces the replicated-velocity mover, e.g. with a locally
	// simulated body.
	Movement action.MovementProvider
	Extra    []donburi.IComponentType
}

// CreateCharacter spawns a character entity and builds its controller from
// the entity's own components.
func CreateCharacter(ecs *ecs.ECS, opts CharacterOptions) *donburi.Entry {
	entry := archetypes.Character.Spawn(ecs, opts.Extra...)

	anim := components.NewAnimation(cfg.Idle)
	components.NetInterp.SetValue(entry, components.NetInterpData{})

	var netMovement *components.NetMovementData
	movement := opts.Movement
	if movement == nil {
		netMovement = &components.NetMovementData{}
		movement = netMovement
	}

	ctrl := action.NewController(opts.Role, cfg.Game.Character.Action, action.Collaborators{
		Movement:  movement,
		Presenter: anim,
		Sender:    opts.Sender,
	})

	isLocal := opts.Role != action.SimulatedProxy
	components.Character.SetValue(entry, components.CharacterData{
		Controller: ctrl,
		Animation:  anim,
		Movement:   netMovement,
		Name:       opts.Name,
		IsLocal:    isLocal,
	})
	netcomponents.NetPlayerState.Get(entry).IsLocal = isLocal
	netcomponents.NetPlayerState.Get(entry).Animation = cfg.Idle
	return entry
}
