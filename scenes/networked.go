package scenes

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/gggames/components"
	"github.com/automoto/gggames/network"
	"github.com/automoto/gggames/shared/action"
	"github.com/automoto/gggames/shared/netcomponents"
	"github.com/automoto/gggames/systems"
	"github.com/automoto/gggames/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/gggames/config"
)

// NetworkedScene shows the server's world. The local character is an
// AutonomousProxy sending its requests to the server; every other
// character is a SimulatedProxy.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	once         sync.Once
	presentIDs   map[esync.NetworkId]bool
}

func NewNetworkedScene(sc SceneChanger, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		presentIDs:   make(map[esync.NetworkId]bool),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		log.Printf("[networked] connection lost (%v), continuing offline", ns.netClient.LastError())
		ns.netClient.Disconnect()
		ns.sceneChanger.ChangeScene(NewOfflineScene())
		return
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applySnapshot(*snap)
	}

	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	if ns.ecsWorld == nil {
		return
	}
	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(ns.ecsWorld, cfg.Game.Arena)
	factory.CreateCamera(ns.ecsWorld)

	sendFn := func(msg any) error {
		if ns.netClient.State() != network.StateConnected {
			return nil
		}
		return ns.netClient.SendMessage(msg)
	}
	ns.ecsWorld.AddSystem(systems.UpdateCharacterInput)
	ns.ecsWorld.AddSystem(systems.NewNetworkInputSystem(sendFn))
	ns.ecsWorld.AddSystem(systems.UpdateNetInterp)
	ns.ecsWorld.AddSystem(systems.UpdateCharacters)
	ns.ecsWorld.AddSystem(systems.UpdateCamera)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawArena)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.DrawCharacters)
	ns.ecsWorld.AddRenderer(cfg.Default, systems.NewHUDRenderer(ns.status))
}

func (ns *NetworkedScene) status() systems.HUDStatus {
	requests := ns.netClient.Requests()
	return systems.HUDStatus{
		Mode:    "online " + ns.netClient.State().String(),
		RTT:     requests.RoundTrip(),
		Pending: len(requests.Pending()),
	}
}

func (ns *NetworkedScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ns.ecsWorld.World
	now := time.Now()

	clear(ns.presentIDs)

	for _, ent := range snapshot {
		ns.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		var entry *donburi.Entry
		if entity := esync.FindByNetworkId(world, ent.Id); world.Valid(entity) {
			entry = world.Entry(entity)
		} else {
			state, ok := findPlayerState(compData)
			if !ok {
				// Not a character yet; wait for a snapshot carrying its state.
				continue
			}
			entry = ns.createCharacter(ent.Id, state)
		}

		ch := components.Character.Get(entry)
		for _, data := range compData {
			switch v := data.(type) {
			case netcomponents.NetPositionData:
				systems.SetInterpTarget(entry, v.X, v.Y)
			case netcomponents.NetVelocityData:
				netcomponents.NetVelocity.SetValue(entry, v)
			case netcomponents.NetPlayerStateData:
				v.IsLocal = ch.IsLocal
				netcomponents.NetPlayerState.SetValue(entry, v)
				ch.Name = v.Name
				ch.Controller.ApplyReplicated(action.ReplicatedState{State: v.Action, Animation: v.Animation})
				if ch.IsLocal {
					ns.netClient.Requests().Acknowledge(v.LastRequest, now)
				}
			}
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !ns.presentIDs[*id] {
			entry.Remove()
		}
	})
}

// createCharacter spawns the client copy of a server character. The one
// whose owner token matches this client becomes the autonomous proxy.
func (ns *NetworkedScene) createCharacter(id esync.NetworkId, state netcomponents.NetPlayerStateData) *donburi.Entry {
	opts := factory.CharacterOptions{
		Name:  state.Name,
		Role:  action.SimulatedProxy,
		Extra: []donburi.IComponentType{esync.NetworkIdComponent},
	}
	if state.Owner == ns.netClient.Token() {
		opts.Role = action.AutonomousProxy
		opts.Sender = ns.netClient
		log.Printf("[networked] joined as entity %d", id)
	}
	entry := factory.CreateCharacter(ns.ecsWorld, opts)
	esync.NetworkIdComponent.SetValue(entry, id)
	return entry
}

func findPlayerState(compData []any) (netcomponents.NetPlayerStateData, bool) {
	for _, data := range compData {
		if v, ok := data.(netcomponents.NetPlayerStateData); ok {
			return v, true
		}
	}
	return netcomponents.NetPlayerStateData{}, false
}
