package main

import (
	"errors"
	"flag"
	"log"

	"github.com/automoto/gggames/config"
	"github.com/automoto/gggames/network"
	"github.com/automoto/gggames/scenes"
	"github.com/automoto/gggames/shared/gameconfig"
	"github.com/automoto/gggames/shared/protocol"
	"github.com/automoto/gggames/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene  scenes.Scene
	client *network.Client
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	if systems.QuitRequested() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file shared with the server")
	addr := flag.String("addr", "", "server address (host:port)")
	name := flag.String("name", "", "player name")
	offline := flag.Bool("offline", false, "run the authority in-process instead of connecting")
	flag.Parse()

	settings, err := gameconfig.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	config.UseSettings(settings)
	config.C.Version = settings.Server.Version

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("[client] persistence unavailable: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}
	if *addr != "" {
		config.C.ServerAddress = *addr
	}
	if *name != "" {
		config.C.PlayerName = *name
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("GG Games")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	g := &Game{}
	if *offline {
		g.scene = scenes.NewOfflineScene()
	} else {
		g.client = network.NewClient()
		g.client.Connect(config.C.ServerAddress, config.C.Version, config.C.PlayerName)
		g.scene = scenes.NewNetworkedScene(g, g.client)
	}

	err = ebiten.RunGame(g)
	if g.client != nil {
		g.client.Disconnect()
	}
	systems.SaveCurrentSettings()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
