package scenes

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/ronin/assets"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/systems"
	"github.com/automoto/ronin/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DojoScene runs one journey through the level. A reset request tears the
// world down and rebuilds it from scratch.
type DojoScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewDojoScene creates a new gameplay scene
func NewDojoScene(sc SceneChanger) *DojoScene {
	return &DojoScene{sceneChanger: sc}
}

func (ds *DojoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if enc := systems.GetEncounter(ds.ecs); enc != nil && enc.ResetRequested {
		ds.sceneChanger.ChangeScene(NewDojoScene(ds.sceneChanger))
	}
}

func (ds *DojoScene) Draw(screen *ebiten.Image) {
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DojoScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	// Audio runs first so sounds queued last tick play promptly.
	world.AddSystem(systems.UpdateAudio)
	world.AddSystem(systems.UpdateTime)
	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdateGlobal)

	// Simulation order is fixed: selection, fighters, set-pieces,
	// orchestration, then the observers.
	world.AddSystem(systems.UpdateEncounterSelect)
	world.AddSystem(systems.UpdatePlayer)
	world.AddSystem(systems.UpdateEnemies)
	world.AddSystem(systems.UpdateHazards)
	world.AddSystem(systems.UpdateEncounterPhase)
	world.AddSystem(systems.UpdateFall)
	world.AddSystem(systems.UpdateCamera)
	world.AddSystem(systems.UpdateTerminal)
	world.AddSystem(systems.UpdateStatus)

	world.AddRenderer(cfg.Default, systems.DrawWorld)
	world.AddRenderer(cfg.Default, systems.DrawHUD)
	world.AddRenderer(cfg.Default, systems.DrawMessage)
	world.AddRenderer(cfg.Default, systems.DrawDebug)

	ds.ecs = world

	level, err := assets.LoadLevel("levels/dojo.tmx")
	if err != nil {
		log.Fatalf("load level: %v", err)
	}

	factory.CreateLevel(world, level)
	factory.CreateSpace(world, level.Width, level.Height)
	factory.CreateTime(world)
	factory.CreateInput(world)
	factory.CreateCamera(world)
	factory.CreateStatus(world)
	factory.CreateEncounter(world, cfg.Debug.FlurryDefault)

	factory.CreatePlayer(world, level.PlayerSpawnX, level.GroundY)
	for i, spawn := range level.EnemySpawns {
		seed := time.Now().UnixNano() + int64(i)
		factory.CreateEnemy(world, spawn, level.GroundY, rand.New(rand.NewSource(seed)))
	}
}
