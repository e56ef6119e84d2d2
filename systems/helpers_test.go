package systems

import (
	"math/rand"

	"github.com/automoto/ronin/assets"
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a headless world with every singleton the systems
// expect. No audio or render systems are attached.
func newTestWorld() *ecs.ECS {
	w := ecs.NewECS(donburi.NewWorld())

	lvl := &assets.Level{
		Name:          "test",
		Width:         2000,
		Height:        360,
		GroundY:       300,
		PlayerSpawnX:  200,
		FallBoundaryX: 96,
		EndThresholdX: 1800,
	}
	factory.CreateLevel(w, lvl)
	factory.CreateSpace(w, lvl.Width, lvl.Height)
	factory.CreateTime(w)
	factory.CreateInput(w)
	factory.CreateCamera(w)
	factory.CreateStatus(w)
	factory.CreateEncounter(w, false)

	return w
}

func setDelta(w *ecs.ECS, ms float64) {
	entry, _ := components.Time.First(w.World)
	components.Time.Get(entry).DeltaMS = ms
}

func spawnTestPlayer(w *ecs.ECS, x float64) *donburi.Entry {
	return factory.CreatePlayer(w, x, 300)
}

func spawnTestEnemy(w *ecs.ECS, x float64, seed int64) *donburi.Entry {
	return factory.CreateEnemy(w, assets.EnemySpawn{Name: "guard", X: x}, 300, rand.New(rand.NewSource(seed)))
}

// engageFight wires the encounter directly into the fight phase against the
// given enemy, skipping the greeting.
func engageFight(w *ecs.ECS, enemy *donburi.Entry) {
	enc := GetEncounter(w)
	enc.ActiveOpponent = enemy
	enc.Phase = cfg.EncounterFight
	components.Fighter.Get(enemy).Greeted = true
}

// pressAction injects an edge-triggered action for the next tick.
func pressAction(w *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(w)
	input.Previous[id] = false
	input.Current[id] = true
}

func releaseActions(w *ecs.ECS) {
	input := getOrCreateInput(w)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}
