package factory

import (
	"math/rand"

	"github.com/automoto/ronin/archetypes"
	"github.com/automoto/ronin/assets"
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, spawn assets.EnemySpawn, groundY float64, rng *rand.Rand) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newFighterBody(ecs, spawn.X, groundY)
	obj.AddTags(tags.ResolvFighter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Fighter.SetValue(enemy, components.FighterData{
		Name:    spawn.Name,
		Side:    components.SideEnemy,
		Facing:  cfg.FacingLeft,
		Stance:  cfg.StanceMid,
		Alive:   true,
		Opacity: 1,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Fighter.MaxHealth,
		Max:     cfg.Fighter.MaxHealth,
	})
	components.AIController.SetValue(enemy, components.AIControllerData{
		Rand:          rng,
		HazardOnDeath: spawn.HazardTrigger,
	})

	return enemy
}
