package factory

import (
	"github.com/automoto/ronin/archetypes"
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard spawns the aerial ambush off-screen ahead of the player. The
// hazard system owns its motion from the first tick.
func CreateHazard(ecs *ecs.ECS, playerX, groundY float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	x := playerX + cfg.Hazard.SpawnLeadX
	y := groundY - cfg.Hazard.HoverHeight - cfg.Hazard.Height

	obj := resolv.NewObject(x, y, cfg.Hazard.Width, cfg.Hazard.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Hazard.Width, cfg.Hazard.Height))
	obj.AddTags(tags.ResolvHazard)
	obj.Data = hazard

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	components.Hazard.SetValue(hazard, components.HazardData{
		Phase:   cfg.HazardEnter,
		Opacity: 1,
	})

	return hazard
}
