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

func CreatePlayer(ecs *ecs.ECS, x, groundY float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newFighterBody(ecs, x, groundY)
	obj.AddTags(tags.ResolvFighter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Fighter.SetValue(player, components.FighterData{
		Name:    "player",
		Side:    components.SidePlayer,
		Facing:  cfg.FacingRight,
		Stance:  cfg.StanceMid,
		Alive:   true,
		Opacity: 1,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Fighter.MaxHealth,
		Max:     cfg.Fighter.MaxHealth,
	})

	return player
}

// newFighterBody builds a fighter collision body standing on the ground line
// and registers it with the shared space.
func newFighterBody(ecs *ecs.ECS, x, groundY float64) *resolv.Object {
	w := cfg.Fighter.BodyWidth
	h := cfg.Fighter.BodyHeight
	obj := resolv.NewObject(x, groundY-h, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
	}
	return obj
}
