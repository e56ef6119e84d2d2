package archetypes

import (
	"github.com/automoto/ronin/components"
	"github.com/automoto/ronin/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Fighter,
		components.Object,
		components.Health,
		components.State,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Fighter,
		components.Object,
		components.Health,
		components.State,
		components.AIController,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Encounter = newArchetype(
		components.Encounter,
	)
	Input = newArchetype(
		components.Input,
	)
	Status = newArchetype(
		components.Status,
	)
	Time = newArchetype(
		components.Time,
	)
	Level = newArchetype(
		components.Level,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
