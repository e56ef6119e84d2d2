package factory

import (
	"github.com/automoto/ronin/archetypes"
	"github.com/automoto/ronin/assets"
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	spaceEntry := archetypes.Space.Spawn(ecs)
	space := resolv.NewSpace(int(width), int(height), 16, 16)
	components.Space.Set(spaceEntry, space)
	return spaceEntry
}

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}

func CreateEncounter(ecs *ecs.ECS, flurry bool) *donburi.Entry {
	entry := archetypes.Encounter.Spawn(ecs)
	components.Encounter.SetValue(entry, components.EncounterData{
		Phase:         cfg.EncounterIdle,
		Global:        cfg.Playing,
		FlurryEnabled: flurry,
	})
	return entry
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(entry, components.InputData{})
	return entry
}

func CreateStatus(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Status.Spawn(ecs)
	components.Status.SetValue(entry, components.StatusData{
		PlayerHealthFrac: 1,
	})
	return entry
}

func CreateTime(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Time.Spawn(ecs)
	components.Time.SetValue(entry, components.TimeData{})
	return entry
}

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}
