package systems

import (
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFall owns the scripted sea fall. It triggers only at the start of the
// level, before the camera has ever scrolled: retreating past the boundary
// with no opponent engaged steps off the cliff. Once started it cannot be
// interrupted; only the reset path remains live.
func UpdateFall(e *ecs.ECS) {
	encounter := GetEncounter(e)
	if encounter == nil {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	switch encounter.Global {
	case cfg.Playing:
		maybeStartFall(e, encounter, playerEntry)
	case cfg.Falling:
		advanceFall(e, encounter, playerEntry)
	}
}

func maybeStartFall(e *ecs.ECS, encounter *components.EncounterData, playerEntry *donburi.Entry) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || components.Camera.Get(cameraEntry).Scrolled {
		return
	}
	if encounter.ActiveOpponent != nil {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel

	f := components.Fighter.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object
	if !f.Alive || obj.X >= lvl.FallBoundaryX {
		return
	}

	durSec := float32(cfg.FallSeq.DurationMS / 1000)
	hp := components.Health.Get(playerEntry)
	encounter.Global = cfg.Falling
	encounter.Fall = &components.FallSequence{
		DurationMS:  cfg.FallSeq.DurationMS,
		X:           gween.New(float32(obj.X), float32(obj.X+cfg.FallSeq.DriftX), durSec, ease.Linear),
		Y:           gween.New(float32(obj.Y), float32(obj.Y+cfg.FallSeq.DropY), durSec, ease.InQuad),
		Opacity:     gween.New(1, 0, durSec, ease.InQuad),
		StartHealth: hp.Current,
	}

	f.Attack = nil
	f.Bow = nil
	f.MoveIntent = 0
	components.State.Get(playerEntry).Enter(cfg.Fall)
	PlaySFX(e, cfg.SoundLose)
}

func advanceFall(e *ecs.ECS, encounter *components.EncounterData, playerEntry *donburi.Entry) {
	fall := encounter.Fall
	if fall == nil {
		encounter.Global = cfg.LostFall
		return
	}
	dt := Delta(e)
	fall.ElapsedMS += dt
	dtSec := float32(dt / 1000)

	f := components.Fighter.Get(playerEntry)
	hp := components.Health.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	x, _ := fall.X.Update(dtSec)
	y, _ := fall.Y.Update(dtSec)
	op, _ := fall.Opacity.Update(dtSec)
	obj.X, obj.Y = float64(x), float64(y)
	f.Opacity = float64(op)
	obj.Update()

	// Health drains with the drop, hitting zero exactly at the end.
	frac := fall.ElapsedMS / fall.DurationMS
	if frac > 1 {
		frac = 1
	}
	hp.Current = int(float64(fall.StartHealth) * (1 - frac))

	if fall.ElapsedMS >= fall.DurationMS {
		hp.Current = 0
		f.Alive = false
		components.State.Get(playerEntry).Enter(cfg.Dead)
		encounter.Global = cfg.LostFall
	}
}
