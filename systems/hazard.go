package systems

import (
	"math"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards runs the ambush flight machine: enter from off-screen, hover
// over the player, dive through it and rise again, looping until the player
// strikes it down. The dive hits directly; stance and blocking do not apply.
func UpdateHazards(e *ecs.ECS) {
	encounter := GetEncounter(e)
	if encounter == nil || encounter.Global != cfg.Playing {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	dt := Delta(e)

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		advanceHazard(e, entry, playerEntry, dt)
	})
}

func advanceHazard(e *ecs.ECS, entry, playerEntry *donburi.Entry, dt float64) {
	hz := components.Hazard.Get(entry)
	obj := components.Object.Get(entry).Object
	playerObj := components.Object.Get(playerEntry).Object

	hz.PhaseTimerMS += dt
	if hz.HitCooldownMS > 0 {
		hz.HitCooldownMS -= dt
	}
	dtSec := float32(dt / 1000)

	hoverY := groundLine(e) - cfg.Hazard.HoverHeight - cfg.Hazard.Height

	switch hz.Phase {
	case cfg.HazardEnter:
		if hz.TweenX == nil {
			hoverX := playerObj.X + cfg.Hazard.HoverOffsetX
			durSec := float32(cfg.Hazard.EnterMS / 1000)
			hz.TweenX = gween.New(float32(obj.X), float32(hoverX), durSec, ease.OutQuad)
			hz.TweenY = gween.New(float32(obj.Y), float32(hoverY), durSec, ease.OutQuad)
		}
		x, _ := hz.TweenX.Update(dtSec)
		y, doneY := hz.TweenY.Update(dtSec)
		obj.X, obj.Y = float64(x), float64(y)
		if doneY {
			enterPhase(hz, cfg.HazardHover)
		}

	case cfg.HazardHover:
		// Track the player horizontally with a slight bob.
		targetX := playerObj.X + cfg.Hazard.HoverOffsetX
		obj.X += (targetX - obj.X) * math.Min(1, 4*float64(dtSec))
		obj.Y = hoverY + 6*math.Sin(hz.PhaseTimerMS*0.008)
		if hz.PhaseTimerMS >= cfg.Hazard.HoverMS {
			enterPhase(hz, cfg.HazardDive)
		}

	case cfg.HazardDive:
		if hz.TweenY == nil {
			durSec := float32(cfg.Hazard.DiveMS / 1000)
			targetY := playerObj.Y + cfg.Hazard.DiveOvershootY
			hz.TweenX = gween.New(float32(obj.X), float32(playerObj.X), durSec, ease.InQuad)
			hz.TweenY = gween.New(float32(obj.Y), float32(targetY), durSec, ease.InQuad)
		}
		x, _ := hz.TweenX.Update(dtSec)
		y, done := hz.TweenY.Update(dtSec)
		obj.X, obj.Y = float64(x), float64(y)
		resolveDiveHit(e, hz, obj.X, obj.Y, playerEntry)
		if done {
			enterPhase(hz, cfg.HazardRise)
		}

	case cfg.HazardRise:
		if hz.TweenY == nil {
			durSec := float32(cfg.Hazard.RiseMS / 1000)
			hz.TweenY = gween.New(float32(obj.Y), float32(hoverY), durSec, ease.OutQuad)
		}
		y, done := hz.TweenY.Update(dtSec)
		obj.Y = float64(y)
		if done {
			enterPhase(hz, cfg.HazardHover)
		}

	case cfg.HazardDissolve:
		hz.Opacity = 1 - hz.PhaseTimerMS/cfg.Hazard.DissolveMS
		if hz.Opacity <= 0 {
			removeHazard(e, entry)
			return
		}
	}

	obj.Update()
}

// resolveDiveHit applies the dive's direct damage on body contact. The hit
// cooldown keeps one pass from landing every tick.
func resolveDiveHit(e *ecs.ECS, hz *components.HazardData, x, y float64, playerEntry *donburi.Entry) {
	if hz.Defeated || hz.HitCooldownMS > 0 {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object
	player := components.Fighter.Get(playerEntry)
	if !player.Alive {
		return
	}
	if !rectsOverlap(x, y, cfg.Hazard.Width, cfg.Hazard.Height,
		playerObj.X, playerObj.Y, playerObj.W, playerObj.H) {
		return
	}

	ApplyDamage(e, playerEntry, cfg.Hazard.DiveDamage)
	if player.Alive {
		player.HitLagMS = cfg.Combat.HitLagMS
		components.State.Get(playerEntry).Enter(cfg.Hit)
	}
	hz.HitCooldownMS = cfg.Hazard.HitCooldownMS
	PlaySFX(e, cfg.SoundHit)
	TriggerScreenShake(e, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDurationMS)
}

// defeatHazard is called by hit resolution when a strike connects.
func defeatHazard(e *ecs.ECS, entry *donburi.Entry) {
	hz := components.Hazard.Get(entry)
	hz.Defeated = true
	enterPhase(hz, cfg.HazardDissolve)
	PlaySFX(e, cfg.SoundHazard)
	TriggerScreenShake(e, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDurationMS)
}

func enterPhase(hz *components.HazardData, phase cfg.HazardPhase) {
	hz.Phase = phase
	hz.PhaseTimerMS = 0
	hz.TweenX = nil
	hz.TweenY = nil
}

func removeHazard(e *ecs.ECS, entry *donburi.Entry) {
	obj := components.Object.Get(entry).Object
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
	e.World.Remove(entry.Entity())
}

// groundLine returns the level's ground y, or the bottom of the screen when
// no level is loaded.
func groundLine(e *ecs.ECS) float64 {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return float64(cfg.C.Height)
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel
	if lvl == nil {
		return float64(cfg.C.Height)
	}
	return lvl.GroundY
}
