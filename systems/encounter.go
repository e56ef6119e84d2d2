package systems

import (
	"math"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/systems/factory"
	"github.com/automoto/ronin/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEncounterSelect engages and disengages the active opponent. At most
// one enemy is engaged at a time; selection is by proximity, and release uses
// a wider radius than engagement so a fighter on the line doesn't flicker in
// and out.
func UpdateEncounterSelect(e *ecs.ECS) {
	encounter := GetEncounter(e)
	if encounter == nil || encounter.Global != cfg.Playing {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	if encounter.ActiveOpponent != nil {
		opp := encounter.ActiveOpponent
		if !opp.Valid() || !components.Fighter.Get(opp).Alive {
			return // release is handled after the death is observed
		}
		if centerDistance(playerEntry, opp) > cfg.Encounter.EngageRadius*cfg.Encounter.DisengageScale {
			encounter.ActiveOpponent = nil
			encounter.Phase = cfg.EncounterIdle
			encounter.PhaseTimerMS = 0
		}
		return
	}

	// Nearest living enemy ahead of the player inside the engagement radius.
	// Opponents left behind stay passive.
	playerCenter := bodyCenterX(playerEntry)
	var nearest *donburi.Entry
	nearestDist := math.MaxFloat64
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Fighter.Get(entry).Alive {
			return
		}
		if bodyCenterX(entry) <= playerCenter {
			return
		}
		d := centerDistance(playerEntry, entry)
		if d <= cfg.Encounter.EngageRadius && d < nearestDist {
			nearest = entry
			nearestDist = d
		}
	})
	if nearest == nil {
		return
	}

	encounter.ActiveOpponent = nearest
	encounter.PhaseTimerMS = 0

	enemy := components.Fighter.Get(nearest)
	if enemy.Greeted {
		// The greeting happens once per opponent; re-engagement goes
		// straight to the readiness hold.
		encounter.Phase = cfg.EncounterPostBow
		return
	}

	encounter.Phase = cfg.EncounterBowing
	enemy.Greeted = true
	StartBow(e, playerEntry)
	StartBow(e, nearest)
}

// UpdateEncounterPhase advances the engagement phase machine and reacts to
// the active opponent's death: possibly releasing the ambush, then returning
// the roster to idle.
func UpdateEncounterPhase(e *ecs.ECS) {
	encounter := GetEncounter(e)
	if encounter == nil || encounter.Global != cfg.Playing {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	dt := Delta(e)

	opp := encounter.ActiveOpponent
	if opp != nil && (!opp.Valid() || !components.Fighter.Get(opp).Alive) {
		if opp.Valid() {
			maybeSpawnHazard(e, opp, playerEntry, encounter)
		}
		encounter.ActiveOpponent = nil
		encounter.Phase = cfg.EncounterIdle
		encounter.PhaseTimerMS = 0
		return
	}

	switch encounter.Phase {
	case cfg.EncounterBowing:
		if opp == nil {
			encounter.Phase = cfg.EncounterIdle
			return
		}
		player := components.Fighter.Get(playerEntry)
		enemy := components.Fighter.Get(opp)
		if BowSettled(player) && BowSettled(enemy) {
			encounter.Phase = cfg.EncounterPostBow
			encounter.PhaseTimerMS = 0
		}

	case cfg.EncounterPostBow:
		encounter.PhaseTimerMS += dt
		if encounter.PhaseTimerMS >= cfg.Encounter.PostBowHoldMS {
			encounter.Phase = cfg.EncounterFight
			encounter.PhaseTimerMS = 0
			if opp != nil && opp.HasComponent(components.AIController) {
				ai := components.AIController.Get(opp)
				ai.AttackTimerMS = randRange(ai, cfg.AI.FirstAttackDelayMinMS, cfg.AI.FirstAttackDelayMaxMS)
			}
		}
	}
}

// maybeSpawnHazard releases the one-shot ambush when the flagged enemy dies.
func maybeSpawnHazard(e *ecs.ECS, deadEnemy, playerEntry *donburi.Entry, encounter *components.EncounterData) {
	if encounter.HazardSpawned || !deadEnemy.HasComponent(components.AIController) {
		return
	}
	if !components.AIController.Get(deadEnemy).HazardOnDeath {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel

	playerObj := components.Object.Get(playerEntry).Object
	factory.CreateHazard(e, playerObj.X, lvl.GroundY)
	encounter.HazardSpawned = true
	PlaySFX(e, cfg.SoundHazard)
}

// UpdateTerminal checks the session win and loss conditions. Winning requires
// both a cleared roster and the player past the level's end threshold.
func UpdateTerminal(e *ecs.ECS) {
	encounter := GetEncounter(e)
	if encounter == nil || encounter.Global != cfg.Playing {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	if !components.Fighter.Get(playerEntry).Alive {
		encounter.Global = cfg.LostCombat
		PlaySFX(e, cfg.SoundLose)
		return
	}

	anyAlive := false
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).Alive {
			anyAlive = true
		}
	})
	if anyAlive {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel
	playerObj := components.Object.Get(playerEntry).Object
	if playerObj.X >= lvl.EndThresholdX {
		encounter.Global = cfg.Won
		PlaySFX(e, cfg.SoundWin)
	}
}

// centerDistance is the horizontal distance between two body centers.
func centerDistance(a, b *donburi.Entry) float64 {
	return math.Abs(bodyCenterX(a) - bodyCenterX(b))
}

func bodyCenterX(entry *donburi.Entry) float64 {
	obj := components.Object.Get(entry).Object
	return obj.X + obj.W/2
}
