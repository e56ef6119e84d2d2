package systems

import (
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer translates buffered input into stance changes, walking and
// strikes, then advances the player's own attack timeline. Hazards take
// priority over the engaged opponent during hit resolution, so a well-timed
// strike meets the ambush instead of the fighter behind it.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	encounter := GetEncounter(e)
	if encounter == nil || encounter.Global != cfg.Playing {
		return
	}

	f := components.Fighter.Get(playerEntry)
	st := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object
	dt := Delta(e)

	TickFighterTimers(f, st, dt)
	AdvanceBow(f, st, dt)
	DecayBowBlend(f, dt)

	if !f.Alive {
		return
	}

	facePlayerTarget(f, obj, encounter)

	input := getOrCreateInput(e)
	allowControl := encounter.Phase != cfg.EncounterBowing

	if allowControl {
		if GetAction(input, cfg.ActionStanceUp).JustPressed {
			f.Stance = cfg.ClampStance(f.Stance + 1)
		}
		if GetAction(input, cfg.ActionStanceDown).JustPressed {
			f.Stance = cfg.ClampStance(f.Stance - 1)
		}

		if GetAction(input, cfg.ActionPunch).JustPressed {
			if StartAttack(f, st, cfg.Punch, f.Stance) {
				PlaySFX(e, cfg.SoundPunch)
			}
		} else if GetAction(input, cfg.ActionKick).JustPressed {
			if StartAttack(f, st, cfg.Kick, f.Stance) {
				PlaySFX(e, cfg.SoundKick)
			}
		}

		f.MoveIntent = 0
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			f.MoveIntent -= 1
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			f.MoveIntent += 1
		}
	} else {
		f.MoveIntent = 0
	}

	moveFighter(e, playerEntry, dt)

	targets := make([]*donburi.Entry, 0, 2)
	if hz := firstLiveHazard(e); hz != nil {
		targets = append(targets, hz)
	}
	if encounter.ActiveOpponent != nil {
		targets = append(targets, encounter.ActiveOpponent)
	}
	AdvanceAttack(e, playerEntry, dt, encounter.FlurryEnabled, targets...)
}

// facePlayerTarget turns the player toward the engaged opponent; with no
// engagement the journey continues rightward.
func facePlayerTarget(f *components.FighterData, obj *resolv.Object, encounter *components.EncounterData) {
	if encounter.ActiveOpponent != nil && encounter.ActiveOpponent.Valid() {
		oppObj := components.Object.Get(encounter.ActiveOpponent).Object
		if oppObj.X+oppObj.W/2 < obj.X+obj.W/2 {
			f.Facing = cfg.FacingLeft
		} else {
			f.Facing = cfg.FacingRight
		}
		return
	}
	f.Facing = cfg.FacingRight
}

// moveFighter applies the tick's movement intent, with stance speed
// modulation, and keeps the body inside the level. Movement is suppressed
// while striking, stunned or bowing.
func moveFighter(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	f := components.Fighter.Get(entry)
	st := components.State.Get(entry)
	obj := components.Object.Get(entry).Object

	canMove := f.Alive && f.Attack == nil && f.HitLagMS <= 0 && f.Bow == nil
	if !canMove || f.MoveIntent == 0 {
		if canMove && (st.CurrentState == cfg.Walk) {
			st.Enter(cfg.Idle)
		}
		return
	}

	speed := cfg.Fighter.WalkSpeed
	switch f.Stance {
	case cfg.StanceLow:
		speed *= cfg.Fighter.LowStanceSpeedScale
	case cfg.StanceHigh:
		speed *= cfg.Fighter.HighStanceSpeedScale
	}

	obj.X += f.MoveIntent * speed * dt / 1000
	clampToWorld(e, obj)
	obj.Update()

	if st.CurrentState == cfg.Idle {
		st.Enter(cfg.Walk)
	}
}

// firstLiveHazard returns the first hazard entity still able to be struck.
func firstLiveHazard(e *ecs.ECS) *donburi.Entry {
	var found *donburi.Entry
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		hz := components.Hazard.Get(entry)
		if !hz.Defeated {
			found = entry
		}
	})
	return found
}

// GetEncounter returns the orchestrator singleton, or nil before the world
// is seeded.
func GetEncounter(e *ecs.ECS) *components.EncounterData {
	entry, ok := components.Encounter.First(e.World)
	if !ok {
		return nil
	}
	return components.Encounter.Get(entry)
}
