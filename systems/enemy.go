package systems

import (
	"math"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the AI decision loop. Only the engaged opponent thinks;
// every other enemy stands passive until it is selected. The loop is spacing
// first, defense second, offense last, so a blocked tick never also advances
// toward the player.
func UpdateEnemies(e *ecs.ECS) {
	encounter := GetEncounter(e)
	if encounter == nil || encounter.Global != cfg.Playing {
		return
	}
	enemyEntry := encounter.ActiveOpponent
	if enemyEntry == nil || !enemyEntry.Valid() {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	f := components.Fighter.Get(enemyEntry)
	st := components.State.Get(enemyEntry)
	dt := Delta(e)

	TickFighterTimers(f, st, dt)
	AdvanceBow(f, st, dt)
	DecayBowBlend(f, dt)

	if !f.Alive {
		return
	}

	faceOpponent(enemyEntry, playerEntry)

	if encounter.Phase == cfg.EncounterFight && BowSettled(f) && f.Attack == nil {
		thinkEnemy(e, enemyEntry, playerEntry, dt)
	} else {
		f.MoveIntent = 0
	}

	moveFighter(e, enemyEntry, dt)
	AdvanceAttack(e, enemyEntry, dt, false, playerEntry)
}

// thinkEnemy makes this tick's decisions for the engaged opponent.
func thinkEnemy(e *ecs.ECS, enemyEntry, playerEntry *donburi.Entry, dt float64) {
	f := components.Fighter.Get(enemyEntry)
	st := components.State.Get(enemyEntry)
	ai := components.AIController.Get(enemyEntry)
	player := components.Fighter.Get(playerEntry)

	gap := fighterGap(enemyEntry, playerEntry)

	// Reactive guard: an incoming strike inside reaction distance is always
	// matched. Generous on purpose; beating it takes the hazard, chip damage
	// or a stance mix-up mid-swing.
	if incoming := incomingAttackHeight(player, gap); incoming != nil {
		f.Stance = *incoming
	} else if ai.Rand.Float64() < cfg.AI.StanceShufflePerSecond*dt/1000 {
		if ai.Rand.Float64() < cfg.AI.MirrorStanceChance {
			f.Stance = player.Stance
		} else {
			f.Stance = cfg.Stance(ai.Rand.Intn(3))
		}
	}

	// Spacing with a dead band so the enemy doesn't oscillate on the line.
	f.MoveIntent = 0
	canMove := f.Attack == nil && f.HitLagMS <= 0
	if canMove {
		toward := cfg.FacingRight
		if components.Object.Get(playerEntry).Object.X < components.Object.Get(enemyEntry).Object.X {
			toward = cfg.FacingLeft
		}
		if gap > cfg.AI.EngageDistance+cfg.AI.EngageMargin {
			f.MoveIntent = toward * cfg.AI.ApproachSpeed / cfg.Fighter.WalkSpeed
		} else if gap < cfg.AI.EngageDistance-cfg.AI.EngageMargin {
			f.MoveIntent = -toward * cfg.AI.BackoffSpeed / cfg.Fighter.WalkSpeed
		}
	}

	// Offense: a cooling timer between attempts; an attempt only fires when
	// the player is in reach.
	ai.AttackTimerMS -= dt
	if ai.AttackTimerMS <= 0 && gap <= cfg.AI.AttackRange && f.CanAct() {
		kind := cfg.Punch
		if ai.Rand.Float64() < cfg.AI.KickChance {
			kind = cfg.Kick
		}
		height := pickAttackHeight(ai, player.Stance)
		if StartAttack(f, st, kind, height) {
			if kind == cfg.Kick {
				PlaySFX(e, cfg.SoundKick)
			} else {
				PlaySFX(e, cfg.SoundPunch)
			}
			ai.AttackTimerMS = randRange(ai, cfg.AI.AttackDelayMinMS, cfg.AI.AttackDelayMaxMS)
		}
	}
}

// incomingAttackHeight returns the height of a player strike the enemy should
// react to, or nil when there is nothing to block.
func incomingAttackHeight(player *components.FighterData, gap float64) *cfg.Stance {
	atk := player.Attack
	if atk == nil || gap >= cfg.AI.ReactBlockDistance {
		return nil
	}
	switch atk.Phase() {
	case components.PhaseWindup, components.PhaseActive:
		h := atk.Height
		return &h
	}
	return nil
}

// pickAttackHeight chooses a target band, usually avoiding the player's
// current guard.
func pickAttackHeight(ai *components.AIControllerData, guarded cfg.Stance) cfg.Stance {
	if ai.Rand.Float64() < cfg.AI.AvoidGuardChance {
		h := cfg.Stance(ai.Rand.Intn(2))
		if h >= guarded {
			h++
		}
		return cfg.ClampStance(h)
	}
	return cfg.Stance(ai.Rand.Intn(3))
}

// faceOpponent turns a fighter toward the other body.
func faceOpponent(entry, other *donburi.Entry) {
	f := components.Fighter.Get(entry)
	obj := components.Object.Get(entry).Object
	otherObj := components.Object.Get(other).Object
	if otherObj.X+otherObj.W/2 < obj.X+obj.W/2 {
		f.Facing = cfg.FacingLeft
	} else {
		f.Facing = cfg.FacingRight
	}
}

// fighterGap is the horizontal clearance between the two bodies; zero when
// they overlap.
func fighterGap(a, b *donburi.Entry) float64 {
	ao := components.Object.Get(a).Object
	bo := components.Object.Get(b).Object
	if ao.X < bo.X {
		return math.Max(0, bo.X-(ao.X+ao.W))
	}
	return math.Max(0, ao.X-(bo.X+bo.W))
}

func randRange(ai *components.AIControllerData, min, max float64) float64 {
	return min + ai.Rand.Float64()*(max-min)
}
