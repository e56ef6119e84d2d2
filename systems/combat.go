package systems

import (
	"math"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitOutcome is the result of one hit-resolution attempt.
type HitOutcome int

const (
	HitNone HitOutcome = iota
	HitBlocked
	HitLanded
)

// StartAttack attempts to begin a strike. It is rejected, with no state
// change, unless the fighter is alive, has no attack in progress, and both
// the hit-lag and cooldown timers are zero.
func StartAttack(f *components.FighterData, st *components.StateData, kind cfg.AttackKind, height cfg.Stance) bool {
	if !f.CanAct() {
		return false
	}
	spec := cfg.Attacks[kind]
	f.Attack = &components.Attack{
		Kind:      kind,
		Height:    height,
		WindupMS:  spec.WindupMS,
		ActiveMS:  spec.ActiveMS,
		RecoverMS: spec.RecoverMS,
		Damage:    spec.Damage,
		Reach:     spec.Reach,
	}
	st.Enter(cfg.Attacking)
	return true
}

// AdvanceAttack moves the attacker's timeline forward by dt and performs hit
// resolution while inside the active window. Targets are checked in priority
// order; the first one the hitbox overlaps consumes the hit. Missing or dead
// targets are skipped silently.
func AdvanceAttack(e *ecs.ECS, attacker *donburi.Entry, dt float64, flurry bool, targets ...*donburi.Entry) {
	f := components.Fighter.Get(attacker)
	atk := f.Attack
	if atk == nil {
		return
	}

	prevElapsed := atk.ElapsedMS
	atk.ElapsedMS += dt

	activeStart := atk.WindupMS
	activeEnd := atk.WindupMS + atk.ActiveMS

	// Time this tick actually spent inside the active window; exact at the
	// phase boundaries so tick granularity never changes hit counts.
	overlap := math.Min(atk.ElapsedMS, activeEnd) - math.Max(prevElapsed, activeStart)

	if overlap > 0 {
		if flurry {
			atk.FlurryAccumMS += overlap
			for atk.FlurryAccumMS >= cfg.Combat.FlurryPeriodMS {
				atk.FlurryAccumMS -= cfg.Combat.FlurryPeriodMS
				attemptHit(e, attacker, atk, cfg.Combat.FlurryDamage, atk.Reach*cfg.Combat.FlurryKnockbackScale, targets)
			}
		} else if !atk.Applied {
			if attemptHit(e, attacker, atk, atk.Damage, atk.Reach*cfg.Combat.KnockbackScale, targets) {
				atk.Applied = true
			}
		}
	}

	// Teardown once recovery elapses: back to idle, refractory gap set.
	if atk.Phase() == components.PhaseDone {
		f.Attack = nil
		f.CooldownMS = cfg.Combat.AttackCooldownMS
		st := components.State.Get(attacker)
		if st.CurrentState == cfg.Attacking {
			st.Enter(cfg.Idle)
		}
	}
}

// attemptHit resolves the attacker's current hitbox against each target in
// order. Returns true if any target consumed the hit.
func attemptHit(e *ecs.ECS, attacker *donburi.Entry, atk *components.Attack, damage int, knockback float64, targets []*donburi.Entry) bool {
	f := components.Fighter.Get(attacker)
	obj := components.Object.Get(attacker).Object
	hx, hy, hw, hh := AttackHitbox(obj, f.Facing, atk)

	for _, target := range targets {
		if target == nil || !target.Valid() {
			continue
		}

		// Hazards are struck on their whole body, no stance adjudication.
		if target.HasComponent(components.Hazard) {
			hz := components.Hazard.Get(target)
			if hz.Defeated {
				continue
			}
			tObj := components.Object.Get(target).Object
			if !rectsOverlap(hx, hy, hw, hh, tObj.X, tObj.Y, tObj.W, tObj.H) {
				continue
			}
			defeatHazard(e, target)
			return true
		}

		def := components.Fighter.Get(target)
		if !def.Alive {
			continue
		}
		tObj := components.Object.Get(target).Object

		outcome := ResolveHit(atk, f.Facing, obj, def, tObj)
		if outcome == HitNone {
			continue
		}
		ApplyHit(e, attacker, target, outcome, damage, knockback)
		return true
	}
	return false
}

// AttackHitbox computes the strike's current rectangle: in front of the
// attacker, offset by facing, sized by reach and limb extension, placed in
// the target height band.
func AttackHitbox(obj *resolv.Object, facing float64, atk *components.Attack) (x, y, w, h float64) {
	bandH := obj.H / 3
	w = atk.Reach * atk.Extension()
	h = bandH
	y = obj.Y + float64(bandIndex(atk.Height))*bandH
	if facing >= 0 {
		x = obj.X + obj.W
	} else {
		x = obj.X - w
	}
	return x, y, w, h
}

// HurtboxBand returns one of the three equal vertical slices of a fighter's
// body. The partition is independent of stance.
func HurtboxBand(obj *resolv.Object, height cfg.Stance) (x, y, w, h float64) {
	bandH := obj.H / 3
	return obj.X, obj.Y + float64(bandIndex(height))*bandH, obj.W, bandH
}

// bandIndex maps a height to its band counted from the top of the body.
func bandIndex(s cfg.Stance) int {
	switch s {
	case cfg.StanceHigh:
		return 0
	case cfg.StanceMid:
		return 1
	default:
		return 2
	}
}

// ResolveHit relates the attacker's active hitbox, the defender's hurtbox
// for the attacked height band, and the defender's stance. The defender
// blocks if and only if it has no attack in progress and its stance equals
// the incoming attack's target height; strict equality, no partial credit.
func ResolveHit(atk *components.Attack, attackerFacing float64, attackerObj *resolv.Object, def *components.FighterData, defObj *resolv.Object) HitOutcome {
	hx, hy, hw, hh := AttackHitbox(attackerObj, attackerFacing, atk)
	bx, by, bw, bh := HurtboxBand(defObj, atk.Height)
	if !rectsOverlap(hx, hy, hw, hh, bx, by, bw, bh) {
		return HitNone
	}
	if def.Attack == nil && def.Stance == atk.Height {
		return HitBlocked
	}
	return HitLanded
}

// rectsOverlap is the axis-aligned overlap test used by all hit checks.
func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	a := resolv.NewRectangle(ax, ay, aw, ah)
	b := resolv.NewRectangle(bx, by, bw, bh)
	return a.Intersection(0, 0, b) != nil
}

// ApplyHit mutates the defender for a resolved hit: chip damage and short
// hit-lag when blocked; full damage, long hit-lag and knockback away from
// the attacker when landed.
func ApplyHit(e *ecs.ECS, attacker, defender *donburi.Entry, outcome HitOutcome, damage int, knockback float64) {
	att := components.Fighter.Get(attacker)
	def := components.Fighter.Get(defender)
	st := components.State.Get(defender)
	obj := components.Object.Get(defender).Object

	switch outcome {
	case HitBlocked:
		chip := int(math.Round(float64(damage) * cfg.Combat.ChipDamageRatio))
		if chip < 1 {
			chip = 1
		}
		ApplyDamage(e, defender, chip)
		if def.Alive {
			def.HitLagMS = cfg.Combat.BlockHitLagMS
			st.Enter(cfg.Block)
		}
		PlaySFX(e, cfg.SoundBlock)

	case HitLanded:
		ApplyDamage(e, defender, damage)
		if def.Alive {
			def.HitLagMS = cfg.Combat.HitLagMS
			st.Enter(cfg.Hit)
		}
		// Knockback pushes the defender away from the attacker.
		obj.X += knockback * att.Facing
		clampToWorld(e, obj)
		obj.Update()
		PlaySFX(e, cfg.SoundHit)
		TriggerScreenShake(e, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDurationMS)
	}
}

// ApplyDamage lowers health, clamped at zero. Reaching zero is terminal:
// the fighter dies, and any in-progress attack is cleared permanently.
func ApplyDamage(e *ecs.ECS, target *donburi.Entry, amount int) {
	hp := components.Health.Get(target)
	f := components.Fighter.Get(target)

	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	if hp.Current == 0 && f.Alive {
		f.Alive = false
		f.Attack = nil
		f.Bow = nil
		f.HitLagMS = 0
		f.MoveIntent = 0
		components.State.Get(target).Enter(cfg.Dead)
		PlaySFX(e, cfg.SoundDeath)
	}
}

// TickFighterTimers counts the gating timers down to zero and releases the
// hit/block display state when hit-lag expires.
func TickFighterTimers(f *components.FighterData, st *components.StateData, dt float64) {
	st.StateTimerMS += dt

	if f.HitLagMS > 0 {
		f.HitLagMS -= dt
		if f.HitLagMS <= 0 {
			f.HitLagMS = 0
			if st.CurrentState == cfg.Hit || st.CurrentState == cfg.Block {
				st.Enter(cfg.Idle)
			}
		}
	}
	if f.CooldownMS > 0 {
		f.CooldownMS -= dt
		if f.CooldownMS < 0 {
			f.CooldownMS = 0
		}
	}
}

// clampToWorld keeps a body inside the level bounds.
func clampToWorld(e *ecs.ECS, obj *resolv.Object) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel
	if lvl == nil {
		return
	}
	if obj.X < 0 {
		obj.X = 0
	}
	if obj.X > lvl.Width-obj.W {
		obj.X = lvl.Width - obj.W
	}
}
