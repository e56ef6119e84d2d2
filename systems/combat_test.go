package systems

import (
	"testing"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAttackGating(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	f := components.Fighter.Get(player)
	st := components.State.Get(player)

	require.True(t, StartAttack(f, st, cfg.Punch, cfg.StanceMid))
	assert.Equal(t, cfg.Attacking, st.CurrentState)
	assert.Equal(t, cfg.Attacks[cfg.Punch].Damage, f.Attack.Damage)

	// A second start is rejected while the first is in progress.
	assert.False(t, StartAttack(f, st, cfg.Kick, cfg.StanceHigh))
	assert.Equal(t, cfg.Punch, f.Attack.Kind)

	f.Attack = nil
	f.HitLagMS = 50
	assert.False(t, StartAttack(f, st, cfg.Punch, cfg.StanceMid))

	f.HitLagMS = 0
	f.CooldownMS = 50
	assert.False(t, StartAttack(f, st, cfg.Punch, cfg.StanceMid))

	f.CooldownMS = 0
	f.Alive = false
	assert.False(t, StartAttack(f, st, cfg.Punch, cfg.StanceMid))
}

func TestAttackPhaseTimeline(t *testing.T) {
	a := &components.Attack{WindupMS: 110, ActiveMS: 90, RecoverMS: 210}

	a.ElapsedMS = 0
	assert.Equal(t, components.PhaseWindup, a.Phase())
	a.ElapsedMS = 110
	assert.Equal(t, components.PhaseActive, a.Phase())
	a.ElapsedMS = 199
	assert.Equal(t, components.PhaseActive, a.Phase())
	a.ElapsedMS = 200
	assert.Equal(t, components.PhaseRecover, a.Phase())
	a.ElapsedMS = 410
	assert.Equal(t, components.PhaseDone, a.Phase())
}

func TestBlockedHitChipsWithoutKnockback(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 240, 1)

	pf := components.Fighter.Get(player)
	pst := components.State.Get(player)
	ef := components.Fighter.Get(enemy)
	startX := components.Object.Get(enemy).Object.X

	pf.Facing = cfg.FacingRight
	ef.Stance = cfg.StanceMid
	require.True(t, StartAttack(pf, pst, cfg.Punch, cfg.StanceMid))

	AdvanceAttack(w, player, 150, false, enemy)

	hp := components.Health.Get(enemy)
	chip := 2 // round(10 * 0.2)
	assert.Equal(t, cfg.Fighter.MaxHealth-chip, hp.Current)
	assert.Equal(t, cfg.Block, components.State.Get(enemy).CurrentState)
	assert.Equal(t, cfg.Combat.BlockHitLagMS, ef.HitLagMS)
	assert.Equal(t, startX, components.Object.Get(enemy).Object.X, "blocked hits never displace")
}

func TestLandedHitDamagesAndKnocksBack(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 240, 1)

	pf := components.Fighter.Get(player)
	pst := components.State.Get(player)
	ef := components.Fighter.Get(enemy)
	startX := components.Object.Get(enemy).Object.X

	pf.Facing = cfg.FacingRight
	ef.Stance = cfg.StanceLow // wrong guard for a mid punch
	require.True(t, StartAttack(pf, pst, cfg.Punch, cfg.StanceMid))

	AdvanceAttack(w, player, 150, false, enemy)

	hp := components.Health.Get(enemy)
	assert.Equal(t, cfg.Fighter.MaxHealth-cfg.Attacks[cfg.Punch].Damage, hp.Current)
	assert.Equal(t, cfg.Hit, components.State.Get(enemy).CurrentState)
	assert.Equal(t, cfg.Combat.HitLagMS, ef.HitLagMS)

	wantX := startX + cfg.Attacks[cfg.Punch].Reach*cfg.Combat.KnockbackScale
	assert.InDelta(t, wantX, components.Object.Get(enemy).Object.X, 0.001)
}

func TestDefenderMidAttackCannotBlock(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 240, 1)

	pf := components.Fighter.Get(player)
	pst := components.State.Get(player)
	ef := components.Fighter.Get(enemy)
	est := components.State.Get(enemy)

	// Matching stance, but the defender is striking too.
	ef.Stance = cfg.StanceMid
	require.True(t, StartAttack(ef, est, cfg.Kick, cfg.StanceMid))
	require.True(t, StartAttack(pf, pst, cfg.Punch, cfg.StanceMid))

	AdvanceAttack(w, player, 150, false, enemy)

	hp := components.Health.Get(enemy)
	assert.Equal(t, cfg.Fighter.MaxHealth-cfg.Attacks[cfg.Punch].Damage, hp.Current)
}

func TestOneHitRegardlessOfTickSubdivision(t *testing.T) {
	for _, dt := range []float64{32, 15, 7, 3} {
		w := newTestWorld()
		player := spawnTestPlayer(w, 200)
		enemy := spawnTestEnemy(w, 240, 1)

		pf := components.Fighter.Get(player)
		pst := components.State.Get(player)
		components.Fighter.Get(enemy).Stance = cfg.StanceLow

		require.True(t, StartAttack(pf, pst, cfg.Punch, cfg.StanceMid))
		for pf.Attack != nil {
			AdvanceAttack(w, player, dt, false, enemy)
			// Keep the defender where the strike reaches it.
			components.Object.Get(enemy).Object.X = 240
		}

		hp := components.Health.Get(enemy)
		assert.Equal(t, cfg.Fighter.MaxHealth-cfg.Attacks[cfg.Punch].Damage, hp.Current,
			"dt=%v must land exactly one hit", dt)
	}
}

func TestFlurryHitCountIsTickRateIndependent(t *testing.T) {
	// Kick active window 110ms at one attempt per 45ms: exactly two hits.
	wantHits := int(cfg.Attacks[cfg.Kick].ActiveMS / cfg.Combat.FlurryPeriodMS)
	require.Equal(t, 2, wantHits)

	for _, dt := range []float64{32, 11, 5} {
		w := newTestWorld()
		player := spawnTestPlayer(w, 200)
		enemy := spawnTestEnemy(w, 240, 1)

		pf := components.Fighter.Get(player)
		pst := components.State.Get(player)
		components.Fighter.Get(enemy).Stance = cfg.StanceLow

		require.True(t, StartAttack(pf, pst, cfg.Kick, cfg.StanceMid))
		for pf.Attack != nil {
			AdvanceAttack(w, player, dt, true, enemy)
			components.Object.Get(enemy).Object.X = 240
		}

		hp := components.Health.Get(enemy)
		assert.Equal(t, cfg.Fighter.MaxHealth-wantHits*cfg.Combat.FlurryDamage, hp.Current,
			"dt=%v must land exactly %d flurry hits", dt, wantHits)
	}
}

func TestAttackTeardownSetsCooldown(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)

	pf := components.Fighter.Get(player)
	pst := components.State.Get(player)
	require.True(t, StartAttack(pf, pst, cfg.Punch, cfg.StanceMid))

	AdvanceAttack(w, player, cfg.Attacks[cfg.Punch].TotalMS()+1, false)

	assert.Nil(t, pf.Attack)
	assert.Equal(t, cfg.Combat.AttackCooldownMS, pf.CooldownMS)
	assert.Equal(t, cfg.Idle, pst.CurrentState)
}

func TestDamageClampAndDeathIsTerminal(t *testing.T) {
	w := newTestWorld()
	enemy := spawnTestEnemy(w, 240, 1)

	ef := components.Fighter.Get(enemy)
	est := components.State.Get(enemy)
	require.True(t, StartAttack(ef, est, cfg.Punch, cfg.StanceMid))

	ApplyDamage(w, enemy, cfg.Fighter.MaxHealth+50)

	hp := components.Health.Get(enemy)
	assert.Equal(t, 0, hp.Current)
	assert.False(t, ef.Alive)
	assert.Nil(t, ef.Attack, "death clears the attack permanently")
	assert.Equal(t, cfg.Dead, est.CurrentState)

	// Dead fighters never act again.
	assert.False(t, StartAttack(ef, est, cfg.Punch, cfg.StanceMid))
}

func TestAttackHitboxGeometry(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	obj := components.Object.Get(player).Object

	atk := &components.Attack{
		Height:    cfg.StanceHigh,
		ElapsedMS: 110, // fully extended
		WindupMS:  110,
		ActiveMS:  90,
		RecoverMS: 210,
		Reach:     56,
	}

	x, y, hw, hh := AttackHitbox(obj, cfg.FacingRight, atk)
	assert.Equal(t, obj.X+obj.W, x)
	assert.Equal(t, obj.Y, y, "high attacks target the top band")
	assert.Equal(t, 56.0, hw)
	assert.Equal(t, obj.H/3, hh)

	x, _, _, _ = AttackHitbox(obj, cfg.FacingLeft, atk)
	assert.Equal(t, obj.X-56.0, x)

	// Half the windup, half the reach.
	atk.ElapsedMS = 55
	_, _, hw, _ = AttackHitbox(obj, cfg.FacingRight, atk)
	assert.InDelta(t, 28.0, hw, 0.001)
}

func TestHurtboxBands(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	obj := components.Object.Get(player).Object
	bandH := obj.H / 3

	_, y, _, _ := HurtboxBand(obj, cfg.StanceHigh)
	assert.Equal(t, obj.Y, y)
	_, y, _, _ = HurtboxBand(obj, cfg.StanceMid)
	assert.Equal(t, obj.Y+bandH, y)
	_, y, _, _ = HurtboxBand(obj, cfg.StanceLow)
	assert.Equal(t, obj.Y+2*bandH, y)
}

func TestTickFighterTimersReleasesHitState(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)

	f := components.Fighter.Get(player)
	st := components.State.Get(player)
	f.HitLagMS = 50
	st.Enter(cfg.Hit)

	TickFighterTimers(f, st, 30)
	assert.Equal(t, cfg.Hit, st.CurrentState)

	TickFighterTimers(f, st, 30)
	assert.Equal(t, 0.0, f.HitLagMS)
	assert.Equal(t, cfg.Idle, st.CurrentState)
}
