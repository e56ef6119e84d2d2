package systems

import (
	"testing"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyBlocksIncomingStrikeInsideReaction(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 260, 42)
	engageFight(w, enemy)

	pf := components.Fighter.Get(player)
	pst := components.State.Get(player)
	ef := components.Fighter.Get(enemy)
	ef.Stance = cfg.StanceLow

	require.True(t, StartAttack(pf, pst, cfg.Punch, cfg.StanceHigh))

	setDelta(w, 16)
	UpdateEnemies(w)

	assert.Equal(t, cfg.StanceHigh, ef.Stance, "reactive block matches the incoming height")
}

func TestEnemyIgnoresStrikeOutsideReaction(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 200+cfg.AI.ReactBlockDistance+cfg.Fighter.BodyWidth+40, 42)
	engageFight(w, enemy)

	pf := components.Fighter.Get(player)
	pst := components.State.Get(player)
	ef := components.Fighter.Get(enemy)
	ef.Stance = cfg.StanceLow
	ai := components.AIController.Get(enemy)
	ai.AttackTimerMS = 10000 // keep offense quiet

	require.True(t, StartAttack(pf, pst, cfg.Punch, cfg.StanceHigh))

	// Tiny dt keeps the stance shuffle chance negligible across one tick,
	// and the seeded RNG makes the run repeatable anyway.
	setDelta(w, 1)
	UpdateEnemies(w)

	assert.Equal(t, cfg.StanceLow, ef.Stance)
}

func TestEnemySpacing(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 340, 42)
	engageFight(w, enemy)
	ai := components.AIController.Get(enemy)
	ai.AttackTimerMS = 10000

	ef := components.Fighter.Get(enemy)

	// Far outside the band: approach (toward the player, leftward).
	setDelta(w, 1)
	UpdateEnemies(w)
	assert.Less(t, ef.MoveIntent, 0.0)

	// Too close: back off.
	components.Object.Get(enemy).Object.X = 200 + cfg.Fighter.BodyWidth + 20
	UpdateEnemies(w)
	assert.Greater(t, ef.MoveIntent, 0.0)

	// Inside the dead band: hold.
	components.Object.Get(enemy).Object.X = 200 + cfg.Fighter.BodyWidth + cfg.AI.EngageDistance
	UpdateEnemies(w)
	assert.Equal(t, 0.0, ef.MoveIntent)
}

func TestEnemyAttacksWhenTimerElapsesInRange(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 260, 42)
	engageFight(w, enemy)

	ef := components.Fighter.Get(enemy)
	ai := components.AIController.Get(enemy)
	ai.AttackTimerMS = 10

	setDelta(w, 16)
	UpdateEnemies(w)

	require.NotNil(t, ef.Attack)
	assert.GreaterOrEqual(t, ai.AttackTimerMS, cfg.AI.AttackDelayMinMS)
	assert.LessOrEqual(t, ai.AttackTimerMS, cfg.AI.AttackDelayMaxMS)
}

func TestEnemyHoldsAttackOutOfRange(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 200+cfg.Fighter.BodyWidth+cfg.AI.AttackRange+60, 42)
	engageFight(w, enemy)

	ef := components.Fighter.Get(enemy)
	ai := components.AIController.Get(enemy)
	ai.AttackTimerMS = 10

	setDelta(w, 16)
	UpdateEnemies(w)

	assert.Nil(t, ef.Attack, "out of reach, the attempt must wait")
}

func TestPassiveEnemiesNeverAct(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	engaged := spawnTestEnemy(w, 260, 42)
	passive := spawnTestEnemy(w, 360, 43)
	engageFight(w, engaged)

	pa := components.AIController.Get(passive)
	pa.AttackTimerMS = 1
	pf := components.Fighter.Get(passive)
	startX := components.Object.Get(passive).Object.X

	for i := 0; i < 20; i++ {
		setDelta(w, 32)
		UpdateEnemies(w)
	}

	assert.Nil(t, pf.Attack)
	assert.Equal(t, startX, components.Object.Get(passive).Object.X)
}

func TestPickAttackHeightAvoidsGuard(t *testing.T) {
	w := newTestWorld()
	enemy := spawnTestEnemy(w, 260, 7)
	ai := components.AIController.Get(enemy)

	// Across many draws the avoided stance must never be hit when the
	// avoid branch fires; over the mix it must appear strictly less often.
	counts := map[cfg.Stance]int{}
	for i := 0; i < 2000; i++ {
		counts[pickAttackHeight(ai, cfg.StanceMid)]++
	}
	assert.Less(t, counts[cfg.StanceMid], counts[cfg.StanceLow])
	assert.Less(t, counts[cfg.StanceMid], counts[cfg.StanceHigh])
}
