package systems

import (
	"testing"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tick runs one simulation step in system order.
func tick(w *ecs.ECS, dt float64) {
	setDelta(w, dt)
	UpdateEncounterSelect(w)
	UpdatePlayer(w)
	UpdateEnemies(w)
	UpdateHazards(w)
	UpdateEncounterPhase(w)
	UpdateFall(w)
	UpdateTerminal(w)
	UpdateStatus(w)
}

func TestEngagementStartsGreeting(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 300, 1)

	setDelta(w, 32)
	UpdateEncounterSelect(w)

	enc := GetEncounter(w)
	require.Equal(t, enemy, enc.ActiveOpponent)
	assert.Equal(t, cfg.EncounterBowing, enc.Phase)
	assert.NotNil(t, components.Fighter.Get(player).Bow)
	assert.NotNil(t, components.Fighter.Get(enemy).Bow)
	assert.True(t, components.Fighter.Get(enemy).Greeted)
}

func TestNoEngagementOutsideRadius(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	spawnTestEnemy(w, 500, 1)

	setDelta(w, 32)
	UpdateEncounterSelect(w)

	enc := GetEncounter(w)
	assert.Nil(t, enc.ActiveOpponent)
	assert.Equal(t, cfg.EncounterIdle, enc.Phase)
}

func TestEnemiesBehindPlayerAreNeverEngaged(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 400)
	spawnTestEnemy(w, 340, 1) // passed already, well inside radius

	setDelta(w, 32)
	UpdateEncounterSelect(w)

	enc := GetEncounter(w)
	assert.Nil(t, enc.ActiveOpponent)
}

func TestBowingRunsThroughPostBowToFight(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 300, 1)
	enc := GetEncounter(w)

	sawPostBow := false
	for i := 0; i < 300 && enc.Phase != cfg.EncounterFight; i++ {
		tick(w, 32)
		if enc.Phase == cfg.EncounterPostBow {
			sawPostBow = true
		}
	}

	require.Equal(t, cfg.EncounterFight, enc.Phase)
	assert.True(t, sawPostBow, "fight must be reached through the readiness hold")

	// The first attack delay was armed when the fight began.
	ai := components.AIController.Get(enemy)
	assert.GreaterOrEqual(t, ai.AttackTimerMS, cfg.AI.FirstAttackDelayMinMS-32)
	assert.LessOrEqual(t, ai.AttackTimerMS, cfg.AI.FirstAttackDelayMaxMS)
}

func TestGreetedOpponentSkipsBow(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 300, 1)
	components.Fighter.Get(enemy).Greeted = true

	setDelta(w, 32)
	UpdateEncounterSelect(w)

	enc := GetEncounter(w)
	assert.Equal(t, cfg.EncounterPostBow, enc.Phase)
	assert.Nil(t, components.Fighter.Get(enemy).Bow)
}

func TestDisengageUsesHysteresis(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 300, 1)
	engageFight(w, enemy)
	enc := GetEncounter(w)

	// Just past the engage radius is still inside the release band.
	components.Object.Get(enemy).Object.X = 200 + cfg.Encounter.EngageRadius + 10
	setDelta(w, 32)
	UpdateEncounterSelect(w)
	assert.Equal(t, enemy, enc.ActiveOpponent)

	// Past the release radius the opponent is dropped.
	components.Object.Get(enemy).Object.X = 200 + cfg.Encounter.EngageRadius*cfg.Encounter.DisengageScale + 40
	UpdateEncounterSelect(w)
	assert.Nil(t, enc.ActiveOpponent)
	assert.Equal(t, cfg.EncounterIdle, enc.Phase)
}

func TestOpponentDeathReturnsToIdle(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 300, 1)
	engageFight(w, enemy)

	ApplyDamage(w, enemy, cfg.Fighter.MaxHealth)
	setDelta(w, 32)
	UpdateEncounterPhase(w)

	enc := GetEncounter(w)
	assert.Nil(t, enc.ActiveOpponent)
	assert.Equal(t, cfg.EncounterIdle, enc.Phase)
}

func TestHazardSpawnsOnFlaggedEnemyDeath(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 300, 1)
	components.AIController.Get(enemy).HazardOnDeath = true
	engageFight(w, enemy)

	ApplyDamage(w, enemy, cfg.Fighter.MaxHealth)
	setDelta(w, 32)
	UpdateEncounterPhase(w)

	enc := GetEncounter(w)
	assert.True(t, enc.HazardSpawned)
	assert.Equal(t, 1, countHazards(w))

	// The trigger is one-shot; a reset of the flag cannot respawn it.
	UpdateEncounterPhase(w)
	assert.Equal(t, 1, countHazards(w))
}

func TestWinRequiresClearedRosterAndThreshold(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	enemy := spawnTestEnemy(w, 300, 1)
	enc := GetEncounter(w)
	setDelta(w, 32)

	// Roster cleared, but short of the threshold.
	ApplyDamage(w, enemy, cfg.Fighter.MaxHealth)
	UpdateTerminal(w)
	assert.Equal(t, cfg.Playing, enc.Global)

	// Threshold reached but roster alive: revive scenario via fresh world
	// is covered implicitly; here both conditions hold.
	components.Object.Get(player).Object.X = 1850
	UpdateTerminal(w)
	assert.Equal(t, cfg.Won, enc.Global)
	assert.True(t, enc.Global.Terminal())
}

func TestPlayerDeathEndsSession(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	spawnTestEnemy(w, 300, 1)

	ApplyDamage(w, player, cfg.Fighter.MaxHealth)
	setDelta(w, 32)
	UpdateTerminal(w)

	enc := GetEncounter(w)
	assert.Equal(t, cfg.LostCombat, enc.Global)
}

func TestResetOnlyHonoredAfterSessionEnds(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	enc := GetEncounter(w)

	pressAction(w, cfg.ActionReset)
	UpdateGlobal(w)
	assert.False(t, enc.ResetRequested, "reset is ignored mid-session")

	enc.Global = cfg.LostCombat
	UpdateGlobal(w)
	assert.True(t, enc.ResetRequested)
}

func TestStatusMessagePriority(t *testing.T) {
	w := newTestWorld()
	spawnTestPlayer(w, 200)
	spawnTestEnemy(w, 900, 1)
	enc := GetEncounter(w)

	assert.Equal(t, cfg.MessageAdvance, currentMessageKey(w, enc))

	enc.Phase = cfg.EncounterBowing
	assert.Equal(t, cfg.MessageGreeting, currentMessageKey(w, enc))

	enc.Phase = cfg.EncounterPostBow
	assert.Equal(t, cfg.MessageGuard, currentMessageKey(w, enc))

	enc.Global = cfg.Won
	assert.Equal(t, cfg.MessageWin, currentMessageKey(w, enc))
}

func countHazards(w *ecs.ECS) int {
	n := 0
	tags.Hazard.Each(w.World, func(entry *donburi.Entry) { n++ })
	return n
}
