package systems

import (
	"testing"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBowRunsDownHoldUp(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	f := components.Fighter.Get(player)
	st := components.State.Get(player)

	// Caught mid-swing: the greeting clears the strike and any stun.
	require.True(t, StartAttack(f, st, cfg.Punch, cfg.StanceMid))
	StartBow(w, player)
	require.NotNil(t, f.Bow)
	assert.Nil(t, f.Attack)
	assert.Equal(t, 0.0, f.HitLagMS)
	assert.Equal(t, cfg.Bow, st.CurrentState)

	// Starting again mid-bow is a no-op.
	elapsed := f.Bow.ElapsedMS
	StartBow(w, player)
	assert.Equal(t, elapsed, f.Bow.ElapsedMS)

	for i := 0; i < 100 && f.Bow != nil; i++ {
		AdvanceBow(f, st, 32)
	}

	assert.Nil(t, f.Bow)
	assert.Equal(t, cfg.Idle, st.CurrentState)
}

func TestBowBlendRisesThenDrains(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	f := components.Fighter.Get(player)
	st := components.State.Get(player)

	StartBow(w, player)
	AdvanceBow(f, st, 200)
	assert.Greater(t, f.BowBlend, 0.0)
	assert.False(t, BowSettled(f))

	for i := 0; i < 100 && f.Bow != nil; i++ {
		AdvanceBow(f, st, 32)
	}
	for i := 0; i < 100 && !BowSettled(f); i++ {
		DecayBowBlend(f, 32)
	}

	assert.True(t, BowSettled(f))
	assert.Equal(t, 0.0, f.BowBlend)
}
