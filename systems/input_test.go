package systems

import (
	"testing"

	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/stretchr/testify/assert"
)

func TestActionEdgesLastOneTick(t *testing.T) {
	input := &components.InputData{}

	input.Current[cfg.ActionPunch] = true
	state := GetAction(input, cfg.ActionPunch)
	assert.True(t, state.Pressed)
	assert.True(t, state.JustPressed)
	assert.False(t, state.JustReleased)

	// Held into the next tick: pressed, no longer an edge.
	input.Previous = input.Current
	state = GetAction(input, cfg.ActionPunch)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)

	// Released: the falling edge fires once.
	input.Current[cfg.ActionPunch] = false
	state = GetAction(input, cfg.ActionPunch)
	assert.False(t, state.Pressed)
	assert.True(t, state.JustReleased)
}

func TestStanceChangeConsumesEdge(t *testing.T) {
	w := newTestWorld()
	player := spawnTestPlayer(w, 200)
	f := components.Fighter.Get(player)
	f.Stance = cfg.StanceMid

	setDelta(w, 16)
	pressAction(w, cfg.ActionStanceUp)
	UpdatePlayer(w)
	assert.Equal(t, cfg.StanceHigh, f.Stance)

	// Still held next tick: the edge has retired, no repeat.
	input := getOrCreateInput(w)
	input.Previous = input.Current
	UpdatePlayer(w)
	assert.Equal(t, cfg.StanceHigh, f.Stance)

	// A fresh press at the top clamps rather than wrapping.
	releaseActions(w)
	pressAction(w, cfg.ActionStanceUp)
	UpdatePlayer(w)
	assert.Equal(t, cfg.StanceHigh, f.Stance)
}
