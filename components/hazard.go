package components

import (
	"github.com/automoto/ronin/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HazardData is the aerial ambush entity: a four-phase flight machine that
// can strike the player directly, bypassing stance and blocking.
type HazardData struct {
	Phase        config.HazardPhase
	PhaseTimerMS float64

	// Per-phase motion tweens, rebuilt on every phase entry.
	TweenX *gween.Tween
	TweenY *gween.Tween

	HitCooldownMS float64
	Defeated      bool
	Opacity       float64
}

var Hazard = donburi.NewComponentType[HazardData]()
