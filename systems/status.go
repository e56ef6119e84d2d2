package systems

import (
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/automoto/ronin/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStatus refreshes the end-of-tick summary the presentation layer
// reads: both health fractions and the current status line with its fade.
func UpdateStatus(e *ecs.ECS) {
	statusEntry, ok := components.Status.First(e.World)
	if !ok {
		return
	}
	status := components.Status.Get(statusEntry)
	encounter := GetEncounter(e)
	if encounter == nil {
		return
	}
	dt := Delta(e)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		status.PlayerHealthFrac = components.Health.Get(playerEntry).Fraction()
	}
	status.OpponentHealthFrac = 0
	if opp := encounter.ActiveOpponent; opp != nil && opp.Valid() {
		status.OpponentHealthFrac = components.Health.Get(opp).Fraction()
	}

	key := currentMessageKey(e, encounter)
	if key != status.MessageKey {
		status.MessageKey = key
		status.Fade = buildFade(key)
		status.MessageOpacity = 0
	}

	if status.Fade != nil {
		v, _, done := status.Fade.Update(float32(dt / 1000))
		status.MessageOpacity = float64(v)
		if done {
			status.Fade = nil
			if transientKey(key) {
				status.MessageOpacity = 0
			} else {
				status.MessageOpacity = 1
			}
		}
	}
}

// currentMessageKey picks the status line by priority: outcome first, then
// the set-piece, then the engagement phase, then journey guidance.
func currentMessageKey(e *ecs.ECS, encounter *components.EncounterData) cfg.MessageKey {
	switch encounter.Global {
	case cfg.Won:
		return cfg.MessageWin
	case cfg.LostCombat:
		return cfg.MessageLoseCombat
	case cfg.LostFall:
		return cfg.MessageLoseFall
	case cfg.Falling:
		return cfg.MessageNone
	}

	if firstLiveHazard(e) != nil {
		return cfg.MessageHazard
	}

	switch encounter.Phase {
	case cfg.EncounterBowing:
		return cfg.MessageGreeting
	case cfg.EncounterPostBow:
		return cfg.MessageGuard
	case cfg.EncounterFight:
		if encounter.FlurryEnabled {
			return cfg.MessageFlurry
		}
		return cfg.MessageNone
	}

	if anyEnemyAlive(e) {
		return cfg.MessageAdvance
	}
	return cfg.MessageNone
}

// buildFade makes the opacity driver for a new key. Transient lines fade
// back out after the hold; condition-driven lines stay up until the key
// changes.
func buildFade(key cfg.MessageKey) *gween.Sequence {
	if key == cfg.MessageNone {
		return nil
	}
	fadeIn := gween.New(0, 1, float32(cfg.Message.FadeInMS/1000), ease.OutQuad)
	if !transientKey(key) {
		return gween.NewSequence(fadeIn)
	}
	return gween.NewSequence(
		fadeIn,
		gween.New(1, 1, float32(cfg.Message.HoldMS/1000), ease.Linear),
		gween.New(1, 0, float32(cfg.Message.FadeOutMS/1000), ease.InQuad),
	)
}

func transientKey(key cfg.MessageKey) bool {
	return key == cfg.MessageAdvance
}

func anyEnemyAlive(e *ecs.ECS) bool {
	alive := false
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).Alive {
			alive = true
		}
	})
	return alive
}
