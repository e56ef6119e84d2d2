package systems

import (
	"github.com/automoto/ronin/components"
	cfg "github.com/automoto/ronin/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartBow begins the greeting bow. No-op if one is already running.
func StartBow(e *ecs.ECS, entry *donburi.Entry) {
	f := components.Fighter.Get(entry)
	if f.Bow != nil || !f.Alive {
		return
	}
	f.Bow = &components.BowState{Phase: cfg.BowDown}
	f.Attack = nil
	f.HitLagMS = 0
	f.MoveIntent = 0
	components.State.Get(entry).Enter(cfg.Bow)
	PlaySFX(e, cfg.SoundBow)
}

// AdvanceBow runs the down/hold/up phases. The pose blend accumulates while
// bending down and drains on the way back up; it keeps draining after the
// bow ends via DecayBowBlend.
func AdvanceBow(f *components.FighterData, st *components.StateData, dt float64) {
	b := f.Bow
	if b == nil {
		return
	}
	b.ElapsedMS += dt

	switch b.Phase {
	case cfg.BowDown:
		f.BowBlend += cfg.Encounter.BowBlendIn * dt / 1000
		if f.BowBlend > 1 {
			f.BowBlend = 1
		}
		if b.ElapsedMS >= cfg.Encounter.BowDownMS {
			b.Phase = cfg.BowHold
			b.ElapsedMS = 0
		}
	case cfg.BowHold:
		if b.ElapsedMS >= cfg.Encounter.BowHoldMS {
			b.Phase = cfg.BowUp
			b.ElapsedMS = 0
		}
	case cfg.BowUp:
		decayBlend(f, dt)
		if b.ElapsedMS >= cfg.Encounter.BowUpMS {
			f.Bow = nil
			if st.CurrentState == cfg.Bow {
				st.Enter(cfg.Idle)
			}
		}
	}
}

// DecayBowBlend drains a leftover pose blend once no bow is running.
func DecayBowBlend(f *components.FighterData, dt float64) {
	if f.Bow != nil {
		return
	}
	decayBlend(f, dt)
}

func decayBlend(f *components.FighterData, dt float64) {
	if f.BowBlend <= 0 {
		return
	}
	f.BowBlend -= cfg.Encounter.BowBlendIn * dt / 1000
	if f.BowBlend < 0 {
		f.BowBlend = 0
	}
}

// BowSettled reports whether the fighter has finished bowing and the pose
// blend has drained far enough to resume fighting.
func BowSettled(f *components.FighterData) bool {
	return f.Bow == nil && f.BowBlend < cfg.Encounter.BowBlendThreshold
}
