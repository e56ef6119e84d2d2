package components

import (
	"github.com/automoto/ronin/config"
	"github.com/yohamta/donburi"
)

// Side distinguishes the player fighter from AI opponents.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Attack is the in-progress strike timeline. A fighter owns at most one; it
// is torn down when the recovery phase elapses.
type Attack struct {
	Kind   config.AttackKind
	Height config.Stance

	ElapsedMS float64
	WindupMS  float64
	ActiveMS  float64
	RecoverMS float64

	Damage int
	Reach  float64

	// Applied guards the default one-shot hit resolution.
	Applied bool
	// FlurryAccumMS accumulates active time in flurry mode; one resolution
	// attempt is made per elapsed flurry period.
	FlurryAccumMS float64
}

// AttackPhase is the current position on the timeline.
type AttackPhase int

const (
	PhaseWindup AttackPhase = iota
	PhaseActive
	PhaseRecover
	PhaseDone
)

// Phase returns the timeline phase for the current elapsed time.
func (a *Attack) Phase() AttackPhase {
	switch {
	case a.ElapsedMS < a.WindupMS:
		return PhaseWindup
	case a.ElapsedMS < a.WindupMS+a.ActiveMS:
		return PhaseActive
	case a.ElapsedMS < a.WindupMS+a.ActiveMS+a.RecoverMS:
		return PhaseRecover
	default:
		return PhaseDone
	}
}

// Extension approximates the limb-extension blend: linear over the windup,
// full reach from windup completion on.
func (a *Attack) Extension() float64 {
	if a.WindupMS <= 0 || a.ElapsedMS >= a.WindupMS {
		return 1
	}
	return a.ElapsedMS / a.WindupMS
}

// BowState drives the one-shot greeting performed once per opponent.
type BowState struct {
	Phase     config.BowPhase
	ElapsedMS float64
}

// FighterData owns the combat state of one character. It knows nothing about
// other fighters; opponents are passed explicitly into hit resolution.
type FighterData struct {
	Name   string
	Side   Side
	Facing float64 // +1 right, -1 left
	Stance config.Stance
	Alive  bool

	Attack *Attack   // at most one; nil when not striking
	Bow    *BowState // nil outside the greeting

	// BowBlend is the presentation blend of the bow pose, 0..1.
	BowBlend float64

	// Countdown timers in milliseconds; both gate further action.
	HitLagMS   float64
	CooldownMS float64

	// Greeted marks an enemy that has already performed the greeting bow.
	Greeted bool

	// MoveIntent is the horizontal movement request for this tick, -1..1.
	MoveIntent float64

	// Opacity is presentational; faded by the scripted fall sequence.
	Opacity float64
}

var Fighter = donburi.NewComponentType[FighterData]()

// CanAct reports whether the fighter may start a new action this tick.
func (f *FighterData) CanAct() bool {
	return f.Alive && f.Attack == nil && f.HitLagMS <= 0 && f.CooldownMS <= 0
}
