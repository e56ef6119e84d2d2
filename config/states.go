package config

// StateID identifies a fighter lifecycle state. Exactly one holds at a time
// and it gates movement and action eligibility.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Attacking
	Hit
	Block
	Dead
	Bow
	Fall
)

// Stance is one of the three attack heights that double as guard stances.
// The index is clamped to [StanceLow, StanceHigh] and never wraps.
type Stance int

const (
	StanceLow Stance = iota
	StanceMid
	StanceHigh
)

// ClampStance keeps a stance index inside the valid range.
func ClampStance(s Stance) Stance {
	if s < StanceLow {
		return StanceLow
	}
	if s > StanceHigh {
		return StanceHigh
	}
	return s
}

// AttackKind selects the parameter row for a strike.
type AttackKind int

const (
	Punch AttackKind = iota
	Kick
)

// BowPhase sequences the one-shot greeting animation.
type BowPhase int

const (
	BowDown BowPhase = iota
	BowHold
	BowUp
)

// EncounterPhase is the orchestrator's sub-state against the active opponent.
type EncounterPhase int

const (
	EncounterIdle EncounterPhase = iota
	EncounterBowing
	EncounterPostBow
	EncounterFight
)

// GlobalState is the orchestrator's top-level session state. Terminal states
// are user-recoverable only via explicit reset.
type GlobalState int

const (
	Playing GlobalState = iota
	Falling
	Won
	LostCombat
	LostFall
)

// Terminal reports whether the session has ended.
func (g GlobalState) Terminal() bool {
	return g == Won || g == LostCombat || g == LostFall
}

// HazardPhase sequences the aerial hazard's state machine.
type HazardPhase int

const (
	HazardEnter HazardPhase = iota
	HazardHover
	HazardDive
	HazardRise
	HazardDissolve
)

// MessageKey names a status line for the presentation layer.
type MessageKey string

const (
	MessageNone       MessageKey = ""
	MessageGreeting   MessageKey = "greeting"
	MessageGuard      MessageKey = "guard"
	MessageAdvance    MessageKey = "advance"
	MessageHazard     MessageKey = "hazard"
	MessageFlurry     MessageKey = "flurry"
	MessageWin        MessageKey = "win"
	MessageLoseCombat MessageKey = "lose-combat"
	MessageLoseFall   MessageKey = "lose-fall"
)
