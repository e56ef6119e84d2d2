package components

import (
	"github.com/automoto/ronin/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FallSequence interpolates the player toward the sea over a fixed duration.
// Non-cancelable once started; only reset interrupts it.
type FallSequence struct {
	ElapsedMS  float64
	DurationMS float64
	X          *gween.Tween
	Y          *gween.Tween
	Opacity    *gween.Tween

	// StartHealth is the player's health when the fall began; it drains
	// toward zero over the fall's duration.
	StartHealth int
}

// EncounterData is the orchestrator singleton: roster phase machine, active
// opponent selection and the session's terminal state.
type EncounterData struct {
	Phase        config.EncounterPhase
	PhaseTimerMS float64

	// ActiveOpponent is the one enemy currently engaged; all others are
	// passive and skipped entirely by update.
	ActiveOpponent *donburi.Entry

	Global config.GlobalState

	// FlurryEnabled is the debug flurry toggle for this session.
	FlurryEnabled bool

	// HazardSpawned latches the one-shot ambush trigger.
	HazardSpawned bool

	Fall *FallSequence

	// ResetRequested asks the scene to discard and recreate the world.
	ResetRequested bool
}

var Encounter = donburi.NewComponentType[EncounterData]()
