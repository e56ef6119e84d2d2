package config

import "image/color"

// SimConfig bounds the cooperative step model.
type SimConfig struct {
	MaxDeltaMS float64 // worst-case simulation step after a frame stall
}

// FighterConfig contains values shared by every fighter body.
type FighterConfig struct {
	MaxHealth  int
	BodyWidth  float64
	BodyHeight float64

	// Movement (world units per second)
	WalkSpeed float64

	// Stance speed modulation
	LowStanceSpeedScale  float64
	HighStanceSpeedScale float64
}

// AttackSpec is the parameter row for one attack kind. Durations are
// cumulative phase lengths in milliseconds.
type AttackSpec struct {
	WindupMS  float64
	ActiveMS  float64
	RecoverMS float64
	Damage    int
	Reach     float64
}

// TotalMS returns the full timeline length of the attack.
func (s AttackSpec) TotalMS() float64 {
	return s.WindupMS + s.ActiveMS + s.RecoverMS
}

// CombatConfig contains hit adjudication values.
type CombatConfig struct {
	ChipDamageRatio  float64 // blocked hits: max(1, round(damage*ratio))
	BlockHitLagMS    float64
	HitLagMS         float64
	AttackCooldownMS float64 // refractory gap after an attack resolves
	KnockbackScale   float64 // displacement = reach * scale, away from attacker

	// Debug flurry mode. Asymmetric balance choice kept from the source;
	// tunable, not inferred logic.
	FlurryPeriodMS       float64
	FlurryDamage         int
	FlurryKnockbackScale float64
}

// AIConfig contains the enemy decision-process constants.
type AIConfig struct {
	// Spacing
	EngageDistance float64
	EngageMargin   float64
	ApproachSpeed  float64 // world units per second
	BackoffSpeed   float64

	// Defense. ReactBlockDistance gives the AI a perfect reactive block;
	// intentionally generous, kept tunable.
	ReactBlockDistance     float64
	StanceShufflePerSecond float64 // per-second chance of a stance change
	MirrorStanceChance     float64

	// Offense
	FirstAttackDelayMinMS float64
	FirstAttackDelayMaxMS float64
	AttackDelayMinMS      float64
	AttackDelayMaxMS      float64
	AttackRange           float64
	KickChance            float64
	AvoidGuardChance      float64 // chance to exclude the player's stance from target heights
}

// EncounterConfig contains orchestration values.
type EncounterConfig struct {
	EngageRadius float64
	// Deselection hysteresis: an engaged opponent is dropped only past
	// EngageRadius * DisengageScale.
	DisengageScale float64
	PostBowHoldMS  float64

	// Greeting bow phase durations
	BowDownMS  float64
	BowHoldMS  float64
	BowUpMS    float64
	BowBlendIn float64 // blend units per second while bowing down
	// bowing -> postBow requires both fighters' blend below this
	BowBlendThreshold float64
}

// HazardConfig contains the aerial ambush set-piece values.
type HazardConfig struct {
	Width  float64
	Height float64

	EnterMS    float64
	HoverMS    float64
	DiveMS     float64
	RiseMS     float64
	DissolveMS float64

	HoverHeight    float64 // above the ground line
	DiveDamage     int
	HitCooldownMS  float64
	SpawnLeadX     float64 // spawn distance ahead of the player
	HoverOffsetX   float64 // hover point relative to the player
	DiveOvershootY float64
}

// FallConfig contains the scripted sea-fall sequence values.
type FallConfig struct {
	DurationMS float64
	DriftX     float64 // horizontal drift over the full fall
	DropY      float64 // vertical drop over the full fall
}

// CameraConfig contains camera interpolation values.
type CameraConfig struct {
	// Fraction of the view the player is kept at, from the left edge.
	LeftFraction float64
	// Exponential smoothing rate per second toward the target.
	SmoothingPerSecond float64
	ScrollEpsilon      float64 // camera offset past which "has scrolled" holds

	ShakeIntensity  float64
	ShakeDurationMS float64
}

// MessageConfig contains status-line presentation values.
type MessageConfig struct {
	FadeInMS  float64
	HoldMS    float64 // transient keys fade out after this hold
	FadeOutMS float64

	Texts map[MessageKey]string
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	SkipMenu      bool
	ShowBoxes     bool
	FlurryDefault bool
}

// Config holds general presentation configuration.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Sim SimConfig
var Fighter FighterConfig
var Attacks map[AttackKind]AttackSpec
var Combat CombatConfig
var AI AIConfig
var Encounter EncounterConfig
var Hazard HazardConfig
var FallSeq FallConfig
var Camera CameraConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Green        = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 170, B: 215, A: 255}
	SeaBlue      = color.RGBA{R: 30, G: 70, B: 130, A: 255}
	GroundBrown  = color.RGBA{R: 120, G: 95, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	BarBack      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// Facing constants
const (
	FacingLeft  = -1.0
	FacingRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Sim = SimConfig{
		MaxDeltaMS: 32,
	}

	Fighter = FighterConfig{
		MaxHealth:            100,
		BodyWidth:            24,
		BodyHeight:           72,
		WalkSpeed:            160,
		LowStanceSpeedScale:  0.90,
		HighStanceSpeedScale: 1.05,
	}

	Attacks = map[AttackKind]AttackSpec{
		Punch: {WindupMS: 110, ActiveMS: 90, RecoverMS: 210, Damage: 10, Reach: 56},
		Kick:  {WindupMS: 160, ActiveMS: 110, RecoverMS: 300, Damage: 16, Reach: 72},
	}

	Combat = CombatConfig{
		ChipDamageRatio:      0.2,
		BlockHitLagMS:        80,
		HitLagMS:             160,
		AttackCooldownMS:     120,
		KnockbackScale:       0.6,
		FlurryPeriodMS:       45,
		FlurryDamage:         8,
		FlurryKnockbackScale: 0.25,
	}

	AI = AIConfig{
		EngageDistance:         64,
		EngageMargin:           10,
		ApproachSpeed:          120,
		BackoffSpeed:           90,
		ReactBlockDistance:     90,
		StanceShufflePerSecond: 1.1,
		MirrorStanceChance:     0.60,
		FirstAttackDelayMinMS:  400,
		FirstAttackDelayMaxMS:  900,
		AttackDelayMinMS:       700,
		AttackDelayMaxMS:       1400,
		AttackRange:            86,
		KickChance:             0.45,
		AvoidGuardChance:       0.55,
	}

	Encounter = EncounterConfig{
		EngageRadius:      150,
		DisengageScale:    1.25,
		PostBowHoldMS:     480,
		BowDownMS:         420,
		BowHoldMS:         320,
		BowUpMS:           420,
		BowBlendIn:        2.6,
		BowBlendThreshold: 0.05,
	}

	Hazard = HazardConfig{
		Width:          34,
		Height:         20,
		EnterMS:        900,
		HoverMS:        1100,
		DiveMS:         620,
		RiseMS:         780,
		DissolveMS:     700,
		HoverHeight:    130,
		DiveDamage:     12,
		HitCooldownMS:  900,
		SpawnLeadX:     360,
		HoverOffsetX:   130,
		DiveOvershootY: 8,
	}

	FallSeq = FallConfig{
		DurationMS: 2600,
		DriftX:     -140,
		DropY:      260,
	}

	Camera = CameraConfig{
		LeftFraction:       1.0 / 3.0,
		SmoothingPerSecond: 6.0,
		ScrollEpsilon:      1.0,
		ShakeIntensity:     3.0,
		ShakeDurationMS:    130,
	}

	Message = MessageConfig{
		FadeInMS:  250,
		HoldMS:    2000,
		FadeOutMS: 600,
		Texts: map[MessageKey]string{
			MessageGreeting:   "Bow to your opponent",
			MessageGuard:      "Guard up",
			MessageAdvance:    "Advance",
			MessageHazard:     "Strike it down!",
			MessageFlurry:     "FLURRY",
			MessageWin:        "Victory",
			MessageLoseCombat: "You have been defeated",
			MessageLoseFall:   "The sea claims you",
		},
	}

	Debug = DebugConfig{
		SkipMenu:  false,
		ShowBoxes: false,
	}
}
