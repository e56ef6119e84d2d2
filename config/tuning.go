package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tuning mirrors the override file shape. Pointer fields distinguish "not
// set" from an explicit zero, so the file only needs to name what it changes.
type Tuning struct {
	Combat struct {
		ChipDamageRatio  *float64 `yaml:"chipDamageRatio"`
		BlockHitLagMS    *float64 `yaml:"blockHitLagMs"`
		HitLagMS         *float64 `yaml:"hitLagMs"`
		AttackCooldownMS *float64 `yaml:"attackCooldownMs"`
		KnockbackScale   *float64 `yaml:"knockbackScale"`
		FlurryPeriodMS   *float64 `yaml:"flurryPeriodMs"`
		FlurryDamage     *int     `yaml:"flurryDamage"`
	} `yaml:"combat"`
	AI struct {
		EngageDistance     *float64 `yaml:"engageDistance"`
		EngageMargin       *float64 `yaml:"engageMargin"`
		ReactBlockDistance *float64 `yaml:"reactBlockDistance"`
		AttackRange        *float64 `yaml:"attackRange"`
		KickChance         *float64 `yaml:"kickChance"`
		AvoidGuardChance   *float64 `yaml:"avoidGuardChance"`
	} `yaml:"ai"`
	Encounter struct {
		EngageRadius  *float64 `yaml:"engageRadius"`
		PostBowHoldMS *float64 `yaml:"postBowHoldMs"`
	} `yaml:"encounter"`
	Hazard struct {
		DiveDamage    *int     `yaml:"diveDamage"`
		HitCooldownMS *float64 `yaml:"hitCooldownMs"`
	} `yaml:"hazard"`
}

// ApplyTuning parses a yaml override document and applies any set fields on
// top of the compiled-in defaults.
func ApplyTuning(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}

	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setI := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&Combat.ChipDamageRatio, t.Combat.ChipDamageRatio)
	setF(&Combat.BlockHitLagMS, t.Combat.BlockHitLagMS)
	setF(&Combat.HitLagMS, t.Combat.HitLagMS)
	setF(&Combat.AttackCooldownMS, t.Combat.AttackCooldownMS)
	setF(&Combat.KnockbackScale, t.Combat.KnockbackScale)
	setF(&Combat.FlurryPeriodMS, t.Combat.FlurryPeriodMS)
	setI(&Combat.FlurryDamage, t.Combat.FlurryDamage)

	setF(&AI.EngageDistance, t.AI.EngageDistance)
	setF(&AI.EngageMargin, t.AI.EngageMargin)
	setF(&AI.ReactBlockDistance, t.AI.ReactBlockDistance)
	setF(&AI.AttackRange, t.AI.AttackRange)
	setF(&AI.KickChance, t.AI.KickChance)
	setF(&AI.AvoidGuardChance, t.AI.AvoidGuardChance)

	setF(&Encounter.EngageRadius, t.Encounter.EngageRadius)
	setF(&Encounter.PostBowHoldMS, t.Encounter.PostBowHoldMS)

	setI(&Hazard.DiveDamage, t.Hazard.DiveDamage)
	setF(&Hazard.HitCooldownMS, t.Hazard.HitCooldownMS)

	return nil
}
