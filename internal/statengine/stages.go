// Package statengine implements stage multipliers, the hit/critical/damage
// formulas, and type-effectiveness lookups (spec component 4.E). Every
// function here is pure: given the same inputs (including the rng draws
// passed in explicitly) it always returns the same result.
package statengine

// StatStageClamp is the stat-stage bound for Atk/Def/Spe/SpAtk/SpDef.
const StatStageClamp = 6

// AccuracyStageClamp is the stat-stage bound for Accuracy/Evasion, which use
// a different multiplier table from the other five stats.
const AccuracyStageClamp = 6

// StageMultiplier returns the 2-based multiplier for a non-accuracy stat
// stage: (2+n)/2 for n>=0, 2/(2+|n|) for n<0 (spec GLOSSARY "Stage").
func StageMultiplier(stage int8) float64 {
	if stage > StatStageClamp {
		stage = StatStageClamp
	}
	if stage < -StatStageClamp {
		stage = -StatStageClamp
	}
	if stage >= 0 {
		return (2.0 + float64(stage)) / 2.0
	}
	return 2.0 / (2.0 + float64(-stage))
}

// AccuracyStageMultiplier returns the 3-based multiplier used for
// Accuracy/Evasion stages: (3+n)/3 for n>=0, 3/(3+|n|) for n<0.
func AccuracyStageMultiplier(stage int8) float64 {
	if stage > AccuracyStageClamp {
		stage = AccuracyStageClamp
	}
	if stage < -AccuracyStageClamp {
		stage = -AccuracyStageClamp
	}
	if stage >= 0 {
		return (3.0 + float64(stage)) / 3.0
	}
	return 3.0 / (3.0 + float64(-stage))
}

// EffectiveStat applies a stage multiplier to a base stat value, rounding
// to the nearest integer.
func EffectiveStat(base int, stage int8) int {
	return round(float64(base) * StageMultiplier(stage))
}

// EffectiveSpeed applies the speed stage and, if paralyzed, quarters the
// result (spec §4.E, Gen-1 paralysis speed penalty).
func EffectiveSpeed(baseSpeed int, stage int8, paralyzed bool) int {
	speed := EffectiveStat(baseSpeed, stage)
	if paralyzed {
		speed /= 4
	}
	return speed
}

func round(f float64) int {
	if f < 0 {
		return -round(-f)
	}
	return int(f + 0.5)
}
