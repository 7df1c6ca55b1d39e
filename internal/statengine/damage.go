package statengine

import "creaturebattle/internal/data"

// CalculateDamage applies the Gen-1-pattern damage formula. attackStat and
// defenseStat are already stage-adjusted (EffectiveStat); critical hits use
// level*2 in place of level, which is the entire critical-hit bonus in this
// formula (no separate multiplier on top). The caller is responsible for
// the rule that a critical hit uses the un-stage-reduced attack/defense
// pair when the attacker is at a disadvantage — that decision belongs to
// the effect resolver, which knows both stages, not to this pure formula.
// screenActive halves the result, matching Reflect's effect on physical
// damage and Light Screen's effect on special damage; the caller decides
// which category the defending side's active screens apply to.
func CalculateDamage(level, power, attackStat, defenseStat int, stab bool, typeEffectiveness float64, critical bool, randomFactor float64, screenActive bool) int {
	if power <= 0 || typeEffectiveness == 0 {
		return 0
	}
	if defenseStat <= 0 {
		defenseStat = 1
	}

	levelFactor := level
	if critical {
		levelFactor = level * 2
	}

	base := float64((2*levelFactor/5+2)*power*attackStat/defenseStat)/50.0 + 2.0

	if stab {
		base *= 1.5
	}
	base *= typeEffectiveness
	base *= randomFactor
	if screenActive {
		base *= 0.5
	}

	dmg := int(base)
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// TypeEffectiveness is a thin re-export so callers only need statengine,
// not data, for move-resolution damage math.
func TypeEffectiveness(attacking data.ElementalType, defendingTypes []data.ElementalType) float64 {
	return data.EffectivenessAgainst(attacking, defendingTypes)
}

// STAB reports whether the move's type matches one of the attacker's types
// (spec GLOSSARY "STAB").
func STAB(moveType data.ElementalType, attackerTypes []data.ElementalType) bool {
	if moveType == data.TypeNone {
		return false
	}
	for _, t := range attackerTypes {
		if t == moveType {
			return true
		}
	}
	return false
}

// ConfusionSelfDamage computes the fixed-formula self-hit a confused
// creature deals to itself: level-scaled, using its own Attack vs its own
// Defense, with no STAB and no type effectiveness (spec §4.H step 2).
func ConfusionSelfDamage(level, attackStat, defenseStat int, randomFactor float64) int {
	const confusionPower = 40
	return CalculateDamage(level, confusionPower, attackStat, defenseStat, false, 1.0, false, randomFactor, false)
}
