package statengine

// HitCheck decides whether a move connects. hasAccuracy false means the
// move never misses (spec §3 Move static record). roll is one positional
// draw from the RNG stream, in [1,100].
func HitCheck(baseAccuracy int, hasAccuracy bool, accuracyStage, evasionStage int8, roll uint8) bool {
	if !hasAccuracy {
		return true
	}

	adjusted := accuracyStage - evasionStage
	if adjusted > AccuracyStageClamp {
		adjusted = AccuracyStageClamp
	}
	if adjusted < -AccuracyStageClamp {
		adjusted = -AccuracyStageClamp
	}

	modified := round(float64(baseAccuracy) * AccuracyStageMultiplier(adjusted))
	if modified > 100 {
		modified = 100
	}
	if modified < 1 {
		modified = 1
	}

	return int(roll) <= modified
}

// CriticalCheck decides whether a hit is critical from the move's base
// crit rate (e.g. 1/16) and one positional draw in [1,100].
func CriticalCheck(critRate float64, roll uint8) bool {
	threshold := round(critRate * 100)
	if threshold < 1 {
		return false
	}
	return int(roll) <= threshold
}

// DamageRandomFactor maps one positional draw in [1,100] onto the
// classic 85%-100% damage roll (Gen-1's 217..255 over 255 range,
// rescaled onto the engine's uniform [1,100] draw space).
func DamageRandomFactor(roll uint8) float64 {
	v := int(roll)
	pct := 85 + (v-1)*15/99
	return float64(pct) / 100.0
}
