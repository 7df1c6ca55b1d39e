package statengine_test

import (
	"testing"

	"creaturebattle/internal/statengine"
)

func TestStageMultiplierMatchesKnownValues(t *testing.T) {
	cases := []struct {
		stage int8
		want  float64
	}{
		{0, 1.0},
		{1, 1.5},
		{2, 2.0},
		{6, 4.0},
		{-1, 2.0 / 3.0},
		{-2, 0.5},
		{-6, 0.25},
	}
	for _, c := range cases {
		got := statengine.StageMultiplier(c.stage)
		if diff := got - c.want; diff > 0.001 || diff < -0.001 {
			t.Errorf("StageMultiplier(%d) = %v, want %v", c.stage, got, c.want)
		}
	}
}

func TestStageMultiplierClampsBeyondSix(t *testing.T) {
	if got := statengine.StageMultiplier(20); got != statengine.StageMultiplier(6) {
		t.Errorf("StageMultiplier(20) = %v, want same as StageMultiplier(6) = %v", got, statengine.StageMultiplier(6))
	}
	if got := statengine.StageMultiplier(-20); got != statengine.StageMultiplier(-6) {
		t.Errorf("StageMultiplier(-20) = %v, want same as StageMultiplier(-6)", got)
	}
}

func TestAccuracyStageMultiplierMatchesKnownValues(t *testing.T) {
	cases := []struct {
		stage int8
		want  float64
	}{
		{0, 1.0},
		{6, 3.0},
		{-6, 1.0 / 3.0},
	}
	for _, c := range cases {
		got := statengine.AccuracyStageMultiplier(c.stage)
		if diff := got - c.want; diff > 0.001 || diff < -0.001 {
			t.Errorf("AccuracyStageMultiplier(%d) = %v, want %v", c.stage, got, c.want)
		}
	}
}

func TestEffectiveSpeedQuartersUnderParalysis(t *testing.T) {
	got := statengine.EffectiveSpeed(100, 0, true)
	if got != 25 {
		t.Errorf("EffectiveSpeed(100, 0, paralyzed) = %d, want 25", got)
	}
	got = statengine.EffectiveSpeed(100, 0, false)
	if got != 100 {
		t.Errorf("EffectiveSpeed(100, 0, not paralyzed) = %d, want 100", got)
	}
}

func TestHitCheckNeverMissesWithoutAccuracy(t *testing.T) {
	if !statengine.HitCheck(0, false, 0, 0, 100) {
		t.Error("a move with HasAccuracy=false must never miss")
	}
}

func TestHitCheckRollAtOrBelowThresholdHits(t *testing.T) {
	if !statengine.HitCheck(100, true, 0, 0, 100) {
		t.Error("100 accuracy with roll 100 should hit")
	}
	if statengine.HitCheck(50, true, 0, 0, 51) {
		t.Error("50 accuracy with roll 51 should miss")
	}
	if !statengine.HitCheck(50, true, 0, 0, 50) {
		t.Error("50 accuracy with roll 50 should hit")
	}
}

func TestHitCheckEvasionLowersEffectiveAccuracy(t *testing.T) {
	// Evasion +6 against 0 accuracy stage gives the minimum 1/3 multiplier,
	// so 90 base accuracy becomes 30; roll 50 should now miss though it
	// would have hit at neutral evasion.
	if statengine.HitCheck(90, true, 0, 6, 50) {
		t.Error("heavy defender evasion should drop effective accuracy below the roll")
	}
}

func TestCriticalCheckRespectsThreshold(t *testing.T) {
	if statengine.CriticalCheck(0, 1) {
		t.Error("a move with zero crit rate should never crit")
	}
	if !statengine.CriticalCheck(1.0/16, 6) {
		t.Error("roll 6 should crit against a 1/16 (~6%) crit rate")
	}
	if statengine.CriticalCheck(1.0/16, 7) {
		t.Error("roll 7 should not crit against a 1/16 crit rate")
	}
}

func TestDamageRandomFactorStaysInEightyFiveToHundredRange(t *testing.T) {
	for roll := 1; roll <= 100; roll++ {
		f := statengine.DamageRandomFactor(uint8(roll))
		if f < 0.85 || f > 1.00 {
			t.Fatalf("DamageRandomFactor(%d) = %v, out of [0.85,1.00]", roll, f)
		}
	}
}

func TestCalculateDamageZeroWhenImmune(t *testing.T) {
	got := statengine.CalculateDamage(50, 80, 100, 100, false, 0, false, 1.0, false)
	if got != 0 {
		t.Errorf("CalculateDamage with 0 type effectiveness = %d, want 0", got)
	}
}

func TestCalculateDamageAtLeastOne(t *testing.T) {
	got := statengine.CalculateDamage(1, 10, 1, 999, false, 1.0, false, 0.85, false)
	if got < 1 {
		t.Errorf("CalculateDamage = %d, want at least 1 for a connecting hit", got)
	}
}

func TestCalculateDamageSTABIncreasesDamage(t *testing.T) {
	withoutStab := statengine.CalculateDamage(50, 80, 100, 80, false, 1.0, false, 1.0, false)
	withStab := statengine.CalculateDamage(50, 80, 100, 80, true, 1.0, false, 1.0, false)
	if withStab <= withoutStab {
		t.Errorf("STAB damage %d should exceed non-STAB damage %d", withStab, withoutStab)
	}
}

func TestCalculateDamageCriticalIncreasesDamage(t *testing.T) {
	normal := statengine.CalculateDamage(50, 80, 100, 80, false, 1.0, false, 1.0, false)
	crit := statengine.CalculateDamage(50, 80, 100, 80, false, 1.0, true, 1.0, false)
	if crit <= normal {
		t.Errorf("critical damage %d should exceed normal damage %d", crit, normal)
	}
}

func TestCalculateDamageScreenHalvesDamage(t *testing.T) {
	normal := statengine.CalculateDamage(50, 80, 100, 80, false, 1.0, false, 1.0, false)
	screened := statengine.CalculateDamage(50, 80, 100, 80, false, 1.0, false, 1.0, true)
	if screened >= normal {
		t.Errorf("screened damage %d should be less than unscreened damage %d", screened, normal)
	}
	want := normal / 2
	if diff := screened - want; diff < -1 || diff > 1 {
		t.Errorf("screened damage %d, want approximately half of %d (%d)", screened, normal, want)
	}
}
