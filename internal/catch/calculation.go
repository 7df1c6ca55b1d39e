package catch

import (
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

// BallMultiplier tags a capture device's rate multiplier. Only the base
// device is named in spec §4.L's formula ("ball_mul"); the others are a
// straightforward extension of that same formula slot.
type BallMultiplier float64

const (
	StandardBall BallMultiplier = 1.0
	GreatBall    BallMultiplier = 1.5
	UltraBall    BallMultiplier = 2.0
)

func statusMultiplier(status data.StatusKind) float64 {
	switch status {
	case data.StatusSleep, data.StatusFreeze:
		return 2.0
	case data.StatusBurn, data.StatusPoison, data.StatusParalysis:
		return 1.5
	default:
		return 1.0
	}
}

// Rate computes the catch rate for target (spec §4.L):
// min(255, species_catch_rate × status_mul × ball_mul × hp_mul / 3), where
// hp_mul = (3·max − 2·current) / (3·max).
func Rate(target *entity.Creature, ball BallMultiplier) float64 {
	species := data.SpeciesOf(target.Species)
	base := float64(species.CatchRate)
	status := statusMultiplier(target.Status.Kind)

	max := float64(target.MaxHP())
	current := float64(target.CurrentHP)
	hpMul := (3*max - 2*current) / (3 * max)

	rate := (base * status * float64(ball) * hpMul) / 3.0
	if rate > 255 {
		rate = 255
	}
	return rate
}

// RollSuccess reports whether a single positional draw in [1,100],
// rescaled onto the engine's rate scale of [1,255], beats rate. The
// engine's RNG stream only ever produces [1,100] draws, so the roll is
// rescaled up rather than asking the stream for a wider range.
func RollSuccess(rate float64, roll uint8) bool {
	scaled := float64(roll) * 255.0 / 100.0
	return scaled < rate
}
