package progression

import (
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

// ItemEvolutionTarget reports the species c would evolve into by using
// item, if any. Level-based evolution is already handled inline by the
// executor's LevelUp cascade (spec §4.J); this covers the other named
// evolution method, triggered by an external item-use action rather than
// a level threshold, so it lives in progression instead of command.
func ItemEvolutionTarget(c *entity.Creature, item string) (data.SpeciesID, bool) {
	species := data.SpeciesOf(c.Species)
	if species.Evolution == nil || species.Evolution.Method != data.EvolveItem {
		return "", false
	}
	if species.Evolution.ItemKind != item {
		return "", false
	}
	return species.Evolution.Into, true
}
