package progression

import (
	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

// BaseExperience computes a fainted species' experience yield (spec §4.J):
// BST × (0.3 + evolution_modifier + stat_modifier), where evolution_modifier
// is -0.1 for a species that can still evolve and stat_modifier is 0.02 per
// base stat at or above 100.
func BaseExperience(species data.Species) int {
	if species.BaseExperience > 0 {
		return species.BaseExperience
	}
	bst := float64(species.Base.Total())
	evoMod := 0.0
	if species.CanEvolve() {
		evoMod = -0.1
	}
	statMod := 0.02 * float64(species.Base.CountAtLeast(100))
	return int(bst * (0.3 + evoMod + statMod))
}

// evStatOrder lists the six stats in the species record's declared order,
// used as the tie-break and "remainder falls to the first listed" rule.
var evStatOrder = []struct {
	get func(data.BaseStats) int
	set func(*entity.EVs, int)
}{
	{func(b data.BaseStats) int { return b.HP }, func(e *entity.EVs, v int) { e.HP += v }},
	{func(b data.BaseStats) int { return b.Attack }, func(e *entity.EVs, v int) { e.Attack += v }},
	{func(b data.BaseStats) int { return b.Defense }, func(e *entity.EVs, v int) { e.Defense += v }},
	{func(b data.BaseStats) int { return b.SpecialAttack }, func(e *entity.EVs, v int) { e.SpecialAttack += v }},
	{func(b data.BaseStats) int { return b.SpecialDefense }, func(e *entity.EVs, v int) { e.SpecialDefense += v }},
	{func(b data.BaseStats) int { return b.Speed }, func(e *entity.EVs, v int) { e.Speed += v }},
}

// EVYield computes the EV award for fainting species (spec §4.J): total
// yield is 1 if BST<300, 2 if <500, else 3, distributed one point each
// across that many of the species' highest-valued base stats (ties broken
// by declared stat order), any remainder falling to the first listed stat.
func EVYield(species data.Species) entity.EVs {
	bst := species.Base.Total()
	total := 1
	switch {
	case bst >= 500:
		total = 3
	case bst >= 300:
		total = 2
	}

	ranked := make([]int, len(evStatOrder))
	for i := range ranked {
		ranked[i] = i
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0; j-- {
			a, b := ranked[j-1], ranked[j]
			if evStatOrder[a].get(species.Base) < evStatOrder[b].get(species.Base) {
				ranked[j-1], ranked[j] = ranked[j], ranked[j-1]
			} else {
				break
			}
		}
	}

	var evs entity.EVs
	n := total
	if n > len(ranked) {
		n = len(ranked)
	}
	for i := 0; i < n; i++ {
		evStatOrder[ranked[i]].set(&evs, 1)
	}
	if remainder := total - n; remainder > 0 {
		evStatOrder[0].set(&evs, remainder)
	}
	return evs
}

// ComputeRewards implements spec §4.J's full reward pipeline for one faint:
// eligibility by participation, even split of experience (remainder
// discarded), and the skip rules (Tournament battles, NPC-controlled
// opponents award nothing — progression is for player-owned parties only).
// It returns the commands the caller should feed into the executor; it
// never mutates state itself.
func ComputeRewards(kind command.BattleKind, faintedSide, faintedSlot int, faintedSpecies data.Species, opponent *entity.Trainer, tracker *Tracker) []command.Command {
	if kind == command.KindTournament {
		return nil
	}
	if opponent.Policy == entity.PolicyNPC {
		return nil
	}

	opponentSide := 1 - faintedSide
	var eligible []int
	for slot, c := range opponent.Party {
		if c == nil || c.IsFainted() || c.Level >= 100 {
			continue
		}
		if tracker.Participated(opponentSide, slot, faintedSlot) {
			eligible = append(eligible, slot)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	baseExp := BaseExperience(faintedSpecies)
	share := baseExp / len(eligible)
	if share <= 0 {
		return nil
	}

	evYield := EVYield(faintedSpecies)

	recipients := make([]command.ExperienceAward, 0, len(eligible))
	var cmds []command.Command
	for _, slot := range eligible {
		recipients = append(recipients, command.ExperienceAward{Side: opponentSide, Slot: slot, Amount: share})
		cmds = append(cmds, command.Command{Kind: command.CmdDistributeEVs, Side: opponentSide, Slot: slot, EVYield: evYield})
	}
	cmds = append([]command.Command{{Kind: command.CmdAwardExperience, Recipients: recipients}}, cmds...)
	return cmds
}
