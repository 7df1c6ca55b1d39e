// Package behavior implements the Behavior port (spec §6 "Behavior
// port"): the trainer AI policy consulted for every NPC side. The engine
// core treats this as an external collaborator, explicitly out of scope
// for determinism — unlike the rest of the engine, a Behavior is free to
// consult its own randomness (math/rand) rather than the turn's RNG
// stream, since it never itself mutates battle state.
package behavior

import (
	"math/rand"

	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/orchestrator"
	"creaturebattle/internal/statengine"
)

// Behavior decides the next action for an NPC-controlled side.
type Behavior interface {
	// Decide picks this side's action for the upcoming move/switch
	// collection phase (spec §4.I "Collection phase").
	Decide(side int, sides [2]*entity.Trainer) orchestrator.PlayerAction

	// DecideReplacement picks a party slot to switch into while side is
	// awaiting a forced replacement (spec §4.I phase 5).
	DecideReplacement(side int, sides [2]*entity.Trainer) int
}

// ValidActions enumerates every action side may legally submit right now:
// one entry per known move (PP-empty slots still offer Struggle's effect
// implicitly via the move-resolution pipeline, so they're skipped here —
// scoring an empty slot has nothing to score) plus one entry per switch
// target.
func ValidActions(side int, sides [2]*entity.Trainer) []orchestrator.PlayerAction {
	tr := sides[side]
	active := tr.ActiveCreature()
	var actions []orchestrator.PlayerAction

	if active != nil && !active.IsFainted() {
		for i, slot := range active.Moves {
			if slot != nil && slot.PP > 0 {
				actions = append(actions, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: i})
			}
		}
		for i, c := range tr.Party {
			if i == tr.Active || c == nil || c.IsFainted() {
				continue
			}
			actions = append(actions, orchestrator.PlayerAction{Kind: orchestrator.ActionSwitchPokemon, TargetSlot: i})
		}
	}
	return actions
}

// activeTypesOf mirrors effect.Resolver.activeTypes for the subset of
// conditions a Behavior needs to see (Transformed/Converted override the
// species types); Behavior lives outside the engine core so it re-derives
// this rather than importing the effect package.
func activeTypesOf(tr *entity.Trainer) []data.ElementalType {
	if inst, ok := tr.Conditions.Get(data.ConditionTransformed); ok && inst.Snapshot != nil {
		return inst.Snapshot.Types
	}
	if inst, ok := tr.Conditions.Get(data.ConditionConverted); ok {
		return []data.ElementalType{inst.ConvertedType}
	}
	c := tr.ActiveCreature()
	if c == nil {
		return nil
	}
	return data.SpeciesOf(c.Species).Types
}

// ScoringBehavior picks the highest-scoring legal action, breaking
// near-ties randomly, the same shape as the reference engine's scoring AI:
// damage potential (power × type effectiveness × STAB × normalized attack)
// plus a utility term for beneficial secondary effects.
type ScoringBehavior struct{}

// NewScoringBehavior returns the default Behavior implementation.
func NewScoringBehavior() ScoringBehavior { return ScoringBehavior{} }

func (ScoringBehavior) Decide(side int, sides [2]*entity.Trainer) orchestrator.PlayerAction {
	actions := ValidActions(side, sides)
	if len(actions) == 0 {
		return orchestrator.PlayerAction{Kind: orchestrator.ActionForfeit}
	}
	if len(actions) == 1 {
		return actions[0]
	}

	best := actions[0]
	bestScore := scoreAction(actions[0], side, sides)
	var tied []orchestrator.PlayerAction
	for _, a := range actions {
		s := scoreAction(a, side, sides)
		if s > bestScore+0.01 {
			bestScore = s
			best = a
			tied = []orchestrator.PlayerAction{a}
		} else if s > bestScore-0.01 {
			tied = append(tied, a)
		}
	}
	if len(tied) == 0 {
		return best
	}
	return tied[rand.Intn(len(tied))]
}

func (ScoringBehavior) DecideReplacement(side int, sides [2]*entity.Trainer) int {
	tr := sides[side]
	var alive []int
	for i, c := range tr.Party {
		if c != nil && !c.IsFainted() {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return tr.Active
	}
	return alive[rand.Intn(len(alive))]
}

func scoreAction(action orchestrator.PlayerAction, side int, sides [2]*entity.Trainer) float64 {
	switch action.Kind {
	case orchestrator.ActionSwitchPokemon:
		return scoreSwitch()
	case orchestrator.ActionForfeit:
		return -1000.0
	default:
		return scoreMove(action.MoveSlot, side, sides)
	}
}

// scoreMove mirrors the reference engine's damage-plus-utility scoring:
// base power scaled by type effectiveness, STAB, and normalized effective
// attack, plus a utility term for stat changes, status infliction and
// flinch chance.
func scoreMove(moveSlot int, side int, sides [2]*entity.Trainer) float64 {
	attackerSide, defenderSide := sides[side], sides[1-side]
	atk := attackerSide.ActiveCreature()
	def := defenderSide.ActiveCreature()
	if atk == nil || def == nil {
		return 0.0
	}
	slot := atk.Moves[moveSlot]
	if slot == nil {
		return -1.0
	}
	move := data.MoveOf(slot.Move)

	damageScore := 0.0
	if move.Category == data.CategoryPhysical || move.Category == data.CategorySpecial {
		power := float64(move.Power)

		effectiveness := statengine.TypeEffectiveness(move.Type, activeTypesOf(defenderSide))
		if effectiveness < 0.1 {
			return -1.0
		}

		stab := 1.0
		if statengine.STAB(move.Type, activeTypesOf(attackerSide)) {
			stab = 1.5
		}

		var attackStat int
		if move.Category == data.CategoryPhysical {
			attackStat = statengine.EffectiveStat(atk.Stats.Attack, attackerSide.Stage(data.StatAttack))
		} else {
			attackStat = statengine.EffectiveStat(atk.Stats.SpecialAttack, attackerSide.Stage(data.StatSpecialAttack))
		}
		levelScalar := float64(atk.Level) * 2.0
		if levelScalar < 1.0 {
			levelScalar = 1.0
		}
		normalizedPower := float64(attackStat) / levelScalar

		damageScore = power * effectiveness * stab * normalizedPower
	}

	utilityScore := 0.0
	for _, e := range move.Effects {
		switch e.Kind {
		case data.EffectStatChange:
			if e.Target == data.TargetSelf && e.Delta > 0 {
				stage := attackerSide.Stage(e.Stat)
				if stage < 6 {
					potentialGain := 1.0 - float64(stage)/6.0
					utilityScore += 20.0 * float64(e.Delta) * potentialGain * float64(e.Chance) / 100.0
				}
			} else if e.Target == data.TargetOpponent && e.Delta < 0 {
				stage := defenderSide.Stage(e.Stat)
				if stage > -6 {
					utilityScore += 15.0 * float64(-e.Delta) * float64(e.Chance) / 100.0
				}
			}
		case data.EffectApplyStatus:
			if def.Status.Kind == data.StatusNone {
				utilityScore += 45.0 * float64(e.Chance) / 100.0
			}
		case data.EffectFlinch:
			utilityScore += 30.0 * float64(e.Chance) / 100.0
		}
	}

	final := damageScore + utilityScore
	if move.Category == data.CategoryStatus && utilityScore < 1.0 {
		return -1.0
	}
	if move.Category != data.CategoryStatus {
		accuracy := 101.0
		if move.HasAccuracy {
			accuracy = float64(move.Accuracy)
		}
		final *= accuracy / 100.0
	}

	final *= 1.0 + (rand.Float64()*0.1 - 0.05)
	return final
}

// scoreSwitch gives switching a small positive baseline (spec: "better
// than doing nothing", reference engine's ScoringAI::score_switch), plus a
// tiny random tiebreak so the AI doesn't always pick the same party slot.
func scoreSwitch() float64 {
	return 1.0 + rand.Float64()*0.1
}
