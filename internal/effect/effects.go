package effect

import (
	"creaturebattle/internal/command"
	"creaturebattle/internal/condition"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

// runEffectList applies every entry in move.Effects that isn't already
// handled by the damage-calculation switch in applyDamageAndEffects
// (spec §4.H step 5). damageDealt is the actual HP damage applied to the
// defender this hit (0 if the move missed, was absorbed, or deals no
// damage). It sizes Drain's heal; Recoil and Reckless use it only to tell
// whether the hit landed and are sized from the attacker's max HP.
func (r *Resolver) runEffectList(attackerSide, defenderSide int, atk, def *entity.Creature, move data.Move, damageDealt int) {
	hitLanded := damageDealt > 0
	for _, eff := range move.Effects {
		switch eff.Kind {
		case data.EffectSetDamage, data.EffectLevelDamage, data.EffectOHKO, data.EffectSuperFang,
			data.EffectPriority, data.EffectSureHit:
			// handled elsewhere (damage calc / turn ordering).

		case data.EffectApplyStatus:
			r.applyPrimaryStatus(defenderSide, def, eff)

		case data.EffectFlinch:
			if r.chance(eff.Chance, "flinch") {
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: defenderSide, ConditionInstance: condition.Instance{Kind: data.ConditionFlinched}}})
			}

		case data.EffectConfuse:
			if !r.trainer(defenderSide).Conditions.Has(data.ConditionConfused) && r.chance(eff.Chance, "confuse") {
				turns := eff.Turns
				if turns == 0 {
					turns = 4
				}
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: defenderSide, ConditionInstance: condition.Instance{Kind: data.ConditionConfused, Turns: turns}}})
				r.emit(defenderSide, command.Event{Kind: command.EventStatusApplied, Species: def.Species, Condition: data.ConditionConfused})
			}

		case data.EffectExhaust:
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: attackerSide, ConditionInstance: condition.Instance{Kind: data.ConditionExhausted, Turns: 1}}})

		case data.EffectTrap:
			if !r.trainer(defenderSide).Conditions.Has(data.ConditionTrapped) && r.chance(eff.Chance, "trap") {
				turns := eff.Turns
				if turns == 0 {
					turns = 4
				}
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: defenderSide, ConditionInstance: condition.Instance{Kind: data.ConditionTrapped, Turns: turns}}})
				r.emit(defenderSide, command.Event{Kind: command.EventStatusApplied, Species: def.Species, Condition: data.ConditionTrapped})
			}

		case data.EffectSeed:
			if !r.trainer(defenderSide).Conditions.Has(data.ConditionSeeded) && r.chance(eff.Chance, "seed") {
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: defenderSide, ConditionInstance: condition.Instance{Kind: data.ConditionSeeded}}})
				r.emit(defenderSide, command.Event{Kind: command.EventStatusApplied, Species: def.Species, Condition: data.ConditionSeeded})
			}

		case data.EffectDisable:
			if !r.trainer(defenderSide).Conditions.Has(data.ConditionDisabled) && r.chance(eff.Chance, "disable") {
				if lastMove := r.trainer(defenderSide).LastMove; lastMove != "" {
					turns := eff.Turns
					if turns == 0 {
						turns = 4
					}
					r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: defenderSide, ConditionInstance: condition.Instance{Kind: data.ConditionDisabled, Turns: turns, DisabledMove: lastMove}}})
					r.emit(defenderSide, command.Event{Kind: command.EventStatusApplied, Species: def.Species, Condition: data.ConditionDisabled, Move: lastMove})
				}
			}

		case data.EffectNightmare:
			if def.Status.Kind == data.StatusSleep && !r.trainer(defenderSide).Conditions.Has(data.ConditionNightmare) && r.chance(eff.Chance, "nightmare") {
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: defenderSide, ConditionInstance: condition.Instance{Kind: data.ConditionNightmare}}})
				r.emit(defenderSide, command.Event{Kind: command.EventStatusApplied, Species: def.Species, Condition: data.ConditionNightmare})
			}

		case data.EffectStatChange:
			r.applyStatChange(attackerSide, defenderSide, atk, def, eff)

		case data.EffectSubstitute:
			r.applySubstitute(attackerSide, atk)

		case data.EffectCounter:
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: attackerSide, ConditionInstance: condition.Instance{Kind: data.ConditionCountering}}})

		case data.EffectBide:
			turns := eff.Turns
			if turns == 0 {
				turns = 2
			}
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: attackerSide, ConditionInstance: condition.Instance{Kind: data.ConditionBiding, Turns: turns}}})

		case data.EffectHaze:
			r.applyHaze()

		case data.EffectTeamScreen:
			turns := eff.Turns
			if turns == 0 {
				turns = 5
			}
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddTeamScreen, Side: attackerSide, ScreenKind: eff.Screen, Turns: turns}})
			r.emit(attackerSide, command.Event{Kind: command.EventTeamConditionApplied, Screen: eff.Screen})

		case data.EffectMirrorMove, data.EffectMetronome:
			// Substitution already happened in ResolveAttackHit before this
			// move's effect list was reached, so move is the selected target
			// move, not MirrorMove/Metronome itself — this case is
			// unreachable in practice and exists only so the switch stays
			// exhaustive over EffectKind.

		case data.EffectExplode:
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdFaint, Side: attackerSide}})

		case data.EffectConversion:
			defTypes := r.activeTypes(defenderSide)
			if len(defTypes) > 0 {
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: attackerSide, ConditionInstance: condition.Instance{Kind: data.ConditionConverted, ConvertedType: defTypes[0]}}})
			}

		case data.EffectTransform:
			r.applyTransform(attackerSide, defenderSide, def)

		case data.EffectCureStatus:
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetStatus, Side: attackerSide, Status: entity.PrimaryStatus{Kind: data.StatusNone}}})

		case data.EffectRest:
			r.Exec.ExecuteAll([]command.Command{
				{Kind: command.CmdSetStatus, Side: attackerSide, Status: entity.PrimaryStatus{Kind: data.StatusSleep, Turns: 2}},
				{Kind: command.CmdHealCreature, Side: attackerSide, Amount: atk.MaxHP()},
			})

		case data.EffectRecoil:
			if hitLanded {
				recoil := atk.MaxHP() * eff.Amount / 100
				if recoil < 1 {
					recoil = 1
				}
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdDealDamage, Side: attackerSide, Amount: recoil}})
			}

		case data.EffectReckless:
			if !hitLanded {
				recoil := atk.MaxHP() * eff.Amount / 100
				if recoil < 1 {
					recoil = 1
				}
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdDealDamage, Side: attackerSide, Amount: recoil}})
			}

		case data.EffectDrain:
			if hitLanded {
				healed := damageDealt * eff.Amount / 100
				if healed < 1 {
					healed = 1
				}
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdHealCreature, Side: attackerSide, Amount: healed}})
				r.emit(attackerSide, command.Event{Kind: command.EventPokemonHealed, Species: atk.Species, Amount: healed})
			}

		case data.EffectHeal:
			amount := atk.MaxHP() * eff.Amount / 100
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdHealCreature, Side: attackerSide, Amount: amount}})
			r.emit(attackerSide, command.Event{Kind: command.EventPokemonHealed, Species: atk.Species, Amount: amount})

		case data.EffectChargeUp:
			r.applyChargeUp(attackerSide, atk, eff)

		case data.EffectTeleport:
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: attackerSide, ConditionInstance: condition.Instance{Kind: data.ConditionTeleported}}})

		case data.EffectRampage:
			r.applyRampage(attackerSide, eff)

		case data.EffectMultiHit:
			// handled in ResolveAttackHit: the next hit is queued only
			// after this one resolves, so the continuation roll can see
			// whether it landed and whether it fainted the target.
		}
	}
}

// chance draws one RNG value labeled label and reports whether it falls
// within pct percent (a pct of 0 always succeeds, matching effects with no
// stated chance field).
func (r *Resolver) chance(pct int, label string) bool {
	if pct <= 0 {
		return true
	}
	return int(r.RNG.Next(label)) <= pct
}

func (r *Resolver) applyPrimaryStatus(side int, target *entity.Creature, eff data.Effect) {
	if target.Status.Kind != data.StatusNone {
		return
	}
	if !r.chance(eff.Chance, "status") {
		return
	}
	status := eff.Status
	turns := 0
	if status == data.StatusSleep {
		turns = 3
	}
	r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetStatus, Side: side, Status: entity.PrimaryStatus{Kind: status, Turns: turns}}})
	r.emit(side, command.Event{Kind: command.EventPokemonStatusApplied, Species: target.Species, Status: status})
}

func (r *Resolver) applyStatChange(attackerSide, defenderSide int, atk, def *entity.Creature, eff data.Effect) {
	side := attackerSide
	target := atk
	if eff.Target == data.TargetOpponent {
		side = defenderSide
		target = def
	}
	if !r.chance(eff.Chance, "statchange") {
		return
	}
	if eff.Delta < 0 && eff.Target == data.TargetOpponent && r.trainer(defenderSide).Screens.Has(data.ScreenMist) {
		r.emit(defenderSide, command.Event{Kind: command.EventStatChangeBlocked})
		return
	}
	tr := r.trainer(side)
	oldStage := tr.Stage(eff.Stat)
	r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdChangeStatStage, Side: side, Stat: eff.Stat, Delta: eff.Delta}})
	newStage := tr.Stage(eff.Stat)
	if newStage != oldStage {
		r.emit(side, command.Event{Kind: command.EventStatStageChanged, Species: target.Species, Stat: eff.Stat, OldStage: oldStage, NewStage: newStage})
	}
}

func (r *Resolver) applySubstitute(side int, atk *entity.Creature) {
	if r.trainer(side).Conditions.Has(data.ConditionSubstitute) {
		return
	}
	cost := atk.MaxHP() / 4
	if atk.CurrentHP <= cost {
		r.actionFailed(side, command.ReasonNone)
		return
	}
	r.Exec.ExecuteAll([]command.Command{
		{Kind: command.CmdDealDamage, Side: side, Amount: cost},
		{Kind: command.CmdAddCondition, Side: side, ConditionInstance: condition.Instance{Kind: data.ConditionSubstitute, SubstituteHP: cost}},
	})
}

func (r *Resolver) applyHaze() {
	for side := 0; side < 2; side++ {
		r.trainer(side).ResetStages()
	}
}

func (r *Resolver) applyTransform(attackerSide, defenderSide int, def *entity.Creature) {
	species := data.SpeciesOf(def.Species)
	var moves []data.MoveID
	for _, m := range def.Moves {
		if m != nil {
			moves = append(moves, m.Move)
		}
	}
	snapshot := &condition.TransformSnapshot{
		Species: def.Species,
		Types:   r.activeTypes(defenderSide),
		Stats:   species.Base,
		Moves:   moves,
	}
	r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: attackerSide, ConditionInstance: condition.Instance{Kind: data.ConditionTransformed, Snapshot: snapshot}}})
}

func (r *Resolver) applyChargeUp(side int, atk *entity.Creature, eff data.Effect) {
	tr := r.trainer(side)
	if tr.Conditions.Has(data.ConditionCharging) {
		r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdRemoveCondition, Side: side, ConditionKind: data.ConditionCharging}})
		return
	}
	turns := eff.Turns
	if turns == 0 {
		turns = 1
	}
	r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: side, ConditionInstance: condition.Instance{Kind: data.ConditionCharging, Turns: turns}}})
}

func (r *Resolver) applyRampage(side int, eff data.Effect) {
	tr := r.trainer(side)
	if inst, ok := tr.Conditions.Get(data.ConditionRampaging); ok {
		if inst.Turns <= 1 {
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdRemoveCondition, Side: side, ConditionKind: data.ConditionRampaging}})
			if eff.FollowupStatus == data.StatusNone {
				r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: side, ConditionInstance: condition.Instance{Kind: data.ConditionConfused, Turns: 3}}})
			}
		}
		return
	}
	r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: side, ConditionInstance: condition.Instance{Kind: data.ConditionRampaging, Turns: 3}}})
}

