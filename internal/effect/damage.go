package effect

import (
	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/statengine"
)

// applyDamageAndEffects runs spec §4.H steps 3-7 once a hit has been
// confirmed: damage computation, substitute absorption, fainting, damage
// reactions (counter/bide/rage), then the move's declarative effect list.
func (r *Resolver) applyDamageAndEffects(attackerSide, defenderSide int, atk, def *entity.Creature, move data.Move) HitResult {
	defender := r.trainer(defenderSide)

	damage := 0
	isDamaging := move.Category == data.CategoryPhysical || move.Category == data.CategorySpecial || move.HasPower
	critical := false

	typeEff := statengine.TypeEffectiveness(move.Type, r.activeTypes(defenderSide))

	if _, ok := findEffect(move, data.EffectOHKO); ok {
		damage = def.MaxHP()
	} else if sf, ok := findEffect(move, data.EffectSuperFang); ok {
		damage = def.CurrentHP * sf.Amount / 100
		if damage < 1 {
			damage = 1
		}
	} else if sd, ok := findEffect(move, data.EffectSetDamage); ok {
		damage = sd.Amount
	} else if _, ok := findEffect(move, data.EffectLevelDamage); ok {
		damage = atk.Level
	} else if isDamaging {
		roll := r.RNG.Next("crit")
		critical = statengine.CriticalCheck(move.CritRate, roll)

		var attackStat, defenseStat int
		if move.Category == data.CategoryPhysical {
			attackStage := r.trainer(attackerSide).Stage(data.StatAttack)
			defenseStage := defender.Stage(data.StatDefense)
			if critical {
				// critical hits ignore unfavorable stage reductions on
				// both sides (classic Gen-1 behavior).
				if attackStage < 0 {
					attackStage = 0
				}
				if defenseStage > 0 {
					defenseStage = 0
				}
			}
			attackStat = statengine.EffectiveStat(atk.Stats.Attack, attackStage)
			defenseStat = statengine.EffectiveStat(def.Stats.Defense, defenseStage)
		} else {
			attackStage := r.trainer(attackerSide).Stage(data.StatSpecialAttack)
			defenseStage := defender.Stage(data.StatSpecialDefense)
			if critical {
				if attackStage < 0 {
					attackStage = 0
				}
				if defenseStage > 0 {
					defenseStage = 0
				}
			}
			attackStat = statengine.EffectiveStat(atk.Stats.SpecialAttack, attackStage)
			defenseStat = statengine.EffectiveStat(def.Stats.SpecialDefense, defenseStage)
		}

		stab := statengine.STAB(move.Type, r.activeTypes(attackerSide))
		randomFactor := statengine.DamageRandomFactor(r.RNG.Next("damage-roll"))
		screenKind := data.ScreenLightScreen
		if move.Category == data.CategoryPhysical {
			screenKind = data.ScreenReflect
		}
		screenActive := defender.Screens.Has(screenKind)
		damage = statengine.CalculateDamage(atk.Level, move.Power, attackStat, defenseStat, stab, typeEff, critical, randomFactor, screenActive)
	}

	if typeEff != 1.0 && typeEff != 0 && isDamaging {
		r.emit(defenderSide, command.Event{Kind: command.EventAttackTypeEffectiveness, Multiplier: typeEff})
	}
	if critical {
		r.emit(attackerSide, command.Event{Kind: command.EventCriticalHit, Species: atk.Species, Move: move.ID})
	}

	result := HitResult{}

	// Explode faints its user before the hit lands; the damage above was
	// already computed from the attacker as it stood before fainting.
	if _, ok := findEffect(move, data.EffectExplode); ok {
		r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdFaint, Side: attackerSide}})
	}

	if damage <= 0 {
		r.runEffectList(attackerSide, defenderSide, atk, def, move, 0)
		return result
	}

	// A substitute absorbs the whole hit: the creature behind it takes no
	// damage, so Counter, Bide and Rage see nothing from this hit.
	if subInst, ok := defender.Conditions.Get(data.ConditionSubstitute); ok {
		absorbed := damage
		if absorbed > subInst.SubstituteHP {
			absorbed = subInst.SubstituteHP
		}
		remaining := subInst.SubstituteHP - absorbed
		if remaining <= 0 {
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdRemoveCondition, Side: defenderSide, ConditionKind: data.ConditionSubstitute}})
			r.emit(defenderSide, command.Event{Kind: command.EventStatusRemoved, Species: def.Species, Condition: data.ConditionSubstitute})
		} else {
			subInst.SubstituteHP = remaining
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: defenderSide, ConditionInstance: subInst}})
		}
		r.emit(defenderSide, command.Event{Kind: command.EventSubstituteDamaged, Species: def.Species, Amount: absorbed, Remaining: remaining})
		r.runEffectList(attackerSide, defenderSide, atk, def, move, 0)
		return result
	}

	r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdDealDamage, Side: defenderSide, Amount: damage}})
	nowFainted := def.IsFainted()
	r.emit(defenderSide, command.Event{Kind: command.EventDamageDealt, Species: def.Species, Amount: damage, Remaining: def.CurrentHP})

	if nowFainted {
		r.emit(defenderSide, command.Event{Kind: command.EventPokemonFainted, Species: def.Species})
		result.FaintedSides = append(result.FaintedSides, defenderSide)
		r.Stack.RemoveFrontMatchingMove(attackerSide, move.ID)
		return result
	}

	if move.Type == data.TypeFire && def.Status.Kind == data.StatusFreeze {
		r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetStatus, Side: defenderSide, Status: entity.PrimaryStatus{Kind: data.StatusNone}}})
		r.emit(defenderSide, command.Event{Kind: command.EventPokemonStatusRemoved, Species: def.Species, Status: data.StatusFreeze})
	}

	r.applyDamageReactions(attackerSide, defenderSide, atk, def, move, damage)
	r.runEffectList(attackerSide, defenderSide, atk, def, move, damage)
	return result
}

// applyDamageReactions implements spec §4.H step 6's defender damage
// reactions: counter, bide accumulation, rage. "Defender" here means the
// creature that just took this hit's damage, which for Counter/Bide/Rage is
// the one whose condition set we check, matching the original engine's
// terminology for this step.
func (r *Resolver) applyDamageReactions(attackerSide, defenderSide int, atk, def *entity.Creature, move data.Move, damage int) {
	defender := r.trainer(defenderSide)

	if move.Category == data.CategoryPhysical {
		if defender.Conditions.Has(data.ConditionCountering) {
			counterDamage := damage * 2
			r.Exec.ExecuteAll([]command.Command{
				{Kind: command.CmdDealDamage, Side: attackerSide, Amount: counterDamage},
				{Kind: command.CmdRemoveCondition, Side: defenderSide, ConditionKind: data.ConditionCountering},
			})
			r.emit(defenderSide, command.Event{Kind: command.EventDamageDealt, Species: atk.Species, Amount: counterDamage, Remaining: atk.CurrentHP})
		}
	}

	if inst, ok := defender.Conditions.Get(data.ConditionBiding); ok {
		inst.Accumulated += damage
		r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdAddCondition, Side: defenderSide, ConditionInstance: inst}})
	}

	if defender.Conditions.Has(data.ConditionEnraged) {
		oldStage := defender.Stage(data.StatAttack)
		r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdChangeStatStage, Side: defenderSide, Stat: data.StatAttack, Delta: 1}})
		newStage := defender.Stage(data.StatAttack)
		if newStage != oldStage {
			r.emit(defenderSide, command.Event{Kind: command.EventStatStageChanged, Species: def.Species, Stat: data.StatAttack, OldStage: oldStage, NewStage: newStage})
		}
	}
}
