// Package effect implements the move-effect resolution pipeline (spec
// component 4.H): preconditions, PP/Struggle substitution, accuracy, crit,
// damage, substitute absorption, damage reactions (counter/bide/rage),
// status and volatile-condition effects, and post-hit bookkeeping. It is
// the largest component: moves, being a closed sum type of effects, are
// dispatched through one exhaustive switch per concern rather than a
// hierarchy of move types.
package effect

import (
	"creaturebattle/internal/actionstack"
	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/rng"
	"creaturebattle/internal/statengine"
)

// freezeThawChance is the percent chance, checked on an RNG draw in
// [1,100], that a frozen creature thaws on its own at the start of its
// action instead of failing outright.
const freezeThawChance = 20

// Resolver drains AttackHit actions against the executor, sides and RNG
// stream it is constructed with.
type Resolver struct {
	Exec  *command.Executor
	Stack *actionstack.Stack
	Sides [2]*entity.Trainer
	RNG   *rng.Stream
}

// NewResolver builds a Resolver over the given executor/stack/sides/rng.
func NewResolver(exec *command.Executor, stack *actionstack.Stack, sides [2]*entity.Trainer, stream *rng.Stream) *Resolver {
	return &Resolver{Exec: exec, Stack: stack, Sides: sides, RNG: stream}
}

// HitResult reports which sides fainted as a direct result of one resolved
// AttackHit action, so the orchestrator can trigger reward distribution
// (spec §4.J) without the effect package importing progression.
type HitResult struct {
	FaintedSides []int
}

func (r *Resolver) trainer(side int) *entity.Trainer { return r.Sides[side] }

func (r *Resolver) activeTypes(side int) []data.ElementalType {
	tr := r.Sides[side]
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

func (r *Resolver) emit(side int, ev command.Event) {
	ev.Side = side
	r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdEmitEvent, Event: ev}})
}

func (r *Resolver) actionFailed(side int, reason command.ActionFailureReason) {
	r.emit(side, command.Event{Kind: command.EventActionFailed, Reason: reason})
}

// ResolveAttackHit runs the full pipeline for one queued AttackHit action
// (spec §4.H steps 1-7).
func (r *Resolver) ResolveAttackHit(a actionstack.Action) HitResult {
	attackerSide, defenderSide := a.Attacker, a.Defender
	attacker := r.trainer(attackerSide)
	defender := r.trainer(defenderSide)

	atk := attacker.ActiveCreature()
	def := defender.ActiveCreature()

	if atk == nil || atk.IsFainted() {
		r.actionFailed(attackerSide, command.ReasonPokemonFainted)
		return HitResult{}
	}
	if def == nil || def.IsFainted() {
		r.actionFailed(attackerSide, command.ReasonNoEnemyPresent)
		return HitResult{}
	}

	if a.HitIndex == 0 {
		if result, stop := r.checkPreconditions(attackerSide, atk, a.Move); stop {
			return result
		}
	}

	moveID := a.Move
	slotIdx := atk.FindMoveSlot(moveID)
	if moveID != data.StruggleID {
		if slotIdx == -1 || atk.Moves[slotIdx].PP <= 0 {
			moveID = data.StruggleID
		} else {
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdRestorePP, Side: attackerSide, Slot: slotIdx, Amount: -1}})
		}
	}
	move := data.MoveOf(moveID)

	if a.HitIndex == 0 {
		r.emit(attackerSide, command.Event{Kind: command.EventMoveUsed, Species: atk.Species, Move: moveID})
	}

	if hasEffect(move, data.EffectMirrorMove) || hasEffect(move, data.EffectMetronome) {
		substituted, ok := r.substituteMove(defenderSide, move)
		if !ok {
			r.actionFailed(attackerSide, command.ReasonMoveFailedToExecute)
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetLastMove, Side: attackerSide, Move: moveID}})
			r.Stack.RemoveFrontMatchingMove(attackerSide, moveID)
			return HitResult{}
		}
		moveID = substituted.ID
		move = substituted
	}

	sureHit := hasEffect(move, data.EffectSureHit)
	var hit bool
	if hasEffect(move, data.EffectOHKO) {
		hit = r.ohkoHitCheck(atk, def)
	} else {
		hit = sureHit || statengine.HitCheck(move.Accuracy, move.HasAccuracy, attacker.Stage(data.StatAccuracy), defender.Stage(data.StatEvasion), r.RNG.Next("accuracy"))
	}
	if !hit {
		r.emit(attackerSide, command.Event{Kind: command.EventMoveMissed, Species: def.Species, Move: moveID})
		r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetLastMove, Side: attackerSide, Move: moveID}})
		r.Stack.RemoveFrontMatchingMove(attackerSide, moveID)
		return HitResult{}
	}

	r.emit(attackerSide, command.Event{Kind: command.EventMoveHit, Species: atk.Species, Move: moveID})

	result := r.applyDamageAndEffects(attackerSide, defenderSide, atk, def, move)

	r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetLastMove, Side: attackerSide, Move: moveID}})

	if len(result.FaintedSides) == 0 {
		r.queueNextMultiHit(attackerSide, defenderSide, moveID, move, a.HitIndex)
	}
	return result
}

// queueNextMultiHit implements spec §4.H step 5's MultiHit(guaranteed, chance):
// once a hit completes successfully (landed, didn't faint the target), the
// next hit up to guaranteed_hits is unconditional; beyond that, up to the
// move's hit ceiling, each further hit requires a fresh continuation roll.
func (r *Resolver) queueNextMultiHit(attackerSide, defenderSide int, moveID data.MoveID, move data.Move, hitIndex int) {
	mh, ok := findEffect(move, data.EffectMultiHit)
	if !ok {
		return
	}
	nextIndex := hitIndex + 1
	switch {
	case nextIndex < mh.Min:
		r.Stack.PushFront(actionstack.Action{Kind: actionstack.ActionAttackHit, Attacker: attackerSide, Defender: defenderSide, Move: moveID, HitIndex: nextIndex})
	case mh.Max > mh.Min && nextIndex < mh.Max && r.chance(mh.Chance, "multihit-continue"):
		r.Stack.PushFront(actionstack.Action{Kind: actionstack.ActionAttackHit, Attacker: attackerSide, Defender: defenderSide, Move: moveID, HitIndex: nextIndex})
	}
}

// ohkoHitCheck implements spec §4.H step 2's OHKO-specific accuracy rule:
// the move fails outright if the attacker's level is below the defender's
// (no roll consumed), otherwise it hits on a draw of 30 + (atk_lvl -
// def_lvl) or lower.
func (r *Resolver) ohkoHitCheck(atk, def *entity.Creature) bool {
	if atk.Level < def.Level {
		return false
	}
	threshold := 30 + (atk.Level - def.Level)
	return int(r.RNG.Next("accuracy")) <= threshold
}

// substituteMove implements spec §4.H step 5's MirrorMove/Metronome
// substitution: MirrorMove copies the defending side's last used move,
// failing if there is none or if that last move was itself MirrorMove.
// Metronome picks from the full move table, excluding Struggle (not a real
// selectable move) and the two meta-moves themselves (to keep selection
// from being self-referential). The pick is pool[(draw-1) mod len(pool)]
// for one draw in [1,100], so it is uniform only when len(pool) divides
// 100; otherwise moves early in the pool are picked slightly more often.
func (r *Resolver) substituteMove(defenderSide int, move data.Move) (data.Move, bool) {
	if hasEffect(move, data.EffectMirrorMove) {
		last := r.trainer(defenderSide).LastMove
		if last == "" || last == move.ID {
			return data.Move{}, false
		}
		return data.MoveOf(last), true
	}

	var pool []data.Move
	for _, m := range data.AllMoves() {
		if m.ID == data.StruggleID || hasEffect(m, data.EffectMirrorMove) || hasEffect(m, data.EffectMetronome) {
			continue
		}
		pool = append(pool, m)
	}
	if len(pool) == 0 {
		return data.Move{}, false
	}
	idx := int(r.RNG.Next("metronome-select")-1) % len(pool)
	return pool[idx], true
}

func hasEffect(move data.Move, kind data.EffectKind) bool {
	for _, e := range move.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func findEffect(move data.Move, kind data.EffectKind) (data.Effect, bool) {
	for _, e := range move.Effects {
		if e.Kind == kind {
			return e, true
		}
	}
	return data.Effect{}, false
}

// checkPreconditions implements spec §4.H step 1: conditions checked only
// on the first hit of a sequence. It returns (result, true) if the action
// should stop here.
func (r *Resolver) checkPreconditions(side int, atk *entity.Creature, chosenMove data.MoveID) (HitResult, bool) {
	tr := r.trainer(side)

	switch atk.Status.Kind {
	case data.StatusSleep:
		if atk.Status.Turns > 0 {
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetStatus, Side: side, Status: entity.PrimaryStatus{Kind: data.StatusSleep, Turns: atk.Status.Turns - 1}}})
			r.actionFailed(side, command.ReasonIsAsleep)
			return HitResult{}, true
		}
		r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetStatus, Side: side, Status: entity.PrimaryStatus{Kind: data.StatusNone}}})
	case data.StatusFreeze:
		if r.RNG.Next("freeze-thaw") <= freezeThawChance {
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdSetStatus, Side: side, Status: entity.PrimaryStatus{Kind: data.StatusNone}}})
			break
		}
		r.actionFailed(side, command.ReasonIsFrozen)
		return HitResult{}, true
	case data.StatusParalysis:
		if r.RNG.Next("paralysis") < 25 {
			r.actionFailed(side, command.ReasonIsParalyzedFullyImmobilized)
			return HitResult{}, true
		}
	}

	if inst, ok := tr.Conditions.Get(data.ConditionDisabled); ok && inst.DisabledMove == chosenMove {
		r.actionFailed(side, command.ReasonDisabled)
		return HitResult{}, true
	}

	if tr.Conditions.Has(data.ConditionFlinched) {
		r.actionFailed(side, command.ReasonIsFlinching)
		return HitResult{}, true
	}
	if tr.Conditions.Has(data.ConditionExhausted) {
		r.actionFailed(side, command.ReasonIsExhausted)
		return HitResult{}, true
	}
	if tr.Conditions.Has(data.ConditionConfused) {
		roll := r.RNG.Next("confusion-self-hit")
		if roll < 50 {
			level := atk.Level
			randomFactor := statengine.DamageRandomFactor(r.RNG.Next("confusion-damage-roll"))
			selfDamage := statengine.ConfusionSelfDamage(level, atk.Stats.Attack, atk.Stats.Defense, randomFactor)
			r.Exec.ExecuteAll([]command.Command{{Kind: command.CmdDealDamage, Side: side, Amount: selfDamage}})
			fainted := atk.IsFainted()
			res := HitResult{}
			if fainted {
				res.FaintedSides = []int{side}
			}
			return res, true
		}
	}
	return HitResult{}, false
}
