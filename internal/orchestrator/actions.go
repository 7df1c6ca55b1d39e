// Package orchestrator drives one turn to completion (spec component 4.I):
// collecting the two submitted actions, overriding them with any
// condition-forced action, ranking by priority/speed, running the forfeit,
// switch and move phases, ticking end-of-turn effects, and deciding the
// next game state (replacement wait or terminal win/draw).
package orchestrator

import (
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/rng"
	"creaturebattle/internal/statengine"
)

// PlayerActionKind tags one submitted or synthesized action (spec §6
// "Action payloads").
type PlayerActionKind uint8

const (
	ActionUseMove PlayerActionKind = iota
	ActionForcedMove                // engine-internal only; synthesized by a condition override
	ActionSwitchPokemon
	ActionForfeit
)

// PlayerAction is one side's action for the turn.
type PlayerAction struct {
	Kind PlayerActionKind

	MoveSlot   int // UseMove: index into the creature's Moves array
	Move       data.MoveID // ForcedMove: the move being forced
	TargetSlot int // SwitchPokemon: party slot to switch into
}

// resolveForced overrides a side's submitted action when an active
// condition forces a specific move (spec §4.I "Collection phase"):
// Charging, Rampaging and Biding each inject ForcedMove{move = last_move}
// regardless of what was submitted.
func resolveForced(tr *entity.Trainer, submitted PlayerAction) PlayerAction {
	if tr.Conditions.Has(data.ConditionCharging) ||
		tr.Conditions.Has(data.ConditionRampaging) ||
		tr.Conditions.Has(data.ConditionBiding) {
		return PlayerAction{Kind: ActionForcedMove, Move: tr.LastMove}
	}
	return submitted
}

// entryKind tags one ranked turn entry's phase (spec §4.I "Ordering").
type entryKind uint8

const (
	entrySwitch entryKind = iota
	entryMove
	entryForfeit
)

// rankedEntry is one side's action, annotated with everything needed to
// order it against the other side's.
type rankedEntry struct {
	side int
	kind entryKind

	tier         int // forfeit=10, switch=6, move=0 (spec §4.I "Ordering")
	movePriority int
	speed        int

	move       data.MoveID
	targetSlot int
}

func tierOf(kind entryKind) int {
	switch kind {
	case entryForfeit:
		return 10
	case entrySwitch:
		return 6
	default:
		return 0
	}
}

// movePriorityOf reads the move's Priority effect, defaulting to 0 (spec
// §4.I: "Move priority is pulled from the move's Priority(p) effect,
// default 0").
func movePriorityOf(move data.Move) int {
	for _, e := range move.Effects {
		if e.Kind == data.EffectPriority {
			return e.Amount
		}
	}
	return 0
}

func effectiveSpeedOf(tr *entity.Trainer) int {
	c := tr.ActiveCreature()
	if c == nil {
		return 0
	}
	return statengine.EffectiveSpeed(c.Stats.Speed, tr.Stage(data.StatSpeed), c.Status.Kind == data.StatusParalysis)
}

func buildEntry(side int, sides [2]*entity.Trainer, action PlayerAction) rankedEntry {
	tr := sides[side]
	e := rankedEntry{side: side, speed: effectiveSpeedOf(tr)}

	switch action.Kind {
	case ActionForfeit:
		e.kind = entryForfeit
	case ActionSwitchPokemon:
		e.kind = entrySwitch
		e.targetSlot = action.TargetSlot
	case ActionForcedMove:
		e.kind = entryMove
		e.move = action.Move
		e.movePriority = movePriorityOf(data.MoveOf(action.Move))
	default: // ActionUseMove
		e.kind = entryMove
		c := tr.ActiveCreature()
		if c != nil && action.MoveSlot >= 0 && action.MoveSlot < entity.MaxMoveSlots && c.Moves[action.MoveSlot] != nil {
			e.move = c.Moves[action.MoveSlot].Move
		} else {
			e.move = data.StruggleID
		}
		e.movePriority = movePriorityOf(data.MoveOf(e.move))
	}
	e.tier = tierOf(e.kind)
	return e
}

// rankEntries orders the two sides' entries highest-first by (tier, move
// priority, effective speed), breaking ties by side index except for a
// genuine move-vs-move speed tie, which consumes one RNG draw (spec §4.I
// "Ordering").
func rankEntries(entries [2]rankedEntry, stream *rng.Stream) []rankedEntry {
	a, b := entries[0], entries[1]
	if aFirst(a, b, stream) {
		return []rankedEntry{a, b}
	}
	return []rankedEntry{b, a}
}

// aFirst reports whether a should resolve before b.
func aFirst(a, b rankedEntry, stream *rng.Stream) bool {
	if a.tier != b.tier {
		return a.tier > b.tier
	}
	if a.kind == entryMove && b.kind == entryMove && a.movePriority != b.movePriority {
		return a.movePriority > b.movePriority
	}
	if a.speed != b.speed {
		return a.speed > b.speed
	}
	if a.kind == entryMove && b.kind == entryMove {
		return stream.Next("speed-tie") <= 50
	}
	return a.side < b.side
}
