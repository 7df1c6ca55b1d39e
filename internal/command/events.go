package command

import "creaturebattle/internal/data"

// EventKind tags one entry in the turn-scoped observable event stream
// (spec §6 "Event stream"). Like Effect, this is a closed sum type
// expressed as a single struct with a kind tag rather than one Go type per
// variant, so the executor's event-emitting code stays a flat switch.
type EventKind uint8

const (
	EventTurnStarted EventKind = iota
	EventTurnEnded
	EventPokemonSwitched
	EventMoveUsed
	EventMoveHit
	EventMoveMissed
	EventCriticalHit
	EventDamageDealt
	EventSubstituteDamaged
	EventPokemonHealed
	EventPokemonFainted
	EventAttackTypeEffectiveness
	EventStatusApplied   // volatile
	EventStatusRemoved   // volatile
	EventStatusDamage    // volatile
	EventPokemonStatusApplied // primary
	EventPokemonStatusRemoved // primary
	EventPokemonStatusDamage  // primary
	EventConditionExpired
	EventTeamConditionApplied
	EventTeamConditionExpired
	EventStatStageChanged
	EventStatChangeBlocked
	EventActionFailed
	EventAnteIncreased
	EventCatchAttempted
	EventCatchSucceeded
	EventCatchFailed
	EventPlayerDefeated
	EventBattleEnded
)

// ActionFailureReason enumerates why an action produced no effect (spec
// §4.H step 1-2 and §7 "User-visible behavior").
type ActionFailureReason uint8

const (
	ReasonNone ActionFailureReason = iota
	ReasonPokemonFainted
	ReasonNoEnemyPresent
	ReasonIsAsleep
	ReasonIsFrozen
	ReasonIsFlinching
	ReasonIsExhausted
	ReasonIsParalyzedFullyImmobilized
	ReasonMissed
	ReasonNoPP
	ReasonDisabled
	ReasonInvalidBattleKind
	ReasonNoTargetCreature
	ReasonTeamFull
	ReasonTargetFainted
	ReasonCatchRollFailed
	ReasonMoveFailedToExecute
)

// Event is one entry appended to the turn-scoped event buffer. Only the
// fields relevant to Kind are populated. Every event references entities by
// side index and species id (spec §3 "Ownership"), never by pointer.
type Event struct {
	Kind EventKind

	Side int
	Slot int

	Species data.SpeciesID
	Move    data.MoveID

	Amount    int  // damage/heal amount, ante delta, etc.
	Remaining int  // HP remaining, turns remaining

	Multiplier float64 // type effectiveness

	Stat     data.StatKind
	OldStage int8
	NewStage int8

	Status    data.StatusKind
	Condition data.ConditionKind
	Screen    data.ScreenKind

	Reason ActionFailureReason

	// Winner is -1 for a draw, otherwise the winning side index. Only
	// meaningful on EventBattleEnded.
	Winner int
}
