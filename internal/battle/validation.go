package battle

import (
	"errors"

	"creaturebattle/internal/entity"
	"creaturebattle/internal/orchestrator"
)

// Action validation errors (spec §7 "Action validation errors"): returned
// as typed rejections from the façade, never propagated as events.
var (
	ErrWrongGameState     = errors.New("battle: action not valid in the current game state")
	ErrInvalidSide        = errors.New("battle: invalid side index")
	ErrEmptyMoveSlot      = errors.New("battle: move slot is empty")
	ErrInvalidSwitchSlot  = errors.New("battle: switch target is out of range")
	ErrSwitchToFainted    = errors.New("battle: cannot switch to a fainted creature")
	ErrSwitchToActive     = errors.New("battle: already active")
	ErrInvalidReplacement = errors.New("battle: invalid replacement slot for the side awaiting one")
)

// validate implements spec §4.K: "validates the action for the current
// game state (moves and switches forbidden in replacement waits, switches
// into fainted or active slots rejected, moves referencing empty or
// zero-PP slots rejected)". Zero-PP slots are deliberately NOT rejected
// here: spec §4.H step 2 has the resolver substitute Struggle for an empty
// clip, so a chosen move with 0 PP remaining is still a legal submission.
func (b *Battle) validate(side int, action orchestrator.PlayerAction) error {
	if side != 0 && side != 1 {
		return ErrInvalidSide
	}
	if b.orch.State != WaitingForBothActions {
		return ErrWrongGameState
	}

	tr := b.Sides[side]
	switch action.Kind {
	case orchestrator.ActionUseMove:
		if action.MoveSlot < 0 || action.MoveSlot >= entity.MaxMoveSlots {
			return ErrEmptyMoveSlot
		}
		active := tr.ActiveCreature()
		if active == nil || active.Moves[action.MoveSlot] == nil {
			return ErrEmptyMoveSlot
		}
	case orchestrator.ActionSwitchPokemon:
		if action.TargetSlot < 0 || action.TargetSlot >= entity.PartySize {
			return ErrInvalidSwitchSlot
		}
		if action.TargetSlot == tr.Active {
			return ErrSwitchToActive
		}
		target := tr.Party[action.TargetSlot]
		if target == nil || target.IsFainted() {
			return ErrSwitchToFainted
		}
	case orchestrator.ActionForfeit:
		// always legal.
	case orchestrator.ActionForcedMove:
		// engine-internal only; never a valid external submission.
		return ErrWrongGameState
	}
	return nil
}
