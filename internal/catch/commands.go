package catch

import (
	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

func validationReason(err error) command.ActionFailureReason {
	catchErr, ok := err.(Error)
	if !ok {
		return command.ReasonNone
	}
	switch catchErr.Reason {
	case ReasonInvalidBattleKind:
		return command.ReasonInvalidBattleKind
	case ReasonNoTargetCreature:
		return command.ReasonNoTargetCreature
	case ReasonTeamFull:
		return command.ReasonTeamFull
	case ReasonTargetFainted:
		return command.ReasonTargetFainted
	default:
		return command.ReasonNone
	}
}

// BuildAttemptCommands runs the full catch pipeline for one attempt (spec
// §4.L): validate, compute the rate, draw one roll, and return the
// commands the executor should apply. It never mutates state itself.
func BuildAttemptCommands(kind command.BattleKind, side int, requester, opponent *entity.Trainer, ball BallMultiplier, roll uint8) []command.Command {
	target, err := Validate(kind, requester, opponent)
	if err != nil {
		return []command.Command{{Kind: command.CmdEmitEvent, Event: command.Event{
			Kind: command.EventCatchFailed, Side: side, Reason: validationReason(err),
		}}}
	}

	rate := Rate(target, ball)
	attempted := command.Command{Kind: command.CmdEmitEvent, Event: command.Event{
		Kind: command.EventCatchAttempted, Side: side, Species: target.Species, Multiplier: rate,
	}}

	if !RollSuccess(rate, roll) {
		return []command.Command{attempted, {Kind: command.CmdEmitEvent, Event: command.Event{
			Kind: command.EventCatchFailed, Side: side, Species: target.Species, Reason: command.ReasonCatchRollFailed,
		}}}
	}

	return []command.Command{
		attempted,
		{Kind: command.CmdAttemptCatch, Side: side, NewSpecies: target.Species, OpponentSide: 1 - side},
		{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventCatchSucceeded, Side: side, Species: target.Species}},
	}
}

// InsertCaught constructs a fresh creature of species at level with default
// stats and learnset moves and places it in requester's first empty party
// slot (spec §4.L: "insert a freshly constructed creature ... into the
// first empty party slot"). Reports false if the party has no empty slot.
func InsertCaught(requester *entity.Trainer, species data.SpeciesID, level int) bool {
	slot := -1
	for i, c := range requester.Party {
		if c == nil {
			slot = i
			break
		}
	}
	if slot == -1 {
		return false
	}
	requester.Party[slot] = entity.NewCreature(data.SpeciesOf(species), level, entity.IVs{}, entity.EVs{})
	return true
}
