package command

import (
	"creaturebattle/internal/actionstack"
	"creaturebattle/internal/condition"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

// CommandKind tags one atomic state mutation (spec §4.F). Like Effect and
// Event, this is a closed sum type expressed as a tag plus generically
// named fields rather than one Go type per variant.
type CommandKind uint8

const (
	CmdSetGameState CommandKind = iota
	CmdIncrementTurn
	CmdClearActionQueue
	CmdDealDamage
	CmdHealCreature
	CmdSetStatus
	CmdFaint
	CmdRestorePP
	CmdChangeStatStage
	CmdAddCondition
	CmdRemoveCondition
	CmdAddTeamScreen
	CmdRemoveTeamScreen
	CmdSetLastMove
	CmdSwitchActive
	CmdEmitEvent
	CmdPushAction
	CmdAwardExperience
	CmdDistributeEVs
	CmdLevelUp
	CmdLearnMove
	CmdEvolve
	CmdAttemptCatch
)

// ExperienceAward is one (side, slot, amount) recipient entry for
// AwardExperience (spec §4.J).
type ExperienceAward struct {
	Side   int
	Slot   int
	Amount int
}

// Command is one atomic mutation the executor applies in sequence. Only
// the fields relevant to Kind are populated.
type Command struct {
	Kind CommandKind

	Side int // which trainer this command targets
	Slot int // which party slot, where applicable

	Amount int // damage/heal amount, restored PP, EV/XP amount

	Status entity.PrimaryStatus

	Stat  data.StatKind
	Delta int8

	ConditionInstance condition.Instance
	ConditionKind     data.ConditionKind

	ScreenKind data.ScreenKind
	Turns      int

	Move        data.MoveID
	ReplaceSlot int // -1 means "executor picks: first empty slot, else slot index 2"

	NewSpecies data.SpeciesID

	NewActiveSlot int

	GameState GameState

	Event Event

	PushedAction actionstack.Action
	PushFront    bool // true => actionstack.PushFront, false => PushBack

	Recipients []ExperienceAward
	EVYield    entity.EVs

	OpponentSide int // AttemptCatch target
}
