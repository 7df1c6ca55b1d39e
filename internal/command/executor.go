package command

import (
	"fmt"

	"creaturebattle/internal/actionstack"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

// Executor applies atomic commands against the two sides of a battle,
// mutating trainer/creature state and appending to the turn-scoped event
// buffer (spec §4.F). It is the only component that mutates B/C/D-owned
// state; everything upstream of it (effect resolver, orchestrator) only
// ever produces Command values.
type Executor struct {
	Sides [2]*entity.Trainer
	Stack *actionstack.Stack
	State *GameState
	Turn  *int

	events []Event
}

// NewExecutor builds an Executor over the given sides, action stack and
// shared game-state/turn-counter cells.
func NewExecutor(sides [2]*entity.Trainer, stack *actionstack.Stack, state *GameState, turn *int) *Executor {
	return &Executor{Sides: sides, Stack: stack, State: state, Turn: turn}
}

// Events returns every event emitted since the last call to ClearEvents.
func (e *Executor) Events() []Event {
	return e.events
}

// ClearEvents empties the event buffer, called at the start of each turn.
func (e *Executor) ClearEvents() {
	e.events = nil
}

// ExecuteAll applies cmds in order. Commands that cascade (AwardExperience,
// LevelUp) have their follow-on commands put at the front of the queue, so
// a LevelUp emitted by AwardExperience runs, in ascending level order,
// before anything queued after the original AwardExperience call.
func (e *Executor) ExecuteAll(cmds []Command) {
	queue := append([]Command{}, cmds...)
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		follow := e.apply(cmd)
		queue = append(append([]Command{}, follow...), queue...)
	}
}

func (e *Executor) creature(side, slot int) *entity.Creature {
	c := e.Sides[side].Party[slot]
	if c == nil {
		panic(fmt.Sprintf("command: no creature in side %d slot %d", side, slot))
	}
	return c
}

func (e *Executor) apply(cmd Command) []Command {
	switch cmd.Kind {
	case CmdSetGameState:
		*e.State = cmd.GameState

	case CmdIncrementTurn:
		*e.Turn++

	case CmdClearActionQueue:
		*e.Stack = actionstack.Stack{}

	case CmdDealDamage:
		side := e.Sides[cmd.Side]
		c := side.ActiveCreature()
		if c == nil {
			panic("command: DealDamage on empty active slot")
		}
		c.CurrentHP -= cmd.Amount
		if c.CurrentHP < 0 {
			c.CurrentHP = 0
		}
		if c.CurrentHP == 0 {
			c.Status = entity.PrimaryStatus{Kind: data.StatusFaint}
			side.ClearVolatiles()
		}

	case CmdHealCreature:
		side := e.Sides[cmd.Side]
		c := side.ActiveCreature()
		if c == nil {
			panic("command: HealCreature on empty active slot")
		}
		c.CurrentHP += cmd.Amount
		if c.CurrentHP > c.MaxHP() {
			c.CurrentHP = c.MaxHP()
		}

	case CmdSetStatus:
		c := e.Sides[cmd.Side].ActiveCreature()
		if c == nil {
			panic("command: SetStatus on empty active slot")
		}
		c.Status = cmd.Status

	case CmdFaint:
		side := e.Sides[cmd.Side]
		c := side.ActiveCreature()
		if c == nil {
			panic("command: Faint on empty active slot")
		}
		c.CurrentHP = 0
		c.Status = entity.PrimaryStatus{Kind: data.StatusFaint}
		side.ClearVolatiles()

	case CmdRestorePP:
		c := e.Sides[cmd.Side].ActiveCreature()
		if c == nil {
			panic("command: RestorePP on empty active slot")
		}
		slot := c.Moves[cmd.Slot]
		if slot == nil {
			panic("command: RestorePP on empty move slot")
		}
		slot.PP += cmd.Amount
		if slot.PP > slot.MaxPP {
			slot.PP = slot.MaxPP
		}
		if slot.PP < 0 {
			slot.PP = 0
		}

	case CmdChangeStatStage:
		e.Sides[cmd.Side].ChangeStage(cmd.Stat, cmd.Delta)

	case CmdAddCondition:
		e.Sides[cmd.Side].Conditions.Add(cmd.ConditionInstance)

	case CmdRemoveCondition:
		e.Sides[cmd.Side].Conditions.Remove(cmd.ConditionKind)

	case CmdAddTeamScreen:
		e.Sides[cmd.Side].Screens.Add(cmd.ScreenKind, cmd.Turns)

	case CmdRemoveTeamScreen:
		e.Sides[cmd.Side].Screens.Remove(cmd.ScreenKind)

	case CmdSetLastMove:
		e.Sides[cmd.Side].LastMove = cmd.Move

	case CmdSwitchActive:
		side := e.Sides[cmd.Side]
		target := side.Party[cmd.NewActiveSlot]
		if target == nil || target.IsFainted() {
			panic("command: switch to an empty or fainted slot")
		}
		side.Active = cmd.NewActiveSlot

	case CmdEmitEvent:
		e.events = append(e.events, cmd.Event)

	case CmdPushAction:
		if cmd.PushFront {
			e.Stack.PushFront(cmd.PushedAction)
		} else {
			e.Stack.PushBack(cmd.PushedAction)
		}

	case CmdAwardExperience:
		return e.awardExperience(cmd)

	case CmdDistributeEVs:
		c := e.creature(cmd.Side, cmd.Slot)
		c.EVs.Add(cmd.EVYield)

	case CmdLevelUp:
		return e.levelUp(cmd)

	case CmdLearnMove:
		c := e.creature(cmd.Side, cmd.Slot)
		slot := cmd.ReplaceSlot
		if slot < 0 {
			if empty := c.FirstEmptySlot(); empty >= 0 {
				slot = empty
			} else {
				slot = 2
			}
		}
		c.LearnMove(slot, cmd.Move)

	case CmdEvolve:
		c := e.creature(cmd.Side, cmd.Slot)
		c.ApplySpecies(data.SpeciesOf(cmd.NewSpecies))

	case CmdAttemptCatch:
		// The catch subsystem (component L) computes success/failure itself
		// and emits its own CatchAttempted/Succeeded/Failed events; this
		// case exists only so AttemptCatch is a recognized command kind for
		// callers that route it through the generic executor.

	default:
		panic(fmt.Sprintf("command: unhandled command kind %d", cmd.Kind))
	}
	return nil
}

// awardExperience advances each recipient's experience counter and expands
// into one CmdLevelUp per level threshold crossed, in ascending order
// (spec §4.J).
func (e *Executor) awardExperience(cmd Command) []Command {
	var cascade []Command
	for _, r := range cmd.Recipients {
		c := e.creature(r.Side, r.Slot)
		oldLevel := c.Level
		c.Experience += r.Amount
		species := data.SpeciesOf(c.Species)
		newLevel := data.LevelForExperience(species.Curve, c.Experience)
		if newLevel > 100 {
			newLevel = 100
		}
		for lvl := oldLevel + 1; lvl <= newLevel; lvl++ {
			cascade = append(cascade, Command{Kind: CmdLevelUp, Side: r.Side, Slot: r.Slot})
		}
	}
	return cascade
}

// levelUp bumps a creature's level by one, recomputes its stats, carries
// forward the HP gained (unless fainted), and cascades into LearnMove and
// Evolve commands as appropriate (spec §4.J).
func (e *Executor) levelUp(cmd Command) []Command {
	c := e.creature(cmd.Side, cmd.Slot)
	species := data.SpeciesOf(c.Species)

	oldMax := c.Stats.HP
	fainted := c.IsFainted()
	c.Level++
	c.Stats = entity.CalculateStats(species.Base, c.IVs, c.EVs, c.Level)
	if !fainted {
		c.CurrentHP += c.Stats.HP - oldMax
		if c.CurrentHP > c.Stats.HP {
			c.CurrentHP = c.Stats.HP
		}
	}

	var cascade []Command
	for _, move := range species.MovesLearnedAt(c.Level) {
		cascade = append(cascade, Command{Kind: CmdLearnMove, Side: cmd.Side, Slot: cmd.Slot, Move: move, ReplaceSlot: -1})
	}

	if species.CanEvolve() && species.Evolution.Method == data.EvolveLevel && c.Level >= species.Evolution.LevelReq {
		newSpecies := data.SpeciesOf(species.Evolution.Into)
		cascade = append(cascade, Command{Kind: CmdEvolve, Side: cmd.Side, Slot: cmd.Slot, NewSpecies: newSpecies.ID})
		for _, move := range newSpecies.MovesLearnedAt(c.Level) {
			cascade = append(cascade, Command{Kind: CmdLearnMove, Side: cmd.Side, Slot: cmd.Slot, Move: move, ReplaceSlot: -1})
		}
	}

	return cascade
}
