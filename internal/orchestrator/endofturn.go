package orchestrator

import (
	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	v := (a + b - 1) / b
	if v < 1 {
		v = 1
	}
	return v
}

// runEndOfTurn implements spec §4.I phase 4: status ticks (poison, burn,
// seed, trap), then condition ticks, then team-screen ticks. Any faint a
// tick causes is rewarded immediately, same as a move-phase faint.
func (o *Orchestrator) runEndOfTurn(exec *command.Executor) {
	for side := 0; side < 2; side++ {
		o.tickStatusDamage(side, exec)
	}
	for side := 0; side < 2; side++ {
		o.tickSeed(side, exec)
	}
	for side := 0; side < 2; side++ {
		o.tickTrap(side, exec)
	}
	for side := 0; side < 2; side++ {
		o.tickConditions(side, exec)
		o.tickScreens(side, exec)
	}
}

// tickStatusDamage applies Poison and Burn end-of-turn damage (spec §4.I:
// "Poison deals ⌈max_hp/16⌉ per turn; Burn deals ⌈max_hp/16⌉").
func (o *Orchestrator) tickStatusDamage(side int, exec *command.Executor) {
	tr := o.Sides[side]
	c := tr.ActiveCreature()
	if c == nil || c.IsFainted() {
		return
	}
	switch c.Status.Kind {
	case data.StatusPoison, data.StatusBurn:
		dmg := ceilDiv(c.MaxHP(), 16)
		o.dealStatusDamage(side, c, dmg, exec)
	}
}

// tickSeed implements spec §4.I: "Seeded drains ⌈max_hp/8⌉ from the seeded
// side and heals the opposing active by the same (capped by the
// opponent's deficit, and no healing if the opponent is fainted)."
func (o *Orchestrator) tickSeed(side int, exec *command.Executor) {
	tr := o.Sides[side]
	if !tr.Conditions.Has(data.ConditionSeeded) {
		return
	}
	c := tr.ActiveCreature()
	if c == nil || c.IsFainted() {
		return
	}

	drain := ceilDiv(c.MaxHP(), 8)
	before := c.CurrentHP
	o.dealStatusDamage(side, c, drain, exec)
	actual := before - c.CurrentHP

	opp := o.Sides[1-side]
	oc := opp.ActiveCreature()
	if oc == nil || oc.IsFainted() || actual <= 0 {
		return
	}
	deficit := oc.MaxHP() - oc.CurrentHP
	heal := actual
	if heal > deficit {
		heal = deficit
	}
	if heal <= 0 {
		return
	}
	exec.ExecuteAll([]command.Command{
		{Kind: command.CmdHealCreature, Side: 1 - side, Amount: heal},
		{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventPokemonHealed, Side: 1 - side, Species: oc.Species, Amount: heal}},
	})
}

// tickTrap implements spec §4.I: "Trapped deals ⌈max_hp/16⌉ and decrements
// its counter." The counter decrement itself happens in tickConditions via
// the generic counted-volatile rule.
func (o *Orchestrator) tickTrap(side int, exec *command.Executor) {
	tr := o.Sides[side]
	if !tr.Conditions.Has(data.ConditionTrapped) {
		return
	}
	c := tr.ActiveCreature()
	if c == nil || c.IsFainted() {
		return
	}
	dmg := ceilDiv(c.MaxHP(), 16)
	o.dealVolatileStatusDamage(side, c, data.ConditionTrapped, dmg, exec)
}

func (o *Orchestrator) dealStatusDamage(side int, c *entity.Creature, amount int, exec *command.Executor) {
	statusKind := c.Status.Kind
	exec.ExecuteAll([]command.Command{{Kind: command.CmdDealDamage, Side: side, Amount: amount}})
	exec.ExecuteAll([]command.Command{{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventPokemonStatusDamage, Side: side, Species: c.Species, Status: statusKind, Amount: amount, Remaining: c.CurrentHP}}})
	if c.IsFainted() {
		exec.ExecuteAll([]command.Command{{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventPokemonFainted, Side: side, Species: c.Species}}})
		o.handleFaints([]int{side}, exec)
	}
}

func (o *Orchestrator) dealVolatileStatusDamage(side int, c *entity.Creature, kind data.ConditionKind, amount int, exec *command.Executor) {
	exec.ExecuteAll([]command.Command{{Kind: command.CmdDealDamage, Side: side, Amount: amount}})
	exec.ExecuteAll([]command.Command{{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventStatusDamage, Side: side, Species: c.Species, Condition: kind, Amount: amount, Remaining: c.CurrentHP}}})
	if c.IsFainted() {
		exec.ExecuteAll([]command.Command{{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventPokemonFainted, Side: side, Species: c.Species}}})
		o.handleFaints([]int{side}, exec)
	}
}

// tickConditions implements spec §4.I "Condition ticks via
// tick_active_conditions": one-turn volatiles cleared, counted volatiles
// decremented or removed, emitting ConditionExpired for each.
func (o *Orchestrator) tickConditions(side int, exec *command.Executor) {
	tr := o.Sides[side]
	expired := tr.Conditions.TickEndOfTurn()
	for _, kind := range expired {
		exec.ExecuteAll([]command.Command{{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventConditionExpired, Side: side, Condition: kind}}})
	}
}

// tickScreens decrements team screens, emitting TeamConditionExpired for
// any that run out.
func (o *Orchestrator) tickScreens(side int, exec *command.Executor) {
	tr := o.Sides[side]
	expired := tr.Screens.Tick()
	for _, kind := range expired {
		exec.ExecuteAll([]command.Command{{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventTeamConditionExpired, Side: side, Screen: kind}}})
	}
}

// checkWinAndReplacement implements spec §4.I "Win detection" and phase 5:
// a side with no non-fainted creatures loses (simultaneous exhaustion is a
// Draw); otherwise any side whose active slot now needs a replacement
// moves the game state into the matching waiting sub-state.
func (o *Orchestrator) checkWinAndReplacement(exec *command.Executor) {
	if o.isTerminal() {
		return
	}

	fightable0 := o.Sides[0].HasFightableCreature()
	fightable1 := o.Sides[1].HasFightableCreature()

	switch {
	case !fightable0 && !fightable1:
		exec.ExecuteAll([]command.Command{
			{Kind: command.CmdSetGameState, GameState: command.Draw},
			{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventBattleEnded, Winner: -1}},
		})
		return
	case !fightable0:
		exec.ExecuteAll([]command.Command{
			{Kind: command.CmdSetGameState, GameState: command.P2Win},
			{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventPlayerDefeated, Side: 0}},
			{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventBattleEnded, Winner: 1}},
		})
		return
	case !fightable1:
		exec.ExecuteAll([]command.Command{
			{Kind: command.CmdSetGameState, GameState: command.P1Win},
			{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventPlayerDefeated, Side: 1}},
			{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventBattleEnded, Winner: 0}},
		})
		return
	}

	needs0 := o.Sides[0].NeedsReplacement()
	needs1 := o.Sides[1].NeedsReplacement()
	switch {
	case needs0 && needs1:
		exec.ExecuteAll([]command.Command{{Kind: command.CmdSetGameState, GameState: command.WaitingForBothReplacements}})
	case needs0:
		exec.ExecuteAll([]command.Command{{Kind: command.CmdSetGameState, GameState: command.WaitingForPlayer1Replacement}})
	case needs1:
		exec.ExecuteAll([]command.Command{{Kind: command.CmdSetGameState, GameState: command.WaitingForPlayer2Replacement}})
	default:
		exec.ExecuteAll([]command.Command{{Kind: command.CmdSetGameState, GameState: command.WaitingForBothActions}})
	}
}

// SubmitReplacement resolves a forced replacement switch while the game
// state is one of the WaitingFor*Replacement sub-states (spec §4.I phase
// 5). It returns false if side is not actually awaiting a replacement or
// targetSlot names an empty/fainted creature.
func (o *Orchestrator) SubmitReplacement(side, targetSlot int) bool {
	if !o.sideAwaitingReplacement(side) {
		return false
	}
	tr := o.Sides[side]
	target := tr.Party[targetSlot]
	if target == nil || target.IsFainted() {
		return false
	}

	tr.Active = targetSlot
	o.Tracker.RecordActivePair(o.Sides[0].Active, o.Sides[1].Active)

	switch o.State {
	case command.WaitingForBothReplacements:
		if side == 0 {
			o.State = command.WaitingForPlayer2Replacement
		} else {
			o.State = command.WaitingForPlayer1Replacement
		}
	default:
		o.State = command.WaitingForBothActions
	}
	return true
}

func (o *Orchestrator) sideAwaitingReplacement(side int) bool {
	switch o.State {
	case command.WaitingForBothReplacements:
		return true
	case command.WaitingForPlayer1Replacement:
		return side == 0
	case command.WaitingForPlayer2Replacement:
		return side == 1
	default:
		return false
	}
}
