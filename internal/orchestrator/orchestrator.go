package orchestrator

import (
	"creaturebattle/internal/actionstack"
	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/effect"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/progression"
	"creaturebattle/internal/rng"
)

// Orchestrator owns one battle's long-lived turn-resolution state: both
// sides, the game-state machine, the turn counter and the participation
// tracker. A fresh action stack, executor, resolver and RNG stream are
// built per call to RunTurn (spec §4.D: "The turn orchestrator constructs
// one stream per turn").
type Orchestrator struct {
	Sides [2]*entity.Trainer
	Kind  command.BattleKind

	State command.GameState
	Turn  int

	Tracker *progression.Tracker
}

// New builds an Orchestrator for a fresh battle between sides[0] and
// sides[1], recording their starting active pair in the participation
// tracker (spec §3 "Participation tracker").
func New(sides [2]*entity.Trainer, kind command.BattleKind) *Orchestrator {
	tracker := progression.NewTracker()
	tracker.RecordActivePair(sides[0].Active, sides[1].Active)
	return &Orchestrator{
		Sides:   sides,
		Kind:    kind,
		State:   command.WaitingForBothActions,
		Turn:    1,
		Tracker: tracker,
	}
}

// RunTurn drives one full turn to completion (spec §4.I phases 1-6) given
// both sides' submitted actions and a turn-scoped RNG stream, and returns
// every event emitted during it.
func (o *Orchestrator) RunTurn(pending [2]PlayerAction, stream *rng.Stream) []command.Event {
	stack := &actionstack.Stack{}
	exec := command.NewExecutor(o.Sides, stack, &o.State, &o.Turn)
	resolver := effect.NewResolver(exec, stack, o.Sides, stream)

	exec.ClearEvents()
	exec.ExecuteAll([]command.Command{
		{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventTurnStarted}},
		{Kind: command.CmdSetGameState, GameState: command.TurnInProgress},
	})

	actions := [2]rankedEntry{
		buildEntry(0, o.Sides, resolveForced(o.Sides[0], pending[0])),
		buildEntry(1, o.Sides, resolveForced(o.Sides[1], pending[1])),
	}
	ranked := rankEntries(actions, stream)

	if o.runForfeits(ranked, exec) {
		return exec.Events()
	}

	o.runSwitches(ranked, exec)
	o.runMoves(ranked, stack, resolver, exec)

	if !o.isTerminal() {
		o.runEndOfTurn(exec)
		o.checkWinAndReplacement(exec)
	}

	exec.ExecuteAll([]command.Command{
		{Kind: command.CmdClearActionQueue},
		{Kind: command.CmdIncrementTurn},
		{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventTurnEnded}},
	})
	return exec.Events()
}

func (o *Orchestrator) isTerminal() bool {
	return o.State == command.P1Win || o.State == command.P2Win || o.State == command.Draw
}

// runForfeits implements spec §4.I phase 1: a forfeit ends the battle
// immediately, before any switch or move resolves.
func (o *Orchestrator) runForfeits(ranked []rankedEntry, exec *command.Executor) bool {
	for _, e := range ranked {
		if e.kind != entryForfeit {
			continue
		}
		winner := 1 - e.side
		exec.ExecuteAll([]command.Command{
			{Kind: command.CmdSetGameState, GameState: winState(winner)},
			{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventPlayerDefeated, Side: e.side}},
			{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventBattleEnded, Winner: winner}},
		})
		return true
	}
	return false
}

func winState(side int) command.GameState {
	if side == 0 {
		return command.P1Win
	}
	return command.P2Win
}

// runSwitches implements spec §4.I phase 2: clear volatiles and stages on
// the switching side, reject fainted targets and self-switches, set the
// new active index, and record the new active pairing.
func (o *Orchestrator) runSwitches(ranked []rankedEntry, exec *command.Executor) {
	for _, e := range ranked {
		if e.kind != entrySwitch {
			continue
		}
		o.performSwitch(e.side, e.targetSlot, exec)
	}
}

func (o *Orchestrator) performSwitch(side, targetSlot int, exec *command.Executor) {
	tr := o.Sides[side]
	target := tr.Party[targetSlot]
	if target == nil || target.IsFainted() || targetSlot == tr.Active {
		return
	}

	tr.ClearVolatiles()
	tr.ResetStages()
	exec.ExecuteAll([]command.Command{
		{Kind: command.CmdSwitchActive, Side: side, NewActiveSlot: targetSlot},
		{Kind: command.CmdEmitEvent, Event: command.Event{Kind: command.EventPokemonSwitched, Side: side, Slot: targetSlot, Species: target.Species}},
	})
	o.Tracker.RecordActivePair(o.Sides[0].Active, o.Sides[1].Active)
}

// runMoves implements spec §4.I phase 3: push every ranked move entry onto
// the action stack in order, then drain it front-first through the
// resolver, handling any faint it produces along the way.
func (o *Orchestrator) runMoves(ranked []rankedEntry, stack *actionstack.Stack, resolver *effect.Resolver, exec *command.Executor) {
	for _, e := range ranked {
		if e.kind != entryMove {
			continue
		}
		stack.PushBack(actionstack.Action{
			Kind:     actionstack.ActionAttackHit,
			Attacker: e.side,
			Defender: 1 - e.side,
			Move:     e.move,
		})
	}

	for {
		a, ok := stack.PopFront()
		if !ok {
			break
		}
		result := resolver.ResolveAttackHit(a)
		o.handleFaints(result.FaintedSides, exec)
	}
}

// handleFaints awards experience/EVs for each side that just fainted (spec
// §4.J), skipped entirely by progression.ComputeRewards's own rules
// (Tournament battles, NPC-owned opponents).
func (o *Orchestrator) handleFaints(faintedSides []int, exec *command.Executor) {
	for _, side := range faintedSides {
		slot := o.Sides[side].Active
		c := o.Sides[side].Party[slot]
		if c == nil {
			continue
		}
		species := data.SpeciesOf(c.Species)
		opponent := o.Sides[1-side]
		cmds := progression.ComputeRewards(o.Kind, side, slot, species, opponent, o.Tracker)
		exec.ExecuteAll(cmds)
	}
}
