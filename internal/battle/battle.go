// Package battle implements the player façade (spec component 4.K): the
// high-level submit_action/auto_execute_if_ready surface that validates
// submitted actions against the current game state, caches them until
// both sides have acted, then drives the turn orchestrator and returns the
// accumulated events. Everything here is safe to drop into a JSON-over-
// stdio tool server or an interactive shell (spec §1 "deliberately out of
// scope" collaborators) without either caller needing to touch
// internal/orchestrator directly.
package battle

import (
	"creaturebattle/internal/behavior"
	"creaturebattle/internal/command"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/orchestrator"
	"creaturebattle/internal/rng"
)

// Re-exported so callers never need to import internal/command directly
// (spec §4.K: "the battle state is a value type"; GameState/BattleKind are
// named here by the façade, not by the orchestrator package that merely
// needs to assign them).
type (
	GameState  = command.GameState
	BattleKind = command.BattleKind
)

const (
	KindWild       = command.KindWild
	KindTrainer    = command.KindTrainer
	KindSafari     = command.KindSafari
	KindTournament = command.KindTournament

	WaitingForBothActions        = command.WaitingForBothActions
	TurnInProgress               = command.TurnInProgress
	WaitingForPlayer1Replacement = command.WaitingForPlayer1Replacement
	WaitingForPlayer2Replacement = command.WaitingForPlayer2Replacement
	WaitingForBothReplacements   = command.WaitingForBothReplacements
	P1Win                        = command.P1Win
	P2Win                        = command.P2Win
	Draw                         = command.Draw
)

// drawsPerTurn bounds how many RNG draws a single turn can consume. A
// multi-hit move, confusion self-hits, counter retaliation and a full
// end-of-turn tick can all draw in the same turn; this is a generous
// ceiling, not a tuned value.
const drawsPerTurn = 64

// TurnResult is what SubmitAction/AutoExecuteIfReady return once a turn has
// actually been driven (spec §4.K: "returns the accumulated events").
type TurnResult struct {
	Events []command.Event
	Turn   int
	State  GameState
}

// Battle is the façade's handle on one ongoing battle.
type Battle struct {
	ID    string
	Kind  BattleKind
	Sides [2]*entity.Trainer

	orch *orchestrator.Orchestrator

	pending  [2]*orchestrator.PlayerAction
	events   []command.Event
	seed     int64
	seedNext int64
}

// New starts a battle between t1 and t2 under kind, seeding production RNG
// from seed (tests construct an orchestrator directly and feed it a fixed
// rng.Stream instead of going through this constructor).
func New(id string, t1, t2 *entity.Trainer, kind BattleKind, seed int64) *Battle {
	return &Battle{
		ID:       id,
		Kind:     kind,
		Sides:    [2]*entity.Trainer{t1, t2},
		orch:     orchestrator.New([2]*entity.Trainer{t1, t2}, kind),
		seed:     seed,
		seedNext: seed,
	}
}

// CurrentGameState returns the battle's current top-level state.
func (b *Battle) CurrentGameState() GameState { return b.orch.State }

// CurrentTurn returns the current turn number.
func (b *Battle) CurrentTurn() int { return b.orch.Turn }

// BattleEnded reports whether the battle has reached a terminal state.
func (b *Battle) BattleEnded() bool {
	switch b.orch.State {
	case P1Win, P2Win, Draw:
		return true
	default:
		return false
	}
}

// Winner returns the winning side index, or -1 if the battle is a draw or
// still ongoing.
func (b *Battle) Winner() int {
	switch b.orch.State {
	case P1Win:
		return 0
	case P2Win:
		return 1
	default:
		return -1
	}
}

// EventsSince returns every event appended at or after index.
func (b *Battle) EventsSince(index int) []command.Event {
	if index < 0 || index > len(b.events) {
		index = len(b.events)
	}
	return b.events[index:]
}

// EventCount returns the number of events accumulated so far, the natural
// index to pass to a subsequent EventsSince call.
func (b *Battle) EventCount() int { return len(b.events) }

func (b *Battle) nextStream() *rng.Stream {
	seed := b.seedNext
	b.seedNext++
	return rng.NewSeededStream(seed, drawsPerTurn)
}

// SubmitAction validates and caches side's action for the upcoming turn
// (spec §4.K). If side was the last one needed, it drives the orchestrator
// immediately and returns the resulting TurnResult; otherwise ok is false
// and the caller should wait for the other side.
func (b *Battle) SubmitAction(side int, action orchestrator.PlayerAction) (TurnResult, bool, error) {
	if err := b.validate(side, action); err != nil {
		return TurnResult{}, false, err
	}
	b.pending[side] = &action

	if b.pending[0] == nil || b.pending[1] == nil {
		return TurnResult{}, false, nil
	}
	return b.drive(), true, nil
}

// AutoExecuteIfReady pulls an action from behaviors for any NPC side that
// has not yet submitted one, then drives the turn if both are now ready
// (spec §4.K "auto_execute_if_ready"). ok is false if a human side is still
// outstanding.
func (b *Battle) AutoExecuteIfReady(behaviors [2]behavior.Behavior) (TurnResult, bool) {
	for side := 0; side < 2; side++ {
		if b.pending[side] != nil {
			continue
		}
		if b.Sides[side].Policy != entity.PolicyNPC || behaviors[side] == nil {
			continue
		}
		action := behaviors[side].Decide(side, b.Sides)
		b.pending[side] = &action
	}
	if b.pending[0] == nil || b.pending[1] == nil {
		return TurnResult{}, false
	}
	return b.drive(), true
}

func (b *Battle) drive() TurnResult {
	pending := [2]orchestrator.PlayerAction{*b.pending[0], *b.pending[1]}
	b.pending[0], b.pending[1] = nil, nil

	events := b.orch.RunTurn(pending, b.nextStream())
	b.events = append(b.events, events...)
	return TurnResult{Events: events, Turn: b.orch.Turn, State: b.orch.State}
}

// SubmitReplacement resolves a forced replacement switch (spec §4.I phase
// 5); unlike SubmitAction, this takes effect immediately since a
// replacement is not batched against the other side's action.
func (b *Battle) SubmitReplacement(side, targetSlot int) error {
	if !b.orch.SubmitReplacement(side, targetSlot) {
		return ErrInvalidReplacement
	}
	return nil
}
