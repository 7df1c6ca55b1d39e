package battle_test

import (
	"testing"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/behavior"
	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/orchestrator"
)

func setupRegistry(t *testing.T) {
	t.Helper()
	moves := []data.Move{
		{ID: "tackle", Name: "Tackle", Type: data.TypeNormal, Category: data.CategoryPhysical, Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 35},
	}
	species := []data.Species{
		{ID: "basicmon", Name: "Basicmon", Types: []data.ElementalType{data.TypeNormal},
			Base:      data.BaseStats{HP: 100, Attack: 50, Defense: 50, SpecialAttack: 50, SpecialDefense: 50, Speed: 50},
			Learnset:  []data.LearnsetEntry{{Level: 1, Moves: []data.MoveID{"tackle"}}},
			CatchRate: 200, Curve: data.CurveMediumFast},
	}
	r, err := data.NewRegistry(species, moves)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	data.SetDefault(r)
}

func newTrainer(t *testing.T, name string, policy entity.PolicyTag) *entity.Trainer {
	t.Helper()
	tr := entity.NewTrainer(name, name, policy)
	tr.Party[0] = entity.NewCreature(data.SpeciesOf("basicmon"), 20, entity.IVs{}, entity.EVs{})
	return tr
}

func TestSubmitActionWaitsForBothSidesThenDrives(t *testing.T) {
	setupRegistry(t)
	a := newTrainer(t, "a", entity.PolicyHuman)
	b := newTrainer(t, "b", entity.PolicyHuman)
	bt := battle.New("bt1", a, b, battle.KindTrainer, 42)

	_, ok, err := bt.SubmitAction(0, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
	if err != nil {
		t.Fatalf("SubmitAction(0, ...): %v", err)
	}
	if ok {
		t.Fatal("expected ok=false after only one side has submitted")
	}

	result, ok, err := bt.SubmitAction(1, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
	if err != nil {
		t.Fatalf("SubmitAction(1, ...): %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true once both sides have submitted")
	}
	if len(result.Events) == 0 {
		t.Error("expected at least one event from the driven turn")
	}
	if bt.CurrentTurn() != 2 {
		t.Errorf("CurrentTurn() = %d, want 2 after one turn resolves", bt.CurrentTurn())
	}
}

func TestSubmitActionRejectsEmptyMoveSlot(t *testing.T) {
	setupRegistry(t)
	a := newTrainer(t, "a", entity.PolicyHuman)
	b := newTrainer(t, "b", entity.PolicyHuman)
	bt := battle.New("bt2", a, b, battle.KindTrainer, 1)

	_, _, err := bt.SubmitAction(0, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 3})
	if err != battle.ErrEmptyMoveSlot {
		t.Errorf("err = %v, want ErrEmptyMoveSlot", err)
	}
}

func TestSubmitActionRejectsSwitchToActiveSlot(t *testing.T) {
	setupRegistry(t)
	a := newTrainer(t, "a", entity.PolicyHuman)
	b := newTrainer(t, "b", entity.PolicyHuman)
	bt := battle.New("bt3", a, b, battle.KindTrainer, 1)

	_, _, err := bt.SubmitAction(0, orchestrator.PlayerAction{Kind: orchestrator.ActionSwitchPokemon, TargetSlot: 0})
	if err != battle.ErrSwitchToActive {
		t.Errorf("err = %v, want ErrSwitchToActive", err)
	}
}

func TestSubmitActionRejectedDuringReplacementWait(t *testing.T) {
	setupRegistry(t)
	a := newTrainer(t, "a", entity.PolicyHuman)
	a.Party[1] = entity.NewCreature(data.SpeciesOf("basicmon"), 20, entity.IVs{}, entity.EVs{})
	a.Party[0].CurrentHP = 1
	b := newTrainer(t, "b", entity.PolicyHuman)
	bt := battle.New("bt4", a, b, battle.KindTrainer, 7)

	for bt.CurrentGameState() == battle.WaitingForBothActions {
		_, ok, err := bt.SubmitAction(0, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
		if err != nil {
			t.Fatalf("SubmitAction(0): %v", err)
		}
		if ok {
			break
		}
		_, _, err = bt.SubmitAction(1, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
		if err != nil {
			t.Fatalf("SubmitAction(1): %v", err)
		}
	}

	if bt.CurrentGameState() != battle.WaitingForPlayer1Replacement {
		t.Fatalf("CurrentGameState() = %v, want WaitingForPlayer1Replacement", bt.CurrentGameState())
	}

	_, _, err := bt.SubmitAction(0, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
	if err != battle.ErrWrongGameState {
		t.Errorf("err = %v, want ErrWrongGameState while awaiting replacement", err)
	}

	if err := bt.SubmitReplacement(0, 1); err != nil {
		t.Fatalf("SubmitReplacement: %v", err)
	}
	if bt.CurrentGameState() != battle.WaitingForBothActions {
		t.Errorf("CurrentGameState() = %v, want WaitingForBothActions after the replacement resolves", bt.CurrentGameState())
	}
}

func TestAutoExecuteIfReadyPullsNPCAction(t *testing.T) {
	setupRegistry(t)
	a := newTrainer(t, "a", entity.PolicyHuman)
	b := newTrainer(t, "b", entity.PolicyNPC)
	bt := battle.New("bt5", a, b, battle.KindTrainer, 3)

	_, ok, err := bt.SubmitAction(0, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
	if err != nil {
		t.Fatalf("SubmitAction(0): %v", err)
	}
	if ok {
		t.Fatal("did not expect the turn to drive before the NPC side acts")
	}

	behaviors := [2]behavior.Behavior{nil, behavior.NewScoringBehavior()}
	result, ok := bt.AutoExecuteIfReady(behaviors)
	if !ok {
		t.Fatal("expected AutoExecuteIfReady to drive the turn once the NPC behavior supplies an action")
	}
	if len(result.Events) == 0 {
		t.Error("expected events from the auto-executed turn")
	}
}

func TestEventsSinceReturnsOnlyNewEvents(t *testing.T) {
	setupRegistry(t)
	a := newTrainer(t, "a", entity.PolicyHuman)
	b := newTrainer(t, "b", entity.PolicyHuman)
	bt := battle.New("bt6", a, b, battle.KindTrainer, 9)

	bt.SubmitAction(0, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
	bt.SubmitAction(1, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
	mark := bt.EventCount()

	bt.SubmitAction(0, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})
	bt.SubmitAction(1, orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: 0})

	fresh := bt.EventsSince(mark)
	if len(fresh) == 0 {
		t.Error("expected EventsSince to return the second turn's events")
	}
	var sawFirstTurnStart bool
	for i, e := range fresh {
		if e.Kind == command.EventTurnStarted && i == 0 {
			sawFirstTurnStart = true
		}
	}
	if !sawFirstTurnStart {
		t.Error("expected the second turn's events to begin with its own TurnStarted")
	}
}
