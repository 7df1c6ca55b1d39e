package orchestrator_test

import (
	"testing"

	"creaturebattle/internal/command"
	"creaturebattle/internal/condition"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/orchestrator"
	"creaturebattle/internal/rng"
)

func setupRegistry(t *testing.T) {
	t.Helper()
	moves := []data.Move{
		{ID: "tackle", Name: "Tackle", Type: data.TypeNormal, Category: data.CategoryPhysical, Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 35},
		{ID: "quickattack", Name: "Quick Attack", Type: data.TypeNormal, Category: data.CategoryPhysical, Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 30,
			Effects: []data.Effect{{Kind: data.EffectPriority, Amount: 1}}},
	}
	species := []data.Species{
		{ID: "slowmon", Name: "Slowmon", Types: []data.ElementalType{data.TypeNormal},
			Base:      data.BaseStats{HP: 100, Attack: 50, Defense: 50, SpecialAttack: 50, SpecialDefense: 50, Speed: 20},
			Learnset:  []data.LearnsetEntry{{Level: 1, Moves: []data.MoveID{"tackle"}}},
			CatchRate: 200, Curve: data.CurveMediumFast},
		{ID: "fastmon", Name: "Fastmon", Types: []data.ElementalType{data.TypeNormal},
			Base:      data.BaseStats{HP: 100, Attack: 50, Defense: 50, SpecialAttack: 50, SpecialDefense: 50, Speed: 100},
			Learnset:  []data.LearnsetEntry{{Level: 1, Moves: []data.MoveID{"tackle", "quickattack"}}},
			CatchRate: 200, Curve: data.CurveMediumFast},
	}
	r, err := data.NewRegistry(species, moves)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	data.SetDefault(r)
}

func newSides(t *testing.T) [2]*entity.Trainer {
	t.Helper()
	a := entity.NewTrainer("a", "A", entity.PolicyHuman)
	a.Party[0] = entity.NewCreature(data.SpeciesOf("slowmon"), 20, entity.IVs{}, entity.EVs{})
	b := entity.NewTrainer("b", "B", entity.PolicyHuman)
	b.Party[0] = entity.NewCreature(data.SpeciesOf("fastmon"), 20, entity.IVs{}, entity.EVs{})
	return [2]*entity.Trainer{a, b}
}

func findEvent(events []command.Event, kind command.EventKind) (command.Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return command.Event{}, false
}

func TestRunTurnOrdersFasterSideFirst(t *testing.T) {
	setupRegistry(t)
	sides := newSides(t)
	o := orchestrator.New(sides, command.KindTrainer)

	stream := rng.NewStream([]uint8{1, 1, 1, 1, 1, 1})
	pending := [2]orchestrator.PlayerAction{
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
	}
	events := o.RunTurn(pending, stream)

	var order []int
	for _, e := range events {
		if e.Kind == command.EventMoveUsed {
			order = append(order, e.Side)
		}
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 0 {
		t.Errorf("move-used order = %v, want [1 0] (fastmon acts first)", order)
	}
}

func TestRunTurnPriorityMoveActsBeforeFasterOpponent(t *testing.T) {
	setupRegistry(t)
	sides := newSides(t)
	// Give the slow side a priority move; it should still act first despite
	// having the lower effective speed (spec §4.I: tier beats speed).
	sides[0].Party[0].Moves[0] = &entity.MoveSlot{Move: "quickattack", PP: 30, MaxPP: 30}

	o := orchestrator.New(sides, command.KindTrainer)
	stream := rng.NewStream([]uint8{1, 1, 1, 1, 1, 1})
	pending := [2]orchestrator.PlayerAction{
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
	}
	events := o.RunTurn(pending, stream)

	var order []int
	for _, e := range events {
		if e.Kind == command.EventMoveUsed {
			order = append(order, e.Side)
		}
	}
	if len(order) != 2 || order[0] != 0 || order[1] != 1 {
		t.Errorf("move-used order = %v, want [0 1] (slow side's priority move goes first)", order)
	}
}

func TestRunTurnSwitchPhaseResetsStagesAndVolatiles(t *testing.T) {
	setupRegistry(t)
	sides := newSides(t)
	sides[0].Party[1] = entity.NewCreature(data.SpeciesOf("slowmon"), 20, entity.IVs{}, entity.EVs{})
	sides[0].ChangeStage(data.StatAttack, 2)
	sides[0].Conditions.Add(condition.Instance{Kind: data.ConditionFlinched})

	o := orchestrator.New(sides, command.KindTrainer)
	stream := rng.NewStream([]uint8{1, 1, 1, 1, 1, 1})
	pending := [2]orchestrator.PlayerAction{
		{Kind: orchestrator.ActionSwitchPokemon, TargetSlot: 1},
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
	}
	o.RunTurn(pending, stream)

	if sides[0].Active != 1 {
		t.Fatalf("Active = %d, want 1 after switching", sides[0].Active)
	}
	if sides[0].Stage(data.StatAttack) != 0 {
		t.Errorf("Attack stage = %d, want 0 after switch", sides[0].Stage(data.StatAttack))
	}
	if sides[0].Conditions.Has(data.ConditionFlinched) {
		t.Error("volatiles should be cleared on switch")
	}
}

func TestRunTurnForfeitEndsBattleImmediately(t *testing.T) {
	setupRegistry(t)
	sides := newSides(t)
	o := orchestrator.New(sides, command.KindTrainer)

	stream := rng.NewStream([]uint8{1, 1, 1, 1})
	pending := [2]orchestrator.PlayerAction{
		{Kind: orchestrator.ActionForfeit},
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
	}
	events := o.RunTurn(pending, stream)

	ev, ok := findEvent(events, command.EventBattleEnded)
	if !ok || ev.Winner != 1 {
		t.Fatalf("expected BattleEnded with Winner=1, got %+v (ok=%v)", ev, ok)
	}
	if o.State != command.P2Win {
		t.Errorf("State = %v, want P2Win", o.State)
	}
	if _, ok := findEvent(events, command.EventTurnEnded); ok {
		t.Error("a forfeit turn should not emit TurnEnded (phases 4-6 are skipped)")
	}
}

func TestRunTurnFaintTransitionsToReplacementWait(t *testing.T) {
	setupRegistry(t)
	sides := newSides(t)
	sides[0].Party[1] = entity.NewCreature(data.SpeciesOf("slowmon"), 20, entity.IVs{}, entity.EVs{})
	sides[0].Party[0].CurrentHP = 1

	o := orchestrator.New(sides, command.KindTrainer)
	// fastmon (side 1) acts first and one-shots slowmon's 1 remaining HP.
	stream := rng.NewStream([]uint8{1, 1, 1, 1, 1, 1})
	pending := [2]orchestrator.PlayerAction{
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
	}
	o.RunTurn(pending, stream)

	if o.State != command.WaitingForPlayer1Replacement {
		t.Fatalf("State = %v, want WaitingForPlayer1Replacement", o.State)
	}

	if ok := o.SubmitReplacement(0, 1); !ok {
		t.Fatal("SubmitReplacement returned false for a valid replacement")
	}
	if sides[0].Active != 1 {
		t.Errorf("Active = %d, want 1 after replacement", sides[0].Active)
	}
	if o.State != command.WaitingForBothActions {
		t.Errorf("State = %v, want WaitingForBothActions after the only pending replacement resolves", o.State)
	}
}

func TestRunTurnSimultaneousExhaustionIsADraw(t *testing.T) {
	setupRegistry(t)
	sides := newSides(t)
	sides[0].Party[0].CurrentHP = 1
	sides[1].Party[0].CurrentHP = 1
	sides[0].Conditions.Add(condition.Instance{Kind: data.ConditionSeeded})
	sides[1].Conditions.Add(condition.Instance{Kind: data.ConditionSeeded})

	o := orchestrator.New(sides, command.KindTrainer)
	stream := rng.NewStream([]uint8{1, 1, 1, 1, 1, 1})
	pending := [2]orchestrator.PlayerAction{
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
		{Kind: orchestrator.ActionUseMove, MoveSlot: 0},
	}
	o.RunTurn(pending, stream)

	if o.State != command.Draw {
		t.Errorf("State = %v, want Draw (both sides exhausted simultaneously)", o.State)
	}
}
