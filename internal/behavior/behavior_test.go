package behavior_test

import (
	"testing"

	"creaturebattle/internal/behavior"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/orchestrator"
)

func setupRegistry(t *testing.T) {
	t.Helper()
	moves := []data.Move{
		{ID: "tackle", Name: "Tackle", Type: data.TypeNormal, Category: data.CategoryPhysical, Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 35},
		{ID: "superbolt", Name: "Superbolt", Type: data.TypeElectric, Category: data.CategorySpecial, Power: 90, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 15},
		{ID: "growl", Name: "Growl", Type: data.TypeNormal, Category: data.CategoryStatus, Accuracy: 100, HasAccuracy: true, MaxPP: 40,
			Effects: []data.Effect{{Kind: data.EffectStatChange, Target: data.TargetOpponent, Stat: data.StatAttack, Delta: -1, Chance: 100}}},
	}
	species := []data.Species{
		{ID: "sparkmon", Name: "Sparkmon", Types: []data.ElementalType{data.TypeElectric},
			Base:      data.BaseStats{HP: 60, Attack: 50, Defense: 50, SpecialAttack: 90, SpecialDefense: 50, Speed: 80},
			Learnset:  []data.LearnsetEntry{{Level: 1, Moves: []data.MoveID{"tackle", "superbolt", "growl"}}},
			CatchRate: 150, Curve: data.CurveMediumFast},
		{ID: "watermon", Name: "Watermon", Types: []data.ElementalType{data.TypeWater},
			Base:      data.BaseStats{HP: 80, Attack: 60, Defense: 60, SpecialAttack: 60, SpecialDefense: 60, Speed: 60},
			Learnset:  []data.LearnsetEntry{{Level: 1, Moves: []data.MoveID{"tackle"}}},
			CatchRate: 150, Curve: data.CurveMediumFast},
	}
	r, err := data.NewRegistry(species, moves)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	data.SetDefault(r)
}

func TestDecidePrefersSuperEffectiveDamagingMoveOverStatus(t *testing.T) {
	setupRegistry(t)
	a := entity.NewTrainer("a", "A", entity.PolicyNPC)
	a.Party[0] = entity.NewCreature(data.SpeciesOf("sparkmon"), 30, entity.IVs{}, entity.EVs{})
	b := entity.NewTrainer("b", "B", entity.PolicyHuman)
	b.Party[0] = entity.NewCreature(data.SpeciesOf("watermon"), 30, entity.IVs{}, entity.EVs{})
	sides := [2]*entity.Trainer{a, b}

	action := behavior.NewScoringBehavior().Decide(0, sides)
	if action.Kind != orchestrator.ActionUseMove {
		t.Fatalf("action.Kind = %v, want ActionUseMove", action.Kind)
	}
	if action.MoveSlot != 1 {
		t.Errorf("MoveSlot = %d, want 1 (superbolt: electric vs. water is super-effective and far stronger than tackle/growl)", action.MoveSlot)
	}
}

func TestDecideReturnsForfeitWhenNoActionIsValid(t *testing.T) {
	setupRegistry(t)
	a := entity.NewTrainer("a", "A", entity.PolicyNPC)
	a.Party[0] = entity.NewCreature(data.SpeciesOf("sparkmon"), 30, entity.IVs{}, entity.EVs{})
	a.Party[0].CurrentHP = 0
	a.Party[0].Status = entity.PrimaryStatus{Kind: data.StatusFaint}
	b := entity.NewTrainer("b", "B", entity.PolicyHuman)
	b.Party[0] = entity.NewCreature(data.SpeciesOf("watermon"), 30, entity.IVs{}, entity.EVs{})
	sides := [2]*entity.Trainer{a, b}

	action := behavior.NewScoringBehavior().Decide(0, sides)
	if action.Kind != orchestrator.ActionForfeit {
		t.Errorf("action.Kind = %v, want ActionForfeit when every active creature has fainted", action.Kind)
	}
}

func TestDecideReplacementPicksALivingPartyMember(t *testing.T) {
	setupRegistry(t)
	a := entity.NewTrainer("a", "A", entity.PolicyNPC)
	a.Party[0] = entity.NewCreature(data.SpeciesOf("sparkmon"), 30, entity.IVs{}, entity.EVs{})
	a.Party[0].CurrentHP = 0
	a.Party[0].Status = entity.PrimaryStatus{Kind: data.StatusFaint}
	a.Party[1] = entity.NewCreature(data.SpeciesOf("watermon"), 30, entity.IVs{}, entity.EVs{})
	b := entity.NewTrainer("b", "B", entity.PolicyHuman)
	b.Party[0] = entity.NewCreature(data.SpeciesOf("watermon"), 30, entity.IVs{}, entity.EVs{})
	sides := [2]*entity.Trainer{a, b}

	slot := behavior.NewScoringBehavior().DecideReplacement(0, sides)
	if slot != 1 {
		t.Errorf("DecideReplacement() = %d, want 1 (the only living party member)", slot)
	}
}

func TestValidActionsExcludesActiveSlotAndFaintedSlots(t *testing.T) {
	setupRegistry(t)
	a := entity.NewTrainer("a", "A", entity.PolicyNPC)
	a.Party[0] = entity.NewCreature(data.SpeciesOf("sparkmon"), 30, entity.IVs{}, entity.EVs{})
	a.Party[1] = entity.NewCreature(data.SpeciesOf("watermon"), 30, entity.IVs{}, entity.EVs{})
	a.Party[1].CurrentHP = 0
	a.Party[1].Status = entity.PrimaryStatus{Kind: data.StatusFaint}
	a.Party[2] = entity.NewCreature(data.SpeciesOf("watermon"), 30, entity.IVs{}, entity.EVs{})
	b := entity.NewTrainer("b", "B", entity.PolicyHuman)
	b.Party[0] = entity.NewCreature(data.SpeciesOf("watermon"), 30, entity.IVs{}, entity.EVs{})
	sides := [2]*entity.Trainer{a, b}

	actions := behavior.ValidActions(0, sides)
	for _, act := range actions {
		if act.Kind == orchestrator.ActionSwitchPokemon && act.TargetSlot != 2 {
			t.Errorf("unexpected switch target %d; only slot 2 is a living non-active party member", act.TargetSlot)
		}
	}
}
