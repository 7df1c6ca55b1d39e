package entity_test

import (
	"testing"

	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
)

func testRegistry(t *testing.T) {
	t.Helper()
	moves := []data.Move{
		{ID: "tackle", Name: "Tackle", Type: data.TypeNormal, Category: data.CategoryPhysical, Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 35},
		{ID: "ember", Name: "Ember", Type: data.TypeFire, Category: data.CategorySpecial, Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 25},
		{ID: "growl", Name: "Growl", Type: data.TypeNormal, Category: data.CategoryStatus, MaxPP: 40},
		{ID: "rage", Name: "Rage", Type: data.TypeNormal, Category: data.CategoryPhysical, Power: 20, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 20},
		{ID: "scratch", Name: "Scratch", Type: data.TypeNormal, Category: data.CategoryPhysical, Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 35},
	}
	species := []data.Species{
		{
			ID: "testmon", Name: "Testmon", Types: []data.ElementalType{data.TypeFire},
			Base: data.BaseStats{HP: 39, Attack: 52, Defense: 43, SpecialAttack: 60, SpecialDefense: 50, Speed: 65},
			Learnset: []data.LearnsetEntry{
				{Level: 1, Moves: []data.MoveID{"tackle", "growl"}},
				{Level: 7, Moves: []data.MoveID{"ember"}},
				{Level: 16, Moves: []data.MoveID{"rage"}},
				{Level: 18, Moves: []data.MoveID{"scratch"}},
			},
			CatchRate: 45, Curve: data.CurveMediumSlow,
			Evolution: &data.Evolution{Method: data.EvolveLevel, Into: "testmon2", LevelReq: 16},
		},
		{
			ID: "testmon2", Name: "Testmon2", Types: []data.ElementalType{data.TypeFire},
			Base: data.BaseStats{HP: 58, Attack: 64, Defense: 58, SpecialAttack: 80, SpecialDefense: 65, Speed: 80},
		},
	}
	r, err := data.NewRegistry(species, moves)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	data.SetDefault(r)
}

func TestNewCreatureComputesStatsAndMoves(t *testing.T) {
	testRegistry(t)
	species := data.SpeciesOf("testmon")

	c := entity.NewCreature(species, 10, entity.IVs{}, entity.EVs{})

	if c.CurrentHP != c.Stats.HP {
		t.Errorf("CurrentHP = %d, want full HP %d", c.CurrentHP, c.Stats.HP)
	}
	if c.Stats.HP <= 0 {
		t.Errorf("Stats.HP = %d, want positive", c.Stats.HP)
	}
	if slot := c.FindMoveSlot("tackle"); slot == -1 {
		t.Error("level 10 Testmon should know Tackle (learned at level 1)")
	}
	if slot := c.FindMoveSlot("ember"); slot == -1 {
		t.Error("level 10 Testmon should know Ember (learned at level 7)")
	}
	if slot := c.FindMoveSlot("rage"); slot != -1 {
		t.Error("level 10 Testmon should not yet know Rage (learned at level 16)")
	}
}

func TestNewCreatureKeepsOnlyMostRecentFourMoves(t *testing.T) {
	testRegistry(t)
	species := data.SpeciesOf("testmon")

	c := entity.NewCreature(species, 20, entity.IVs{}, entity.EVs{})

	if slot := c.FindMoveSlot("tackle"); slot != -1 {
		t.Error("the oldest move should have been dropped once a fifth was learned")
	}
	if slot := c.FindMoveSlot("rage"); slot == -1 {
		t.Error("the most recently learned move should be present")
	}
}

func TestCreatureIsFaintedTracksStatus(t *testing.T) {
	testRegistry(t)
	species := data.SpeciesOf("testmon")
	c := entity.NewCreature(species, 10, entity.IVs{}, entity.EVs{})

	if c.IsFainted() {
		t.Fatal("freshly created creature should not be fainted")
	}
	c.CurrentHP = 0
	c.Status = entity.PrimaryStatus{Kind: data.StatusFaint}
	if !c.IsFainted() {
		t.Error("creature at 0 HP with Faint status should report IsFainted")
	}
}

func TestApplySpeciesPreservesHPFraction(t *testing.T) {
	testRegistry(t)
	base := data.SpeciesOf("testmon")
	evolved := data.SpeciesOf("testmon2")

	c := entity.NewCreature(base, 16, entity.IVs{}, entity.EVs{})
	c.CurrentHP = c.Stats.HP / 2

	c.ApplySpecies(evolved)

	if c.Species != "testmon2" {
		t.Errorf("Species = %q, want testmon2", c.Species)
	}
	if c.CurrentHP <= 0 || c.CurrentHP > c.Stats.HP {
		t.Errorf("CurrentHP = %d out of range for new max %d", c.CurrentHP, c.Stats.HP)
	}
}

func TestTrainerChangeStageClampsToSix(t *testing.T) {
	tr := entity.NewTrainer("t1", "Ash", entity.PolicyHuman)

	for i := 0; i < 10; i++ {
		tr.ChangeStage(data.StatAttack, 1)
	}
	if got := tr.Stage(data.StatAttack); got != entity.StageClamp {
		t.Errorf("Stage(Attack) = %d, want %d", got, entity.StageClamp)
	}

	for i := 0; i < 20; i++ {
		tr.ChangeStage(data.StatAttack, -1)
	}
	if got := tr.Stage(data.StatAttack); got != -entity.StageClamp {
		t.Errorf("Stage(Attack) = %d, want %d", got, -entity.StageClamp)
	}
}

func TestTrainerStageBackToZeroIsRemovedFromMap(t *testing.T) {
	tr := entity.NewTrainer("t1", "Ash", entity.PolicyHuman)
	tr.ChangeStage(data.StatDefense, 2)
	tr.ChangeStage(data.StatDefense, -2)

	if got := tr.Stage(data.StatDefense); got != 0 {
		t.Errorf("Stage(Defense) = %d, want 0", got)
	}
}

func TestTrainerNeedsReplacementWhenActiveFaintedButPartyAlive(t *testing.T) {
	testRegistry(t)
	species := data.SpeciesOf("testmon")
	tr := entity.NewTrainer("t1", "Ash", entity.PolicyHuman)
	tr.Party[0] = entity.NewCreature(species, 10, entity.IVs{}, entity.EVs{})
	tr.Party[0].Status = entity.PrimaryStatus{Kind: data.StatusFaint}
	tr.Party[0].CurrentHP = 0
	tr.Party[1] = entity.NewCreature(species, 10, entity.IVs{}, entity.EVs{})

	if !tr.NeedsReplacement() {
		t.Error("expected NeedsReplacement true: active fainted, bench has a fightable creature")
	}
}

func TestTrainerHasFightableCreatureFalseWhenAllFainted(t *testing.T) {
	testRegistry(t)
	species := data.SpeciesOf("testmon")
	tr := entity.NewTrainer("t1", "Ash", entity.PolicyHuman)
	tr.Party[0] = entity.NewCreature(species, 10, entity.IVs{}, entity.EVs{})
	tr.Party[0].Status = entity.PrimaryStatus{Kind: data.StatusFaint}
	tr.Party[0].CurrentHP = 0

	if tr.HasFightableCreature() {
		t.Error("expected HasFightableCreature false when the only party member has fainted")
	}
}
