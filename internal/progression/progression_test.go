package progression_test

import (
	"testing"

	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/progression"
)

func setupRegistry(t *testing.T) {
	t.Helper()
	species := []data.Species{
		{
			ID: "smallmon", Name: "Smallmon", Types: []data.ElementalType{data.TypeNormal},
			Base:      data.BaseStats{HP: 30, Attack: 30, Defense: 30, SpecialAttack: 30, SpecialDefense: 30, Speed: 30},
			CatchRate: 255, Curve: data.CurveMediumFast,
			Evolution: &data.Evolution{Method: data.EvolveLevel, Into: "bigmon", LevelReq: 16},
		},
		{
			ID: "bigmon", Name: "Bigmon", Types: []data.ElementalType{data.TypeNormal},
			Base: data.BaseStats{HP: 110, Attack: 120, Defense: 90, SpecialAttack: 60, SpecialDefense: 60, Speed: 80},
			Evolution: &data.Evolution{Method: data.EvolveItem, Into: "megamon", ItemKind: "fire-stone"},
		},
		{
			ID: "megamon", Name: "Megamon", Types: []data.ElementalType{data.TypeFire},
			Base: data.BaseStats{HP: 120, Attack: 140, Defense: 100, SpecialAttack: 100, SpecialDefense: 100, Speed: 100},
		},
	}
	r, err := data.NewRegistry(species, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	data.SetDefault(r)
}

func TestBaseExperienceLowerForEvolvableSpecies(t *testing.T) {
	setupRegistry(t)
	evolvable := data.SpeciesOf("smallmon")
	final := data.SpeciesOf("bigmon")

	gotEvolvable := progression.BaseExperience(evolvable)
	gotFinal := progression.BaseExperience(final)

	wantEvolvable := int(float64(evolvable.Base.Total()) * 0.2)
	if gotEvolvable != wantEvolvable {
		t.Errorf("BaseExperience(smallmon) = %d, want %d", gotEvolvable, wantEvolvable)
	}
	if gotFinal <= 0 {
		t.Errorf("BaseExperience(bigmon) = %d, want positive", gotFinal)
	}
}

func TestEVYieldScalesWithBST(t *testing.T) {
	setupRegistry(t)
	small := progression.EVYield(data.SpeciesOf("smallmon"))
	big := progression.EVYield(data.SpeciesOf("bigmon"))

	sum := func(e entity.EVs) int {
		return e.HP + e.Attack + e.Defense + e.SpecialAttack + e.SpecialDefense + e.Speed
	}
	if sum(small) != 1 {
		t.Errorf("smallmon (BST=%d) EV total = %d, want 1", data.SpeciesOf("smallmon").Base.Total(), sum(small))
	}
	if sum(big) != 3 {
		t.Errorf("bigmon (BST=%d) EV total = %d, want 3", data.SpeciesOf("bigmon").Base.Total(), sum(big))
	}
	if big.Attack != 1 {
		t.Errorf("bigmon's highest stat is Attack, want it to receive an EV point, got %+v", big)
	}
}

func TestItemEvolutionTargetMatchesKind(t *testing.T) {
	setupRegistry(t)
	c := entity.NewCreature(data.SpeciesOf("bigmon"), 30, entity.IVs{}, entity.EVs{})

	if _, ok := progression.ItemEvolutionTarget(c, "water-stone"); ok {
		t.Error("ItemEvolutionTarget should not match a different item kind")
	}
	into, ok := progression.ItemEvolutionTarget(c, "fire-stone")
	if !ok || into != "megamon" {
		t.Errorf("ItemEvolutionTarget(fire-stone) = (%q, %v), want (megamon, true)", into, ok)
	}
}

func TestComputeRewardsSkipsTournamentAndNPCOpponent(t *testing.T) {
	setupRegistry(t)
	tracker := progression.NewTracker()
	tracker.RecordActivePair(0, 0)

	opponent := entity.NewTrainer("o", "Opponent", entity.PolicyHuman)
	opponent.Party[0] = entity.NewCreature(data.SpeciesOf("bigmon"), 10, entity.IVs{}, entity.EVs{})

	if cmds := progression.ComputeRewards(command.KindTournament, 0, 0, data.SpeciesOf("smallmon"), opponent, tracker); cmds != nil {
		t.Errorf("Tournament battles should never award rewards, got %+v", cmds)
	}

	npcOpponent := entity.NewTrainer("o2", "NPC", entity.PolicyNPC)
	npcOpponent.Party[0] = entity.NewCreature(data.SpeciesOf("bigmon"), 10, entity.IVs{}, entity.EVs{})
	tracker2 := progression.NewTracker()
	tracker2.RecordActivePair(0, 0)
	if cmds := progression.ComputeRewards(command.KindWild, 0, 0, data.SpeciesOf("smallmon"), npcOpponent, tracker2); cmds != nil {
		t.Errorf("an NPC-controlled opponent should never receive rewards, got %+v", cmds)
	}
}

func TestComputeRewardsSplitsExperienceAmongEligibleRecipients(t *testing.T) {
	setupRegistry(t)
	tracker := progression.NewTracker()

	opponent := entity.NewTrainer("o", "Opponent", entity.PolicyHuman)
	opponent.Party[0] = entity.NewCreature(data.SpeciesOf("bigmon"), 10, entity.IVs{}, entity.EVs{})
	opponent.Party[1] = entity.NewCreature(data.SpeciesOf("bigmon"), 10, entity.IVs{}, entity.EVs{})
	opponent.Active = 0

	// Both of the opponent's creatures faced our fainted slot 0.
	tracker.RecordActivePair(0, 0)
	tracker.RecordActivePair(0, 1)

	cmds := progression.ComputeRewards(command.KindWild, 0, 0, data.SpeciesOf("smallmon"), opponent, tracker)
	if len(cmds) == 0 {
		t.Fatal("expected reward commands for two eligible recipients")
	}
	award := cmds[0]
	if award.Kind != command.CmdAwardExperience || len(award.Recipients) != 2 {
		t.Fatalf("first command = %+v, want AwardExperience with 2 recipients", award)
	}
	if award.Recipients[0].Amount != award.Recipients[1].Amount {
		t.Errorf("experience should split evenly, got %+v", award.Recipients)
	}
}

func TestComputeRewardsExcludesNonParticipants(t *testing.T) {
	setupRegistry(t)
	tracker := progression.NewTracker()

	opponent := entity.NewTrainer("o", "Opponent", entity.PolicyHuman)
	opponent.Party[0] = entity.NewCreature(data.SpeciesOf("bigmon"), 10, entity.IVs{}, entity.EVs{})
	opponent.Party[1] = entity.NewCreature(data.SpeciesOf("bigmon"), 10, entity.IVs{}, entity.EVs{})

	// Only slot 0 ever faced our fainted creature.
	tracker.RecordActivePair(0, 0)

	cmds := progression.ComputeRewards(command.KindWild, 0, 0, data.SpeciesOf("smallmon"), opponent, tracker)
	award := cmds[0]
	if len(award.Recipients) != 1 || award.Recipients[0].Slot != 0 {
		t.Errorf("Recipients = %+v, want only slot 0", award.Recipients)
	}
}
