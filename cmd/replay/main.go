// Command replay drives the battle engine through a recorded turn log read
// from a JSON file, printing the resulting event stream to stdout. This
// replaces the teacher's cmd/streamer, which replayed game snapshots into a
// video encoder instead of replaying turn actions into a deterministic
// engine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/orchestrator"
)

type creatureSpec struct {
	Species string `json:"species"`
	Level   int    `json:"level"`
}

type trainerSpec struct {
	Name  string         `json:"name"`
	Party []creatureSpec `json:"party"`
}

type actionSpec struct {
	Kind       string `json:"kind"` // "move", "switch", "forfeit"
	MoveSlot   int    `json:"move_slot"`
	TargetSlot int    `json:"target_slot"`
}

type turnSpec struct {
	Action0 actionSpec `json:"action0"`
	Action1 actionSpec `json:"action1"`
}

type replaySpec struct {
	Seed     int64       `json:"seed"`
	Trainer1 trainerSpec `json:"trainer1"`
	Trainer2 trainerSpec `json:"trainer2"`
	Turns    []turnSpec  `json:"turns"`
}

func main() {
	path := flag.String("file", "", "path to a replay JSON file")
	flag.Parse()
	if *path == "" {
		log.Fatal("usage: replay -file <replay.json>")
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("reading replay file: %v", err)
	}
	var spec replaySpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		log.Fatalf("parsing replay file: %v", err)
	}

	if _, err := data.LoadDefault(); err != nil {
		log.Fatalf("loading species/move data: %v", err)
	}

	t1, err := buildTrainer(spec.Trainer1)
	if err != nil {
		log.Fatalf("trainer1: %v", err)
	}
	t2, err := buildTrainer(spec.Trainer2)
	if err != nil {
		log.Fatalf("trainer2: %v", err)
	}

	b := battle.New("replay", t1, t2, battle.KindTrainer, spec.Seed)

	for i, turn := range spec.Turns {
		if b.BattleEnded() {
			fmt.Printf("battle already ended before turn %d; stopping replay\n", i+1)
			break
		}

		a0, err := toPlayerAction(turn.Action0)
		if err != nil {
			log.Fatalf("turn %d action0: %v", i+1, err)
		}
		a1, err := toPlayerAction(turn.Action1)
		if err != nil {
			log.Fatalf("turn %d action1: %v", i+1, err)
		}

		if _, _, err := b.SubmitAction(0, a0); err != nil {
			log.Fatalf("turn %d: side 0 action rejected: %v", i+1, err)
		}
		result, ok, err := b.SubmitAction(1, a1)
		if err != nil {
			log.Fatalf("turn %d: side 1 action rejected: %v", i+1, err)
		}
		if !ok {
			continue
		}

		fmt.Printf("--- turn %d ---\n", result.Turn)
		for _, e := range result.Events {
			fmt.Printf("  %+v\n", e)
		}
	}

	fmt.Printf("final state: ended=%v winner=%d turn=%d\n", b.BattleEnded(), b.Winner(), b.CurrentTurn())
}

func buildTrainer(spec trainerSpec) (*entity.Trainer, error) {
	if len(spec.Party) == 0 {
		return nil, fmt.Errorf("party must have at least one creature")
	}
	tr := entity.NewTrainer(spec.Name, spec.Name, entity.PolicyHuman)
	for i, c := range spec.Party {
		if i >= entity.PartySize {
			break
		}
		sp, ok := data.Default().LookupSpecies(data.SpeciesID(c.Species))
		if !ok {
			return nil, fmt.Errorf("unknown species %q", c.Species)
		}
		level := c.Level
		if level <= 0 {
			level = 50
		}
		tr.Party[i] = entity.NewCreature(sp, level, entity.IVs{}, entity.EVs{})
	}
	return tr, nil
}

func toPlayerAction(a actionSpec) (orchestrator.PlayerAction, error) {
	switch a.Kind {
	case "move":
		return orchestrator.PlayerAction{Kind: orchestrator.ActionUseMove, MoveSlot: a.MoveSlot}, nil
	case "switch":
		return orchestrator.PlayerAction{Kind: orchestrator.ActionSwitchPokemon, TargetSlot: a.TargetSlot}, nil
	case "forfeit":
		return orchestrator.PlayerAction{Kind: orchestrator.ActionForfeit}, nil
	default:
		return orchestrator.PlayerAction{}, fmt.Errorf("unknown action kind %q", a.Kind)
	}
}
