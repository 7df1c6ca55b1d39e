package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/command"
	"creaturebattle/internal/data"
	"creaturebattle/internal/entity"
	"creaturebattle/internal/orchestrator"
)

// creatureSpec is the wire shape for one party member in a createBattleRequest.
type creatureSpec struct {
	Species string `json:"species"`
	Level   int    `json:"level"`
}

// trainerSpec is the wire shape for one side of a createBattleRequest.
type trainerSpec struct {
	Name   string         `json:"name"`
	NPC    bool           `json:"npc"`
	Party  []creatureSpec `json:"party"`
}

type createBattleRequest struct {
	Kind     string      `json:"kind"` // "wild", "trainer", "safari", "tournament"
	Trainer1 trainerSpec `json:"trainer1"`
	Trainer2 trainerSpec `json:"trainer2"`
	Seed     int64       `json:"seed"`
}

type createBattleResponse struct {
	ID    string `json:"id"`
	State string `json:"state"`
	Turn  int    `json:"turn"`
}

func kindFromString(s string) (battle.BattleKind, error) {
	switch s {
	case "", "trainer":
		return battle.KindTrainer, nil
	case "wild":
		return battle.KindWild, nil
	case "safari":
		return battle.KindSafari, nil
	case "tournament":
		return battle.KindTournament, nil
	default:
		return 0, fmt.Errorf("unknown battle kind %q", s)
	}
}

func buildTrainer(spec trainerSpec) (*entity.Trainer, error) {
	if len(spec.Party) == 0 {
		return nil, fmt.Errorf("party must have at least one creature")
	}
	policy := entity.PolicyHuman
	if spec.NPC {
		policy = entity.PolicyNPC
	}
	id := spec.Name
	tr := entity.NewTrainer(id, spec.Name, policy)
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

// handleCreateBattle handles POST /battles.
func (s *Server) handleCreateBattle(w http.ResponseWriter, r *http.Request) {
	var req createBattleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	kind, err := kindFromString(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t1, err := buildTrainer(req.Trainer1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	t2, err := buildTrainer(req.Trainer2)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	b, err := s.manager.Create(t1, t2, kind, req.Seed)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	UpdateOpenBattles(s.manager.Count())

	writeJSON(w, http.StatusCreated, createBattleResponse{
		ID:    b.ID,
		State: gameStateName(b.CurrentGameState()),
		Turn:  b.CurrentTurn(),
	})
}

// handleGetBattle handles GET /battles/{id}.
func (s *Server) handleGetBattle(w http.ResponseWriter, r *http.Request) {
	b, err := s.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":     b.ID,
		"state":  gameStateName(b.CurrentGameState()),
		"turn":   b.CurrentTurn(),
		"ended":  b.BattleEnded(),
		"winner": b.Winner(),
	})
}

type actionRequest struct {
	Side       int    `json:"side"`
	Kind       string `json:"kind"` // "move", "switch", "forfeit"
	MoveSlot   int    `json:"move_slot"`
	TargetSlot int    `json:"target_slot"`
}

func actionKindFromString(s string) (orchestrator.PlayerActionKind, error) {
	switch s {
	case "move":
		return orchestrator.ActionUseMove, nil
	case "switch":
		return orchestrator.ActionSwitchPokemon, nil
	case "forfeit":
		return orchestrator.ActionForfeit, nil
	default:
		return 0, fmt.Errorf("unknown action kind %q", s)
	}
}

// handleSubmitAction handles POST /battles/{id}/actions.
func (s *Server) handleSubmitAction(w http.ResponseWriter, r *http.Request) {
	b, err := s.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	actionKind, err := actionKindFromString(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	action := orchestrator.PlayerAction{
		Kind:       actionKind,
		MoveSlot:   req.MoveSlot,
		TargetSlot: req.TargetSlot,
	}

	start := time.Now()
	result, ok, err := b.SubmitAction(req.Side, action)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if ok {
		recordTurnResult(time.Since(start), result)
		s.hubFor(b.ID).BroadcastEvents(eventsToJSON(result.Events))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"driven": ok,
		"state":  gameStateName(b.CurrentGameState()),
		"turn":   b.CurrentTurn(),
		"events": eventsToJSON(result.Events),
	})
}

type replacementRequest struct {
	Side       int `json:"side"`
	TargetSlot int `json:"target_slot"`
}

// handleSubmitReplacement handles POST /battles/{id}/replacement.
func (s *Server) handleSubmitReplacement(w http.ResponseWriter, r *http.Request) {
	b, err := s.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req replacementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := b.SubmitReplacement(req.Side, req.TargetSlot); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state": gameStateName(b.CurrentGameState()),
	})
}

// handleGetEvents handles GET /battles/{id}/events?since=N.
func (s *Server) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	b, err := s.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	since := 0
	if v := r.URL.Query().Get("since"); v != "" {
		fmt.Sscanf(v, "%d", &since)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": eventsToJSON(b.EventsSince(since)),
		"count":  b.EventCount(),
	})
}

func recordTurnResult(duration time.Duration, result battle.TurnResult) {
	RecordTurn(duration)
	faints := 0
	for _, e := range result.Events {
		if e.Kind == command.EventPokemonFainted {
			faints++
		}
	}
	RecordFaints(faints)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func gameStateName(s battle.GameState) string {
	switch s {
	case battle.WaitingForBothActions:
		return "waiting_for_both_actions"
	case battle.TurnInProgress:
		return "turn_in_progress"
	case battle.WaitingForPlayer1Replacement:
		return "waiting_for_player1_replacement"
	case battle.WaitingForPlayer2Replacement:
		return "waiting_for_player2_replacement"
	case battle.WaitingForBothReplacements:
		return "waiting_for_both_replacements"
	case battle.P1Win:
		return "p1_win"
	case battle.P2Win:
		return "p2_win"
	case battle.Draw:
		return "draw"
	default:
		return "unknown"
	}
}

var eventKindNames = map[command.EventKind]string{
	command.EventTurnStarted:               "turn_started",
	command.EventTurnEnded:                  "turn_ended",
	command.EventPokemonSwitched:            "pokemon_switched",
	command.EventMoveUsed:                   "move_used",
	command.EventMoveHit:                    "move_hit",
	command.EventMoveMissed:                 "move_missed",
	command.EventCriticalHit:                "critical_hit",
	command.EventDamageDealt:                "damage_dealt",
	command.EventSubstituteDamaged:          "substitute_damaged",
	command.EventPokemonHealed:              "pokemon_healed",
	command.EventPokemonFainted:             "pokemon_fainted",
	command.EventAttackTypeEffectiveness:    "type_effectiveness",
	command.EventStatusApplied:              "status_applied",
	command.EventStatusRemoved:              "status_removed",
	command.EventStatusDamage:               "status_damage",
	command.EventPokemonStatusApplied:       "pokemon_status_applied",
	command.EventPokemonStatusRemoved:       "pokemon_status_removed",
	command.EventPokemonStatusDamage:        "pokemon_status_damage",
	command.EventConditionExpired:           "condition_expired",
	command.EventTeamConditionApplied:       "team_condition_applied",
	command.EventTeamConditionExpired:       "team_condition_expired",
	command.EventStatStageChanged:           "stat_stage_changed",
	command.EventStatChangeBlocked:          "stat_change_blocked",
	command.EventActionFailed:               "action_failed",
	command.EventAnteIncreased:              "ante_increased",
	command.EventCatchAttempted:             "catch_attempted",
	command.EventCatchSucceeded:             "catch_succeeded",
	command.EventCatchFailed:                "catch_failed",
	command.EventPlayerDefeated:             "player_defeated",
	command.EventBattleEnded:                "battle_ended",
}

func eventsToJSON(events []command.Event) []battleEventJSON {
	out := make([]battleEventJSON, 0, len(events))
	for _, e := range events {
		name, ok := eventKindNames[e.Kind]
		if !ok {
			name = "unknown"
		}
		out = append(out, battleEventJSON{
			Kind:       name,
			Side:       e.Side,
			Slot:       e.Slot,
			Species:    string(e.Species),
			Move:       string(e.Move),
			Amount:     e.Amount,
			Remaining:  e.Remaining,
			Multiplier: e.Multiplier,
			Winner:     e.Winner,
		})
	}
	return out
}
