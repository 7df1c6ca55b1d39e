package entity

import (
	"creaturebattle/internal/condition"
	"creaturebattle/internal/data"
)

// PolicyTag distinguishes a trainer driven by a human caller from one driven
// by a Behavior implementation (spec §6).
type PolicyTag uint8

const (
	PolicyHuman PolicyTag = iota
	PolicyNPC
)

// PartySize is the fixed number of party slots every trainer carries.
const PartySize = 6

// StageClamp is the minimum and maximum a stat stage may reach.
const StageClamp = 6

// Trainer is one side's full battle state: its party, its active slot, its
// stat stages, its team screens, its volatile conditions, and its last move
// (spec §3 "Trainer state"). Ownership: a Trainer owns its Party, Stages,
// Screens and Conditions exclusively.
type Trainer struct {
	ID     string
	Name   string
	Policy PolicyTag

	Party  [PartySize]*Creature
	Active int

	stages map[data.StatKind]int8

	Screens    condition.Screens
	Conditions condition.Set

	LastMove data.MoveID
	Ante     int
}

// NewTrainer builds an empty trainer shell; callers fill Party slots
// themselves (leftmost filled, per spec).
func NewTrainer(id, name string, policy PolicyTag) *Trainer {
	return &Trainer{
		ID:         id,
		Name:       name,
		Policy:     policy,
		stages:     make(map[data.StatKind]int8),
		Screens:    condition.NewScreens(),
		Conditions: condition.NewSet(),
	}
}

// ActiveCreature returns the creature in the active slot, or nil if the
// slot is empty.
func (t *Trainer) ActiveCreature() *Creature {
	return t.Party[t.Active]
}

// HasFightableCreature reports whether any party slot holds a non-fainted
// creature.
func (t *Trainer) HasFightableCreature() bool {
	for _, c := range t.Party {
		if c != nil && !c.IsFainted() {
			return true
		}
	}
	return false
}

// NeedsReplacement reports whether the active slot is empty or fainted
// while fightable creatures remain elsewhere in the party.
func (t *Trainer) NeedsReplacement() bool {
	active := t.Party[t.Active]
	fainted := active == nil || active.IsFainted()
	return fainted && t.HasFightableCreature()
}

// Stage returns the current stage for kind; absent entries are 0 (spec §3).
func (t *Trainer) Stage(kind data.StatKind) int8 {
	return t.stages[kind]
}

// ChangeStage adjusts the stage for kind by delta, clamped to
// [-StageClamp,+StageClamp], and returns the resulting stage. A stage that
// lands on exactly zero is removed from the map so that the "stage map
// stores only non-zero entries" invariant (spec §3) holds.
func (t *Trainer) ChangeStage(kind data.StatKind, delta int8) int8 {
	next := t.stages[kind] + delta
	if next > StageClamp {
		next = StageClamp
	}
	if next < -StageClamp {
		next = -StageClamp
	}
	if next == 0 {
		delete(t.stages, kind)
	} else {
		t.stages[kind] = next
	}
	return next
}

// ResetStages clears every stat stage back to zero (Haze, switch-out).
func (t *Trainer) ResetStages() {
	for k := range t.stages {
		delete(t.stages, k)
	}
}

// ClearVolatiles clears this trainer's volatile condition set, used on
// switch-out and on the fainting side (spec §4.F DealDamage, §4.I switch
// phase).
func (t *Trainer) ClearVolatiles() {
	t.Conditions.Clear()
}
