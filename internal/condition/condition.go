// Package condition implements the volatile per-creature condition set and
// the team-wide screen map (spec component 4.C). Both are small, mutable
// value collections owned exclusively by the trainer state that holds them;
// nothing outside entity/command code writes to them directly.
package condition

import "creaturebattle/internal/data"

// Lifetime tags how a condition instance is cleared.
type Lifetime uint8

const (
	// LifetimeOneTurn conditions are removed unconditionally at end-of-turn,
	// regardless of any Turns value (Flinched, Teleported).
	LifetimeOneTurn Lifetime = iota
	// LifetimeCounted conditions decrement Turns at end-of-turn and are
	// removed when it reaches zero (Confused, Exhausted, Trapped, Charging,
	// Rampaging, Disabled, Biding).
	LifetimeCounted
	// LifetimePersistent conditions are removed only by a specific event
	// (switch-out, release, a move resolving them) rather than by ticking.
	LifetimePersistent
)

var lifetimes = map[data.ConditionKind]Lifetime{
	data.ConditionFlinched:    LifetimeOneTurn,
	data.ConditionTeleported:  LifetimeOneTurn,
	// Countering only guards against physical damage taken during the same
	// turn Counter was used; it must not linger into the next turn.
	data.ConditionCountering: LifetimeOneTurn,
	data.ConditionConfused:   LifetimeCounted,
	data.ConditionExhausted:  LifetimeCounted,
	data.ConditionTrapped:    LifetimeCounted,
	data.ConditionCharging:   LifetimeCounted,
	data.ConditionRampaging:  LifetimeCounted,
	data.ConditionDisabled:   LifetimeCounted,
	data.ConditionBiding:     LifetimeCounted,
	data.ConditionSeeded:     LifetimePersistent,
	data.ConditionUnderground: LifetimePersistent,
	data.ConditionInAir:       LifetimePersistent,
	data.ConditionEnraged:     LifetimePersistent,
	data.ConditionTransformed: LifetimePersistent,
	data.ConditionConverted:   LifetimePersistent,
	data.ConditionSubstitute:  LifetimePersistent,
	// Nightmare lasts as long as the sleep it piggybacks on; it is removed
	// explicitly when the sleeper wakes, not by ticking.
	data.ConditionNightmare: LifetimePersistent,
}

// LifetimeOf reports the lifetime rule for a condition kind.
func LifetimeOf(kind data.ConditionKind) Lifetime {
	return lifetimes[kind]
}

// TransformSnapshot is the value a Transformed instance carries: a copy of
// the target's types, stats and moves at the moment of transformation. It is
// a snapshot, never a back-pointer, so the transformed creature keeps
// working after the target switches out or faints.
type TransformSnapshot struct {
	Species data.SpeciesID
	Types   []data.ElementalType
	Stats   data.BaseStats
	Moves   []data.MoveID
}

// Instance is one volatile condition attached to an active creature or, for
// Countering/Biding bookkeeping, its side. Only the fields relevant to Kind
// are populated.
type Instance struct {
	Kind data.ConditionKind

	Turns int // remaining turns for counted/one-turn-with-duration kinds

	// Biding: accumulated damage taken while biding.
	Accumulated int

	// Countering: not written by the engine; retaliation is sized from the
	// damage of the hit that triggers it.
	Damage int

	// Disabled: which move is disabled.
	DisabledMove data.MoveID

	// Substitute: remaining substitute HP.
	SubstituteHP int

	// Converted: the type this side's attacks now count as.
	ConvertedType data.ElementalType

	// Transformed: the copied snapshot.
	Snapshot *TransformSnapshot
}

// Set is the per-side map of active volatile conditions. Invariant: at most
// one instance per ConditionKind (spec §3 Trainer state).
type Set map[data.ConditionKind]Instance

// NewSet returns an empty condition set.
func NewSet() Set {
	return make(Set)
}

// Add installs inst, replacing any existing instance of the same kind
// (spec §4.F AddCondition semantics).
func (s Set) Add(inst Instance) {
	s[inst.Kind] = inst
}

// Remove deletes the instance of kind, if any.
func (s Set) Remove(kind data.ConditionKind) {
	delete(s, kind)
}

// Get returns the instance of kind and whether it is present.
func (s Set) Get(kind data.ConditionKind) (Instance, bool) {
	inst, ok := s[kind]
	return inst, ok
}

// Has reports whether kind is present.
func (s Set) Has(kind data.ConditionKind) bool {
	_, ok := s[kind]
	return ok
}

// Clear removes every volatile condition, used when a creature switches out
// or faints.
func (s Set) Clear() {
	for k := range s {
		delete(s, k)
	}
}

// TickEndOfTurn applies the end-of-turn lifetime rule to every instance:
// one-turn conditions are removed unconditionally; counted conditions
// decrement and are removed at zero; persistent conditions are untouched.
// It returns the kinds that expired this tick, in no particular order, so
// callers can emit ConditionExpired events.
func (s Set) TickEndOfTurn() []data.ConditionKind {
	var expired []data.ConditionKind
	for kind, inst := range s {
		switch LifetimeOf(kind) {
		case LifetimeOneTurn:
			delete(s, kind)
			expired = append(expired, kind)
		case LifetimeCounted:
			inst.Turns--
			if inst.Turns <= 0 {
				delete(s, kind)
				expired = append(expired, kind)
			} else {
				s[kind] = inst
			}
		case LifetimePersistent:
			// untouched; removed only by a specific event elsewhere.
		}
	}
	return expired
}

// Screens is the per-side team-wide screen map (Reflect, Light Screen,
// Mist), each entry storing remaining turns.
type Screens map[data.ScreenKind]int

// NewScreens returns an empty screen map.
func NewScreens() Screens {
	return make(Screens)
}

// Add installs or refreshes a screen for turns.
func (s Screens) Add(kind data.ScreenKind, turns int) {
	s[kind] = turns
}

// Remove clears a screen.
func (s Screens) Remove(kind data.ScreenKind) {
	delete(s, kind)
}

// Has reports whether kind is currently up.
func (s Screens) Has(kind data.ScreenKind) bool {
	turns, ok := s[kind]
	return ok && turns > 0
}

// Tick decrements every screen's remaining turns, removing any that reach
// zero. Returns the kinds that expired this tick.
func (s Screens) Tick() []data.ScreenKind {
	var expired []data.ScreenKind
	for kind, turns := range s {
		turns--
		if turns <= 0 {
			delete(s, kind)
			expired = append(expired, kind)
		} else {
			s[kind] = turns
		}
	}
	return expired
}
