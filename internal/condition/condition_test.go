package condition_test

import (
	"testing"

	"creaturebattle/internal/condition"
	"creaturebattle/internal/data"
)

func TestSetAddReplacesExistingInstance(t *testing.T) {
	s := condition.NewSet()
	s.Add(condition.Instance{Kind: data.ConditionConfused, Turns: 4})
	s.Add(condition.Instance{Kind: data.ConditionConfused, Turns: 2})

	inst, ok := s.Get(data.ConditionConfused)
	if !ok {
		t.Fatal("expected confused instance present")
	}
	if inst.Turns != 2 {
		t.Errorf("Turns = %d, want 2 (latest Add should replace)", inst.Turns)
	}
	if len(s) != 1 {
		t.Errorf("len(s) = %d, want 1", len(s))
	}
}

func TestSetTickEndOfTurnOneTurnAlwaysExpires(t *testing.T) {
	s := condition.NewSet()
	s.Add(condition.Instance{Kind: data.ConditionFlinched, Turns: 99})

	expired := s.TickEndOfTurn()

	if s.Has(data.ConditionFlinched) {
		t.Error("Flinched should be cleared unconditionally at end of turn")
	}
	if len(expired) != 1 || expired[0] != data.ConditionFlinched {
		t.Errorf("expired = %v, want [Flinched]", expired)
	}
}

func TestSetTickEndOfTurnCountedDecrementsThenRemoves(t *testing.T) {
	s := condition.NewSet()
	s.Add(condition.Instance{Kind: data.ConditionConfused, Turns: 2})

	s.TickEndOfTurn()
	inst, ok := s.Get(data.ConditionConfused)
	if !ok || inst.Turns != 1 {
		t.Fatalf("after first tick, Turns = %v, ok = %v; want 1, true", inst, ok)
	}

	s.TickEndOfTurn()
	if s.Has(data.ConditionConfused) {
		t.Error("Confused should be removed once Turns reaches zero")
	}
}

func TestSetTickEndOfTurnPersistentUntouched(t *testing.T) {
	s := condition.NewSet()
	s.Add(condition.Instance{Kind: data.ConditionSeeded})

	for i := 0; i < 5; i++ {
		s.TickEndOfTurn()
	}

	if !s.Has(data.ConditionSeeded) {
		t.Error("Seeded is persistent and must survive repeated end-of-turn ticks")
	}
}

func TestSetClearRemovesEverything(t *testing.T) {
	s := condition.NewSet()
	s.Add(condition.Instance{Kind: data.ConditionSeeded})
	s.Add(condition.Instance{Kind: data.ConditionEnraged})

	s.Clear()

	if len(s) != 0 {
		t.Errorf("len(s) = %d after Clear, want 0", len(s))
	}
}

func TestScreensTickRemovesAtZero(t *testing.T) {
	s := condition.NewScreens()
	s.Add(data.ScreenMist, 1)

	if !s.Has(data.ScreenMist) {
		t.Fatal("Mist should be up immediately after Add")
	}

	expired := s.Tick()

	if s.Has(data.ScreenMist) {
		t.Error("Mist should expire after its last turn ticks down")
	}
	if len(expired) != 1 || expired[0] != data.ScreenMist {
		t.Errorf("expired = %v, want [Mist]", expired)
	}
}

func TestScreensHasFalseWhenAbsent(t *testing.T) {
	s := condition.NewScreens()
	if s.Has(data.ScreenReflect) {
		t.Error("Has should be false for a screen never added")
	}
}
