// Package actionstack implements the per-turn deque of atomic actions
// (spec component 4.G): push_back for the initial ordered plan, push_front
// for dynamically injected follow-ups (extra hits of a multi-hit move, a
// confusion self-hit substituted for the intended action, a counter
// retaliation queued for right after the current resolution), drained
// front-first until empty.
package actionstack

import "creaturebattle/internal/data"

// ActionKind tags one atomic action.
type ActionKind uint8

const (
	ActionForfeit ActionKind = iota
	ActionSwitch
	ActionAttackHit
)

// Action is one atomic unit of turn resolution (spec §3 "Action stack").
// Only the fields relevant to Kind are populated.
type Action struct {
	Kind ActionKind

	Side int // 0 or 1; the side performing this action

	// Switch
	TargetSlot int

	// AttackHit
	Attacker int // side index
	Defender int // side index
	Move     data.MoveID
	HitIndex int
}

// Stack is the deque described in spec §4.G. The zero value is ready to use.
type Stack struct {
	items []Action
}

// PushBack appends a to the end of the stack (used for the initial plan).
func (s *Stack) PushBack(a Action) {
	s.items = append(s.items, a)
}

// PushFront inserts a at the front of the stack (used for dynamically
// injected follow-ups, which must resolve before whatever was already
// queued).
func (s *Stack) PushFront(a Action) {
	s.items = append([]Action{a}, s.items...)
}

// PopFront removes and returns the action at the front of the stack. ok is
// false if the stack is empty.
func (s *Stack) PopFront() (Action, bool) {
	if len(s.items) == 0 {
		return Action{}, false
	}
	a := s.items[0]
	s.items = s.items[1:]
	return a, true
}

// Empty reports whether the stack has been fully drained.
func (s *Stack) Empty() bool {
	return len(s.items) == 0
}

// Len returns the number of queued actions.
func (s *Stack) Len() int {
	return len(s.items)
}

// RemoveFrontMatchingMove drops any actions at the very front of the stack
// that are follow-on hits of the given move for the given attacker (spec
// §4.H step 7: a multi-hit sequence that terminates early must not leave
// its remaining queued hits behind).
func (s *Stack) RemoveFrontMatchingMove(attacker int, move data.MoveID) {
	for len(s.items) > 0 {
		a := s.items[0]
		if a.Kind == ActionAttackHit && a.Attacker == attacker && a.Move == move && a.HitIndex > 0 {
			s.items = s.items[1:]
			continue
		}
		break
	}
}
