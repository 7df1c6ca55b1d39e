// Package progression implements the participation tracker and reward
// distributor (spec component 4.J): which creatures are eligible for
// experience and EVs when an opponent faints, how much they receive, and
// the cascades that follow (level-ups, move learning, evolution) are owned
// by the command executor once progression hands it the award commands.
package progression

import (
	"creaturebattle/internal/entity"
)

// Tracker is the dense boolean pairing matrix described in spec §3 "Battle
// state": participated[side][m][k] is true once creature m of side faced
// creature k of the opposing side as both actives at the same time. It is
// addressed purely by integer indices, never by creature references, so it
// survives switches and faints without dangling pointers.
type Tracker struct {
	participated [2][entity.PartySize][entity.PartySize]bool
}

// NewTracker returns an empty participation matrix.
func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordActivePair marks that side 0's active slot and side 1's active slot
// are now facing each other, called on battle start and after every switch
// (spec §4.I step 2: "invoke participation tracker with new active pair").
func (t *Tracker) RecordActivePair(slot0, slot1 int) {
	t.participated[0][slot0][slot1] = true
	t.participated[1][slot1][slot0] = true
}

// Participated reports whether creature ownSlot of side ever faced creature
// opponentSlot of the other side.
func (t *Tracker) Participated(side, ownSlot, opponentSlot int) bool {
	return t.participated[side][ownSlot][opponentSlot]
}
