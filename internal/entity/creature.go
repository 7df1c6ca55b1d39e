package entity

import "creaturebattle/internal/data"

// MoveSlot is one of a creature's up to four known moves, carrying its own
// remaining PP independent of the move's static MaxPP (spec §3).
type MoveSlot struct {
	Move  data.MoveID
	PP    int
	MaxPP int
}

// MaxMoveSlots is the fixed number of move slots a creature carries.
const MaxMoveSlots = 4

// PrimaryStatus is a creature's non-volatile status condition. Turns is only
// meaningful for Sleep (remaining asleep turns); other kinds ignore it.
type PrimaryStatus struct {
	Kind  data.StatusKind
	Turns int
}

// Creature is one owned, battle-capable instance of a species (spec §3
// "Creature instance"). Zero value is not valid; build with NewCreature.
type Creature struct {
	Species    data.SpeciesID
	Name       string
	Level      int
	Experience int

	IVs IVs
	EVs EVs

	Stats     Stats
	CurrentHP int

	Moves [MaxMoveSlots]*MoveSlot

	Status PrimaryStatus
}

// NewCreature builds a creature at level for species, auto-learning every
// move its learnset grants at or below level (keeping only the most recent
// four, oldest dropped first, matching how this lineage of games has always
// handled overflow) and setting full HP.
func NewCreature(species data.Species, level int, iv IVs, ev EVs) *Creature {
	c := &Creature{
		Species: species.ID,
		Name:    species.Name,
		Level:   level,
		IVs:     iv,
		EVs:     ev,
	}
	c.Stats = CalculateStats(species.Base, iv, ev, level)
	c.CurrentHP = c.Stats.HP

	var learned []data.MoveID
	if species.SignatureMove != "" {
		learned = append(learned, species.SignatureMove)
	}
	for l := 1; l <= level; l++ {
		learned = append(learned, species.MovesLearnedAt(l)...)
	}
	if len(learned) > MaxMoveSlots {
		learned = learned[len(learned)-MaxMoveSlots:]
	}
	for i, moveID := range learned {
		mv := data.MoveOf(moveID)
		c.Moves[i] = &MoveSlot{Move: moveID, PP: mv.MaxPP, MaxPP: mv.MaxPP}
	}
	return c
}

// MaxHP returns the creature's current max HP stat.
func (c *Creature) MaxHP() int {
	return c.Stats.HP
}

// IsFainted reports whether the creature's primary status is Faint.
func (c *Creature) IsFainted() bool {
	return c.Status.Kind == data.StatusFaint
}

// FindMoveSlot returns the index of move in c.Moves, or -1 if not known.
func (c *Creature) FindMoveSlot(move data.MoveID) int {
	for i, slot := range c.Moves {
		if slot != nil && slot.Move == move {
			return i
		}
	}
	return -1
}

// FirstEmptySlot returns the index of the first nil move slot, or -1 if full.
func (c *Creature) FirstEmptySlot() int {
	for i, slot := range c.Moves {
		if slot == nil {
			return i
		}
	}
	return -1
}

// LearnMove installs move at slot, overwriting whatever was there. Callers
// (the command executor) pick slot via FirstEmptySlot or a replacement
// policy; LearnMove itself does not choose.
func (c *Creature) LearnMove(slot int, move data.MoveID) {
	mv := data.MoveOf(move)
	c.Moves[slot] = &MoveSlot{Move: move, PP: mv.MaxPP, MaxPP: mv.MaxPP}
}

// ApplySpecies rewrites the creature's species identity and stats in place
// (used by Evolve), recomputing stats from the new species' base stats
// while preserving current HP as a proportion of the new max, and keeping
// level, IVs, EVs, experience and moves untouched.
func (c *Creature) ApplySpecies(species data.Species) {
	hpFraction := 0.0
	if c.Stats.HP > 0 {
		hpFraction = float64(c.CurrentHP) / float64(c.Stats.HP)
	}
	c.Species = species.ID
	c.Name = species.Name
	c.Stats = CalculateStats(species.Base, c.IVs, c.EVs, c.Level)
	c.CurrentHP = int(hpFraction * float64(c.Stats.HP))
	if c.CurrentHP > c.Stats.HP {
		c.CurrentHP = c.Stats.HP
	}
}
