package progression

import "creaturebattle/internal/data"

// CanTutor reports whether species can learn move via its tutor-move set
// (spec §3 "tutor-learnable set"), outside the level-up learnset. Tutoring
// itself is an out-of-battle action; this only answers the eligibility
// question for whatever caller drives it.
func CanTutor(species data.Species, move data.MoveID) bool {
	for _, m := range species.TutorMoves {
		if m == move {
			return true
		}
	}
	return false
}
