package data

// MoveID identifies a move static record.
type MoveID string

// EffectKind tags one declarative entry in a move's effect list (spec
// §4.H step 5). Effects are a closed sum type: adding a kind forces every
// switch over EffectKind in the effect resolver to acknowledge it.
type EffectKind uint8

const (
	EffectSetDamage EffectKind = iota
	EffectLevelDamage
	EffectSuperFang
	EffectOHKO
	EffectPriority
	EffectSureHit
	EffectChargeUp
	EffectTeleport
	EffectRampage
	EffectMultiHit
	EffectRecoil
	EffectDrain
	EffectHeal
	EffectReckless
	EffectApplyStatus   // primary status: Sleep/Poison/Burn/Freeze/Paralysis via Status field
	EffectFlinch
	EffectConfuse
	EffectExhaust
	EffectTrap
	EffectSeed
	EffectDisable
	EffectNightmare
	EffectStatChange
	EffectSubstitute
	EffectCounter
	EffectBide
	EffectHaze
	EffectTeamScreen // Mist/Reflect/LightScreen via Screen field
	EffectMirrorMove
	EffectMetronome
	EffectExplode
	EffectConversion
	EffectTransform
	EffectCureStatus
	EffectRest
)

// Effect is one declarative entry in a move's ordered effect list. Only the
// fields relevant to Kind are populated; the rest are left zero. This
// mirrors the teacher's flat weapon-config-table style (internal/game
// Weapons map in the source fight-club-go repo) rather than an
// inheritance hierarchy of effect types.
type Effect struct {
	Kind EffectKind

	// Generic numeric parameters, meaning depends on Kind:
	//   SetDamage/SuperFang: Amount is the fixed/percent damage
	//   Recoil/Drain/Heal/Reckless: Amount is the percent (0-100)
	//   Teleport/Rampage-followup/StatChange: Chance is a percent (0-100)
	//   MultiHit: Min/Max hit count; Chance is the per-hit continuation percent
	//   Priority: Amount is the signed priority value
	//   ChargeUp/Trap/Disable/TeamScreen/Exhaust: Turns is the duration
	Amount int
	Chance int
	Min    int
	Max    int
	Turns  int

	Target Target
	Stat   StatKind
	Delta  int8
	Status StatusKind
	Screen ScreenKind

	// FollowupStatus is used by Rampage: the status applied on the final
	// turn of the rampage (typically Confused).
	FollowupStatus StatusKind
}

// Move is the immutable static record for one move (spec §3).
type Move struct {
	ID         MoveID
	Name       string
	Type       ElementalType
	Category   MoveCategory
	Power      int  // 0 means "no base power" (status/other moves)
	HasPower   bool
	Accuracy   int // 0..100; HasAccuracy false means the move never misses
	HasAccuracy bool
	MaxPP      int
	CritRate   float64 // base critical-hit chance, e.g. 1.0/16
	Effects    []Effect
}

// StruggleID is the hardcoded fallback used when a move's PP slot is
// empty (spec §4.H step 2): fixed power, typeless, quarter-max recoil.
const StruggleID MoveID = "struggle"

func struggleMove() Move {
	return Move{
		ID:          StruggleID,
		Name:        "Struggle",
		Type:        TypeNone,
		Category:    CategoryPhysical,
		Power:       50,
		HasPower:    true,
		HasAccuracy: false,
		MaxPP:       1,
		CritRate:    1.0 / 16,
		Effects: []Effect{
			{Kind: EffectRecoil, Amount: 25},
		},
	}
}
