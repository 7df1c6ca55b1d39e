package data

// LoadDefault builds and installs the default species/move universe used
// by production and by default in tests that don't need a bespoke set.
// Names are original to this engine (not the source game's character
// names) but the mechanics — types, base stats, learnsets, move effect
// lists — are the Gen-1-pattern this spec describes.
func LoadDefault() (*Registry, error) {
	r, err := NewRegistry(defaultSpecies(), defaultMoves())
	if err != nil {
		return nil, err
	}
	SetDefault(r)
	return r, nil
}

func defaultMoves() []Move {
	return []Move{
		{
			ID: "tackle", Name: "Tackle", Type: TypeNormal, Category: CategoryPhysical,
			Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 35, CritRate: 1.0 / 16,
		},
		{
			ID: "scratch", Name: "Scratch", Type: TypeNormal, Category: CategoryPhysical,
			Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 35, CritRate: 1.0 / 16,
		},
		{
			ID: "ember", Name: "Ember", Type: TypeFire, Category: CategorySpecial,
			Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 25, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectApplyStatus, Chance: 10, Target: TargetOpponent, Status: StatusBurn}},
		},
		{
			ID: "water_jet", Name: "Water Jet", Type: TypeWater, Category: CategorySpecial,
			Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 25, CritRate: 1.0 / 16,
		},
		{
			ID: "vine_whip", Name: "Vine Whip", Type: TypeGrass, Category: CategoryPhysical,
			Power: 45, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 25, CritRate: 1.0 / 16,
		},
		{
			ID: "thunder_fang", Name: "Thunder Fang", Type: TypeElectric, Category: CategoryPhysical,
			Power: 65, HasPower: true, Accuracy: 95, HasAccuracy: true, MaxPP: 15, CritRate: 1.0 / 16,
			Effects: []Effect{
				{Kind: EffectApplyStatus, Chance: 10, Target: TargetOpponent, Status: StatusParalysis},
				{Kind: EffectFlinch, Chance: 10, Target: TargetOpponent},
			},
		},
		{
			ID: "ice_shard", Name: "Ice Shard", Type: TypeIce, Category: CategoryPhysical,
			Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 30, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectPriority, Amount: 1}},
		},
		{
			ID: "high_jump_kick", Name: "High Jump Kick", Type: TypeFighting, Category: CategoryPhysical,
			Power: 85, HasPower: true, Accuracy: 80, HasAccuracy: true, MaxPP: 10, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectReckless, Amount: 50}},
		},
		{
			ID: "sludge", Name: "Sludge", Type: TypePoison, Category: CategorySpecial,
			Power: 50, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 20, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectApplyStatus, Chance: 30, Target: TargetOpponent, Status: StatusPoison}},
		},
		{
			ID: "earth_slam", Name: "Earth Slam", Type: TypeGround, Category: CategoryPhysical,
			Power: 70, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 15, CritRate: 1.0 / 16,
		},
		{
			ID: "gust", Name: "Gust", Type: TypeFlying, Category: CategorySpecial,
			Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 35, CritRate: 1.0 / 16,
		},
		{
			ID: "mind_bend", Name: "Mind Bend", Type: TypePsychic, Category: CategorySpecial,
			Power: 65, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 20, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectStatChange, Chance: 30, Target: TargetOpponent, Stat: StatSpecialDefense, Delta: -1}},
		},
		{
			ID: "swarm", Name: "Swarm", Type: TypeBug, Category: CategoryPhysical,
			Power: 35, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 25, CritRate: 1.0 / 16,
		},
		{
			ID: "rock_throw", Name: "Rock Throw", Type: TypeRock, Category: CategoryPhysical,
			Power: 50, HasPower: true, Accuracy: 90, HasAccuracy: true, MaxPP: 15, CritRate: 1.0 / 16,
		},
		{
			ID: "shadow_touch", Name: "Shadow Touch", Type: TypeGhost, Category: CategorySpecial,
			Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 20, CritRate: 1.0 / 16,
		},
		{
			ID: "dragon_rush", Name: "Dragon Rush", Type: TypeDragon, Category: CategoryPhysical,
			Power: 90, HasPower: true, Accuracy: 85, HasAccuracy: true, MaxPP: 10, CritRate: 1.0 / 16,
		},

		// status / utility moves
		{
			ID: "growl", Name: "Growl", Type: TypeNormal, Category: CategoryStatus,
			HasAccuracy: true, Accuracy: 100, MaxPP: 40,
			Effects: []Effect{{Kind: EffectStatChange, Chance: 100, Target: TargetOpponent, Stat: StatAttack, Delta: -1}},
		},
		{
			ID: "harden", Name: "Harden", Type: TypeNormal, Category: CategoryStatus,
			MaxPP: 30, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectStatChange, Chance: 100, Target: TargetSelf, Stat: StatDefense, Delta: 1}},
		},
		{
			ID: "agility", Name: "Agility", Type: TypePsychic, Category: CategoryStatus,
			MaxPP: 30, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectStatChange, Chance: 100, Target: TargetSelf, Stat: StatSpeed, Delta: 2}},
		},
		{
			ID: "mist", Name: "Mist", Type: TypeIce, Category: CategoryStatus,
			MaxPP: 30, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectTeamScreen, Screen: ScreenMist, Turns: 5}},
		},
		{
			ID: "reflect", Name: "Reflect", Type: TypePsychic, Category: CategoryStatus,
			MaxPP: 20, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectTeamScreen, Screen: ScreenReflect, Turns: 5}},
		},
		{
			ID: "light_screen", Name: "Light Screen", Type: TypePsychic, Category: CategoryStatus,
			MaxPP: 30, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectTeamScreen, Screen: ScreenLightScreen, Turns: 5}},
		},
		{
			ID: "haze", Name: "Haze", Type: TypeIce, Category: CategoryStatus,
			MaxPP: 30, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectHaze}},
		},
		{
			ID: "spore_cloud", Name: "Spore Cloud", Type: TypeGrass, Category: CategoryStatus,
			Accuracy: 75, HasAccuracy: true, MaxPP: 15,
			Effects: []Effect{{Kind: EffectApplyStatus, Chance: 100, Target: TargetOpponent, Status: StatusSleep}},
		},
		{
			ID: "stun_spore", Name: "Stun Spore", Type: TypeGrass, Category: CategoryStatus,
			Accuracy: 75, HasAccuracy: true, MaxPP: 30,
			Effects: []Effect{{Kind: EffectApplyStatus, Chance: 100, Target: TargetOpponent, Status: StatusParalysis}},
		},
		{
			ID: "confuse_ray", Name: "Confuse Ray", Type: TypeGhost, Category: CategoryStatus,
			Accuracy: 100, HasAccuracy: true, MaxPP: 15,
			Effects: []Effect{{Kind: EffectConfuse, Chance: 100, Target: TargetOpponent, Turns: 4}},
		},
		{
			ID: "leech_seed", Name: "Leech Seed", Type: TypeGrass, Category: CategoryStatus,
			Accuracy: 90, HasAccuracy: true, MaxPP: 10,
			Effects: []Effect{{Kind: EffectSeed, Chance: 100, Target: TargetOpponent}},
		},
		{
			ID: "wrap", Name: "Wrap", Type: TypeNormal, Category: CategoryPhysical,
			Power: 15, HasPower: true, Accuracy: 85, HasAccuracy: true, MaxPP: 20, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectTrap, Chance: 100, Target: TargetOpponent, Turns: 4}},
		},
		{
			ID: "disable", Name: "Disable", Type: TypeNormal, Category: CategoryStatus,
			Accuracy: 55, HasAccuracy: true, MaxPP: 20,
			Effects: []Effect{{Kind: EffectDisable, Chance: 100, Target: TargetOpponent, Turns: 4}},
		},
		{
			ID: "nightmare", Name: "Nightmare", Type: TypeGhost, Category: CategoryStatus,
			Accuracy: 100, HasAccuracy: true, MaxPP: 15,
			Effects: []Effect{{Kind: EffectNightmare, Chance: 100, Target: TargetOpponent}},
		},
		{
			ID: "rest", Name: "Rest", Type: TypePsychic, Category: CategoryStatus,
			MaxPP: 10, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectRest, Target: TargetSelf}},
		},
		{
			ID: "refresh", Name: "Refresh", Type: TypeNormal, Category: CategoryStatus,
			MaxPP: 20, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectCureStatus, Target: TargetSelf}},
		},
		{
			ID: "teleport", Name: "Teleport", Type: TypePsychic, Category: CategoryStatus,
			MaxPP: 20, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectTeleport, Chance: 100}},
		},

		// drain / recoil / heal
		{
			ID: "drain_touch", Name: "Drain Touch", Type: TypeGrass, Category: CategorySpecial,
			Power: 40, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 15, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectDrain, Amount: 50}},
		},
		{
			ID: "heal_pulse", Name: "Heal Pulse", Type: TypeNormal, Category: CategoryStatus,
			MaxPP: 15, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectHeal, Amount: 50, Target: TargetSelf}},
		},
		{
			ID: "double_edge", Name: "Double Edge", Type: TypeNormal, Category: CategoryPhysical,
			Power: 100, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 15, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectRecoil, Amount: 25}},
		},

		// two-turn / special mechanics
		{
			ID: "solar_charge", Name: "Solar Charge", Type: TypeFire, Category: CategorySpecial,
			Power: 120, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 10, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectChargeUp, Turns: 1}},
		},
		{
			ID: "thrash", Name: "Thrash", Type: TypeNormal, Category: CategoryPhysical,
			Power: 90, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 10, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectRampage, FollowupStatus: StatusNone}},
		},
		{
			ID: "pin_missile", Name: "Pin Missile", Type: TypeBug, Category: CategoryPhysical,
			Power: 14, HasPower: true, Accuracy: 85, HasAccuracy: true, MaxPP: 20, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectMultiHit, Min: 2, Max: 5, Chance: 75}},
		},
		{
			ID: "super_fang", Name: "Super Fang", Type: TypeNormal, Category: CategoryOther,
			Accuracy: 90, HasAccuracy: true, MaxPP: 10,
			Effects: []Effect{{Kind: EffectSuperFang, Amount: 50}},
		},
		{
			ID: "fissure", Name: "Fissure", Type: TypeGround, Category: CategoryOther,
			HasAccuracy: true, Accuracy: 30, MaxPP: 5,
			Effects: []Effect{{Kind: EffectOHKO}},
		},
		{
			ID: "counter", Name: "Counter", Type: TypeFighting, Category: CategoryOther,
			Accuracy: 100, HasAccuracy: true, MaxPP: 20,
			Effects: []Effect{{Kind: EffectCounter}},
		},
		{
			ID: "bide", Name: "Bide", Type: TypeNormal, Category: CategoryOther,
			MaxPP: 10, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectBide, Turns: 2}},
		},
		{
			ID: "substitute", Name: "Substitute", Type: TypeNormal, Category: CategoryStatus,
			MaxPP: 10, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectSubstitute}},
		},
		{
			ID: "mirror_move", Name: "Mirror Move", Type: TypeFlying, Category: CategoryOther,
			MaxPP: 20, Effects: []Effect{{Kind: EffectMirrorMove}},
		},
		{
			ID: "metronome", Name: "Metronome", Type: TypeNormal, Category: CategoryOther,
			MaxPP: 10, Effects: []Effect{{Kind: EffectMetronome}},
		},
		{
			ID: "self_destruct", Name: "Self Destruct", Type: TypeNormal, Category: CategoryPhysical,
			Power: 200, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 5, CritRate: 1.0 / 16,
			Effects: []Effect{{Kind: EffectExplode}},
		},
		{
			ID: "conversion", Name: "Conversion", Type: TypeNormal, Category: CategoryStatus,
			MaxPP: 30, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectConversion}},
		},
		{
			ID: "transform", Name: "Transform", Type: TypeNormal, Category: CategoryStatus,
			MaxPP: 10, Effects: []Effect{{Kind: EffectSureHit}, {Kind: EffectTransform}},
		},
		{
			ID: "rage", Name: "Rage", Type: TypeNormal, Category: CategoryPhysical,
			Power: 20, HasPower: true, Accuracy: 100, HasAccuracy: true, MaxPP: 20, CritRate: 1.0 / 16,
		},
	}
}

func defaultSpecies() []Species {
	return []Species{
		{
			ID: "cinderpup", Name: "Cinderpup",
			Types: []ElementalType{TypeFire},
			Base:  BaseStats{HP: 39, Attack: 52, Defense: 43, SpecialAttack: 60, SpecialDefense: 50, Speed: 65},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"scratch", "growl"}},
				{Level: 7, Moves: []MoveID{"ember"}},
				{Level: 16, Moves: []MoveID{"rage"}},
				{Level: 24, Moves: []MoveID{"solar_charge"}},
			},
			CatchRate: 45, Curve: CurveMediumSlow,
			Evolution: &Evolution{Method: EvolveLevel, Into: "emberfang", LevelReq: 16},
		},
		{
			ID: "emberfang", Name: "Emberfang",
			Types: []ElementalType{TypeFire, TypeNormal},
			Base:  BaseStats{HP: 58, Attack: 64, Defense: 58, SpecialAttack: 80, SpecialDefense: 65, Speed: 80},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"scratch", "growl", "ember"}},
				{Level: 30, Moves: []MoveID{"double_edge"}},
			},
			CatchRate: 45, Curve: CurveMediumSlow,
		},
		{
			ID: "aquafin", Name: "Aquafin",
			Types: []ElementalType{TypeWater},
			Base:  BaseStats{HP: 44, Attack: 48, Defense: 65, SpecialAttack: 50, SpecialDefense: 64, Speed: 43},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"tackle", "water_jet"}},
				{Level: 8, Moves: []MoveID{"mist"}},
				{Level: 20, Moves: []MoveID{"rest"}},
			},
			CatchRate: 45, Curve: CurveMediumSlow,
			Evolution: &Evolution{Method: EvolveLevel, Into: "aquafin_evo", LevelReq: 16},
		},
		{
			ID: "aquafin_evo", Name: "Deepfin",
			Types: []ElementalType{TypeWater},
			Base:  BaseStats{HP: 79, Attack: 83, Defense: 100, SpecialAttack: 85, SpecialDefense: 105, Speed: 78},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"tackle", "water_jet", "mist"}},
				{Level: 36, Moves: []MoveID{"rest"}},
			},
			CatchRate: 45, Curve: CurveMediumSlow,
		},
		{
			ID: "sproutling", Name: "Sproutling",
			Types: []ElementalType{TypeGrass, TypePoison},
			Base:  BaseStats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"tackle", "growl"}},
				{Level: 7, Moves: []MoveID{"vine_whip"}},
				{Level: 13, Moves: []MoveID{"leech_seed"}},
				{Level: 22, Moves: []MoveID{"sludge"}},
			},
			CatchRate: 45, Curve: CurveMediumSlow,
		},
		{
			ID: "voltmouse", Name: "Voltmouse",
			Types: []ElementalType{TypeElectric},
			Base:  BaseStats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"tackle", "growl"}},
				{Level: 10, Moves: []MoveID{"thunder_fang"}},
				{Level: 15, Moves: []MoveID{"agility"}},
			},
			CatchRate: 190, Curve: CurveMediumFast,
		},
		{
			ID: "duneclaw", Name: "Duneclaw",
			Types: []ElementalType{TypeGround, TypeRock},
			Base:  BaseStats{HP: 50, Attack: 70, Defense: 80, SpecialAttack: 30, SpecialDefense: 45, Speed: 40},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"tackle", "harden"}},
				{Level: 9, Moves: []MoveID{"earth_slam"}},
				{Level: 18, Moves: []MoveID{"rock_throw"}},
				{Level: 28, Moves: []MoveID{"fissure"}},
			},
			CatchRate: 60, Curve: CurveSlow,
		},
		{
			ID: "wispkin", Name: "Wispkin",
			Types: []ElementalType{TypeGhost, TypePsychic},
			Base:  BaseStats{HP: 50, Attack: 45, Defense: 45, SpecialAttack: 95, SpecialDefense: 95, Speed: 75},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"shadow_touch", "confuse_ray"}},
				{Level: 12, Moves: []MoveID{"nightmare"}},
				{Level: 20, Moves: []MoveID{"mind_bend"}},
				{Level: 26, Moves: []MoveID{"disable"}},
			},
			CatchRate: 45, Curve: CurveMediumSlow,
		},
		{
			ID: "chitinox", Name: "Chitinox",
			Types: []ElementalType{TypeBug, TypeFlying},
			Base:  BaseStats{HP: 60, Attack: 45, Defense: 50, SpecialAttack: 90, SpecialDefense: 80, Speed: 70},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"swarm", "gust"}},
				{Level: 11, Moves: []MoveID{"pin_missile"}},
				{Level: 21, Moves: []MoveID{"mirror_move"}},
			},
			CatchRate: 45, Curve: CurveMediumSlow,
		},
		{
			ID: "drakeling", Name: "Drakeling",
			Types: []ElementalType{TypeDragon},
			Base:  BaseStats{HP: 61, Attack: 84, Defense: 65, SpecialAttack: 70, SpecialDefense: 70, Speed: 70},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"tackle", "thrash"}},
				{Level: 15, Moves: []MoveID{"dragon_rush"}},
				{Level: 25, Moves: []MoveID{"agility"}},
			},
			CatchRate: 45, Curve: CurveSlow,
		},
		{
			ID: "ditto_clone", Name: "Mimetic",
			Types: []ElementalType{TypeNormal},
			Base:  BaseStats{HP: 48, Attack: 48, Defense: 48, SpecialAttack: 48, SpecialDefense: 48, Speed: 48},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"transform"}},
			},
			CatchRate: 35, Curve: CurveMediumFast,
		},
		{
			ID: "boomrock", Name: "Boomrock",
			Types: []ElementalType{TypeRock, TypeFighting},
			Base:  BaseStats{HP: 65, Attack: 105, Defense: 100, SpecialAttack: 40, SpecialDefense: 45, Speed: 35},
			Learnset: []LearnsetEntry{
				{Level: 1, Moves: []MoveID{"tackle", "harden"}},
				{Level: 14, Moves: []MoveID{"rock_throw"}},
				{Level: 24, Moves: []MoveID{"counter"}},
				{Level: 33, Moves: []MoveID{"self_destruct"}},
			},
			CatchRate: 65, Curve: CurveSlow,
		},
	}
}
