package data

// typeChart holds the attacking-type -> defending-type multiplier table.
// Entries absent from the inner map default to 1.0 (neutral). TypeNone is
// never a key on either axis: it is handled as a special case in
// Effectiveness, always returning 1.0.
var typeChart = map[ElementalType]map[ElementalType]float64{
	TypeNormal: {
		TypeRock: 0.5, TypeGhost: 0.0,
	},
	TypeFire: {
		TypeFire: 0.5, TypeWater: 0.5, TypeGrass: 2.0, TypeIce: 2.0,
		TypeBug: 2.0, TypeRock: 0.5, TypeDragon: 0.5,
	},
	TypeWater: {
		TypeFire: 2.0, TypeWater: 0.5, TypeGrass: 0.5, TypeGround: 2.0,
		TypeRock: 2.0, TypeDragon: 0.5,
	},
	TypeElectric: {
		TypeWater: 2.0, TypeElectric: 0.5, TypeGrass: 0.5, TypeGround: 0.0,
		TypeFlying: 2.0, TypeDragon: 0.5,
	},
	TypeGrass: {
		TypeFire: 0.5, TypeWater: 2.0, TypeGrass: 0.5, TypeElectric: 2.0,
		TypePoison: 0.5, TypeGround: 2.0, TypeFlying: 0.5, TypeBug: 0.5,
		TypeRock: 2.0, TypeDragon: 0.5,
	},
	TypeIce: {
		TypeWater: 0.5, TypeGrass: 2.0, TypeIce: 0.5, TypeGround: 2.0,
		TypeFlying: 2.0, TypeDragon: 2.0,
	},
	TypeFighting: {
		TypeNormal: 2.0, TypeIce: 2.0, TypePoison: 0.5, TypeFlying: 0.5,
		TypePsychic: 0.5, TypeBug: 0.5, TypeRock: 2.0, TypeGhost: 0.0,
	},
	TypePoison: {
		TypeGrass: 2.0, TypePoison: 0.5, TypeGround: 0.5, TypeRock: 0.5,
		TypeGhost: 0.5, TypeBug: 2.0,
	},
	TypeGround: {
		TypeFire: 2.0, TypeElectric: 2.0, TypeGrass: 0.5, TypePoison: 2.0,
		TypeFlying: 0.0, TypeRock: 2.0, TypeBug: 0.5,
	},
	TypeFlying: {
		TypeElectric: 0.5, TypeGrass: 2.0, TypeFighting: 2.0, TypeBug: 2.0,
		TypeRock: 0.5,
	},
	TypePsychic: {
		TypeFighting: 2.0, TypePoison: 2.0, TypePsychic: 0.5,
	},
	TypeBug: {
		TypeFire: 0.5, TypeGrass: 2.0, TypeFighting: 0.5, TypePoison: 2.0,
		TypeFlying: 0.5, TypePsychic: 2.0, TypeGhost: 0.5,
	},
	TypeRock: {
		TypeFire: 2.0, TypeIce: 2.0, TypeFighting: 0.5, TypeGround: 0.5,
		TypeFlying: 2.0, TypeBug: 2.0,
	},
	TypeGhost: {
		TypeNormal: 0.0, TypePsychic: 0.0, TypeGhost: 2.0,
	},
	TypeDragon: {
		TypeDragon: 2.0,
	},
}

// Effectiveness returns the multiplier for an attacking type against a
// single defending type: one of {0.0, 0.5, 1.0, 2.0}. TypeNone is always
// 1.0 on the defending side, per spec.
func Effectiveness(attacking, defending ElementalType) float64 {
	if defending == TypeNone || attacking == TypeNone {
		return 1.0
	}
	if row, ok := typeChart[attacking]; ok {
		if mult, ok := row[defending]; ok {
			return mult
		}
	}
	return 1.0
}

// EffectivenessAgainst multiplies the attacking type's effectiveness over
// one or two defending types (dual-type creatures multiply both factors).
func EffectivenessAgainst(attacking ElementalType, defendingTypes []ElementalType) float64 {
	product := 1.0
	for _, d := range defendingTypes {
		product *= Effectiveness(attacking, d)
	}
	return product
}
