package fray

const (
	CATEGORY_PHYSICAL = "physical"
	CATEGORY_SPECIAL  = "special"
	CATEGORY_STATUS   = "status"
)

const (
	TYPENAME_NORMAL   = "Normal"
	TYPENAME_FIRE     = "Fire"
	TYPENAME_WATER    = "Water"
	TYPENAME_ELECTRIC = "Electric"
	TYPENAME_GRASS    = "Grass"
	TYPENAME_ICE      = "Ice"
	TYPENAME_FIGHTING = "Fighting"
	TYPENAME_POISON   = "Poison"
	TYPENAME_GROUND   = "Ground"
	TYPENAME_FLYING   = "Flying"
	TYPENAME_PSYCHIC  = "Psychic"
	TYPENAME_BUG      = "Bug"
	TYPENAME_ROCK     = "Rock"
	TYPENAME_GHOST    = "Ghost"
	TYPENAME_DRAGON   = "Dragon"
)

// specialTypes are the gen-1 types whose moves hit with special attack
// against special defense. Every other type is physical.
var specialTypes = map[string]bool{
	TYPENAME_FIRE:     true,
	TYPENAME_WATER:    true,
	TYPENAME_GRASS:    true,
	TYPENAME_ELECTRIC: true,
	TYPENAME_ICE:      true,
	TYPENAME_PSYCHIC:  true,
	TYPENAME_DRAGON:   true,
}

// IsSpecialType reports whether attacks of this type use the special stat pair.
func IsSpecialType(t string) bool {
	return specialTypes[t]
}

// TypeChart maps attacking type -> defending type -> multiplier.
// Pairs not listed are neutral (1.0) and a 0 entry means immunity.
type TypeChart map[string]map[string]float64

// Multiplier combines the per-type lookups for a defender with one or two types.
// Unknown attack or defense types contribute exactly 1.0.
func (c TypeChart) Multiplier(attackType string, defenderTypes ...string) float64 {
	row := c[attackType]
	mult := 1.0

	for _, t := range defenderTypes {
		if t == "" {
			continue
		}

		if eff, ok := row[t]; ok {
			mult *= eff
		}
	}

	return mult
}

// DefaultChart is the gen-1 type matchup chart. Loaders may replace it with
// an externally supplied chart of the same shape.
var DefaultChart = TypeChart{
	TYPENAME_NORMAL: {
		TYPENAME_ROCK: 0.5,

		TYPENAME_GHOST: 0,
	},
	TYPENAME_FIRE: {
		TYPENAME_GRASS: 2,
		TYPENAME_ICE:   2,
		TYPENAME_BUG:   2,

		TYPENAME_FIRE:   .5,
		TYPENAME_WATER:  .5,
		TYPENAME_ROCK:   .5,
		TYPENAME_DRAGON: .5,
	},
	TYPENAME_WATER: {
		TYPENAME_FIRE:   2,
		TYPENAME_GROUND: 2,
		TYPENAME_ROCK:   2,

		TYPENAME_WATER:  .5,
		TYPENAME_GRASS:  .5,
		TYPENAME_DRAGON: .5,
	},
	TYPENAME_ELECTRIC: {
		TYPENAME_WATER:  2,
		TYPENAME_FLYING: 2,

		TYPENAME_ELECTRIC: .5,
		TYPENAME_GRASS:    .5,
		TYPENAME_DRAGON:   .5,

		TYPENAME_GROUND: 0,
	},
	TYPENAME_GRASS: {
		TYPENAME_WATER:  2,
		TYPENAME_GROUND: 2,
		TYPENAME_ROCK:   2,

		TYPENAME_FIRE:   .5,
		TYPENAME_GRASS:  .5,
		TYPENAME_POISON: .5,
		TYPENAME_FLYING: .5,
		TYPENAME_BUG:    .5,
		TYPENAME_DRAGON: .5,
	},
	TYPENAME_ICE: {
		TYPENAME_GRASS:  2,
		TYPENAME_GROUND: 2,
		TYPENAME_FLYING: 2,
		TYPENAME_DRAGON: 2,

		TYPENAME_WATER: .5,
		TYPENAME_ICE:   .5,
	},
	TYPENAME_FIGHTING: {
		TYPENAME_NORMAL: 2,
		TYPENAME_ICE:    2,
		TYPENAME_ROCK:   2,

		TYPENAME_POISON:  .5,
		TYPENAME_FLYING:  .5,
		TYPENAME_PSYCHIC: .5,
		TYPENAME_BUG:     .5,

		TYPENAME_GHOST: 0,
	},
	TYPENAME_POISON: {
		TYPENAME_GRASS: 2,
		TYPENAME_BUG:   2,

		TYPENAME_POISON: .5,
		TYPENAME_GROUND: .5,
		TYPENAME_ROCK:   .5,
		TYPENAME_GHOST:  .5,
	},
	TYPENAME_GROUND: {
		TYPENAME_FIRE:     2,
		TYPENAME_ELECTRIC: 2,
		TYPENAME_POISON:   2,
		TYPENAME_ROCK:     2,

		TYPENAME_GRASS: .5,
		TYPENAME_BUG:   .5,

		TYPENAME_FLYING: 0,
	},
	TYPENAME_FLYING: {
		TYPENAME_GRASS:    2,
		TYPENAME_FIGHTING: 2,
		TYPENAME_BUG:      2,

		TYPENAME_ELECTRIC: .5,
		TYPENAME_ROCK:     .5,
	},
	TYPENAME_PSYCHIC: {
		TYPENAME_FIGHTING: 2,
		TYPENAME_POISON:   2,

		TYPENAME_PSYCHIC: .5,
	},
	TYPENAME_BUG: {
		TYPENAME_GRASS:   2,
		TYPENAME_POISON:  2,
		TYPENAME_PSYCHIC: 2,

		TYPENAME_FIRE:     .5,
		TYPENAME_FIGHTING: .5,
		TYPENAME_FLYING:   .5,
		TYPENAME_GHOST:    .5,
	},
	TYPENAME_ROCK: {
		TYPENAME_FIRE:   2,
		TYPENAME_ICE:    2,
		TYPENAME_FLYING: 2,
		TYPENAME_BUG:    2,

		TYPENAME_FIGHTING: .5,
		TYPENAME_GROUND:   .5,
	},
	TYPENAME_GHOST: {
		TYPENAME_GHOST: 2,

		TYPENAME_NORMAL:  0,
		TYPENAME_PSYCHIC: 0,
	},
	TYPENAME_DRAGON: {
		TYPENAME_DRAGON: 2,
	},
}
