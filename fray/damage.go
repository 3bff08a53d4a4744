package fray

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
)

// All damage is computed as if both combatants were this level.
const battleLevel = 50

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// Damage calculates how much one use of move by attacker takes off defender.
//
// The function is pure: accuracy rolls and PP accounting belong to the
// battle resolver, and the caller supplies the variance factor (1.0 makes
// the result fully deterministic). A non-immune hit from a damaging move
// always deals at least 1.
func Damage(attacker Creature, defender Creature, move Move, chart TypeChart, variance float64) int {
	if !move.Damaging() {
		return 0
	}

	effectiveness := chart.Multiplier(move.Type, defender.Type1, defender.Type2)

	// Immunity skips everything, including the minimum damage clamp
	if effectiveness == 0 {
		return 0
	}

	var atk, def int
	if IsSpecialType(move.Type) {
		atk = attacker.SpAttack
		def = defender.SpDefense
	} else {
		atk = attacker.Attack
		def = defender.Defense
	}

	def = max(1, def)

	base := ((2*battleLevel/5+2)*float64(*move.Power)*(float64(atk)/float64(def)))/50 + 2

	stab := 1.0
	if attacker.HasType(move.Type) {
		stab = 1.5
	}

	total := base * stab * effectiveness * variance
	damage := max(1, int(total))

	damageLogger().Info("damage calc",
		"attacker", attacker.Name,
		"defender", defender.Name,
		"move", move.Name,
		"power", *move.Power,
		"attackValue", atk,
		"defenseValue", def,
		"base", base,
		"stab", stab,
		"effectiveness", effectiveness,
		"variance", variance,
		"damage", damage)

	return damage
}

// RollVariance samples the damage spread factor, uniform in [0.85, 1.00].
func RollVariance(rng *rand.Rand) float64 {
	return float64(rng.UintN(16)+85) / 100.0
}
