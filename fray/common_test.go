package fray

import "math/rand/v2"

func intp(n int) *int {
	return &n
}

func testMove(name string, typ string, power int, accuracy int, pp int) Move {
	m := Move{
		Name:     name,
		Type:     typ,
		PP:       pp,
		Category: CATEGORY_PHYSICAL,
	}

	if IsSpecialType(typ) {
		m.Category = CATEGORY_SPECIAL
	}

	if power > 0 {
		m.Power = intp(power)
	}

	if accuracy >= 0 {
		m.Accuracy = intp(accuracy)
	}

	return m
}

func testCreature(name string, type1 string, type2 string, hp int, speed int, moves ...Move) Creature {
	return Creature{
		Dex:       "No.000",
		Name:      name,
		Type1:     type1,
		Type2:     type2,
		Hp:        hp,
		Attack:    100,
		Defense:   50,
		SpAttack:  100,
		SpDefense: 50,
		Speed:     speed,
		CurrentHp: hp,
		Moves:     moves,
	}
}

func testSeed() rand.PCG {
	return *rand.NewPCG(123, 456)
}

func mustBattle(a Creature, b Creature) *Battle {
	battle, err := NewBattle(
		NewSide("Side A", []Creature{a}),
		NewSide("Side B", []Creature{b}),
		DefaultChart,
		testSeed(),
	)
	if err != nil {
		panic(err)
	}

	return battle
}
