package fray

import "fmt"

// Move is one attack slot as it exists inside a battle. Power and Accuracy
// are pointers because both are genuinely optional: a nil Power marks a
// non-damaging move and a nil Accuracy marks a move that never misses.
// Data loaders convert whatever absence convention the source files use
// into nil at the boundary; no sentinel values exist past this point.
type Move struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Power    *int   `json:"power"`
	Accuracy *int   `json:"accuracy"`
	PP       int    `json:"pp"`
	Category string `json:"category"`
	Effect   string `json:"effect,omitempty"`

	// LastResort tags the built-in fallback move a creature uses when it has
	// no damaging move with PP left. It is never a registry entry, never
	// saved, and carries recoil when resolved.
	LastResort bool `json:"-"`
}

func (m Move) IsNil() bool {
	return m.Name == ""
}

// Damaging reports whether the move can deal direct damage at all.
func (m Move) Damaging() bool {
	return m.Power != nil
}

// Usable reports whether the move can still be attempted this battle.
func (m Move) Usable() bool {
	return m.PP > 0
}

func (m Move) String() string {
	powText := "-"
	if m.Power != nil {
		powText = fmt.Sprint(*m.Power)
	}

	return fmt.Sprintf("%s [%s/%s] Pow:%s", m.Name, m.Type, m.Category, powText)
}

// Creature is a combatant inside one battle. The six base stats and typing
// never change during a battle; CurrentHp and each move's PP are the only
// battle-scoped mutable state.
type Creature struct {
	Dex   string `json:"dex"`
	Name  string `json:"name"`
	Type1 string `json:"type1"`
	// Type2 is empty for mono-typed creatures
	Type2 string `json:"type2,omitempty"`

	Hp        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`

	CurrentHp int `json:"current_hp"`

	Moves []Move `json:"moves"`
}

func (c Creature) IsNil() bool {
	return c.Name == ""
}

func (c Creature) Fainted() bool {
	return c.CurrentHp <= 0
}

func (c Creature) HasType(t string) bool {
	return t != "" && (c.Type1 == t || c.Type2 == t)
}

// ApplyDamage lowers CurrentHp by dmg, never below zero.
func (c *Creature) ApplyDamage(dmg int) {
	c.CurrentHp = max(0, c.CurrentHp-dmg)
}

// Heal raises CurrentHp by heal, never above the base Hp stat.
func (c *Creature) Heal(heal int) {
	c.CurrentHp = min(c.Hp, c.CurrentHp+heal)
}

// UsableMoves returns the indices of moves that still have PP and can deal
// damage. An empty result means the creature is down to its last resort.
func (c Creature) UsableMoves() []int {
	usable := make([]int, 0, len(c.Moves))

	for i, m := range c.Moves {
		if m.Usable() && m.Damaging() {
			usable = append(usable, i)
		}
	}

	return usable
}

func (c Creature) String() string {
	t2 := ""
	if c.Type2 != "" {
		t2 = "/" + c.Type2
	}

	return fmt.Sprintf("%s %s (%s%s)", c.Dex, c.Name, c.Type1, t2)
}
