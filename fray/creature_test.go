package fray

import "testing"

func TestApplyDamageFloorsAtZero(t *testing.T) {
	c := testCreature("Target", TYPENAME_NORMAL, "", 100, 50)

	c.ApplyDamage(30)
	if c.CurrentHp != 70 {
		t.Fatalf("expected 70 hp, got %d", c.CurrentHp)
	}

	c.ApplyDamage(999)
	if c.CurrentHp != 0 {
		t.Fatalf("hp should never go negative, got %d", c.CurrentHp)
	}

	if !c.Fainted() {
		t.Fatal("a creature at 0 hp has fainted")
	}
}

func TestHealClampsToMaxHp(t *testing.T) {
	c := testCreature("Target", TYPENAME_NORMAL, "", 100, 50)
	c.CurrentHp = 40

	c.Heal(25)
	if c.CurrentHp != 65 {
		t.Fatalf("expected 65 hp, got %d", c.CurrentHp)
	}

	c.Heal(999)
	if c.CurrentHp != 100 {
		t.Fatalf("heal should stop at the hp stat, got %d", c.CurrentHp)
	}
}

func TestUsableMovesSkipsEmptyAndStatusMoves(t *testing.T) {
	spent := testMove("Spent", TYPENAME_NORMAL, 40, 100, 0)
	growl := Move{Name: "Growl", Type: TYPENAME_NORMAL, PP: 40, Category: CATEGORY_STATUS}
	tackle := testMove("Tackle", TYPENAME_NORMAL, 40, 100, 35)

	c := testCreature("Actor", TYPENAME_NORMAL, "", 100, 50, spent, growl, tackle)

	usable := c.UsableMoves()
	if len(usable) != 1 || usable[0] != 2 {
		t.Fatalf("only the stocked damaging move should be usable, got %v", usable)
	}
}
