package fray

import (
	"math/rand/v2"
	"testing"
)

var testCreatureJson = []byte(`{
	"No.004": {"dex": "No.004", "name": "Charmander", "type1": "Fire", "hp": 39,
		"attack": 52, "defense": 43, "sp_attack": 60, "sp_defense": 50, "speed": 65},
	"No.007": {"dex": "No.007", "name": "Squirtle", "type1": "Water", "hp": 44,
		"attack": 48, "defense": 65, "sp_attack": 50, "sp_defense": 64, "speed": 43}
}`)

var testMoveJson = []byte(`{
	"ember": {"name": "Ember", "type": "Fire", "power": 40, "accuracy": 100, "pp": 25, "category": "special"},
	"growl": {"name": "Growl", "type": "Normal", "power": null, "accuracy": 100, "pp": 40, "category": "status"},
	"swift": {"name": "Swift", "type": "Normal", "power": 60, "accuracy": null, "pp": 20, "category": "physical"}
}`)

var testLearnsetJson = []byte(`{
	"No.004": ["ember", "growl", "swift"],
	"No.007": ["growl"]
}`)

var testChartJson = []byte(`{
	"Fire": {"Water": 0.5, "Grass": 2}
}`)

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := NewRegistry(testCreatureJson, testMoveJson, testLearnsetJson, testChartJson)
	if err != nil {
		t.Fatal(err)
	}

	return reg
}

func TestRegistryLoadsOptionalFieldsAsNil(t *testing.T) {
	reg := testRegistry(t)

	growl := reg.GetMove("growl")
	if growl == nil {
		t.Fatal("growl should load")
	}
	if growl.Power != nil {
		t.Fatal("null power should load as nil")
	}
	if growl.Damaging() {
		t.Fatal("a nil-power move is not damaging")
	}

	swift := reg.GetMove("swift")
	if swift.Accuracy != nil {
		t.Fatal("null accuracy should load as nil")
	}

	ember := reg.GetMove("ember")
	if ember.Power == nil || *ember.Power != 40 {
		t.Fatal("present power should load as a value")
	}
}

func TestRegistryGetCreatureReturnsFreshCopy(t *testing.T) {
	reg := testRegistry(t)

	c := reg.GetCreature("No.004")
	if c == nil {
		t.Fatal("known dex id should resolve")
	}

	if c.CurrentHp != c.Hp {
		t.Fatalf("fresh creature should be at full HP: %d/%d", c.CurrentHp, c.Hp)
	}

	c.CurrentHp = 0

	if again := reg.GetCreature("No.004"); again.CurrentHp != again.Hp {
		t.Fatal("registry copies should not share battle state")
	}

	if reg.GetCreature("No.999") != nil {
		t.Fatal("unknown dex id should return nil")
	}
}

func TestBuildMovesetPrefersDamagingMoves(t *testing.T) {
	reg := testRegistry(t)

	moveset := reg.BuildMoveset("No.004", 4)
	if len(moveset) != 3 {
		t.Fatalf("expected all 3 legal moves, got %d", len(moveset))
	}

	if !moveset[0].Damaging() {
		t.Fatalf("first slot should hold a damaging move, got %s", moveset[0].Name)
	}

	// Squirtle's only legal move here is a status move; it still gets it
	moveset = reg.BuildMoveset("No.007", 4)
	if len(moveset) != 1 || moveset[0].Name != "Growl" {
		t.Fatalf("unexpected moveset: %v", moveset)
	}
}

func TestRandomMovesetGuaranteesDamage(t *testing.T) {
	reg := testRegistry(t)
	rng := rand.New(rand.NewPCG(7, 7))

	for range 50 {
		moveset := reg.RandomMoveset("No.004", 2, rng)
		if len(moveset) == 0 {
			t.Fatal("learnset with moves should never produce an empty moveset")
		}

		hasDamage := false
		for _, m := range moveset {
			if m.Damaging() {
				hasDamage = true
			}
		}

		if !hasDamage {
			t.Fatal("random moveset should keep at least one damaging move")
		}
	}
}

func TestRandomTeamSize(t *testing.T) {
	reg := testRegistry(t)
	rng := rand.New(rand.NewPCG(3, 9))

	team := reg.RandomTeam(3, rng)
	if len(team) != 3 {
		t.Fatalf("expected 3 creatures, got %d", len(team))
	}

	for _, c := range team {
		if c.IsNil() || len(c.Moves) == 0 {
			t.Fatalf("each team member should be battle ready: %+v", c)
		}
	}
}

func TestLoadedChartFeedsDamage(t *testing.T) {
	reg := testRegistry(t)

	if eff := reg.Chart.Multiplier("Fire", "Water"); eff != 0.5 {
		t.Fatalf("loaded chart should answer lookups, got %v", eff)
	}

	if eff := reg.Chart.Multiplier("Fire", "Rock"); eff != 1 {
		t.Fatalf("pairs missing from a loaded chart stay neutral, got %v", eff)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("razor-leaf"); got != "Razor Leaf" {
		t.Fatalf("expected Razor Leaf, got %q", got)
	}
}
