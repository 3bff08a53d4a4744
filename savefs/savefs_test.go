package savefs

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/lflygare/wildfray/fray"
)

func intp(i int) *int { return &i }

func testCreature(name string) fray.Creature {
	return fray.Creature{
		Dex:       "No.000",
		Name:      name,
		Type1:     fray.TYPENAME_NORMAL,
		Hp:        100,
		Attack:    100,
		Defense:   50,
		SpAttack:  100,
		SpDefense: 50,
		Speed:     80,
		CurrentHp: 100,
		Moves: []fray.Move{
			{Name: "Strike", Type: fray.TYPENAME_NORMAL, Power: intp(60), Accuracy: intp(100), PP: 20, Category: fray.CATEGORY_PHYSICAL},
		},
	}
}

func testBattle(t *testing.T) *fray.Battle {
	t.Helper()

	battle, err := fray.NewBattle(
		fray.Side{Name: "Red", Team: []fray.Creature{testCreature("Alpha")}},
		fray.Side{Name: "Blue", Team: []fray.Creature{testCreature("Beta")}},
		fray.DefaultChart,
		*rand.NewPCG(1, 2),
	)
	if err != nil {
		t.Fatalf("NewBattle: %s", err)
	}

	return battle
}

func TestSaveAndLoadTeam(t *testing.T) {
	dir := t.TempDir()

	team := []fray.Creature{testCreature("Alpha"), testCreature("Beta")}
	if err := SaveTeam(dir, "starters", team); err != nil {
		t.Fatalf("SaveTeam: %s", err)
	}

	loaded, err := LoadTeam(dir, "starters")
	if err != nil {
		t.Fatalf("LoadTeam: %s", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 creatures, got %d", len(loaded))
	}

	if loaded[0].Name != "Alpha" || loaded[1].Name != "Beta" {
		t.Fatalf("team came back wrong: %+v", loaded)
	}

	if len(loaded[0].Moves) != 1 || loaded[0].Moves[0].Name != "Strike" {
		t.Fatalf("moves did not survive the round trip: %+v", loaded[0].Moves)
	}
}

func TestSaveTeamDropsEmptySlots(t *testing.T) {
	dir := t.TempDir()

	team := []fray.Creature{testCreature("Alpha"), {}, {}}
	if err := SaveTeam(dir, "sparse", team); err != nil {
		t.Fatalf("SaveTeam: %s", err)
	}

	loaded, err := LoadTeam(dir, "sparse")
	if err != nil {
		t.Fatalf("LoadTeam: %s", err)
	}

	if len(loaded) != 1 {
		t.Fatalf("empty slots should be dropped, got %d creatures", len(loaded))
	}
}

func TestLoadMissingTeam(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTeam(dir, "nope"); !errors.Is(err, ErrNoSuchTeam) {
		t.Fatalf("expected ErrNoSuchTeam, got %v", err)
	}
}

func TestListTeamsSorted(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := SaveTeam(dir, name, []fray.Creature{testCreature("Alpha")}); err != nil {
			t.Fatalf("SaveTeam(%s): %s", name, err)
		}
	}

	names, err := ListTeams(dir)
	if err != nil {
		t.Fatalf("ListTeams: %s", err)
	}

	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestSlotRoundTrip(t *testing.T) {
	dir := t.TempDir()

	battle := testBattle(t)
	battle.GetSide(fray.SIDE_A).Active().ApplyDamage(30)

	if err := SaveSlot(dir, "autosave", battle); err != nil {
		t.Fatalf("SaveSlot: %s", err)
	}

	loaded, err := LoadSlot(dir, "autosave")
	if err != nil {
		t.Fatalf("LoadSlot: %s", err)
	}

	if got := loaded.GetSide(fray.SIDE_A).Active().CurrentHp; got != 70 {
		t.Fatalf("expected restored hp of 70, got %d", got)
	}

	if loaded.Opener != battle.Opener || loaded.Turn != battle.Turn {
		t.Fatalf("battle bookkeeping did not survive: %+v", loaded)
	}

	// resumed battles must still be playable
	result := fray.ResolveAction(loaded, 0)
	if result.Kind != fray.RESULT_RESOLVED {
		t.Fatalf("resumed battle rejected an ordinary action: %+v", result)
	}
}

func TestLoadMissingSlot(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSlot(dir, "nope"); !errors.Is(err, ErrNoSuchSlot) {
		t.Fatalf("expected ErrNoSuchSlot, got %v", err)
	}
}

func TestListAndDeleteSlots(t *testing.T) {
	dir := t.TempDir()

	slots, err := ListSlots(dir)
	if err != nil {
		t.Fatalf("ListSlots on empty dir: %s", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}

	battle := testBattle(t)
	for _, name := range []string{"two", "one"} {
		if err := SaveSlot(dir, name, battle); err != nil {
			t.Fatalf("SaveSlot(%s): %s", name, err)
		}
	}

	slots, err = ListSlots(dir)
	if err != nil {
		t.Fatalf("ListSlots: %s", err)
	}
	if len(slots) != 2 || slots[0] != "one" || slots[1] != "two" {
		t.Fatalf("expected [one two], got %v", slots)
	}

	if err := DeleteSlot(dir, "one"); err != nil {
		t.Fatalf("DeleteSlot: %s", err)
	}

	slots, err = ListSlots(dir)
	if err != nil {
		t.Fatalf("ListSlots after delete: %s", err)
	}
	if len(slots) != 1 || slots[0] != "two" {
		t.Fatalf("expected [two], got %v", slots)
	}
}

func TestWriteArchive(t *testing.T) {
	dir := t.TempDir()

	battle := testBattle(t)
	for !battle.Over() {
		fray.ResolveAction(battle, 0)
	}

	path, err := WriteArchive(dir, battle, "tester")
	if err != nil {
		t.Fatalf("WriteArchive: %s", err)
	}

	if !strings.Contains(path, "battles") {
		t.Fatalf("archive landed outside the battles dir: %s", path)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading archive back: %s", err)
	}

	archive := archiveFile{}
	if err := json.Unmarshal(contents, &archive); err != nil {
		t.Fatalf("archive is not valid json: %s", err)
	}

	// equal stats and a speed tie mean Red opens every round and wins
	if archive.Meta.Winner != fray.WINNER_SIDE_A || archive.Meta.WonBy != "Red" {
		t.Fatalf("archive meta recorded the wrong winner: %+v", archive.Meta)
	}

	if archive.Meta.PlayerID != "tester" {
		t.Fatalf("archive meta lost the player: %+v", archive.Meta)
	}

	if _, err := LoadSlot(dir, "battle"); err == nil {
		t.Fatalf("archives must not be readable as slots")
	}
}
