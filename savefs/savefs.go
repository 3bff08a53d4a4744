// Package savefs persists teams, in-progress battle snapshots, and
// finished battle archives as plain JSON files. Nothing here makes
// durability promises: a save is whatever the last write left on disk.
package savefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lflygare/wildfray/fray"
)

var (
	ErrNoSuchTeam = errors.New("no such team exists")
	ErrNoSuchSlot = errors.New("no such save slot exists")
)

const teamsFileName = "teams.json"

type SavedTeams map[string][]fray.Creature

// SaveTeam adds or replaces one named roster inside the shared teams file.
func SaveTeam(saveDir string, name string, team []fray.Creature) error {
	teams, err := LoadTeamMap(saveDir)
	if err != nil {
		return err
	}

	keep := make([]fray.Creature, 0, len(team))
	for _, c := range team {
		if !c.IsNil() {
			keep = append(keep, c)
		}
	}

	teams[name] = keep

	teamsJson, err := json.Marshal(teams)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(saveDir, teamsFileName), teamsJson, 0666)
}

func LoadTeam(saveDir string, name string) ([]fray.Creature, error) {
	teams, err := LoadTeamMap(saveDir)
	if err != nil {
		return nil, err
	}

	team, ok := teams[name]
	if !ok {
		return nil, ErrNoSuchTeam
	}

	return team, nil
}

func LoadTeamMap(saveDir string) (SavedTeams, error) {
	path := filepath.Join(saveDir, teamsFileName)

	contents, err := os.ReadFile(path)
	if err != nil {
		// assume the file doesn't exist yet
		if err := os.MkdirAll(saveDir, 0750); err != nil {
			return nil, err
		}

		return make(SavedTeams), nil
	}

	teams := make(SavedTeams)
	if len(contents) > 0 {
		if err := json.Unmarshal(contents, &teams); err != nil {
			return nil, err
		}
	}

	return teams, nil
}

func ListTeams(saveDir string) ([]string, error) {
	teams, err := LoadTeamMap(saveDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(teams))
	for name := range teams {
		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

func slotsDir(saveDir string) string {
	return filepath.Join(saveDir, "slots")
}

// SaveSlot snapshots a whole battle under a slot name for resuming later.
func SaveSlot(saveDir string, name string, battle *fray.Battle) error {
	if err := os.MkdirAll(slotsDir(saveDir), 0750); err != nil {
		return err
	}

	snapshot, err := json.MarshalIndent(battle, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(slotsDir(saveDir), name+".json"), snapshot, 0666)
}

// LoadSlot restores a snapshot. The battle's rng state is not part of the
// snapshot, so the resumed battle gets a fresh seed.
func LoadSlot(saveDir string, name string) (*fray.Battle, error) {
	contents, err := os.ReadFile(filepath.Join(slotsDir(saveDir), name+".json"))
	if err != nil {
		return nil, ErrNoSuchSlot
	}

	battle := &fray.Battle{}
	if err := json.Unmarshal(contents, battle); err != nil {
		return nil, err
	}

	if battle.Chart == nil {
		battle.Chart = fray.DefaultChart
	}

	battle.RngSource = fray.CreateRandomSeed()

	return battle, nil
}

func ListSlots(saveDir string) ([]string, error) {
	entries, err := os.ReadDir(slotsDir(saveDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	slots := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		slots = append(slots, strings.TrimSuffix(entry.Name(), ".json"))
	}

	sort.Strings(slots)

	return slots, nil
}

func DeleteSlot(saveDir string, name string) error {
	return os.Remove(filepath.Join(slotsDir(saveDir), name+".json"))
}

// ArchiveMeta is the summary block at the top of every battle archive.
type ArchiveMeta struct {
	ID       string    `json:"id"`
	When     time.Time `json:"when"`
	SideA    string    `json:"side_a"`
	SideB    string    `json:"side_b"`
	Winner   int       `json:"winner"`
	WonBy    string    `json:"won_by,omitempty"`
	Rounds   int       `json:"rounds"`
	PlayerID string    `json:"player,omitempty"`
}

type archiveFile struct {
	Meta   ArchiveMeta         `json:"meta"`
	Log    []string            `json:"log"`
	Events []fray.ActionRecord `json:"events"`
}

// WriteArchive stores a finished battle's log and event records under
// saves/battles, named by timestamp. Returns the written path.
func WriteArchive(saveDir string, battle *fray.Battle, playerName string) (string, error) {
	battlesDir := filepath.Join(saveDir, "battles")
	if err := os.MkdirAll(battlesDir, 0750); err != nil {
		return "", err
	}

	now := time.Now()

	// empty for draws; the numeric Winner tag still records those
	wonBy := ""
	if battle.Winner == fray.WINNER_SIDE_A || battle.Winner == fray.WINNER_SIDE_B {
		wonBy = battle.GetSide(battle.WinnerSideIndex()).Name
	}

	archive := archiveFile{
		Meta: ArchiveMeta{
			ID:       uuid.NewString(),
			When:     now,
			SideA:    battle.SideA.Name,
			SideB:    battle.SideB.Name,
			Winner:   battle.Winner,
			WonBy:    wonBy,
			Rounds:   battle.Turn,
			PlayerID: playerName,
		},
		Log:    battle.Log,
		Events: battle.Events,
	}

	contents, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(battlesDir, fmt.Sprintf("battle_%s.json", now.Format("20060102_150405")))
	if err := os.WriteFile(path, contents, 0666); err != nil {
		return "", err
	}

	return path, nil
}
