package fray

import (
	"encoding/json"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Registry holds every creature, move, and learnset definition the rest of
// the program works from. The battle core never touches files or the
// network; callers load bytes however they like and hand them in here.
type Registry struct {
	Creatures map[string]Creature
	Moves     map[string]Move
	// Learnsets maps a dex id to the names of moves that creature can learn
	Learnsets map[string][]string
	Chart     TypeChart
}

func NewRegistry(creatureBytes, moveBytes, learnsetBytes, chartBytes []byte) (*Registry, error) {
	creatures, err := LoadCreatures(creatureBytes)
	if err != nil {
		return nil, err
	}

	moves, err := LoadMoves(moveBytes)
	if err != nil {
		return nil, err
	}

	learnsets, err := LoadLearnsets(learnsetBytes)
	if err != nil {
		return nil, err
	}

	chart, err := LoadTypeChart(chartBytes)
	if err != nil {
		return nil, err
	}

	return &Registry{
		Creatures: creatures,
		Moves:     moves,
		Learnsets: learnsets,
		Chart:     chart,
	}, nil
}

// LoadCreatures parses {"dex": {creature}} JSON. Current HP starts full.
func LoadCreatures(raw []byte) (map[string]Creature, error) {
	creatures := make(map[string]Creature)
	if err := json.Unmarshal(raw, &creatures); err != nil {
		internalLogger.Error(err, "couldn't unmarshal creature data")
		return nil, err
	}

	for dex, c := range creatures {
		if c.Dex == "" {
			c.Dex = dex
		}
		c.CurrentHp = c.Hp
		creatures[dex] = c
	}

	internalLogger.Info("loaded creatures", "count", len(creatures))

	return creatures, nil
}

// LoadMoves parses {"name": {move}} JSON. A JSON null for power or accuracy
// lands as nil, which is the one and only "absent" representation past this
// boundary.
func LoadMoves(raw []byte) (map[string]Move, error) {
	moves := make(map[string]Move)
	if err := json.Unmarshal(raw, &moves); err != nil {
		internalLogger.Error(err, "couldn't unmarshal move data")
		return nil, err
	}

	for name, m := range moves {
		if m.Name == "" {
			m.Name = name
		}
		if m.Category == "" {
			m.Category = CATEGORY_PHYSICAL
		}
		moves[name] = m
	}

	internalLogger.Info("loaded moves", "count", len(moves))

	return moves, nil
}

func LoadLearnsets(raw []byte) (map[string][]string, error) {
	learnsets := make(map[string][]string)
	if err := json.Unmarshal(raw, &learnsets); err != nil {
		internalLogger.Error(err, "couldn't unmarshal learnset data")
		return nil, err
	}

	internalLogger.Info("loaded learnsets", "count", len(learnsets))

	return learnsets, nil
}

// LoadTypeChart parses {"attackType": {"defenseType": mult}} JSON.
func LoadTypeChart(raw []byte) (TypeChart, error) {
	chart := make(TypeChart)
	if err := json.Unmarshal(raw, &chart); err != nil {
		internalLogger.Error(err, "couldn't unmarshal type chart")
		return nil, err
	}

	return chart, nil
}

// GetCreature returns a fresh battle-ready copy, or nil if the dex id is
// unknown. The copy has full HP and no moves assigned yet.
func (r *Registry) GetCreature(dex string) *Creature {
	c, ok := r.Creatures[dex]
	if !ok {
		return nil
	}

	c.CurrentHp = c.Hp
	c.Moves = nil

	return &c
}

func (r *Registry) GetMove(name string) *Move {
	move, ok := r.Moves[name]
	if ok {
		return &move
	} else {
		return nil
	}
}

// LegalMoves resolves a creature's learnset to full move values, skipping
// names that don't exist in the move table.
func (r *Registry) LegalMoves(dex string) []Move {
	names := r.Learnsets[dex]
	moves := make([]Move, 0, len(names))

	for _, name := range names {
		if move := r.GetMove(name); move != nil {
			moves = append(moves, *move)
		}
	}

	return moves
}

// BuildMoveset picks up to maxMoves legal moves for a creature,
// guaranteeing at least one damaging move whenever the learnset has one.
// That keeps battles from stalling before the last-resort rule kicks in.
func (r *Registry) BuildMoveset(dex string, maxMoves int) []Move {
	legal := r.LegalMoves(dex)

	damaging := lo.Filter(legal, func(m Move, _ int) bool { return m.Damaging() })
	status := lo.Filter(legal, func(m Move, _ int) bool { return !m.Damaging() })

	chosen := make([]Move, 0, maxMoves)

	for _, m := range damaging {
		if len(chosen) >= maxMoves {
			break
		}
		chosen = append(chosen, m)
	}

	for _, m := range status {
		if len(chosen) >= maxMoves {
			break
		}
		chosen = append(chosen, m)
	}

	return chosen
}

// RandomMoveset is BuildMoveset with a shuffled learnset, still guaranteeing
// a damaging move when one exists.
func (r *Registry) RandomMoveset(dex string, maxMoves int, rng *rand.Rand) []Move {
	legal := r.LegalMoves(dex)
	rng.Shuffle(len(legal), func(i, j int) {
		legal[i], legal[j] = legal[j], legal[i]
	})

	damaging := lo.Filter(legal, func(m Move, _ int) bool { return m.Damaging() })

	chosen := make([]Move, 0, maxMoves)
	if len(damaging) > 0 {
		chosen = append(chosen, damaging[0])
	}

	for _, m := range legal {
		if len(chosen) >= maxMoves {
			break
		}

		if len(chosen) > 0 && m.Name == chosen[0].Name {
			continue
		}

		chosen = append(chosen, m)
	}

	return chosen
}

// RandomTeam builds n random creatures with random legal movesets, used for
// the computer side.
func (r *Registry) RandomTeam(n int, rng *rand.Rand) []Creature {
	dexIds := r.DexOrder()
	team := make([]Creature, 0, n)

	for range n {
		dex := dexIds[rng.IntN(len(dexIds))]
		c := r.GetCreature(dex)
		c.Moves = r.RandomMoveset(dex, 4, rng)
		team = append(team, *c)
	}

	return team
}

// DexOrder returns every known dex id sorted, for deterministic listings.
func (r *Registry) DexOrder() []string {
	ids := lo.Keys(r.Creatures)
	slices.Sort(ids)
	return ids
}

var titleCaser = cases.Title(language.English)

// DisplayName turns a data-file identifier like "razor-leaf" into a
// user-facing "Razor Leaf".
func DisplayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}
