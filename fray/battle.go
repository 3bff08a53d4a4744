package fray

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"
)

const (
	SIDE_A = iota + 1
	SIDE_B
)

const (
	WINNER_NONE = iota
	WINNER_SIDE_A
	WINNER_SIDE_B
	WINNER_DRAW
)

var (
	ErrEmptyTeam    = errors.New("side has no creatures")
	ErrDefeatedTeam = errors.New("side has no conscious creatures")
)

var battleLogger = func() logr.Logger {
	return internalLogger.WithName("battle")
}

var lastResortPower = 50

// lastResortMove is what a creature falls back on when every damaging move
// is out of PP. It always hits, is effectively unlimited, and hurts the
// user for a quarter of their max HP after the target takes damage.
var lastResortMove = Move{
	Name:       "Last Resort",
	Type:       "Typeless",
	Power:      &lastResortPower,
	Accuracy:   nil,
	PP:         999,
	Category:   CATEGORY_PHYSICAL,
	Effect:     "recoil",
	LastResort: true,
}

// LastResortSignal is the move index a caller passes to say "I have no
// usable move". It only resolves to the fallback move when that is true.
const LastResortSignal = -1

// Side is one team in a battle: an ordered roster and the index of the slot
// currently out front. ActiveIndex always points at a conscious creature
// unless the whole roster is down.
type Side struct {
	Name        string     `json:"name"`
	Team        []Creature `json:"team"`
	ActiveIndex int        `json:"active_index"`
}

func NewSide(name string, team []Creature) Side {
	return Side{Name: name, Team: team}
}

func (s *Side) Active() *Creature {
	return &s.Team[s.ActiveIndex]
}

// Defeated reports whether every slot on this side has fainted.
func (s Side) Defeated() bool {
	return !slices.ContainsFunc(s.Team, func(c Creature) bool {
		return !c.Fainted()
	})
}

// nextAlive finds the first conscious slot in roster order, or -1.
func (s Side) nextAlive() int {
	for i, c := range s.Team {
		if !c.Fainted() {
			return i
		}
	}

	return -1
}

// Battle is the whole state of one fight. It is owned by whoever created
// it, mutated only through ResolveAction, and frozen once Winner is set.
type Battle struct {
	SideA Side `json:"side_a"`
	SideB Side `json:"side_b"`

	// NextActor is SIDE_A or SIDE_B
	NextActor int `json:"next_actor"`
	// Turn counts rounds, not individual actions
	Turn   int `json:"turn"`
	Winner int `json:"winner"`

	Log    []string       `json:"log"`
	Events []ActionRecord `json:"events"`

	Chart TypeChart `json:"chart,omitempty"`

	// opener is the side that acts first each round, fixed by the speed
	// check at battle start. The round counter advances after the other
	// side has acted.
	Opener int `json:"opener"`

	// The rng seed is stored directly so a battle replayed from the same
	// seed resolves identically. Not serialized; resumed battles reseed.
	RngSource rand.PCG `json:"-"`
}

// NewBattle validates both sides and decides who opens. The faster active
// creature acts first; a speed tie goes to side A.
func NewBattle(sideA Side, sideB Side, chart TypeChart, seed rand.PCG) (*Battle, error) {
	if chart == nil {
		chart = DefaultChart
	}

	for _, s := range []*Side{&sideA, &sideB} {
		if len(s.Team) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTeam, s.Name)
		}

		if s.Active().Fainted() {
			next := s.nextAlive()
			if next == -1 {
				return nil, fmt.Errorf("%w: %s", ErrDefeatedTeam, s.Name)
			}

			s.ActiveIndex = next
		}
	}

	if sideA.Name == "" {
		sideA.Name = "Side A"
	}
	if sideB.Name == "" {
		sideB.Name = "Side B"
	}

	battle := &Battle{
		SideA:     sideA,
		SideB:     sideB,
		Turn:      1,
		Winner:    WINNER_NONE,
		Chart:     chart,
		RngSource: seed,
	}

	a := battle.SideA.Active()
	b := battle.SideB.Active()

	switch {
	case a.Speed > b.Speed:
		battle.Opener = SIDE_A
		battle.appendLog(fmt.Sprintf("%s will act first (Speed %d vs %d).", a.Name, a.Speed, b.Speed))
	case b.Speed > a.Speed:
		battle.Opener = SIDE_B
		battle.appendLog(fmt.Sprintf("%s will act first (Speed %d vs %d).", b.Name, b.Speed, a.Speed))
	default:
		// speed tie defaults to side A
		battle.Opener = SIDE_A
		battle.appendLog(fmt.Sprintf("Speeds tie at %d. %s acts first.", a.Speed, sideA.Name))
	}

	battle.NextActor = battle.Opener

	return battle, nil
}

func (b *Battle) GetSide(index int) *Side {
	if index == SIDE_A {
		return &b.SideA
	} else {
		return &b.SideB
	}
}

func InvertSideIndex(initial int) int {
	if initial == SIDE_A {
		return SIDE_B
	} else {
		return SIDE_A
	}
}

func (b *Battle) Over() bool {
	return b.Winner != WINNER_NONE
}

func (b *Battle) CreateRng() *rand.Rand {
	return rand.New(&b.RngSource)
}

// Clone creates a deep-enough copy of this battle, with its own team slices
// and logs, so callers can peek ahead without touching the real state.
func (b Battle) Clone() Battle {
	clone := b
	clone.SideA.Team = slices.Clone(b.SideA.Team)
	clone.SideB.Team = slices.Clone(b.SideB.Team)

	for i := range clone.SideA.Team {
		clone.SideA.Team[i].Moves = slices.Clone(clone.SideA.Team[i].Moves)
	}
	for i := range clone.SideB.Team {
		clone.SideB.Team[i].Moves = slices.Clone(clone.SideB.Team[i].Moves)
	}

	clone.Log = slices.Clone(b.Log)
	clone.Events = slices.Clone(b.Events)

	return clone
}

func (b *Battle) appendLog(line string) {
	b.Log = append(b.Log, line)
	battleLogger().V(1).Info(line)
}

func (b *Battle) appendRecord(rec ActionRecord) ActionRecord {
	rec.HpA = b.SideA.Active().CurrentHp
	rec.HpB = b.SideB.Active().CurrentHp

	b.Events = append(b.Events, rec)
	return rec
}

func sideLabel(index int) string {
	if index == SIDE_A {
		return "A"
	} else {
		return "B"
	}
}

// ResolveAction plays out one move choice for whichever side is up. The
// battle is mutated in place: PP and HP changes, faint replacement, the
// win check, and the turn flip all happen before it returns. Bad input
// (index out of range, a move with no PP left) is reported in the result
// and the log without consuming the turn. Calls on a finished battle do
// nothing.
func ResolveAction(battle *Battle, moveIndex int) ActionResult {
	if battle.Over() {
		return ActionResult{Kind: RESULT_TERMINAL, Reason: REASON_TERMINAL}
	}

	actorIndex := battle.NextActor
	defenderIndex := InvertSideIndex(actorIndex)

	actorSide := battle.GetSide(actorIndex)
	defenderSide := battle.GetSide(defenderIndex)

	actor := actorSide.Active()
	defender := defenderSide.Active()

	round := battle.Turn

	// Pick the move. With no usable damaging move left the choice doesn't
	// matter: the fallback takes over no matter what index came in.
	var move *Move
	lastResort := len(actor.UsableMoves()) == 0

	if lastResort {
		fallback := lastResortMove
		move = &fallback
	} else {
		if moveIndex < 0 || moveIndex >= len(actor.Moves) {
			battle.appendLog(fmt.Sprintf("%s tried to act, but chose an invalid move.", actor.Name))

			rec := battle.appendRecord(ActionRecord{
				Round:  round,
				Side:   sideLabel(actorIndex),
				Reason: REASON_INVALID_INDEX,
			})

			return ActionResult{Kind: RESULT_REJECTED, Reason: REASON_INVALID_INDEX, Record: rec}
		}

		chosen := &actor.Moves[moveIndex]
		if !chosen.Usable() {
			battle.appendLog(fmt.Sprintf("%s tried to use %s, but it has no PP left!", actor.Name, chosen.Name))

			rec := battle.appendRecord(ActionRecord{
				Round:  round,
				Side:   sideLabel(actorIndex),
				Move:   chosen.Name,
				Reason: REASON_NO_PP,
			})

			return ActionResult{Kind: RESULT_REJECTED, Reason: REASON_NO_PP, Record: rec}
		}

		move = chosen
	}

	if lastResort {
		battle.appendLog(fmt.Sprintf("%s has nothing left and lashes out with %s!", actor.Name, move.Name))
	}

	rng := battle.CreateRng()

	hit := true
	if move.Accuracy != nil {
		hit = int(rng.UintN(100))+1 <= *move.Accuracy
	}

	// PP burns on the attempt whether or not the move lands
	move.PP = max(0, move.PP-1)

	if !hit {
		battle.appendLog(fmt.Sprintf("%s used %s, but it missed!", actor.Name, move.Name))

		rec := battle.appendRecord(ActionRecord{
			Round: round,
			Side:  sideLabel(actorIndex),
			Move:  move.Name,
			Hit:   false,
		})

		battle.advanceTurn(actorIndex)

		return ActionResult{Kind: RESULT_RESOLVED, Record: rec}
	}

	variance := RollVariance(rng)
	damage := Damage(*actor, *defender, *move, battle.Chart, variance)

	defender.ApplyDamage(damage)

	battle.appendLog(fmt.Sprintf("%s used %s! It dealt %d damage. %s has %d HP left.",
		actor.Name, move.Name, damage, defender.Name, defender.CurrentHp))

	battleLogger().Info("action resolved",
		"side", sideLabel(actorIndex),
		"move", move.Name,
		"damage", damage,
		"defender_hp", defender.CurrentHp)

	// Last-resort recoil lands on the user after the target takes its hit
	if move.LastResort {
		recoil := max(1, actor.Hp/4)
		actor.ApplyDamage(recoil)

		battle.appendLog(fmt.Sprintf("%s was hurt by recoil! (%d damage)", actor.Name, recoil))
	}

	rec := battle.appendRecord(ActionRecord{
		Round:  round,
		Side:   sideLabel(actorIndex),
		Move:   move.Name,
		Hit:    true,
		Damage: damage,
	})

	defenderFainted := defender.Fainted()
	actorFainted := actor.Fainted()

	if defenderFainted {
		battle.appendLog(fmt.Sprintf("%s fainted!", defender.Name))
	}
	if actorFainted {
		battle.appendLog(fmt.Sprintf("%s fainted!", actor.Name))
	}

	actorSideDown := actorSide.Defeated()
	defenderSideDown := defenderSide.Defeated()

	switch {
	case actorSideDown && defenderSideDown:
		battle.Winner = WINNER_DRAW
		battle.appendLog("Both sides are out of creatures. It's a draw!")
		return ActionResult{Kind: RESULT_GAMEOVER, Record: rec}
	case defenderSideDown:
		battle.Winner = winnerForSide(actorIndex)
		battle.appendLog(fmt.Sprintf("%s is out of creatures. %s wins!", defenderSide.Name, actorSide.Name))
		return ActionResult{Kind: RESULT_GAMEOVER, Record: rec}
	case actorSideDown:
		battle.Winner = winnerForSide(defenderIndex)
		battle.appendLog(fmt.Sprintf("%s is out of creatures. %s wins!", actorSide.Name, defenderSide.Name))
		return ActionResult{Kind: RESULT_GAMEOVER, Record: rec}
	}

	// Someone fainted but their side fights on: send in the next slot
	if defenderFainted {
		battle.switchToNextAlive(defenderSide)
	}
	if actorFainted {
		battle.switchToNextAlive(actorSide)
	}

	battle.advanceTurn(actorIndex)

	return ActionResult{Kind: RESULT_RESOLVED, Record: rec}
}

func (b *Battle) switchToNextAlive(side *Side) {
	next := side.nextAlive()
	if next == -1 {
		// callers check Defeated before switching
		return
	}

	side.ActiveIndex = next
	b.appendLog(fmt.Sprintf("%s sent out %s!", side.Name, side.Active().Name))
}

// advanceTurn flips the actor and bumps the round counter once the side
// that didn't open the round has acted.
func (b *Battle) advanceTurn(actorIndex int) {
	if actorIndex != b.Opener {
		b.Turn++
	}

	b.NextActor = InvertSideIndex(actorIndex)
}

func winnerForSide(sideIndex int) int {
	if sideIndex == SIDE_A {
		return WINNER_SIDE_A
	} else {
		return WINNER_SIDE_B
	}
}

// WinnerSideIndex maps the winner tag back to a side index, or 0 for an
// unfinished battle or a draw.
func (b *Battle) WinnerSideIndex() int {
	switch b.Winner {
	case WINNER_SIDE_A:
		return SIDE_A
	case WINNER_SIDE_B:
		return SIDE_B
	default:
		return 0
	}
}
