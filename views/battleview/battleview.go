// Package battleview runs one battle against the computer: it feeds chosen
// moves into the engine, narrates the resulting log lines, and keeps an
// autosave slot current so a battle can be resumed later.
package battleview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lflygare/wildfray/fray"
	"github.com/lflygare/wildfray/global"
	"github.com/lflygare/wildfray/rendering"
	"github.com/lflygare/wildfray/rendering/components"
	"github.com/lflygare/wildfray/savefs"
	"github.com/rs/zerolog/log"
)

const (
	messageTime   = time.Millisecond * 1200
	computerDelay = time.Second
)

const autosaveSlot = "autosave"

var toggleRosterKey = key.NewBinding(
	key.WithKeys("t"),
)

// battle view state machine
const (
	smWaitingForPlayer = iota
	smActionSent
	smComputerThinking
	smShowingMessages
)

// battleContext is shared between the main model and its panels so a panel
// can submit the player's choice without a message round trip.
type battleContext struct {
	battle     *fray.Battle
	playerSide int

	chosenMove     int
	hasChosenMove  bool
	currentSmState int
}

func (ctx *battleContext) setChosenMove(moveIndex int) {
	if !ctx.hasChosenMove {
		ctx.chosenMove = moveIndex
		ctx.hasChosenMove = true
		ctx.currentSmState = smActionSent
	}
}

type BattleModel struct {
	ctx  *battleContext
	exit func() tea.Model

	panelA sidePanel
	panelB sidePanel
	moves  movePanel

	roster     components.TeamPanel
	showRoster bool

	// log lines the player has not been shown yet
	messageQueue   []string
	currentMessage string
	logCursor      int

	inited bool
}

type (
	actionResolvedMsg struct {
		result fray.ActionResult
	}
	nextMessageMsg struct{}
)

func NewModel(battle *fray.Battle, exit func() tea.Model) BattleModel {
	ctx := &battleContext{
		battle:         battle,
		playerSide:     fray.SIDE_A,
		currentSmState: smWaitingForPlayer,
	}

	// Fresh battles narrate their opening lines; a resumed battle skips its
	// history and picks up where it left off.
	logCursor := 0
	if len(battle.Events) > 0 {
		logCursor = len(battle.Log)
	}

	return BattleModel{
		ctx:  ctx,
		exit: exit,

		panelA: newSidePanel(battle.GetSide(fray.SIDE_A)),
		panelB: newSidePanel(battle.GetSide(fray.SIDE_B)),
		moves:  newMovePanel(ctx),
		roster: components.NewTeamPanel(battle.GetSide(fray.SIDE_A).Team),

		logCursor: logCursor,
	}
}

func (m BattleModel) Init() tea.Cmd { return nil }

func (m BattleModel) View() string {
	battle := m.ctx.battle

	panelView := ""
	if m.showRoster {
		panelView = m.roster.View()
	} else if m.ctx.currentSmState == smWaitingForPlayer {
		panelView = m.moves.View()
	}

	message := m.currentMessage
	if m.ctx.currentSmState == smComputerThinking && message == "" {
		message = "Computer is choosing a move..."
	}

	return rendering.GlobalCenter(
		lipgloss.JoinVertical(
			lipgloss.Center,

			fmt.Sprintf("Round %d", battle.Turn),

			rendering.ButtonStyle.Width(50).Render(message),

			lipgloss.JoinHorizontal(
				lipgloss.Center,
				m.panelA.View(),
				m.panelB.View(),
			),

			panelView,
		),
	)
}

// resolveCmd runs one engine action and reports back.
func resolveCmd(battle *fray.Battle, moveIndex int, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}

		result := fray.ResolveAction(battle, moveIndex)
		return actionResolvedMsg{result: result}
	}
}

func computerMoveIndex(battle *fray.Battle) int {
	active := battle.GetSide(fray.SIDE_B).Active()

	usable := active.UsableMoves()
	if len(usable) == 0 {
		return fray.LastResortSignal
	}

	return usable[global.FrayRand.IntN(len(usable))]
}

// drainNewLogLines moves engine log lines the player hasn't seen yet into
// the message queue.
func (m *BattleModel) drainNewLogLines() {
	battleLog := m.ctx.battle.Log
	if m.logCursor < len(battleLog) {
		m.messageQueue = append(m.messageQueue, battleLog[m.logCursor:]...)
		m.logCursor = len(battleLog)
	}
}

// Returns true if there was a message in the queue
func (m *BattleModel) nextMessage() bool {
	if len(m.messageQueue) != 0 {
		m.currentMessage = m.messageQueue[0]
		m.messageQueue = m.messageQueue[1:]

		return true
	}

	return false
}

func (m *BattleModel) autosave() {
	battle := m.ctx.battle

	if battle.Over() {
		if _, err := savefs.WriteArchive(global.Opt.SaveLocation, battle, global.Opt.PlayerName); err != nil {
			log.Err(err).Msg("could not archive finished battle")
		}

		if err := savefs.DeleteSlot(global.Opt.SaveLocation, autosaveSlot); err != nil {
			log.Debug().AnErr("error", err).Msg("no autosave slot to clear")
		}

		return
	}

	if err := savefs.SaveSlot(global.Opt.SaveLocation, autosaveSlot, battle); err != nil {
		log.Err(err).Msg("could not autosave battle")
	}
}

func (m BattleModel) endMessage() string {
	switch m.ctx.battle.Winner {
	case fray.WINNER_DRAW:
		return "It's a draw!"
	case winnerForPlayer(m.ctx.playerSide):
		return "You won!"
	default:
		return "You lost :("
	}
}

func winnerForPlayer(playerSide int) int {
	if playerSide == fray.SIDE_A {
		return fray.WINNER_SIDE_A
	}

	return fray.WINNER_SIDE_B
}

func (m BattleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	battle := m.ctx.battle

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, toggleRosterKey) {
			m.showRoster = !m.showRoster
		}

	case actionResolvedMsg:
		if msg.result.Rejected() {
			log.Debug().Str("reason", msg.result.Reason).Msg("action rejected")
		}

		m.autosave()
		m.drainNewLogLines()

		m.ctx.currentSmState = smShowingMessages
		if m.nextMessage() {
			cmds = append(cmds, tea.Tick(messageTime, func(t time.Time) tea.Msg {
				return nextMessageMsg{}
			}))
		} else {
			cmds = append(cmds, func() tea.Msg { return nextMessageMsg{} })
		}

	case nextMessageMsg:
		if m.nextMessage() {
			cmds = append(cmds, tea.Tick(messageTime, func(t time.Time) tea.Msg {
				return nextMessageMsg{}
			}))
			break
		}

		// out of messages, figure out what happens next
		m.currentMessage = ""

		if battle.Over() {
			return newEndScreen(m.endMessage(), m.exit), nil
		}

		if battle.NextActor == m.ctx.playerSide {
			m.ctx.hasChosenMove = false
			m.ctx.currentSmState = smWaitingForPlayer
		} else {
			m.ctx.currentSmState = smComputerThinking
			cmds = append(cmds, resolveCmd(battle, computerMoveIndex(battle), computerDelay))
		}
	}

	if m.ctx.currentSmState == smWaitingForPlayer && !m.showRoster {
		var moveModel tea.Model
		moveModel, _ = m.moves.Update(msg)
		m.moves = moveModel.(movePanel)
	}

	// The player submitted a move through the move panel
	if m.ctx.currentSmState == smActionSent {
		m.ctx.currentSmState = smShowingMessages
		cmds = append(cmds, resolveCmd(battle, m.ctx.chosenMove, 0))
	}

	if !m.inited {
		m.inited = true

		// narrate the opening lines, then hand control to whoever acts first
		m.drainNewLogLines()
		m.ctx.currentSmState = smShowingMessages
		if m.nextMessage() {
			cmds = append(cmds, tea.Tick(messageTime, func(t time.Time) tea.Msg {
				return nextMessageMsg{}
			}))
		} else {
			cmds = append(cmds, func() tea.Msg { return nextMessageMsg{} })
		}
	}

	m.panelA.acting = battle.NextActor == fray.SIDE_A && !battle.Over()
	m.panelB.acting = battle.NextActor == fray.SIDE_B && !battle.Over()

	var panelModel tea.Model
	panelModel, _ = m.panelA.Update(msg)
	m.panelA = panelModel.(sidePanel)
	panelModel, _ = m.panelB.Update(msg)
	m.panelB = panelModel.(sidePanel)

	return m, tea.Batch(cmds...)
}
