package battleview

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lflygare/wildfray/fray"
	"github.com/lflygare/wildfray/global"
	"github.com/lflygare/wildfray/rendering"
)

const sidePanelWidth = 24

var (
	panelStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
	highlightedPanelStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1).Background(rendering.HighlightedColor).Foreground(lipgloss.Color("0"))
)

// sidePanel shows one side's active creature and roster health.
type sidePanel struct {
	side      *fray.Side
	acting    bool
	healthBar progress.Model
}

func newSidePanel(side *fray.Side) sidePanel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = sidePanelWidth - 4
	bar.ShowPercentage = false

	return sidePanel{
		side:      side,
		healthBar: bar,
	}
}

func (m sidePanel) Init() tea.Cmd { return nil }
func (m sidePanel) View() string {
	active := m.side.Active()

	typing := active.Type1
	if active.Type2 != "" {
		typing = fmt.Sprintf("%s/%s", active.Type1, active.Type2)
	}

	hpText := lipgloss.NewStyle().
		Foreground(rendering.HealthColor(active.CurrentHp, active.Hp)).
		Render(fmt.Sprintf("HP: %d / %d", active.CurrentHp, active.Hp))
	info := fmt.Sprintf("%s\n%s\n%s", fray.DisplayName(active.Name), typing, hpText)

	healthPerc := 0.0
	if active.Hp > 0 {
		healthPerc = float64(active.CurrentHp) / float64(active.Hp)
	}

	activeStyle := lipgloss.NewStyle().Align(lipgloss.Center).Border(lipgloss.NormalBorder(), true).Width(sidePanelWidth).Height(5)
	activeView := activeStyle.Render(lipgloss.JoinVertical(lipgloss.Center, info, m.healthBar.ViewAs(healthPerc)))

	roster := make([]string, 0, len(m.side.Team))
	for _, creature := range m.side.Team {
		marker := "o"
		if creature.Fainted() {
			marker = "x"
		}
		roster = append(roster, marker)
	}

	header := m.side.Name
	if m.acting {
		header = "> " + header
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, header, activeView, lipgloss.JoinHorizontal(lipgloss.Center, roster...)))
}

func (m sidePanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	progressModel, _ := m.healthBar.Update(msg)
	m.healthBar = progressModel.(progress.Model)

	return m, nil
}

// movePanel is the 2x2 move grid for the player's active creature.
type movePanel struct {
	ctx *battleContext

	gridFocus int
}

func newMovePanel(ctx *battleContext) movePanel {
	return movePanel{
		ctx: ctx,
	}
}

func (m movePanel) active() *fray.Creature {
	return m.ctx.battle.GetSide(m.ctx.playerSide).Active()
}

func (m movePanel) Init() tea.Cmd { return nil }
func (m movePanel) View() string {
	creature := m.active()

	if len(creature.UsableMoves()) == 0 {
		return panelStyle.Render("No usable moves left! Press Enter to flail.")
	}

	grid := make([]string, 0)

	for i := 0; i < 2; i++ {
		row := make([]string, 0)
		for j := 0; j < 2; j++ {
			arrayIndex := (i * 2) + j
			style := panelStyle.Width(22)

			if arrayIndex == m.gridFocus {
				style = highlightedPanelStyle.Width(22)
			}

			if arrayIndex >= len(creature.Moves) {
				row = append(row, style.Render("Empty"))
				continue
			}

			move := creature.Moves[arrayIndex]
			label := fmt.Sprintf("%s\n%s | PP %d", fray.DisplayName(move.Name), move.Type, move.PP)

			row = append(row, style.Render(label))
		}

		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Center, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Center, grid...)
}

func (m movePanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.MoveLeftKey) {
			m.gridFocus = int(math.Max(0, float64(m.gridFocus-1)))
		}

		if key.Matches(msg, global.MoveRightKey) {
			m.gridFocus = int(math.Min(3, float64(m.gridFocus+1)))
		}

		if key.Matches(msg, global.MoveDownKey) {
			m.gridFocus = int(math.Min(3, float64(m.gridFocus+2)))
		}

		if key.Matches(msg, global.MoveUpKey) {
			m.gridFocus = int(math.Max(0, float64(m.gridFocus-2)))
		}

		if key.Matches(msg, global.SelectKey) {
			creature := m.active()

			if len(creature.UsableMoves()) == 0 {
				m.ctx.setChosenMove(fray.LastResortSignal)
				return m, nil
			}

			if m.gridFocus < len(creature.Moves) {
				m.ctx.setChosenMove(m.gridFocus)
			}
		}
	}

	return m, nil
}

// endScreen shows the battle outcome until the player backs out.
type endScreen struct {
	message string
	exit    func() tea.Model
}

func newEndScreen(message string, exit func() tea.Model) endScreen {
	return endScreen{message: message, exit: exit}
}

func (m endScreen) Init() tea.Cmd { return nil }
func (m endScreen) View() string {
	return rendering.GlobalCenter(rendering.ButtonStyle.Width(40).Render(m.message))
}

func (m endScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) || key.Matches(msg, global.BackKey) {
			return m.exit(), nil
		}
	}

	return m, nil
}
