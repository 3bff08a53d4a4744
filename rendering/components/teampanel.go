package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lflygare/wildfray/fray"
)

// TeamPanel lists a side's roster with per-creature health. Used both for
// the battle sidebars and the team picker in the menus.
type TeamPanel struct {
	Team    []fray.Creature
	Focused bool

	CurrentIndex int
}

var (
	slotStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center).Width(22)
	highlightedSlotStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Align(lipgloss.Center).Width(22)
	faintedSlotStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center).Width(22).Foreground(lipgloss.Color("240"))

	moveTeamDown = key.NewBinding(
		key.WithKeys("j", "down"),
	)

	moveTeamUp = key.NewBinding(
		key.WithKeys("k", "up"),
	)
)

func NewTeamPanel(team []fray.Creature) TeamPanel {
	return TeamPanel{
		Team:    team,
		Focused: false,
	}
}

func (m TeamPanel) Init() tea.Cmd { return nil }
func (m TeamPanel) View() string {
	slots := make([]string, 0)

	for i, creature := range m.Team {
		typing := creature.Type1
		if creature.Type2 != "" {
			typing = fmt.Sprintf("%s/%s", creature.Type1, creature.Type2)
		}

		slot := fmt.Sprintf("%s\n%s\nHP: %d / %d", fray.DisplayName(creature.Name), typing, creature.CurrentHp, creature.Hp)

		switch {
		case i == m.CurrentIndex && m.Focused:
			slots = append(slots, highlightedSlotStyle.Render(slot))
		case creature.Fainted():
			slots = append(slots, faintedSlotStyle.Render(slot))
		default:
			slots = append(slots, slotStyle.Render(slot))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, slots...)
}

func (m TeamPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Focused {
			if key.Matches(msg, moveTeamDown) {
				m.CurrentIndex++

				if m.CurrentIndex > len(m.Team)-1 {
					m.CurrentIndex = 0
				}
			}

			if key.Matches(msg, moveTeamUp) {
				m.CurrentIndex--

				if m.CurrentIndex < 0 {
					m.CurrentIndex = len(m.Team) - 1
				}
			}
		}
	}

	return m, nil
}
