package mainmenu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lflygare/wildfray/rendering"
	"github.com/lflygare/wildfray/rendering/components"
)

type MainMenuModel struct {
	buttons components.MenuButtons
}

func NewModel() MainMenuModel {
	buttons := []components.ViewButton{
		{
			Name: "New Battle",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newBattleSetup(backtrack.PushNew(func() tea.Model { return NewModel() })), nil
			},
		},
		{
			Name: "Resume Battle",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newResumeMenu(backtrack.PushNew(func() tea.Model { return NewModel() })), nil
			},
		},
		{
			Name: "Help",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newHelpMenu(backtrack.PushNew(func() tea.Model { return NewModel() })), nil
			},
		},
		{
			Name: "Quit",
			OnClick: func() (tea.Model, tea.Cmd) {
				return NewModel(), tea.Quit
			},
		},
	}

	return MainMenuModel{
		buttons: components.NewMenuButton(buttons),
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := "Wildfray"
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
