package mainmenu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lflygare/wildfray/fray"
	"github.com/lflygare/wildfray/global"
	"github.com/lflygare/wildfray/rendering"
	"github.com/lflygare/wildfray/rendering/components"
	"github.com/lflygare/wildfray/savefs"
	"github.com/lflygare/wildfray/views/battleview"
	"github.com/rs/zerolog/log"
)

type battleSetupModel struct {
	backtrack components.Breadcrumbs
	buttons   components.MenuButtons

	shouldShowError bool
	err             error
}

func newBattleSetup(backtrack components.Breadcrumbs) battleSetupModel {
	model := battleSetupModel{backtrack: backtrack}

	buttons := []components.ViewButton{
		{
			Name: "Quick Battle (3v3)",
			OnClick: func() (tea.Model, tea.Cmd) {
				return model.startBattle(3)
			},
		},
		{
			Name: "Full Battle (6v6)",
			OnClick: func() (tea.Model, tea.Cmd) {
				return model.startBattle(6)
			},
		},
	}

	model.buttons = components.NewMenuButton(buttons)
	return model
}

func (m battleSetupModel) startBattle(teamSize int) (tea.Model, tea.Cmd) {
	playerTeam := global.REGISTRY.RandomTeam(teamSize, global.FrayRand)
	computerTeam := global.REGISTRY.RandomTeam(teamSize, global.FrayRand)

	if err := savefs.SaveTeam(global.Opt.SaveLocation, "last-used", playerTeam); err != nil {
		log.Err(err).Msg("could not remember the player's team")
	}

	battle, err := fray.NewBattle(
		fray.NewSide(global.Opt.PlayerName, playerTeam),
		fray.NewSide("Computer", computerTeam),
		global.REGISTRY.Chart,
		fray.CreateRandomSeed(),
	)
	if err != nil {
		log.Err(err).Msg("could not start battle")
		m.shouldShowError = true
		m.err = err
		return m, nil
	}

	return battleview.NewModel(battle, func() tea.Model { return NewModel() }), nil
}

func (m battleSetupModel) Init() tea.Cmd { return nil }
func (m battleSetupModel) View() string {
	if m.shouldShowError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ButtonStyle.Render(m.err.Error())))
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "New Battle", m.buttons.View()))
}

func (m battleSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return NewModel() }), nil
		}
	}

	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
