package mainmenu

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lflygare/wildfray/global"
	"github.com/lflygare/wildfray/rendering"
	"github.com/lflygare/wildfray/rendering/components"
	"github.com/lflygare/wildfray/savefs"
	"github.com/lflygare/wildfray/views/battleview"
	"github.com/rs/zerolog/log"
)

type slotItem string

func (s slotItem) FilterValue() string { return string(s) }

type resumeMenuModel struct {
	backtrack components.Breadcrumbs
	slotList  list.Model

	shouldShowError bool
	err             error
}

func newResumeMenu(backtrack components.Breadcrumbs) resumeMenuModel {
	model := resumeMenuModel{backtrack: backtrack}

	slots, err := savefs.ListSlots(global.Opt.SaveLocation)
	if err != nil {
		log.Err(err).Msg("could not list save slots")
		model.shouldShowError = true
		model.err = err
	}

	items := make([]list.Item, 0, len(slots))
	for _, slot := range slots {
		items = append(items, slotItem(slot))
	}

	slotList := list.New(items, rendering.NewSimpleListDelegate(), 30, 20)
	slotList.DisableQuitKeybindings()
	slotList.SetShowTitle(true)
	slotList.Title = "Saved Battles"

	model.slotList = slotList
	return model
}

func (m resumeMenuModel) Init() tea.Cmd { return nil }
func (m resumeMenuModel) View() string {
	if m.shouldShowError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ButtonStyle.Render(m.err.Error())))
	}

	if len(m.slotList.Items()) == 0 {
		return rendering.GlobalCenter("No saved battles yet.")
	}

	return rendering.GlobalCenter(m.slotList.View())
}

func (m resumeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return NewModel() }), nil
		}

		if key.Matches(msg, global.SelectKey) {
			item, ok := m.slotList.SelectedItem().(slotItem)
			if !ok {
				return m, nil
			}

			battle, err := savefs.LoadSlot(global.Opt.SaveLocation, string(item))
			if err != nil {
				log.Err(err).Str("slot", string(item)).Msg("could not load save slot")
				m.shouldShowError = true
				m.err = err
				return m, nil
			}

			return battleview.NewModel(battle, func() tea.Model { return NewModel() }), nil
		}
	}

	var cmd tea.Cmd
	m.slotList, cmd = m.slotList.Update(msg)

	return m, cmd
}
