package rendering

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lflygare/wildfray/global"
)

var (
	HighlightedColor = lipgloss.Color("172")
	FaintedColor     = lipgloss.Color("240")
	DangerColor      = lipgloss.Color("196")
	CautionColor     = lipgloss.Color("214")
	HealthyColor     = lipgloss.Color("76")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(34).Padding(1, 3).Align(lipgloss.Center)
	HighlightedButtonStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Width(34).Padding(1, 3).Align(lipgloss.Center).Foreground(HighlightedColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(4)
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

func CenterBlock(block string, text string) string {
	w, h := lipgloss.Size(block)
	return Center(w, h, text)
}

// HealthColor picks a bar color from how close a creature is to fainting.
func HealthColor(current int, max int) lipgloss.Color {
	if max <= 0 {
		return FaintedColor
	}

	ratio := float64(current) / float64(max)
	switch {
	case ratio <= 0:
		return FaintedColor
	case ratio <= 0.25:
		return DangerColor
	case ratio <= 0.5:
		return CautionColor
	default:
		return HealthyColor
	}
}
