package rendering

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// simpleDelegate renders each list item as a single styled line, with no
// description row and no per-item update logic.
type simpleDelegate struct {
	HighlightedItemStyle lipgloss.Style
	ItemStyle            lipgloss.Style

	spacing int
}

func (d simpleDelegate) Height() int {
	return max(1, min(d.ItemStyle.GetHeight(), d.HighlightedItemStyle.GetHeight()))
}

func (d simpleDelegate) Spacing() int                            { return d.spacing }
func (d simpleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d simpleDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	style := d.ItemStyle
	if index == m.Index() {
		style = d.HighlightedItemStyle
	}

	fmt.Fprint(w, style.Render(listItem.FilterValue()))
}

func (d *simpleDelegate) SetSpacing(spacing int) {
	d.spacing = spacing
}

func NewSimpleListDelegate() simpleDelegate {
	return simpleDelegate{HighlightedItemStyle, ItemStyle, 0}
}
