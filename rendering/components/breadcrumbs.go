package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Breadcrumbs is a stack of "go back" targets so nested menus can unwind
// without each view knowing about its parents.
type Breadcrumbs struct {
	backtrace []func() tea.Model
}

func NewBreadcrumb() Breadcrumbs {
	return Breadcrumbs{}
}

// Push a model onto the breadcrumb stack.
// Returns the modified copy.
func (b Breadcrumbs) Push(model tea.Model) Breadcrumbs {
	return b.PushNew(func() tea.Model {
		return model
	})
}

// Push a function that creates a new model onto the stack.
// Returns the modified copy.
func (b Breadcrumbs) PushNew(modelFunc func() tea.Model) Breadcrumbs {
	b.backtrace = append(b.backtrace, modelFunc)

	return b
}

// Pop returns nil when the stack is empty. The receiver is a copy, so
// callers typically hold the pre-push value instead of the popped one.
func (b Breadcrumbs) Pop() *tea.Model {
	l := len(b.backtrace)

	if l == 0 {
		return nil
	}

	modelFunc := b.backtrace[l-1]
	b.backtrace = b.backtrace[0 : l-1]

	model := modelFunc()

	log.Debug().Int("backtraceLen", len(b.backtrace)).Msg("breadcrumb pop")
	return &model
}

func (b Breadcrumbs) PopDefault(def func() tea.Model) tea.Model {
	poppedModel := b.Pop()

	if poppedModel == nil {
		return def()
	}

	return *poppedModel
}
