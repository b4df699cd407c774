package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// WelcomeMessage is the status shown at startup
const WelcomeMessage = "Bem-vindo ao Organizador de Tarefas!"

// StatusBar displays the last action's outcome and the task count
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(WelcomeMessage)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.countLabel = widget.NewLabel("")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		widget.NewSeparator(),
		nil,
		nil,
		sb.countLabel,
		sb.statusLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCount shows the number of tasks
func (sb *StatusBar) SetCount(count int) {
	switch count {
	case 0:
		sb.countLabel.SetText("")
	case 1:
		sb.countLabel.SetText("1 tarefa")
	default:
		sb.countLabel.SetText(fmt.Sprintf("%d tarefas", count))
	}
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
