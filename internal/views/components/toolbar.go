package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	AddTaskLabel     = "Adicionar Tarefa"
	EditTaskLabel    = "Editar Tarefa"
	DeleteTaskLabel  = "Excluir Tarefa"
	SetReminderLabel = "Definir Lembrete"
)

// Toolbar holds the task action buttons
type Toolbar struct {
	container      *fyne.Container
	addButton      *widget.Button
	editButton     *widget.Button
	deleteButton   *widget.Button
	reminderButton *widget.Button

	// Event handlers
	addHandler      func()
	editHandler     func()
	deleteHandler   func()
	reminderHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.SetSelectionActive(false)
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.addButton = widget.NewButtonWithIcon(AddTaskLabel, theme.ContentAddIcon(), func() {
		if t.addHandler != nil {
			t.addHandler()
		}
	})
	t.addButton.Importance = widget.HighImportance

	t.editButton = widget.NewButtonWithIcon(EditTaskLabel, theme.DocumentCreateIcon(), func() {
		if t.editHandler != nil {
			t.editHandler()
		}
	})

	t.deleteButton = widget.NewButtonWithIcon(DeleteTaskLabel, theme.DeleteIcon(), func() {
		if t.deleteHandler != nil {
			t.deleteHandler()
		}
	})
	t.deleteButton.Importance = widget.DangerImportance

	t.reminderButton = widget.NewButtonWithIcon(SetReminderLabel, theme.HistoryIcon(), func() {
		if t.reminderHandler != nil {
			t.reminderHandler()
		}
	})
}

// buildLayout stacks the buttons vertically
func (t *Toolbar) buildLayout() {
	t.container = container.NewVBox(
		t.addButton,
		t.editButton,
		t.deleteButton,
		t.reminderButton,
	)
}

// SetAddHandler sets the add button handler
func (t *Toolbar) SetAddHandler(handler func()) {
	t.addHandler = handler
}

// SetEditHandler sets the edit button handler
func (t *Toolbar) SetEditHandler(handler func()) {
	t.editHandler = handler
}

// SetDeleteHandler sets the delete button handler
func (t *Toolbar) SetDeleteHandler(handler func()) {
	t.deleteHandler = handler
}

// SetReminderHandler sets the reminder button handler
func (t *Toolbar) SetReminderHandler(handler func()) {
	t.reminderHandler = handler
}

// SetSelectionActive enables the buttons that act on the selected task
func (t *Toolbar) SetSelectionActive(active bool) {
	for _, button := range []*widget.Button{t.editButton, t.deleteButton, t.reminderButton} {
		if active {
			button.Enable()
		} else {
			button.Disable()
		}
	}
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
