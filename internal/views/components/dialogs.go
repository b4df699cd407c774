package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	confirmLabel = "OK"
	cancelLabel  = "Cancelar"
)

// ShowAddTaskDialog asks for a task name and an optional deadline.
// onSubmit is not called when the dialog is cancelled.
func ShowAddTaskDialog(window fyne.Window, onSubmit func(name, deadline string)) {
	nameEntry := widget.NewEntry()
	deadlineEntry := widget.NewEntry()
	deadlineEntry.SetPlaceHolder("DD-MM-YYYY HH:MM")

	items := []*widget.FormItem{
		widget.NewFormItem("Nome da Tarefa:", nameEntry),
		widget.NewFormItem("Prazo (opcional):", deadlineEntry),
	}
	items[1].HintText = "formato: DD-MM-YYYY HH:MM"

	form := dialog.NewForm(AddTaskLabel, confirmLabel, cancelLabel, items, func(confirmed bool) {
		if confirmed {
			onSubmit(nameEntry.Text, deadlineEntry.Text)
		}
	}, window)
	form.Show()
	window.Canvas().Focus(nameEntry)
}

// ShowEditTaskDialog asks for a new name, prefilled with current
func ShowEditTaskDialog(window fyne.Window, current string, onSubmit func(name string)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(current)

	items := []*widget.FormItem{
		widget.NewFormItem("Digite o novo nome da tarefa:", nameEntry),
	}

	form := dialog.NewForm(EditTaskLabel, confirmLabel, cancelLabel, items, func(confirmed bool) {
		if confirmed {
			onSubmit(nameEntry.Text)
		}
	}, window)
	form.Show()
	window.Canvas().Focus(nameEntry)
}

// ShowReminderDialog asks for an HH:MM reminder time for taskName
func ShowReminderDialog(window fyne.Window, taskName string, onSubmit func(timeText string)) {
	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("HH:MM")

	items := []*widget.FormItem{
		widget.NewFormItem(fmt.Sprintf("Digite o lembrete para '%s' (formato: HH:MM):", taskName), timeEntry),
	}

	form := dialog.NewForm(SetReminderLabel, confirmLabel, cancelLabel, items, func(confirmed bool) {
		if confirmed {
			onSubmit(timeEntry.Text)
		}
	}, window)
	form.Show()
	window.Canvas().Focus(timeEntry)
}

// ShowErrorMessage shows message in a modal with an error icon
func ShowErrorMessage(window fyne.Window, title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.ErrorIcon()),
		widget.NewLabel(message),
	)
	dialog.NewCustom(title, confirmLabel, content, window).Show()
}
