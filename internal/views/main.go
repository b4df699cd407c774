package views

import (
	"agenda/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the task organizer window content. Its methods touch widgets
// directly and must be called on the UI thread.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	taskList      *components.TaskList
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	addTaskHandler     func()
	editTaskHandler    func()
	deleteTaskHandler  func()
	setReminderHandler func()
	quitHandler        func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	view.setupMenus()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.taskList = components.NewTaskList()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil,
		container.NewVBox(mv.toolbar.GetContainer(), mv.statusBar.GetContainer()),
		nil,
		nil,
		mv.taskList.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetAddHandler(func() { mv.invoke(mv.addTaskHandler) })
	mv.toolbar.SetEditHandler(func() { mv.invoke(mv.editTaskHandler) })
	mv.toolbar.SetDeleteHandler(func() { mv.invoke(mv.deleteTaskHandler) })
	mv.toolbar.SetReminderHandler(func() { mv.invoke(mv.setReminderHandler) })

	mv.taskList.SetSelectionHandler(func(_ int, selected bool) {
		mv.toolbar.SetSelectionActive(selected)
	})
}

// setupMenus mirrors the toolbar in a main menu
func (mv *MainView) setupMenus() {
	taskMenu := fyne.NewMenu("Tarefas",
		fyne.NewMenuItem(components.AddTaskLabel+"...", func() { mv.invoke(mv.addTaskHandler) }),
		fyne.NewMenuItem(components.EditTaskLabel+"...", func() { mv.invoke(mv.editTaskHandler) }),
		fyne.NewMenuItem(components.DeleteTaskLabel, func() { mv.invoke(mv.deleteTaskHandler) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(components.SetReminderLabel+"...", func() { mv.invoke(mv.setReminderHandler) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Sair", func() { mv.invoke(mv.quitHandler) }),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(taskMenu))
}

func (mv *MainView) invoke(handler func()) {
	if handler != nil {
		handler()
	}
}

// Event handler setters - called by controller

// SetAddTaskHandler sets the handler for add requests
func (mv *MainView) SetAddTaskHandler(handler func()) {
	mv.addTaskHandler = handler
}

// SetEditTaskHandler sets the handler for edit requests
func (mv *MainView) SetEditTaskHandler(handler func()) {
	mv.editTaskHandler = handler
}

// SetDeleteTaskHandler sets the handler for delete requests
func (mv *MainView) SetDeleteTaskHandler(handler func()) {
	mv.deleteTaskHandler = handler
}

// SetReminderHandler sets the handler for reminder requests
func (mv *MainView) SetReminderHandler(handler func()) {
	mv.setReminderHandler = handler
}

// SetQuitHandler sets the handler for the Sair menu item
func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
}

// UI update methods - called by controller

// SetTasks replaces the rendered task rows
func (mv *MainView) SetTasks(items []string) {
	mv.taskList.SetItems(items)
	mv.statusBar.SetCount(len(items))
}

// SelectedIndex returns the selected task row
func (mv *MainView) SelectedIndex() (int, bool) {
	return mv.taskList.Selected()
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title, message string) {
	components.ShowErrorMessage(mv.window, title, message)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowReminder displays a reminder dialog and runs onClosed when the user
// dismisses it
func (mv *MainView) ShowReminder(title, message string, onClosed func()) {
	d := dialog.NewInformation(title, message, mv.window)
	d.SetOnClosed(onClosed)
	d.Show()
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// ShowAddTaskDialog opens the add task form
func (mv *MainView) ShowAddTaskDialog(onSubmit func(name, deadline string)) {
	components.ShowAddTaskDialog(mv.window, onSubmit)
}

// ShowEditTaskDialog opens the rename form
func (mv *MainView) ShowEditTaskDialog(current string, onSubmit func(name string)) {
	components.ShowEditTaskDialog(mv.window, current, onSubmit)
}

// ShowReminderDialog opens the reminder time form
func (mv *MainView) ShowReminderDialog(taskName string, onSubmit func(timeText string)) {
	components.ShowReminderDialog(mv.window, taskName, onSubmit)
}

// Show shows the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
