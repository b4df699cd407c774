package controllers

import (
	"fmt"
	"time"

	apperrors "agenda/internal/errors"
	"agenda/internal/logger"
	"agenda/internal/models"
	"agenda/internal/services"
)

const (
	controllerComponent = "MainController"

	errorTitle       = "Erro"
	reminderSetTitle = "Lembrete definido"
)

// View is what the controller needs from the presentation layer. All calls
// happen on the UI thread.
type View interface {
	SetAddTaskHandler(handler func())
	SetEditTaskHandler(handler func())
	SetDeleteTaskHandler(handler func())
	SetReminderHandler(handler func())
	SetQuitHandler(handler func())

	SetTasks(items []string)
	SelectedIndex() (int, bool)
	UpdateStatus(status string)
	ShowError(title, message string)
	ShowInfo(title, message string)
	ShowReminder(title, message string, onClosed func())
	ShowAddTaskDialog(onSubmit func(name, deadline string))
	ShowEditTaskDialog(current string, onSubmit func(name string))
	ShowReminderDialog(taskName string, onSubmit func(timeText string))
}

// MainController turns view events into task operations and task results
// into view updates
type MainController struct {
	taskService *services.TaskService
	scheduler   *services.ReminderScheduler
	logger      logger.Logger
	clock       func() time.Time

	mainView View
	quit     func()
}

// NewMainController creates a new main controller and subscribes it to the
// scheduler's reminders
func NewMainController(
	taskService *services.TaskService,
	scheduler *services.ReminderScheduler,
	log logger.Logger,
) *MainController {
	controller := &MainController{
		taskService: taskService,
		scheduler:   scheduler,
		logger:      log,
		clock:       time.Now,
	}

	scheduler.SetNotifier(controller.ShowReminder)
	return controller
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	mc.refreshTasks()
}

// SetQuitHandler sets what the Sair menu item does
func (mc *MainController) SetQuitHandler(quit func()) {
	mc.quit = quit
}

// setupViewEventHandlers connects view callbacks to controller methods
func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetAddTaskHandler(mc.AddTask)
	mc.mainView.SetEditTaskHandler(mc.EditTask)
	mc.mainView.SetDeleteTaskHandler(mc.DeleteTask)
	mc.mainView.SetReminderHandler(mc.SetReminder)
	mc.mainView.SetQuitHandler(mc.Quit)
}

// AddTask opens the add dialog
func (mc *MainController) AddTask() {
	mc.mainView.ShowAddTaskDialog(mc.submitAddTask)
}

func (mc *MainController) submitAddTask(name, deadline string) {
	task, err := mc.taskService.AddTask(name, deadline)
	if err != nil {
		mc.handleError("add task", err)
	}
	if task == nil {
		return
	}

	mc.refreshTasks()
	mc.mainView.UpdateStatus(fmt.Sprintf("Tarefa '%s' adicionada com sucesso!", task.Name))
}

// EditTask opens the rename dialog for the selected task
func (mc *MainController) EditTask() {
	index, ok := mc.mainView.SelectedIndex()
	if !ok {
		return
	}

	task, err := mc.taskService.GetTask(index)
	if err != nil {
		mc.handleError("edit task", err)
		return
	}

	mc.mainView.ShowEditTaskDialog(task.Name, func(name string) {
		mc.submitRename(index, name)
	})
}

func (mc *MainController) submitRename(index int, name string) {
	task, err := mc.taskService.RenameTask(index, name)
	if err != nil {
		mc.handleError("rename task", err)
		return
	}

	mc.refreshTasks()
	mc.mainView.UpdateStatus(fmt.Sprintf("Tarefa '%s' editada com sucesso!", task.Name))
}

// DeleteTask removes the selected task
func (mc *MainController) DeleteTask() {
	index, ok := mc.mainView.SelectedIndex()
	if !ok {
		return
	}

	task, err := mc.taskService.DeleteTask(index)
	if err != nil {
		mc.handleError("delete task", err)
		return
	}

	mc.refreshTasks()
	mc.mainView.UpdateStatus(fmt.Sprintf("Tarefa '%s' excluída com sucesso!", task.Name))
}

// SetReminder opens the reminder dialog for the selected task
func (mc *MainController) SetReminder() {
	index, ok := mc.mainView.SelectedIndex()
	if !ok {
		return
	}

	task, err := mc.taskService.GetTask(index)
	if err != nil {
		mc.handleError("set reminder", err)
		return
	}

	mc.mainView.ShowReminderDialog(task.Name, func(timeText string) {
		mc.submitReminder(index, timeText)
	})
}

func (mc *MainController) submitReminder(index int, timeText string) {
	// an empty answer is a cancelled dialog
	if timeText == "" {
		return
	}

	task, err := mc.taskService.SetReminder(index, timeText, mc.clock())
	if err != nil {
		mc.handleError("set reminder", err)
		return
	}

	mc.mainView.ShowInfo(reminderSetTitle,
		fmt.Sprintf("Lembrete para '%s' às %s.", task.Name, models.FormatReminder(*task.Deadline)))
	mc.refreshTasks()
	mc.mainView.UpdateStatus(fmt.Sprintf("Lembrete para '%s' definido com sucesso!", task.Name))
}

// ShowReminder presents a due reminder. The scheduler calls it on the UI
// thread; closed must run once the dialog is dismissed.
func (mc *MainController) ShowReminder(notification services.Notification, closed func()) {
	mc.logger.Info(controllerComponent, "reminder shown", map[string]interface{}{
		"task_id": notification.TaskID.String(),
	})
	if mc.mainView == nil {
		closed()
		return
	}
	mc.mainView.ShowReminder(notification.Title(), notification.Message(), closed)
}

// Quit runs the quit handler
func (mc *MainController) Quit() {
	if mc.quit != nil {
		mc.quit()
	}
}

// refreshTasks re-renders the task list from the store
func (mc *MainController) refreshTasks() {
	tasks := mc.taskService.ListTasks()
	items := make([]string, len(tasks))
	for i, task := range tasks {
		items[i] = task.String()
	}
	mc.mainView.SetTasks(items)
}

// handleError logs err and, for input format errors, shows an error dialog.
// Blank names are dropped silently and stale selections just re-render.
func (mc *MainController) handleError(operation string, err error) {
	fields := map[string]interface{}{"operation": operation}

	switch {
	case apperrors.IsErrorType(err, apperrors.ErrorTypeValidation):
		mc.logger.Debug(controllerComponent, "input ignored", map[string]interface{}{
			"operation": operation,
			"reason":    err.Error(),
		})
	case apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound):
		mc.logger.Warning(controllerComponent, "stale task selection", map[string]interface{}{
			"operation": operation,
			"reason":    err.Error(),
		})
		mc.refreshTasks()
	default:
		mc.logger.Error(controllerComponent, err, operation+" failed", fields)
		mc.mainView.ShowError(errorTitle, apperrors.GetUserMessage(err))
	}
}

// Shutdown logs how many tasks are discarded
func (mc *MainController) Shutdown() {
	mc.logger.Info(controllerComponent, "controller shutdown", map[string]interface{}{
		"tasks": len(mc.taskService.ListTasks()),
	})
}
