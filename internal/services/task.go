package services

import (
	"fmt"
	"strings"
	"time"

	apperrors "agenda/internal/errors"
	"agenda/internal/logger"
	"agenda/internal/models"
)

const taskComponent = "TaskService"

// TaskService implements the task operations over the repository
type TaskService struct {
	repo   *models.TaskRepository
	logger logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(repo *models.TaskRepository, log logger.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		logger: log,
	}
}

// AddTask creates a task. A malformed deadline does not prevent creation:
// the task is stored without a deadline and the format error is returned
// together with it. A blank name creates nothing.
func (s *TaskService) AddTask(name, deadlineText string) (*models.Task, error) {
	cleanName, err := validateName(name)
	if err != nil {
		return nil, err
	}

	deadline, parseErr := models.ParseDeadline(deadlineText)
	task := models.NewTask(cleanName, deadline)
	index := s.repo.Add(task)

	s.logger.Info(taskComponent, "task added", map[string]interface{}{
		"task_id":      task.ID.String(),
		"index":        index,
		"has_deadline": task.HasDeadline(),
	})

	if parseErr != nil {
		s.logger.Warning(taskComponent, "deadline discarded", map[string]interface{}{
			"task_id": task.ID.String(),
			"input":   deadlineText,
		})
		return &task, parseErr
	}
	return &task, nil
}

// RenameTask replaces the name of the task at index
func (s *TaskService) RenameTask(index int, name string) (*models.Task, error) {
	cleanName, err := validateName(name)
	if err != nil {
		return nil, err
	}

	task, ok := s.repo.Update(index, func(t *models.Task) {
		t.Name = cleanName
	})
	if !ok {
		return nil, apperrors.NewNotFoundError("task", index)
	}

	s.logger.Info(taskComponent, "task renamed", map[string]interface{}{
		"task_id": task.ID.String(),
		"index":   index,
	})
	return &task, nil
}

// DeleteTask removes the task at index and returns it
func (s *TaskService) DeleteTask(index int) (*models.Task, error) {
	task, ok := s.repo.Remove(index)
	if !ok {
		return nil, apperrors.NewNotFoundError("task", index)
	}

	s.logger.Info(taskComponent, "task deleted", map[string]interface{}{
		"task_id":   task.ID.String(),
		"remaining": s.repo.Len(),
	})
	return &task, nil
}

// SetReminder sets the deadline of the task at index to timeText ("HH:MM")
// on the calendar day of now. On a format error the task is left unchanged.
func (s *TaskService) SetReminder(index int, timeText string, now time.Time) (*models.Task, error) {
	if _, ok := s.repo.Get(index); !ok {
		return nil, apperrors.NewNotFoundError("task", index)
	}

	reminder, err := models.ParseReminderTime(timeText, now)
	if err != nil {
		return nil, err
	}

	task, ok := s.repo.Update(index, func(t *models.Task) {
		t.Deadline = &reminder
	})
	if !ok {
		return nil, apperrors.NewNotFoundError("task", index)
	}

	s.logger.Info(taskComponent, "reminder set", map[string]interface{}{
		"task_id":  task.ID.String(),
		"deadline": models.FormatDeadline(reminder),
	})
	return &task, nil
}

// GetTask returns the task at index
func (s *TaskService) GetTask(index int) (*models.Task, error) {
	task, ok := s.repo.Get(index)
	if !ok {
		return nil, apperrors.NewNotFoundError("task", index)
	}
	return &task, nil
}

// ListTasks returns all tasks in insertion order
func (s *TaskService) ListTasks() []models.Task {
	return s.repo.List()
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("invalid task: %w", apperrors.NewValidationError("task name", "is required"))
	}
	return trimmed, nil
}
