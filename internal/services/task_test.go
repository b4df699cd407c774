package services

import (
	"testing"
	"time"

	apperrors "agenda/internal/errors"
	"agenda/internal/logger"
	"agenda/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskService(t *testing.T) (*TaskService, *models.TaskRepository) {
	t.Helper()
	repo := models.NewTaskRepository()
	return NewTaskService(repo, logger.NoOpLogger{}), repo
}

func TestTaskService_AddTask(t *testing.T) {
	tests := []struct {
		name           string
		taskName       string
		deadline       string
		expectStored   bool
		expectedString string
		errorType      *apperrors.ErrorType
	}{
		{
			name:           "name without deadline renders as the name",
			taskName:       "Ligar para o médico",
			expectStored:   true,
			expectedString: "Ligar para o médico",
		},
		{
			name:           "name with deadline renders the deadline",
			taskName:       "Entregar relatório",
			deadline:       "25-12-2024 18:30",
			expectStored:   true,
			expectedString: "Entregar relatório (Prazo: 25-12-2024 18:30)",
		},
		{
			name:           "malformed deadline still creates the task",
			taskName:       "Pagar contas",
			deadline:       "bad-input",
			expectStored:   true,
			expectedString: "Pagar contas",
			errorType:      errorTypePtr(apperrors.ErrorTypeInvalidFormat),
		},
		{
			name:           "blank deadline is reported, task kept",
			taskName:       "Pagar contas",
			deadline:       "  ",
			expectStored:   true,
			expectedString: "Pagar contas",
			errorType:      errorTypePtr(apperrors.ErrorTypeInvalidFormat),
		},
		{
			name:         "empty name creates nothing",
			taskName:     "",
			deadline:     "25-12-2024 18:30",
			expectStored: false,
			errorType:    errorTypePtr(apperrors.ErrorTypeValidation),
		},
		{
			name:         "whitespace name creates nothing",
			taskName:     "   ",
			expectStored: false,
			errorType:    errorTypePtr(apperrors.ErrorTypeValidation),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := setupTaskService(t)

			task, err := service.AddTask(tt.taskName, tt.deadline)

			if tt.errorType != nil {
				require.Error(t, err)
				assert.True(t, apperrors.IsErrorType(err, *tt.errorType), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
			}

			if !tt.expectStored {
				assert.Nil(t, task)
				assert.Equal(t, 0, repo.Len())
				return
			}

			require.NotNil(t, task)
			assert.Equal(t, tt.expectedString, task.String())
			require.Equal(t, 1, repo.Len())
			stored, _ := repo.Get(0)
			assert.Equal(t, task.ID, stored.ID)
		})
	}
}

func TestTaskService_RenameTask(t *testing.T) {
	service, _ := setupTaskService(t)
	_, err := service.AddTask("Rascunho", "")
	require.NoError(t, err)

	renamed, err := service.RenameTask(0, "Versão final")
	require.NoError(t, err)
	assert.Equal(t, "Versão final", renamed.Name)

	_, err = service.RenameTask(0, " ")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
	current, err := service.GetTask(0)
	require.NoError(t, err)
	assert.Equal(t, "Versão final", current.Name)

	_, err = service.RenameTask(3, "x")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestTaskService_DeleteTask(t *testing.T) {
	service, repo := setupTaskService(t)
	_, err := service.AddTask("Única tarefa", "")
	require.NoError(t, err)

	deleted, err := service.DeleteTask(0)
	require.NoError(t, err)
	assert.Equal(t, "Única tarefa", deleted.Name)
	assert.Equal(t, 0, repo.Len())
	assert.Empty(t, service.ListTasks())

	_, err = service.DeleteTask(0)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestTaskService_SetReminder(t *testing.T) {
	now := time.Date(2024, time.May, 2, 10, 0, 0, 0, time.Local)

	t.Run("sets deadline to today at the given time", func(t *testing.T) {
		service, _ := setupTaskService(t)
		_, err := service.AddTask("Reunião", "01-01-2020 08:00")
		require.NoError(t, err)

		task, err := service.SetReminder(0, "15:45", now)
		require.NoError(t, err)
		assert.Equal(t, "Reunião (Prazo: 02-05-2024 15:45)", task.String())
	})

	t.Run("malformed time leaves the deadline unchanged", func(t *testing.T) {
		service, _ := setupTaskService(t)
		_, err := service.AddTask("Reunião", "01-01-2020 08:00")
		require.NoError(t, err)

		task, err := service.SetReminder(0, "quinze horas", now)
		require.Error(t, err)
		assert.Nil(t, task)
		assert.Equal(t, models.InvalidReminderMessage, apperrors.GetUserMessage(err))

		current, err := service.GetTask(0)
		require.NoError(t, err)
		assert.Equal(t, "Reunião (Prazo: 01-01-2020 08:00)", current.String())
	})

	t.Run("unknown index", func(t *testing.T) {
		service, _ := setupTaskService(t)

		_, err := service.SetReminder(0, "15:45", now)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
	})
}

func TestTaskService_ListTasksKeepsOrder(t *testing.T) {
	service, _ := setupTaskService(t)
	for _, name := range []string{"um", "dois", "três"} {
		_, err := service.AddTask(name, "")
		require.NoError(t, err)
	}

	tasks := service.ListTasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "um", tasks[0].Name)
	assert.Equal(t, "três", tasks[2].Name)
}

func errorTypePtr(et apperrors.ErrorType) *apperrors.ErrorType {
	return &et
}
