package tasking

import (
	"testing"
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/repository/mocks"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func taskFixture(id, status string) *domain.ContentTask {
	return &domain.ContentTask{
		ID:         id,
		EmployeeID: 7,
		BrandID:    "Aa11Bb",
		TaskType:   domain.TaskTypeReel,
		Deadline:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

func TestService_ChangeStatus(t *testing.T) {
	tests := []struct {
		name          string
		currentStatus string
		targetStatus  string
		expectedCode  string
		expectsUpdate bool
	}{
		{
			name:          "Em produção pode ser entregue",
			currentStatus: domain.TaskStatusInProgress,
			targetStatus:  domain.TaskStatusDelivered,
			expectsUpdate: true,
		},
		{
			name:          "Entregue pode voltar para produção",
			currentStatus: domain.TaskStatusDelivered,
			targetStatus:  domain.TaskStatusInProgress,
			expectsUpdate: true,
		},
		{
			name:          "Entregue não vira atrasada diretamente",
			currentStatus: domain.TaskStatusDelivered,
			targetStatus:  domain.TaskStatusDelayed,
			expectedCode:  apiErrors.ErrInvalidTransition,
		},
		{
			name:          "Atrasada não vira entregue diretamente",
			currentStatus: domain.TaskStatusDelayed,
			targetStatus:  domain.TaskStatusDelivered,
			expectedCode:  apiErrors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockContentTaskRepository(ctrl)
			service := NewService(mockRepo)

			mockRepo.EXPECT().GetByID("Tt77Kk").Return(taskFixture("Tt77Kk", tt.currentStatus), nil)
			if tt.expectsUpdate {
				mockRepo.EXPECT().UpdateStatus("Tt77Kk", tt.targetStatus).Return(nil)
			}

			task, err := service.ChangeStatus("Tt77Kk", tt.targetStatus)

			if tt.expectedCode != "" {
				var taskErr *TaskError
				if assert.ErrorAs(t, err, &taskErr) {
					assert.Equal(t, tt.expectedCode, taskErr.Code)
				}
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.targetStatus, task.Status)
		})
	}
}

func TestService_ChangeStatus_SameStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentTaskRepository(ctrl)
	service := NewService(mockRepo)

	// Reaplicar o mesmo status não escreve no banco
	mockRepo.EXPECT().GetByID("Tt77Kk").Return(taskFixture("Tt77Kk", domain.TaskStatusDelayed), nil)

	task, err := service.ChangeStatus("Tt77Kk", domain.TaskStatusDelayed)

	assert.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDelayed, task.Status)
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentTaskRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Toda tarefa nasce em produção, mesmo com status no corpo", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(task *domain.ContentTask) (*domain.ContentTask, error) {
			assert.Equal(t, domain.TaskStatusInProgress, task.Status)
			assert.Len(t, task.ID, 6)
			return task, nil
		})

		created, err := service.Create(domain.Row{
			"employee_id": float64(7),
			"brand_id":    "Aa11Bb",
			"task_type":   "reel",
			"status":      domain.TaskStatusDelivered,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusInProgress, created.Status)
	})

	t.Run("Sem funcionário falha na validação sem tocar o banco", func(t *testing.T) {
		_, err := service.Create(domain.Row{"brand_id": "Aa11Bb"})

		var taskErr *TaskError
		if assert.ErrorAs(t, err, &taskErr) {
			assert.Equal(t, apiErrors.ErrValidationFailed, taskErr.Code)
		}
	})
}

func TestService_Update_StatusTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentTaskRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Atualização geral respeita o grafo de transições", func(t *testing.T) {
		mockRepo.EXPECT().GetByID("Tt77Kk").Return(taskFixture("Tt77Kk", domain.TaskStatusDelivered), nil)

		target := domain.TaskStatusDelayed
		_, err := service.Update(&domain.UpdateContentTaskRequest{ID: "Tt77Kk", Status: &target})

		var taskErr *TaskError
		if assert.ErrorAs(t, err, &taskErr) {
			assert.Equal(t, apiErrors.ErrInvalidTransition, taskErr.Code)
		}
	})

	t.Run("Campos pontuais são mesclados sobre a tarefa existente", func(t *testing.T) {
		mockRepo.EXPECT().GetByID("Tt77Kk").Return(taskFixture("Tt77Kk", domain.TaskStatusInProgress), nil)
		mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

		notes := "Refazer o corte final"
		updated, err := service.Update(&domain.UpdateContentTaskRequest{ID: "Tt77Kk", Notes: &notes})

		assert.NoError(t, err)
		assert.Equal(t, notes, updated.Notes)
		assert.Equal(t, domain.TaskTypeReel, updated.TaskType)
	})
}

func TestService_List_FilterByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentTaskRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().List().Return([]*domain.ContentTask{
		taskFixture("Aa1", domain.TaskStatusInProgress),
		taskFixture("Bb2", domain.TaskStatusDelivered),
		taskFixture("Cc3", domain.TaskStatusDelayed),
	}, nil)

	tasks, err := service.List(domain.ContentTaskFilters{Status: domain.TaskStatusDelayed})

	assert.NoError(t, err)
	if assert.Len(t, tasks, 1) {
		assert.Equal(t, "Cc3", tasks[0].ID)
	}
}
