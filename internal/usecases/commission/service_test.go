package commission

import (
	"testing"
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/repository/mocks"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func commissionFixture() *domain.Commission {
	return &domain.Commission{
		ID:              "Cm55Xx",
		EmployeeID:      7,
		CommissionType:  domain.CommissionOnDelivery,
		ValueType:       domain.CommissionTypeFixed,
		ValueAmount:     2.5,
		OrdersCount:     4,
		TotalCommission: 10,
		DueDate:         time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommissionRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Total vindo do cliente é ignorado e recalculado", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Commission) (*domain.Commission, error) {
			return c, nil
		})

		created, err := service.Create(domain.Row{
			"employee_id":      float64(7),
			"value_type":       domain.CommissionTypePercentage,
			"value_amount":     float64(10),
			"orders_count":     float64(50),
			"total_commission": float64(9999),
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(5), created.TotalCommission)
	})

	t.Run("Sem funcionário falha na validação sem tocar o banco", func(t *testing.T) {
		_, err := service.Create(domain.Row{"value_amount": float64(10)})

		var commissionErr *CommissionError
		if assert.ErrorAs(t, err, &commissionErr) {
			assert.Equal(t, apiErrors.ErrValidationFailed, commissionErr.Code)
		}
	})
}

func TestService_Update_RecomputesTotal(t *testing.T) {
	tests := []struct {
		name          string
		request       *domain.UpdateCommissionRequest
		expectedTotal float64
	}{
		{
			name: "Mais pedidos aumentam o total fixo",
			request: &domain.UpdateCommissionRequest{
				ID:          "Cm55Xx",
				OrdersCount: intPtr(8),
			},
			expectedTotal: 20,
		},
		{
			name: "Troca para percentual reinterpreta o valor",
			request: &domain.UpdateCommissionRequest{
				ID:          "Cm55Xx",
				ValueType:   strPtr(domain.CommissionTypePercentage),
				ValueAmount: floatPtr(10),
			},
			expectedTotal: 0.4,
		},
		{
			name: "Sem mudança de insumos o total continua consistente",
			request: &domain.UpdateCommissionRequest{
				ID:             "Cm55Xx",
				CommissionType: strPtr(domain.CommissionOnConfirmation),
			},
			expectedTotal: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockCommissionRepository(ctrl)
			service := NewService(mockRepo)

			mockRepo.EXPECT().GetByID("Cm55Xx").Return(commissionFixture(), nil)
			mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

			updated, err := service.Update(tt.request)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, updated.TotalCommission)
		})
	}
}

func TestService_List_FilterByEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCommissionRepository(ctrl)
	service := NewService(mockRepo)

	other := commissionFixture()
	other.ID = "Cm66Yy"
	other.EmployeeID = 9

	mockRepo.EXPECT().List().Return([]*domain.Commission{commissionFixture(), other}, nil)

	commissions, err := service.List(domain.CommissionFilters{EmployeeID: "9"})

	assert.NoError(t, err)
	if assert.Len(t, commissions, 1) {
		assert.Equal(t, "Cm66Yy", commissions[0].ID)
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
