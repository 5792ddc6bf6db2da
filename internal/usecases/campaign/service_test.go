package campaign

import (
	"testing"
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/repository/mocks"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func recordFixture(id string) *domain.MediaBuyingRecord {
	return &domain.MediaBuyingRecord{
		ID:          id,
		Platform:    domain.PlatformFacebook,
		Date:        time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		BrandID:     "Aa11Bb",
		EmployeeID:  7,
		Spend:       300,
		OrdersCount: 10,
		OrderCost:   30,
	}
}

func TestService_Update_DerivedFields(t *testing.T) {
	tests := []struct {
		name              string
		request           *domain.UpdateMediaBuyingRequest
		expectedOrderCost float64
	}{
		{
			name: "Novo investimento sem custo explícito força o recálculo",
			request: &domain.UpdateMediaBuyingRequest{
				ID:    "Mm88Qq",
				Spend: floatPtr(500),
			},
			expectedOrderCost: 50,
		},
		{
			name: "Custo por pedido explícito é respeitado",
			request: &domain.UpdateMediaBuyingRequest{
				ID:        "Mm88Qq",
				Spend:     floatPtr(500),
				OrderCost: floatPtr(42),
			},
			expectedOrderCost: 42,
		},
		{
			name: "Novo total de pedidos também recalcula",
			request: &domain.UpdateMediaBuyingRequest{
				ID:          "Mm88Qq",
				OrdersCount: intPtr(20),
			},
			expectedOrderCost: 15,
		},
		{
			name: "Sem insumos novos o custo atual permanece",
			request: &domain.UpdateMediaBuyingRequest{
				ID:    "Mm88Qq",
				Notes: strPtr("Escalar o criativo vencedor"),
			},
			expectedOrderCost: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockMediaBuyingRepository(ctrl)
			service := NewService(mockRepo)

			mockRepo.EXPECT().GetByID("Mm88Qq").Return(recordFixture("Mm88Qq"), nil)
			mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

			updated, err := service.Update(tt.request)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOrderCost, updated.OrderCost)
		})
	}
}

func TestService_List_StaleTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMediaBuyingRepository(ctrl)
	service := NewService(mockRepo)

	// A segunda listagem começa enquanto a primeira ainda consulta o banco;
	// o resultado da primeira deve ser descartado
	first := mockRepo.EXPECT().List().DoAndReturn(func() ([]*domain.MediaBuyingRecord, error) {
		records, err := service.List(domain.MediaBuyingFilters{})
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		return []*domain.MediaBuyingRecord{recordFixture("Mm88Qq")}, nil
	})
	mockRepo.EXPECT().List().Return([]*domain.MediaBuyingRecord{recordFixture("Mm88Qq")}, nil).After(first)

	_, err := service.List(domain.MediaBuyingFilters{})

	assert.ErrorIs(t, err, ErrStaleResult)
}

func TestService_List_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMediaBuyingRepository(ctrl)
	service := NewService(mockRepo)

	instagram := recordFixture("Bb2")
	instagram.Platform = domain.PlatformInstagram

	mockRepo.EXPECT().List().Return([]*domain.MediaBuyingRecord{
		recordFixture("Aa1"),
		instagram,
		recordFixture("Cc3"),
	}, nil)

	records, err := service.List(domain.MediaBuyingFilters{Platform: domain.PlatformInstagram})

	assert.NoError(t, err)
	if assert.Len(t, records, 1) {
		assert.Equal(t, "Bb2", records[0].ID)
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMediaBuyingRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Custo por pedido é derivado na criação", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(record *domain.MediaBuyingRecord) (*domain.MediaBuyingRecord, error) {
			assert.Equal(t, float64(30), record.OrderCost)
			assert.Len(t, record.ID, 6)
			return record, nil
		})

		created, err := service.Create(domain.Row{
			"brand_id":     "Aa11Bb",
			"platform":     "facebook",
			"date":         "2026-02-14",
			"spend":        float64(300),
			"orders_count": float64(10),
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(30), created.OrderCost)
	})

	t.Run("Sem marca falha na validação sem tocar o banco", func(t *testing.T) {
		_, err := service.Create(domain.Row{"platform": "facebook"})

		var campaignErr *CampaignError
		if assert.ErrorAs(t, err, &campaignErr) {
			assert.Equal(t, apiErrors.ErrValidationFailed, campaignErr.Code)
		}
	})
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
