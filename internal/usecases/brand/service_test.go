package brand

import (
	"errors"
	"testing"

	"github.com/ecomistry/backoffice-api/infrastructure/repository/mocks"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func brandFixtures() []*domain.Brand {
	return []*domain.Brand{
		{ID: "Aa11Bb", Name: "Alfa Fashion", Category: "fashion", Status: domain.BrandStatusActive},
		{ID: "Cc22Dd", Name: "Beta Beauty", Category: "beauty", Status: domain.BrandStatusInactive},
		{ID: "Ee33Ff", Name: "Gama Tech", Category: "tech", Status: domain.BrandStatusActive},
		{ID: "Gg44Hh", Name: "Delta Fashion", Category: "fashion", Status: domain.BrandStatusPending},
		{ID: "Ii55Jj", Name: "Epsilon Store", Category: "tech", Status: domain.BrandStatusActive},
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBrandRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name     string
		filters  domain.BrandFilters
		expected []string
	}{
		{
			name:     "Sem filtros devolve tudo na ordem do repositório",
			filters:  domain.BrandFilters{},
			expected: []string{"Alfa Fashion", "Beta Beauty", "Gama Tech", "Delta Fashion", "Epsilon Store"},
		},
		{
			name:     "Filtro por status devolve apenas as ativas, na ordem original",
			filters:  domain.BrandFilters{Status: domain.BrandStatusActive},
			expected: []string{"Alfa Fashion", "Gama Tech", "Epsilon Store"},
		},
		{
			name:     "Busca e categoria combinam em AND",
			filters:  domain.BrandFilters{Search: "fashion", Category: "fashion"},
			expected: []string{"Alfa Fashion", "Delta Fashion"},
		},
		{
			name:     "Sentinela all não restringe",
			filters:  domain.BrandFilters{Status: "all", Category: "all"},
			expected: []string{"Alfa Fashion", "Beta Beauty", "Gama Tech", "Delta Fashion", "Epsilon Store"},
		},
		{
			name:     "Ordenação por nome",
			filters:  domain.BrandFilters{SortBy: "name", SortDir: "desc"},
			expected: []string{"Gama Tech", "Epsilon Store", "Delta Fashion", "Beta Beauty", "Alfa Fashion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().List().Return(brandFixtures(), nil)

			result, err := service.List(tt.filters)
			assert.NoError(t, err)

			got := make([]string, 0, len(result))
			for _, b := range result {
				got = append(got, b.Name)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestService_List_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBrandRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().List().Return(nil, errors.New("connection refused"))

	_, err := service.List(domain.BrandFilters{})

	var brandErr *BrandError
	if assert.ErrorAs(t, err, &brandErr) {
		assert.Equal(t, apiErrors.ErrDatabaseOperation, brandErr.Code)
	}
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBrandRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("ID vazio é recusado sem consultar o banco", func(t *testing.T) {
		_, err := service.Get("")

		var brandErr *BrandError
		if assert.ErrorAs(t, err, &brandErr) {
			assert.Equal(t, apiErrors.ErrMissingRequiredData, brandErr.Code)
		}
	})

	t.Run("Marca inexistente vira not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID("Zz99Xx").Return(nil, nil)

		_, err := service.Get("Zz99Xx")

		var brandErr *BrandError
		if assert.ErrorAs(t, err, &brandErr) {
			assert.Equal(t, apiErrors.ErrRecordNotFound, brandErr.Code)
		}
	})
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBrandRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("Entrada válida é normalizada e persistida com ID novo", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *domain.Brand) (*domain.Brand, error) {
			assert.Equal(t, "Marca Nova", b.Name)
			assert.Equal(t, domain.BrandStatusPending, b.Status)
			assert.Len(t, b.ID, 6)
			return b, nil
		})

		created, err := service.Create(domain.Row{"name": "  Marca Nova  "})
		assert.NoError(t, err)
		assert.Equal(t, "Marca Nova", created.Name)
	})

	t.Run("Nome ausente falha na validação sem tocar o banco", func(t *testing.T) {
		_, err := service.Create(domain.Row{"category": "fashion"})

		var brandErr *BrandError
		if assert.ErrorAs(t, err, &brandErr) {
			assert.Equal(t, apiErrors.ErrValidationFailed, brandErr.Code)
		}
	})
}

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBrandRepository(ctrl)
	service := NewService(mockRepo)

	// Apenas as linhas válidas chegam ao repositório
	mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(b *domain.Brand) (*domain.Brand, error) {
		return b, nil
	}).Times(2)

	created, err := service.Import([]domain.Row{
		{"name": "Valida Um"},
		{"category": "sem nome"},
		{"name": "Valida Dois"},
	})

	assert.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestService_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockBrandRepository(ctrl))

	t.Run("Tabela com dados", func(t *testing.T) {
		view := service.View(brandFixtures()[:1], false)

		assert.Equal(t, len(view.Headers), len(view.Keys))
		assert.Len(t, view.Rows, 1)
	})

	t.Run("Vazio sem carregamento gera placeholder único", func(t *testing.T) {
		view := service.View(nil, false)

		assert.Equal(t, "Nenhuma marca encontrada", view.EmptyMessage)
		assert.Len(t, view.Rows, 1)
	})

	t.Run("Carregando não exibe mensagem de vazio", func(t *testing.T) {
		view := service.View(nil, true)

		assert.True(t, view.Loading)
		assert.Empty(t, view.EmptyMessage)
		assert.Empty(t, view.Rows)
	})
}
