package brand

import (
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/repository"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/filtering"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/table"
	"github.com/ecomistry/backoffice-api/pkg/utils"
	"github.com/ecomistry/backoffice-api/pkg/validate"
	"github.com/sirupsen/logrus"
)

type BrandService interface {
	List(filters domain.BrandFilters) ([]*domain.Brand, error)
	Get(id string) (*domain.Brand, error)
	Create(row domain.Row) (*domain.Brand, error)
	Update(request *domain.UpdateBrandRequest) (*domain.Brand, error)
	Delete(id string) error
	Import(rows []domain.Row) ([]*domain.Brand, error)
	View(brands []*domain.Brand, isLoading bool) table.View
}

type Service struct {
	brandRepository repository.BrandRepository
}

func NewService(brandRepository repository.BrandRepository) BrandService {
	return &Service{
		brandRepository: brandRepository,
	}
}

// List busca as marcas e aplica busca, filtros categóricos e ordenação em
// memória, preservando a ordem do repositório quando nada está ativo
func (s *Service) List(filters domain.BrandFilters) ([]*domain.Brand, error) {
	brands, err := s.brandRepository.List()
	if err != nil {
		return nil, NewBrandError(ErrFetchBrands, apiErrors.ErrDatabaseOperation, "Falha ao listar marcas no banco de dados")
	}

	brands = filtering.Apply(brands,
		filtering.Search(filters.Search, func(b *domain.Brand) []string {
			return []string{b.Name, b.Category}
		}),
		filtering.Equals(filters.Status, func(b *domain.Brand) string { return b.Status }),
		filtering.Equals(filters.Category, func(b *domain.Brand) string { return b.Category }),
	)

	sortBrands(brands, filters.SortBy, filters.SortDir)

	return brands, nil
}

func sortBrands(brands []*domain.Brand, sortBy, sortDir string) {
	switch sortBy {
	case "name":
		filtering.SortText(brands, func(b *domain.Brand) string { return b.Name }, sortDir)
	case "category":
		filtering.SortText(brands, func(b *domain.Brand) string { return b.Category }, sortDir)
	case "status":
		filtering.SortText(brands, func(b *domain.Brand) string { return b.Status }, sortDir)
	case "created_at":
		filtering.SortDate(brands, func(b *domain.Brand) time.Time { return b.CreatedAt }, sortDir)
	}
}

func (s *Service) Get(id string) (*domain.Brand, error) {
	if id == "" {
		return nil, NewBrandError(ErrBrandIDRequired, apiErrors.ErrMissingRequiredData, "ID da marca é obrigatório")
	}

	brand, err := s.brandRepository.GetByID(id)
	if err != nil {
		return nil, NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar marca no banco de dados")
	}
	if brand == nil {
		return nil, NewBrandError(ErrBrandNotFound, apiErrors.ErrRecordNotFound, "Marca não encontrada")
	}

	return brand, nil
}

// Create normaliza a entrada bruta, valida os campos obrigatórios e persiste
// a marca com um identificador novo
func (s *Service) Create(row domain.Row) (*domain.Brand, error) {
	brand := domain.NormalizeBrand(row)

	if err := validate.Struct(brand); err != nil {
		return nil, NewBrandError(ErrInvalidBrand, apiErrors.ErrValidationFailed, "Dados da marca inválidos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewBrandError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para marca")
	}
	brand.ID = id

	brand, err = s.brandRepository.Create(brand)
	if err != nil {
		logrus.Error("Erro ao criar marca:", err)
		return nil, NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar marca")
	}

	return brand, nil
}

func (s *Service) Update(request *domain.UpdateBrandRequest) (*domain.Brand, error) {
	brand, err := s.Get(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		brand.Name = *request.Name
	}
	if request.Category != nil {
		brand.Category = *request.Category
	}
	if request.Status != nil {
		brand.Status = *request.Status
	}
	if request.SocialLinks != nil {
		brand.SocialLinks = *request.SocialLinks
	}

	if err := validate.Struct(brand); err != nil {
		return nil, NewBrandError(ErrInvalidBrand, apiErrors.ErrValidationFailed, "Dados da marca inválidos")
	}

	if err := s.brandRepository.Update(brand); err != nil {
		return nil, NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar marca")
	}

	return brand, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.brandRepository.Delete(id); err != nil {
		return NewBrandError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover marca")
	}

	return nil
}

// Import cria marcas em lote a partir de linhas brutas. Linhas inválidas são
// puladas com log, sem abortar o restante do lote.
func (s *Service) Import(rows []domain.Row) ([]*domain.Brand, error) {
	created := make([]*domain.Brand, 0, len(rows))

	for i, row := range rows {
		brand, err := s.Create(row)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"row":   i,
				"error": err,
			}).Warn("brands: import row skipped")
			continue
		}
		created = append(created, brand)
	}

	return created, nil
}

// TableColumns define a apresentação tabular das marcas, compartilhada entre
// a listagem e a exportação
func TableColumns() []table.Column[*domain.Brand] {
	return []table.Column[*domain.Brand]{
		{Key: "name", Header: "Marca", Cell: func(b *domain.Brand) string { return b.Name }},
		{Key: "category", Header: "Categoria", Cell: func(b *domain.Brand) string { return b.Category }},
		{Key: "status", Header: "Status", Cell: func(b *domain.Brand) string { return b.StatusLabel() }},
		{Key: "instagram", Header: "Instagram", Cell: func(b *domain.Brand) string { return b.SocialLinks.Instagram }},
		{Key: "website", Header: "Site", Cell: func(b *domain.Brand) string { return b.SocialLinks.Website }},
		{Key: "created_at", Header: "Criada em", Cell: func(b *domain.Brand) string { return utils.FormatDate(b.CreatedAt) }},
	}
}

func (s *Service) View(brands []*domain.Brand, isLoading bool) table.View {
	return table.Render(TableColumns(), brands, isLoading, "Nenhuma marca encontrada")
}
