package campaign

import (
	"strconv"
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

type CampaignService interface {
	List(filters domain.MediaBuyingFilters) ([]*domain.MediaBuyingRecord, error)
	Get(id string) (*domain.MediaBuyingRecord, error)
	Create(row domain.Row) (*domain.MediaBuyingRecord, error)
	Update(request *domain.UpdateMediaBuyingRequest) (*domain.MediaBuyingRecord, error)
	Delete(id string) error
	View(records []*domain.MediaBuyingRecord, isLoading bool) table.View
}

type Service struct {
	mediaBuyingRepository repository.MediaBuyingRepository

	// guard descarta resultados de listagens que foram ultrapassadas por uma
	// busca mais recente
	guard utils.SequenceGuard
}

func NewService(mediaBuyingRepository repository.MediaBuyingRepository) CampaignService {
	return &Service{
		mediaBuyingRepository: mediaBuyingRepository,
	}
}

// List busca os registros e aplica busca, filtros e ordenação em memória.
// Se outra listagem começar enquanto esta ainda consulta o banco, o
// resultado desta é descartado em favor do mais novo.
func (s *Service) List(filters domain.MediaBuyingFilters) ([]*domain.MediaBuyingRecord, error) {
	ticket := s.guard.Next()

	records, err := s.mediaBuyingRepository.List()
	if err != nil {
		return nil, NewCampaignError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar registros de mídia no banco de dados")
	}

	if !s.guard.Latest(ticket) {
		return nil, NewCampaignError(ErrStaleResult, apiErrors.ErrInvalidRequest, "Listagem substituída por uma busca mais recente")
	}

	records = filtering.Apply(records,
		filtering.Search(filters.Search, func(m *domain.MediaBuyingRecord) []string {
			return []string{m.BrandName, m.EmployeeName, m.Platform, m.CampaignLink, m.Notes}
		}),
		filtering.Equals(filters.Platform, func(m *domain.MediaBuyingRecord) string { return m.Platform }),
		filtering.Equals(filters.BrandID, func(m *domain.MediaBuyingRecord) string { return m.BrandID }),
		filtering.Equals(filters.EmployeeID, func(m *domain.MediaBuyingRecord) string {
			return strconv.Itoa(m.EmployeeID)
		}),
		filtering.DateRange(filters.StartDate, filters.EndDate, func(m *domain.MediaBuyingRecord) time.Time {
			return m.Date
		}),
	)

	sortRecords(records, filters.SortBy, filters.SortDir)

	return records, nil
}

func sortRecords(records []*domain.MediaBuyingRecord, sortBy, sortDir string) {
	switch sortBy {
	case "date":
		filtering.SortDate(records, func(m *domain.MediaBuyingRecord) time.Time { return m.Date }, sortDir)
	case "brand":
		filtering.SortText(records, func(m *domain.MediaBuyingRecord) string { return m.BrandName }, sortDir)
	case "spend":
		filtering.SortNumeric(records, func(m *domain.MediaBuyingRecord) float64 { return m.Spend }, sortDir)
	case "orders_count":
		filtering.SortNumeric(records, func(m *domain.MediaBuyingRecord) float64 { return float64(m.OrdersCount) }, sortDir)
	case "order_cost":
		filtering.SortNumeric(records, func(m *domain.MediaBuyingRecord) float64 { return m.OrderCost }, sortDir)
	}
}

func (s *Service) Get(id string) (*domain.MediaBuyingRecord, error) {
	if id == "" {
		return nil, NewCampaignError(ErrRecordIDRequired, apiErrors.ErrMissingRequiredData, "ID do registro é obrigatório")
	}

	record, err := s.mediaBuyingRepository.GetByID(id)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar registro no banco de dados")
	}
	if record == nil {
		return nil, NewCampaignError(ErrRecordNotFound, apiErrors.ErrRecordNotFound, "Registro de mídia não encontrado")
	}

	return record, nil
}

// Create normaliza a entrada bruta, recalcula os campos derivados e persiste
// o registro com um identificador novo
func (s *Service) Create(row domain.Row) (*domain.MediaBuyingRecord, error) {
	record := domain.NormalizeMediaBuying(row)

	if err := validate.Struct(record); err != nil {
		return nil, NewCampaignError(ErrInvalidRecord, apiErrors.ErrValidationFailed, "Dados do registro de mídia inválidos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para registro")
	}
	record.ID = id

	record, err = s.mediaBuyingRepository.Create(record)
	if err != nil {
		logrus.Error("Erro ao criar registro de mídia:", err)
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar registro de mídia")
	}

	return record, nil
}

func (s *Service) Update(request *domain.UpdateMediaBuyingRequest) (*domain.MediaBuyingRecord, error) {
	record, err := s.Get(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Platform != nil {
		record.Platform = *request.Platform
	}
	if request.Date != nil {
		record.Date = *request.Date
	}
	if request.BrandID != nil {
		record.BrandID = *request.BrandID
	}
	if request.EmployeeID != nil {
		record.EmployeeID = *request.EmployeeID
	}
	if request.Spend != nil {
		record.Spend = *request.Spend
	}
	if request.OrdersCount != nil {
		record.OrdersCount = *request.OrdersCount
	}
	if request.ROAS != nil {
		record.ROAS = request.ROAS
	}
	if request.CampaignLink != nil {
		record.CampaignLink = *request.CampaignLink
	}
	if request.Notes != nil {
		record.Notes = *request.Notes
	}

	// Custo por pedido explícito é respeitado; sem ele, os insumos novos
	// forçam o recálculo
	if request.OrderCost != nil {
		record.OrderCost = *request.OrderCost
	} else if request.Spend != nil || request.OrdersCount != nil {
		record.OrderCost = 0
	}
	record.RecomputeDerived()

	if err := validate.Struct(record); err != nil {
		return nil, NewCampaignError(ErrInvalidRecord, apiErrors.ErrValidationFailed, "Dados do registro de mídia inválidos")
	}

	if err := s.mediaBuyingRepository.Update(record); err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar registro de mídia")
	}

	return record, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.mediaBuyingRepository.Delete(id); err != nil {
		return NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover registro de mídia")
	}

	return nil
}

// TableColumns define a apresentação tabular dos registros de compra de
// mídia, compartilhada entre a listagem e a exportação
func TableColumns() []table.Column[*domain.MediaBuyingRecord] {
	return []table.Column[*domain.MediaBuyingRecord]{
		{Key: "date", Header: "Data", Cell: func(m *domain.MediaBuyingRecord) string { return utils.FormatDate(m.Date) }},
		{Key: "brand", Header: "Marca", Cell: func(m *domain.MediaBuyingRecord) string { return m.BrandName }},
		{Key: "platform", Header: "Plataforma", Cell: func(m *domain.MediaBuyingRecord) string { return m.Platform }},
		{Key: "employee", Header: "Comprador", Cell: func(m *domain.MediaBuyingRecord) string { return m.EmployeeName }},
		{Key: "spend", Header: "Investimento", Cell: func(m *domain.MediaBuyingRecord) string { return utils.FormatMoney(m.Spend) }},
		{Key: "orders_count", Header: "Pedidos", Cell: func(m *domain.MediaBuyingRecord) string {
			return strconv.Itoa(m.OrdersCount)
		}},
		{Key: "order_cost", Header: "Custo por Pedido", Cell: func(m *domain.MediaBuyingRecord) string {
			return utils.FormatMoney(m.OrderCost)
		}},
		{Key: "roas", Header: "ROAS", Cell: func(m *domain.MediaBuyingRecord) string {
			if m.ROAS == nil {
				return ""
			}
			return utils.FormatNumber(utils.RoundWithTwoDecimalPlace(*m.ROAS))
		}},
	}
}

func (s *Service) View(records []*domain.MediaBuyingRecord, isLoading bool) table.View {
	return table.Render(TableColumns(), records, isLoading, "Nenhum registro de mídia encontrado")
}
