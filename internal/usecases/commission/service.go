package commission

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

type CommissionService interface {
	List(filters domain.CommissionFilters) ([]*domain.Commission, error)
	Get(id string) (*domain.Commission, error)
	Create(row domain.Row) (*domain.Commission, error)
	Update(request *domain.UpdateCommissionRequest) (*domain.Commission, error)
	Delete(id string) error
	View(commissions []*domain.Commission, isLoading bool) table.View
}

type Service struct {
	commissionRepository repository.CommissionRepository
}

func NewService(commissionRepository repository.CommissionRepository) CommissionService {
	return &Service{
		commissionRepository: commissionRepository,
	}
}

func (s *Service) List(filters domain.CommissionFilters) ([]*domain.Commission, error) {
	commissions, err := s.commissionRepository.List()
	if err != nil {
		return nil, NewCommissionError(ErrFetchCommissions, apiErrors.ErrDatabaseOperation, "Falha ao listar comissões no banco de dados")
	}

	commissions = filtering.Apply(commissions,
		filtering.Search(filters.Search, func(c *domain.Commission) []string {
			return []string{c.EmployeeName, c.CommissionType, c.ValueType}
		}),
		filtering.Equals(filters.CommissionType, func(c *domain.Commission) string { return c.CommissionType }),
		filtering.Equals(filters.ValueType, func(c *domain.Commission) string { return c.ValueType }),
		filtering.Equals(filters.EmployeeID, func(c *domain.Commission) string {
			return strconv.Itoa(c.EmployeeID)
		}),
		filtering.DateRange(filters.StartDate, filters.EndDate, func(c *domain.Commission) time.Time {
			return c.DueDate
		}),
	)

	sortCommissions(commissions, filters.SortBy, filters.SortDir)

	return commissions, nil
}

func sortCommissions(commissions []*domain.Commission, sortBy, sortDir string) {
	switch sortBy {
	case "due_date":
		filtering.SortDate(commissions, func(c *domain.Commission) time.Time { return c.DueDate }, sortDir)
	case "employee":
		filtering.SortText(commissions, func(c *domain.Commission) string { return c.EmployeeName }, sortDir)
	case "total_commission":
		filtering.SortNumeric(commissions, func(c *domain.Commission) float64 { return c.TotalCommission }, sortDir)
	}
}

func (s *Service) Get(id string) (*domain.Commission, error) {
	if id == "" {
		return nil, NewCommissionError(ErrCommissionIDRequired, apiErrors.ErrMissingRequiredData, "ID da comissão é obrigatório")
	}

	commission, err := s.commissionRepository.GetByID(id)
	if err != nil {
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar comissão no banco de dados")
	}
	if commission == nil {
		return nil, NewCommissionError(ErrCommissionNotFound, apiErrors.ErrRecordNotFound, "Comissão não encontrada")
	}

	return commission, nil
}

// Create normaliza a entrada bruta, recalcula o total e persiste a comissão.
// O total nunca é aceito do cliente.
func (s *Service) Create(row domain.Row) (*domain.Commission, error) {
	commission := domain.NormalizeCommission(row)

	if err := validate.Struct(commission); err != nil {
		return nil, NewCommissionError(ErrInvalidCommission, apiErrors.ErrValidationFailed, "Dados da comissão inválidos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCommissionError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para comissão")
	}
	commission.ID = id

	commission, err = s.commissionRepository.Create(commission)
	if err != nil {
		logrus.Error("Erro ao criar comissão:", err)
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar comissão")
	}

	return commission, nil
}

func (s *Service) Update(request *domain.UpdateCommissionRequest) (*domain.Commission, error) {
	commission, err := s.Get(request.ID)
	if err != nil {
		return nil, err
	}

	if request.EmployeeID != nil {
		commission.EmployeeID = *request.EmployeeID
	}
	if request.CommissionType != nil {
		commission.CommissionType = *request.CommissionType
	}
	if request.ValueType != nil {
		commission.ValueType = *request.ValueType
	}
	if request.ValueAmount != nil {
		commission.ValueAmount = *request.ValueAmount
	}
	if request.OrdersCount != nil {
		commission.OrdersCount = *request.OrdersCount
	}
	if request.DueDate != nil {
		commission.DueDate = *request.DueDate
	}

	// O total é sempre função dos insumos atuais
	commission.RecomputeDerived()

	if err := validate.Struct(commission); err != nil {
		return nil, NewCommissionError(ErrInvalidCommission, apiErrors.ErrValidationFailed, "Dados da comissão inválidos")
	}

	if err := s.commissionRepository.Update(commission); err != nil {
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar comissão")
	}

	return commission, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.commissionRepository.Delete(id); err != nil {
		return NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover comissão")
	}

	return nil
}

// TableColumns define a apresentação tabular das comissões, compartilhada
// entre a listagem e a exportação
func TableColumns() []table.Column[*domain.Commission] {
	return []table.Column[*domain.Commission]{
		{Key: "employee", Header: "Funcionário", Cell: func(c *domain.Commission) string { return c.EmployeeName }},
		{Key: "commission_type", Header: "Gatilho", Cell: func(c *domain.Commission) string { return c.CommissionType }},
		{Key: "value_type", Header: "Tipo de Valor", Cell: func(c *domain.Commission) string { return c.ValueType }},
		{Key: "value_amount", Header: "Valor", Cell: func(c *domain.Commission) string { return utils.FormatMoney(c.ValueAmount) }},
		{Key: "orders_count", Header: "Pedidos", Cell: func(c *domain.Commission) string {
			return strconv.Itoa(c.OrdersCount)
		}},
		{Key: "total_commission", Header: "Total", Cell: func(c *domain.Commission) string {
			return utils.FormatMoney(c.TotalCommission)
		}},
		{Key: "due_date", Header: "Vencimento", Cell: func(c *domain.Commission) string { return utils.FormatDate(c.DueDate) }},
	}
}

func (s *Service) View(commissions []*domain.Commission, isLoading bool) table.View {
	return table.Render(TableColumns(), commissions, isLoading, "Nenhuma comissão encontrada")
}
