package finance

import (
	"strconv"
	"time"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/filtering"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/table"
	"github.com/ecomistry/backoffice-api/pkg/utils"
	"github.com/ecomistry/backoffice-api/pkg/validate"
	"github.com/sirupsen/logrus"
)

func (s *Service) ListRevenues(filters domain.RevenueFilters) ([]*domain.Revenue, error) {
	revenues, err := s.revenueRepository.List()
	if err != nil {
		return nil, NewFinanceError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar receitas no banco de dados")
	}

	revenues = filtering.Apply(revenues,
		filtering.Search(filters.Search, func(r *domain.Revenue) []string {
			return []string{r.BrandName, r.Notes}
		}),
		filtering.Equals(filters.BrandID, func(r *domain.Revenue) string { return r.BrandID }),
		filtering.DateRange(filters.StartDate, filters.EndDate, func(r *domain.Revenue) time.Time {
			return r.Date
		}),
	)

	switch filters.SortBy {
	case "date":
		filtering.SortDate(revenues, func(r *domain.Revenue) time.Time { return r.Date }, filters.SortDir)
	case "brand":
		filtering.SortText(revenues, func(r *domain.Revenue) string { return r.BrandName }, filters.SortDir)
	case "total_revenue":
		filtering.SortNumeric(revenues, func(r *domain.Revenue) float64 { return r.TotalRevenue }, filters.SortDir)
	}

	return revenues, nil
}

func (s *Service) GetRevenue(id string) (*domain.Revenue, error) {
	if id == "" {
		return nil, NewFinanceError(ErrRecordIDRequired, apiErrors.ErrMissingRequiredData, "ID da receita é obrigatório")
	}

	revenue, err := s.revenueRepository.GetByID(id)
	if err != nil {
		return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar receita no banco de dados")
	}
	if revenue == nil {
		return nil, NewFinanceError(ErrRevenueNotFound, apiErrors.ErrRecordNotFound, "Receita não encontrada")
	}

	return revenue, nil
}

// CreateRevenue normaliza a entrada bruta, recalcula o total e persiste a
// receita. O total nunca é aceito do cliente.
func (s *Service) CreateRevenue(row domain.Row) (*domain.Revenue, error) {
	revenue := domain.NormalizeRevenue(row)

	if err := validate.Struct(revenue); err != nil {
		return nil, NewFinanceError(ErrInvalidRecord, apiErrors.ErrValidationFailed, "Dados da receita inválidos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewFinanceError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para receita")
	}
	revenue.ID = id

	revenue, err = s.revenueRepository.Create(revenue)
	if err != nil {
		logrus.Error("Erro ao criar receita:", err)
		return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar receita")
	}

	return revenue, nil
}

func (s *Service) UpdateRevenue(request *domain.UpdateRevenueRequest) (*domain.Revenue, error) {
	revenue, err := s.GetRevenue(request.ID)
	if err != nil {
		return nil, err
	}

	if request.BrandID != nil {
		revenue.BrandID = *request.BrandID
	}
	if request.Date != nil {
		revenue.Date = *request.Date
	}
	if request.UnitsSold != nil {
		revenue.UnitsSold = *request.UnitsSold
	}
	if request.UnitPrice != nil {
		revenue.UnitPrice = *request.UnitPrice
	}
	if request.Notes != nil {
		revenue.Notes = *request.Notes
	}

	revenue.RecomputeDerived()

	if err := validate.Struct(revenue); err != nil {
		return nil, NewFinanceError(ErrInvalidRecord, apiErrors.ErrValidationFailed, "Dados da receita inválidos")
	}

	if err := s.revenueRepository.Update(revenue); err != nil {
		return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar receita")
	}

	return revenue, nil
}

func (s *Service) DeleteRevenue(id string) error {
	if _, err := s.GetRevenue(id); err != nil {
		return err
	}

	if err := s.revenueRepository.Delete(id); err != nil {
		return NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover receita")
	}

	return nil
}

// RevenueTableColumns define a apresentação tabular das receitas
func RevenueTableColumns() []table.Column[*domain.Revenue] {
	return []table.Column[*domain.Revenue]{
		{Key: "date", Header: "Data", Cell: func(r *domain.Revenue) string { return utils.FormatDate(r.Date) }},
		{Key: "brand", Header: "Marca", Cell: func(r *domain.Revenue) string { return r.BrandName }},
		{Key: "units_sold", Header: "Unidades", Cell: func(r *domain.Revenue) string {
			return strconv.Itoa(r.UnitsSold)
		}},
		{Key: "unit_price", Header: "Preço Unitário", Cell: func(r *domain.Revenue) string { return utils.FormatMoney(r.UnitPrice) }},
		{Key: "total_revenue", Header: "Receita Total", Cell: func(r *domain.Revenue) string { return utils.FormatMoney(r.TotalRevenue) }},
	}
}

func (s *Service) RevenueView(revenues []*domain.Revenue, isLoading bool) table.View {
	return table.Render(RevenueTableColumns(), revenues, isLoading, "Nenhuma receita encontrada")
}
