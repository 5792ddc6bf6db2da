package finance

import (
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/repository"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/table"
	"github.com/ecomistry/backoffice-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type FinanceService interface {
	ListRevenues(filters domain.RevenueFilters) ([]*domain.Revenue, error)
	GetRevenue(id string) (*domain.Revenue, error)
	CreateRevenue(row domain.Row) (*domain.Revenue, error)
	UpdateRevenue(request *domain.UpdateRevenueRequest) (*domain.Revenue, error)
	DeleteRevenue(id string) error
	RevenueView(revenues []*domain.Revenue, isLoading bool) table.View

	ListExpenses(filters domain.ExpenseFilters) ([]*domain.Expense, error)
	GetExpense(id string) (*domain.Expense, error)
	CreateExpense(row domain.Row) (*domain.Expense, error)
	UpdateExpense(request *domain.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(id string) error
	ExpenseView(expenses []*domain.Expense, isLoading bool) table.View

	Summary(startDate, endDate *time.Time, brandID string) (*domain.FinanceSummary, error)
	Report(period string) ([]*domain.FinanceSnapshot, error)
	Periods() (*domain.AvailablePeriods, error)
	SyncMonth(month string) (int, error)
}

type Service struct {
	revenueRepository  repository.RevenueRepository
	expenseRepository  repository.ExpenseRepository
	snapshotRepository repository.FinanceSnapshotRepository
}

func NewService(
	revenueRepository repository.RevenueRepository,
	expenseRepository repository.ExpenseRepository,
	snapshotRepository repository.FinanceSnapshotRepository,
) FinanceService {
	return &Service{
		revenueRepository:  revenueRepository,
		expenseRepository:  expenseRepository,
		snapshotRepository: snapshotRepository,
	}
}

// Summary agrega receitas e despesas do intervalo, com filtro opcional por
// marca. Quando os dois limites de data estão presentes, a restrição é
// empurrada para o banco.
func (s *Service) Summary(startDate, endDate *time.Time, brandID string) (*domain.FinanceSummary, error) {
	revenues, expenses, err := s.fetchRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := &domain.FinanceSummary{
		BrandID:            brandID,
		ExpensesByCategory: make(map[string]float64),
		RevenueByBrand:     make(map[string]float64),
	}
	if startDate != nil && !startDate.IsZero() {
		summary.StartDate = utils.FormatDate(*startDate)
	}
	if endDate != nil && !endDate.IsZero() {
		summary.EndDate = utils.FormatDate(*endDate)
	}

	for _, revenue := range revenues {
		if brandID != "" && revenue.BrandID != brandID {
			continue
		}
		summary.TotalRevenue += revenue.TotalRevenue

		name := revenue.BrandName
		if name == "" {
			name = revenue.BrandID
		}
		summary.RevenueByBrand[name] += revenue.TotalRevenue
	}

	for _, expense := range expenses {
		if brandID != "" && expense.BrandID != brandID {
			continue
		}
		summary.TotalExpenses += expense.Amount
		summary.ExpensesByCategory[expense.Category] += expense.Amount
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.TotalExpenses = utils.RoundWithTwoDecimalPlace(summary.TotalExpenses)
	summary.Profit = utils.RoundWithTwoDecimalPlace(domain.Profit(summary.TotalRevenue, summary.TotalExpenses))
	summary.ProfitMargin = utils.RoundWithTwoDecimalPlace(domain.ProfitMargin(summary.Profit, summary.TotalRevenue))

	return summary, nil
}

func (s *Service) fetchRange(startDate, endDate *time.Time) ([]*domain.Revenue, []*domain.Expense, error) {
	bounded := startDate != nil && !startDate.IsZero() && endDate != nil && !endDate.IsZero()

	var (
		revenues []*domain.Revenue
		expenses []*domain.Expense
		err      error
	)

	if bounded {
		revenues, err = s.revenueRepository.ListByRange(*startDate, *endDate)
	} else {
		revenues, err = s.revenueRepository.List()
	}
	if err != nil {
		return nil, nil, NewFinanceError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar receitas no banco de dados")
	}

	if bounded {
		expenses, err = s.expenseRepository.ListByRange(*startDate, *endDate)
	} else {
		expenses, err = s.expenseRepository.List()
	}
	if err != nil {
		return nil, nil, NewFinanceError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar despesas no banco de dados")
	}

	return revenues, expenses, nil
}

// Report serve o fechamento mensal por marca. Meses ainda sem fechamento
// gravado são calculados na hora e persistidos.
func (s *Service) Report(period string) ([]*domain.FinanceSnapshot, error) {
	if _, _, err := utils.MonthRange(period); err != nil {
		return nil, NewFinanceError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "Período deve estar no formato MM-YYYY")
	}

	snapshots, err := s.snapshotRepository.ListByMonth(period)
	if err != nil {
		return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar fechamentos no banco de dados")
	}

	if len(snapshots) == 0 {
		if _, err := s.SyncMonth(period); err != nil {
			return nil, err
		}

		snapshots, err = s.snapshotRepository.ListByMonth(period)
		if err != nil {
			return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar fechamentos no banco de dados")
		}
	}

	return snapshots, nil
}

func (s *Service) Periods() (*domain.AvailablePeriods, error) {
	periods, err := s.snapshotRepository.ListPeriods()
	if err != nil {
		return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar períodos no banco de dados")
	}

	return &domain.AvailablePeriods{Periods: periods}, nil
}

// SyncMonth recalcula e grava o fechamento de todas as marcas com movimento
// no mês informado. Retorna quantos fechamentos foram gravados.
func (s *Service) SyncMonth(month string) (int, error) {
	start, end, err := utils.MonthRange(month)
	if err != nil {
		return 0, NewFinanceError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "Período deve estar no formato MM-YYYY")
	}

	revenues, err := s.revenueRepository.ListByRange(start, end)
	if err != nil {
		return 0, NewFinanceError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar receitas no banco de dados")
	}

	expenses, err := s.expenseRepository.ListByRange(start, end)
	if err != nil {
		return 0, NewFinanceError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar despesas no banco de dados")
	}

	snapshots := BuildMonthlySnapshots(month, revenues, expenses, time.Now())

	saved := 0
	for _, snapshot := range snapshots {
		if err := s.snapshotRepository.Upsert(snapshot); err != nil {
			logrus.WithFields(logrus.Fields{
				"brand_id": snapshot.BrandID,
				"month":    month,
				"error":    err,
			}).Error("finance: snapshot upsert failed")
			continue
		}
		saved++
	}

	return saved, nil
}

// BuildMonthlySnapshots agrega receitas e despesas por marca em fechamentos
// mensais. Despesas sem marca entram em um fechamento próprio de overhead.
func BuildMonthlySnapshots(month string, revenues []*domain.Revenue, expenses []*domain.Expense, generatedAt time.Time) []*domain.FinanceSnapshot {
	byBrand := make(map[string]*domain.FinanceSnapshot)
	order := make([]string, 0)

	snapshotFor := func(brandID, brandName string) *domain.FinanceSnapshot {
		snapshot, ok := byBrand[brandID]
		if !ok {
			snapshot = &domain.FinanceSnapshot{
				BrandID:     brandID,
				BrandName:   brandName,
				Month:       month,
				GeneratedAt: generatedAt,
			}
			byBrand[brandID] = snapshot
			order = append(order, brandID)
		}
		return snapshot
	}

	for _, revenue := range revenues {
		snapshot := snapshotFor(revenue.BrandID, revenue.BrandName)
		snapshot.TotalRevenue += revenue.TotalRevenue
	}

	for _, expense := range expenses {
		snapshot := snapshotFor(expense.BrandID, expense.BrandName)
		snapshot.TotalExpenses += expense.Amount
	}

	snapshots := make([]*domain.FinanceSnapshot, 0, len(order))
	for _, brandID := range order {
		snapshot := byBrand[brandID]
		snapshot.TotalRevenue = utils.RoundWithTwoDecimalPlace(snapshot.TotalRevenue)
		snapshot.TotalExpenses = utils.RoundWithTwoDecimalPlace(snapshot.TotalExpenses)
		snapshot.Profit = utils.RoundWithTwoDecimalPlace(domain.Profit(snapshot.TotalRevenue, snapshot.TotalExpenses))
		snapshot.ProfitMargin = utils.RoundWithTwoDecimalPlace(domain.ProfitMargin(snapshot.Profit, snapshot.TotalRevenue))
		snapshots = append(snapshots, snapshot)
	}

	return snapshots
}
