package finance

import (
	"time"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/filtering"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/table"
	"github.com/ecomistry/backoffice-api/pkg/utils"
	"github.com/ecomistry/backoffice-api/pkg/validate"
	"github.com/sirupsen/logrus"
)

func (s *Service) ListExpenses(filters domain.ExpenseFilters) ([]*domain.Expense, error) {
	expenses, err := s.expenseRepository.List()
	if err != nil {
		return nil, NewFinanceError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao listar despesas no banco de dados")
	}

	expenses = filtering.Apply(expenses,
		filtering.Search(filters.Search, func(e *domain.Expense) []string {
			return []string{e.BrandName, e.Category, e.Description}
		}),
		filtering.Equals(filters.Category, func(e *domain.Expense) string { return e.Category }),
		filtering.Equals(filters.BrandID, func(e *domain.Expense) string { return e.BrandID }),
		filtering.DateRange(filters.StartDate, filters.EndDate, func(e *domain.Expense) time.Time {
			return e.Date
		}),
	)

	switch filters.SortBy {
	case "date":
		filtering.SortDate(expenses, func(e *domain.Expense) time.Time { return e.Date }, filters.SortDir)
	case "category":
		filtering.SortText(expenses, func(e *domain.Expense) string { return e.Category }, filters.SortDir)
	case "amount":
		filtering.SortNumeric(expenses, func(e *domain.Expense) float64 { return e.Amount }, filters.SortDir)
	}

	return expenses, nil
}

func (s *Service) GetExpense(id string) (*domain.Expense, error) {
	if id == "" {
		return nil, NewFinanceError(ErrRecordIDRequired, apiErrors.ErrMissingRequiredData, "ID da despesa é obrigatório")
	}

	expense, err := s.expenseRepository.GetByID(id)
	if err != nil {
		return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar despesa no banco de dados")
	}
	if expense == nil {
		return nil, NewFinanceError(ErrExpenseNotFound, apiErrors.ErrRecordNotFound, "Despesa não encontrada")
	}

	return expense, nil
}

func (s *Service) CreateExpense(row domain.Row) (*domain.Expense, error) {
	expense := domain.NormalizeExpense(row)

	if err := validate.Struct(expense); err != nil {
		return nil, NewFinanceError(ErrInvalidRecord, apiErrors.ErrValidationFailed, "Dados da despesa inválidos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewFinanceError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para despesa")
	}
	expense.ID = id

	expense, err = s.expenseRepository.Create(expense)
	if err != nil {
		logrus.Error("Erro ao criar despesa:", err)
		return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar despesa")
	}

	return expense, nil
}

func (s *Service) UpdateExpense(request *domain.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.GetExpense(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Category != nil {
		expense.Category = *request.Category
	}
	if request.Amount != nil {
		expense.Amount = *request.Amount
	}
	if request.Date != nil {
		expense.Date = *request.Date
	}
	if request.BrandID != nil {
		expense.BrandID = *request.BrandID
	}
	if request.Description != nil {
		expense.Description = *request.Description
	}

	if err := validate.Struct(expense); err != nil {
		return nil, NewFinanceError(ErrInvalidRecord, apiErrors.ErrValidationFailed, "Dados da despesa inválidos")
	}

	if err := s.expenseRepository.Update(expense); err != nil {
		return nil, NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar despesa")
	}

	return expense, nil
}

func (s *Service) DeleteExpense(id string) error {
	if _, err := s.GetExpense(id); err != nil {
		return err
	}

	if err := s.expenseRepository.Delete(id); err != nil {
		return NewFinanceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover despesa")
	}

	return nil
}

// ExpenseTableColumns define a apresentação tabular das despesas
func ExpenseTableColumns() []table.Column[*domain.Expense] {
	return []table.Column[*domain.Expense]{
		{Key: "date", Header: "Data", Cell: func(e *domain.Expense) string { return utils.FormatDate(e.Date) }},
		{Key: "category", Header: "Categoria", Cell: func(e *domain.Expense) string { return e.Category }},
		{Key: "brand", Header: "Marca", Cell: func(e *domain.Expense) string { return e.BrandName }},
		{Key: "amount", Header: "Valor", Cell: func(e *domain.Expense) string { return utils.FormatMoney(e.Amount) }},
		{Key: "description", Header: "Descrição", Cell: func(e *domain.Expense) string { return e.Description }},
	}
}

func (s *Service) ExpenseView(expenses []*domain.Expense, isLoading bool) table.View {
	return table.Render(ExpenseTableColumns(), expenses, isLoading, "Nenhuma despesa encontrada")
}
