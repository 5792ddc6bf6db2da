package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/finance"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func ListRevenues(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := revenueFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		revenues, err := service.ListRevenues(filters)
		if err != nil {
			logrus.Error("Error listing revenues:", err)
			writeFinanceError(w, err, "Erro ao listar receitas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if wantsTableView(r) {
			if err := json.NewEncoder(w).Encode(service.RevenueView(revenues, false)); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(revenues); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetRevenue(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da receita é obrigatório", nil)
			return
		}

		result, err := service.GetRevenue(id)
		if err != nil {
			logrus.Error("Error fetching revenue:", err)
			writeFinanceError(w, err, "Erro ao buscar receita")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateRevenue(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateRevenue")

		var row domain.Row
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateRevenue(row)
		if err != nil {
			logrus.Error("Error creating revenue:", err)
			writeFinanceError(w, err, "Erro ao criar receita")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.WithError(err).Error("revenues: erro ao codificar resposta")
		}
	})
}

func UpdateRevenue(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateRevenue")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da receita é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updateRequest.ID = id

		updated, err := service.UpdateRevenue(&updateRequest)
		if err != nil {
			logrus.Error("Error updating revenue:", err)
			writeFinanceError(w, err, "Erro ao atualizar receita")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteRevenue(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteRevenue")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da receita é obrigatório", nil)
			return
		}

		if err := service.DeleteRevenue(id); err != nil {
			logrus.Error("Error deleting revenue:", err)
			writeFinanceError(w, err, "Erro ao remover receita")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListExpenses(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := expenseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		expenses, err := service.ListExpenses(filters)
		if err != nil {
			logrus.Error("Error listing expenses:", err)
			writeFinanceError(w, err, "Erro ao listar despesas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if wantsTableView(r) {
			if err := json.NewEncoder(w).Encode(service.ExpenseView(expenses, false)); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(expenses); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetExpense(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da despesa é obrigatório", nil)
			return
		}

		result, err := service.GetExpense(id)
		if err != nil {
			logrus.Error("Error fetching expense:", err)
			writeFinanceError(w, err, "Erro ao buscar despesa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateExpense(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateExpense")

		var row domain.Row
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateExpense(row)
		if err != nil {
			logrus.Error("Error creating expense:", err)
			writeFinanceError(w, err, "Erro ao criar despesa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.WithError(err).Error("expenses: erro ao codificar resposta")
		}
	})
}

func UpdateExpense(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateExpense")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da despesa é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updateRequest.ID = id

		updated, err := service.UpdateExpense(&updateRequest)
		if err != nil {
			logrus.Error("Error updating expense:", err)
			writeFinanceError(w, err, "Erro ao atualizar despesa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteExpense(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteExpense")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da despesa é obrigatório", nil)
			return
		}

		if err := service.DeleteExpense(id); err != nil {
			logrus.Error("Error deleting expense:", err)
			writeFinanceError(w, err, "Erro ao remover despesa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// FinanceSummary consolida receitas e despesas do período pedido, com filtro
// opcional por marca
func FinanceSummary(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, err := queryDate(r, "start_date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := queryDate(r, "end_date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		brandID := r.URL.Query().Get("brand_id")

		summary, err := service.Summary(startDate, endDate, brandID)
		if err != nil {
			logger.WithError(err).Error("finance: erro ao consolidar resumo financeiro")
			writeFinanceError(w, err, "Erro ao consolidar resumo financeiro")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("finance: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// FinanceReport retorna o fechamento financeiro mensal por marca para um
// período específico
func FinanceReport(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		year := r.URL.Query().Get("year")

		if month == "" || year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
			return
		}

		// Validar mês (entre 01 e 12)
		if len(month) != 2 || month < "01" || month > "12" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use formato de dois dígitos (01-12)", nil)
			return
		}

		// Validar ano (4 dígitos)
		if len(year) != 4 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		period := fmt.Sprintf("%s-%s", month, year)

		logger.WithFields(log.Fields{
			"month":  month,
			"year":   year,
			"period": period,
		}).Info("finance: gerando fechamento financeiro mensal")

		snapshots, err := service.Report(period)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"period": period,
			}).Error("finance: erro ao gerar fechamento financeiro")
			writeFinanceError(w, err, "Erro ao gerar fechamento financeiro")
			return
		}

		logger.WithFields(log.Fields{
			"period":          period,
			"brands_returned": len(snapshots),
		}).Info("finance: fechamento gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshots); err != nil {
			logger.WithError(err).Error("finance: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// FinancePeriods retorna os períodos (meses e anos) com fechamento disponível
func FinancePeriods(service finance.FinanceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("finance: buscando períodos disponíveis")

		periods, err := service.Periods()
		if err != nil {
			logger.WithError(err).Error("finance: erro ao buscar períodos disponíveis")
			writeFinanceError(w, err, "Erro ao buscar períodos disponíveis")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("finance: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func revenueFilters(r *http.Request) (domain.RevenueFilters, error) {
	q := r.URL.Query()

	startDate, err := queryDate(r, "start_date")
	if err != nil {
		return domain.RevenueFilters{}, err
	}

	endDate, err := queryDate(r, "end_date")
	if err != nil {
		return domain.RevenueFilters{}, err
	}

	return domain.RevenueFilters{
		Search:    q.Get("search"),
		BrandID:   q.Get("brand_id"),
		StartDate: startDate,
		EndDate:   endDate,
		SortBy:    q.Get("sort_by"),
		SortDir:   q.Get("sort_dir"),
	}, nil
}

func expenseFilters(r *http.Request) (domain.ExpenseFilters, error) {
	q := r.URL.Query()

	startDate, err := queryDate(r, "start_date")
	if err != nil {
		return domain.ExpenseFilters{}, err
	}

	endDate, err := queryDate(r, "end_date")
	if err != nil {
		return domain.ExpenseFilters{}, err
	}

	return domain.ExpenseFilters{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		BrandID:   q.Get("brand_id"),
		StartDate: startDate,
		EndDate:   endDate,
		SortBy:    q.Get("sort_by"),
		SortDir:   q.Get("sort_dir"),
	}, nil
}

// writeFinanceError mapeia erros do caso de uso financeiro para a resposta da API
func writeFinanceError(w http.ResponseWriter, err error, fallback string) {
	var financeErr *finance.FinanceError
	if errors.As(err, &financeErr) {
		apiErrors.WriteError(w, financeErr.Code, financeErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, finance.ErrRevenueNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Receita não encontrada", nil)

	case errors.Is(err, finance.ErrExpenseNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Despesa não encontrada", nil)

	case errors.Is(err, finance.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido. Use o formato MM-YYYY", nil)

	case errors.Is(err, finance.ErrRecordIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro é obrigatório", nil)

	case errors.Is(err, finance.ErrFetchRecords), errors.Is(err, finance.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar registros financeiros no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
