package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/commission"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func ListCommissions(service commission.CommissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := commissionFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		commissions, err := service.List(filters)
		if err != nil {
			logrus.Error("Error listing commissions:", err)
			writeCommissionError(w, err, "Erro ao listar comissões")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if wantsTableView(r) {
			if err := json.NewEncoder(w).Encode(service.View(commissions, false)); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(commissions); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetCommission(service commission.CommissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da comissão é obrigatório", nil)
			return
		}

		result, err := service.Get(id)
		if err != nil {
			logrus.Error("Error fetching commission:", err)
			writeCommissionError(w, err, "Erro ao buscar comissão")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateCommission(service commission.CommissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCommission")

		var row domain.Row
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.Create(row)
		if err != nil {
			logrus.Error("Error creating commission:", err)
			writeCommissionError(w, err, "Erro ao criar comissão")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.WithError(err).Error("commissions: erro ao codificar resposta")
		}
	})
}

func UpdateCommission(service commission.CommissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCommission")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da comissão é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateCommissionRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updateRequest.ID = id

		updated, err := service.Update(&updateRequest)
		if err != nil {
			logrus.Error("Error updating commission:", err)
			writeCommissionError(w, err, "Erro ao atualizar comissão")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteCommission(service commission.CommissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCommission")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da comissão é obrigatório", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error("Error deleting commission:", err)
			writeCommissionError(w, err, "Erro ao remover comissão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func commissionFilters(r *http.Request) (domain.CommissionFilters, error) {
	q := r.URL.Query()

	startDate, err := queryDate(r, "start_date")
	if err != nil {
		return domain.CommissionFilters{}, err
	}

	endDate, err := queryDate(r, "end_date")
	if err != nil {
		return domain.CommissionFilters{}, err
	}

	return domain.CommissionFilters{
		Search:         q.Get("search"),
		CommissionType: q.Get("commission_type"),
		ValueType:      q.Get("value_type"),
		EmployeeID:     q.Get("employee_id"),
		StartDate:      startDate,
		EndDate:        endDate,
		SortBy:         q.Get("sort_by"),
		SortDir:        q.Get("sort_dir"),
	}, nil
}

// writeCommissionError mapeia erros do caso de uso de comissões para a
// resposta da API
func writeCommissionError(w http.ResponseWriter, err error, fallback string) {
	var commissionErr *commission.CommissionError
	if errors.As(err, &commissionErr) {
		apiErrors.WriteError(w, commissionErr.Code, commissionErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, commission.ErrCommissionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Comissão não encontrada", nil)

	case errors.Is(err, commission.ErrCommissionIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da comissão é obrigatório", nil)

	case errors.Is(err, commission.ErrFetchCommissions), errors.Is(err, commission.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar comissões no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
