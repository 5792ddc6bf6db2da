package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/employee"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func ListEmployees(service employee.EmployeeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employees, err := service.List(employeeFilters(r))
		if err != nil {
			logrus.Error("Error listing employees:", err)
			writeEmployeeError(w, err, "Erro ao listar funcionários")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if wantsTableView(r) {
			if err := json.NewEncoder(w).Encode(service.View(employees, false)); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(employees); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetEmployee(service employee.EmployeeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := employeeID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do funcionário inválido", nil)
			return
		}

		result, err := service.Get(id)
		if err != nil {
			logrus.Error("Error fetching employee:", err)
			writeEmployeeError(w, err, "Erro ao buscar funcionário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateEmployee(service employee.EmployeeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEmployee")

		var row domain.Row
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.Create(row)
		if err != nil {
			logrus.Error("Error creating employee:", err)
			writeEmployeeError(w, err, "Erro ao criar funcionário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.WithError(err).Error("employees: erro ao codificar resposta")
		}
	})
}

func UpdateEmployee(service employee.EmployeeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateEmployee")

		id, err := employeeID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do funcionário inválido", nil)
			return
		}

		var updateRequest domain.UpdateEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updateRequest.ID = id

		updated, err := service.Update(&updateRequest)
		if err != nil {
			logrus.Error("Error updating employee:", err)
			writeEmployeeError(w, err, "Erro ao atualizar funcionário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DeleteEmployee desativa o funcionário sem apagar o histórico (soft delete)
func DeleteEmployee(service employee.EmployeeService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteEmployee")

		id, err := employeeID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do funcionário inválido", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error("Error deleting employee:", err)
			writeEmployeeError(w, err, "Erro ao remover funcionário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func employeeFilters(r *http.Request) domain.EmployeeFilters {
	q := r.URL.Query()
	return domain.EmployeeFilters{
		Search:         q.Get("search"),
		Department:     q.Get("department"),
		EmploymentType: q.Get("employment_type"),
		Status:         q.Get("status"),
		SortBy:         q.Get("sort_by"),
		SortDir:        q.Get("sort_dir"),
	}
}

func employeeID(r *http.Request) (int, error) {
	raw := pathParam(r, "id")
	if raw == "" {
		return 0, employee.ErrEmployeeIDRequired
	}
	return strconv.Atoi(raw)
}

// writeEmployeeError mapeia erros do caso de uso de funcionários para a
// resposta da API
func writeEmployeeError(w http.ResponseWriter, err error, fallback string) {
	var employeeErr *employee.EmployeeError
	if errors.As(err, &employeeErr) {
		apiErrors.WriteError(w, employeeErr.Code, employeeErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Funcionário não encontrado", nil)

	case errors.Is(err, employee.ErrEmailAlreadyUsed):
		apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Email já cadastrado", nil)

	case errors.Is(err, employee.ErrEmployeeIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do funcionário é obrigatório", nil)

	case errors.Is(err, employee.ErrFetchEmployees), errors.Is(err, employee.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar funcionários no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
