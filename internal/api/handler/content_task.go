package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/tasking"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type ChangeTaskStatusRequest struct {
	Status string `json:"status"`
}

func ListContentTasks(service tasking.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := contentTaskFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		tasks, err := service.List(filters)
		if err != nil {
			logrus.Error("Error listing content tasks:", err)
			writeTaskError(w, err, "Erro ao listar tarefas de conteúdo")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if wantsTableView(r) {
			if err := json.NewEncoder(w).Encode(service.View(tasks, false)); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetContentTask(service tasking.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa é obrigatório", nil)
			return
		}

		result, err := service.Get(id)
		if err != nil {
			logrus.Error("Error fetching content task:", err)
			writeTaskError(w, err, "Erro ao buscar tarefa de conteúdo")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateContentTask(service tasking.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateContentTask")

		var row domain.Row
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.Create(row)
		if err != nil {
			logrus.Error("Error creating content task:", err)
			writeTaskError(w, err, "Erro ao criar tarefa de conteúdo")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.WithError(err).Error("content-tasks: erro ao codificar resposta")
		}
	})
}

func UpdateContentTask(service tasking.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateContentTask")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateContentTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		updateRequest.ID = id

		updated, err := service.Update(&updateRequest)
		if err != nil {
			logrus.Error("Error updating content task:", err)
			writeTaskError(w, err, "Erro ao atualizar tarefa de conteúdo")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ChangeTaskStatus move a tarefa no fluxo de produção. Transições fora do
// fluxo são recusadas com conflito.
func ChangeTaskStatus(service tasking.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangeTaskStatus")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa é obrigatório", nil)
			return
		}

		var req ChangeTaskStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.Status == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Novo status é obrigatório", nil)
			return
		}

		updated, err := service.ChangeStatus(id, req.Status)
		if err != nil {
			logrus.Error("Error changing content task status:", err)
			writeTaskError(w, err, "Erro ao alterar status da tarefa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteContentTask(service tasking.TaskService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteContentTask")

		id := pathParam(r, "id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa é obrigatório", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			logrus.Error("Error deleting content task:", err)
			writeTaskError(w, err, "Erro ao remover tarefa de conteúdo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func contentTaskFilters(r *http.Request) (domain.ContentTaskFilters, error) {
	q := r.URL.Query()

	startDate, err := queryDate(r, "start_date")
	if err != nil {
		return domain.ContentTaskFilters{}, err
	}

	endDate, err := queryDate(r, "end_date")
	if err != nil {
		return domain.ContentTaskFilters{}, err
	}

	return domain.ContentTaskFilters{
		Search:     q.Get("search"),
		TaskType:   q.Get("task_type"),
		Status:     q.Get("status"),
		BrandID:    q.Get("brand_id"),
		EmployeeID: q.Get("employee_id"),
		StartDate:  startDate,
		EndDate:    endDate,
		SortBy:     q.Get("sort_by"),
		SortDir:    q.Get("sort_dir"),
	}, nil
}

// writeTaskError mapeia erros do caso de uso de tarefas para a resposta da API
func writeTaskError(w http.ResponseWriter, err error, fallback string) {
	var taskErr *tasking.TaskError
	if errors.As(err, &taskErr) {
		apiErrors.WriteError(w, taskErr.Code, taskErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, tasking.ErrTaskNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Tarefa de conteúdo não encontrada", nil)

	case errors.Is(err, tasking.ErrInvalidTransition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, err.Error(), nil)

	case errors.Is(err, tasking.ErrTaskIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da tarefa é obrigatório", nil)

	case errors.Is(err, tasking.ErrFetchTasks), errors.Is(err, tasking.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar tarefas no banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
