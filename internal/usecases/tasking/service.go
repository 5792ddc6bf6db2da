package tasking

import (
	"fmt"
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

type TaskService interface {
	List(filters domain.ContentTaskFilters) ([]*domain.ContentTask, error)
	Get(id string) (*domain.ContentTask, error)
	Create(row domain.Row) (*domain.ContentTask, error)
	Update(request *domain.UpdateContentTaskRequest) (*domain.ContentTask, error)
	ChangeStatus(id, status string) (*domain.ContentTask, error)
	Delete(id string) error
	View(tasks []*domain.ContentTask, isLoading bool) table.View
}

type Service struct {
	taskRepository repository.ContentTaskRepository
}

func NewService(taskRepository repository.ContentTaskRepository) TaskService {
	return &Service{
		taskRepository: taskRepository,
	}
}

func (s *Service) List(filters domain.ContentTaskFilters) ([]*domain.ContentTask, error) {
	tasks, err := s.taskRepository.List()
	if err != nil {
		return nil, NewTaskError(ErrFetchTasks, apiErrors.ErrDatabaseOperation, "Falha ao listar tarefas no banco de dados")
	}

	tasks = filtering.Apply(tasks,
		filtering.Search(filters.Search, func(t *domain.ContentTask) []string {
			return []string{t.EmployeeName, t.BrandName, t.TaskType, t.Notes}
		}),
		filtering.Equals(filters.TaskType, func(t *domain.ContentTask) string { return t.TaskType }),
		filtering.Equals(filters.Status, func(t *domain.ContentTask) string { return t.Status }),
		filtering.Equals(filters.BrandID, func(t *domain.ContentTask) string { return t.BrandID }),
		filtering.Equals(filters.EmployeeID, func(t *domain.ContentTask) string {
			return strconv.Itoa(t.EmployeeID)
		}),
		filtering.DateRange(filters.StartDate, filters.EndDate, func(t *domain.ContentTask) time.Time {
			return t.Deadline
		}),
	)

	sortTasks(tasks, filters.SortBy, filters.SortDir)

	return tasks, nil
}

func sortTasks(tasks []*domain.ContentTask, sortBy, sortDir string) {
	switch sortBy {
	case "deadline":
		filtering.SortDate(tasks, func(t *domain.ContentTask) time.Time { return t.Deadline }, sortDir)
	case "brand":
		filtering.SortText(tasks, func(t *domain.ContentTask) string { return t.BrandName }, sortDir)
	case "employee":
		filtering.SortText(tasks, func(t *domain.ContentTask) string { return t.EmployeeName }, sortDir)
	case "status":
		filtering.SortText(tasks, func(t *domain.ContentTask) string { return t.Status }, sortDir)
	}
}

func (s *Service) Get(id string) (*domain.ContentTask, error) {
	if id == "" {
		return nil, NewTaskError(ErrTaskIDRequired, apiErrors.ErrMissingRequiredData, "ID da tarefa é obrigatório")
	}

	task, err := s.taskRepository.GetByID(id)
	if err != nil {
		return nil, NewTaskError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar tarefa no banco de dados")
	}
	if task == nil {
		return nil, NewTaskError(ErrTaskNotFound, apiErrors.ErrRecordNotFound, "Tarefa não encontrada")
	}

	return task, nil
}

// Create normaliza a entrada bruta e persiste a tarefa. Toda tarefa nasce
// em andamento, independente do que venha no corpo.
func (s *Service) Create(row domain.Row) (*domain.ContentTask, error) {
	task := domain.NormalizeContentTask(row)
	task.Status = domain.TaskStatusInProgress

	if err := validate.Struct(task); err != nil {
		return nil, NewTaskError(ErrInvalidTask, apiErrors.ErrValidationFailed, "Dados da tarefa inválidos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewTaskError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para tarefa")
	}
	task.ID = id

	task, err = s.taskRepository.Create(task)
	if err != nil {
		logrus.Error("Erro ao criar tarefa:", err)
		return nil, NewTaskError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar tarefa")
	}

	return task, nil
}

func (s *Service) Update(request *domain.UpdateContentTaskRequest) (*domain.ContentTask, error) {
	task, err := s.Get(request.ID)
	if err != nil {
		return nil, err
	}

	if request.EmployeeID != nil {
		task.EmployeeID = *request.EmployeeID
	}
	if request.BrandID != nil {
		task.BrandID = *request.BrandID
	}
	if request.TaskType != nil {
		task.TaskType = *request.TaskType
	}
	if request.Deadline != nil {
		task.Deadline = *request.Deadline
	}
	if request.DeliveryLink != nil {
		task.DeliveryLink = *request.DeliveryLink
	}
	if request.Notes != nil {
		task.Notes = *request.Notes
	}

	// Mudança de status pela atualização geral passa pela mesma regra de
	// transição do endpoint dedicado
	if request.Status != nil && *request.Status != task.Status {
		if !domain.ValidTaskTransition(task.Status, *request.Status) {
			return nil, NewTaskError(ErrInvalidTransition, apiErrors.ErrInvalidTransition,
				fmt.Sprintf("Transição de %s para %s não é permitida", task.Status, *request.Status))
		}
		task.Status = *request.Status
	}

	if err := validate.Struct(task); err != nil {
		return nil, NewTaskError(ErrInvalidTask, apiErrors.ErrValidationFailed, "Dados da tarefa inválidos")
	}

	if err := s.taskRepository.Update(task); err != nil {
		return nil, NewTaskError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar tarefa")
	}

	return task, nil
}

// ChangeStatus aplica uma transição explícita de status. Transições fora do
// grafo permitido são rejeitadas com conflito.
func (s *Service) ChangeStatus(id, status string) (*domain.ContentTask, error) {
	task, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if status == task.Status {
		return task, nil
	}

	if !domain.ValidTaskTransition(task.Status, status) {
		return nil, NewTaskError(ErrInvalidTransition, apiErrors.ErrInvalidTransition,
			fmt.Sprintf("Transição de %s para %s não é permitida", task.Status, status))
	}

	if err := s.taskRepository.UpdateStatus(id, status); err != nil {
		return nil, NewTaskError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar status da tarefa")
	}

	task.Status = status
	return task, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.taskRepository.Delete(id); err != nil {
		return NewTaskError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover tarefa")
	}

	return nil
}

// TableColumns define a apresentação tabular das tarefas de conteúdo,
// compartilhada entre a listagem e a exportação
func TableColumns() []table.Column[*domain.ContentTask] {
	return []table.Column[*domain.ContentTask]{
		{Key: "employee", Header: "Responsável", Cell: func(t *domain.ContentTask) string { return t.EmployeeName }},
		{Key: "brand", Header: "Marca", Cell: func(t *domain.ContentTask) string { return t.BrandName }},
		{Key: "task_type", Header: "Tipo", Cell: func(t *domain.ContentTask) string { return t.TaskType }},
		{Key: "deadline", Header: "Prazo", Cell: func(t *domain.ContentTask) string { return utils.FormatDate(t.Deadline) }},
		{Key: "status", Header: "Status", Cell: func(t *domain.ContentTask) string { return t.Status }},
		{Key: "delivery_link", Header: "Entrega", Cell: func(t *domain.ContentTask) string { return t.DeliveryLink }},
	}
}

func (s *Service) View(tasks []*domain.ContentTask, isLoading bool) table.View {
	return table.Render(TableColumns(), tasks, isLoading, "Nenhuma tarefa encontrada")
}
