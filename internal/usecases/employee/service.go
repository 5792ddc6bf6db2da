package employee

import (
	"strings"
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/repository"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/authenticating"
	"github.com/ecomistry/backoffice-api/internal/usecases/filtering"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/table"
	"github.com/ecomistry/backoffice-api/pkg/utils"
	"github.com/ecomistry/backoffice-api/pkg/validate"
	"github.com/sirupsen/logrus"
)

type EmployeeService interface {
	List(filters domain.EmployeeFilters) ([]*domain.Employee, error)
	Get(id int) (*domain.Employee, error)
	Create(row domain.Row) (*domain.Employee, error)
	Update(request *domain.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(id int) error
	View(employees []*domain.Employee, isLoading bool) table.View
}

type Service struct {
	employeeRepository repository.EmployeeRepository
	authenticator      authenticating.Authenticator
}

func NewService(employeeRepository repository.EmployeeRepository, authenticator authenticating.Authenticator) EmployeeService {
	return &Service{
		employeeRepository: employeeRepository,
		authenticator:      authenticator,
	}
}

func (s *Service) List(filters domain.EmployeeFilters) ([]*domain.Employee, error) {
	employees, err := s.employeeRepository.List()
	if err != nil {
		return nil, NewEmployeeError(ErrFetchEmployees, apiErrors.ErrDatabaseOperation, "Falha ao listar funcionários no banco de dados")
	}

	employees = filtering.Apply(employees,
		filtering.Search(filters.Search, func(e *domain.Employee) []string {
			return []string{e.Name, e.Lastname, e.Email, e.Department, e.JobTitle}
		}),
		filtering.Equals(filters.Department, func(e *domain.Employee) string { return e.Department }),
		filtering.Equals(filters.EmploymentType, func(e *domain.Employee) string { return e.EmploymentType }),
		filtering.Equals(filters.Status, func(e *domain.Employee) string { return e.Status }),
	)

	sortEmployees(employees, filters.SortBy, filters.SortDir)

	for _, employee := range employees {
		employee.PasswordHash = ""
	}

	return employees, nil
}

func sortEmployees(employees []*domain.Employee, sortBy, sortDir string) {
	switch sortBy {
	case "name":
		filtering.SortText(employees, func(e *domain.Employee) string { return e.FullName() }, sortDir)
	case "department":
		filtering.SortText(employees, func(e *domain.Employee) string { return e.Department }, sortDir)
	case "employment_type":
		filtering.SortText(employees, func(e *domain.Employee) string { return e.EmploymentType }, sortDir)
	case "created_at":
		filtering.SortDate(employees, func(e *domain.Employee) time.Time { return e.CreatedAt }, sortDir)
	}
}

func (s *Service) Get(id int) (*domain.Employee, error) {
	if id == 0 {
		return nil, NewEmployeeError(ErrEmployeeIDRequired, apiErrors.ErrMissingRequiredData, "ID do funcionário é obrigatório")
	}

	employee, err := s.employeeRepository.GetByID(id)
	if err != nil {
		return nil, NewEmployeeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar funcionário no banco de dados")
	}
	if employee == nil {
		return nil, NewEmployeeError(ErrEmployeeNotFound, apiErrors.ErrRecordNotFound, "Funcionário não encontrado")
	}

	employee.PasswordHash = ""
	return employee, nil
}

// Create normaliza a entrada bruta, valida os campos obrigatórios e persiste
// o funcionário. A senha inicial recebida em texto claro é armazenada com
// hash bcrypt; sem senha, a conta nasce inativa.
func (s *Service) Create(row domain.Row) (*domain.Employee, error) {
	employee := domain.NormalizeEmployee(row)
	employee.Email = handleEmail(employee.Email)

	if err := validate.Struct(employee); err != nil {
		return nil, NewEmployeeError(ErrInvalidEmployee, apiErrors.ErrValidationFailed, "Dados do funcionário inválidos")
	}

	existing, err := s.employeeRepository.GetByEmail(employee.Email)
	if err != nil {
		return nil, NewEmployeeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar funcionário no banco de dados")
	}
	if existing != nil {
		return nil, NewEmployeeError(ErrEmailAlreadyUsed, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	if password := row.String("password"); password != "" {
		hash, err := s.authenticator.HashPassword(password)
		if err != nil {
			return nil, NewEmployeeError(err, apiErrors.ErrInternalServer, "Falha ao gerar hash da senha")
		}
		employee.PasswordHash = hash
		employee.Active = true
	}

	if employee.RoleID == 0 {
		employee.RoleID = 3
	}

	employee, err = s.employeeRepository.Create(employee)
	if err != nil {
		logrus.Error("Erro ao criar funcionário:", err)
		return nil, NewEmployeeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar funcionário")
	}

	employee.PasswordHash = ""
	return employee, nil
}

func (s *Service) Update(request *domain.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.Get(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		employee.Name = *request.Name
	}
	if request.Lastname != nil {
		employee.Lastname = *request.Lastname
	}
	if request.Email != nil {
		employee.Email = handleEmail(*request.Email)
	}
	if request.Department != nil {
		employee.Department = *request.Department
	}
	if request.JobTitle != nil {
		employee.JobTitle = *request.JobTitle
	}
	if request.EmploymentType != nil {
		employee.EmploymentType = *request.EmploymentType
	}
	if request.Status != nil {
		employee.Status = *request.Status
	}
	if request.Commission != nil {
		employee.Commission = *request.Commission
	}
	if request.Active != nil {
		employee.Active = *request.Active
	}
	if request.RoleID != nil {
		employee.RoleID = *request.RoleID
	}

	if err := validate.Struct(employee); err != nil {
		return nil, NewEmployeeError(ErrInvalidEmployee, apiErrors.ErrValidationFailed, "Dados do funcionário inválidos")
	}

	if err := s.employeeRepository.Update(employee); err != nil {
		return nil, NewEmployeeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar funcionário")
	}

	return employee, nil
}

// Delete remove o funcionário de forma lógica, preservando o histórico de
// registros vinculados a ele
func (s *Service) Delete(id int) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.employeeRepository.SoftDelete(id); err != nil {
		return NewEmployeeError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover funcionário")
	}

	return nil
}

// TableColumns define a apresentação tabular dos funcionários, compartilhada
// entre a listagem e a exportação
func TableColumns() []table.Column[*domain.Employee] {
	return []table.Column[*domain.Employee]{
		{Key: "name", Header: "Nome", Cell: func(e *domain.Employee) string { return e.FullName() }},
		{Key: "email", Header: "Email", Cell: func(e *domain.Employee) string { return e.Email }},
		{Key: "department", Header: "Departamento", Cell: func(e *domain.Employee) string { return e.Department }},
		{Key: "job_title", Header: "Cargo", Cell: func(e *domain.Employee) string { return e.JobTitle }},
		{Key: "employment_type", Header: "Contratação", Cell: func(e *domain.Employee) string { return e.EmploymentType }},
		{Key: "status", Header: "Status", Cell: func(e *domain.Employee) string { return e.Status }},
		{Key: "commission", Header: "Comissão", Cell: func(e *domain.Employee) string {
			if e.Commission.Type == domain.CommissionTypePercentage {
				return utils.FormatNumber(e.Commission.Value) + "%"
			}
			return utils.FormatMoney(e.Commission.Value)
		}},
	}
}

func (s *Service) View(employees []*domain.Employee, isLoading bool) table.View {
	return table.Render(TableColumns(), employees, isLoading, "Nenhum funcionário encontrado")
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
