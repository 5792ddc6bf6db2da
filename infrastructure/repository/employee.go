package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ecomistry/backoffice-api/infrastructure/database/postgres"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/lib/pq"
)

const (
	employeesTable = "employees e"

	employeeColumns = "e.id, e.name, e.lastname, e.email, e.department, e.job_title, " +
		"e.employment_type, e.status, e.commission, e.active, e.role_id, " +
		"e.deleted, e.deleted_at, e.created_at, e.updated_at"
)

type EmployeeRepository interface {
	List() ([]*domain.Employee, error)
	GetByID(id int) (*domain.Employee, error)
	GetByEmail(email string) (*domain.Employee, error)
	Create(employee *domain.Employee) (*domain.Employee, error)
	Update(employee *domain.Employee) error
	UpdatePassword(id int, passwordHash string) error
	SoftDelete(id int) error
}

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

func (r *employeeRepository) List() ([]*domain.Employee, error) {
	query, args, err := squirrel.
		Select(employeeColumns).
		From(employeesTable).
		Where(squirrel.Eq{"e.deleted": false}).
		OrderBy("e.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear funcionário: %w", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) GetByID(id int) (*domain.Employee, error) {
	query, args, err := squirrel.
		Select(employeeColumns).
		From(employeesTable).
		Where(squirrel.Eq{"e.id": id, "e.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	employee, err := scanEmployee(r.conn.QueryRow(query, args...).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear funcionário: %w", err)
	}

	return employee, nil
}

func (r *employeeRepository) GetByEmail(email string) (*domain.Employee, error) {
	query, args, err := squirrel.
		Select(employeeColumns + ", e.password").
		From(employeesTable).
		Where(squirrel.Eq{"e.email": email, "e.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	employee := &domain.Employee{}
	var commissionJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Lastname,
		&employee.Email,
		&employee.Department,
		&employee.JobTitle,
		&employee.EmploymentType,
		&employee.Status,
		&commissionJSON,
		&employee.Active,
		&employee.RoleID,
		&employee.Deleted,
		&employee.DeletedAt,
		&employee.CreatedAt,
		&employee.UpdatedAt,
		&employee.PasswordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear funcionário: %w", err)
	}

	employee.Commission = scanCommissionConfig(commissionJSON)

	return employee, nil
}

func (r *employeeRepository) Create(employee *domain.Employee) (*domain.Employee, error) {
	commissionJSON, err := json.Marshal(employee.Commission)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar comissão para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("employees").
		Columns("name", "lastname", "email", "department", "job_title",
			"employment_type", "status", "commission", "password", "active", "role_id").
		Values(employee.Name, employee.Lastname, employee.Email, employee.Department,
			employee.JobTitle, employee.EmploymentType, employee.Status, commissionJSON,
			employee.PasswordHash, employee.Active, employee.RoleID).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return employee, nil
}

func (r *employeeRepository) Update(employee *domain.Employee) error {
	commissionJSON, err := json.Marshal(employee.Commission)
	if err != nil {
		return fmt.Errorf("erro ao serializar comissão para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("employees").
		Set("name", employee.Name).
		Set("lastname", employee.Lastname).
		Set("email", employee.Email).
		Set("department", employee.Department).
		Set("job_title", employee.JobTitle).
		Set("employment_type", employee.EmploymentType).
		Set("status", employee.Status).
		Set("commission", commissionJSON).
		Set("active", employee.Active).
		Set("role_id", employee.RoleID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": employee.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *employeeRepository) UpdatePassword(id int, passwordHash string) error {
	query, args, err := squirrel.
		Update("employees").
		Set("password", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// SoftDelete marca o funcionário como removido preservando o histórico de
// registros vinculados a ele
func (r *employeeRepository) SoftDelete(id int) error {
	query, args, err := squirrel.
		Update("employees").
		Set("deleted", true).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanEmployee(scan func(dest ...interface{}) error) (*domain.Employee, error) {
	employee := &domain.Employee{}
	var commissionJSON []byte

	err := scan(
		&employee.ID,
		&employee.Name,
		&employee.Lastname,
		&employee.Email,
		&employee.Department,
		&employee.JobTitle,
		&employee.EmploymentType,
		&employee.Status,
		&commissionJSON,
		&employee.Active,
		&employee.RoleID,
		&employee.Deleted,
		&employee.DeletedAt,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	employee.Commission = scanCommissionConfig(commissionJSON)

	return employee, nil
}

func scanCommissionConfig(data []byte) domain.CommissionConfig {
	config := domain.CommissionConfig{Type: domain.CommissionTypePercentage}
	if data == nil {
		return config
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return domain.CommissionConfig{Type: domain.CommissionTypePercentage}
	}

	if config.Type == "" {
		config.Type = domain.CommissionTypePercentage
	}
	if config.Value < 0 {
		config.Value = 0
	}

	return config
}
