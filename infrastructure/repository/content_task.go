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
	contentTasksTable = "content_tasks t"

	contentTaskColumns = "t.id, t.employee_id, COALESCE(TRIM(e.name || ' ' || e.lastname), ''), " +
		"t.brand_id, COALESCE(b.name, ''), t.task_type, t.deadline, t.status, " +
		"t.delivery_link, t.notes, t.created_at, t.updated_at"
)

type ContentTaskRepository interface {
	List() ([]*domain.ContentTask, error)
	GetByID(id string) (*domain.ContentTask, error)
	Create(task *domain.ContentTask) (*domain.ContentTask, error)
	Update(task *domain.ContentTask) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}

type contentTaskRepository struct {
	conn *postgres.Connection
}

func NewContentTaskRepository(conn *postgres.Connection) ContentTaskRepository {
	return &contentTaskRepository{
		conn: conn,
	}
}

func (r *contentTaskRepository) List() ([]*domain.ContentTask, error) {
	query, args, err := squirrel.
		Select(contentTaskColumns).
		From(contentTasksTable).
		LeftJoin("employees e ON e.id = t.employee_id").
		LeftJoin("brands b ON b.id = t.brand_id").
		OrderBy("t.deadline ASC").
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

	tasks := make([]*domain.ContentTask, 0)
	for rows.Next() {
		task, err := scanContentTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tarefa: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tasks, nil
}

func (r *contentTaskRepository) GetByID(id string) (*domain.ContentTask, error) {
	query, args, err := squirrel.
		Select(contentTaskColumns).
		From(contentTasksTable).
		LeftJoin("employees e ON e.id = t.employee_id").
		LeftJoin("brands b ON b.id = t.brand_id").
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	task, err := scanContentTask(r.conn.QueryRow(query, args...).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tarefa: %w", err)
	}

	return task, nil
}

func (r *contentTaskRepository) Create(task *domain.ContentTask) (*domain.ContentTask, error) {
	query, args, err := squirrel.
		Insert("content_tasks").
		Columns("id", "employee_id", "brand_id", "task_type", "deadline",
			"status", "delivery_link", "notes").
		Values(task.ID, task.EmployeeID, task.BrandID, task.TaskType, task.Deadline,
			task.Status, task.DeliveryLink, task.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return task, nil
}

func (r *contentTaskRepository) Update(task *domain.ContentTask) error {
	query, args, err := squirrel.
		Update("content_tasks").
		Set("employee_id", task.EmployeeID).
		Set("brand_id", task.BrandID).
		Set("task_type", task.TaskType).
		Set("deadline", task.Deadline).
		Set("status", task.Status).
		Set("delivery_link", task.DeliveryLink).
		Set("notes", task.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": task.ID}).
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

func (r *contentTaskRepository) UpdateStatus(id, status string) error {
	query, args, err := squirrel.
		Update("content_tasks").
		Set("status", status).
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

func (r *contentTaskRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("content_tasks").
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

func scanContentTask(scan func(dest ...interface{}) error) (*domain.ContentTask, error) {
	task := &domain.ContentTask{}

	err := scan(
		&task.ID,
		&task.EmployeeID,
		&task.EmployeeName,
		&task.BrandID,
		&task.BrandName,
		&task.TaskType,
		&task.Deadline,
		&task.Status,
		&task.DeliveryLink,
		&task.Notes,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return task, nil
}
