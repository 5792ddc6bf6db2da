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
	commissionsTable = "commissions c"

	commissionColumns = "c.id, c.employee_id, COALESCE(TRIM(e.name || ' ' || e.lastname), ''), " +
		"c.commission_type, c.value_type, c.value_amount, c.orders_count, " +
		"c.total_commission, c.due_date, c.created_at, c.updated_at"
)

type CommissionRepository interface {
	List() ([]*domain.Commission, error)
	GetByID(id string) (*domain.Commission, error)
	Create(commission *domain.Commission) (*domain.Commission, error)
	Update(commission *domain.Commission) error
	Delete(id string) error
}

type commissionRepository struct {
	conn *postgres.Connection
}

func NewCommissionRepository(conn *postgres.Connection) CommissionRepository {
	return &commissionRepository{
		conn: conn,
	}
}

func (r *commissionRepository) List() ([]*domain.Commission, error) {
	query, args, err := squirrel.
		Select(commissionColumns).
		From(commissionsTable).
		LeftJoin("employees e ON e.id = c.employee_id").
		OrderBy("c.due_date DESC").
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

	commissions := make([]*domain.Commission, 0)
	for rows.Next() {
		commission, err := scanCommission(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear comissão: %w", err)
		}
		commissions = append(commissions, commission)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return commissions, nil
}

func (r *commissionRepository) GetByID(id string) (*domain.Commission, error) {
	query, args, err := squirrel.
		Select(commissionColumns).
		From(commissionsTable).
		LeftJoin("employees e ON e.id = c.employee_id").
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	commission, err := scanCommission(r.conn.QueryRow(query, args...).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear comissão: %w", err)
	}

	return commission, nil
}

func (r *commissionRepository) Create(commission *domain.Commission) (*domain.Commission, error) {
	query, args, err := squirrel.
		Insert("commissions").
		Columns("id", "employee_id", "commission_type", "value_type", "value_amount",
			"orders_count", "total_commission", "due_date").
		Values(commission.ID, commission.EmployeeID, commission.CommissionType,
			commission.ValueType, commission.ValueAmount, commission.OrdersCount,
			commission.TotalCommission, commission.DueDate).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&commission.CreatedAt, &commission.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return commission, nil
}

func (r *commissionRepository) Update(commission *domain.Commission) error {
	query, args, err := squirrel.
		Update("commissions").
		Set("employee_id", commission.EmployeeID).
		Set("commission_type", commission.CommissionType).
		Set("value_type", commission.ValueType).
		Set("value_amount", commission.ValueAmount).
		Set("orders_count", commission.OrdersCount).
		Set("total_commission", commission.TotalCommission).
		Set("due_date", commission.DueDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": commission.ID}).
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

func (r *commissionRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("commissions").
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

func scanCommission(scan func(dest ...interface{}) error) (*domain.Commission, error) {
	commission := &domain.Commission{}

	err := scan(
		&commission.ID,
		&commission.EmployeeID,
		&commission.EmployeeName,
		&commission.CommissionType,
		&commission.ValueType,
		&commission.ValueAmount,
		&commission.OrdersCount,
		&commission.TotalCommission,
		&commission.DueDate,
		&commission.CreatedAt,
		&commission.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return commission, nil
}
