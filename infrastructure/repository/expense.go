package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/ecomistry/backoffice-api/infrastructure/database/postgres"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/lib/pq"
)

const (
	expensesTable = "expenses x"

	expenseColumns = "x.id, x.category, x.amount, x.date, COALESCE(x.brand_id, ''), " +
		"COALESCE(b.name, ''), x.description, x.created_at, x.updated_at"
)

type ExpenseRepository interface {
	List() ([]*domain.Expense, error)
	ListByRange(startDate, endDate time.Time) ([]*domain.Expense, error)
	GetByID(id string) (*domain.Expense, error)
	Create(expense *domain.Expense) (*domain.Expense, error)
	Update(expense *domain.Expense) error
	Delete(id string) error
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) List() ([]*domain.Expense, error) {
	builder := squirrel.
		Select(expenseColumns).
		From(expensesTable).
		LeftJoin("brands b ON b.id = x.brand_id").
		OrderBy("x.date DESC")

	return r.queryExpenses(builder)
}

func (r *expenseRepository) ListByRange(startDate, endDate time.Time) ([]*domain.Expense, error) {
	builder := squirrel.
		Select(expenseColumns).
		From(expensesTable).
		LeftJoin("brands b ON b.id = x.brand_id").
		Where(squirrel.GtOrEq{"x.date": startDate}).
		Where(squirrel.LtOrEq{"x.date": endDate}).
		OrderBy("x.date ASC")

	return r.queryExpenses(builder)
}

func (r *expenseRepository) queryExpenses(builder squirrel.SelectBuilder) ([]*domain.Expense, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
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

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) GetByID(id string) (*domain.Expense, error) {
	query, args, err := squirrel.
		Select(expenseColumns).
		From(expensesTable).
		LeftJoin("brands b ON b.id = x.brand_id").
		Where(squirrel.Eq{"x.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	expense, err := scanExpense(r.conn.QueryRow(query, args...).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
	}

	return expense, nil
}

func (r *expenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	// brand_id vazio vira NULL para não violar a FK de marcas
	var brandID interface{}
	if expense.BrandID != "" {
		brandID = expense.BrandID
	}

	query, args, err := squirrel.
		Insert("expenses").
		Columns("id", "category", "amount", "date", "brand_id", "description").
		Values(expense.ID, expense.Category, expense.Amount, expense.Date, brandID, expense.Description).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return expense, nil
}

func (r *expenseRepository) Update(expense *domain.Expense) error {
	var brandID interface{}
	if expense.BrandID != "" {
		brandID = expense.BrandID
	}

	query, args, err := squirrel.
		Update("expenses").
		Set("category", expense.Category).
		Set("amount", expense.Amount).
		Set("date", expense.Date).
		Set("brand_id", brandID).
		Set("description", expense.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": expense.ID}).
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

func (r *expenseRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("expenses").
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

func scanExpense(scan func(dest ...interface{}) error) (*domain.Expense, error) {
	expense := &domain.Expense{}

	err := scan(
		&expense.ID,
		&expense.Category,
		&expense.Amount,
		&expense.Date,
		&expense.BrandID,
		&expense.BrandName,
		&expense.Description,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return expense, nil
}
