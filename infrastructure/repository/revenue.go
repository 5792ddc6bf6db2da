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
	revenuesTable = "revenues r"

	revenueColumns = "r.id, r.brand_id, COALESCE(b.name, ''), r.date, r.units_sold, " +
		"r.unit_price, r.total_revenue, r.notes, r.created_at, r.updated_at"
)

type RevenueRepository interface {
	List() ([]*domain.Revenue, error)
	ListByRange(startDate, endDate time.Time) ([]*domain.Revenue, error)
	GetByID(id string) (*domain.Revenue, error)
	Create(revenue *domain.Revenue) (*domain.Revenue, error)
	Update(revenue *domain.Revenue) error
	Delete(id string) error
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

func (r *revenueRepository) List() ([]*domain.Revenue, error) {
	builder := squirrel.
		Select(revenueColumns).
		From(revenuesTable).
		LeftJoin("brands b ON b.id = r.brand_id").
		OrderBy("r.date DESC")

	return r.queryRevenues(builder)
}

// ListByRange restringe a busca no banco ao intervalo de datas, evitando
// carregar a série histórica inteira para os agregados financeiros
func (r *revenueRepository) ListByRange(startDate, endDate time.Time) ([]*domain.Revenue, error) {
	builder := squirrel.
		Select(revenueColumns).
		From(revenuesTable).
		LeftJoin("brands b ON b.id = r.brand_id").
		Where(squirrel.GtOrEq{"r.date": startDate}).
		Where(squirrel.LtOrEq{"r.date": endDate}).
		OrderBy("r.date ASC")

	return r.queryRevenues(builder)
}

func (r *revenueRepository) queryRevenues(builder squirrel.SelectBuilder) ([]*domain.Revenue, error) {
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

	revenues := make([]*domain.Revenue, 0)
	for rows.Next() {
		revenue, err := scanRevenue(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear receita: %w", err)
		}
		revenues = append(revenues, revenue)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return revenues, nil
}

func (r *revenueRepository) GetByID(id string) (*domain.Revenue, error) {
	query, args, err := squirrel.
		Select(revenueColumns).
		From(revenuesTable).
		LeftJoin("brands b ON b.id = r.brand_id").
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	revenue, err := scanRevenue(r.conn.QueryRow(query, args...).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear receita: %w", err)
	}

	return revenue, nil
}

func (r *revenueRepository) Create(revenue *domain.Revenue) (*domain.Revenue, error) {
	query, args, err := squirrel.
		Insert("revenues").
		Columns("id", "brand_id", "date", "units_sold", "unit_price", "total_revenue", "notes").
		Values(revenue.ID, revenue.BrandID, revenue.Date, revenue.UnitsSold,
			revenue.UnitPrice, revenue.TotalRevenue, revenue.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&revenue.CreatedAt, &revenue.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return revenue, nil
}

func (r *revenueRepository) Update(revenue *domain.Revenue) error {
	query, args, err := squirrel.
		Update("revenues").
		Set("brand_id", revenue.BrandID).
		Set("date", revenue.Date).
		Set("units_sold", revenue.UnitsSold).
		Set("unit_price", revenue.UnitPrice).
		Set("total_revenue", revenue.TotalRevenue).
		Set("notes", revenue.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": revenue.ID}).
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

func (r *revenueRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("revenues").
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

func scanRevenue(scan func(dest ...interface{}) error) (*domain.Revenue, error) {
	revenue := &domain.Revenue{}

	err := scan(
		&revenue.ID,
		&revenue.BrandID,
		&revenue.BrandName,
		&revenue.Date,
		&revenue.UnitsSold,
		&revenue.UnitPrice,
		&revenue.TotalRevenue,
		&revenue.Notes,
		&revenue.CreatedAt,
		&revenue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return revenue, nil
}
