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
	mediaBuyingTable = "media_buying_records m"

	mediaBuyingColumns = "m.id, m.platform, m.date, m.brand_id, COALESCE(b.name, ''), " +
		"m.employee_id, COALESCE(TRIM(e.name || ' ' || e.lastname), ''), m.spend, " +
		"m.orders_count, m.order_cost, m.roas, m.campaign_link, m.notes, " +
		"m.created_at, m.updated_at"
)

type MediaBuyingRepository interface {
	List() ([]*domain.MediaBuyingRecord, error)
	GetByID(id string) (*domain.MediaBuyingRecord, error)
	Create(record *domain.MediaBuyingRecord) (*domain.MediaBuyingRecord, error)
	Update(record *domain.MediaBuyingRecord) error
	Delete(id string) error
}

type mediaBuyingRepository struct {
	conn *postgres.Connection
}

func NewMediaBuyingRepository(conn *postgres.Connection) MediaBuyingRepository {
	return &mediaBuyingRepository{
		conn: conn,
	}
}

func (r *mediaBuyingRepository) List() ([]*domain.MediaBuyingRecord, error) {
	query, args, err := squirrel.
		Select(mediaBuyingColumns).
		From(mediaBuyingTable).
		LeftJoin("brands b ON b.id = m.brand_id").
		LeftJoin("employees e ON e.id = m.employee_id").
		OrderBy("m.date DESC").
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

	records := make([]*domain.MediaBuyingRecord, 0)
	for rows.Next() {
		record, err := scanMediaBuying(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de mídia: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *mediaBuyingRepository) GetByID(id string) (*domain.MediaBuyingRecord, error) {
	query, args, err := squirrel.
		Select(mediaBuyingColumns).
		From(mediaBuyingTable).
		LeftJoin("brands b ON b.id = m.brand_id").
		LeftJoin("employees e ON e.id = m.employee_id").
		Where(squirrel.Eq{"m.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanMediaBuying(r.conn.QueryRow(query, args...).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de mídia: %w", err)
	}

	return record, nil
}

func (r *mediaBuyingRepository) Create(record *domain.MediaBuyingRecord) (*domain.MediaBuyingRecord, error) {
	query, args, err := squirrel.
		Insert("media_buying_records").
		Columns("id", "platform", "date", "brand_id", "employee_id", "spend",
			"orders_count", "order_cost", "roas", "campaign_link", "notes").
		Values(record.ID, record.Platform, record.Date, record.BrandID, record.EmployeeID,
			record.Spend, record.OrdersCount, record.OrderCost, record.ROAS,
			record.CampaignLink, record.Notes).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return record, nil
}

func (r *mediaBuyingRepository) Update(record *domain.MediaBuyingRecord) error {
	query, args, err := squirrel.
		Update("media_buying_records").
		Set("platform", record.Platform).
		Set("date", record.Date).
		Set("brand_id", record.BrandID).
		Set("employee_id", record.EmployeeID).
		Set("spend", record.Spend).
		Set("orders_count", record.OrdersCount).
		Set("order_cost", record.OrderCost).
		Set("roas", record.ROAS).
		Set("campaign_link", record.CampaignLink).
		Set("notes", record.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": record.ID}).
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

func (r *mediaBuyingRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("media_buying_records").
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

func scanMediaBuying(scan func(dest ...interface{}) error) (*domain.MediaBuyingRecord, error) {
	record := &domain.MediaBuyingRecord{}

	err := scan(
		&record.ID,
		&record.Platform,
		&record.Date,
		&record.BrandID,
		&record.BrandName,
		&record.EmployeeID,
		&record.EmployeeName,
		&record.Spend,
		&record.OrdersCount,
		&record.OrderCost,
		&record.ROAS,
		&record.CampaignLink,
		&record.Notes,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
