package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ecomistry/backoffice-api/infrastructure/database/postgres"
	"github.com/ecomistry/backoffice-api/internal/domain"
)

const (
	financeSnapshotsTable = "finance_snapshots s"

	financeSnapshotColumns = "s.id, s.brand_id, COALESCE(b.name, ''), s.month, " +
		"s.total_revenue, s.total_expenses, s.profit, s.profit_margin, " +
		"s.generated_at, s.created_at, s.updated_at"
)

type FinanceSnapshotRepository interface {
	ListByMonth(month string) ([]*domain.FinanceSnapshot, error)
	ListPeriods() ([]string, error)
	Upsert(snapshot *domain.FinanceSnapshot) error
}

type financeSnapshotRepository struct {
	conn *postgres.Connection
}

func NewFinanceSnapshotRepository(conn *postgres.Connection) FinanceSnapshotRepository {
	return &financeSnapshotRepository{
		conn: conn,
	}
}

func (r *financeSnapshotRepository) ListByMonth(month string) ([]*domain.FinanceSnapshot, error) {
	query, args, err := squirrel.
		Select(financeSnapshotColumns).
		From(financeSnapshotsTable).
		LeftJoin("brands b ON b.id = s.brand_id").
		Where(squirrel.Eq{"s.month": month}).
		OrderBy("b.name ASC").
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

	snapshots := make([]*domain.FinanceSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.FinanceSnapshot{}
		err = rows.Scan(
			&snapshot.ID,
			&snapshot.BrandID,
			&snapshot.BrandName,
			&snapshot.Month,
			&snapshot.TotalRevenue,
			&snapshot.TotalExpenses,
			&snapshot.Profit,
			&snapshot.ProfitMargin,
			&snapshot.GeneratedAt,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fechamento: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// ListPeriods retorna os meses com fechamento gravado, do mais recente para o
// mais antigo. O sufixo do mês (MM-YYYY) ordena por ano antes do mês.
func (r *financeSnapshotRepository) ListPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT s.month").
		From(financeSnapshotsTable).
		OrderBy("RIGHT(s.month, 4) DESC, LEFT(s.month, 2) DESC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var month string
		if err = rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

// Upsert grava o fechamento do par marca/mês, sobrescrevendo valores de uma
// execução anterior do agendador
func (r *financeSnapshotRepository) Upsert(snapshot *domain.FinanceSnapshot) error {
	query, args, err := squirrel.
		Insert("finance_snapshots").
		Columns("brand_id", "month", "total_revenue", "total_expenses",
			"profit", "profit_margin", "generated_at").
		Values(snapshot.BrandID, snapshot.Month, snapshot.TotalRevenue,
			snapshot.TotalExpenses, snapshot.Profit, snapshot.ProfitMargin,
			snapshot.GeneratedAt).
		Suffix(`ON CONFLICT (brand_id, month) DO UPDATE SET
			total_revenue = EXCLUDED.total_revenue,
			total_expenses = EXCLUDED.total_expenses,
			profit = EXCLUDED.profit,
			profit_margin = EXCLUDED.profit_margin,
			generated_at = EXCLUDED.generated_at,
			updated_at = NOW()`).
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
