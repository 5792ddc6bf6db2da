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
	brandsTable = "brands b"
)

type BrandRepository interface {
	List() ([]*domain.Brand, error)
	GetByID(id string) (*domain.Brand, error)
	Create(brand *domain.Brand) (*domain.Brand, error)
	Update(brand *domain.Brand) error
	Delete(id string) error
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) List() ([]*domain.Brand, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.category, b.status, b.social_links, b.created_at, b.updated_at").
		From(brandsTable).
		OrderBy("b.created_at DESC").
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

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		brand, err := r.scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear marca: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return brands, nil
}

func (r *brandRepository) GetByID(id string) (*domain.Brand, error) {
	query, args, err := squirrel.
		Select("b.id, b.name, b.category, b.status, b.social_links, b.created_at, b.updated_at").
		From(brandsTable).
		Where(squirrel.Eq{"b.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	brand := &domain.Brand{}
	var socialLinksJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&brand.ID,
		&brand.Name,
		&brand.Category,
		&brand.Status,
		&socialLinksJSON,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear marca: %w", err)
	}

	brand.SocialLinks = scanSocialLinks(socialLinksJSON)

	return brand, nil
}

func (r *brandRepository) Create(brand *domain.Brand) (*domain.Brand, error) {
	socialLinksJSON, err := json.Marshal(brand.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar links sociais para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("brands").
		Columns("id", "name", "category", "status", "social_links").
		Values(brand.ID, brand.Name, brand.Category, brand.Status, socialLinksJSON).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return brand, nil
}

func (r *brandRepository) Update(brand *domain.Brand) error {
	socialLinksJSON, err := json.Marshal(brand.SocialLinks)
	if err != nil {
		return fmt.Errorf("erro ao serializar links sociais para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("brands").
		Set("name", brand.Name).
		Set("category", brand.Category).
		Set("status", brand.Status).
		Set("social_links", socialLinksJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": brand.ID}).
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

func (r *brandRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("brands").
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

func (r *brandRepository) scanBrand(rows *sql.Rows) (*domain.Brand, error) {
	brand := &domain.Brand{}
	var socialLinksJSON []byte

	err := rows.Scan(
		&brand.ID,
		&brand.Name,
		&brand.Category,
		&brand.Status,
		&socialLinksJSON,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	brand.SocialLinks = scanSocialLinks(socialLinksJSON)

	return brand, nil
}

// scanSocialLinks deserializa o documento de links sociais passando pelo
// normalizador, garantindo defaults para campos ausentes
func scanSocialLinks(data []byte) domain.SocialLinks {
	if data == nil {
		return domain.SocialLinks{}
	}

	row := domain.Row{}
	if err := json.Unmarshal(data, &row); err != nil {
		return domain.SocialLinks{}
	}

	return domain.NormalizeSocialLinks(row)
}
