package postgres

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/redect/members-api/internal/domain"
)

const portfolioColumns = `p.id, p.title, p.description, p.category, p.image_url, p.link,
        p.technologies, p.author_id,
        NULLIF(TRIM(u.first_name || ' ' || u.last_name), '') AS author_name,
        p.published_at, p.created_at, p.updated_at`

type PortfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepo(db *sqlx.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) Create(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	const query = `
        INSERT INTO portfolio_items (title, description, category, image_url, link, technologies, author_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	var id uuid.UUID
	if err := r.db.GetContext(ctx, &id, query,
		item.Title, item.Description, item.Category, item.ImageURL,
		item.Link, item.Technologies, item.AuthorID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PortfolioItem, error) {
	const query = `
        SELECT ` + portfolioColumns + `
        FROM portfolio_items p
        JOIN user_account u ON u.id = p.author_id
        WHERE p.id = $1
    `
	var item domain.PortfolioItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepository) List(ctx context.Context, filter domain.PortfolioListFilter) ([]domain.PortfolioItem, error) {
	query := `
        SELECT ` + portfolioColumns + `
        FROM portfolio_items p
        JOIN user_account u ON u.id = p.author_id
    `
	args := []any{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += " WHERE p.category = $1"
	}
	query += " ORDER BY p.published_at DESC"
	query += " LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	items := []domain.PortfolioItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error) {
	const query = `
        UPDATE portfolio_items
        SET title = $2,
            description = $3,
            category = $4,
            image_url = $5,
            link = $6,
            technologies = $7,
            updated_at = NOW()
        WHERE id = $1
    `
	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Description, item.Category,
		item.ImageURL, item.Link, item.Technologies); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, item.ID)
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM portfolio_items WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
