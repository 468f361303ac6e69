package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/redect/members-api/internal/domain"
)

const newsColumns = `n.id, n.title, n.content, n.category, n.image_url, n.author_id,
        NULLIF(TRIM(u.first_name || ' ' || u.last_name), '') AS author_name,
        u.email AS author_email,
        n.published_at, n.created_at, n.updated_at`

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepo(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, news *domain.News) (*domain.News, error) {
	const query = `
        INSERT INTO news (title, content, category, image_url, author_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id uuid.UUID
	if err := r.db.GetContext(ctx, &id, query,
		news.Title, news.Content, news.Category, news.ImageURL, news.AuthorID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *NewsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	const query = `
        SELECT ` + newsColumns + `
        FROM news n
        JOIN user_account u ON u.id = n.author_id
        WHERE n.id = $1
    `
	var news domain.News
	if err := r.db.GetContext(ctx, &news, query, id); err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *NewsRepository) List(ctx context.Context, filter domain.NewsListFilter) ([]domain.News, error) {
	query := `
        SELECT ` + newsColumns + `
        FROM news n
        JOIN user_account u ON u.id = n.author_id
    `
	where, args := newsFilterClauses(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY n.published_at DESC"
	query += " LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	items := []domain.News{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NewsRepository) Count(ctx context.Context, filter domain.NewsListFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM news n`
	where, args := newsFilterClauses(filter)
	if where != "" {
		query += " WHERE " + where
	}
	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *NewsRepository) Update(ctx context.Context, news *domain.News) (*domain.News, error) {
	const query = `
        UPDATE news
        SET title = $2,
            content = $3,
            category = $4,
            image_url = $5,
            updated_at = NOW()
        WHERE id = $1
    `
	if _, err := r.db.ExecContext(ctx, query,
		news.ID, news.Title, news.Content, news.Category, news.ImageURL); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, news.ID)
}

func (r *NewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM news WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func newsFilterClauses(filter domain.NewsListFilter) (string, []any) {
	clauses := []string{}
	args := []any{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, "n.category = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		clauses = append(clauses, "(n.title ILIKE $"+n+" OR n.content ILIKE $"+n+")")
	}
	return strings.Join(clauses, " AND "), args
}
