package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/redect/members-api/internal/domain"
)

const fileColumns = `id, name, content_type, size_bytes, object_key, url, author_id, created_at`

type FileRepository struct {
	db *sqlx.DB
}

func NewFileRepo(db *sqlx.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, file *domain.File) (*domain.File, error) {
	const query = `
        INSERT INTO files (name, content_type, size_bytes, object_key, url, author_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + fileColumns

	row := r.db.QueryRowxContext(ctx, query,
		file.Name, file.ContentType, file.SizeBytes, file.ObjectKey, file.URL, file.AuthorID)
	var stored domain.File
	if err := row.StructScan(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	const query = `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	var file domain.File
	if err := r.db.GetContext(ctx, &file, query, id); err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *FileRepository) List(ctx context.Context, limit, offset int) ([]domain.File, error) {
	const query = `
        SELECT ` + fileColumns + `
        FROM files
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	files := []domain.File{}
	if err := r.db.SelectContext(ctx, &files, query, limit, offset); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM files WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
