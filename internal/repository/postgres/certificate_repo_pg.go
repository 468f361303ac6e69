package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/redect/members-api/internal/domain"
)

const certificateColumns = `id, title, description, issuer, issue_date, image_url, author_id, created_at, updated_at`

type CertificateRepository struct {
	db *sqlx.DB
}

func NewCertificateRepo(db *sqlx.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

func (r *CertificateRepository) Create(ctx context.Context, cert *domain.Certificate) (*domain.Certificate, error) {
	const query = `
        INSERT INTO certificates (title, description, issuer, issue_date, image_url, author_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + certificateColumns

	row := r.db.QueryRowxContext(ctx, query,
		cert.Title, cert.Description, cert.Issuer, cert.IssueDate, cert.ImageURL, cert.AuthorID)
	var stored domain.Certificate
	if err := row.StructScan(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *CertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	const query = `SELECT ` + certificateColumns + ` FROM certificates WHERE id = $1`
	var cert domain.Certificate
	if err := r.db.GetContext(ctx, &cert, query, id); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepository) List(ctx context.Context, limit, offset int) ([]domain.Certificate, error) {
	const query = `
        SELECT ` + certificateColumns + `
        FROM certificates
        ORDER BY issue_date DESC
        LIMIT $1 OFFSET $2
    `
	certs := []domain.Certificate{}
	if err := r.db.SelectContext(ctx, &certs, query, limit, offset); err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepository) Update(ctx context.Context, cert *domain.Certificate) (*domain.Certificate, error) {
	const query = `
        UPDATE certificates
        SET title = $2,
            description = $3,
            issuer = $4,
            issue_date = $5,
            image_url = $6,
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + certificateColumns

	row := r.db.QueryRowxContext(ctx, query,
		cert.ID, cert.Title, cert.Description, cert.Issuer, cert.IssueDate, cert.ImageURL)
	var stored domain.Certificate
	if err := row.StructScan(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *CertificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM certificates WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
