package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/redect/members-api/internal/domain"
)

const paymentColumns = `id, title, description, amount, date, status, author_id, created_at, updated_at`

type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepo(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	const query = `
        INSERT INTO payments (title, description, amount, date, status, author_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + paymentColumns

	row := r.db.QueryRowxContext(ctx, query,
		payment.Title, payment.Description, payment.Amount, payment.Date, payment.Status, payment.AuthorID)
	var stored domain.Payment
	if err := row.StructScan(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var payment domain.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	const query = `
        SELECT ` + paymentColumns + `
        FROM payments
        ORDER BY date DESC
        LIMIT $1 OFFSET $2
    `
	payments := []domain.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, limit, offset); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	const query = `
        UPDATE payments
        SET title = $2,
            description = $3,
            amount = $4,
            date = $5,
            status = $6,
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + paymentColumns

	row := r.db.QueryRowxContext(ctx, query,
		payment.ID, payment.Title, payment.Description, payment.Amount, payment.Date, payment.Status)
	var stored domain.Payment
	if err := row.StructScan(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM payments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
