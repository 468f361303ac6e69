package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/redect/members-api/internal/domain"
)

type PasswordResetRepository struct {
	db *sqlx.DB
}

func NewPasswordResetRepo(db *sqlx.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.PasswordResetToken, error) {
	const query = `
        INSERT INTO password_reset_tokens (user_id, token, expires_at)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, token, expires_at, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, userID, token, expiresAt)
	var reset domain.PasswordResetToken
	if err := row.StructScan(&reset); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *PasswordResetRepository) FindLive(ctx context.Context, token string, now time.Time) (*domain.PasswordResetToken, error) {
	const query = `
        SELECT id, user_id, token, expires_at, created_at
        FROM password_reset_tokens
        WHERE token = $1 AND expires_at > $2
    `
	var reset domain.PasswordResetToken
	if err := r.db.GetContext(ctx, &reset, query, token, now); err != nil {
		return nil, err
	}
	return &reset, nil
}

// Consume deletes a live token and rewrites the owner's credential in one
// transaction. The DELETE doubles as the row lock: a concurrent Consume for
// the same token blocks until commit and then sees zero rows.
func (r *PasswordResetRepository) Consume(ctx context.Context, token string, now time.Time, passwordHash, passwordSalt []byte) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() { _ = tx.Rollback() }()

	const consumeQuery = `
        DELETE FROM password_reset_tokens
        WHERE token = $1 AND expires_at > $2
        RETURNING user_id
    `
	var userID uuid.UUID
	if err := tx.GetContext(ctx, &userID, consumeQuery, token, now); err != nil {
		return uuid.Nil, err
	}

	const updateQuery = `
        UPDATE user_account
        SET password_hash = $2,
            password_salt = $3,
            updated_at = NOW()
        WHERE id = $1
    `
	result, err := tx.ExecContext(ctx, updateQuery, userID, passwordHash, passwordSalt)
	if err != nil {
		return uuid.Nil, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return uuid.Nil, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

func (r *PasswordResetRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM password_reset_tokens WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *PasswordResetRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `DELETE FROM password_reset_tokens WHERE expires_at <= $1`
	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
