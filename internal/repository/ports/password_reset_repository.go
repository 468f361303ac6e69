package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.PasswordResetToken, error)
	// FindLive returns the token row when it exists and has not expired.
	FindLive(ctx context.Context, token string, now time.Time) (*domain.PasswordResetToken, error)
	// Consume atomically deletes a live token and rewrites the owner's
	// credential in one transaction. The conditional delete is the
	// serialization point: of two concurrent calls with the same token,
	// exactly one succeeds and the other observes sql.ErrNoRows.
	Consume(ctx context.Context, token string, now time.Time, passwordHash, passwordSalt []byte) (uuid.UUID, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
