package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
