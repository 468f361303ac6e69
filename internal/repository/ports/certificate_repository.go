package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type CertificateRepository interface {
	Create(ctx context.Context, cert *domain.Certificate) (*domain.Certificate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error)
	List(ctx context.Context, limit, offset int) ([]domain.Certificate, error)
	Update(ctx context.Context, cert *domain.Certificate) (*domain.Certificate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
