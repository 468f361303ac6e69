package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type FileRepository interface {
	Create(ctx context.Context, file *domain.File) (*domain.File, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error)
	List(ctx context.Context, limit, offset int) ([]domain.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
