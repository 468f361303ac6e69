package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PortfolioItem, error)
	List(ctx context.Context, filter domain.PortfolioListFilter) ([]domain.PortfolioItem, error)
	Update(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
