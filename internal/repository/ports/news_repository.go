package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type NewsRepository interface {
	Create(ctx context.Context, news *domain.News) (*domain.News, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error)
	List(ctx context.Context, filter domain.NewsListFilter) ([]domain.News, error)
	Count(ctx context.Context, filter domain.NewsListFilter) (int64, error)
	Update(ctx context.Context, news *domain.News) (*domain.News, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
