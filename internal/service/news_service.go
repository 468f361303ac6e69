package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/repository/ports"
)

var (
	ErrNewsValidation = errors.New("news validation failed")
	ErrNewsNotFound   = errors.New("news not found")
	ErrNewsForbidden  = errors.New("not allowed to manage this news item")
)

type NewsInput struct {
	Title    string
	Content  string
	Category string
	ImageURL *string
}

type NewsService struct {
	news ports.NewsRepository
}

func NewNewsService(news ports.NewsRepository) *NewsService {
	return &NewsService{news: news}
}

func (s *NewsService) Create(ctx context.Context, authorID uuid.UUID, input NewsInput) (*domain.News, error) {
	if err := validateNewsInput(input); err != nil {
		return nil, err
	}
	return s.news.Create(ctx, &domain.News{
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		Category: strings.TrimSpace(input.Category),
		ImageURL: normalizeOptional(input.ImageURL),
		AuthorID: authorID,
	})
}

func (s *NewsService) Get(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	news, err := s.news.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return news, nil
}

func (s *NewsService) List(ctx context.Context, filter domain.NewsListFilter) (*domain.NewsListResult, error) {
	filter.Limit, filter.Offset = normalizePagination(filter.Limit, filter.Offset)
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)

	items, err := s.news.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.news.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.NewsListResult{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (s *NewsService) Update(ctx context.Context, id, requesterID uuid.UUID, input NewsInput) (*domain.News, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != requesterID {
		return nil, ErrNewsForbidden
	}
	if err := validateNewsInput(input); err != nil {
		return nil, err
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Content = input.Content
	existing.Category = strings.TrimSpace(input.Category)
	existing.ImageURL = normalizeOptional(input.ImageURL)
	return s.news.Update(ctx, existing)
}

func (s *NewsService) Delete(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != requesterID && !isAdmin {
		return ErrNewsForbidden
	}
	return s.news.Delete(ctx, id)
}

func validateNewsInput(input NewsInput) error {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Content) == "" ||
		strings.TrimSpace(input.Category) == "" {
		return ErrNewsValidation
	}
	return nil
}

func normalizePagination(limit, offset int) (int, int) {
	const (
		defaultLimit = 10
		maxLimit     = 50
	)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
