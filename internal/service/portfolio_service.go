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
	ErrPortfolioValidation = errors.New("portfolio validation failed")
	ErrPortfolioNotFound   = errors.New("portfolio item not found")
	ErrPortfolioForbidden  = errors.New("not allowed to manage this portfolio item")
)

type PortfolioInput struct {
	Title        string
	Description  string
	Category     string
	ImageURL     string
	Link         *string
	Technologies *string
}

type PortfolioService struct {
	items ports.PortfolioRepository
}

func NewPortfolioService(items ports.PortfolioRepository) *PortfolioService {
	return &PortfolioService{items: items}
}

func (s *PortfolioService) Create(ctx context.Context, authorID uuid.UUID, input PortfolioInput) (*domain.PortfolioItem, error) {
	if err := validatePortfolioInput(input); err != nil {
		return nil, err
	}
	return s.items.Create(ctx, &domain.PortfolioItem{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Category:     strings.TrimSpace(input.Category),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Link:         normalizeOptional(input.Link),
		Technologies: normalizeOptional(input.Technologies),
		AuthorID:     authorID,
	})
}

func (s *PortfolioService) Get(ctx context.Context, id uuid.UUID) (*domain.PortfolioItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *PortfolioService) List(ctx context.Context, filter domain.PortfolioListFilter) ([]domain.PortfolioItem, error) {
	filter.Limit, filter.Offset = normalizePagination(filter.Limit, filter.Offset)
	filter.Category = strings.TrimSpace(filter.Category)
	return s.items.List(ctx, filter)
}

func (s *PortfolioService) Update(ctx context.Context, id, requesterID uuid.UUID, input PortfolioInput) (*domain.PortfolioItem, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != requesterID {
		return nil, ErrPortfolioForbidden
	}
	if err := validatePortfolioInput(input); err != nil {
		return nil, err
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Description = input.Description
	existing.Category = strings.TrimSpace(input.Category)
	existing.ImageURL = strings.TrimSpace(input.ImageURL)
	existing.Link = normalizeOptional(input.Link)
	existing.Technologies = normalizeOptional(input.Technologies)
	return s.items.Update(ctx, existing)
}

func (s *PortfolioService) Delete(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != requesterID && !isAdmin {
		return ErrPortfolioForbidden
	}
	return s.items.Delete(ctx, id)
}

func validatePortfolioInput(input PortfolioInput) error {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		strings.TrimSpace(input.ImageURL) == "" {
		return ErrPortfolioValidation
	}
	return nil
}
