package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/repository/ports"
)

var (
	ErrPaymentValidation = errors.New("payment validation failed")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentForbidden  = errors.New("not allowed to manage this payment")
)

type PaymentInput struct {
	Title       string
	Description *string
	Amount      float64
	Date        time.Time
	Status      string
}

type PaymentService struct {
	payments ports.PaymentRepository
}

func NewPaymentService(payments ports.PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

func (s *PaymentService) Create(ctx context.Context, authorID uuid.UUID, input PaymentInput) (*domain.Payment, error) {
	if err := validatePaymentInput(input); err != nil {
		return nil, err
	}
	return s.payments.Create(ctx, &domain.Payment{
		Title:       strings.TrimSpace(input.Title),
		Description: normalizeOptional(input.Description),
		Amount:      input.Amount,
		Date:        input.Date,
		Status:      input.Status,
		AuthorID:    authorID,
	})
}

func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	limit, offset = normalizePagination(limit, offset)
	return s.payments.List(ctx, limit, offset)
}

func (s *PaymentService) Update(ctx context.Context, id, requesterID uuid.UUID, input PaymentInput) (*domain.Payment, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != requesterID {
		return nil, ErrPaymentForbidden
	}
	if err := validatePaymentInput(input); err != nil {
		return nil, err
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Description = normalizeOptional(input.Description)
	existing.Amount = input.Amount
	existing.Date = input.Date
	existing.Status = input.Status
	return s.payments.Update(ctx, existing)
}

func (s *PaymentService) Delete(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != requesterID && !isAdmin {
		return ErrPaymentForbidden
	}
	return s.payments.Delete(ctx, id)
}

func validatePaymentInput(input PaymentInput) error {
	if strings.TrimSpace(input.Title) == "" || input.Amount <= 0 || input.Date.IsZero() {
		return ErrPaymentValidation
	}
	if !domain.ValidPaymentStatus(input.Status) {
		return ErrPaymentValidation
	}
	return nil
}
