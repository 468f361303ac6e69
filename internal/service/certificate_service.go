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
	ErrCertificateValidation = errors.New("certificate validation failed")
	ErrCertificateNotFound   = errors.New("certificate not found")
	ErrCertificateForbidden  = errors.New("not allowed to manage this certificate")
)

type CertificateInput struct {
	Title       string
	Description *string
	Issuer      string
	IssueDate   time.Time
	ImageURL    *string
}

type CertificateService struct {
	certs ports.CertificateRepository
}

func NewCertificateService(certs ports.CertificateRepository) *CertificateService {
	return &CertificateService{certs: certs}
}

func (s *CertificateService) Create(ctx context.Context, authorID uuid.UUID, input CertificateInput) (*domain.Certificate, error) {
	if err := validateCertificateInput(input); err != nil {
		return nil, err
	}
	return s.certs.Create(ctx, &domain.Certificate{
		Title:       strings.TrimSpace(input.Title),
		Description: normalizeOptional(input.Description),
		Issuer:      strings.TrimSpace(input.Issuer),
		IssueDate:   input.IssueDate,
		ImageURL:    normalizeOptional(input.ImageURL),
		AuthorID:    authorID,
	})
}

func (s *CertificateService) Get(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	cert, err := s.certs.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return cert, nil
}

func (s *CertificateService) List(ctx context.Context, limit, offset int) ([]domain.Certificate, error) {
	limit, offset = normalizePagination(limit, offset)
	return s.certs.List(ctx, limit, offset)
}

func (s *CertificateService) Update(ctx context.Context, id, requesterID uuid.UUID, input CertificateInput) (*domain.Certificate, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != requesterID {
		return nil, ErrCertificateForbidden
	}
	if err := validateCertificateInput(input); err != nil {
		return nil, err
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Description = normalizeOptional(input.Description)
	existing.Issuer = strings.TrimSpace(input.Issuer)
	existing.IssueDate = input.IssueDate
	existing.ImageURL = normalizeOptional(input.ImageURL)
	return s.certs.Update(ctx, existing)
}

func (s *CertificateService) Delete(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != requesterID && !isAdmin {
		return ErrCertificateForbidden
	}
	return s.certs.Delete(ctx, id)
}

func validateCertificateInput(input CertificateInput) error {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Issuer) == "" ||
		input.IssueDate.IsZero() {
		return ErrCertificateValidation
	}
	return nil
}
