package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type fakePaymentRepo struct {
	created *domain.Payment
	deleted uuid.UUID

	getResult *domain.Payment
	getErr    error
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	f.created = payment
	return payment, nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return f.getResult, f.getErr
}

func (f *fakePaymentRepo) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	return payment, nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = id
	return nil
}

func TestPaymentCreateValidatesInput(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := NewPaymentService(repo)
	date := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input PaymentInput
	}{
		{"missing title", PaymentInput{Amount: 10, Date: date, Status: domain.PaymentStatusPaid}},
		{"zero amount", PaymentInput{Title: "dues", Date: date, Status: domain.PaymentStatusPaid}},
		{"missing date", PaymentInput{Title: "dues", Amount: 10, Status: domain.PaymentStatusPaid}},
		{"bogus status", PaymentInput{Title: "dues", Amount: 10, Date: date, Status: "refunded-ish"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), uuid.New(), tc.input); !errors.Is(err, ErrPaymentValidation) {
				t.Fatalf("expected ErrPaymentValidation, got %v", err)
			}
		})
	}

	payment, err := svc.Create(context.Background(), uuid.New(), PaymentInput{
		Title: "monthly dues", Amount: 49.9, Date: date, Status: domain.PaymentStatusPending,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if payment.Status != domain.PaymentStatusPending {
		t.Fatalf("expected pending status, got %q", payment.Status)
	}
}

func TestPaymentUpdateOnlyByOwner(t *testing.T) {
	owner := uuid.New()
	repo := &fakePaymentRepo{getResult: &domain.Payment{
		ID: uuid.New(), AuthorID: owner, Title: "dues", Amount: 10,
		Date: time.Now(), Status: domain.PaymentStatusPending,
	}}
	svc := NewPaymentService(repo)

	input := PaymentInput{Title: "dues", Amount: 15, Date: time.Now(), Status: domain.PaymentStatusPaid}
	if _, err := svc.Update(context.Background(), repo.getResult.ID, uuid.New(), input); !errors.Is(err, ErrPaymentForbidden) {
		t.Fatalf("expected ErrPaymentForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), repo.getResult.ID, owner, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Amount != 15 || updated.Status != domain.PaymentStatusPaid {
		t.Fatalf("expected updated amount and status, got %v / %q", updated.Amount, updated.Status)
	}
}

func TestPaymentDeleteAdminOverride(t *testing.T) {
	repo := &fakePaymentRepo{getResult: &domain.Payment{ID: uuid.New(), AuthorID: uuid.New()}}
	svc := NewPaymentService(repo)

	if err := svc.Delete(context.Background(), repo.getResult.ID, uuid.New(), false); !errors.Is(err, ErrPaymentForbidden) {
		t.Fatalf("expected ErrPaymentForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), repo.getResult.ID, uuid.New(), true); err != nil {
		t.Fatalf("admins may delete any payment, got %v", err)
	}
}
