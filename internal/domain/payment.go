package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusCanceled = "canceled"
)

type Payment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	Amount      float64   `db:"amount" json:"amount"`
	Date        time.Time `db:"date" json:"date"`
	Status      string    `db:"status" json:"status"`
	AuthorID    uuid.UUID `db:"author_id" json:"author_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusCanceled:
		return true
	}
	return false
}
