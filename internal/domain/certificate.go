package domain

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	Issuer      string    `db:"issuer" json:"issuer"`
	IssueDate   time.Time `db:"issue_date" json:"issue_date"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	AuthorID    uuid.UUID `db:"author_id" json:"author_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
