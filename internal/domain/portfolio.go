package domain

import (
	"time"

	"github.com/google/uuid"
)

type PortfolioItem struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Category     string    `db:"category" json:"category"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	Link         *string   `db:"link" json:"link,omitempty"`
	Technologies *string   `db:"technologies" json:"technologies,omitempty"`
	AuthorID     uuid.UUID `db:"author_id" json:"author_id"`
	AuthorName   *string   `db:"author_name" json:"author_name,omitempty"`
	PublishedAt  time.Time `db:"published_at" json:"published_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type PortfolioListFilter struct {
	Category string
	Limit    int
	Offset   int
}
