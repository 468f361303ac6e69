package domain

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Category    string    `db:"category" json:"category"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	AuthorID    uuid.UUID `db:"author_id" json:"author_id"`
	AuthorName  *string   `db:"author_name" json:"author_name,omitempty"`
	AuthorEmail *string   `db:"author_email" json:"author_email,omitempty"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type NewsListFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

type NewsListResult struct {
	Items  []News
	Total  int64
	Limit  int
	Offset int
}
