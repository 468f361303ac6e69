package domain

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	ContentType string    `db:"content_type" json:"content_type"`
	SizeBytes   int64     `db:"size_bytes" json:"size_bytes"`
	ObjectKey   string    `db:"object_key" json:"-"`
	URL         string    `db:"url" json:"url"`
	AuthorID    uuid.UUID `db:"author_id" json:"author_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
