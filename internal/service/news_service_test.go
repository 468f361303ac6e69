package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type fakeNewsRepo struct {
	created *domain.News
	updated *domain.News
	deleted uuid.UUID

	getResult *domain.News
	getErr    error

	listFilter  domain.NewsListFilter
	listResult  []domain.News
	countResult int64
}

func (f *fakeNewsRepo) Create(ctx context.Context, news *domain.News) (*domain.News, error) {
	f.created = news
	return news, nil
}

func (f *fakeNewsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.News, error) {
	return f.getResult, f.getErr
}

func (f *fakeNewsRepo) List(ctx context.Context, filter domain.NewsListFilter) ([]domain.News, error) {
	f.listFilter = filter
	return f.listResult, nil
}

func (f *fakeNewsRepo) Count(ctx context.Context, filter domain.NewsListFilter) (int64, error) {
	return f.countResult, nil
}

func (f *fakeNewsRepo) Update(ctx context.Context, news *domain.News) (*domain.News, error) {
	f.updated = news
	return news, nil
}

func (f *fakeNewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = id
	return nil
}

func TestNewsCreateValidatesInput(t *testing.T) {
	repo := &fakeNewsRepo{}
	svc := NewNewsService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), NewsInput{Title: "  ", Content: "body", Category: "events"})
	if !errors.Is(err, ErrNewsValidation) {
		t.Fatalf("expected ErrNewsValidation, got %v", err)
	}

	authorID := uuid.New()
	news, err := svc.Create(context.Background(), authorID, NewsInput{Title: " Launch ", Content: "body", Category: " events "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if news.Title != "Launch" || news.Category != "events" {
		t.Fatalf("expected trimmed fields, got %q / %q", news.Title, news.Category)
	}
	if news.AuthorID != authorID {
		t.Fatalf("news must record its author")
	}
}

func TestNewsListNormalizesPagination(t *testing.T) {
	repo := &fakeNewsRepo{countResult: 3}
	svc := NewNewsService(repo)

	result, err := svc.List(context.Background(), domain.NewsListFilter{Limit: 999, Offset: -5, Search: "  go  "})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.listFilter.Limit != 50 {
		t.Fatalf("expected limit capped at 50, got %d", repo.listFilter.Limit)
	}
	if repo.listFilter.Offset != 0 {
		t.Fatalf("expected negative offset clamped to 0, got %d", repo.listFilter.Offset)
	}
	if repo.listFilter.Search != "go" {
		t.Fatalf("expected trimmed search, got %q", repo.listFilter.Search)
	}
	if result.Total != 3 {
		t.Fatalf("expected total 3, got %d", result.Total)
	}
}

func TestNewsUpdateOnlyByAuthor(t *testing.T) {
	author := uuid.New()
	repo := &fakeNewsRepo{getResult: &domain.News{ID: uuid.New(), AuthorID: author, Title: "old", Content: "c", Category: "events"}}
	svc := NewNewsService(repo)

	_, err := svc.Update(context.Background(), repo.getResult.ID, uuid.New(), NewsInput{Title: "new", Content: "c", Category: "events"})
	if !errors.Is(err, ErrNewsForbidden) {
		t.Fatalf("expected ErrNewsForbidden for non-author, got %v", err)
	}

	updated, err := svc.Update(context.Background(), repo.getResult.ID, author, NewsInput{Title: "new", Content: "c", Category: "events"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "new" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
}

func TestNewsDeleteAdminOverride(t *testing.T) {
	author := uuid.New()
	repo := &fakeNewsRepo{getResult: &domain.News{ID: uuid.New(), AuthorID: author}}
	svc := NewNewsService(repo)

	stranger := uuid.New()
	if err := svc.Delete(context.Background(), repo.getResult.ID, stranger, false); !errors.Is(err, ErrNewsForbidden) {
		t.Fatalf("expected ErrNewsForbidden for non-author, got %v", err)
	}

	if err := svc.Delete(context.Background(), repo.getResult.ID, stranger, true); err != nil {
		t.Fatalf("admins may delete any item, got %v", err)
	}
	if repo.deleted != repo.getResult.ID {
		t.Fatalf("expected delete of %s, got %s", repo.getResult.ID, repo.deleted)
	}
}

func TestNewsGetNotFound(t *testing.T) {
	repo := &fakeNewsRepo{getErr: sql.ErrNoRows}
	svc := NewNewsService(repo)

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}
