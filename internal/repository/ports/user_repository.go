package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type UserCreate struct {
	Email        string
	FirstName    string
	LastName     string
	CPF          *string
	BirthDate    *time.Time
	PasswordHash []byte
	PasswordSalt []byte
	Role         string
}

type UserProfileUpdate struct {
	Email     string
	FirstName string
	LastName  string
	CPF       *string
	BirthDate *time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input UserCreate) (*domain.User, error)
	UpsertGoogleUser(ctx context.Context, email, firstName, lastName string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input UserProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash, passwordSalt []byte) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}
