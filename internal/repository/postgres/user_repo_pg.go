package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/repository/ports"
)

const userColumns = `id, email, first_name, last_name, cpf, birth_date, password_hash, password_salt, role, created_at, updated_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input ports.UserCreate) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, first_name, last_name, cpf, birth_date, password_hash, password_salt, role)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + userColumns

	row := r.db.QueryRowxContext(ctx, query,
		input.Email, input.FirstName, input.LastName, input.CPF, input.BirthDate,
		input.PasswordHash, input.PasswordSalt, input.Role)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpsertGoogleUser(ctx context.Context, email, firstName, lastName string) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, first_name, last_name, role)
        VALUES ($1, $2, $3, 'member')
        ON CONFLICT (email) DO UPDATE
        SET first_name = COALESCE(NULLIF(user_account.first_name, ''), EXCLUDED.first_name),
            last_name = COALESCE(NULLIF(user_account.last_name, ''), EXCLUDED.last_name),
            updated_at = NOW()
        RETURNING ` + userColumns

	row := r.db.QueryRowxContext(ctx, query, email, firstName, lastName)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE email = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE id = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, input ports.UserProfileUpdate) (*domain.User, error) {
	const query = `
        UPDATE user_account
        SET email = $2,
            first_name = $3,
            last_name = $4,
            cpf = $5,
            birth_date = $6,
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + userColumns

	row := r.db.QueryRowxContext(ctx, query, id,
		input.Email, input.FirstName, input.LastName, input.CPF, input.BirthDate)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash, passwordSalt []byte) error {
	const query = `
        UPDATE user_account
        SET password_hash = $2,
            password_salt = $3,
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, id, passwordHash, passwordSalt)
	return err
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	const query = `
        SELECT ` + userColumns + `
        FROM user_account
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users, query, limit, offset); err != nil {
		return nil, err
	}
	return users, nil
}
