package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type registerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	CPF       *string `json:"cpf,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type resetRequestRequest struct {
	Email string `json:"email"`
}

type resetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type profileUpdateRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	CPF       *string `json:"cpf,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CPF       *string   `json:"cpf,omitempty"`
	BirthDate *string   `json:"birth_date,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

func toUserResponse(user *domain.User) userResponse {
	resp := userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CPF:       user.CPF,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	if user.BirthDate != nil {
		formatted := user.BirthDate.Format("2006-01-02")
		resp.BirthDate = &formatted
	}
	return resp
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
