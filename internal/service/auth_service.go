package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/repository/ports"
	"github.com/redect/members-api/internal/util"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrInvalidGoogleToken = errors.New("invalid google token")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrCPFAlreadyUsed     = errors.New("cpf already in use")
	ErrPasswordTooWeak    = errors.New("password does not meet the policy")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)

// ResetMailer delivers the password reset link for a freshly issued token.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	CPF       *string
	BirthDate *time.Time
}

type ProfileUpdateInput struct {
	FirstName string
	LastName  string
	Email     string
	CPF       *string
	BirthDate *time.Time
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	resets   ports.PasswordResetRepository
	mailer   ResetMailer
	jwt      *util.JWTManager

	googleAud string
	resetTTL  time.Duration
	now       func() time.Time

	// replaced in tests
	verifyGoogleToken func(ctx context.Context, idTok, audience string) (*idtoken.Payload, error)
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	resets ports.PasswordResetRepository,
	mailer ResetMailer,
	jwtManager *util.JWTManager,
	googleAudience string,
	resetTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:             users,
		sessions:          sessions,
		resets:            resets,
		mailer:            mailer,
		jwt:               jwtManager,
		googleAud:         googleAudience,
		resetTTL:          resetTTL,
		now:               time.Now,
		verifyGoogleToken: idtoken.Validate,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrValidation
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, ErrValidation
	}
	if err := util.ValidatePassword(input.Password); err != nil {
		return nil, ErrPasswordTooWeak
	}

	hash, salt, err := util.DerivePassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, ports.UserCreate{
		Email:        email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		CPF:          normalizeOptional(input.CPF),
		BirthDate:    input.BirthDate,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         domain.RoleMember,
	})
	if err != nil {
		return nil, mapUserConflict(err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.openSession(ctx, user)
}

func (s *AuthService) LoginWithGoogle(ctx context.Context, idTok string) (*LoginResult, error) {
	payload, err := s.verifyGoogleToken(ctx, idTok, s.googleAud)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidGoogleToken
	}
	firstName, _ := payload.Claims["given_name"].(string)
	lastName, _ := payload.Claims["family_name"].(string)
	if firstName == "" {
		firstName, _ = payload.Claims["name"].(string)
	}

	user, err := s.users.UpsertGoogleUser(ctx, email, firstName, lastName)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, user)
}

// Authenticate is the session guard: it resolves a bearer token to the
// identity it was issued for, or fails with ErrInvalidSession. It is the only
// way request handlers obtain an authenticated identity.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidSession
	}
	if _, err := s.jwt.Parse(token); err != nil {
		return nil, ErrInvalidSession
	}
	session, err := s.sessions.FindActive(ctx, token, s.now())
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Deactivate(ctx, token)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileUpdateInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrValidation
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, ErrValidation
	}

	user, err := s.users.UpdateProfile(ctx, userID, ports.UserProfileUpdate{
		Email:     email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		CPF:       normalizeOptional(input.CPF),
		BirthDate: input.BirthDate,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidSession
		}
		return nil, mapUserConflict(err)
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if err := util.ValidatePassword(newPassword); err != nil {
		return ErrPasswordTooWeak
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return ErrInvalidCredentials
		}
		return err
	}

	// Accounts created through Google sign-in have no stored credential yet;
	// they may set one without proving the old password.
	if len(user.PasswordHash) > 0 {
		if !util.VerifyPassword(currentPassword, user.PasswordSalt, user.PasswordHash) {
			return ErrPasswordMismatch
		}
	}

	hash, salt, err := util.DerivePassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash, salt)
}

// RequestPasswordReset issues a single-use reset token and mails the
// redemption link. An unknown email is reported as success so the endpoint
// cannot be used to probe which addresses have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}

	token, err := util.GenerateResetToken()
	if err != nil {
		return err
	}

	// Issuing a new token invalidates any previous live ones, so at most one
	// token per account can redeem.
	if err := s.resets.DeleteByUser(ctx, user.ID); err != nil {
		return err
	}
	if _, err := s.resets.Create(ctx, user.ID, token, s.now().Add(s.resetTTL)); err != nil {
		return err
	}
	return s.mailer.SendPasswordReset(ctx, user.Email, token)
}

// ConfirmPasswordReset redeems a reset token: the token row is deleted and
// the owner's credential rewritten in one transaction, so a token redeems at
// most once even under concurrent attempts.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	now := s.now()

	// Reject missing, wrong and expired tokens identically, before password
	// validation so a bad token never leaks policy feedback.
	if _, err := s.resets.FindLive(ctx, token, now); err != nil {
		if isNotFound(err) {
			return ErrResetTokenInvalid
		}
		return err
	}

	if err := util.ValidatePassword(newPassword); err != nil {
		return ErrPasswordTooWeak
	}

	hash, salt, err := util.DerivePassword(newPassword)
	if err != nil {
		return err
	}

	if _, err := s.resets.Consume(ctx, token, now, hash, salt); err != nil {
		if isNotFound(err) {
			return ErrResetTokenInvalid
		}
		return err
	}
	return nil
}

// ListUsers pages through all accounts; reachable only through admin routes.
func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	limit, offset = normalizePagination(limit, offset)
	return s.users.List(ctx, limit, offset)
}

// PurgeExpiredResets removes expired-but-unused tokens; called periodically
// from the entrypoint.
func (s *AuthService) PurgeExpiredResets(ctx context.Context) (int64, error) {
	return s.resets.DeleteExpired(ctx, s.now())
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*LoginResult, error) {
	token, expiresAt, err := s.jwt.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.Create(ctx, user.ID, token, expiresAt); err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func mapUserConflict(err error) error {
	switch constraint := uniqueConstraint(err); {
	case strings.Contains(constraint, "cpf"):
		return ErrCPFAlreadyUsed
	case constraint != "":
		return ErrEmailAlreadyUsed
	default:
		return err
	}
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
