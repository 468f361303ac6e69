package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/service"
	"github.com/redect/members-api/internal/util"
)

// resetAckMessage is returned for every password reset request, whether or
// not the email belongs to an account.
const resetAckMessage = "if the email is registered, a reset link has been sent"

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	h := &AuthHandler{auth: auth}

	g := e.Group("/api/v1/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/google", h.GoogleLogin)
	g.POST("/password-reset/request", h.RequestPasswordReset)
	g.POST("/password-reset/confirm", h.ConfirmPasswordReset)

	authed := g.Group("", RequireAuth(auth))
	authed.POST("/logout", h.Logout)
	authed.GET("/me", h.Me)
	authed.PUT("/profile", h.UpdateProfile)
	authed.PUT("/password", h.ChangePassword)
}

// Register godoc
//
//	@Summary	Create a member account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	registerRequest	true	"account data"
//	@Success	201	{object}	userResponse
//	@Router		/api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("birth_date must be YYYY-MM-DD"))
	}

	user, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		CPF:       req.CPF,
		BirthDate: birthDate,
	})
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login godoc
//
//	@Summary	Authenticate with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	loginRequest	true	"credentials"
//	@Success	200	{object}	loginResponse
//	@Router		/api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserResponse(result.User),
	})
}

// GoogleLogin godoc
//
//	@Summary	Authenticate with a Google ID token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	googleLoginRequest	true	"google id token"
//	@Success	200	{object}	loginResponse
//	@Router		/api/v1/auth/google [post]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserResponse(result.User),
	})
}

// Logout godoc
//
//	@Summary	Invalidate the current session
//	@Tags		auth
//	@Security	BearerAuth
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), currentToken(c)); err != nil {
		return authError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("logged out"))
}

// Me godoc
//
//	@Summary	Return the authenticated account
//	@Tags		auth
//	@Security	BearerAuth
//	@Success	200	{object}	userResponse
//	@Router		/api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, toUserResponse(CurrentUser(c)))
}

// UpdateProfile godoc
//
//	@Summary	Update the authenticated account's profile
//	@Tags		auth
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	profileUpdateRequest	true	"profile data"
//	@Success	200	{object}	userResponse
//	@Router		/api/v1/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("birth_date must be YYYY-MM-DD"))
	}

	user, err := h.auth.UpdateProfile(c.Request().Context(), CurrentUser(c).ID, service.ProfileUpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		CPF:       req.CPF,
		BirthDate: birthDate,
	})
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ChangePassword godoc
//
//	@Summary	Change the authenticated account's password
//	@Tags		auth
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	passwordChangeRequest	true	"passwords"
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req passwordChangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.auth.ChangePassword(c.Request().Context(), CurrentUser(c).ID, req.CurrentPassword, req.NewPassword); err != nil {
		return authError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("password updated"))
}

// RequestPasswordReset godoc
//
//	@Summary	Request a password reset link
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	resetRequestRequest	true	"account email"
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/auth/password-reset/request [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req resetRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.auth.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		c.Logger().Errorf("password reset request: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Message(resetAckMessage))
}

// ConfirmPasswordReset godoc
//
//	@Summary	Redeem a password reset token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	resetConfirmRequest	true	"token and new password"
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req resetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.auth.ConfirmPasswordReset(c.Request().Context(), req.Token, req.Password); err != nil {
		return authError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("password updated"))
}

func authError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, util.Error("first name and a valid email are required"))
	case errors.Is(err, service.ErrPasswordTooWeak):
		return c.JSON(http.StatusBadRequest, util.Error("password must be at least 8 characters with a letter and a digit"))
	case errors.Is(err, service.ErrEmailAlreadyUsed):
		return c.JSON(http.StatusBadRequest, util.Error(service.ErrEmailAlreadyUsed.Error()))
	case errors.Is(err, service.ErrCPFAlreadyUsed):
		return c.JSON(http.StatusBadRequest, util.Error(service.ErrCPFAlreadyUsed.Error()))
	case errors.Is(err, service.ErrResetTokenInvalid):
		return c.JSON(http.StatusBadRequest, util.Error(service.ErrResetTokenInvalid.Error()))
	case errors.Is(err, service.ErrPasswordMismatch):
		return c.JSON(http.StatusBadRequest, util.Error(service.ErrPasswordMismatch.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, util.Error(service.ErrInvalidCredentials.Error()))
	case errors.Is(err, service.ErrInvalidGoogleToken):
		return c.JSON(http.StatusUnauthorized, util.Error(service.ErrInvalidGoogleToken.Error()))
	case errors.Is(err, service.ErrInvalidSession):
		return c.JSON(http.StatusUnauthorized, util.Error(service.ErrInvalidSession.Error()))
	default:
		c.Logger().Errorf("auth: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
