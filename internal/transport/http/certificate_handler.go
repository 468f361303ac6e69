package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/service"
	"github.com/redect/members-api/internal/util"
)

type certificateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Issuer      string  `json:"issuer"`
	IssueDate   string  `json:"issue_date"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func (r certificateRequest) toInput() (service.CertificateInput, error) {
	issueDate, err := time.Parse("2006-01-02", r.IssueDate)
	if err != nil {
		return service.CertificateInput{}, err
	}
	return service.CertificateInput{
		Title:       r.Title,
		Description: r.Description,
		Issuer:      r.Issuer,
		IssueDate:   issueDate,
		ImageURL:    r.ImageURL,
	}, nil
}

type CertificateHandler struct {
	certs *service.CertificateService
}

func RegisterCertificates(e *echo.Echo, certs *service.CertificateService, auth *service.AuthService) {
	h := &CertificateHandler{certs: certs}

	g := e.Group("/api/v1/certificates", RequireAuth(auth))
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List godoc
//
//	@Summary	List certificates
//	@Tags		certificates
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query	int	false	"page size (max 50)"
//	@Param		offset	query	int	false	"page offset"
//	@Success	200	{array}	domain.Certificate
//	@Router		/api/v1/certificates [get]
func (h *CertificateHandler) List(c echo.Context) error {
	limit, offset := queryPagination(c)
	certs, err := h.certs.List(c.Request().Context(), limit, offset)
	if err != nil {
		return certificateError(c, err)
	}
	if certs == nil {
		certs = []domain.Certificate{}
	}
	return c.JSON(http.StatusOK, certs)
}

// Get godoc
//
//	@Summary	Fetch one certificate
//	@Tags		certificates
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path	string	true	"certificate id"
//	@Success	200	{object}	domain.Certificate
//	@Router		/api/v1/certificates/{id} [get]
func (h *CertificateHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid certificate id"))
	}
	cert, err := h.certs.Get(c.Request().Context(), id)
	if err != nil {
		return certificateError(c, err)
	}
	return c.JSON(http.StatusOK, cert)
}

// Create godoc
//
//	@Summary	Register a certificate
//	@Tags		certificates
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	certificateRequest	true	"certificate data"
//	@Success	201	{object}	domain.Certificate
//	@Router		/api/v1/certificates [post]
func (h *CertificateHandler) Create(c echo.Context) error {
	var req certificateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("issue_date must be YYYY-MM-DD"))
	}
	cert, err := h.certs.Create(c.Request().Context(), CurrentUser(c).ID, input)
	if err != nil {
		return certificateError(c, err)
	}
	return c.JSON(http.StatusCreated, cert)
}

// Update godoc
//
//	@Summary	Update an owned certificate
//	@Tags		certificates
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string				true	"certificate id"
//	@Param		request	body	certificateRequest	true	"certificate data"
//	@Success	200	{object}	domain.Certificate
//	@Router		/api/v1/certificates/{id} [put]
func (h *CertificateHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid certificate id"))
	}
	var req certificateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("issue_date must be YYYY-MM-DD"))
	}
	cert, err := h.certs.Update(c.Request().Context(), id, CurrentUser(c).ID, input)
	if err != nil {
		return certificateError(c, err)
	}
	return c.JSON(http.StatusOK, cert)
}

// Delete godoc
//
//	@Summary	Delete an owned certificate
//	@Tags		certificates
//	@Security	BearerAuth
//	@Param		id	path	string	true	"certificate id"
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/certificates/{id} [delete]
func (h *CertificateHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid certificate id"))
	}
	user := CurrentUser(c)
	if err := h.certs.Delete(c.Request().Context(), id, user.ID, user.IsAdmin()); err != nil {
		return certificateError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("certificate deleted"))
}

func certificateError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrCertificateValidation):
		return c.JSON(http.StatusBadRequest, util.Error("title, issuer and issue_date are required"))
	case errors.Is(err, service.ErrCertificateNotFound):
		return c.JSON(http.StatusNotFound, util.Error(service.ErrCertificateNotFound.Error()))
	case errors.Is(err, service.ErrCertificateForbidden):
		return c.JSON(http.StatusForbidden, util.Error(service.ErrCertificateForbidden.Error()))
	default:
		c.Logger().Errorf("certificates: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
