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

type paymentRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
}

func (r paymentRequest) toInput() (service.PaymentInput, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return service.PaymentInput{}, err
	}
	return service.PaymentInput{
		Title:       r.Title,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        date,
		Status:      r.Status,
	}, nil
}

type PaymentHandler struct {
	payments *service.PaymentService
}

func RegisterPayments(e *echo.Echo, payments *service.PaymentService, auth *service.AuthService) {
	h := &PaymentHandler{payments: payments}

	g := e.Group("/api/v1/payments", RequireAuth(auth))
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List godoc
//
//	@Summary	List payments
//	@Tags		payments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query	int	false	"page size (max 50)"
//	@Param		offset	query	int	false	"page offset"
//	@Success	200	{array}	domain.Payment
//	@Router		/api/v1/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	limit, offset := queryPagination(c)
	payments, err := h.payments.List(c.Request().Context(), limit, offset)
	if err != nil {
		return paymentError(c, err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return c.JSON(http.StatusOK, payments)
}

// Get godoc
//
//	@Summary	Fetch one payment
//	@Tags		payments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path	string	true	"payment id"
//	@Success	200	{object}	domain.Payment
//	@Router		/api/v1/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid payment id"))
	}
	payment, err := h.payments.Get(c.Request().Context(), id)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusOK, payment)
}

// Create godoc
//
//	@Summary	Record a payment
//	@Tags		payments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	paymentRequest	true	"payment data"
//	@Success	201	{object}	domain.Payment
//	@Router		/api/v1/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("date must be YYYY-MM-DD"))
	}
	payment, err := h.payments.Create(c.Request().Context(), CurrentUser(c).ID, input)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusCreated, payment)
}

// Update godoc
//
//	@Summary	Update an owned payment
//	@Tags		payments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string			true	"payment id"
//	@Param		request	body	paymentRequest	true	"payment data"
//	@Success	200	{object}	domain.Payment
//	@Router		/api/v1/payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid payment id"))
	}
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("date must be YYYY-MM-DD"))
	}
	payment, err := h.payments.Update(c.Request().Context(), id, CurrentUser(c).ID, input)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusOK, payment)
}

// Delete godoc
//
//	@Summary	Delete an owned payment
//	@Tags		payments
//	@Security	BearerAuth
//	@Param		id	path	string	true	"payment id"
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid payment id"))
	}
	user := CurrentUser(c)
	if err := h.payments.Delete(c.Request().Context(), id, user.ID, user.IsAdmin()); err != nil {
		return paymentError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("payment deleted"))
}

func paymentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentValidation):
		return c.JSON(http.StatusBadRequest, util.Error("title, a positive amount, date and a valid status are required"))
	case errors.Is(err, service.ErrPaymentNotFound):
		return c.JSON(http.StatusNotFound, util.Error(service.ErrPaymentNotFound.Error()))
	case errors.Is(err, service.ErrPaymentForbidden):
		return c.JSON(http.StatusForbidden, util.Error(service.ErrPaymentForbidden.Error()))
	default:
		c.Logger().Errorf("payments: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
