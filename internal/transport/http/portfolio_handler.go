package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/service"
	"github.com/redect/members-api/internal/util"
)

type portfolioRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
	Link         *string `json:"link,omitempty"`
	Technologies *string `json:"technologies,omitempty"`
}

type PortfolioHandler struct {
	items *service.PortfolioService
}

func RegisterPortfolio(e *echo.Echo, items *service.PortfolioService, auth *service.AuthService) {
	h := &PortfolioHandler{items: items}

	g := e.Group("/api/v1/portfolio")
	g.GET("", h.List)
	g.GET("/:id", h.Get)

	authed := g.Group("", RequireAuth(auth))
	authed.POST("", h.Create)
	authed.PUT("/:id", h.Update)
	authed.DELETE("/:id", h.Delete)
}

// List godoc
//
//	@Summary	List portfolio items
//	@Tags		portfolio
//	@Produce	json
//	@Param		category	query	string	false	"filter by category"
//	@Param		limit		query	int		false	"page size (max 50)"
//	@Param		offset		query	int		false	"page offset"
//	@Success	200	{array}	domain.PortfolioItem
//	@Router		/api/v1/portfolio [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	limit, offset := queryPagination(c)
	items, err := h.items.List(c.Request().Context(), domain.PortfolioListFilter{
		Category: c.QueryParam("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return portfolioError(c, err)
	}
	if items == nil {
		items = []domain.PortfolioItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get godoc
//
//	@Summary	Fetch one portfolio item
//	@Tags		portfolio
//	@Produce	json
//	@Param		id	path	string	true	"portfolio id"
//	@Success	200	{object}	domain.PortfolioItem
//	@Router		/api/v1/portfolio/{id} [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid portfolio id"))
	}
	item, err := h.items.Get(c.Request().Context(), id)
	if err != nil {
		return portfolioError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create godoc
//
//	@Summary	Publish a portfolio item
//	@Tags		portfolio
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	portfolioRequest	true	"portfolio data"
//	@Success	201	{object}	domain.PortfolioItem
//	@Router		/api/v1/portfolio [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	var req portfolioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	item, err := h.items.Create(c.Request().Context(), CurrentUser(c).ID, service.PortfolioInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Link:         req.Link,
		Technologies: req.Technologies,
	})
	if err != nil {
		return portfolioError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
//
//	@Summary	Update an owned portfolio item
//	@Tags		portfolio
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string				true	"portfolio id"
//	@Param		request	body	portfolioRequest	true	"portfolio data"
//	@Success	200	{object}	domain.PortfolioItem
//	@Router		/api/v1/portfolio/{id} [put]
func (h *PortfolioHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid portfolio id"))
	}
	var req portfolioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	item, err := h.items.Update(c.Request().Context(), id, CurrentUser(c).ID, service.PortfolioInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Link:         req.Link,
		Technologies: req.Technologies,
	})
	if err != nil {
		return portfolioError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
//
//	@Summary	Delete an owned portfolio item
//	@Tags		portfolio
//	@Security	BearerAuth
//	@Param		id	path	string	true	"portfolio id"
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid portfolio id"))
	}
	user := CurrentUser(c)
	if err := h.items.Delete(c.Request().Context(), id, user.ID, user.IsAdmin()); err != nil {
		return portfolioError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("portfolio item deleted"))
}

func portfolioError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrPortfolioValidation):
		return c.JSON(http.StatusBadRequest, util.Error("title, description, category and image_url are required"))
	case errors.Is(err, service.ErrPortfolioNotFound):
		return c.JSON(http.StatusNotFound, util.Error(service.ErrPortfolioNotFound.Error()))
	case errors.Is(err, service.ErrPortfolioForbidden):
		return c.JSON(http.StatusForbidden, util.Error(service.ErrPortfolioForbidden.Error()))
	default:
		c.Logger().Errorf("portfolio: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
