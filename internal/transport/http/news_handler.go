package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/service"
	"github.com/redect/members-api/internal/util"
)

type newsRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	ImageURL *string `json:"image_url,omitempty"`
}

type newsListResponse struct {
	Items  []domain.News `json:"items"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type NewsHandler struct {
	news *service.NewsService
}

func RegisterNews(e *echo.Echo, news *service.NewsService, auth *service.AuthService) {
	h := &NewsHandler{news: news}

	g := e.Group("/api/v1/news")
	g.GET("", h.List)
	g.GET("/:id", h.Get)

	authed := g.Group("", RequireAuth(auth))
	authed.POST("", h.Create)
	authed.PUT("/:id", h.Update)
	authed.DELETE("/:id", h.Delete)
}

// List godoc
//
//	@Summary	List published news
//	@Tags		news
//	@Produce	json
//	@Param		category	query	string	false	"filter by category"
//	@Param		search		query	string	false	"match in title or content"
//	@Param		limit		query	int		false	"page size (max 50)"
//	@Param		offset		query	int		false	"page offset"
//	@Success	200	{object}	newsListResponse
//	@Router		/api/v1/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	limit, offset := queryPagination(c)
	result, err := h.news.List(c.Request().Context(), domain.NewsListFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return newsError(c, err)
	}
	if result.Items == nil {
		result.Items = []domain.News{}
	}
	return c.JSON(http.StatusOK, newsListResponse{
		Items:  result.Items,
		Total:  result.Total,
		Limit:  result.Limit,
		Offset: result.Offset,
	})
}

// Get godoc
//
//	@Summary	Fetch one news item
//	@Tags		news
//	@Produce	json
//	@Param		id	path	string	true	"news id"
//	@Success	200	{object}	domain.News
//	@Router		/api/v1/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid news id"))
	}
	news, err := h.news.Get(c.Request().Context(), id)
	if err != nil {
		return newsError(c, err)
	}
	return c.JSON(http.StatusOK, news)
}

// Create godoc
//
//	@Summary	Publish a news item
//	@Tags		news
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	newsRequest	true	"news data"
//	@Success	201	{object}	domain.News
//	@Router		/api/v1/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	news, err := h.news.Create(c.Request().Context(), CurrentUser(c).ID, service.NewsInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return newsError(c, err)
	}
	return c.JSON(http.StatusCreated, news)
}

// Update godoc
//
//	@Summary	Update an owned news item
//	@Tags		news
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string		true	"news id"
//	@Param		request	body	newsRequest	true	"news data"
//	@Success	200	{object}	domain.News
//	@Router		/api/v1/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid news id"))
	}
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	news, err := h.news.Update(c.Request().Context(), id, CurrentUser(c).ID, service.NewsInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return newsError(c, err)
	}
	return c.JSON(http.StatusOK, news)
}

// Delete godoc
//
//	@Summary	Delete an owned news item
//	@Tags		news
//	@Security	BearerAuth
//	@Param		id	path	string	true	"news id"
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid news id"))
	}
	user := CurrentUser(c)
	if err := h.news.Delete(c.Request().Context(), id, user.ID, user.IsAdmin()); err != nil {
		return newsError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("news deleted"))
}

func newsError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNewsValidation):
		return c.JSON(http.StatusBadRequest, util.Error("title, content and category are required"))
	case errors.Is(err, service.ErrNewsNotFound):
		return c.JSON(http.StatusNotFound, util.Error(service.ErrNewsNotFound.Error()))
	case errors.Is(err, service.ErrNewsForbidden):
		return c.JSON(http.StatusForbidden, util.Error(service.ErrNewsForbidden.Error()))
	default:
		c.Logger().Errorf("news: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
