package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/service"
)

type AdminHandler struct {
	auth *service.AuthService
}

func RegisterAdmin(e *echo.Echo, auth *service.AuthService) {
	h := &AdminHandler{auth: auth}

	g := e.Group("/api/v1/admin", RequireAuth(auth), RequireAdmin())
	g.GET("/users", h.ListUsers)
}

// ListUsers godoc
//
//	@Summary	List all member accounts
//	@Tags		admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query	int	false	"page size (max 50)"
//	@Param		offset	query	int	false	"page offset"
//	@Success	200	{array}	userResponse
//	@Router		/api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	limit, offset := queryPagination(c)
	users, err := h.auth.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return authError(c, err)
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
