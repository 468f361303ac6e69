package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/service"
	"github.com/redect/members-api/internal/util"
)

type FileHandler struct {
	files *service.FileService
}

func RegisterFiles(e *echo.Echo, files *service.FileService, auth *service.AuthService) {
	h := &FileHandler{files: files}

	g := e.Group("/api/v1/files", RequireAuth(auth))
	g.GET("", h.List)
	g.POST("", h.Upload)
	g.DELETE("/:id", h.Delete)
}

// Upload godoc
//
//	@Summary	Upload a file
//	@Tags		files
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"file to upload"
//	@Success	201	{object}	domain.File
//	@Router		/api/v1/files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("multipart field 'file' is required"))
	}
	src, err := header.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("could not read uploaded file"))
	}
	defer src.Close()

	file, err := h.files.Upload(c.Request().Context(), CurrentUser(c).ID, service.FileUpload{
		Reader:      src,
		Size:        header.Size,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		return fileError(c, err)
	}
	return c.JSON(http.StatusCreated, file)
}

// List godoc
//
//	@Summary	List uploaded files
//	@Tags		files
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query	int	false	"page size (max 50)"
//	@Param		offset	query	int	false	"page offset"
//	@Success	200	{array}	domain.File
//	@Router		/api/v1/files [get]
func (h *FileHandler) List(c echo.Context) error {
	limit, offset := queryPagination(c)
	files, err := h.files.List(c.Request().Context(), limit, offset)
	if err != nil {
		return fileError(c, err)
	}
	if files == nil {
		files = []domain.File{}
	}
	return c.JSON(http.StatusOK, files)
}

// Delete godoc
//
//	@Summary	Delete an owned file
//	@Tags		files
//	@Security	BearerAuth
//	@Param		id	path	string	true	"file id"
//	@Success	200	{object}	util.Envelope
//	@Router		/api/v1/files/{id} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid file id"))
	}
	user := CurrentUser(c)
	if err := h.files.Delete(c.Request().Context(), id, user.ID, user.IsAdmin()); err != nil {
		return fileError(c, err)
	}
	return c.JSON(http.StatusOK, util.Message("file deleted"))
}

func fileError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrFileValidation):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, service.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, util.Error(service.ErrFileTooLarge.Error()))
	case errors.Is(err, service.ErrFileNotFound):
		return c.JSON(http.StatusNotFound, util.Error(service.ErrFileNotFound.Error()))
	case errors.Is(err, service.ErrFileForbidden):
		return c.JSON(http.StatusForbidden, util.Error(service.ErrFileForbidden.Error()))
	default:
		c.Logger().Errorf("files: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
