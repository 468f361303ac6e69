package http

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/redect/members-api/internal/util"
)

var (
	swaggerOnce sync.Once
	swaggerJSON []byte
	swaggerErr  error
)

// loadSwaggerSpec converts docs/swagger.yaml to JSON once; the document is
// static for the lifetime of the process.
func loadSwaggerSpec() ([]byte, error) {
	swaggerOnce.Do(func() {
		data, err := os.ReadFile(filepath.Join("docs", "swagger.yaml"))
		if err != nil {
			swaggerErr = err
			return
		}
		swaggerJSON, swaggerErr = yaml.YAMLToJSON(data)
	})
	return swaggerJSON, swaggerErr
}

// RegisterSwagger serves the Swagger UI under /swagger.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		spec, err := loadSwaggerSpec()
		if err != nil {
			c.Logger().Errorf("swagger spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("swagger spec unavailable"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, spec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
