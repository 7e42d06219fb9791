package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed swagger.json
var swaggerJSON []byte

// APIDocs serves the static API description document.
func APIDocs(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, swaggerJSON)
}
