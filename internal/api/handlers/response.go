package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

// emptyResult answers a single-document lookup that matched nothing. The
// body is JSON null with status 200.
func emptyResult(c echo.Context) error {
	return c.JSON(http.StatusOK, nil)
}
