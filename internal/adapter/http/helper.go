package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"internship-management-backend/internal/adapter/middleware"
)

// ---- helpers ----

func callerAccountID(c echo.Context) (uint64, bool) {
	return middleware.AccountID(c)
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "account id missing from token"})
}
