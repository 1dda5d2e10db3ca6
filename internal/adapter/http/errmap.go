package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	accountDomain "internship-management-backend/internal/domain/account"
	appDomain "internship-management-backend/internal/domain/application"
	companyDomain "internship-management-backend/internal/domain/company"
	positionDomain "internship-management-backend/internal/domain/position"
	studentDomain "internship-management-backend/internal/domain/student"
	authUC "internship-management-backend/internal/usecase/auth"
)

// writeDomainError maps domain errors to HTTP responses. Anything unknown
// is an internal error; the message is not leaked to the caller.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, positionDomain.ErrNotFound),
		errors.Is(err, companyDomain.ErrNotFound),
		errors.Is(err, studentDomain.ErrNotFound),
		errors.Is(err, accountDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrAlreadyApplied),
		errors.Is(err, accountDomain.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrNotPending),
		errors.Is(err, appDomain.ErrInvalidStatus),
		errors.Is(err, appDomain.ErrInterviewDetailsRequired),
		errors.Is(err, appDomain.ErrInterviewDetailsMissing),
		errors.Is(err, positionDomain.ErrClosed),
		errors.Is(err, authUC.ErrRoleNotAllowed):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, authUC.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
