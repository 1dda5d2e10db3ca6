package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	adminUC "internship-management-backend/internal/usecase/admin"
	appUC "internship-management-backend/internal/usecase/application"
)

type AdminHandler struct {
	uc   *adminUC.Usecase
	apps *appUC.Usecase
}

func NewAdminHandler(u *adminUC.Usecase, apps *appUC.Usecase) *AdminHandler {
	return &AdminHandler{uc: u, apps: apps}
}

type updateAccountReq struct {
	Username string `json:"username" validate:"omitempty,min=3,max=64"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin company student"`
	Email    string `json:"email"    validate:"omitempty,email"`
}

func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, accounts)
}

func (h *AdminHandler) UpdateAccount(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account id"})
	}
	var req updateAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	if err := h.uc.UpdateAccount(c.Request().Context(), id, adminUC.UpdateAccountInput(req)); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Account updated successfully"})
}

func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account id"})
	}
	if err := h.uc.DeleteAccount(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}

func (h *AdminHandler) ListCompanies(c echo.Context) error {
	companies, err := h.uc.ListCompanies(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, companies)
}

func (h *AdminHandler) DeleteCompany(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company id"})
	}
	if err := h.uc.DeleteCompany(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Company deleted successfully"})
}

func (h *AdminHandler) ListStudents(c echo.Context) error {
	students, err := h.uc.ListStudents(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, students)
}

func (h *AdminHandler) DeleteStudent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid student id"})
	}
	if err := h.uc.DeleteStudent(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Student deleted successfully"})
}

// InternshipReport lists accepted applications joined with their student,
// company and position snapshots.
func (h *AdminHandler) InternshipReport(c echo.Context) error {
	report, err := h.apps.AcceptedReport(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
