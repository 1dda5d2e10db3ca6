package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "internship-management-backend/internal/usecase/company"
)

type CompanyHandler struct{ uc *uc.Usecase }

func NewCompanyHandler(u *uc.Usecase) *CompanyHandler { return &CompanyHandler{uc: u} }

type companyProfileReq struct {
	Name        string `json:"name"        validate:"required"`
	Address     string `json:"address"     validate:"required"`
	Contact     string `json:"contact"     validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (h *CompanyHandler) GetProfile(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}
	comp, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, comp)
}

func (h *CompanyHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}
	var req companyProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	comp, err := h.uc.UpsertProfile(c.Request().Context(), accountID, uc.ProfileInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, comp)
}
