package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "internship-management-backend/internal/usecase/student"
)

type StudentHandler struct{ uc *uc.Usecase }

func NewStudentHandler(u *uc.Usecase) *StudentHandler { return &StudentHandler{uc: u} }

type studentProfileReq struct {
	Phone   string `json:"phone"   validate:"required"`
	Address string `json:"address" validate:"required"`
	Skills  string `json:"skills"  validate:"required"`
	CvURL   string `json:"cv_url"  validate:"required,url"`
}

func (h *StudentHandler) GetProfile(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}
	s, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *StudentHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}
	var req studentProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	s, err := h.uc.UpsertProfile(c.Request().Context(), accountID, uc.ProfileInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
