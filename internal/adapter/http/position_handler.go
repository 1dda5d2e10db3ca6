package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	uc "internship-management-backend/internal/usecase/position"
)

type PositionHandler struct{ uc *uc.Usecase }

func NewPositionHandler(u *uc.Usecase) *PositionHandler { return &PositionHandler{uc: u} }

type positionReq struct {
	CompanyID   uint64 `json:"company_id"  validate:"required,gt=0"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Slots       int    `json:"slots"       validate:"gte=0"`
	Status      string `json:"status"      validate:"omitempty,posstatus"`
}

func (h *PositionHandler) List(c echo.Context) error {
	positions, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, positions)
}

func (h *PositionHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position id"})
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PositionHandler) Create(c echo.Context) error {
	var req positionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	p, err := h.uc.Create(c.Request().Context(), uc.PositionInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PositionHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position id"})
	}
	var req positionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	p, err := h.uc.Update(c.Request().Context(), id, uc.PositionInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PositionHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Position deleted successfully"})
}
