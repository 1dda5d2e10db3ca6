package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"internship-management-backend/internal/adapter/middleware"
	uc "internship-management-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *uc.Usecase }

func NewApplicationHandler(u *uc.Usecase) *ApplicationHandler { return &ApplicationHandler{uc: u} }

type createApplicationReq struct {
	PositionID uint64 `json:"position_id" validate:"required,gt=0"`
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
	// Accept canonical date `YYYY-MM-DD` (aligns with schema DATE)
	InterviewDate     string `json:"interview_date"     validate:"omitempty,datetime=2006-01-02"`
	InterviewTime     string `json:"interview_time"`
	InterviewLocation string `json:"interview_location"`
}

// List returns the caller's applications, student- or company-scoped.
func (h *ApplicationHandler) List(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}
	role, _ := middleware.Role(c)

	dtos, err := h.uc.List(c.Request().Context(), accountID, role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}

	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), accountID, uc.CreateApplicationInput{PositionID: req.PositionID})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application id"})
	}

	if err := h.uc.Withdraw(c.Request().Context(), accountID, id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Application cancelled"})
}

func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application id"})
	}

	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := uc.UpdateStatusInput{
		Status:            req.Status,
		InterviewTime:     req.InterviewTime,
		InterviewLocation: req.InterviewLocation,
	}
	if req.InterviewDate != "" {
		d, _ := time.Parse("2006-01-02", req.InterviewDate)
		in.InterviewDate = &d
	}

	dto, err := h.uc.UpdateStatus(c.Request().Context(), accountID, id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListInterviews returns the caller company's interviewing/accepted rows.
func (h *ApplicationHandler) ListInterviews(c echo.Context) error {
	accountID, ok := callerAccountID(c)
	if !ok {
		return unauthorized(c)
	}
	dtos, err := h.uc.ListInterviews(c.Request().Context(), accountID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
