package application

import (
	"time"

	"internship-management-backend/internal/domain/company"
	"internship-management-backend/internal/domain/position"
	"internship-management-backend/internal/domain/student"
)

type CreateApplicationInput struct {
	PositionID uint64 `json:"position_id"`
}

type UpdateStatusInput struct {
	Status            string     `json:"status"`
	InterviewDate     *time.Time `json:"interview_date"`
	InterviewTime     string     `json:"interview_time"`
	InterviewLocation string     `json:"interview_location"`
}

type ApplicationDTO struct {
	ID                uint64     `json:"id"`
	StudentID         uint64     `json:"student_id"`
	PositionID        uint64     `json:"position_id"`
	CompanyID         uint64     `json:"company_id"`
	Status            string     `json:"status"`
	InterviewDate     *time.Time `json:"interview_date,omitempty"`
	InterviewTime     string     `json:"interview_time,omitempty"`
	InterviewLocation string     `json:"interview_location,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// InterviewDTO is the company-facing interview row; the company id is
// omitted since the caller already knows it.
type InterviewDTO struct {
	ID                uint64     `json:"id"`
	StudentID         uint64     `json:"student_id"`
	PositionID        uint64     `json:"position_id"`
	Status            string     `json:"status"`
	InterviewDate     *time.Time `json:"interview_date,omitempty"`
	InterviewTime     string     `json:"interview_time,omitempty"`
	InterviewLocation string     `json:"interview_location,omitempty"`
}

// ReportEntryDTO is one row of the admin internship status report: an
// accepted application joined with its snapshots. Joins are best-effort;
// a missing reference stays null.
type ReportEntryDTO struct {
	Application ApplicationDTO     `json:"application"`
	Student     *student.Student   `json:"student"`
	Company     *company.Company   `json:"company"`
	Position    *position.Position `json:"position"`
}
