package application

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrForbidden      = errors.New("application does not belong to caller")
	ErrNotPending     = errors.New("only pending applications may be cancelled")
	ErrAlreadyApplied = errors.New("already applied to this position")

	ErrInvalidStatus            = errors.New("invalid application status")
	ErrInterviewDetailsRequired = errors.New("interview details required for 'interviewing' status")
	ErrInterviewDetailsMissing  = errors.New("interview details must be set before accepting")
)

type Application struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"id"`
	// StudentID is the owning student's account id, fixed at creation.
	StudentID  uint64 `gorm:"column:student_id;not null;uniqueIndex:ux_applications_student_position;index:idx_applications_student" json:"student_id"`
	PositionID uint64 `gorm:"column:position_id;not null;uniqueIndex:ux_applications_student_position" json:"position_id"`
	// CompanyID is denormalized from the position at creation time and never re-synced.
	CompanyID uint64 `gorm:"column:company_id;not null;index:idx_applications_company" json:"company_id"`
	Status    Status `gorm:"type:enum('pending','interviewing','accepted','rejected');default:'pending'" json:"status"`

	// The interview triple is either all-empty or all-populated, never partial.
	InterviewDate     *time.Time `gorm:"column:interview_date;type:date" json:"interview_date"`
	InterviewTime     string     `gorm:"column:interview_time;size:32" json:"interview_time"`
	InterviewLocation string     `gorm:"column:interview_location;size:255" json:"interview_location"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

// HasInterviewDetails reports whether the interview triple is populated.
func (a *Application) HasInterviewDetails() bool {
	return a.InterviewDate != nil && a.InterviewTime != "" && a.InterviewLocation != ""
}

func (a *Application) clearInterviewDetails() {
	a.InterviewDate = nil
	a.InterviewTime = ""
	a.InterviewLocation = ""
}
