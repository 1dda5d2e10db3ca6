package application

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"internship-management-backend/internal/domain/account"
	domainApplication "internship-management-backend/internal/domain/application"
	domainCompany "internship-management-backend/internal/domain/company"
	domainPosition "internship-management-backend/internal/domain/position"
	domainStudent "internship-management-backend/internal/domain/student"
	"internship-management-backend/internal/domain/uow"
)

type Usecase struct {
	apps      domainApplication.Repository
	positions domainPosition.Repository
	companies domainCompany.Repository
	students  domainStudent.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(
	apps domainApplication.Repository,
	positions domainPosition.Repository,
	companies domainCompany.Repository,
	students domainStudent.Repository,
	tx uow.UnitOfWork,
) *Usecase {
	return &Usecase{apps: apps, positions: positions, companies: companies, students: students, uow: tx}
}

// List returns the caller's applications under the role scoping rules:
// students see their own, companies see those addressed to them.
func (u *Usecase) List(ctx context.Context, accountID uint64, role string) ([]ApplicationDTO, error) {
	switch role {
	case account.RoleStudent:
		apps, err := u.apps.ListByStudent(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return toDTOs(apps), nil
	case account.RoleCompany:
		comp, err := u.companies.GetByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domainCompany.ErrNotFound
			}
			return nil, err
		}
		apps, err := u.apps.ListByCompany(ctx, comp.ID)
		if err != nil {
			return nil, err
		}
		return toDTOs(apps), nil
	default:
		return nil, domainApplication.ErrForbidden
	}
}

func (u *Usecase) Create(ctx context.Context, accountID uint64, in CreateApplicationInput) (*ApplicationDTO, error) {
	pos, err := u.positions.GetByID(ctx, in.PositionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainPosition.ErrClosed
		}
		return nil, err
	}
	if !pos.Open() {
		return nil, domainPosition.ErrClosed
	}

	a := &domainApplication.Application{
		StudentID:  accountID,
		PositionID: pos.ID,
		CompanyID:  pos.CompanyID,
		Status:     domainApplication.StatusPending,
	}

	// Duplicate check and insert run in one tx; the composite unique index
	// on (student_id, position_id) backstops the race between two creates.
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Applications.GetByStudentAndPosition(ctx, accountID, in.PositionID)
		switch {
		case err == nil:
			return domainApplication.ErrAlreadyApplied
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return r.Applications.Create(ctx, a)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainApplication.ErrAlreadyApplied
		}
		return nil, err
	}

	dto := toDTO(*a)
	return &dto, nil
}

// Withdraw removes the caller's own pending application outright.
func (u *Usecase) Withdraw(ctx context.Context, accountID, id uint64) error {
	err := u.uow.WithinApplicationTx(ctx, id, func(r uow.Repos, a *domainApplication.Application) error {
		if a.StudentID != accountID {
			return domainApplication.ErrForbidden
		}
		if a.Status != domainApplication.StatusPending {
			return domainApplication.ErrNotPending
		}
		return r.Applications.Delete(ctx, a.ID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainApplication.ErrNotFound
	}
	return err
}

func (u *Usecase) UpdateStatus(ctx context.Context, accountID, id uint64, in UpdateStatusInput) (*ApplicationDTO, error) {
	next, err := domainApplication.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	comp, err := u.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainCompany.ErrNotFound
		}
		return nil, err
	}

	details := domainApplication.InterviewDetails{
		Date:     in.InterviewDate,
		Time:     in.InterviewTime,
		Location: in.InterviewLocation,
	}

	var dto ApplicationDTO
	err = u.uow.WithinApplicationTx(ctx, id, func(r uow.Repos, a *domainApplication.Application) error {
		if a.CompanyID != comp.ID {
			return domainApplication.ErrForbidden
		}
		if err := domainApplication.Transition(a, next, details); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(*a)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainApplication.ErrNotFound
		}
		return nil, err
	}
	return &dto, nil
}

// ListInterviews returns the caller company's applications that are in or
// past the interviewing stage.
func (u *Usecase) ListInterviews(ctx context.Context, accountID uint64) ([]InterviewDTO, error) {
	comp, err := u.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainCompany.ErrNotFound
		}
		return nil, err
	}
	apps, err := u.apps.ListByCompanyAndStatuses(ctx, comp.ID,
		domainApplication.StatusInterviewing, domainApplication.StatusAccepted)
	if err != nil {
		return nil, err
	}
	out := make([]InterviewDTO, 0, len(apps))
	for _, a := range apps {
		out = append(out, InterviewDTO{
			ID:                a.ID,
			StudentID:         a.StudentID,
			PositionID:        a.PositionID,
			Status:            string(a.Status),
			InterviewDate:     a.InterviewDate,
			InterviewTime:     a.InterviewTime,
			InterviewLocation: a.InterviewLocation,
		})
	}
	return out, nil
}

// AcceptedReport builds the admin internship status report: every accepted
// application joined with its student, company and position snapshots.
func (u *Usecase) AcceptedReport(ctx context.Context) ([]ReportEntryDTO, error) {
	apps, err := u.apps.ListByStatus(ctx, domainApplication.StatusAccepted)
	if err != nil {
		return nil, err
	}
	out := make([]ReportEntryDTO, 0, len(apps))
	for _, a := range apps {
		entry := ReportEntryDTO{Application: toDTO(a)}
		if s, err := u.students.GetByAccountID(ctx, a.StudentID); err == nil {
			entry.Student = s
		}
		if c, err := u.companies.GetByID(ctx, a.CompanyID); err == nil {
			entry.Company = c
		}
		if p, err := u.positions.GetByID(ctx, a.PositionID); err == nil {
			entry.Position = p
		}
		out = append(out, entry)
	}
	return out, nil
}

func toDTO(a domainApplication.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:                a.ID,
		StudentID:         a.StudentID,
		PositionID:        a.PositionID,
		CompanyID:         a.CompanyID,
		Status:            string(a.Status),
		InterviewDate:     a.InterviewDate,
		InterviewTime:     a.InterviewTime,
		InterviewLocation: a.InterviewLocation,
		CreatedAt:         a.CreatedAt,
	}
}

func toDTOs(apps []domainApplication.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for _, a := range apps {
		out = append(out, toDTO(a))
	}
	return out
}
