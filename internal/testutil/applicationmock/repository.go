package applicationmock

import (
	"context"
	"errors"

	domain "internship-management-backend/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("applicationmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields you need in a test.
type Repo struct {
	CreateFn                   func(ctx context.Context, a *domain.Application) error
	GetByIDFn                  func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByIDForUpdateFn         func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByStudentAndPositionFn  func(ctx context.Context, studentID, positionID uint64) (*domain.Application, error)
	SaveFn                     func(ctx context.Context, a *domain.Application) error
	DeleteFn                   func(ctx context.Context, id uint64) error
	ListByStudentFn            func(ctx context.Context, studentID uint64) ([]domain.Application, error)
	ListByCompanyFn            func(ctx context.Context, companyID uint64) ([]domain.Application, error)
	ListByCompanyAndStatusesFn func(ctx context.Context, companyID uint64, statuses ...domain.Status) ([]domain.Application, error)
	ListByStatusFn             func(ctx context.Context, status domain.Status) ([]domain.Application, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByStudentAndPosition(ctx context.Context, studentID, positionID uint64) (*domain.Application, error) {
	if m.GetByStudentAndPositionFn != nil {
		return m.GetByStudentAndPositionFn(ctx, studentID, positionID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) ListByStudent(ctx context.Context, studentID uint64) ([]domain.Application, error) {
	if m.ListByStudentFn != nil {
		return m.ListByStudentFn(ctx, studentID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByCompany(ctx context.Context, companyID uint64) ([]domain.Application, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByCompanyAndStatuses(ctx context.Context, companyID uint64, statuses ...domain.Status) ([]domain.Application, error) {
	if m.ListByCompanyAndStatusesFn != nil {
		return m.ListByCompanyAndStatusesFn(ctx, companyID, statuses...)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Application, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, errUnimplemented
}
