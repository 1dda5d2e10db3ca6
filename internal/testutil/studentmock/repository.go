package studentmock

import (
	"context"
	"errors"

	domain "internship-management-backend/internal/domain/student"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("studentmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, s *domain.Student) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Student, error)
	GetByAccountIDFn func(ctx context.Context, accountID uint64) (*domain.Student, error)
	GetAllFn         func(ctx context.Context) ([]domain.Student, error)
	SaveFn           func(ctx context.Context, s *domain.Student) error
	DeleteFn         func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, s *domain.Student) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Student, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByAccountID(ctx context.Context, accountID uint64) (*domain.Student, error) {
	if m.GetByAccountIDFn != nil {
		return m.GetByAccountIDFn(ctx, accountID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetAll(ctx context.Context) ([]domain.Student, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, s *domain.Student) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
