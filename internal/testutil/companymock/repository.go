package companymock

import (
	"context"
	"errors"

	domain "internship-management-backend/internal/domain/company"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("companymock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, c *domain.Company) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Company, error)
	GetByAccountIDFn func(ctx context.Context, accountID uint64) (*domain.Company, error)
	GetAllFn         func(ctx context.Context) ([]domain.Company, error)
	SaveFn           func(ctx context.Context, c *domain.Company) error
	DeleteFn         func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Company) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Company, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByAccountID(ctx context.Context, accountID uint64) (*domain.Company, error) {
	if m.GetByAccountIDFn != nil {
		return m.GetByAccountIDFn(ctx, accountID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetAll(ctx context.Context) ([]domain.Company, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Company) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
