package positionmock

import (
	"context"
	"errors"

	domain "internship-management-backend/internal/domain/position"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("positionmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, p *domain.Position) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Position, error)
	GetAllFn  func(ctx context.Context) ([]domain.Position, error)
	SaveFn    func(ctx context.Context, p *domain.Position) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Position) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Position, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetAll(ctx context.Context) ([]domain.Position, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, p *domain.Position) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
