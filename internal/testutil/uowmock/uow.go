package uowmock

import (
	"context"
	"errors"

	"internship-management-backend/internal/domain/application"
	"internship-management-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, id uint64, fn func(r uow.Repos, a *application.Application) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that runs callbacks directly against the given
// repository, with no real transaction. WithinApplicationTx loads the row
// through GetByIDForUpdate like the gorm implementation does.
func Passthrough(apps application.Repository) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(uow.Repos{Applications: apps})
		},
		WithinApplicationTxFn: func(ctx context.Context, id uint64, fn func(r uow.Repos, a *application.Application) error) error {
			a, err := apps.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(uow.Repos{Applications: apps}, a)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinApplicationTx(ctx context.Context, id uint64, fn func(r uow.Repos, a *application.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, id, fn)
	}
	return errUnimplemented
}
