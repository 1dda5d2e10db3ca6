package uow

import (
	"context"

	"internship-management-backend/internal/domain/application"
)

type Repos struct {
	Applications application.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, id uint64, fn func(r Repos, a *application.Application) error) error
}
