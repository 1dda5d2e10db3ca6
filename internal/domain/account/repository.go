package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uint64) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetAll(ctx context.Context) ([]Account, error)
	Save(ctx context.Context, a *Account) error
	Delete(ctx context.Context, id uint64) error
}
