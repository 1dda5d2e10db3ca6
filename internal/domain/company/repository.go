package company

import "context"

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id uint64) (*Company, error)
	GetByAccountID(ctx context.Context, accountID uint64) (*Company, error)
	GetAll(ctx context.Context) ([]Company, error)
	Save(ctx context.Context, c *Company) error
	Delete(ctx context.Context, id uint64) error
}
