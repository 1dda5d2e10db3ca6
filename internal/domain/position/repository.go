package position

import "context"

type Repository interface {
	Create(ctx context.Context, p *Position) error
	GetByID(ctx context.Context, id uint64) (*Position, error)
	GetAll(ctx context.Context) ([]Position, error)
	Save(ctx context.Context, p *Position) error
	Delete(ctx context.Context, id uint64) error
}
