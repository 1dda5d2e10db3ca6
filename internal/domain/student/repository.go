package student

import "context"

type Repository interface {
	Create(ctx context.Context, s *Student) error
	GetByID(ctx context.Context, id uint64) (*Student, error)
	GetByAccountID(ctx context.Context, accountID uint64) (*Student, error)
	GetAll(ctx context.Context) ([]Student, error)
	Save(ctx context.Context, s *Student) error
	Delete(ctx context.Context, id uint64) error
}
