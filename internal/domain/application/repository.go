package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	// GetByIDForUpdate locks the row for the duration of the surrounding tx.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	GetByStudentAndPosition(ctx context.Context, studentID, positionID uint64) (*Application, error)
	Save(ctx context.Context, a *Application) error
	Delete(ctx context.Context, id uint64) error

	ListByStudent(ctx context.Context, studentID uint64) ([]Application, error)
	ListByCompany(ctx context.Context, companyID uint64) ([]Application, error)
	ListByCompanyAndStatuses(ctx context.Context, companyID uint64, statuses ...Status) ([]Application, error)
	ListByStatus(ctx context.Context, status Status) ([]Application, error)
}
