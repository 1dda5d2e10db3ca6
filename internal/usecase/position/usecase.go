package position

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainCompany "internship-management-backend/internal/domain/company"
	domain "internship-management-backend/internal/domain/position"
)

type Usecase struct {
	positions domain.Repository
	companies domainCompany.Repository
}

func NewUsecase(positions domain.Repository, companies domainCompany.Repository) *Usecase {
	return &Usecase{positions: positions, companies: companies}
}

func (u *Usecase) List(ctx context.Context) ([]domain.Position, error) {
	return u.positions.GetAll(ctx)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.Position, error) {
	p, err := u.positions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Create(ctx context.Context, in PositionInput) (*domain.Position, error) {
	if err := u.checkCompany(ctx, in.CompanyID); err != nil {
		return nil, err
	}
	p := &domain.Position{
		CompanyID:   in.CompanyID,
		Title:       in.Title,
		Description: in.Description,
		Slots:       in.Slots,
		Status:      domain.Status(in.Status),
	}
	if p.Status == "" {
		p.Status = domain.StatusOpen
	}
	if err := u.positions.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in PositionInput) (*domain.Position, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkCompany(ctx, in.CompanyID); err != nil {
		return nil, err
	}

	existing.CompanyID = in.CompanyID
	existing.Title = in.Title
	existing.Description = in.Description
	existing.Slots = in.Slots
	existing.Status = domain.Status(in.Status)
	if err := u.positions.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	if _, err := u.Get(ctx, id); err != nil {
		return err
	}
	return u.positions.Delete(ctx, id)
}

func (u *Usecase) checkCompany(ctx context.Context, companyID uint64) error {
	_, err := u.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainCompany.ErrNotFound
		}
		return err
	}
	return nil
}
