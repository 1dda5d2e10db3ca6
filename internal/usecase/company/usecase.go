package company

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "internship-management-backend/internal/domain/company"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) GetProfile(ctx context.Context, accountID uint64) (*domain.Company, error) {
	c, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// UpsertProfile creates the caller's company profile on first write and
// updates it afterwards.
func (u *Usecase) UpsertProfile(ctx context.Context, accountID uint64, in ProfileInput) (*domain.Company, error) {
	existing, err := u.repo.GetByAccountID(ctx, accountID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c := &domain.Company{
			AccountID:   accountID,
			Name:        in.Name,
			Address:     in.Address,
			Contact:     in.Contact,
			Description: in.Description,
		}
		if err := u.repo.Create(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	case err != nil:
		return nil, err
	}

	existing.Name = in.Name
	existing.Address = in.Address
	existing.Contact = in.Contact
	existing.Description = in.Description
	if err := u.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
