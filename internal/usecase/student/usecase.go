package student

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "internship-management-backend/internal/domain/student"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) GetProfile(ctx context.Context, accountID uint64) (*domain.Student, error) {
	s, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// UpsertProfile creates the caller's profile on first write and updates it
// afterwards.
func (u *Usecase) UpsertProfile(ctx context.Context, accountID uint64, in ProfileInput) (*domain.Student, error) {
	existing, err := u.repo.GetByAccountID(ctx, accountID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s := &domain.Student{
			AccountID: accountID,
			Phone:     in.Phone,
			Address:   in.Address,
			Skills:    in.Skills,
			CvURL:     in.CvURL,
		}
		if err := u.repo.Create(ctx, s); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, err
	}

	existing.Phone = in.Phone
	existing.Address = in.Address
	existing.Skills = in.Skills
	existing.CvURL = in.CvURL
	if err := u.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
