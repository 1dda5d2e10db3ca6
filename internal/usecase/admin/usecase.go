package admin

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domainAccount "internship-management-backend/internal/domain/account"
	domainCompany "internship-management-backend/internal/domain/company"
	domainStudent "internship-management-backend/internal/domain/student"
)

type Usecase struct {
	accounts  domainAccount.Repository
	companies domainCompany.Repository
	students  domainStudent.Repository
}

func NewUsecase(
	accounts domainAccount.Repository,
	companies domainCompany.Repository,
	students domainStudent.Repository,
) *Usecase {
	return &Usecase{accounts: accounts, companies: companies, students: students}
}

func (u *Usecase) ListAccounts(ctx context.Context) ([]AccountSummaryDTO, error) {
	accounts, err := u.accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AccountSummaryDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountSummaryDTO{ID: a.ID, Username: a.Username, Role: a.Role})
	}
	return out, nil
}

func (u *Usecase) UpdateAccount(ctx context.Context, id uint64, in UpdateAccountInput) error {
	a, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainAccount.ErrNotFound
		}
		return err
	}

	if in.Username != "" {
		a.Username = in.Username
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		a.Password = string(hash)
	}
	if in.Role != "" {
		a.Role = in.Role
	}
	if in.Email != "" {
		a.Email = in.Email
	}
	return u.accounts.Save(ctx, a)
}

func (u *Usecase) DeleteAccount(ctx context.Context, id uint64) error {
	if _, err := u.accounts.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainAccount.ErrNotFound
		}
		return err
	}
	return u.accounts.Delete(ctx, id)
}

func (u *Usecase) ListCompanies(ctx context.Context) ([]domainCompany.Company, error) {
	return u.companies.GetAll(ctx)
}

func (u *Usecase) DeleteCompany(ctx context.Context, id uint64) error {
	if _, err := u.companies.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainCompany.ErrNotFound
		}
		return err
	}
	return u.companies.Delete(ctx, id)
}

func (u *Usecase) ListStudents(ctx context.Context) ([]domainStudent.Student, error) {
	return u.students.GetAll(ctx)
}

func (u *Usecase) DeleteStudent(ctx context.Context, id uint64) error {
	if _, err := u.students.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainStudent.ErrNotFound
		}
		return err
	}
	return u.students.Delete(ctx, id)
}
