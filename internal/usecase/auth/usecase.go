package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"internship-management-backend/internal/domain/account"
	"internship-management-backend/pkg/token"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRoleNotAllowed     = errors.New("role must be student or company")
)

type Usecase struct {
	accounts account.Repository
	tokens   *token.Manager
}

func NewUsecase(accounts account.Repository, tokens *token.Manager) *Usecase {
	return &Usecase{accounts: accounts, tokens: tokens}
}

// Register creates a student or company account. Admin accounts are not
// self-registerable.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AccountDTO, error) {
	if in.Role != account.RoleStudent && in.Role != account.RoleCompany {
		return nil, ErrRoleNotAllowed
	}

	_, err := u.accounts.GetByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return nil, account.ErrUsernameTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := &account.Account{
		Username: in.Username,
		Password: string(hash),
		Email:    in.Email,
		Role:     in.Role,
	}
	if err := u.accounts.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, account.ErrUsernameTaken
		}
		return nil, err
	}

	return &AccountDTO{ID: a.ID, Username: a.Username, Email: a.Email, Role: a.Role}, nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*TokenDTO, error) {
	a, err := u.accounts.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	raw, err := u.tokens.Issue(a.ID, a.Role)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{Token: raw}, nil
}
