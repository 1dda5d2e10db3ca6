package mysql

import (
	"context"

	"gorm.io/gorm"

	appDomain "internship-management-backend/internal/domain/application"
	"internship-management-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{Applications: &ApplicationRepository{db: tx}})
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, id uint64, fn func(r uow.Repos, a *appDomain.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{Applications: &ApplicationRepository{db: tx}}
		// lock the application row up-front to prevent races
		a, err := r.Applications.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
