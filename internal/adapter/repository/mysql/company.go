package mysql

import (
	"context"

	"gorm.io/gorm"

	companyDomain "internship-management-backend/internal/domain/company"
)

type CompanyRepository struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) *CompanyRepository { return &CompanyRepository{db: db} }

func (r *CompanyRepository) Create(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) Save(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CompanyRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&companyDomain.Company{}, id).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint64) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *CompanyRepository) GetByAccountID(ctx context.Context, accountID uint64) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&out)
	return &out, res.Error
}

func (r *CompanyRepository) GetAll(ctx context.Context) ([]companyDomain.Company, error) {
	var out []companyDomain.Company
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}
