package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appDomain "internship-management-backend/internal/domain/application"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&appDomain.Application{}, id).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

// GetByIDForUpdate locks the row until the surrounding tx ends. The lock
// clause is mysql-only; sqlite (tests) has no row locks.
func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*appDomain.Application, error) {
	tx := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out appDomain.Application
	res := tx.First(&out, id)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByStudentAndPosition(ctx context.Context, studentID, positionID uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("student_id = ? AND position_id = ?", studentID, positionID).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID uint64) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID uint64) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListByCompanyAndStatuses(ctx context.Context, companyID uint64, statuses ...appDomain.Status) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("company_id = ? AND status IN ?", companyID, statuses).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, status appDomain.Status) ([]appDomain.Application, error) {
	var out []appDomain.Application
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id").
		Find(&out)
	return out, res.Error
}
