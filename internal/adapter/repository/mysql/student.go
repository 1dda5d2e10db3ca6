package mysql

import (
	"context"

	"gorm.io/gorm"

	studentDomain "internship-management-backend/internal/domain/student"
)

type StudentRepository struct{ db *gorm.DB }

func NewStudentRepository(db *gorm.DB) *StudentRepository { return &StudentRepository{db: db} }

func (r *StudentRepository) Create(ctx context.Context, s *studentDomain.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StudentRepository) Save(ctx context.Context, s *studentDomain.Student) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StudentRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&studentDomain.Student{}, id).Error
}

func (r *StudentRepository) GetByID(ctx context.Context, id uint64) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *StudentRepository) GetByAccountID(ctx context.Context, accountID uint64) (*studentDomain.Student, error) {
	var out studentDomain.Student
	res := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&out)
	return &out, res.Error
}

func (r *StudentRepository) GetAll(ctx context.Context) ([]studentDomain.Student, error) {
	var out []studentDomain.Student
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}
