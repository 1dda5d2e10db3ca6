package mysql

import (
	"context"

	"gorm.io/gorm"

	positionDomain "internship-management-backend/internal/domain/position"
)

type PositionRepository struct{ db *gorm.DB }

func NewPositionRepository(db *gorm.DB) *PositionRepository { return &PositionRepository{db: db} }

func (r *PositionRepository) Create(ctx context.Context, p *positionDomain.Position) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PositionRepository) Save(ctx context.Context, p *positionDomain.Position) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PositionRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&positionDomain.Position{}, id).Error
}

func (r *PositionRepository) GetByID(ctx context.Context, id uint64) (*positionDomain.Position, error) {
	var out positionDomain.Position
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *PositionRepository) GetAll(ctx context.Context) ([]positionDomain.Position, error) {
	var out []positionDomain.Position
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}
