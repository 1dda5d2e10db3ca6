package student

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("student profile not found")

type Student struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"id"`
	AccountID uint64 `gorm:"column:account_id;not null;uniqueIndex:ux_students_account_active" json:"account_id"`

	Phone   string `gorm:"size:32" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
	Skills  string `gorm:"type:text" json:"skills"`
	CvURL   string `gorm:"column:cv_url;type:text" json:"cv_url"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Student) TableName() string { return "students" }
