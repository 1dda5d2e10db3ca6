package company

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("company profile not found")

type Company struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"id"`
	AccountID uint64 `gorm:"column:account_id;not null;uniqueIndex:ux_companies_account_active" json:"account_id"`

	Name        string `gorm:"size:128" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Contact     string `gorm:"size:128" json:"contact"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Company) TableName() string { return "companies" }
