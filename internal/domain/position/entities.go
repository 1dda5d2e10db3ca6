package position

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("position not found")
	// ErrClosed covers both a missing and a closed position on application
	// create; the caller cannot tell the two apart.
	ErrClosed = errors.New("invalid or closed position")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type Position struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"id"`
	CompanyID uint64 `gorm:"column:company_id;not null;index:idx_positions_company" json:"company_id"`

	Title       string `gorm:"size:128" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Slots       int    `json:"slots"`
	Status      Status `gorm:"type:enum('open','closed');default:'open'" json:"status"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Position) TableName() string { return "internship_positions" }

func (p *Position) Open() bool { return p.Status == StatusOpen }
