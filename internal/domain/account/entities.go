package account

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrUsernameTaken = errors.New("username already taken")
)

const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
	RoleStudent = "student"
)

type Account struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"id"`
	Username string `gorm:"size:64;uniqueIndex:ux_accounts_username_active" json:"username"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `gorm:"size:128" json:"-"`
	Email    string `gorm:"size:128" json:"email"`
	Role     string `gorm:"size:16;index" json:"role"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Account) TableName() string { return "accounts" }
