package user

import (
	"time"

	"givemarket-backend/internal/domain/authz"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"id"`
	Email     string         `gorm:"size:200;uniqueIndex:ux_users_email_active" json:"email"`
	Name      string         `gorm:"size:200" json:"name"`
	Role      authz.Role     `gorm:"size:20;default:'customer'" json:"role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
