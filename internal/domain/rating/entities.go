package rating

import (
	"time"

	"gorm.io/gorm"
)

// Rating: one per (user, product), enforced by the unique index and a
// pre-check in the usecase.
type Rating struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint64         `gorm:"uniqueIndex:ux_ratings_user_product" json:"user_id"`
	ProductID uint64         `gorm:"uniqueIndex:ux_ratings_user_product;index" json:"product_id"`
	Score     int            `json:"score"`
	Comment   string         `gorm:"size:1000" json:"comment"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Rating) TableName() string { return "ratings" }
