package category

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID            uint64         `gorm:"primaryKey;column:id" json:"id"`
	NameEn        string         `gorm:"size:200;uniqueIndex:ux_categories_name_en" json:"name_en"`
	NameAr        string         `gorm:"size:200;uniqueIndex:ux_categories_name_ar" json:"name_ar"`
	DescriptionEn string         `gorm:"type:text" json:"description_en"`
	DescriptionAr string         `gorm:"type:text" json:"description_ar"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string { return "categories" }
