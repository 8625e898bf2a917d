package organization

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Organization struct {
	ID                uint64          `gorm:"primaryKey;column:id" json:"id"`
	NameEn            string          `gorm:"size:200;uniqueIndex:ux_orgs_name_en" json:"name_en"`
	NameAr            string          `gorm:"size:200;uniqueIndex:ux_orgs_name_ar" json:"name_ar"`
	DescriptionEn     string          `gorm:"type:text" json:"description_en"`
	DescriptionAr     string          `gorm:"type:text" json:"description_ar"`
	BlockchainAddress string          `gorm:"size:128;uniqueIndex:ux_orgs_chain_addr" json:"blockchain_address"`
	// TotalReceived is the derived aggregate: sum of completed direct
	// donations. Mutated only through Repository.IncrementTotalReceived.
	TotalReceived   decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"total_received"`
	IsVerified      bool            `gorm:"default:false;index" json:"is_verified"`
	VerifiedBy      *uint64         `json:"verified_by,omitempty"`
	VerifiedAt      *time.Time      `json:"verified_at,omitempty"`
	RejectionReason *string         `gorm:"size:500" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Organization) TableName() string { return "organizations" }
