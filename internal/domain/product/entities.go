package product

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending_approval"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	// StatusSuspended is declared in the enum but unreachable: activation is
	// toggled via IsActive while approval_status stays "approved".
	StatusSuspended Status = "suspended"
)

type Product struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"id"`
	SellerID       uint64          `gorm:"index:idx_products_seller" json:"seller_id"`
	OrganizationID uint64          `gorm:"index:idx_products_org" json:"organization_id"`
	CategoryID     *uint64         `gorm:"index" json:"category_id,omitempty"`
	CreatorID      *uint64         `json:"creator_id,omitempty"`
	NameEn         string          `gorm:"size:200" json:"name_en"`
	NameAr         string          `gorm:"size:200" json:"name_ar"`
	DescriptionEn  string          `gorm:"type:text" json:"description_en"`
	DescriptionAr  string          `gorm:"type:text" json:"description_ar"`
	Price          decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	ApprovalStatus Status          `gorm:"size:20;default:'draft';index" json:"approval_status"`
	IsActive       bool            `gorm:"default:false" json:"is_active"`
	IsApproved     bool            `gorm:"default:false" json:"is_approved"`
	RejectionReason *string        `gorm:"size:500" json:"rejection_reason,omitempty"`
	ApprovedBy      *uint64        `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

// ResetToDraft clears every approval artifact. Any edit to a decided product
// sends it back through review.
func (p *Product) ResetToDraft() {
	p.ApprovalStatus = StatusDraft
	p.IsActive = false
	p.IsApproved = false
	p.RejectionReason = nil
	p.ApprovedBy = nil
	p.ApprovedAt = nil
}
