package donation

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Type string

const (
	// TypePurchase links the donation to an order: the charitable share of a
	// sale. It does not feed the organization balance aggregate.
	TypePurchase Type = "purchase"
	// TypeDirect is a standalone gift; its completion increments the
	// organization's total_received.
	TypeDirect Type = "direct"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Donation struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"id"`
	UserID         uint64          `gorm:"index:idx_donations_user" json:"user_id"`
	OrganizationID uint64          `gorm:"index:idx_donations_org" json:"organization_id"`
	OrderID        *uint64         `gorm:"index" json:"order_id,omitempty"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Type           Type            `gorm:"size:20;index" json:"type"`
	Status         Status          `gorm:"size:20;default:'pending';index" json:"status"`
	BlockchainTxID string          `gorm:"size:128" json:"blockchain_tx_id,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Donation) TableName() string { return "donations" }
