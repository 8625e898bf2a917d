package order

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

type Order struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"id"`
	OrderNumber    string          `gorm:"size:32;uniqueIndex:ux_orders_number_active" json:"order_number"`
	UserID         uint64          `gorm:"index:idx_orders_user" json:"user_id"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_amount"`
	Status         Status          `gorm:"size:20;default:'pending';index" json:"status"`
	PaymentStatus  PaymentStatus   `gorm:"size:20;default:'unpaid';index" json:"payment_status"`
	BlockchainTxID string          `gorm:"size:128" json:"blockchain_tx_id,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is a line on an order. Plain value object; no lifecycle of its own.
type OrderItem struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"id"`
	OrderID   uint64          `gorm:"index:idx_order_items_order" json:"order_id"`
	ProductID uint64          `gorm:"index" json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2)" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(18,2)" json:"subtotal"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }
